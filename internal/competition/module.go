// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package competition

import (
	"github.com/ecodeclub/examsite/internal/competition/internal/domain"
	"github.com/ecodeclub/examsite/internal/competition/internal/service"
	"github.com/ecodeclub/examsite/internal/competition/internal/web"
)

type Module struct {
	Svc       Service
	ListQuery *ListQueryClient
	Hdl       *Handler
}

type (
	Service           = service.Service
	ListQueryClient   = service.ListQueryClient
	DetailQueryClient = service.DetailQueryClient
	Handler           = web.Handler
	Competition       = domain.Competition
	CompetitionList   = domain.CompetitionList
	ListQuery         = domain.ListQuery
	SortField         = domain.SortField
)

const (
	SortByStartAt          = domain.SortByStartAt
	SortByEndAt            = domain.SortByEndAt
	SortByParticipantCount = domain.SortByParticipantCount
	SortByCtime            = domain.SortByCtime
)

var ErrCompetitionNotFound = service.ErrCompetitionNotFound
