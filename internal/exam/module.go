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

package exam

import (
	"github.com/ecodeclub/examsite/internal/exam/internal/domain"
	"github.com/ecodeclub/examsite/internal/exam/internal/event"
	"github.com/ecodeclub/examsite/internal/exam/internal/service"
	"github.com/ecodeclub/examsite/internal/exam/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type (
	Service           = service.Service
	Backend           = service.Backend
	HTTPBackend       = service.HTTPBackend
	RetryConfig       = service.RetryConfig
	Handler           = web.Handler
	ExamSession       = domain.ExamSession
	StartExamRequest  = domain.StartExamRequest
	StartExamResponse = domain.StartExamResponse
	StartExamData     = domain.StartExamData
	RejectedError     = domain.RejectedError
	ExamStartedEvent  = event.ExamStartedEvent
)

const ExamStartedTopic = event.ExamStartedTopic

var (
	ErrInvalidResponse = domain.ErrInvalidResponse
	ErrInvalidExamID   = service.ErrInvalidExamID
	ErrClientError     = service.ErrClientError
	ErrServerError     = service.ErrServerError
	ErrNetworkError    = service.ErrNetworkError
)
