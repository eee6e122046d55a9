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

package web

import (
	"github.com/ecodeclub/examsite/internal/competition/internal/domain"
	"github.com/ecodeclub/examsite/internal/pkg/types"
)

type ListReq struct {
	// Status 为空表示不过滤，非法取值在绑定参数的时候就会失败
	Status  types.Status `json:"status"`
	Keyword string       `json:"keyword"`
	SortBy  string       `json:"sortBy"`
	Desc    bool         `json:"desc"`
	Offset  int          `json:"offset"`
	Limit   int          `json:"limit"`
}

func (r ListReq) toDomain() domain.ListQuery {
	return domain.ListQuery{
		Status:  r.Status,
		Keyword: r.Keyword,
		SortBy:  domain.SortField(r.SortBy),
		Desc:    r.Desc,
		Offset:  r.Offset,
		Limit:   r.Limit,
	}.Normalize()
}

type DetailReq struct {
	ID types.ID `json:"id"`
}

type ListResp struct {
	List  []Competition `json:"list"`
	Total int64         `json:"total"`
}

type Competition struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Status           string `json:"status"`
	ExamID           string `json:"examId"`
	StartAt          int64  `json:"startAt"`
	EndAt            int64  `json:"endAt"`
	ParticipantCount int64  `json:"participantCount"`
	Ctime            int64  `json:"ctime"`
	Utime            int64  `json:"utime"`
}

func newCompetition(c domain.Competition) Competition {
	return Competition{
		ID:               c.ID.String(),
		Title:            c.Title,
		Description:      c.Description,
		Status:           c.Status.String(),
		ExamID:           c.ExamID.String(),
		StartAt:          c.StartAt.UnixMilli(),
		EndAt:            c.EndAt.UnixMilli(),
		ParticipantCount: c.ParticipantCount,
		Ctime:            c.Ctime.UnixMilli(),
		Utime:            c.Utime.UnixMilli(),
	}
}
