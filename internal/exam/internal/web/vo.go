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
	"github.com/ecodeclub/examsite/internal/exam/internal/domain"
	"github.com/ecodeclub/examsite/internal/pkg/types"
)

type StartReq struct {
	ExamID types.ID `json:"examId"`
}

type StartResp struct {
	ExamPortalURL   string `json:"examPortalUrl"`
	ExamTitle       string `json:"examTitle"`
	TotalQuestions  int    `json:"totalQuestions"`
	DurationMinutes int    `json:"durationMinutes"`
}

func newStartResp(s domain.ExamSession) StartResp {
	return StartResp{
		ExamPortalURL:   s.PortalURL,
		ExamTitle:       s.Title,
		TotalQuestions:  s.TotalQuestions,
		DurationMinutes: s.DurationMinutes,
	}
}
