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

package domain

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/ecodeclub/examsite/internal/pkg/types"
)

var ErrInvalidResponse = errors.New("开考响应不合法")

type StartExamRequest struct {
	ExamID types.ID `json:"examId"`
	Uid    int64    `json:"uid"`
}

// StartExamResponse 考试后台 /start-exam 的响应
type StartExamResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    *StartExamData `json:"data,omitempty"`
}

type StartExamData struct {
	ExamPortalURL   string `json:"examPortalUrl"`
	ExamTitle       string `json:"examTitle"`
	TotalQuestions  int    `json:"totalQuestions"`
	DurationMinutes int    `json:"durationMinutes"`
}

// Validate 只在 Success 为 true 的时候检查 Data，失败的响应不读 Data
func (r StartExamResponse) Validate() error {
	if !r.Success {
		return nil
	}
	if r.Data == nil {
		return fmt.Errorf("%w: 缺少 data", ErrInvalidResponse)
	}
	return r.Data.Validate()
}

func (d StartExamData) Validate() error {
	if d.ExamPortalURL == "" {
		return fmt.Errorf("%w: examPortalUrl 为空", ErrInvalidResponse)
	}
	u, err := url.Parse(d.ExamPortalURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: examPortalUrl 不是合法的 http(s) 地址 %q", ErrInvalidResponse, d.ExamPortalURL)
	}
	if d.TotalQuestions < 0 {
		return fmt.Errorf("%w: totalQuestions=%d", ErrInvalidResponse, d.TotalQuestions)
	}
	if d.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes=%d", ErrInvalidResponse, d.DurationMinutes)
	}
	return nil
}

// Session 把响应转换成考试会话。后台拒绝返回 *RejectedError，
// 响应不合法返回 ErrInvalidResponse
func (r StartExamResponse) Session() (ExamSession, error) {
	if !r.Success {
		return ExamSession{}, &RejectedError{Message: r.Message}
	}
	if err := r.Validate(); err != nil {
		return ExamSession{}, err
	}
	return ExamSession{
		PortalURL:       r.Data.ExamPortalURL,
		Title:           r.Data.ExamTitle,
		TotalQuestions:  r.Data.TotalQuestions,
		DurationMinutes: r.Data.DurationMinutes,
	}, nil
}

// ExamSession 已经校验过的开考结果
type ExamSession struct {
	PortalURL       string
	Title           string
	TotalQuestions  int
	DurationMinutes int
}

// RejectedError 后台明确拒绝开考，Message 直接展示给用户
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return "开考被拒绝"
	}
	return "开考被拒绝: " + e.Message
}
