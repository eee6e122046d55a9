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

package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/ecodeclub/examsite/internal/competition"
	"github.com/ecodeclub/examsite/internal/exam"
	"github.com/ecodeclub/examsite/internal/pkg/types"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestRenderCompetitions(t *testing.T) {
	color.NoColor = true
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	var buf bytes.Buffer
	renderCompetitions(&buf, competition.CompetitionList{
		List: []competition.Competition{
			{
				ID:               types.ID("c-1"),
				Title:            "Go 语言挑战赛",
				Status:           types.StatusActive,
				StartAt:          start,
				ParticipantCount: 42,
			},
		},
		Total: 1,
	})
	out := buf.String()
	assert.Contains(t, out, "共 1 场比赛")
	assert.Contains(t, out, "c-1")
	assert.Contains(t, out, "ACTIVE")
	assert.Contains(t, out, "2026-03-01 09:00")
	assert.Contains(t, out, "42")
	// 没有结束时间
	assert.Contains(t, out, "-")
}

func TestRenderSession(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	renderSession(&buf, exam.ExamSession{
		PortalURL:       "https://exam.example.com/s/1",
		Title:           "期末考试",
		TotalQuestions:  50,
		DurationMinutes: 90,
	})
	out := buf.String()
	assert.Contains(t, out, "开考成功")
	assert.Contains(t, out, "https://exam.example.com/s/1")
	assert.Contains(t, out, "50")
	assert.Contains(t, out, "90")
}

func TestRun(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "缺少子命令",
			args:    []string{},
			wantErr: "缺少子命令",
		},
		{
			name:    "配置文件不存在",
			args:    []string{"-config", "not-exist.yaml", "list"},
			wantErr: "读取配置文件失败",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := run(tc.args)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
