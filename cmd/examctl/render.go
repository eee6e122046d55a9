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
	"io"
	"strconv"
	"time"

	"github.com/ecodeclub/examsite/internal/competition"
	"github.com/ecodeclub/examsite/internal/exam"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

const timeLayout = "2006-01-02 15:04"

func renderCompetitions(w io.Writer, data competition.CompetitionList) {
	color.New(color.FgYellow).Fprintf(w, "\n共 %d 场比赛\n", data.Total)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "标题", "状态", "开始", "结束", "参与人数"})
	for _, c := range data.List {
		table.Append([]string{
			c.ID.String(),
			c.Title,
			c.Status.String(),
			formatTime(c.StartAt),
			formatTime(c.EndAt),
			strconv.FormatInt(c.ParticipantCount, 10),
		})
	}
	table.Render()
}

func renderSession(w io.Writer, sess exam.ExamSession) {
	color.New(color.FgGreen).Fprintln(w, "开考成功")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"考试", "题目数", "时长(分钟)", "入口"})
	table.Append([]string{
		sess.Title,
		strconv.Itoa(sess.TotalQuestions),
		strconv.Itoa(sess.DurationMinutes),
		sess.PortalURL,
	})
	table.Render()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(timeLayout)
}
