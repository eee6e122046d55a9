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

package event

import "strconv"

const ExamStartedTopic = "exam_started_events"

type ExamStartedEvent struct {
	Uid       int64  `json:"uid"`
	ExamID    string `json:"examId"`
	ExamTitle string `json:"examTitle"`
	// Ctime 毫秒
	Ctime int64 `json:"ctime"`
}

// MessageKey 同一个用户的事件落在同一个分区，保证顺序
func (e ExamStartedEvent) MessageKey() string {
	if e.Uid > 0 {
		return strconv.FormatInt(e.Uid, 10)
	}
	return e.ExamID
}
