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
	"strings"
	"time"

	"github.com/ecodeclub/examsite/internal/pkg/types"
)

type Competition struct {
	ID               types.ID
	Title            string
	Description      string
	Status           types.Status
	ExamID           types.ID
	StartAt          time.Time
	EndAt            time.Time
	ParticipantCount int64
	Ctime            time.Time
	Utime            time.Time
}

type CompetitionList struct {
	List  []Competition
	Total int64
}

// SortField 取值就是数据库列名
type SortField string

const (
	SortByStartAt          SortField = "start_at"
	SortByEndAt            SortField = "end_at"
	SortByParticipantCount SortField = "participant_count"
	SortByCtime            SortField = "ctime"
)

func (f SortField) IsValid() bool {
	switch f {
	case SortByStartAt, SortByEndAt, SortByParticipantCount, SortByCtime:
		return true
	}
	return false
}

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type ListQuery struct {
	Status  types.Status
	Keyword string
	SortBy  SortField
	Desc    bool
	Offset  int
	Limit   int
}

// Normalize 修正分页和排序参数。语义相同的查询修正之后完全一样，
// 这样才能共用同一个缓存
func (q ListQuery) Normalize() ListQuery {
	q.Keyword = strings.TrimSpace(q.Keyword)
	if !q.SortBy.IsValid() {
		q.SortBy = SortByStartAt
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	switch {
	case q.Limit <= 0:
		q.Limit = DefaultLimit
	case q.Limit > MaxLimit:
		q.Limit = MaxLimit
	}
	return q
}
