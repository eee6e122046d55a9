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
	"testing"

	"github.com/ecodeclub/examsite/internal/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestListQuery_Normalize(t *testing.T) {
	testCases := []struct {
		name string
		q    ListQuery
		want ListQuery
	}{
		{
			name: "零值",
			want: ListQuery{SortBy: SortByStartAt, Limit: DefaultLimit},
		},
		{
			name: "合法参数保持不变",
			q: ListQuery{Status: types.StatusActive, Keyword: "go", SortBy: SortByEndAt,
				Desc: true, Offset: 10, Limit: 50},
			want: ListQuery{Status: types.StatusActive, Keyword: "go", SortBy: SortByEndAt,
				Desc: true, Offset: 10, Limit: 50},
		},
		{
			name: "limit 超过上限",
			q:    ListQuery{SortBy: SortByCtime, Limit: 1000},
			want: ListQuery{SortBy: SortByCtime, Limit: MaxLimit},
		},
		{
			name: "负数 offset",
			q:    ListQuery{Offset: -1, Limit: 1},
			want: ListQuery{SortBy: SortByStartAt, Limit: 1},
		},
		{
			name: "未知排序字段",
			q:    ListQuery{SortBy: "id; drop table competitions", Limit: 10},
			want: ListQuery{SortBy: SortByStartAt, Limit: 10},
		},
		{
			name: "关键字去掉空白",
			q:    ListQuery{Keyword: "  算法 ", SortBy: SortByParticipantCount, Limit: 10},
			want: ListQuery{Keyword: "算法", SortBy: SortByParticipantCount, Limit: 10},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.q.Normalize())
		})
	}
}
