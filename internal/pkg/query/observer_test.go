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

package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserver_Result(t *testing.T) {
	a := listQuery{Keyword: "a", Limit: 10}
	b := listQuery{Keyword: "b", Limit: 10}
	c := listQuery{Keyword: "c", Limit: 10}
	testCases := []struct {
		name      string
		store     Store
		reads     []listQuery
		wantCalls int64
	}{
		{
			name:      "多次读取同一个查询只拉取一次",
			reads:     []listQuery{a, a, a, a},
			wantCalls: 1,
		},
		{
			name:      "拉取次数等于不同查询的个数",
			reads:     []listQuery{a, a, b, b, b, c, c},
			wantCalls: 3,
		},
		{
			name:      "切回之前的查询走缓存",
			store:     newMemStore(),
			reads:     []listQuery{a, b, a, b, a},
			wantCalls: 2,
		},
		{
			name:      "没有缓存时切回之前的查询会重新拉取",
			reads:     []listQuery{a, b, a},
			wantCalls: 3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubService{}
			client := NewClient[listQuery, listResult](tc.store, svc.List, Options{
				Name:      "competitions",
				StaleTime: time.Minute,
			})
			ob := client.Observe()
			assert.True(t, ob.Current().IsLoading())
			for _, q := range tc.reads {
				res := ob.Result(context.Background(), q)
				require.True(t, res.IsSuccess())
				assert.Equal(t, []string{q.Keyword}, res.Data.Items)
			}
			assert.Equal(t, tc.wantCalls, svc.calls.Load())
		})
	}
}

func TestObserver_ErrorAndRefetch(t *testing.T) {
	svc := &stubService{fn: func(ctx context.Context, q listQuery, call int64) (listResult, error) {
		if call == 1 {
			return listResult{}, errBoom
		}
		return listResult{Total: 1}, nil
	}}
	client := NewClient[listQuery, listResult](nil, svc.List, Options{Name: "competitions"})
	ob := client.Observe()
	q := listQuery{Keyword: "go"}

	res := ob.Result(context.Background(), q)
	assert.True(t, res.IsError())
	assert.ErrorIs(t, res.Err, errBoom)

	res = ob.Result(context.Background(), q)
	assert.True(t, res.IsError())
	assert.Equal(t, int64(1), svc.calls.Load())

	res = ob.Refetch(context.Background(), q)
	require.True(t, res.IsSuccess())
	assert.Equal(t, int64(1), res.Data.Total)
	assert.Equal(t, int64(2), svc.calls.Load())
	assert.Equal(t, res, ob.Current())
}
