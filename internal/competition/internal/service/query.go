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

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/examsite/internal/competition/internal/domain"
	"github.com/ecodeclub/examsite/internal/pkg/query"
	"github.com/ecodeclub/examsite/internal/pkg/types"
)

const (
	ListQueryName   = "competitions"
	DetailQueryName = "competition"
)

type (
	ListQueryClient   = query.Client[domain.ListQuery, domain.CompetitionList]
	DetailQueryClient = query.Client[types.ID, domain.Competition]
)

// NewListQuery 缓存、合并请求和重试都交给 query 包，这里只负责拉数据。
// 调用方应该先 Normalize，语义相同的查询才会命中同一个缓存
func NewListQuery(svc Service, store query.Store, opts query.Options) *ListQueryClient {
	opts.Name = ListQueryName
	return query.NewClient[domain.ListQuery, domain.CompetitionList](store, svc.List, opts)
}

// NewDetailQuery 竞赛不存在不需要重试
func NewDetailQuery(svc Service, store query.Store, opts query.Options) *DetailQueryClient {
	opts.Name = DetailQueryName
	return query.NewClient[types.ID, domain.Competition](store,
		func(ctx context.Context, id types.ID) (domain.Competition, error) {
			res, err := svc.Detail(ctx, id)
			if errors.Is(err, ErrCompetitionNotFound) {
				return res, query.Permanent(err)
			}
			return res, err
		}, opts)
}
