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

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/examsite/internal/competition/internal/domain"
	"github.com/ecodeclub/examsite/internal/competition/internal/repository/dao"
	"github.com/ecodeclub/examsite/internal/pkg/types"
)

var ErrCompetitionNotFound = errors.New("竞赛不存在")

type CompetitionRepository interface {
	List(ctx context.Context, q domain.ListQuery) ([]domain.Competition, error)
	Count(ctx context.Context, q domain.ListQuery) (int64, error)
	GetByID(ctx context.Context, id types.ID) (domain.Competition, error)
}

type competitionRepository struct {
	dao dao.CompetitionDAO
}

func NewCompetitionRepository(d dao.CompetitionDAO) CompetitionRepository {
	return &competitionRepository{dao: d}
}

func (repo *competitionRepository) List(ctx context.Context, q domain.ListQuery) ([]domain.Competition, error) {
	res, err := repo.dao.List(ctx, repo.filter(q), q.Offset, q.Limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Competition) domain.Competition {
		return toDomain(src)
	}), nil
}

func (repo *competitionRepository) Count(ctx context.Context, q domain.ListQuery) (int64, error) {
	return repo.dao.Count(ctx, repo.filter(q))
}

func (repo *competitionRepository) GetByID(ctx context.Context, id types.ID) (domain.Competition, error) {
	res, err := repo.dao.GetByID(ctx, id.String())
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Competition{}, ErrCompetitionNotFound
	}
	if err != nil {
		return domain.Competition{}, err
	}
	return toDomain(res), nil
}

func (repo *competitionRepository) filter(q domain.ListQuery) dao.Filter {
	return dao.Filter{
		Status:  q.Status.String(),
		Keyword: q.Keyword,
		OrderBy: string(q.SortBy),
		Desc:    q.Desc,
	}
}

// toDomain 数据库行到领域对象的映射，所有字段一一对应
func toDomain(c dao.Competition) domain.Competition {
	return domain.Competition{
		ID:               c.Id,
		Title:            c.Title,
		Description:      c.Description,
		Status:           c.Status,
		ExamID:           c.ExamId,
		StartAt:          time.UnixMilli(c.StartAt),
		EndAt:            time.UnixMilli(c.EndAt),
		ParticipantCount: c.ParticipantCount,
		Ctime:            time.UnixMilli(c.Ctime),
		Utime:            time.UnixMilli(c.Utime),
	}
}
