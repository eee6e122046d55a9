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
	"fmt"

	"github.com/ecodeclub/examsite/internal/competition/internal/domain"
	"github.com/ecodeclub/examsite/internal/competition/internal/repository"
	"github.com/ecodeclub/examsite/internal/pkg/types"
	"golang.org/x/sync/errgroup"
)

var ErrCompetitionNotFound = repository.ErrCompetitionNotFound

//go:generate mockgen -source=./service.go -destination=../../mocks/competition.mock.go -package=compmocks -typed=false Service
type Service interface {
	List(ctx context.Context, q domain.ListQuery) (domain.CompetitionList, error)
	Detail(ctx context.Context, id types.ID) (domain.Competition, error)
}

type service struct {
	repo repository.CompetitionRepository
}

func NewService(repo repository.CompetitionRepository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, q domain.ListQuery) (domain.CompetitionList, error) {
	q = q.Normalize()
	var (
		eg    errgroup.Group
		list  []domain.Competition
		total int64
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.List(ctx, q)
		if err != nil {
			return fmt.Errorf("查询竞赛列表失败: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, q)
		if err != nil {
			return fmt.Errorf("统计竞赛总数失败: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return domain.CompetitionList{}, err
	}
	return domain.CompetitionList{List: list, Total: total}, nil
}

func (s *service) Detail(ctx context.Context, id types.ID) (domain.Competition, error) {
	return s.repo.GetByID(ctx, id)
}
