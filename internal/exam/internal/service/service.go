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
	"fmt"
	"time"

	"github.com/ecodeclub/examsite/internal/exam/internal/domain"
	"github.com/ecodeclub/examsite/internal/exam/internal/event"
	"github.com/ecodeclub/examsite/internal/pkg/types"
	"github.com/gotomicro/ego/core/elog"
)

var ErrInvalidExamID = errors.New("考试 ID 不能为空")

//go:generate mockgen -source=./service.go -destination=../../mocks/service.mock.go -package=exammocks -typed=false Service
type Service interface {
	// Start 开始考试。后台拒绝返回 *domain.RejectedError，
	// 后台数据不合法返回 domain.ErrInvalidResponse
	Start(ctx context.Context, uid int64, examID types.ID) (domain.ExamSession, error)
}

type service struct {
	backend  Backend
	producer event.ExamStartedEventProducer
	logger   *elog.Component
}

func NewService(backend Backend, producer event.ExamStartedEventProducer) Service {
	return &service{
		backend:  backend,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Start(ctx context.Context, uid int64, examID types.ID) (domain.ExamSession, error) {
	if examID.IsZero() {
		return domain.ExamSession{}, ErrInvalidExamID
	}
	resp, err := s.backend.StartExam(ctx, domain.StartExamRequest{ExamID: examID, Uid: uid})
	if err != nil {
		return domain.ExamSession{}, fmt.Errorf("调用考试服务失败: %w", err)
	}
	sess, err := resp.Session()
	if err != nil {
		return domain.ExamSession{}, err
	}
	evt := event.ExamStartedEvent{
		Uid:       uid,
		ExamID:    examID.String(),
		ExamTitle: sess.Title,
		Ctime:     time.Now().UnixMilli(),
	}
	// 事件只用于统计，发送失败不影响开考
	if err = s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送开考事件失败",
			elog.FieldErr(err),
			elog.Any("event", evt))
	}
	return sess, nil
}
