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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/examsite/internal/exam/internal/domain"
	"github.com/ecodeclub/examsite/internal/pkg/idempotency"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	// ErrClientError 客户端错误（4xx），不重试
	ErrClientError = errors.New("客户端错误")
	// ErrServerError 服务端错误（5xx），重试
	ErrServerError = errors.New("服务端错误")
	// ErrNetworkError 网络错误，重试
	ErrNetworkError = errors.New("网络错误")
)

// IdempotencyKeyHeader 同一次开考的所有重试都带同一个 key
const IdempotencyKeyHeader = idempotency.Header

// 响应体最多读这么多，防止后台返回异常大的内容
const maxBodySize = 1 << 20

//go:generate mockgen -source=./backend.go -destination=../../mocks/backend.mock.go -package=exammocks -typed=false Backend
type Backend interface {
	// StartExam 后台明确拒绝（success=false）不算 error，由调用方处理
	StartExam(ctx context.Context, req domain.StartExamRequest) (domain.StartExamResponse, error)
}

// HTTPClient 便于测试时替换
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type RetryConfig struct {
	Interval    time.Duration `yaml:"interval"`
	MaxInterval time.Duration `yaml:"maxInterval"`
	// MaxRetries 为 0 表示不重试
	MaxRetries int32 `yaml:"maxRetries"`
}

// HTTPBackend 通过 HTTP 调用考试后台的 /start-exam
type HTTPBackend struct {
	baseURL string
	client  HTTPClient
	retry   RetryConfig
	newKey  func() string
	logger  *elog.Component
}

var _ Backend = (*HTTPBackend)(nil)

func NewHTTPBackend(baseURL string, client HTTPClient, retryCfg RetryConfig) *HTTPBackend {
	if retryCfg.Interval <= 0 {
		retryCfg.Interval = 100 * time.Millisecond
	}
	if retryCfg.MaxInterval < retryCfg.Interval {
		retryCfg.MaxInterval = retryCfg.Interval
	}
	return &HTTPBackend{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		retry:   retryCfg,
		newKey:  shortuuid.New,
		logger:  elog.DefaultLogger,
	}
}

func (b *HTTPBackend) StartExam(ctx context.Context, req domain.StartExamRequest) (domain.StartExamResponse, error) {
	key, ok := idempotency.KeyFromCtx(ctx)
	if !ok {
		key = b.newKey()
	}
	var resp domain.StartExamResponse
	err := b.doWithRetry(ctx, func() error {
		var err error
		resp, err = b.startOnce(ctx, key, req)
		return err
	})
	return resp, err
}

func (b *HTTPBackend) doWithRetry(ctx context.Context, operation func() error) error {
	var strategy *retry.ExponentialBackoffRetryStrategy
	if b.retry.MaxRetries > 0 {
		s, err := retry.NewExponentialBackoffRetryStrategy(b.retry.Interval,
			b.retry.MaxInterval, b.retry.MaxRetries)
		if err != nil {
			return fmt.Errorf("创建重试策略失败: %w", err)
		}
		strategy = s
	}

	for {
		if ctx.Err() != nil {
			return fmt.Errorf("context已取消: %w", ctx.Err())
		}
		err := operation()
		if err == nil {
			return nil
		}
		// 只有网络错误和 5xx 重试
		if !errors.Is(err, ErrNetworkError) && !errors.Is(err, ErrServerError) {
			return err
		}
		if strategy == nil {
			return err
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("超过最大重试次数，最后一次错误: %w", err)
		}
		b.logger.Warn("调用考试服务失败，准备重试",
			elog.FieldErr(err),
			elog.String("interval", next.String()))
		select {
		case <-ctx.Done():
			return fmt.Errorf("context已取消: %w", ctx.Err())
		case <-time.After(next):
		}
	}
}

func (b *HTTPBackend) startOnce(ctx context.Context, key string, req domain.StartExamRequest) (domain.StartExamResponse, error) {
	var res domain.StartExamResponse
	data, err := json.Marshal(req)
	if err != nil {
		return res, fmt.Errorf("%w: 序列化请求失败: %v", ErrClientError, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		b.baseURL+"/start-exam", bytes.NewReader(data))
	if err != nil {
		return res, fmt.Errorf("%w: 创建请求失败: %v", ErrClientError, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(IdempotencyKeyHeader, key)

	httpResp, err := b.client.Do(httpReq)
	if err != nil {
		return res, fmt.Errorf("%w: 请求失败: %w", ErrNetworkError, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodySize))
	if err != nil {
		return res, fmt.Errorf("%w: 读取响应失败: %w", ErrNetworkError, err)
	}

	code := httpResp.StatusCode
	switch {
	case code >= 200 && code < 300:
		if err = json.Unmarshal(body, &res); err != nil {
			return res, fmt.Errorf("%w: 解析响应失败: %v", domain.ErrInvalidResponse, err)
		}
		return res, nil
	case code >= 400 && code < 500:
		// 后台用 4xx 加上 success=false 表示业务上的拒绝
		if json.Unmarshal(body, &res) == nil && !res.Success && res.Message != "" {
			return res, nil
		}
		return domain.StartExamResponse{}, fmt.Errorf("%w: HTTP状态码=%d", ErrClientError, code)
	case code >= 500:
		return res, fmt.Errorf("%w: HTTP状态码=%d", ErrServerError, code)
	default:
		return res, fmt.Errorf("%w: HTTP状态码=%d", ErrClientError, code)
	}
}
