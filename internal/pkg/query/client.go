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

// Package query 负责查询结果的缓存、并发请求合并和失败重试，
// 业务模块只需要提供 Fetcher。
package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

const instrumentationName = "internal/pkg/query"

var ErrInvalidQuery = errors.New("查询参数无法序列化")

// Fetcher 真正去拿数据的方法，一般是某个 service 的方法
type Fetcher[Q any, R any] func(ctx context.Context, q Q) (R, error)

type RetryConfig struct {
	Interval    time.Duration `yaml:"interval"`
	MaxInterval time.Duration `yaml:"maxInterval"`
	// MaxRetries 为 0 表示不重试
	MaxRetries int32 `yaml:"maxRetries"`
}

type Options struct {
	// Name 缓存 key 的前缀，也是指标里的 query 标签，由业务代码指定
	Name string `yaml:"-"`
	// StaleTime 结果在缓存里保持新鲜的时间，小于等于 0 不缓存
	StaleTime time.Duration `yaml:"staleTime"`
	// FetchTimeout 合并之后的拉取不受单个调用方取消的影响，只受这个超时限制
	FetchTimeout time.Duration `yaml:"fetchTimeout"`
	Retry        RetryConfig   `yaml:"retry"`
}

type Client[Q any, R any] struct {
	name      string
	store     Store
	fetcher   Fetcher[Q, R]
	staleTime time.Duration
	timeout   time.Duration
	retry     RetryConfig
	group     singleflight.Group
	tracer    trace.Tracer
	logger    *elog.Component
}

// NewClient store 可以为 nil，此时只做请求合并和重试
func NewClient[Q any, R any](store Store, fetcher Fetcher[Q, R], opts Options) *Client[Q, R] {
	if opts.Retry.Interval <= 0 {
		opts.Retry.Interval = 100 * time.Millisecond
	}
	if opts.Retry.MaxInterval < opts.Retry.Interval {
		opts.Retry.MaxInterval = opts.Retry.Interval
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 30 * time.Second
	}
	return &Client[Q, R]{
		name:      opts.Name,
		store:     store,
		fetcher:   fetcher,
		staleTime: opts.StaleTime,
		timeout:   opts.FetchTimeout,
		retry:     opts.Retry,
		tracer:    otel.GetTracerProvider().Tracer(instrumentationName),
		logger:    elog.DefaultLogger,
	}
}

// Key 缓存 key 就是查询条件序列化之后的结果
func (c *Client[Q, R]) Key(q Q) (string, error) {
	data, err := json.Marshal(q)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	return c.name + ":" + string(data), nil
}

// Fetch 先查缓存，未命中再拉取。相同 key 的并发请求只会拉取一次
func (c *Client[Q, R]) Fetch(ctx context.Context, q Q) (R, error) {
	key, err := c.Key(q)
	if err != nil {
		var zero R
		return zero, err
	}
	if res, ok := c.getCache(ctx, key); ok {
		c.record(eventHit)
		return res, nil
	}
	c.record(eventMiss)
	return c.load(ctx, key, q)
}

// Refetch 跳过缓存读取，拉取之后刷新缓存
func (c *Client[Q, R]) Refetch(ctx context.Context, q Q) (R, error) {
	key, err := c.Key(q)
	if err != nil {
		var zero R
		return zero, err
	}
	return c.load(ctx, key, q)
}

func (c *Client[Q, R]) Invalidate(ctx context.Context, q Q) error {
	if !c.cacheEnabled() {
		return nil
	}
	key, err := c.Key(q)
	if err != nil {
		return err
	}
	return c.store.Delete(ctx, key)
}

// load 合并相同 key 的拉取。拉取本身脱离调用方的 ctx 运行，
// 每个调用方只在自己的 ctx 结束时提前返回
func (c *Client[Q, R]) load(ctx context.Context, key string, q Q) (R, error) {
	ch := c.group.DoChan(key, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		res, err := c.fetchWithRetry(fctx, q)
		if err != nil {
			return nil, err
		}
		c.setCache(fctx, key, res)
		return res, nil
	})
	var zero R
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-ch:
		if r.Shared {
			c.record(eventShared)
		}
		if r.Err != nil {
			return zero, r.Err
		}
		return r.Val.(R), nil
	}
}

func (c *Client[Q, R]) fetchWithRetry(ctx context.Context, q Q) (R, error) {
	ctx, span := c.tracer.Start(ctx, "query.fetch",
		trace.WithAttributes(attribute.String("query.name", c.name)))
	defer span.End()

	var zero R
	var strategy *retry.ExponentialBackoffRetryStrategy
	if c.retry.MaxRetries > 0 {
		s, err := retry.NewExponentialBackoffRetryStrategy(c.retry.Interval,
			c.retry.MaxInterval, c.retry.MaxRetries)
		if err != nil {
			return zero, fmt.Errorf("创建重试策略失败: %w", err)
		}
		strategy = s
	}

	for {
		c.record(eventFetch)
		res, err := c.fetcher(ctx, q)
		if err == nil {
			span.SetStatus(codes.Ok, "")
			return res, nil
		}
		if !c.shouldRetry(err) || strategy == nil {
			return zero, c.fail(span, err)
		}
		next, ok := strategy.Next()
		if !ok {
			return zero, c.fail(span, fmt.Errorf("超过最大重试次数: %w", err))
		}
		c.record(eventRetry)
		c.logger.Warn("查询失败，准备重试",
			elog.String("query", c.name),
			elog.FieldErr(err),
			elog.String("interval", next.String()))
		timer := time.NewTimer(next)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, c.fail(span, ctx.Err())
		case <-timer.C:
		}
	}
}

func (c *Client[Q, R]) fail(span trace.Span, err error) error {
	c.record(eventError)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	var pe *permanentError
	if errors.As(err, &pe) {
		return pe.err
	}
	return err
}

func (c *Client[Q, R]) shouldRetry(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var pe *permanentError
	return !errors.As(err, &pe)
}

func (c *Client[Q, R]) cacheEnabled() bool {
	return c.store != nil && c.staleTime > 0
}

// getCache 缓存出问题只打日志，退化为直接拉取
func (c *Client[Q, R]) getCache(ctx context.Context, key string) (R, bool) {
	var res R
	if !c.cacheEnabled() {
		return res, false
	}
	val, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			c.logger.Error("读取查询缓存失败", elog.String("key", key), elog.FieldErr(err))
		}
		return res, false
	}
	if err = json.Unmarshal([]byte(val), &res); err != nil {
		c.logger.Error("反序列化查询缓存失败", elog.String("key", key), elog.FieldErr(err))
		return res, false
	}
	return res, true
}

func (c *Client[Q, R]) setCache(ctx context.Context, key string, res R) {
	if !c.cacheEnabled() {
		return
	}
	data, err := json.Marshal(res)
	if err != nil {
		c.logger.Error("序列化查询结果失败", elog.String("key", key), elog.FieldErr(err))
		return
	}
	if err = c.store.Set(ctx, key, string(data), c.staleTime); err != nil {
		c.logger.Error("写入查询缓存失败", elog.String("key", key), elog.FieldErr(err))
	}
}

type permanentError struct {
	err error
}

func (p *permanentError) Error() string {
	return p.err.Error()
}

func (p *permanentError) Unwrap() error {
	return p.err
}

// Permanent 标记不需要重试的错误，例如参数错误、记录不存在
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}
