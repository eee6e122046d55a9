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
	"sync"
)

type Status string

const (
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result 某一次读取的结果，Data 只有在 StatusSuccess 的时候才有意义
type Result[R any] struct {
	Status Status
	Data   R
	Err    error
}

func (r Result[R]) IsLoading() bool {
	return r.Status == StatusLoading
}

func (r Result[R]) IsSuccess() bool {
	return r.Status == StatusSuccess
}

func (r Result[R]) IsError() bool {
	return r.Status == StatusError
}

func newResult[R any](data R, err error) Result[R] {
	if err != nil {
		return Result[R]{Status: StatusError, Err: err}
	}
	return Result[R]{Status: StatusSuccess, Data: data}
}

// Observer 一个长期存活的使用方，例如一次 CLI 会话。
// 查询条件不变时重复读取不会再次拉取，查询条件变了才会走 Client.Fetch
type Observer[Q any, R any] struct {
	client *Client[Q, R]
	mu     sync.Mutex
	key    string
	result Result[R]
}

func (c *Client[Q, R]) Observe() *Observer[Q, R] {
	return &Observer[Q, R]{
		client: c,
		result: Result[R]{Status: StatusLoading},
	}
}

func (o *Observer[Q, R]) Result(ctx context.Context, q Q) Result[R] {
	key, err := o.client.Key(q)
	if err != nil {
		return Result[R]{Status: StatusError, Err: err}
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if key == o.key && !o.result.IsLoading() {
		return o.result
	}
	o.key = key
	data, err := o.client.Fetch(ctx, q)
	o.result = newResult(data, err)
	return o.result
}

// Refetch 强制重新拉取，用于出错之后的重试或者用户主动刷新
func (o *Observer[Q, R]) Refetch(ctx context.Context, q Q) Result[R] {
	key, err := o.client.Key(q)
	if err != nil {
		return Result[R]{Status: StatusError, Err: err}
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.key = key
	data, err := o.client.Refetch(ctx, q)
	o.result = newResult(data, err)
	return o.result
}

// Current 最近一次的结果，不会触发拉取
func (o *Observer[Q, R]) Current() Result[R] {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.result
}
