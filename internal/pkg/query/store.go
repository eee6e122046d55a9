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
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

var ErrCacheMiss = errors.New("查询缓存未命中")

// Store 查询结果的缓存，值是序列化之后的结果
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, val string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

type ECacheStore struct {
	ec ecache.Cache
}

func NewECacheStore(ec ecache.Cache) *ECacheStore {
	return &ECacheStore{
		ec: &ecache.NamespaceCache{
			Namespace: "query:",
			C:         ec,
		},
	}
}

func (s *ECacheStore) Get(ctx context.Context, key string) (string, error) {
	val := s.ec.Get(ctx, key)
	if val.KeyNotFound() {
		return "", ErrCacheMiss
	}
	if val.Err != nil {
		return "", errors.Wrap(val.Err, "查询缓存出错")
	}
	return val.AsString()
}

func (s *ECacheStore) Set(ctx context.Context, key string, val string, expiration time.Duration) error {
	return s.ec.Set(ctx, key, val, expiration)
}

func (s *ECacheStore) Delete(ctx context.Context, key string) error {
	_, err := s.ec.Delete(ctx, key)
	return err
}
