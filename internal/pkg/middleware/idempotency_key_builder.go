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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/examsite/internal/pkg/idempotency"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// IdempotencyKeyBuilder 把客户端带上来的 Idempotency-Key 放进 context，
// 前端重复点击开考时，后台收到的是同一个 key
type IdempotencyKeyBuilder struct {
	logger *elog.Component
}

func NewIdempotencyKeyBuilder() *IdempotencyKeyBuilder {
	return &IdempotencyKeyBuilder{logger: elog.DefaultLogger}
}

func (b *IdempotencyKeyBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := ctx.GetHeader(idempotency.Header)
		if key == "" {
			return
		}
		if err := idempotency.Validate(key); err != nil {
			b.logger.Warn("非法的幂等 key", elog.FieldErr(err), elog.Int("len", len(key)))
			ctx.AbortWithStatus(http.StatusBadRequest)
			return
		}
		ctx.Request = ctx.Request.WithContext(idempotency.WithKey(ctx.Request.Context(), key))
	}
}
