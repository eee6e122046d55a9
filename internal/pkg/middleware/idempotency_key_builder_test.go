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
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ecodeclub/examsite/internal/pkg/idempotency"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyKeyBuilder(t *testing.T) {
	testCases := []struct {
		name      string
		wantCode  int
		before    func(t *testing.T, ctx *gin.Context)
		afterFunc func(t *testing.T, ctx *gin.Context)
	}{
		{
			name:     "带了 key",
			wantCode: 200,
			before: func(t *testing.T, ctx *gin.Context) {
				ctx.Request = httptest.NewRequest(http.MethodPost, "/exam/start", nil)
				ctx.Request.Header.Set(idempotency.Header, "key-1")
			},
			afterFunc: func(t *testing.T, ctx *gin.Context) {
				key, ok := idempotency.KeyFromCtx(ctx.Request.Context())
				require.True(t, ok)
				assert.Equal(t, "key-1", key)
			},
		},
		{
			name:     "没带 key",
			wantCode: 200,
			before: func(t *testing.T, ctx *gin.Context) {
				ctx.Request = httptest.NewRequest(http.MethodPost, "/exam/start", nil)
			},
			afterFunc: func(t *testing.T, ctx *gin.Context) {
				_, ok := idempotency.KeyFromCtx(ctx.Request.Context())
				assert.False(t, ok)
			},
		},
		{
			name:     "key 太长",
			wantCode: 400,
			before: func(t *testing.T, ctx *gin.Context) {
				ctx.Request = httptest.NewRequest(http.MethodPost, "/exam/start", nil)
				ctx.Request.Header.Set(idempotency.Header, strings.Repeat("k", 200))
			},
			afterFunc: func(t *testing.T, ctx *gin.Context) {
				assert.True(t, ctx.IsAborted())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tc.before(t, c)
			hdl := NewIdempotencyKeyBuilder().Build()
			hdl(c)
			assert.Equal(t, tc.wantCode, c.Writer.Status())
			tc.afterFunc(t, c)
		})
	}
}
