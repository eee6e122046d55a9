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

package idempotency

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		key     string
		wantErr error
	}{
		{name: "合法", key: "a1B2-c3_d4"},
		{name: "空", key: "", wantErr: ErrInvalidKey},
		{name: "太长", key: strings.Repeat("a", maxKeyLen+1), wantErr: ErrInvalidKey},
		{name: "刚好最长", key: strings.Repeat("a", maxKeyLen)},
		{name: "包含空格", key: "a b", wantErr: ErrInvalidKey},
		{name: "包含中文", key: "考试", wantErr: ErrInvalidKey},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, Validate(tc.key), tc.wantErr)
		})
	}
}

func TestKeyFromCtx(t *testing.T) {
	_, ok := KeyFromCtx(context.Background())
	assert.False(t, ok)

	_, ok = KeyFromCtx(WithKey(context.Background(), ""))
	assert.False(t, ok)

	key, ok := KeyFromCtx(WithKey(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", key)
}
