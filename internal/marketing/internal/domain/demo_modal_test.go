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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDemoModal(t *testing.T) {
	var m DemoModal
	assert.False(t, m.IsOpen)

	opened := m.Open()
	assert.True(t, opened.IsOpen)
	// 原值不受影响
	assert.False(t, m.IsOpen)

	assert.True(t, opened.Open().IsOpen)
	assert.False(t, opened.Close().IsOpen)
	assert.False(t, m.Close().IsOpen)
}
