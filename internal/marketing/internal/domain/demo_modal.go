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

// DemoModal 营销站点上"预约演示"弹窗的可见状态，零值就是关闭
type DemoModal struct {
	IsOpen bool
}

// Open 返回打开之后的状态，不修改 m
func (m DemoModal) Open() DemoModal {
	m.IsOpen = true
	return m
}

// Close 返回关闭之后的状态，不修改 m
func (m DemoModal) Close() DemoModal {
	m.IsOpen = false
	return m
}
