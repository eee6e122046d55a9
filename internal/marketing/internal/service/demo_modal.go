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
	"sync"

	"github.com/ecodeclub/examsite/internal/marketing/internal/domain"
)

type DemoModalService interface {
	State() domain.DemoModal
	IsOpen() bool
	OnOpen()
	OnClose()
	// Subscribe 每次状态变更之后同步回调 fn，返回值用于取消订阅。
	// fn 里面不能再调用 OnOpen 或者 OnClose
	Subscribe(fn Listener) (cancel func())
}

type Listener func(state domain.DemoModal)

// DemoModalStore 进程内的弹窗状态容器，由 wire 创建并注入，不要做成全局变量
type DemoModalStore struct {
	mu    sync.RWMutex
	state domain.DemoModal

	// dispatchMu 保证监听者看到的变更顺序和实际顺序一致
	dispatchMu sync.Mutex
	lmu        sync.Mutex
	listeners  map[int64]Listener
	nextID     int64
}

func NewDemoModalStore() *DemoModalStore {
	return &DemoModalStore{
		listeners: make(map[int64]Listener),
	}
}

func (s *DemoModalStore) State() domain.DemoModal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *DemoModalStore) IsOpen() bool {
	return s.State().IsOpen
}

func (s *DemoModalStore) OnOpen() {
	s.apply(domain.DemoModal.Open)
}

func (s *DemoModalStore) OnClose() {
	s.apply(domain.DemoModal.Close)
}

func (s *DemoModalStore) Subscribe(fn Listener) func() {
	s.lmu.Lock()
	defer s.lmu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	var once sync.Once
	return func() {
		once.Do(func() {
			s.lmu.Lock()
			delete(s.listeners, id)
			s.lmu.Unlock()
		})
	}
}

func (s *DemoModalStore) apply(transition func(domain.DemoModal) domain.DemoModal) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	s.state = transition(s.state)
	state := s.state
	s.mu.Unlock()

	for _, fn := range s.snapshot() {
		fn(state)
	}
}

func (s *DemoModalStore) snapshot() []Listener {
	s.lmu.Lock()
	defer s.lmu.Unlock()
	res := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		res = append(res, fn)
	}
	return res
}
