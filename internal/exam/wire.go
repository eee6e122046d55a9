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

//go:build wireinject

package exam

import (
	"github.com/ecodeclub/examsite/internal/exam/internal/service"
	"github.com/ecodeclub/examsite/internal/exam/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
)

func InitModule(q mq.MQ) (*Module, error) {
	wire.Build(
		initBackend,
		initProducer,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

// InitModuleWithBackend 替换掉 HTTP 后台，cmd 和测试使用
func InitModuleWithBackend(q mq.MQ, backend service.Backend) (*Module, error) {
	wire.Build(
		initProducer,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
