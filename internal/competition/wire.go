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

package competition

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/examsite/internal/competition/internal/repository"
	"github.com/ecodeclub/examsite/internal/competition/internal/repository/dao"
	"github.com/ecodeclub/examsite/internal/competition/internal/service"
	"github.com/ecodeclub/examsite/internal/competition/internal/web"
	"github.com/ecodeclub/examsite/internal/pkg/query"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	repository.NewCompetitionRepository,
	service.NewService,
	newQueryStore,
	newQueryOptions,
	service.NewListQuery,
	service.NewDetailQuery,
	web.NewHandler,
)

func InitModule(db *egorm.Component, ec ecache.Cache) *Module {
	wire.Build(
		ModuleSet,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CompetitionDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewCompetitionGORMDAO(db)
}

func newQueryStore(ec ecache.Cache) query.Store {
	return query.NewECacheStore(ec)
}

func newQueryOptions() query.Options {
	var opts query.Options
	err := econf.UnmarshalKey("competition.query", &opts)
	if err != nil {
		panic(err)
	}
	return opts
}
