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

package jobposting

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hirehub/internal/jobposting/internal/repository"
	"github.com/ecodeclub/hirehub/internal/jobposting/internal/repository/cache"
	"github.com/ecodeclub/hirehub/internal/jobposting/internal/repository/dao"
	"github.com/ecodeclub/hirehub/internal/jobposting/internal/service"
	"github.com/ecodeclub/hirehub/internal/jobposting/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache) *Module {
	wire.Build(
		InitTablesOnce,
		cache.NewJobCache,
		repository.NewJobRepository,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.JobDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMJobDAO(db)
}
