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

package submission

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hirehub/internal/jobposting"
	"github.com/ecodeclub/hirehub/internal/pkg/snowflake"
	"github.com/ecodeclub/hirehub/internal/submission/internal/event"
	"github.com/ecodeclub/hirehub/internal/submission/internal/repository"
	"github.com/ecodeclub/hirehub/internal/submission/internal/repository/cache"
	"github.com/ecodeclub/hirehub/internal/submission/internal/repository/dao"
	"github.com/ecodeclub/hirehub/internal/submission/internal/service"
	"github.com/ecodeclub/hirehub/internal/submission/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	ids snowflake.Generator,
	jobModule *jobposting.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		cache.NewAppliedCache,
		repository.NewSubmissionRepository,
		initNotifier,
		service.NewService,
		service.NewPipelineService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*jobposting.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.SubmissionDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMSubmissionDAO(db)
}

func initNotifier(q mq.MQ, ids snowflake.Generator) (event.Notifier, error) {
	return event.NewMQNotifier(q, ids)
}
