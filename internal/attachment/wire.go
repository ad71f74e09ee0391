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

package attachment

import (
	"context"
	"time"

	"github.com/ecodeclub/hirehub/internal/attachment/internal/service"
	"github.com/ecodeclub/hirehub/internal/attachment/internal/storage"
	"github.com/ecodeclub/hirehub/internal/attachment/internal/web"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule() *Module {
	wire.Build(
		initStorage,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initStorage() storage.Storage {
	type Config struct {
		// minio 或者 memory，默认 minio
		Type  string              `yaml:"type"`
		Minio storage.MinioConfig `yaml:"minio"`
	}
	var cfg Config
	err := econf.UnmarshalKey("attachment", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Type == "memory" {
		return storage.NewMemoryStorage()
	}
	st, err := storage.NewMinioStorage(cfg.Minio)
	if err != nil {
		panic(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = st.EnsureBucket(ctx)
	if err != nil {
		panic(err)
	}
	return st
}
