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

package academic

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/pfehub/internal/academic/internal/repository"
	"github.com/ecodeclub/pfehub/internal/academic/internal/repository/cache"
	"github.com/ecodeclub/pfehub/internal/academic/internal/repository/dao"
	"github.com/ecodeclub/pfehub/internal/academic/internal/service"
	"github.com/ecodeclub/pfehub/internal/academic/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(
		initDAO,
		cache.NewAcademicECache,
		repository.NewCachedAcademicRepository,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var (
	daoOnce sync.Once
	d       dao.AcademicDAO
)

func initDAO(db *egorm.Component) dao.AcademicDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		d = dao.NewGORMAcademicDAO(db)
	})
	return d
}
