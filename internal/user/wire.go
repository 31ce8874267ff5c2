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

package user

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/pfehub/internal/academic"
	"github.com/ecodeclub/pfehub/internal/user/internal/event"
	"github.com/ecodeclub/pfehub/internal/user/internal/repository"
	"github.com/ecodeclub/pfehub/internal/user/internal/repository/cache"
	"github.com/ecodeclub/pfehub/internal/user/internal/repository/dao"
	"github.com/ecodeclub/pfehub/internal/user/internal/service"
	"github.com/ecodeclub/pfehub/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	initDAO,
	cache.NewUserECache,
	repository.NewCachedUserRepository,
	initRegistrationEventProducer,
	service.NewUserService,
	web.NewHandler,
	web.NewAdminHandler,
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, acModule *academic.Module) (*Module, error) {
	wire.Build(
		ProviderSet,
		wire.FieldsOf(new(*academic.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var (
	daoOnce sync.Once
	userDAO dao.UserDAO
)

func initDAO(db *egorm.Component) dao.UserDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		userDAO = dao.NewGORMUserDAO(db)
	})
	return userDAO
}

func initRegistrationEventProducer(q mq.MQ) event.RegistrationEventProducer {
	producer, err := event.NewRegistrationEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
