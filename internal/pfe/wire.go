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

package pfe

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/pfehub/internal/academic"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/event"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/job"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/repository"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/repository/dao"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/service"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/web"
	"github.com/ecodeclub/pfehub/internal/user"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var ProviderSet = wire.NewSet(
	initDAOs,
	repository.NewProjectRepository,
	repository.NewDefenseRepository,
	initProjectEventProducer,
	initDefenseEventProducer,
	service.NewProjectService,
	service.NewRecommendService,
	service.NewDefenseService,
	web.NewHandler,
	web.NewDefenseHandler,
	web.NewAdminHandler,
	initDefenseReminderJob,
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	userModule *user.Module,
	acModule *academic.Module) (*Module, error) {
	wire.Build(
		ProviderSet,
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.FieldsOf(new(*academic.Module), "Svc"),
		wire.FieldsOf(new(daos), "project", "deliverable", "defense"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

type daos struct {
	project     dao.ProjectDAO
	deliverable dao.DeliverableDAO
	defense     dao.DefenseDAO
}

var (
	daoOnce sync.Once
	pfeDAOs daos
)

func initDAOs(db *egorm.Component) daos {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		pfeDAOs = daos{
			project:     dao.NewGORMProjectDAO(db),
			deliverable: dao.NewGORMDeliverableDAO(db),
			defense:     dao.NewGORMDefenseDAO(db),
		}
	})
	return pfeDAOs
}

func initProjectEventProducer(q mq.MQ) event.ProjectEventProducer {
	producer, err := event.NewProjectEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}

func initDefenseEventProducer(q mq.MQ) event.DefenseEventProducer {
	producer, err := event.NewDefenseEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}

// initDefenseReminderJob 提前几天提醒由 cron.defenseReminder.days 控制
func initDefenseReminderJob(svc service.DefenseService, producer event.DefenseEventProducer) *job.DefenseReminderJob {
	return job.NewDefenseReminderJob(svc, producer, econf.GetInt("cron.defenseReminder.days"))
}
