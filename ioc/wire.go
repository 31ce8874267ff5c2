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

package ioc

import (
	"github.com/ecodeclub/pfehub/internal/academic"
	"github.com/ecodeclub/pfehub/internal/pfe"
	"github.com/ecodeclub/pfehub/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitSession)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		academic.InitModule,
		user.InitModule,
		pfe.InitModule,
		wire.FieldsOf(new(*academic.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*user.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*pfe.Module), "Hdl", "DefenseHdl", "AdminHdl", "ReminderJob"),
		initMetricsBuilder,
		initGinxServer,
		InitAdminServer,
		initCronJobs,
	)
	return new(App), nil
}
