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

package startup

import (
	"github.com/ecodeclub/pfehub/internal/academic"
	"github.com/ecodeclub/pfehub/internal/pfe"
	testioc "github.com/ecodeclub/pfehub/internal/test/ioc"
	"github.com/ecodeclub/pfehub/internal/user"
	"github.com/google/wire"
)

func InitModule(userModule *user.Module, acModule *academic.Module) (*pfe.Module, error) {
	wire.Build(testioc.InitDB, testioc.InitMQ, pfe.InitModule)
	return new(pfe.Module), nil
}
