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

package pfe

import (
	"github.com/ecodeclub/pfehub/internal/pfe/internal/domain"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/job"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/service"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/web"
)

type Module struct {
	Svc          ProjectService
	RecommendSvc RecommendService
	DefenseSvc   DefenseService
	Hdl          *Handler
	DefenseHdl   *DefenseHandler
	AdminHdl     *AdminHandler
	ReminderJob  *DefenseReminderJob
}

type ProjectService = service.ProjectService
type RecommendService = service.RecommendService
type DefenseService = service.DefenseService

type Handler = web.Handler
type DefenseHandler = web.DefenseHandler
type AdminHandler = web.AdminHandler

type DefenseReminderJob = job.DefenseReminderJob

type Project = domain.Project
type ProjectStatus = domain.ProjectStatus
type Defense = domain.Defense
type DefenseStatus = domain.DefenseStatus
type JuryMember = domain.JuryMember
type Slot = domain.Slot
type Recommendation = domain.Recommendation
