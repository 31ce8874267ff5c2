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

package ioc

import (
	"net/http"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/pfehub/internal/academic"
	"github.com/ecodeclub/pfehub/internal/pfe"
	"github.com/ecodeclub/pfehub/internal/pkg/middleware"
	"github.com/ecodeclub/pfehub/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

// InitAdminServer 管理后台，只有 ADMIN 角色可以访问
func InitAdminServer(metrics *middleware.MetricsBuilder,
	userHdl *user.AdminHandler,
	acHdl *academic.AdminHandler,
	pfeHdl *pfe.AdminHandler,
) AdminServer {
	res := egin.Load("server.admin").Build()
	res.Use(metrics.Build())
	res.Use(newCORS())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	res.Use(session.CheckLoginMiddleware())
	res.Use(middleware.NewCheckRoleMiddlewareBuilder().Build(user.RoleAdmin))
	userHdl.PrivateRoutes(res.Engine)
	acHdl.PrivateRoutes(res.Engine)
	pfeHdl.PrivateRoutes(res.Engine)
	return res
}
