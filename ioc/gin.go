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
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/pfehub/config"
	"github.com/ecodeclub/pfehub/internal/academic"
	"github.com/ecodeclub/pfehub/internal/pfe"
	"github.com/ecodeclub/pfehub/internal/pkg/middleware"
	"github.com/ecodeclub/pfehub/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	metrics *middleware.MetricsBuilder,
	userHdl *user.Handler,
	acHdl *academic.Handler,
	pfeHdl *pfe.Handler,
	defenseHdl *pfe.DefenseHandler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("server.web").Build()
	res.Use(metrics.Build())
	res.Use(newCORS("X-Timestamp"))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	acHdl.PrivateRoutes(res.Engine)
	pfeHdl.PrivateRoutes(res.Engine)
	defenseHdl.PrivateRoutes(res.Engine)
	return res
}

func initMetricsBuilder() *middleware.MetricsBuilder {
	return middleware.NewMetricsBuilder()
}

func newCORS(headers ...string) gin.HandlerFunc {
	var cfg config.CORSConfig
	if err := econf.UnmarshalKey("cors", &cfg); err != nil {
		panic(err)
	}
	return cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     append([]string{"Authorization", "Content-Type"}, headers...),
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, domain := range cfg.AllowedDomains {
				if strings.Contains(origin, domain) {
					return true
				}
			}
			return false
		},
	})
}
