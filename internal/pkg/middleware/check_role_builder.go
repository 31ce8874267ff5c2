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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/pfehub/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CheckRoleMiddlewareBuilder 根据 JWT 里面的角色放行
type CheckRoleMiddlewareBuilder struct {
	logger *elog.Component
	sp     session.Provider
}

func NewCheckRoleMiddlewareBuilder() *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{
		logger: elog.DefaultLogger,
	}
}

func (c *CheckRoleMiddlewareBuilder) Build(roles ...user.Role) gin.HandlerFunc {
	allowed := slice.Map(roles, func(idx int, src user.Role) string {
		return src.String()
	})
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.session(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusUnauthorized)
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}
		claims := sess.Claims()
		role := claims.Get(user.RoleClaim).StringOrDefault("")
		if !slice.Contains(allowed, role) {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Debug("用户无权限",
				elog.Int64("uid", claims.Uid),
				elog.String("role", role),
				elog.Any("allowed", allowed))
			return
		}
	}
}

// session 没有指定 Provider 的时候走 ginx 默认的查找逻辑，会优先使用上下文里面的 session
func (c *CheckRoleMiddlewareBuilder) session(ctx *ginx.Context) (session.Session, error) {
	if c.sp != nil {
		return c.sp.Get(ctx)
	}
	return session.Get(ctx)
}
