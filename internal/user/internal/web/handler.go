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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/pfehub/internal/user/internal/domain"
	"github.com/ecodeclub/pfehub/internal/user/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// RoleClaim 放在 JWT 里面的角色字段
const RoleClaim = "role"

type Handler struct {
	userSvc service.Service
	logger  *elog.Component
}

func NewHandler(userSvc service.Service) *Handler {
	return &Handler{
		userSvc: userSvc,
		logger:  elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/login", ginx.B[LoginReq](h.Login))
	users.Any("/token/refresh", ginx.W(h.RefreshAccessToken))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[User](h.Edit))
	users.POST("/password", ginx.BS[ChangePasswordReq](h.ChangePassword))
	users.POST("/professor/list", ginx.B[ProfessorListReq](h.Professors))
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.userSvc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return errorResult(err)
	}
	_, err = session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(map[string]string{
			RoleClaim: u.Role.String(),
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newUser(u),
	}, nil
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: newUser(u),
	}, nil
}

// Edit 用户只能修改自己的资料
func (h *Handler) Edit(ctx *ginx.Context, req User, sess session.Session) (ginx.Result, error) {
	u := req.toDomain()
	u.Id = sess.Claims().Uid
	err := h.userSvc.UpdateProfile(ctx, u)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ChangePassword(ctx *ginx.Context, req ChangePasswordReq, sess session.Session) (ginx.Result, error) {
	err := h.userSvc.ChangePassword(ctx, sess.Claims().Uid, req.OldPassword, req.NewPassword)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Professors(ctx *ginx.Context, req ProfessorListReq) (ginx.Result, error) {
	us, err := h.userSvc.Professors(ctx, req.SpecializationId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(us, func(idx int, src domain.User) User {
			return newUser(src)
		}),
	}, nil
}
