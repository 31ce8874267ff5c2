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
	"github.com/ecodeclub/pfehub/internal/user/internal/domain"
	"github.com/ecodeclub/pfehub/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

const defaultPageSize = 20

type AdminHandler struct {
	userSvc service.Service
}

func NewAdminHandler(userSvc service.Service) *AdminHandler {
	return &AdminHandler{userSvc: userSvc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/create", ginx.B[CreateReq](h.Create))
	users.POST("/list", ginx.B[ListReq](h.List))
	users.POST("/detail", ginx.B[IdReq](h.Detail))
	users.POST("/update", ginx.B[User](h.Update))
	users.POST("/set-active", ginx.B[SetActiveReq](h.SetActive))
	users.POST("/delete", ginx.B[IdReq](h.Delete))
}

func (h *AdminHandler) Create(ctx *ginx.Context, req CreateReq) (ginx.Result, error) {
	id, err := h.userSvc.Register(ctx, req.User.toDomain(), req.Password)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	if req.Limit <= 0 {
		req.Limit = defaultPageSize
	}
	us, total, err := h.userSvc.List(ctx, domain.Role(req.Role), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: UserList{
			Total: total,
			Users: slice.Map(us, func(idx int, src domain.User) User {
				return newUser(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newUser(u)}, nil
}

func (h *AdminHandler) Update(ctx *ginx.Context, req User) (ginx.Result, error) {
	err := h.userSvc.UpdateProfile(ctx, req.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) SetActive(ctx *ginx.Context, req SetActiveReq) (ginx.Result, error) {
	err := h.userSvc.SetActive(ctx, req.Id, req.Active)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.userSvc.Delete(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
