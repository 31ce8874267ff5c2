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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/pfehub/internal/academic/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/academic")
	g.POST("/department/save", ginx.B[Department](h.SaveDepartment))
	g.POST("/department/delete", ginx.B[IdReq](h.DeleteDepartment))
	g.POST("/specialization/save", ginx.B[Specialization](h.SaveSpecialization))
	g.POST("/specialization/delete", ginx.B[IdReq](h.DeleteSpecialization))
	g.POST("/year/save", ginx.B[AcademicYear](h.SaveYear))
	g.POST("/year/delete", ginx.B[IdReq](h.DeleteYear))
	g.POST("/year/set-current", ginx.B[IdReq](h.SetCurrentYear))
}

func (h *AdminHandler) SaveDepartment(ctx *ginx.Context, req Department) (ginx.Result, error) {
	id, err := h.svc.SaveDepartment(ctx, req.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) DeleteDepartment(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.DeleteDepartment(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) SaveSpecialization(ctx *ginx.Context, req Specialization) (ginx.Result, error) {
	id, err := h.svc.SaveSpecialization(ctx, req.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) DeleteSpecialization(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.DeleteSpecialization(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) SaveYear(ctx *ginx.Context, req AcademicYear) (ginx.Result, error) {
	id, err := h.svc.SaveYear(ctx, req.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) DeleteYear(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.DeleteYear(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) SetCurrentYear(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.SetCurrentYear(ctx, req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}
