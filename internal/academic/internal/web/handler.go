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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/pfehub/internal/academic/internal/domain"
	"github.com/ecodeclub/pfehub/internal/academic/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler 登录用户都可以查看的参考数据
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/academic")
	g.GET("/department/list", ginx.W(h.Departments))
	g.POST("/specialization/list", ginx.B[SpecializationListReq](h.Specializations))
	g.GET("/year/list", ginx.W(h.Years))
	g.GET("/year/current", ginx.W(h.CurrentYear))
}

func (h *Handler) Departments(ctx *ginx.Context) (ginx.Result, error) {
	ds, err := h.svc.Departments(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(ds, func(idx int, src domain.Department) Department {
			return newDepartment(src)
		}),
	}, nil
}

func (h *Handler) Specializations(ctx *ginx.Context, req SpecializationListReq) (ginx.Result, error) {
	ss, err := h.svc.Specializations(ctx, req.DepartmentId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(ss, func(idx int, src domain.Specialization) Specialization {
			return newSpecialization(src)
		}),
	}, nil
}

func (h *Handler) Years(ctx *ginx.Context) (ginx.Result, error) {
	ys, err := h.svc.Years(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	now := time.Now()
	return ginx.Result{
		Data: slice.Map(ys, func(idx int, src domain.AcademicYear) AcademicYear {
			return newAcademicYear(src, now)
		}),
	}, nil
}

func (h *Handler) CurrentYear(ctx *ginx.Context) (ginx.Result, error) {
	y, err := h.svc.CurrentYear(ctx)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: newAcademicYear(y, time.Now()),
	}, nil
}
