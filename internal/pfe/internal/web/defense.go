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
	"errors"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/domain"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/service"
	"github.com/ecodeclub/pfehub/internal/pkg/middleware"
	"github.com/ecodeclub/pfehub/internal/user"
	"github.com/gin-gonic/gin"
)

type DefenseHandler struct {
	svc        service.DefenseService
	projectSvc service.ProjectService
	roles      *middleware.CheckRoleMiddlewareBuilder
}

func NewDefenseHandler(svc service.DefenseService, projectSvc service.ProjectService) *DefenseHandler {
	return &DefenseHandler{
		svc:        svc,
		projectSvc: projectSvc,
		roles:      middleware.NewCheckRoleMiddlewareBuilder(),
	}
}

func (h *DefenseHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/pfe/defense")
	g.POST("/detail", ginx.BS[IdReq](validBS(h.Detail)))
	g.POST("/project", ginx.BS[IdReq](validBS(h.ByProject)))
	g.GET("/mine", ginx.S(h.Mine))
	g.POST("/upcoming", ginx.B[UpcomingReq](validB(h.Upcoming)))
	g.POST("/conflict", ginx.B[ConflictReq](validB(h.HasConflict)))

	prof := server.Group("/pfe/defense", h.roles.Build(user.RoleProfessor))
	prof.POST("/propose", ginx.BS[ProposeReq](validBS(h.Propose)))
	prof.POST("/evaluate", ginx.BS[EvaluateReq](validBS(h.Evaluate)))
}

// Propose 只有项目的导师可以提议答辩
func (h *DefenseHandler) Propose(ctx *ginx.Context, req ProposeReq, sess session.Session) (ginx.Result, error) {
	p, err := h.projectSvc.Detail(ctx, req.ProjectId)
	if err != nil {
		return errorResult(err)
	}
	if p.ProfessorId != sess.Claims().Uid {
		return permissionDeniedResult, nil
	}
	id, err := h.svc.Propose(ctx, req.ProjectId,
		domain.Slot{Date: req.Date, Time: req.Time, Room: req.Room},
		toJury(req.Jury), req.Notes)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *DefenseHandler) Evaluate(ctx *ginx.Context, req EvaluateReq, sess session.Session) (ginx.Result, error) {
	d, err := h.svc.Detail(ctx, req.Id)
	if err != nil {
		return errorResult(err)
	}
	p, err := h.projectSvc.Detail(ctx, d.ProjectId)
	if err != nil {
		return errorResult(err)
	}
	if p.ProfessorId != sess.Claims().Uid {
		return permissionDeniedResult, nil
	}
	err = h.svc.Evaluate(ctx, req.Id, req.Evaluation.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *DefenseHandler) Detail(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	d, err := h.svc.Detail(ctx, req.Id)
	if err != nil {
		return errorResult(err)
	}
	return h.visible(ctx, d, sess)
}

func (h *DefenseHandler) ByProject(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	d, err := h.svc.ByProject(ctx, req.Id)
	if err != nil {
		return errorResult(err)
	}
	return h.visible(ctx, d, sess)
}

func (h *DefenseHandler) visible(ctx *ginx.Context, d domain.Defense, sess session.Session) (ginx.Result, error) {
	p, err := h.projectSvc.Detail(ctx, d.ProjectId)
	if err != nil {
		return errorResult(err)
	}
	if !canView(p, sess) {
		return permissionDeniedResult, nil
	}
	return ginx.Result{Data: newDefense(d)}, nil
}

// Mine 学生看自己项目的答辩，导师看自己指导的所有答辩
func (h *DefenseHandler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	switch sessionRole(sess) {
	case user.RoleStudent:
		p, err := h.projectSvc.ByStudent(ctx, uid)
		if errors.Is(err, service.ErrNotFound) {
			return ginx.Result{Data: []Defense{}}, nil
		}
		if err != nil {
			return systemErrorResult, err
		}
		d, err := h.svc.ByProject(ctx, p.Id)
		if errors.Is(err, service.ErrNotFound) {
			return ginx.Result{Data: []Defense{}}, nil
		}
		if err != nil {
			return systemErrorResult, err
		}
		return ginx.Result{Data: []Defense{newDefense(d)}}, nil
	case user.RoleProfessor:
		ds, err := h.svc.ByProfessor(ctx, uid)
		if err != nil {
			return systemErrorResult, err
		}
		return ginx.Result{Data: newDefenses(ds)}, nil
	default:
		return ginx.Result{Data: []Defense{}}, nil
	}
}

func (h *DefenseHandler) Upcoming(ctx *ginx.Context, req UpcomingReq) (ginx.Result, error) {
	from := req.From
	if from == "" {
		from = time.Now().Format(domain.DateLayout)
	}
	ds, err := h.svc.Upcoming(ctx, from, req.Limit)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newDefenses(ds)}, nil
}

func (h *DefenseHandler) HasConflict(ctx *ginx.Context, req ConflictReq) (ginx.Result, error) {
	ok, err := h.svc.HasConflict(ctx, req.Room, req.Date, req.Time)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: ok}, nil
}
