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
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/domain"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/service"
	"github.com/ecodeclub/pfehub/internal/pkg/middleware"
	"github.com/ecodeclub/pfehub/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// Handler 学生和导师使用的项目接口
type Handler struct {
	svc    service.ProjectService
	roles  *middleware.CheckRoleMiddlewareBuilder
	logger *elog.Component
}

func NewHandler(svc service.ProjectService) *Handler {
	return &Handler{
		svc:    svc,
		roles:  middleware.NewCheckRoleMiddlewareBuilder(),
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/pfe/project")
	g.POST("/detail", ginx.BS[IdReq](validBS(h.Detail)))
	g.POST("/deliverable/list", ginx.BS[IdReq](validBS(h.Deliverables)))

	stu := server.Group("/pfe/project", h.roles.Build(user.RoleStudent))
	stu.POST("/submit", ginx.BS[SubmitProjectReq](validBS(h.Submit)))
	stu.POST("/update", ginx.BS[UpdateProjectReq](validBS(h.Update)))
	stu.GET("/mine", ginx.S(h.Mine))
	stu.POST("/final", ginx.BS[IdReq](validBS(h.SubmitFinal)))
	stu.POST("/deliverable/add", ginx.BS[Deliverable](validBS(h.AddDeliverable)))
	stu.POST("/deliverable/delete", ginx.BS[DeleteDeliverableReq](validBS(h.DeleteDeliverable)))

	prof := server.Group("/pfe/project", h.roles.Build(user.RoleProfessor))
	prof.GET("/supervised", ginx.S(h.Supervised))
	prof.POST("/accept", ginx.BS[ReviewReq](validBS(h.Accept)))
	prof.POST("/reject", ginx.BS[RejectProjectReq](validBS(h.Reject)))
	prof.POST("/revision", ginx.BS[ReviewReq](validBS(h.RequestRevision)))
	prof.POST("/start", ginx.BS[ReviewReq](validBS(h.Start)))
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitProjectReq, sess session.Session) (ginx.Result, error) {
	p := req.toDomain()
	p.StudentId = sess.Claims().Uid
	id, err := h.svc.Submit(ctx, p)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req UpdateProjectReq, sess session.Session) (ginx.Result, error) {
	p := req.toDomain()
	p.StudentId = sess.Claims().Uid
	err := h.svc.Update(ctx, p)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.ByStudent(ctx, sess.Claims().Uid)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newProject(p)}, nil
}

// Detail 学生只能看自己的，导师只能看自己指导的
func (h *Handler) Detail(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx, req.Id)
	if err != nil {
		return errorResult(err)
	}
	if !canView(p, sess) {
		return permissionDeniedResult, nil
	}
	return ginx.Result{Data: newProject(p)}, nil
}

func (h *Handler) SubmitFinal(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.SubmitFinal(ctx, req.Id, sess.Claims().Uid)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) AddDeliverable(ctx *ginx.Context, req Deliverable, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.AddDeliverable(ctx, sess.Claims().Uid, req.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) Deliverables(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx, req.Id)
	if err != nil {
		return errorResult(err)
	}
	if !canView(p, sess) {
		return permissionDeniedResult, nil
	}
	ds, err := h.svc.Deliverables(ctx, req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newDeliverables(ds)}, nil
}

func (h *Handler) DeleteDeliverable(ctx *ginx.Context, req DeleteDeliverableReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.DeleteDeliverable(ctx, sess.Claims().Uid, req.ProjectId, req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Supervised(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	ps, err := h.svc.ByProfessor(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProjects(ps)}, nil
}

func (h *Handler) Accept(ctx *ginx.Context, req ReviewReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Accept(ctx, req.Pid, sess.Claims().Uid, req.Comments)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Reject(ctx *ginx.Context, req RejectProjectReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Reject(ctx, req.Pid, sess.Claims().Uid, req.Reason, req.Comments)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) RequestRevision(ctx *ginx.Context, req ReviewReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.RequestRevision(ctx, req.Pid, sess.Claims().Uid, req.Comments)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Start(ctx *ginx.Context, req ReviewReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Start(ctx, req.Pid, sess.Claims().Uid)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func sessionRole(sess session.Session) user.Role {
	return user.Role(sess.Claims().Get(user.RoleClaim).StringOrDefault(""))
}

func canView(p domain.Project, sess session.Session) bool {
	uid := sess.Claims().Uid
	switch sessionRole(sess) {
	case user.RoleAdmin:
		return true
	case user.RoleStudent:
		return p.StudentId == uid
	case user.RoleProfessor:
		return p.ProfessorId == uid
	default:
		return false
	}
}
