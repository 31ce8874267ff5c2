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
	"github.com/ecodeclub/pfehub/internal/pfe/internal/domain"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 挂在管理后台上，角色校验在 admin server 上统一完成
type AdminHandler struct {
	projectSvc   service.ProjectService
	recommendSvc service.RecommendService
	defenseSvc   service.DefenseService
}

func NewAdminHandler(projectSvc service.ProjectService,
	recommendSvc service.RecommendService,
	defenseSvc service.DefenseService) *AdminHandler {
	return &AdminHandler{
		projectSvc:   projectSvc,
		recommendSvc: recommendSvc,
		defenseSvc:   defenseSvc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	p := server.Group("/pfe/project")
	p.POST("/list", ginx.B[ListReq](validB(h.List)))
	p.POST("/detail", ginx.B[IdReq](validB(h.Detail)))
	p.POST("/delete", ginx.B[IdReq](validB(h.Delete)))
	p.POST("/recent", ginx.B[RecentReq](validB(h.Recent)))
	p.GET("/stats", ginx.W(h.ProjectStats))
	p.POST("/recommend", ginx.B[IdReq](validB(h.Recommend)))
	p.POST("/professor/available", ginx.B[AvailableReq](validB(h.AvailableProfessors)))
	p.POST("/assign", ginx.B[AssignReq](validB(h.Assign)))

	d := server.Group("/pfe/defense")
	d.GET("/pending", ginx.W(h.PendingDefenses))
	d.POST("/detail", ginx.B[IdReq](validB(h.DefenseDetail)))
	d.POST("/validate", ginx.BS[ValidateReq](validBS(h.Validate)))
	d.POST("/modify", ginx.B[ModifyReq](validB(h.Modify)))
	d.POST("/reject", ginx.B[RejectDefenseReq](validB(h.RejectDefense)))
	d.POST("/evaluate", ginx.B[EvaluateReq](validB(h.Evaluate)))
	d.POST("/jury", ginx.B[IdReq](validB(h.Jury)))
	d.POST("/jury/update", ginx.B[JuryReq](validB(h.UpdateJury)))
	d.POST("/delete", ginx.B[IdReq](validB(h.DeleteDefense)))
	d.POST("/range", ginx.B[RangeReq](validB(h.Range)))
	d.POST("/room", ginx.B[RoomDateReq](validB(h.ByRoomAndDate)))
	d.POST("/conflict", ginx.B[ConflictReq](validB(h.HasConflict)))
	d.GET("/evaluated", ginx.W(h.Evaluated))
	d.GET("/stats", ginx.W(h.DefenseStats))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	ps, total, err := h.projectSvc.List(ctx, domain.ProjectStatus(req.Status), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProjectList{
			Total:    total,
			Projects: newProjects(ps),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	p, err := h.projectSvc.Detail(ctx, req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newProject(p)}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.projectSvc.Delete(ctx, req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Recent(ctx *ginx.Context, req RecentReq) (ginx.Result, error) {
	ps, err := h.projectSvc.Recent(ctx, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProjects(ps)}, nil
}

func (h *AdminHandler) ProjectStats(ctx *ginx.Context) (ginx.Result, error) {
	s, err := h.projectSvc.Stats(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProjectStats(s)}, nil
}

func (h *AdminHandler) Recommend(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	rs, err := h.recommendSvc.Recommend(ctx, req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: slice.Map(rs, func(idx int, src domain.Recommendation) Recommendation {
			return Recommendation{
				ProfessorId: src.ProfessorId,
				Name:        src.Name,
				Email:       src.Email,
				Score:       src.Score,
				CurrentLoad: src.CurrentLoad,
				MaxCapacity: src.MaxCapacity,
				Expertise:   src.Expertise,
				Reason:      src.Reason,
			}
		}),
	}, nil
}

func (h *AdminHandler) AvailableProfessors(ctx *ginx.Context, req AvailableReq) (ginx.Result, error) {
	cs, err := h.recommendSvc.AvailableProfessors(ctx, req.SpecializationId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(cs, func(idx int, src domain.Candidate) Professor {
			return Professor{
				Id:               src.ProfessorId,
				Name:             src.Name,
				Email:            src.Email,
				DepartmentId:     src.DepartmentId,
				SpecializationId: src.SpecializationId,
				Expertise:        src.Expertise,
				CurrentLoad:      src.Load,
				MaxCapacity:      src.Capacity,
			}
		}),
	}, nil
}

func (h *AdminHandler) Assign(ctx *ginx.Context, req AssignReq) (ginx.Result, error) {
	err := h.projectSvc.Assign(ctx, req.Pid, req.ProfessorId, req.Comments)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) PendingDefenses(ctx *ginx.Context) (ginx.Result, error) {
	ds, err := h.defenseSvc.Pending(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newDefenses(ds)}, nil
}

func (h *AdminHandler) DefenseDetail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	d, err := h.defenseSvc.Detail(ctx, req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newDefense(d)}, nil
}

func (h *AdminHandler) Validate(ctx *ginx.Context, req ValidateReq, sess session.Session) (ginx.Result, error) {
	err := h.defenseSvc.Validate(ctx, req.Id,
		domain.Slot{Date: req.Date, Time: req.Time, Room: req.Room},
		toJury(req.Jury), req.Notes, sess.Claims().Uid)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Modify(ctx *ginx.Context, req ModifyReq) (ginx.Result, error) {
	err := h.defenseSvc.Modify(ctx, req.Id,
		domain.Slot{Date: req.Date, Time: req.Time, Room: req.Room},
		req.Reason, toJury(req.Jury))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) RejectDefense(ctx *ginx.Context, req RejectDefenseReq) (ginx.Result, error) {
	err := h.defenseSvc.Reject(ctx, req.Id, req.Reason)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Evaluate(ctx *ginx.Context, req EvaluateReq) (ginx.Result, error) {
	err := h.defenseSvc.Evaluate(ctx, req.Id, req.Evaluation.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Jury(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	ms, err := h.defenseSvc.Jury(ctx, req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newJury(ms)}, nil
}

func (h *AdminHandler) UpdateJury(ctx *ginx.Context, req JuryReq) (ginx.Result, error) {
	err := h.defenseSvc.UpdateJury(ctx, req.Id, toJury(req.Jury))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) DeleteDefense(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.defenseSvc.Delete(ctx, req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Range(ctx *ginx.Context, req RangeReq) (ginx.Result, error) {
	ds, err := h.defenseSvc.Range(ctx, req.Start, req.End)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newDefenses(ds)}, nil
}

func (h *AdminHandler) ByRoomAndDate(ctx *ginx.Context, req RoomDateReq) (ginx.Result, error) {
	ds, err := h.defenseSvc.ByRoomAndDate(ctx, req.Room, req.Date)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newDefenses(ds)}, nil
}

func (h *AdminHandler) HasConflict(ctx *ginx.Context, req ConflictReq) (ginx.Result, error) {
	ok, err := h.defenseSvc.HasConflict(ctx, req.Room, req.Date, req.Time)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: ok}, nil
}

func (h *AdminHandler) Evaluated(ctx *ginx.Context) (ginx.Result, error) {
	ds, err := h.defenseSvc.Evaluated(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newDefenses(ds)}, nil
}

func (h *AdminHandler) DefenseStats(ctx *ginx.Context) (ginx.Result, error) {
	s, err := h.defenseSvc.Stats(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	res := DefenseStats{
		ByStatus: make(map[string]int64, len(s.ByStatus)),
		Upcoming: s.Upcoming,
	}
	for st, cnt := range s.ByStatus {
		res.ByStatus[st.String()] = cnt
	}
	return ginx.Result{Data: res}, nil
}
