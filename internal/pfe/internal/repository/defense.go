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

package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/domain"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/repository/dao"
)

//go:generate mockgen -source=./defense.go -package=repomocks -destination=./mocks/defense.mock.go -typed=false DefenseRepository
type DefenseRepository interface {
	// Propose 保存答辩以及评委，并且把项目改为 DEFENSE_SCHEDULED
	Propose(ctx context.Context, d domain.Defense) (int64, error)
	// Validate jury 为空的时候保留原来的评委
	Validate(ctx context.Context, d domain.Defense, from domain.DefenseStatus) error
	Modify(ctx context.Context, d domain.Defense, from domain.DefenseStatus) error
	// Reject 同时把项目退回 FINAL_SUBMISSION
	Reject(ctx context.Context, d domain.Defense, from domain.DefenseStatus) error
	// Evaluate 同时把项目改为 EVALUATED
	Evaluate(ctx context.Context, d domain.Defense) error
	ReplaceJury(ctx context.Context, did int64, jury []domain.JuryMember) error
	Delete(ctx context.Context, id int64) error

	FindById(ctx context.Context, id int64) (domain.Defense, error)
	FindByProject(ctx context.Context, pid int64) (domain.Defense, error)
	FindByProjects(ctx context.Context, pids []int64) ([]domain.Defense, error)
	Jury(ctx context.Context, did int64) ([]domain.JuryMember, error)
	FindByStatus(ctx context.Context, status domain.DefenseStatus) ([]domain.Defense, error)
	Upcoming(ctx context.Context, from string, limit int) ([]domain.Defense, error)
	CountUpcoming(ctx context.Context, from string) (int64, error)
	Range(ctx context.Context, start, end string) ([]domain.Defense, error)
	Evaluated(ctx context.Context) ([]domain.Defense, error)
	FindByRoomAndDate(ctx context.Context, room, date string) ([]domain.Defense, error)
	CountByStatus(ctx context.Context) (map[domain.DefenseStatus]int64, error)
}

type defenseRepository struct {
	dao dao.DefenseDAO
}

func NewDefenseRepository(d dao.DefenseDAO) DefenseRepository {
	return &defenseRepository{dao: d}
}

func (repo *defenseRepository) Propose(ctx context.Context, d domain.Defense) (int64, error) {
	return repo.dao.Propose(ctx, repo.toEntity(d), repo.juryToEntity(d.Jury))
}

func (repo *defenseRepository) Validate(ctx context.Context, d domain.Defense, from domain.DefenseStatus) error {
	fields := map[string]any{
		"status":       domain.DefenseStatusValidated.String(),
		"final_date":   d.Final.Date,
		"final_time":   d.Final.Time,
		"final_room":   d.Final.Room,
		"validated_at": time.Now().UnixMilli(),
		"validated_by": d.ValidatedBy,
	}
	if d.Notes != "" {
		fields["notes"] = d.Notes
	}
	return repo.dao.Apply(ctx, dao.DefenseTransition{
		Id:          d.Id,
		From:        from.String(),
		Fields:      fields,
		ReplaceJury: len(d.Jury) > 0,
		Jury:        repo.juryToEntity(d.Jury),
	})
}

func (repo *defenseRepository) Modify(ctx context.Context, d domain.Defense, from domain.DefenseStatus) error {
	return repo.dao.Apply(ctx, dao.DefenseTransition{
		Id:   d.Id,
		From: from.String(),
		Fields: map[string]any{
			"status":              domain.DefenseStatusModified.String(),
			"final_date":          d.Final.Date,
			"final_time":          d.Final.Time,
			"final_room":          d.Final.Room,
			"modification_reason": d.ModificationReason,
		},
		ReplaceJury: len(d.Jury) > 0,
		Jury:        repo.juryToEntity(d.Jury),
	})
}

func (repo *defenseRepository) Reject(ctx context.Context, d domain.Defense, from domain.DefenseStatus) error {
	return repo.dao.Apply(ctx, dao.DefenseTransition{
		Id:   d.Id,
		From: from.String(),
		Fields: map[string]any{
			"status":           domain.DefenseStatusRejected.String(),
			"rejection_reason": d.RejectionReason,
		},
		ProjectId:     d.ProjectId,
		ProjectStatus: domain.ProjectStatusFinalSubmission.String(),
	})
}

func (repo *defenseRepository) Evaluate(ctx context.Context, d domain.Defense) error {
	ev := d.Evaluation
	return repo.dao.Apply(ctx, dao.DefenseTransition{
		Id: d.Id,
		Fields: map[string]any{
			"presentation_quality": toNull(ev.PresentationQuality),
			"subject_mastery":      toNull(ev.SubjectMastery),
			"question_answers":     toNull(ev.QuestionAnswers),
			"time_respect":         toNull(ev.TimeRespect),
			"final_grade":          toNull(ev.FinalGrade),
			"evaluation_comments":  ev.Comments,
			"strengths":            ev.Strengths,
			"improvements":         ev.Improvements,
			"evaluated_at":         ev.EvaluatedAt,
			"evaluated_by":         ev.EvaluatedBy,
		},
		ProjectId:     d.ProjectId,
		ProjectStatus: domain.ProjectStatusEvaluated.String(),
	})
}

func (repo *defenseRepository) ReplaceJury(ctx context.Context, did int64, jury []domain.JuryMember) error {
	return repo.dao.ReplaceJury(ctx, did, repo.juryToEntity(jury))
}

func (repo *defenseRepository) Delete(ctx context.Context, id int64) error {
	return repo.dao.Delete(ctx, id)
}

func (repo *defenseRepository) FindById(ctx context.Context, id int64) (domain.Defense, error) {
	d, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.Defense{}, err
	}
	return repo.withJury(ctx, d)
}

func (repo *defenseRepository) FindByProject(ctx context.Context, pid int64) (domain.Defense, error) {
	d, err := repo.dao.FindByProject(ctx, pid)
	if err != nil {
		return domain.Defense{}, err
	}
	return repo.withJury(ctx, d)
}

func (repo *defenseRepository) withJury(ctx context.Context, d dao.Defense) (domain.Defense, error) {
	jury, err := repo.dao.Jury(ctx, d.Id)
	if err != nil {
		return domain.Defense{}, err
	}
	res := repo.toDomain(d)
	res.Jury = repo.juryToDomain(jury)
	return res, nil
}

func (repo *defenseRepository) FindByProjects(ctx context.Context, pids []int64) ([]domain.Defense, error) {
	return repo.list(ctx)(repo.dao.FindByProjects(ctx, pids))
}

func (repo *defenseRepository) Jury(ctx context.Context, did int64) ([]domain.JuryMember, error) {
	jury, err := repo.dao.Jury(ctx, did)
	return repo.juryToDomain(jury), err
}

func (repo *defenseRepository) FindByStatus(ctx context.Context, status domain.DefenseStatus) ([]domain.Defense, error) {
	return repo.list(ctx)(repo.dao.FindByStatus(ctx, status.String()))
}

func (repo *defenseRepository) Upcoming(ctx context.Context, from string, limit int) ([]domain.Defense, error) {
	return repo.list(ctx)(repo.dao.Upcoming(ctx, from, limit))
}

func (repo *defenseRepository) CountUpcoming(ctx context.Context, from string) (int64, error) {
	return repo.dao.CountUpcoming(ctx, from)
}

func (repo *defenseRepository) Range(ctx context.Context, start, end string) ([]domain.Defense, error) {
	return repo.list(ctx)(repo.dao.Range(ctx, start, end))
}

func (repo *defenseRepository) Evaluated(ctx context.Context) ([]domain.Defense, error) {
	return repo.list(ctx)(repo.dao.Evaluated(ctx))
}

func (repo *defenseRepository) FindByRoomAndDate(ctx context.Context, room, date string) ([]domain.Defense, error) {
	return repo.list(ctx)(repo.dao.FindByRoomAndDate(ctx, room, date))
}

func (repo *defenseRepository) CountByStatus(ctx context.Context) (map[domain.DefenseStatus]int64, error) {
	cnts, err := repo.dao.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	res := make(map[domain.DefenseStatus]int64, len(cnts))
	for _, c := range cnts {
		res[domain.DefenseStatus(c.Status)] = c.Cnt
	}
	return res, nil
}

// list 批量查询评委，然后组装
func (repo *defenseRepository) list(ctx context.Context) func([]dao.Defense, error) ([]domain.Defense, error) {
	return func(ds []dao.Defense, err error) ([]domain.Defense, error) {
		if err != nil {
			return nil, err
		}
		dids := slice.Map(ds, func(idx int, src dao.Defense) int64 {
			return src.Id
		})
		jury, err := repo.dao.JuryByDefenses(ctx, dids)
		if err != nil {
			return nil, err
		}
		juryMap := make(map[int64][]domain.JuryMember, len(ds))
		for _, j := range jury {
			juryMap[j.DefenseId] = append(juryMap[j.DefenseId], repo.juryMemberToDomain(j))
		}
		return slice.Map(ds, func(idx int, src dao.Defense) domain.Defense {
			res := repo.toDomain(src)
			res.Jury = juryMap[src.Id]
			return res
		}), nil
	}
}

func (repo *defenseRepository) toEntity(d domain.Defense) dao.Defense {
	return dao.Defense{
		Id:           d.Id,
		ProjectId:    d.ProjectId,
		ProposedDate: d.Proposed.Date,
		ProposedTime: d.Proposed.Time,
		ProposedRoom: d.Proposed.Room,
		FinalDate:    d.Final.Date,
		FinalTime:    d.Final.Time,
		FinalRoom:    d.Final.Room,
		Status:       d.Status.String(),
		Notes:        d.Notes,
	}
}

func (repo *defenseRepository) toDomain(d dao.Defense) domain.Defense {
	return domain.Defense{
		Id:        d.Id,
		ProjectId: d.ProjectId,
		Proposed: domain.Slot{
			Date: d.ProposedDate,
			Time: d.ProposedTime,
			Room: d.ProposedRoom,
		},
		Final: domain.Slot{
			Date: d.FinalDate,
			Time: d.FinalTime,
			Room: d.FinalRoom,
		},
		Status:             domain.DefenseStatus(d.Status),
		ProposedAt:         d.ProposedAt,
		ValidatedAt:        d.ValidatedAt,
		ValidatedBy:        d.ValidatedBy,
		RejectionReason:    d.RejectionReason,
		ModificationReason: d.ModificationReason,
		Notes:              d.Notes,
		Evaluation: domain.Evaluation{
			PresentationQuality: fromNull(d.PresentationQuality),
			SubjectMastery:      fromNull(d.SubjectMastery),
			QuestionAnswers:     fromNull(d.QuestionAnswers),
			TimeRespect:         fromNull(d.TimeRespect),
			FinalGrade:          fromNull(d.FinalGrade),
			Comments:            d.EvaluationComments,
			Strengths:           d.Strengths,
			Improvements:        d.Improvements,
			EvaluatedAt:         d.EvaluatedAt,
			EvaluatedBy:         d.EvaluatedBy,
		},
		Ctime: d.Ctime,
		Utime: d.Utime,
	}
}

func (repo *defenseRepository) juryToEntity(jury []domain.JuryMember) []dao.JuryMember {
	return slice.Map(jury, func(idx int, src domain.JuryMember) dao.JuryMember {
		return dao.JuryMember{
			Name:        src.Name,
			Email:       src.Email,
			Role:        string(src.Role),
			ProfessorId: src.ProfessorId,
		}
	})
}

func (repo *defenseRepository) juryToDomain(jury []dao.JuryMember) []domain.JuryMember {
	return slice.Map(jury, func(idx int, src dao.JuryMember) domain.JuryMember {
		return repo.juryMemberToDomain(src)
	})
}

func (repo *defenseRepository) juryMemberToDomain(j dao.JuryMember) domain.JuryMember {
	return domain.JuryMember{
		Id:          j.Id,
		DefenseId:   j.DefenseId,
		Name:        j.Name,
		Email:       j.Email,
		Role:        domain.JuryRole(j.Role),
		ProfessorId: j.ProfessorId,
	}
}

func toNull(v *float64) sql.Null[float64] {
	if v == nil {
		return sql.Null[float64]{}
	}
	return sql.Null[float64]{V: *v, Valid: true}
}

func fromNull(v sql.Null[float64]) *float64 {
	if !v.Valid {
		return nil
	}
	res := v.V
	return &res
}
