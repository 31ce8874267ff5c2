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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/domain"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/repository/dao"
	"github.com/ecodeclub/pfehub/internal/user"
)

var (
	ErrRecordNotFound   = dao.ErrRecordNotFound
	ErrDuplicateProject = dao.ErrDuplicateProject
	ErrStatusChanged    = dao.ErrStatusChanged
	ErrCapacityExceed   = dao.ErrCapacityExceed
	ErrDefenseExists    = dao.ErrDefenseExists
)

//go:generate mockgen -source=./project.go -package=repomocks -destination=./mocks/project.mock.go -typed=false ProjectRepository
type ProjectRepository interface {
	Create(ctx context.Context, p domain.Project) (int64, error)
	Update(ctx context.Context, p domain.Project) error
	FindById(ctx context.Context, id int64) (domain.Project, error)
	FindByStudent(ctx context.Context, sid int64) (domain.Project, error)
	FindByProfessor(ctx context.Context, pid int64) ([]domain.Project, error)
	List(ctx context.Context, status domain.ProjectStatus, offset, limit int) ([]domain.Project, error)
	Count(ctx context.Context, status domain.ProjectStatus) (int64, error)
	Recent(ctx context.Context, limit int) ([]domain.Project, error)
	CountByStatus(ctx context.Context) (map[domain.ProjectStatus]int64, error)
	// ProfessorLoads 教授 id 到当前指导的项目数量
	ProfessorLoads(ctx context.Context) (map[int64]int, error)
	Assign(ctx context.Context, id, professorId int64, capacity int, comments string,
		from []domain.ProjectStatus) error
	// Transit 评语、拒绝原因以及时间戳只在非零值的时候写入
	Transit(ctx context.Context, p domain.Project, from []domain.ProjectStatus) error
	Delete(ctx context.Context, id int64) error

	AddDeliverable(ctx context.Context, d domain.Deliverable) (int64, error)
	Deliverable(ctx context.Context, id int64) (domain.Deliverable, error)
	Deliverables(ctx context.Context, pid int64) ([]domain.Deliverable, error)
	DeleteDeliverable(ctx context.Context, pid, id int64) error
}

type projectRepository struct {
	dao  dao.ProjectDAO
	ddao dao.DeliverableDAO
}

func NewProjectRepository(d dao.ProjectDAO, ddao dao.DeliverableDAO) ProjectRepository {
	return &projectRepository{dao: d, ddao: ddao}
}

func (repo *projectRepository) Create(ctx context.Context, p domain.Project) (int64, error) {
	return repo.dao.Create(ctx, repo.toEntity(p))
}

func (repo *projectRepository) Update(ctx context.Context, p domain.Project) error {
	return repo.dao.Update(ctx, repo.toEntity(p))
}

func (repo *projectRepository) FindById(ctx context.Context, id int64) (domain.Project, error) {
	p, err := repo.dao.FindById(ctx, id)
	return repo.toDomain(p), err
}

func (repo *projectRepository) FindByStudent(ctx context.Context, sid int64) (domain.Project, error) {
	p, err := repo.dao.FindByStudent(ctx, sid)
	return repo.toDomain(p), err
}

func (repo *projectRepository) FindByProfessor(ctx context.Context, pid int64) ([]domain.Project, error) {
	ps, err := repo.dao.FindByProfessor(ctx, pid)
	return slice.Map(ps, func(idx int, src dao.Project) domain.Project {
		return repo.toDomain(src)
	}), err
}

func (repo *projectRepository) List(ctx context.Context, status domain.ProjectStatus, offset, limit int) ([]domain.Project, error) {
	ps, err := repo.dao.List(ctx, status.String(), offset, limit)
	return slice.Map(ps, func(idx int, src dao.Project) domain.Project {
		return repo.toDomain(src)
	}), err
}

func (repo *projectRepository) Count(ctx context.Context, status domain.ProjectStatus) (int64, error) {
	return repo.dao.Count(ctx, status.String())
}

func (repo *projectRepository) Recent(ctx context.Context, limit int) ([]domain.Project, error) {
	ps, err := repo.dao.Recent(ctx, limit)
	return slice.Map(ps, func(idx int, src dao.Project) domain.Project {
		return repo.toDomain(src)
	}), err
}

func (repo *projectRepository) CountByStatus(ctx context.Context) (map[domain.ProjectStatus]int64, error) {
	cnts, err := repo.dao.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	res := make(map[domain.ProjectStatus]int64, len(cnts))
	for _, c := range cnts {
		res[domain.ProjectStatus(c.Status)] = c.Cnt
	}
	return res, nil
}

func (repo *projectRepository) ProfessorLoads(ctx context.Context) (map[int64]int, error) {
	loads, err := repo.dao.ProfessorLoads(ctx)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]int, len(loads))
	for _, l := range loads {
		res[l.ProfessorId] = int(l.Cnt)
	}
	return res, nil
}

func (repo *projectRepository) Assign(ctx context.Context, id, professorId int64,
	capacity int, comments string, from []domain.ProjectStatus) error {
	return repo.dao.Assign(ctx, id, professorId, capacity, comments, statusStrings(from))
}

func (repo *projectRepository) Transit(ctx context.Context, p domain.Project, from []domain.ProjectStatus) error {
	fields := make(map[string]any, 4)
	if p.ProfessorComments != "" {
		fields["professor_comments"] = p.ProfessorComments
	}
	if p.RejectionReason != "" {
		fields["rejection_reason"] = p.RejectionReason
	}
	if p.AcceptedAt > 0 {
		fields["accepted_at"] = p.AcceptedAt
	}
	if p.FinalSubmittedAt > 0 {
		fields["final_submitted_at"] = p.FinalSubmittedAt
	}
	return repo.dao.Transit(ctx, p.Id, statusStrings(from), p.Status.String(), fields)
}

func (repo *projectRepository) Delete(ctx context.Context, id int64) error {
	return repo.dao.Delete(ctx, id)
}

func (repo *projectRepository) AddDeliverable(ctx context.Context, d domain.Deliverable) (int64, error) {
	return repo.ddao.Create(ctx, dao.Deliverable{
		ProjectId:   d.ProjectId,
		Title:       d.Title,
		Description: d.Description,
		Type:        string(d.Type),
		FileURL:     d.FileURL,
		Notes:       d.Notes,
		SubmittedAt: d.SubmittedAt,
	})
}

func (repo *projectRepository) Deliverable(ctx context.Context, id int64) (domain.Deliverable, error) {
	d, err := repo.ddao.FindById(ctx, id)
	return repo.deliverableToDomain(d), err
}

func (repo *projectRepository) Deliverables(ctx context.Context, pid int64) ([]domain.Deliverable, error) {
	ds, err := repo.ddao.FindByProject(ctx, pid)
	return slice.Map(ds, func(idx int, src dao.Deliverable) domain.Deliverable {
		return repo.deliverableToDomain(src)
	}), err
}

func (repo *projectRepository) DeleteDeliverable(ctx context.Context, pid, id int64) error {
	return repo.ddao.Delete(ctx, pid, id)
}

func (repo *projectRepository) deliverableToDomain(d dao.Deliverable) domain.Deliverable {
	return domain.Deliverable{
		Id:          d.Id,
		ProjectId:   d.ProjectId,
		Title:       d.Title,
		Description: d.Description,
		Type:        domain.DeliverableType(d.Type),
		FileURL:     d.FileURL,
		Notes:       d.Notes,
		SubmittedAt: d.SubmittedAt,
	}
}

func (repo *projectRepository) toEntity(p domain.Project) dao.Project {
	return dao.Project{
		Id:                p.Id,
		SN:                p.SN,
		Title:             p.Title,
		Description:       p.Description,
		Objectives:        p.Objectives,
		Context:           p.Context,
		Methodology:       p.Methodology,
		ExpectedResults:   p.ExpectedResults,
		Keywords:          user.JoinTags(p.Keywords),
		Status:            p.Status.String(),
		StudentId:         p.StudentId,
		ProfessorId:       p.ProfessorId,
		AcademicYearId:    p.AcademicYearId,
		ProposalFileURL:   p.ProposalFileURL,
		ProfessorComments: p.ProfessorComments,
		RejectionReason:   p.RejectionReason,
		SubmittedAt:       p.SubmittedAt,
		AssignedAt:        p.AssignedAt,
		AcceptedAt:        p.AcceptedAt,
		FinalSubmittedAt:  p.FinalSubmittedAt,
	}
}

func (repo *projectRepository) toDomain(p dao.Project) domain.Project {
	return domain.Project{
		Id:                p.Id,
		SN:                p.SN,
		Title:             p.Title,
		Description:       p.Description,
		Objectives:        p.Objectives,
		Context:           p.Context,
		Methodology:       p.Methodology,
		ExpectedResults:   p.ExpectedResults,
		Keywords:          user.SplitTags(p.Keywords),
		Status:            domain.ProjectStatus(p.Status),
		StudentId:         p.StudentId,
		ProfessorId:       p.ProfessorId,
		AcademicYearId:    p.AcademicYearId,
		ProposalFileURL:   p.ProposalFileURL,
		ProfessorComments: p.ProfessorComments,
		RejectionReason:   p.RejectionReason,
		SubmittedAt:       p.SubmittedAt,
		AssignedAt:        p.AssignedAt,
		AcceptedAt:        p.AcceptedAt,
		FinalSubmittedAt:  p.FinalSubmittedAt,
		Ctime:             p.Ctime,
		Utime:             p.Utime,
	}
}

func statusStrings(from []domain.ProjectStatus) []string {
	return slice.Map(from, func(idx int, src domain.ProjectStatus) string {
		return src.String()
	})
}
