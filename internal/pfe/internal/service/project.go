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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pfehub/internal/academic"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/domain"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/event"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/repository"
	"github.com/ecodeclub/pfehub/internal/pkg/sngenerator"
	"github.com/ecodeclub/pfehub/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNotFound         = errors.New("数据不存在")
	ErrConflict         = errors.New("状态冲突")
	ErrValidation       = errors.New("参数错误")
	ErrPermissionDenied = errors.New("没有权限")
)

var projectSN = sngenerator.New("PFE")

// defaultLimit 分页和列表不传 limit 时的默认值
const defaultLimit = 20

// 学生可以修改项目内容的状态
var editableStatuses = []domain.ProjectStatus{
	domain.ProjectStatusPendingAssignment,
	domain.ProjectStatusUnderReview,
	domain.ProjectStatusRejected,
}

//go:generate mockgen -source=./project.go -package=pfemocks -destination=../../mocks/project.mock.go -typed=false ProjectService
type ProjectService interface {
	// Submit 学生提交项目，每个学生只能有一个
	Submit(ctx context.Context, p domain.Project) (int64, error)
	// Update 只有学生本人在导师接受之前可以修改，空字段保持不变
	Update(ctx context.Context, p domain.Project) error
	Detail(ctx context.Context, id int64) (domain.Project, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, status domain.ProjectStatus, offset, limit int) ([]domain.Project, int64, error)
	ByStudent(ctx context.Context, sid int64) (domain.Project, error)
	ByProfessor(ctx context.Context, pid int64) ([]domain.Project, error)
	Recent(ctx context.Context, limit int) ([]domain.Project, error)
	Stats(ctx context.Context) (domain.ProjectStats, error)

	Assign(ctx context.Context, pid, professorId int64, comments string) error
	Accept(ctx context.Context, pid, professorId int64, comments string) error
	Reject(ctx context.Context, pid, professorId int64, reason, comments string) error
	RequestRevision(ctx context.Context, pid, professorId int64, comments string) error
	Start(ctx context.Context, pid, professorId int64) error
	SubmitFinal(ctx context.Context, pid, studentId int64) error

	AddDeliverable(ctx context.Context, studentId int64, d domain.Deliverable) (int64, error)
	Deliverables(ctx context.Context, pid int64) ([]domain.Deliverable, error)
	DeleteDeliverable(ctx context.Context, studentId, pid, id int64) error
}

type projectService struct {
	repo        repository.ProjectRepository
	userSvc     user.Service
	academicSvc academic.Service
	producer    event.ProjectEventProducer
	logger      *elog.Component
}

func NewProjectService(repo repository.ProjectRepository,
	userSvc user.Service,
	academicSvc academic.Service,
	p event.ProjectEventProducer) ProjectService {
	return &projectService{
		repo:        repo,
		userSvc:     userSvc,
		academicSvc: academicSvc,
		producer:    p,
		logger:      elog.DefaultLogger,
	}
}

func (svc *projectService) Submit(ctx context.Context, p domain.Project) (int64, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" || p.StudentId <= 0 {
		return 0, fmt.Errorf("%w: 标题不能为空", ErrValidation)
	}
	stu, err := svc.userSvc.Profile(ctx, p.StudentId)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return 0, fmt.Errorf("%w: 学生 %d 不存在", ErrNotFound, p.StudentId)
		}
		return 0, err
	}
	if stu.Role != user.RoleStudent {
		return 0, fmt.Errorf("%w: 只有学生可以提交项目", ErrValidation)
	}
	year, err := svc.submissionYear(ctx, stu)
	if err != nil {
		return 0, err
	}
	now := time.Now()
	p.AcademicYearId = year.Id
	p.SN = projectSN.Generate(p.StudentId)
	p.Status = domain.ProjectStatusPendingAssignment
	p.ProfessorId = 0
	p.SubmittedAt = now.UnixMilli()
	id, err := svc.repo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateProject) {
			return 0, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		return 0, err
	}
	p.Id = id
	svc.produce(ctx, event.ProjectActionSubmitted, p)
	return id, nil
}

// submissionYear 优先使用学生的学年，否则使用当前学年，设置了提交期的学年只能在提交期内提交
func (svc *projectService) submissionYear(ctx context.Context, stu user.User) (academic.AcademicYear, error) {
	var (
		year academic.AcademicYear
		err  error
	)
	if stu.Student != nil && stu.Student.AcademicYearId > 0 {
		year, err = svc.academicSvc.Year(ctx, stu.Student.AcademicYearId)
	} else {
		year, err = svc.academicSvc.CurrentYear(ctx)
	}
	if errors.Is(err, academic.ErrNotFound) {
		return academic.AcademicYear{}, nil
	}
	if err != nil {
		return academic.AcademicYear{}, err
	}
	if year.SubmissionStart != "" && year.SubmissionEnd != "" &&
		!year.SubmissionPeriodActive(time.Now()) {
		return academic.AcademicYear{}, fmt.Errorf("%w: 不在 %s 学年的提交期内", ErrValidation, year.Year)
	}
	return year, nil
}

func (svc *projectService) Update(ctx context.Context, p domain.Project) error {
	old, err := svc.Detail(ctx, p.Id)
	if err != nil {
		return err
	}
	if old.StudentId != p.StudentId {
		return fmt.Errorf("%w: 只能修改自己的项目", ErrPermissionDenied)
	}
	if !slice.Contains(editableStatuses, old.Status) {
		return fmt.Errorf("%w: 项目状态 %s 不允许修改", ErrConflict, old.Status)
	}
	err = svc.repo.Update(ctx, p)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("%w: 项目 %d", ErrNotFound, p.Id)
	}
	return err
}

func (svc *projectService) Detail(ctx context.Context, id int64) (domain.Project, error) {
	p, err := svc.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Project{}, fmt.Errorf("%w: 项目 %d", ErrNotFound, id)
	}
	return p, err
}

func (svc *projectService) Delete(ctx context.Context, id int64) error {
	if _, err := svc.Detail(ctx, id); err != nil {
		return err
	}
	return svc.repo.Delete(ctx, id)
}

func (svc *projectService) List(ctx context.Context, status domain.ProjectStatus,
	offset, limit int) ([]domain.Project, int64, error) {
	var (
		eg    errgroup.Group
		ps    []domain.Project
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = svc.repo.List(ctx, status, offset, limitOrDefault(limit))
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = svc.repo.Count(ctx, status)
		return err
	})
	return ps, total, eg.Wait()
}

func (svc *projectService) ByStudent(ctx context.Context, sid int64) (domain.Project, error) {
	p, err := svc.repo.FindByStudent(ctx, sid)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Project{}, fmt.Errorf("%w: 学生 %d 还没有提交项目", ErrNotFound, sid)
	}
	return p, err
}

func (svc *projectService) ByProfessor(ctx context.Context, pid int64) ([]domain.Project, error) {
	return svc.repo.FindByProfessor(ctx, pid)
}

func (svc *projectService) Recent(ctx context.Context, limit int) ([]domain.Project, error) {
	return svc.repo.Recent(ctx, limitOrDefault(limit))
}

func (svc *projectService) Stats(ctx context.Context) (domain.ProjectStats, error) {
	cnts, err := svc.repo.CountByStatus(ctx)
	if err != nil {
		return domain.ProjectStats{}, err
	}
	res := domain.ProjectStats{ByStatus: cnts}
	for _, c := range cnts {
		res.Total += c
	}
	return res, nil
}

func (svc *projectService) Assign(ctx context.Context, pid, professorId int64, comments string) error {
	p, err := svc.Detail(ctx, pid)
	if err != nil {
		return err
	}
	prof, err := svc.professor(ctx, professorId)
	if err != nil {
		return err
	}
	if !p.Status.CanTransitTo(domain.ProjectStatusUnderReview) ||
		p.Status == domain.ProjectStatusUnderReview && p.ProfessorId == professorId {
		return fmt.Errorf("%w: 项目状态 %s 不能分配导师", ErrConflict, p.Status)
	}
	err = svc.repo.Assign(ctx, pid, professorId, prof.Professor.MaxCapacity, comments,
		[]domain.ProjectStatus{p.Status})
	if err != nil {
		return svc.transitErr(err, pid)
	}
	p.ProfessorId = professorId
	p.Status = domain.ProjectStatusUnderReview
	svc.produce(ctx, event.ProjectActionAssigned, p)
	return nil
}

func (svc *projectService) professor(ctx context.Context, id int64) (user.User, error) {
	prof, err := svc.userSvc.Profile(ctx, id)
	if errors.Is(err, user.ErrNotFound) || err == nil && prof.Professor == nil {
		return user.User{}, fmt.Errorf("%w: 教授 %d", ErrNotFound, id)
	}
	if err != nil {
		return user.User{}, err
	}
	if !prof.Active {
		return user.User{}, fmt.Errorf("%w: 教授 %d 已停用", ErrValidation, id)
	}
	return prof, nil
}

func (svc *projectService) Accept(ctx context.Context, pid, professorId int64, comments string) error {
	return svc.review(ctx, pid, professorId, domain.Project{
		Status:            domain.ProjectStatusAccepted,
		ProfessorComments: comments,
		AcceptedAt:        time.Now().UnixMilli(),
	}, event.ProjectActionAccepted)
}

func (svc *projectService) Reject(ctx context.Context, pid, professorId int64, reason, comments string) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: 拒绝原因不能为空", ErrValidation)
	}
	return svc.review(ctx, pid, professorId, domain.Project{
		Status:            domain.ProjectStatusRejected,
		ProfessorComments: comments,
		RejectionReason:   reason,
	}, event.ProjectActionRejected)
}

func (svc *projectService) RequestRevision(ctx context.Context, pid, professorId int64, comments string) error {
	if strings.TrimSpace(comments) == "" {
		return fmt.Errorf("%w: 修改意见不能为空", ErrValidation)
	}
	return svc.review(ctx, pid, professorId, domain.Project{
		Status:            domain.ProjectStatusUnderReview,
		ProfessorComments: comments,
	}, event.ProjectActionRevision)
}

func (svc *projectService) Start(ctx context.Context, pid, professorId int64) error {
	return svc.review(ctx, pid, professorId, domain.Project{
		Status: domain.ProjectStatusInProgress,
	}, "")
}

// review 导师对自己指导的项目做状态变更
func (svc *projectService) review(ctx context.Context, pid, professorId int64,
	change domain.Project, action string) error {
	p, err := svc.Detail(ctx, pid)
	if err != nil {
		return err
	}
	if p.ProfessorId != professorId {
		return fmt.Errorf("%w: 不是项目 %d 的导师", ErrPermissionDenied, pid)
	}
	return svc.transit(ctx, p, change, action)
}

func (svc *projectService) SubmitFinal(ctx context.Context, pid, studentId int64) error {
	p, err := svc.Detail(ctx, pid)
	if err != nil {
		return err
	}
	if p.StudentId != studentId {
		return fmt.Errorf("%w: 只能提交自己的项目", ErrPermissionDenied)
	}
	return svc.transit(ctx, p, domain.Project{
		Status:           domain.ProjectStatusFinalSubmission,
		FinalSubmittedAt: time.Now().UnixMilli(),
	}, event.ProjectActionFinalSubmitted)
}

func (svc *projectService) transit(ctx context.Context, p domain.Project,
	change domain.Project, action string) error {
	if !p.Status.CanTransitTo(change.Status) {
		return fmt.Errorf("%w: 项目状态不能从 %s 变为 %s", ErrConflict, p.Status, change.Status)
	}
	from := p.Status
	change.Id = p.Id
	err := svc.repo.Transit(ctx, change, []domain.ProjectStatus{from})
	if err != nil {
		return svc.transitErr(err, p.Id)
	}
	p.Status = change.Status
	if action != "" {
		svc.produce(ctx, action, p)
	}
	return nil
}

func (svc *projectService) transitErr(err error, pid int64) error {
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return fmt.Errorf("%w: 项目 %d", ErrNotFound, pid)
	case errors.Is(err, repository.ErrStatusChanged),
		errors.Is(err, repository.ErrCapacityExceed):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return err
	}
}

func (svc *projectService) AddDeliverable(ctx context.Context, studentId int64, d domain.Deliverable) (int64, error) {
	if strings.TrimSpace(d.Title) == "" {
		return 0, fmt.Errorf("%w: 交付物标题不能为空", ErrValidation)
	}
	if d.Type == "" {
		d.Type = domain.DeliverableTypeOther
	}
	if !d.Type.Valid() {
		return 0, fmt.Errorf("%w: 未知的交付物类型 %s", ErrValidation, d.Type)
	}
	p, err := svc.Detail(ctx, d.ProjectId)
	if err != nil {
		return 0, err
	}
	if p.StudentId != studentId {
		return 0, fmt.Errorf("%w: 只能给自己的项目提交交付物", ErrPermissionDenied)
	}
	d.SubmittedAt = time.Now().UnixMilli()
	return svc.repo.AddDeliverable(ctx, d)
}

func (svc *projectService) Deliverables(ctx context.Context, pid int64) ([]domain.Deliverable, error) {
	return svc.repo.Deliverables(ctx, pid)
}

func (svc *projectService) DeleteDeliverable(ctx context.Context, studentId, pid, id int64) error {
	p, err := svc.Detail(ctx, pid)
	if err != nil {
		return err
	}
	if p.StudentId != studentId {
		return fmt.Errorf("%w: 只能删除自己项目的交付物", ErrPermissionDenied)
	}
	err = svc.repo.DeleteDeliverable(ctx, pid, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("%w: 交付物 %d", ErrNotFound, id)
	}
	return err
}

func (svc *projectService) produce(ctx context.Context, action string, p domain.Project) {
	evt := event.ProjectEvent{
		Action:      action,
		ProjectId:   p.Id,
		StudentId:   p.StudentId,
		ProfessorId: p.ProfessorId,
		Status:      p.Status.String(),
	}
	if err := svc.producer.Produce(ctx, evt); err != nil {
		svc.logger.Error("发送项目消息失败",
			elog.FieldErr(err),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return limit
}
