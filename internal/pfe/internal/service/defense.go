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
	"github.com/ecodeclub/pfehub/internal/pfe/internal/domain"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/event"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/repository"
	"github.com/ecodeclub/pfehub/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
)

const maxScore = 20

var defenseTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pfehub",
	Subsystem: "defense",
	Name:      "transitions_total",
	Help:      "答辩状态变更次数",
}, []string{"action"})

//go:generate mockgen -source=./defense.go -package=pfemocks -destination=../../mocks/defense.mock.go -typed=false DefenseService
type DefenseService interface {
	// Propose 导师为处于 FINAL_SUBMISSION 的项目提议答辩时间地点
	Propose(ctx context.Context, pid int64, slot domain.Slot, jury []domain.JuryMember, notes string) (int64, error)
	// Validate final 中为空的字段使用提议的值，jury 为空时保留原来的评委
	Validate(ctx context.Context, id int64, final domain.Slot, jury []domain.JuryMember, notes string, uid int64) error
	Modify(ctx context.Context, id int64, final domain.Slot, reason string, jury []domain.JuryMember) error
	Reject(ctx context.Context, id int64, reason string) error
	// Evaluate 评分人是项目的导师
	Evaluate(ctx context.Context, id int64, ev domain.Evaluation) error
	// UpdateJury 整体替换，空列表表示清空
	UpdateJury(ctx context.Context, id int64, jury []domain.JuryMember) error
	HasConflict(ctx context.Context, room, date, tm string) (bool, error)
	Delete(ctx context.Context, id int64) error

	Detail(ctx context.Context, id int64) (domain.Defense, error)
	ByProject(ctx context.Context, pid int64) (domain.Defense, error)
	ByProfessor(ctx context.Context, professorId int64) ([]domain.Defense, error)
	Jury(ctx context.Context, id int64) ([]domain.JuryMember, error)
	Pending(ctx context.Context) ([]domain.Defense, error)
	// Upcoming from 为空的时候从今天开始
	Upcoming(ctx context.Context, from string, limit int) ([]domain.Defense, error)
	Range(ctx context.Context, start, end string) ([]domain.Defense, error)
	Evaluated(ctx context.Context) ([]domain.Defense, error)
	ByRoomAndDate(ctx context.Context, room, date string) ([]domain.Defense, error)
	Stats(ctx context.Context) (domain.DefenseStats, error)
}

type defenseService struct {
	repo        repository.DefenseRepository
	projectRepo repository.ProjectRepository
	userSvc     user.Service
	producer    event.DefenseEventProducer
	logger      *elog.Component
}

func NewDefenseService(repo repository.DefenseRepository,
	projectRepo repository.ProjectRepository,
	userSvc user.Service,
	p event.DefenseEventProducer) DefenseService {
	return &defenseService{
		repo:        repo,
		projectRepo: projectRepo,
		userSvc:     userSvc,
		producer:    p,
		logger:      elog.DefaultLogger,
	}
}

func (svc *defenseService) Propose(ctx context.Context, pid int64, slot domain.Slot,
	jury []domain.JuryMember, notes string) (int64, error) {
	p, err := svc.projectRepo.FindById(ctx, pid)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: 项目 %d", ErrNotFound, pid)
		}
		return 0, err
	}
	old, err := svc.repo.FindByProject(ctx, pid)
	switch {
	case err == nil:
		if old.Status != domain.DefenseStatusRejected {
			return 0, fmt.Errorf("%w: 项目 %d 已经有答辩安排", ErrConflict, pid)
		}
	case errors.Is(err, repository.ErrRecordNotFound):
	default:
		return 0, err
	}
	if p.Status != domain.ProjectStatusFinalSubmission {
		return 0, fmt.Errorf("%w: 项目状态为 %s，还不能安排答辩", ErrValidation, p.Status)
	}
	slot, err = svc.slot(slot)
	if err != nil {
		return 0, err
	}
	if !slot.Complete() {
		return 0, fmt.Errorf("%w: 答辩日期、时间和地点都不能为空", ErrValidation)
	}
	jury, err = svc.normalizeJury(ctx, jury)
	if err != nil {
		return 0, err
	}
	d := domain.Defense{
		ProjectId: pid,
		Proposed:  slot,
		Status:    domain.DefenseStatusProposed,
		Notes:     notes,
		Jury:      jury,
	}
	id, err := svc.repo.Propose(ctx, d)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrDefenseExists):
		return 0, fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, repository.ErrStatusChanged):
		return 0, fmt.Errorf("%w: 项目状态已经变化", ErrValidation)
	case errors.Is(err, repository.ErrRecordNotFound):
		return 0, fmt.Errorf("%w: 项目 %d", ErrNotFound, pid)
	default:
		return 0, err
	}
	d.Id = id
	svc.produce(ctx, event.DefenseActionProposed, d, slot)
	return id, nil
}

func (svc *defenseService) Validate(ctx context.Context, id int64, final domain.Slot,
	jury []domain.JuryMember, notes string, uid int64) error {
	d, err := svc.Detail(ctx, id)
	if err != nil {
		return err
	}
	if !d.Status.CanTransitTo(domain.DefenseStatusValidated) {
		return fmt.Errorf("%w: 答辩状态 %s 不能确认", ErrConflict, d.Status)
	}
	final, err = svc.slot(final)
	if err != nil {
		return err
	}
	jury, err = svc.normalizeJury(ctx, jury)
	if err != nil {
		return err
	}
	from := d.Status
	d.Final = final.Or(d.Proposed)
	d.Notes = notes
	d.ValidatedBy = uid
	d.Jury = jury
	if err = svc.repo.Validate(ctx, d, from); err != nil {
		return svc.transitErr(err, id)
	}
	d.Status = domain.DefenseStatusValidated
	svc.produce(ctx, event.DefenseActionValidated, d, d.Final)
	return nil
}

func (svc *defenseService) Modify(ctx context.Context, id int64, final domain.Slot,
	reason string, jury []domain.JuryMember) error {
	final, err := svc.slot(final)
	if err != nil {
		return err
	}
	if !final.Complete() {
		return fmt.Errorf("%w: 修改答辩时必须提供日期、时间和地点", ErrValidation)
	}
	d, err := svc.Detail(ctx, id)
	if err != nil {
		return err
	}
	if !d.Status.CanTransitTo(domain.DefenseStatusModified) {
		return fmt.Errorf("%w: 答辩状态 %s 不能修改", ErrConflict, d.Status)
	}
	jury, err = svc.normalizeJury(ctx, jury)
	if err != nil {
		return err
	}
	from := d.Status
	d.Final = final
	d.ModificationReason = reason
	d.Jury = jury
	if err = svc.repo.Modify(ctx, d, from); err != nil {
		return svc.transitErr(err, id)
	}
	d.Status = domain.DefenseStatusModified
	svc.produce(ctx, event.DefenseActionModified, d, d.Final)
	return nil
}

func (svc *defenseService) Reject(ctx context.Context, id int64, reason string) error {
	d, err := svc.Detail(ctx, id)
	if err != nil {
		return err
	}
	if !d.Status.CanTransitTo(domain.DefenseStatusRejected) {
		return fmt.Errorf("%w: 答辩状态 %s 不能拒绝", ErrConflict, d.Status)
	}
	from := d.Status
	d.RejectionReason = reason
	if err = svc.repo.Reject(ctx, d, from); err != nil {
		return svc.transitErr(err, id)
	}
	d.Status = domain.DefenseStatusRejected
	svc.produce(ctx, event.DefenseActionRejected, d, d.Proposed)
	return nil
}

func (svc *defenseService) Evaluate(ctx context.Context, id int64, ev domain.Evaluation) error {
	for _, score := range []*float64{ev.PresentationQuality, ev.SubjectMastery,
		ev.QuestionAnswers, ev.TimeRespect, ev.FinalGrade} {
		if score != nil && (*score < 0 || *score > maxScore) {
			return fmt.Errorf("%w: 分数必须在 0 到 %d 之间", ErrValidation, maxScore)
		}
	}
	d, err := svc.Detail(ctx, id)
	if err != nil {
		return err
	}
	p, err := svc.projectRepo.FindById(ctx, d.ProjectId)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return fmt.Errorf("%w: 项目 %d", ErrNotFound, d.ProjectId)
		}
		return err
	}
	ev.EvaluatedAt = time.Now().UnixMilli()
	ev.EvaluatedBy = p.ProfessorId
	d.Evaluation = ev
	if err = svc.repo.Evaluate(ctx, d); err != nil {
		return svc.transitErr(err, id)
	}
	svc.produce(ctx, event.DefenseActionEvaluated, d, d.Final)
	return nil
}

func (svc *defenseService) UpdateJury(ctx context.Context, id int64, jury []domain.JuryMember) error {
	jury, err := svc.normalizeJury(ctx, jury)
	if err != nil {
		return err
	}
	err = svc.repo.ReplaceJury(ctx, id, jury)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("%w: 答辩 %d", ErrNotFound, id)
	}
	return err
}

func (svc *defenseService) HasConflict(ctx context.Context, room, date, tm string) (bool, error) {
	slot, err := svc.slot(domain.Slot{Date: date, Time: tm, Room: room})
	if err != nil {
		return false, err
	}
	if !slot.Complete() {
		return false, fmt.Errorf("%w: 日期、时间和地点都不能为空", ErrValidation)
	}
	ds, err := svc.repo.FindByRoomAndDate(ctx, slot.Room, slot.Date)
	if err != nil {
		return false, err
	}
	for _, d := range ds {
		if d.Final.Time == slot.Time {
			return true, nil
		}
	}
	return false, nil
}

func (svc *defenseService) Delete(ctx context.Context, id int64) error {
	err := svc.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("%w: 答辩 %d", ErrNotFound, id)
	}
	return err
}

func (svc *defenseService) Detail(ctx context.Context, id int64) (domain.Defense, error) {
	d, err := svc.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Defense{}, fmt.Errorf("%w: 答辩 %d", ErrNotFound, id)
	}
	return d, err
}

func (svc *defenseService) ByProject(ctx context.Context, pid int64) (domain.Defense, error) {
	d, err := svc.repo.FindByProject(ctx, pid)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Defense{}, fmt.Errorf("%w: 项目 %d 没有答辩", ErrNotFound, pid)
	}
	return d, err
}

func (svc *defenseService) ByProfessor(ctx context.Context, professorId int64) ([]domain.Defense, error) {
	ps, err := svc.projectRepo.FindByProfessor(ctx, professorId)
	if err != nil {
		return nil, err
	}
	return svc.repo.FindByProjects(ctx, slice.Map(ps, func(idx int, src domain.Project) int64 {
		return src.Id
	}))
}

func (svc *defenseService) Jury(ctx context.Context, id int64) ([]domain.JuryMember, error) {
	if _, err := svc.Detail(ctx, id); err != nil {
		return nil, err
	}
	return svc.repo.Jury(ctx, id)
}

func (svc *defenseService) Pending(ctx context.Context) ([]domain.Defense, error) {
	return svc.repo.FindByStatus(ctx, domain.DefenseStatusProposed)
}

func (svc *defenseService) Upcoming(ctx context.Context, from string, limit int) ([]domain.Defense, error) {
	from, err := svc.date(from)
	if err != nil {
		return nil, err
	}
	return svc.repo.Upcoming(ctx, from, limitOrDefault(limit))
}

func (svc *defenseService) Range(ctx context.Context, start, end string) ([]domain.Defense, error) {
	start, err := domain.NormalizeDate(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	end, err = domain.NormalizeDate(end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if start == "" || end == "" || start > end {
		return nil, fmt.Errorf("%w: 日期范围不对", ErrValidation)
	}
	return svc.repo.Range(ctx, start, end)
}

func (svc *defenseService) Evaluated(ctx context.Context) ([]domain.Defense, error) {
	return svc.repo.Evaluated(ctx)
}

func (svc *defenseService) ByRoomAndDate(ctx context.Context, room, date string) ([]domain.Defense, error) {
	date, err := domain.NormalizeDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return svc.repo.FindByRoomAndDate(ctx, strings.TrimSpace(room), date)
}

func (svc *defenseService) Stats(ctx context.Context) (domain.DefenseStats, error) {
	var (
		eg  errgroup.Group
		res domain.DefenseStats
	)
	eg.Go(func() error {
		var err error
		res.ByStatus, err = svc.repo.CountByStatus(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Upcoming, err = svc.repo.CountUpcoming(ctx, time.Now().Format(domain.DateLayout))
		return err
	})
	return res, eg.Wait()
}

func (svc *defenseService) slot(s domain.Slot) (domain.Slot, error) {
	res, err := domain.NewSlot(s.Date, s.Time, s.Room)
	if err != nil {
		return domain.Slot{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return res, nil
}

func (svc *defenseService) date(date string) (string, error) {
	date, err := domain.NormalizeDate(date)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if date == "" {
		date = time.Now().Format(domain.DateLayout)
	}
	return date, nil
}

// normalizeJury 角色默认为 EXAMINER，不存在的教授 id 置为 0
func (svc *defenseService) normalizeJury(ctx context.Context, jury []domain.JuryMember) ([]domain.JuryMember, error) {
	if len(jury) == 0 {
		return []domain.JuryMember{}, nil
	}
	ids := slice.FilterMap(jury, func(idx int, src domain.JuryMember) (int64, bool) {
		return src.ProfessorId, src.ProfessorId > 0
	})
	profs := map[int64]user.User{}
	if len(ids) > 0 {
		var err error
		profs, err = svc.userSvc.FindByIds(ctx, ids)
		if err != nil {
			return nil, err
		}
	}
	res := make([]domain.JuryMember, 0, len(jury))
	for _, j := range jury {
		j.Id = 0
		j.Name = strings.TrimSpace(j.Name)
		j.Email = strings.TrimSpace(j.Email)
		if j.Role == "" {
			j.Role = domain.JuryRoleExaminer
		}
		if !j.Role.Valid() {
			return nil, fmt.Errorf("%w: 未知的评委角色 %s", ErrValidation, j.Role)
		}
		if j.ProfessorId > 0 {
			prof, ok := profs[j.ProfessorId]
			if ok && prof.Role == user.RoleProfessor {
				if j.Name == "" {
					j.Name = prof.FullName()
				}
				if j.Email == "" {
					j.Email = prof.Email
				}
			} else {
				j.ProfessorId = 0
			}
		}
		if j.Name == "" {
			return nil, fmt.Errorf("%w: 评委姓名不能为空", ErrValidation)
		}
		res = append(res, j)
	}
	return res, nil
}

func (svc *defenseService) transitErr(err error, id int64) error {
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return fmt.Errorf("%w: 答辩 %d", ErrNotFound, id)
	case errors.Is(err, repository.ErrStatusChanged):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return err
	}
}

func (svc *defenseService) produce(ctx context.Context, action string, d domain.Defense, slot domain.Slot) {
	defenseTransitions.WithLabelValues(action).Inc()
	evt := event.DefenseEvent{
		Action:    action,
		DefenseId: d.Id,
		ProjectId: d.ProjectId,
		Status:    d.Status.String(),
		Date:      slot.Date,
		Time:      slot.Time,
		Room:      slot.Room,
		Recipients: slice.FilterMap(d.Jury, func(idx int, src domain.JuryMember) (string, bool) {
			return src.Email, src.Email != ""
		}),
	}
	if err := svc.producer.Produce(ctx, evt); err != nil {
		svc.logger.Error("发送答辩消息失败",
			elog.FieldErr(err),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
}
