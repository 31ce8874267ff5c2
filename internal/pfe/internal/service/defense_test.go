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
	"testing"

	"github.com/ecodeclub/pfehub/internal/pfe/internal/domain"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/event"
	evtmocks "github.com/ecodeclub/pfehub/internal/pfe/internal/event/mocks"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/repository"
	repomocks "github.com/ecodeclub/pfehub/internal/pfe/internal/repository/mocks"
	"github.com/ecodeclub/pfehub/internal/user"
	usermocks "github.com/ecodeclub/pfehub/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type defenseMocks struct {
	repo        *repomocks.MockDefenseRepository
	projectRepo *repomocks.MockProjectRepository
	userSvc     *usermocks.MockService
	producer    *evtmocks.MockDefenseEventProducer
}

func newDefenseMocks(ctrl *gomock.Controller) defenseMocks {
	return defenseMocks{
		repo:        repomocks.NewMockDefenseRepository(ctrl),
		projectRepo: repomocks.NewMockProjectRepository(ctrl),
		userSvc:     usermocks.NewMockService(ctrl),
		producer:    evtmocks.NewMockDefenseEventProducer(ctrl),
	}
}

func (m defenseMocks) svc() DefenseService {
	return NewDefenseService(m.repo, m.projectRepo, m.userSvc, m.producer)
}

func TestDefenseService_Propose(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m defenseMocks)
		pid     int64
		slot    domain.Slot
		jury    []domain.JuryMember
		wantId  int64
		wantErr error
	}{
		{
			name: "提议成功，不存在的教授置为 0",
			mock: func(m defenseMocks) {
				m.projectRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Project{
					Id: 1, Status: domain.ProjectStatusFinalSubmission, ProfessorId: 7,
				}, nil)
				m.repo.EXPECT().FindByProject(gomock.Any(), int64(1)).
					Return(domain.Defense{}, repository.ErrRecordNotFound)
				m.userSvc.EXPECT().FindByIds(gomock.Any(), []int64{7, 99}).Return(map[int64]user.User{
					7: {Id: 7, FirstName: "Ada", LastName: "Lovelace",
						Email: "ada@pfe.tn", Role: user.RoleProfessor},
				}, nil)
				m.repo.EXPECT().Propose(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, d domain.Defense) (int64, error) {
						assert.Equal(t, int64(1), d.ProjectId)
						assert.Equal(t, domain.DefenseStatusProposed, d.Status)
						assert.Equal(t, domain.Slot{Date: "2025-06-20", Time: "09:30", Room: "A1"}, d.Proposed)
						assert.Equal(t, []domain.JuryMember{
							{Name: "Ada Lovelace", Email: "ada@pfe.tn",
								Role: domain.JuryRolePresident, ProfessorId: 7},
							{Name: "Grace", Role: domain.JuryRoleExaminer},
						}, d.Jury)
						return 5, nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), event.DefenseEvent{
					Action: event.DefenseActionProposed, DefenseId: 5, ProjectId: 1,
					Status: "PROPOSED", Date: "2025-06-20", Time: "09:30", Room: "A1",
					Recipients: []string{"ada@pfe.tn"},
				}).Return(nil)
			},
			pid:  1,
			slot: domain.Slot{Date: "2025-06-20", Time: "09:30:00", Room: "A1"},
			jury: []domain.JuryMember{
				{Role: domain.JuryRolePresident, ProfessorId: 7},
				{Name: "Grace", ProfessorId: 99},
			},
			wantId: 5,
		},
		{
			name: "被拒绝之后重新提议",
			mock: func(m defenseMocks) {
				m.projectRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Project{
					Id: 1, Status: domain.ProjectStatusFinalSubmission,
				}, nil)
				m.repo.EXPECT().FindByProject(gomock.Any(), int64(1)).
					Return(domain.Defense{Id: 3, Status: domain.DefenseStatusRejected}, nil)
				m.repo.EXPECT().Propose(gomock.Any(), gomock.Any()).Return(int64(3), nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq down"))
			},
			pid:    1,
			slot:   domain.Slot{Date: "2025-06-21", Time: "14:00", Room: "B2"},
			wantId: 3,
		},
		{
			name: "项目不存在",
			mock: func(m defenseMocks) {
				m.projectRepo.EXPECT().FindById(gomock.Any(), int64(2)).
					Return(domain.Project{}, repository.ErrRecordNotFound)
			},
			pid:     2,
			slot:    domain.Slot{Date: "2025-06-21", Time: "14:00", Room: "B2"},
			wantErr: ErrNotFound,
		},
		{
			name: "已经有答辩",
			mock: func(m defenseMocks) {
				m.projectRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Project{
					Id: 1, Status: domain.ProjectStatusDefenseScheduled,
				}, nil)
				m.repo.EXPECT().FindByProject(gomock.Any(), int64(1)).
					Return(domain.Defense{Id: 3, Status: domain.DefenseStatusProposed}, nil)
			},
			pid:     1,
			slot:    domain.Slot{Date: "2025-06-21", Time: "14:00", Room: "B2"},
			wantErr: ErrConflict,
		},
		{
			name: "项目还没有最终提交",
			mock: func(m defenseMocks) {
				m.projectRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Project{
					Id: 1, Status: domain.ProjectStatusInProgress,
				}, nil)
				m.repo.EXPECT().FindByProject(gomock.Any(), int64(1)).
					Return(domain.Defense{}, repository.ErrRecordNotFound)
			},
			pid:     1,
			slot:    domain.Slot{Date: "2025-06-21", Time: "14:00", Room: "B2"},
			wantErr: ErrValidation,
		},
		{
			name: "缺少地点",
			mock: func(m defenseMocks) {
				m.projectRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Project{
					Id: 1, Status: domain.ProjectStatusFinalSubmission,
				}, nil)
				m.repo.EXPECT().FindByProject(gomock.Any(), int64(1)).
					Return(domain.Defense{}, repository.ErrRecordNotFound)
			},
			pid:     1,
			slot:    domain.Slot{Date: "2025-06-21", Time: "14:00"},
			wantErr: ErrValidation,
		},
		{
			name: "并发提议",
			mock: func(m defenseMocks) {
				m.projectRepo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Project{
					Id: 1, Status: domain.ProjectStatusFinalSubmission,
				}, nil)
				m.repo.EXPECT().FindByProject(gomock.Any(), int64(1)).
					Return(domain.Defense{}, repository.ErrRecordNotFound)
				m.repo.EXPECT().Propose(gomock.Any(), gomock.Any()).
					Return(int64(0), repository.ErrDefenseExists)
			},
			pid:     1,
			slot:    domain.Slot{Date: "2025-06-21", Time: "14:00", Room: "B2"},
			wantErr: ErrConflict,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newDefenseMocks(ctrl)
			tc.mock(m)
			id, err := m.svc().Propose(context.Background(), tc.pid, tc.slot, tc.jury, "")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestDefenseService_Validate(t *testing.T) {
	proposed := domain.Defense{
		Id: 5, ProjectId: 1, Status: domain.DefenseStatusProposed,
		Proposed: domain.Slot{Date: "2025-06-20", Time: "09:30", Room: "A1"},
		Jury:     []domain.JuryMember{{Id: 1, DefenseId: 5, Name: "Ada", Role: domain.JuryRolePresident}},
	}
	testCases := []struct {
		name    string
		mock    func(m defenseMocks)
		final   domain.Slot
		wantErr error
	}{
		{
			name: "只修改地点，其它沿用提议",
			mock: func(m defenseMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(5)).Return(proposed, nil)
				m.repo.EXPECT().Validate(gomock.Any(), gomock.Any(), domain.DefenseStatusProposed).
					DoAndReturn(func(ctx context.Context, d domain.Defense, from domain.DefenseStatus) error {
						assert.Equal(t, domain.Slot{Date: "2025-06-20", Time: "09:30", Room: "C3"}, d.Final)
						assert.Equal(t, int64(42), d.ValidatedBy)
						assert.Equal(t, "ok", d.Notes)
						// 空评委表示保留
						assert.Empty(t, d.Jury)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.DefenseEvent) error {
						assert.Equal(t, "VALIDATED", evt.Status)
						assert.Equal(t, "C3", evt.Room)
						return nil
					})
			},
			final: domain.Slot{Room: "C3"},
		},
		{
			name: "答辩不存在",
			mock: func(m defenseMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(5)).
					Return(domain.Defense{}, repository.ErrRecordNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "已经确认过",
			mock: func(m defenseMocks) {
				d := proposed
				d.Status = domain.DefenseStatusValidated
				m.repo.EXPECT().FindById(gomock.Any(), int64(5)).Return(d, nil)
			},
			wantErr: ErrConflict,
		},
		{
			name: "时间格式错误",
			mock: func(m defenseMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(5)).Return(proposed, nil)
			},
			final:   domain.Slot{Time: "9h30"},
			wantErr: ErrValidation,
		},
		{
			name: "状态被并发修改",
			mock: func(m defenseMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(5)).Return(proposed, nil)
				m.repo.EXPECT().Validate(gomock.Any(), gomock.Any(), domain.DefenseStatusProposed).
					Return(repository.ErrStatusChanged)
			},
			wantErr: ErrConflict,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newDefenseMocks(ctrl)
			tc.mock(m)
			err := m.svc().Validate(context.Background(), 5, tc.final, nil, "ok", 42)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestDefenseService_Modify(t *testing.T) {
	final := domain.Slot{Date: "2025-06-22", Time: "10:00", Room: "D4"}
	testCases := []struct {
		name    string
		mock    func(m defenseMocks)
		final   domain.Slot
		jury    []domain.JuryMember
		wantErr error
	}{
		{
			name: "修改已经确认的答辩并替换评委",
			mock: func(m defenseMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(5)).
					Return(domain.Defense{Id: 5, Status: domain.DefenseStatusValidated}, nil)
				m.repo.EXPECT().Modify(gomock.Any(), gomock.Any(), domain.DefenseStatusValidated).
					DoAndReturn(func(ctx context.Context, d domain.Defense, from domain.DefenseStatus) error {
						assert.Equal(t, final, d.Final)
						assert.Equal(t, "salle occupée", d.ModificationReason)
						assert.Equal(t, []domain.JuryMember{{Name: "Linus", Role: domain.JuryRoleGuest}}, d.Jury)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			final: final,
			jury:  []domain.JuryMember{{Name: " Linus ", Role: domain.JuryRoleGuest}},
		},
		{
			name: "再次修改",
			mock: func(m defenseMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(5)).
					Return(domain.Defense{Id: 5, Status: domain.DefenseStatusModified}, nil)
				m.repo.EXPECT().Modify(gomock.Any(), gomock.Any(), domain.DefenseStatusModified).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			final: final,
		},
		{
			name:    "缺少最终时间",
			mock:    func(m defenseMocks) {},
			final:   domain.Slot{Date: "2025-06-22", Room: "D4"},
			wantErr: ErrValidation,
		},
		{
			name: "还没有确认",
			mock: func(m defenseMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(5)).
					Return(domain.Defense{Id: 5, Status: domain.DefenseStatusProposed}, nil)
			},
			final:   final,
			wantErr: ErrConflict,
		},
		{
			name: "未知的评委角色",
			mock: func(m defenseMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(5)).
					Return(domain.Defense{Id: 5, Status: domain.DefenseStatusValidated}, nil)
			},
			final:   final,
			jury:    []domain.JuryMember{{Name: "X", Role: "CHAIRMAN"}},
			wantErr: ErrValidation,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newDefenseMocks(ctrl)
			tc.mock(m)
			err := m.svc().Modify(context.Background(), 5, tc.final, "salle occupée", tc.jury)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestDefenseService_Reject(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m defenseMocks)
		wantErr error
	}{
		{
			name: "拒绝提议",
			mock: func(m defenseMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(5)).Return(domain.Defense{
					Id: 5, ProjectId: 1, Status: domain.DefenseStatusProposed,
				}, nil)
				m.repo.EXPECT().Reject(gomock.Any(), gomock.Any(), domain.DefenseStatusProposed).
					DoAndReturn(func(ctx context.Context, d domain.Defense, from domain.DefenseStatus) error {
						assert.Equal(t, int64(1), d.ProjectId)
						assert.Equal(t, "jury indisponible", d.RejectionReason)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "已经确认的不能拒绝",
			mock: func(m defenseMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(5)).Return(domain.Defense{
					Id: 5, ProjectId: 1, Status: domain.DefenseStatusValidated,
				}, nil)
			},
			wantErr: ErrConflict,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newDefenseMocks(ctrl)
			tc.mock(m)
			err := m.svc().Reject(context.Background(), 5, "jury indisponible")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestDefenseService_Evaluate(t *testing.T) {
	score := func(v float64) *float64 { return &v }
	testCases := []struct {
		name    string
		mock    func(m defenseMocks)
		ev      domain.Evaluation
		wantErr error
	}{
		{
			name: "评分人是项目导师",
			mock: func(m defenseMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(5)).Return(domain.Defense{
					Id: 5, ProjectId: 1, Status: domain.DefenseStatusValidated,
				}, nil)
				m.projectRepo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.Project{Id: 1, ProfessorId: 7}, nil)
				m.repo.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, d domain.Defense) error {
						assert.Equal(t, int64(7), d.Evaluation.EvaluatedBy)
						assert.True(t, d.Evaluation.EvaluatedAt > 0)
						assert.True(t, d.IsEvaluated())
						assert.Equal(t, 16.5, *d.Evaluation.FinalGrade)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			ev: domain.Evaluation{
				PresentationQuality: score(16),
				SubjectMastery:      score(17),
				FinalGrade:          score(16.5),
				Comments:            "très bien",
			},
		},
		{
			name:    "分数超出范围",
			mock:    func(m defenseMocks) {},
			ev:      domain.Evaluation{SubjectMastery: score(21)},
			wantErr: ErrValidation,
		},
		{
			name: "答辩不存在",
			mock: func(m defenseMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(5)).
					Return(domain.Defense{}, repository.ErrRecordNotFound)
			},
			wantErr: ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newDefenseMocks(ctrl)
			tc.mock(m)
			err := m.svc().Evaluate(context.Background(), 5, tc.ev)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestDefenseService_UpdateJury(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newDefenseMocks(ctrl)
	m.repo.EXPECT().ReplaceJury(gomock.Any(), int64(5), []domain.JuryMember{}).Return(nil)
	m.repo.EXPECT().ReplaceJury(gomock.Any(), int64(6), gomock.Any()).Return(repository.ErrRecordNotFound)
	svc := m.svc()

	require.NoError(t, svc.UpdateJury(context.Background(), 5, nil))
	err := svc.UpdateJury(context.Background(), 6, []domain.JuryMember{{Name: "Ada"}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDefenseService_HasConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newDefenseMocks(ctrl)
	m.repo.EXPECT().FindByRoomAndDate(gomock.Any(), "A1", "2025-06-20").Return([]domain.Defense{
		{Id: 1, Final: domain.Slot{Date: "2025-06-20", Time: "09:30", Room: "A1"}},
		{Id: 2, Final: domain.Slot{Date: "2025-06-20", Time: "11:00", Room: "A1"}},
	}, nil).Times(2)
	svc := m.svc()

	ok, err := svc.HasConflict(context.Background(), "A1", "2025-06-20", "09:30:00")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = svc.HasConflict(context.Background(), "A1", "2025-06-20", "10:00")
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = svc.HasConflict(context.Background(), "A1", "20/06/2025", "10:00")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDefenseService_Range(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newDefenseMocks(ctrl)
	m.repo.EXPECT().Range(gomock.Any(), "2025-06-01", "2025-06-30").
		Return([]domain.Defense{{Id: 1}}, nil)
	svc := m.svc()

	ds, err := svc.Range(context.Background(), "2025-06-01", "2025-06-30")
	require.NoError(t, err)
	assert.Len(t, ds, 1)
	_, err = svc.Range(context.Background(), "2025-06-30", "2025-06-01")
	assert.ErrorIs(t, err, ErrValidation)
}
