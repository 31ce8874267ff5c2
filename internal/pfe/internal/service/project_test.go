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

	"github.com/ecodeclub/pfehub/internal/academic"
	academicmocks "github.com/ecodeclub/pfehub/internal/academic/mocks"
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

type projectMocks struct {
	repo        *repomocks.MockProjectRepository
	userSvc     *usermocks.MockService
	academicSvc *academicmocks.MockService
	producer    *evtmocks.MockProjectEventProducer
}

func newProjectMocks(ctrl *gomock.Controller) projectMocks {
	return projectMocks{
		repo:        repomocks.NewMockProjectRepository(ctrl),
		userSvc:     usermocks.NewMockService(ctrl),
		academicSvc: academicmocks.NewMockService(ctrl),
		producer:    evtmocks.NewMockProjectEventProducer(ctrl),
	}
}

func (m projectMocks) svc() ProjectService {
	return NewProjectService(m.repo, m.userSvc, m.academicSvc, m.producer)
}

func TestProjectService_Submit(t *testing.T) {
	student := user.User{
		Id:      3,
		Role:    user.RoleStudent,
		Active:  true,
		Student: &user.StudentProfile{StudentNumber: "S3", AcademicYearId: 2},
	}
	testCases := []struct {
		name    string
		mock    func(m projectMocks)
		p       domain.Project
		wantId  int64
		wantErr error
	}{
		{
			name: "提交成功",
			mock: func(m projectMocks) {
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(3)).Return(student, nil)
				m.academicSvc.EXPECT().Year(gomock.Any(), int64(2)).
					Return(academic.AcademicYear{Id: 2, Year: "2024-2025"}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p domain.Project) (int64, error) {
						assert.Equal(t, domain.ProjectStatusPendingAssignment, p.Status)
						assert.Equal(t, int64(2), p.AcademicYearId)
						assert.Equal(t, int64(0), p.ProfessorId)
						assert.NotEmpty(t, p.SN)
						assert.True(t, p.SubmittedAt > 0)
						return 10, nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), event.ProjectEvent{
					Action: event.ProjectActionSubmitted, ProjectId: 10,
					StudentId: 3, Status: "PENDING_ASSIGNMENT",
				}).Return(nil)
			},
			p:      domain.Project{Title: " Plateforme PFE ", StudentId: 3, ProfessorId: 9},
			wantId: 10,
		},
		{
			name: "没有当前学年也可以提交",
			mock: func(m projectMocks) {
				stu := student
				stu.Student = &user.StudentProfile{}
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(3)).Return(stu, nil)
				m.academicSvc.EXPECT().CurrentYear(gomock.Any()).
					Return(academic.AcademicYear{}, academic.ErrNotFound)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(11), nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq down"))
			},
			p:      domain.Project{Title: "Plateforme PFE", StudentId: 3},
			wantId: 11,
		},
		{
			name: "不在提交期内",
			mock: func(m projectMocks) {
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(3)).Return(student, nil)
				m.academicSvc.EXPECT().Year(gomock.Any(), int64(2)).Return(academic.AcademicYear{
					Id: 2, Year: "1999-2000", SubmissionStart: "1999-10-01", SubmissionEnd: "1999-12-31",
				}, nil)
			},
			p:       domain.Project{Title: "Plateforme PFE", StudentId: 3},
			wantErr: ErrValidation,
		},
		{
			name: "教授不能提交",
			mock: func(m projectMocks) {
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(3)).Return(user.User{
					Id: 3, Role: user.RoleProfessor, Professor: &user.ProfessorProfile{},
				}, nil)
			},
			p:       domain.Project{Title: "Plateforme PFE", StudentId: 3},
			wantErr: ErrValidation,
		},
		{
			name: "重复提交",
			mock: func(m projectMocks) {
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(3)).Return(student, nil)
				m.academicSvc.EXPECT().Year(gomock.Any(), int64(2)).
					Return(academic.AcademicYear{Id: 2}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(int64(0), repository.ErrDuplicateProject)
			},
			p:       domain.Project{Title: "Plateforme PFE", StudentId: 3},
			wantErr: ErrConflict,
		},
		{
			name:    "标题为空",
			mock:    func(m projectMocks) {},
			p:       domain.Project{Title: " ", StudentId: 3},
			wantErr: ErrValidation,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newProjectMocks(ctrl)
			tc.mock(m)
			id, err := m.svc().Submit(context.Background(), tc.p)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestProjectService_Assign(t *testing.T) {
	prof := user.User{
		Id:        7,
		Role:      user.RoleProfessor,
		Active:    true,
		Professor: &user.ProfessorProfile{MaxCapacity: 3},
	}
	testCases := []struct {
		name    string
		mock    func(m projectMocks)
		wantErr error
	}{
		{
			name: "分配成功",
			mock: func(m projectMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Project{
					Id: 1, StudentId: 3, Status: domain.ProjectStatusPendingAssignment,
				}, nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(7)).Return(prof, nil)
				m.repo.EXPECT().Assign(gomock.Any(), int64(1), int64(7), 3, "bon sujet",
					[]domain.ProjectStatus{domain.ProjectStatusPendingAssignment}).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), event.ProjectEvent{
					Action: event.ProjectActionAssigned, ProjectId: 1, StudentId: 3,
					ProfessorId: 7, Status: "UNDER_REVIEW",
				}).Return(nil)
			},
		},
		{
			name: "导师已满",
			mock: func(m projectMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Project{
					Id: 1, Status: domain.ProjectStatusPendingAssignment,
				}, nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(7)).Return(prof, nil)
				m.repo.EXPECT().Assign(gomock.Any(), int64(1), int64(7), 3, "bon sujet", gomock.Any()).
					Return(repository.ErrCapacityExceed)
			},
			wantErr: ErrConflict,
		},
		{
			name: "教授不存在",
			mock: func(m projectMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Project{
					Id: 1, Status: domain.ProjectStatusPendingAssignment,
				}, nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(7)).Return(user.User{}, user.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "学生不能作为导师",
			mock: func(m projectMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Project{
					Id: 1, Status: domain.ProjectStatusPendingAssignment,
				}, nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(7)).Return(user.User{
					Id: 7, Role: user.RoleStudent, Student: &user.StudentProfile{},
				}, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "项目不存在",
			mock: func(m projectMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.Project{}, repository.ErrRecordNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "已经接受的项目",
			mock: func(m projectMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Project{
					Id: 1, ProfessorId: 8, Status: domain.ProjectStatusAccepted,
				}, nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(7)).Return(prof, nil)
			},
			wantErr: ErrConflict,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newProjectMocks(ctrl)
			tc.mock(m)
			err := m.svc().Assign(context.Background(), 1, 7, "bon sujet")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestProjectService_Review(t *testing.T) {
	underReview := domain.Project{Id: 1, StudentId: 3, ProfessorId: 7,
		Status: domain.ProjectStatusUnderReview}

	t.Run("导师接受", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newProjectMocks(ctrl)
		m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(underReview, nil)
		m.repo.EXPECT().Transit(gomock.Any(), gomock.Any(),
			[]domain.ProjectStatus{domain.ProjectStatusUnderReview}).
			DoAndReturn(func(ctx context.Context, p domain.Project, from []domain.ProjectStatus) error {
				assert.Equal(t, int64(1), p.Id)
				assert.Equal(t, domain.ProjectStatusAccepted, p.Status)
				assert.Equal(t, "bravo", p.ProfessorComments)
				assert.True(t, p.AcceptedAt > 0)
				return nil
			})
		m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
		require.NoError(t, m.svc().Accept(context.Background(), 1, 7, "bravo"))
	})

	t.Run("不是自己指导的项目", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newProjectMocks(ctrl)
		m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(underReview, nil)
		err := m.svc().Reject(context.Background(), 1, 8, "hors sujet", "")
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("拒绝必须有原因", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newProjectMocks(ctrl)
		err := m.svc().Reject(context.Background(), 1, 7, "", "")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("要求修改保持在审核中", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newProjectMocks(ctrl)
		m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(underReview, nil)
		m.repo.EXPECT().Transit(gomock.Any(), domain.Project{
			Id: 1, Status: domain.ProjectStatusUnderReview, ProfessorComments: "préciser les objectifs",
		}, []domain.ProjectStatus{domain.ProjectStatusUnderReview}).Return(nil)
		m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
		require.NoError(t, m.svc().RequestRevision(context.Background(), 1, 7, "préciser les objectifs"))
	})

	t.Run("还没有接受不能最终提交", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newProjectMocks(ctrl)
		m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(underReview, nil)
		err := m.svc().SubmitFinal(context.Background(), 1, 3)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("并发修改了状态", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newProjectMocks(ctrl)
		p := underReview
		p.Status = domain.ProjectStatusAccepted
		m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(p, nil)
		m.repo.EXPECT().Transit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.ErrStatusChanged)
		err := m.svc().Start(context.Background(), 1, 7)
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestProjectService_Deliverable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newProjectMocks(ctrl)
	m.repo.EXPECT().FindById(gomock.Any(), int64(1)).
		Return(domain.Project{Id: 1, StudentId: 3}, nil).AnyTimes()
	m.repo.EXPECT().AddDeliverable(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, d domain.Deliverable) (int64, error) {
			assert.Equal(t, domain.DeliverableTypeOther, d.Type)
			assert.True(t, d.SubmittedAt > 0)
			return 4, nil
		})
	m.repo.EXPECT().DeleteDeliverable(gomock.Any(), int64(1), int64(5)).
		Return(repository.ErrRecordNotFound)
	svc := m.svc()

	id, err := svc.AddDeliverable(context.Background(), 3, domain.Deliverable{ProjectId: 1, Title: "rapport"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)

	_, err = svc.AddDeliverable(context.Background(), 4, domain.Deliverable{ProjectId: 1, Title: "rapport"})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.AddDeliverable(context.Background(), 3,
		domain.Deliverable{ProjectId: 1, Title: "rapport", Type: "VIDEO"})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.DeleteDeliverable(context.Background(), 3, 1, 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newProjectMocks(ctrl)
	m.repo.EXPECT().CountByStatus(gomock.Any()).Return(map[domain.ProjectStatus]int64{
		domain.ProjectStatusPendingAssignment: 2,
		domain.ProjectStatusAccepted:          3,
	}, nil)
	stats, err := m.svc().Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, int64(3), stats.ByStatus[domain.ProjectStatusAccepted])
}
