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
	"github.com/ecodeclub/pfehub/internal/user/internal/domain"
	"github.com/ecodeclub/pfehub/internal/user/internal/event"
	evtmocks "github.com/ecodeclub/pfehub/internal/user/internal/event/mocks"
	"github.com/ecodeclub/pfehub/internal/user/internal/repository"
	repomocks "github.com/ecodeclub/pfehub/internal/user/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.UserRepository, academic.Service, event.RegistrationEventProducer)
		user    domain.User
		pwd     string
		wantId  int64
		wantErr error
	}{
		{
			name: "注册教授，补全默认容量",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository, academic.Service, event.RegistrationEventProducer) {
				repo := repomocks.NewMockUserRepository(ctrl)
				acSvc := academicmocks.NewMockService(ctrl)
				p := evtmocks.NewMockRegistrationEventProducer(ctrl)
				acSvc.EXPECT().Department(gomock.Any(), int64(1)).Return(academic.Department{Id: 1}, nil)
				acSvc.EXPECT().Specialization(gomock.Any(), int64(2)).
					Return(academic.Specialization{Id: 2, DepartmentId: 1}, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, u domain.User) (int64, error) {
						assert.Equal(t, "alan.turing@pfe.tn", u.Email)
						assert.Equal(t, domain.DefaultMaxCapacity, u.Professor.MaxCapacity)
						assert.Equal(t, []string{"ai", "cryptography"}, u.Professor.Expertise)
						assert.True(t, u.Active)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("123456")))
						return 10, nil
					})
				p.EXPECT().Produce(gomock.Any(), event.RegistrationEvent{
					Uid: 10, Role: "PROFESSOR", Email: "alan.turing@pfe.tn",
				}).Return(nil)
				return repo, acSvc, p
			},
			user: domain.User{
				FirstName:        "Alan",
				LastName:         "Turing",
				Email:            " Alan.Turing@pfe.tn",
				Role:             domain.RoleProfessor,
				DepartmentId:     1,
				SpecializationId: 2,
				Professor:        &domain.ProfessorProfile{Expertise: []string{"ai", " cryptography "}},
			},
			pwd:    "123456",
			wantId: 10,
		},
		{
			name: "消息发送失败不影响注册",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository, academic.Service, event.RegistrationEventProducer) {
				repo := repomocks.NewMockUserRepository(ctrl)
				acSvc := academicmocks.NewMockService(ctrl)
				p := evtmocks.NewMockRegistrationEventProducer(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(11), nil)
				p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq down"))
				return repo, acSvc, p
			},
			user: domain.User{
				Email:   "student@pfe.tn",
				Role:    domain.RoleStudent,
				Student: &domain.StudentProfile{StudentNumber: "S1"},
			},
			pwd:    "abc",
			wantId: 11,
		},
		{
			name: "专业不属于院系",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository, academic.Service, event.RegistrationEventProducer) {
				repo := repomocks.NewMockUserRepository(ctrl)
				acSvc := academicmocks.NewMockService(ctrl)
				p := evtmocks.NewMockRegistrationEventProducer(ctrl)
				acSvc.EXPECT().Department(gomock.Any(), int64(1)).Return(academic.Department{Id: 1}, nil)
				acSvc.EXPECT().Specialization(gomock.Any(), int64(3)).
					Return(academic.Specialization{Id: 3, DepartmentId: 2}, nil)
				return repo, acSvc, p
			},
			user: domain.User{
				Email:            "student@pfe.tn",
				Role:             domain.RoleStudent,
				DepartmentId:     1,
				SpecializationId: 3,
				Student:          &domain.StudentProfile{},
			},
			pwd:     "abc",
			wantErr: ErrInvalidInput,
		},
		{
			name: "院系不存在",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository, academic.Service, event.RegistrationEventProducer) {
				repo := repomocks.NewMockUserRepository(ctrl)
				acSvc := academicmocks.NewMockService(ctrl)
				p := evtmocks.NewMockRegistrationEventProducer(ctrl)
				acSvc.EXPECT().Department(gomock.Any(), int64(9)).Return(academic.Department{}, academic.ErrNotFound)
				return repo, acSvc, p
			},
			user: domain.User{
				Email:        "admin@pfe.tn",
				Role:         domain.RoleAdmin,
				DepartmentId: 9,
				Admin:        &domain.AdminProfile{},
			},
			pwd:     "abc",
			wantErr: ErrInvalidInput,
		},
		{
			name: "角色资料不匹配",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository, academic.Service, event.RegistrationEventProducer) {
				return repomocks.NewMockUserRepository(ctrl), academicmocks.NewMockService(ctrl),
					evtmocks.NewMockRegistrationEventProducer(ctrl)
			},
			user:    domain.User{Email: "x@pfe.tn", Role: domain.RoleStudent},
			pwd:     "abc",
			wantErr: ErrInvalidInput,
		},
		{
			name: "邮箱重复",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository, academic.Service, event.RegistrationEventProducer) {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), repository.ErrUserDuplicate)
				return repo, academicmocks.NewMockService(ctrl), evtmocks.NewMockRegistrationEventProducer(ctrl)
			},
			user:    domain.User{Email: "x@pfe.tn", Role: domain.RoleAdmin, Admin: &domain.AdminProfile{}},
			pwd:     "abc",
			wantErr: ErrDuplicate,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl))
			id, err := svc.Register(context.Background(), tc.user, tc.pwd)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.UserRepository
		email    string
		pwd      string
		wantUser domain.User
		wantErr  error
	}{
		{
			name: "登录成功",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "ada@pfe.tn").Return(domain.User{
					Id: 1, Email: "ada@pfe.tn", Password: string(hash), Role: domain.RoleAdmin,
					Active: true, Admin: &domain.AdminProfile{},
				}, nil)
				return repo
			},
			email: "Ada@pfe.tn",
			pwd:   "secret",
			wantUser: domain.User{
				Id: 1, Email: "ada@pfe.tn", Role: domain.RoleAdmin,
				Active: true, Admin: &domain.AdminProfile{},
			},
		},
		{
			name: "密码错误",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "ada@pfe.tn").Return(domain.User{
					Id: 1, Password: string(hash), Active: true,
				}, nil)
				return repo
			},
			email:   "ada@pfe.tn",
			pwd:     "wrong",
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "nobody@pfe.tn").
					Return(domain.User{}, repository.ErrUserNotFound)
				return repo
			},
			email:   "nobody@pfe.tn",
			pwd:     "secret",
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "账号停用",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "ada@pfe.tn").Return(domain.User{
					Id: 1, Password: string(hash), Active: false,
				}, nil)
				return repo
			},
			email:   "ada@pfe.tn",
			pwd:     "secret",
			wantErr: ErrInactive,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl), academicmocks.NewMockService(ctrl),
				evtmocks.NewMockRegistrationEventProducer(ctrl))
			u, err := svc.Login(context.Background(), tc.email, tc.pwd)
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, tc.wantUser, u)
			}
		})
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockUserRepository(ctrl)
	repo.EXPECT().FindById(gomock.Any(), int64(5)).Return(domain.User{
		Id: 5, Role: domain.RoleProfessor,
		Professor: &domain.ProfessorProfile{Expertise: []string{"go"}, MaxCapacity: 6},
	}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, u domain.User) error {
		// 角色不能改，资料沿用旧的
		assert.Equal(t, domain.RoleProfessor, u.Role)
		assert.Equal(t, &domain.ProfessorProfile{Expertise: []string{"go"}, MaxCapacity: 6}, u.Professor)
		assert.Nil(t, u.Student)
		assert.Equal(t, "Grace", u.FirstName)
		return nil
	})
	svc := NewUserService(repo, academicmocks.NewMockService(ctrl), evtmocks.NewMockRegistrationEventProducer(ctrl))
	err := svc.UpdateProfile(context.Background(), domain.User{
		Id:        5,
		FirstName: "Grace",
		Role:      domain.RoleStudent,
		Student:   &domain.StudentProfile{StudentNumber: "hack"},
	})
	require.NoError(t, err)
}
