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
	"testing"

	"github.com/ecodeclub/pfehub/internal/pfe/internal/domain"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/repository"
	repomocks "github.com/ecodeclub/pfehub/internal/pfe/internal/repository/mocks"
	"github.com/ecodeclub/pfehub/internal/user"
	usermocks "github.com/ecodeclub/pfehub/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func professor(id, did, sid int64, expertise ...string) user.User {
	return user.User{
		Id:               id,
		FirstName:        "Prof",
		LastName:         string(rune('A' + id)),
		Email:            "prof@pfe.tn",
		Role:             user.RoleProfessor,
		Active:           true,
		DepartmentId:     did,
		SpecializationId: sid,
		Professor:        &user.ProfessorProfile{Expertise: expertise, MaxCapacity: 4},
	}
}

func TestRecommendService_Recommend(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.ProjectRepository, user.Service)
		wantIds []int64
		wantErr error
	}{
		{
			name: "按照分数排序并排除满负载",
			mock: func(ctrl *gomock.Controller) (repository.ProjectRepository, user.Service) {
				repo := repomocks.NewMockProjectRepository(ctrl)
				userSvc := usermocks.NewMockService(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Project{
					Id: 1, StudentId: 3, Keywords: []string{"Kubernetes"},
				}, nil)
				userSvc.EXPECT().Profile(gomock.Any(), int64(3)).Return(user.User{
					Id: 3, Role: user.RoleStudent, DepartmentId: 1, SpecializationId: 2,
				}, nil)
				userSvc.EXPECT().Professors(gomock.Any(), int64(0)).Return([]user.User{
					professor(10, 1, 0),
					professor(11, 1, 2, "cloud", "kubernetes"),
					professor(12, 1, 2),
					professor(13, 9, 9),
				}, nil)
				repo.EXPECT().ProfessorLoads(gomock.Any()).Return(map[int64]int{
					10: 1, 11: 3, 12: 4,
				}, nil)
				return repo, userSvc
			},
			// 11: 40+20+10 ; 10: 20+10 ; 13: 10 ; 12 已满
			wantIds: []int64{11, 10, 13},
		},
		{
			name: "学生不存在仍然可以推荐",
			mock: func(ctrl *gomock.Controller) (repository.ProjectRepository, user.Service) {
				repo := repomocks.NewMockProjectRepository(ctrl)
				userSvc := usermocks.NewMockService(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.Project{Id: 1, StudentId: 3}, nil)
				userSvc.EXPECT().Profile(gomock.Any(), int64(3)).Return(user.User{}, user.ErrNotFound)
				userSvc.EXPECT().Professors(gomock.Any(), int64(0)).Return([]user.User{
					professor(10, 1, 0),
				}, nil)
				repo.EXPECT().ProfessorLoads(gomock.Any()).Return(map[int64]int{}, nil)
				return repo, userSvc
			},
			wantIds: []int64{10},
		},
		{
			name: "项目不存在",
			mock: func(ctrl *gomock.Controller) (repository.ProjectRepository, user.Service) {
				repo := repomocks.NewMockProjectRepository(ctrl)
				userSvc := usermocks.NewMockService(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.Project{}, repository.ErrRecordNotFound)
				return repo, userSvc
			},
			wantErr: ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, userSvc := tc.mock(ctrl)
			res, err := NewRecommendService(repo, userSvc).Recommend(context.Background(), 1)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			ids := make([]int64, 0, len(res))
			for _, r := range res {
				ids = append(ids, r.ProfessorId)
			}
			assert.Equal(t, tc.wantIds, ids)
		})
	}
}

func TestRecommendService_AvailableProfessors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockProjectRepository(ctrl)
	userSvc := usermocks.NewMockService(ctrl)
	userSvc.EXPECT().Professors(gomock.Any(), int64(2)).Return([]user.User{
		professor(10, 1, 2),
		professor(11, 1, 2),
	}, nil)
	repo.EXPECT().ProfessorLoads(gomock.Any()).Return(map[int64]int{11: 4}, nil)

	res, err := NewRecommendService(repo, userSvc).AvailableProfessors(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, int64(10), res[0].ProfessorId)
	assert.Equal(t, 4, res[0].Capacity)
}
