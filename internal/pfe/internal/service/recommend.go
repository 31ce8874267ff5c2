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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/domain"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/repository"
	"github.com/ecodeclub/pfehub/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./recommend.go -package=pfemocks -destination=../../mocks/recommend.mock.go -typed=false RecommendService
type RecommendService interface {
	// Recommend 最多返回 5 个候选导师，按照分数降序
	Recommend(ctx context.Context, pid int64) ([]domain.Recommendation, error)
	// AvailableProfessors 负载小于容量的教授，sid > 0 的时候只看该专业
	AvailableProfessors(ctx context.Context, sid int64) ([]domain.Candidate, error)
}

type recommendService struct {
	repo    repository.ProjectRepository
	userSvc user.Service
	logger  *elog.Component
}

func NewRecommendService(repo repository.ProjectRepository, userSvc user.Service) RecommendService {
	return &recommendService{
		repo:    repo,
		userSvc: userSvc,
		logger:  elog.DefaultLogger,
	}
}

func (svc *recommendService) Recommend(ctx context.Context, pid int64) ([]domain.Recommendation, error) {
	p, err := svc.repo.FindById(ctx, pid)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 项目 %d", ErrNotFound, pid)
		}
		return nil, err
	}
	sub := domain.Subject{ProjectId: p.Id, Keywords: p.Keywords}
	stu, err := svc.userSvc.Profile(ctx, p.StudentId)
	switch {
	case err == nil:
		sub.DepartmentId = stu.DepartmentId
		sub.SpecializationId = stu.SpecializationId
	case errors.Is(err, user.ErrNotFound):
		// 学生被删除了，只按照关键词和负载推荐
		svc.logger.Warn("项目的学生不存在", elog.Int64("pid", pid), elog.Int64("sid", p.StudentId))
	default:
		return nil, err
	}
	candidates, err := svc.candidates(ctx, 0)
	if err != nil {
		return nil, err
	}
	return domain.Recommend(sub, candidates), nil
}

func (svc *recommendService) AvailableProfessors(ctx context.Context, sid int64) ([]domain.Candidate, error) {
	candidates, err := svc.candidates(ctx, sid)
	if err != nil {
		return nil, err
	}
	return slice.FilterMap(candidates, func(idx int, src domain.Candidate) (domain.Candidate, bool) {
		return src, src.Available()
	}), nil
}

func (svc *recommendService) candidates(ctx context.Context, sid int64) ([]domain.Candidate, error) {
	var (
		eg    errgroup.Group
		profs []user.User
		loads map[int64]int
	)
	eg.Go(func() error {
		var err error
		profs, err = svc.userSvc.Professors(ctx, sid)
		return err
	})
	eg.Go(func() error {
		var err error
		loads, err = svc.repo.ProfessorLoads(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return slice.FilterMap(profs, func(idx int, src user.User) (domain.Candidate, bool) {
		if src.Professor == nil {
			return domain.Candidate{}, false
		}
		return domain.Candidate{
			ProfessorId:      src.Id,
			Name:             src.FullName(),
			Email:            src.Email,
			DepartmentId:     src.DepartmentId,
			SpecializationId: src.SpecializationId,
			Expertise:        src.Professor.Expertise,
			Load:             loads[src.Id],
			Capacity:         src.Professor.MaxCapacity,
		}, true
	}), nil
}
