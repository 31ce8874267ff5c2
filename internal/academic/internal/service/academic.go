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

	"github.com/ecodeclub/pfehub/internal/academic/internal/domain"
	"github.com/ecodeclub/pfehub/internal/academic/internal/repository"
)

var (
	ErrNotFound     = errors.New("数据不存在")
	ErrDuplicate    = errors.New("编码已存在")
	ErrInvalidInput = errors.New("参数错误")
)

//go:generate mockgen -source=./academic.go -package=academicmocks -destination=../../mocks/academic.mock.go Service
type Service interface {
	SaveDepartment(ctx context.Context, d domain.Department) (int64, error)
	DeleteDepartment(ctx context.Context, id int64) error
	Department(ctx context.Context, id int64) (domain.Department, error)
	Departments(ctx context.Context) ([]domain.Department, error)

	SaveSpecialization(ctx context.Context, s domain.Specialization) (int64, error)
	DeleteSpecialization(ctx context.Context, id int64) error
	Specialization(ctx context.Context, id int64) (domain.Specialization, error)
	Specializations(ctx context.Context, did int64) ([]domain.Specialization, error)

	SaveYear(ctx context.Context, y domain.AcademicYear) (int64, error)
	DeleteYear(ctx context.Context, id int64) error
	Year(ctx context.Context, id int64) (domain.AcademicYear, error)
	Years(ctx context.Context) ([]domain.AcademicYear, error)
	CurrentYear(ctx context.Context) (domain.AcademicYear, error)
	SetCurrentYear(ctx context.Context, id int64) error
}

type service struct {
	repo repository.AcademicRepository
}

func NewService(repo repository.AcademicRepository) Service {
	return &service{repo: repo}
}

func (s *service) SaveDepartment(ctx context.Context, d domain.Department) (int64, error) {
	if d.Name == "" || d.Code == "" {
		return 0, fmt.Errorf("%w: 院系名称和编码不能为空", ErrInvalidInput)
	}
	id, err := s.repo.SaveDepartment(ctx, d)
	return id, s.wrap(err)
}

func (s *service) DeleteDepartment(ctx context.Context, id int64) error {
	return s.repo.DeleteDepartment(ctx, id)
}

func (s *service) Department(ctx context.Context, id int64) (domain.Department, error) {
	d, err := s.repo.FindDepartment(ctx, id)
	return d, s.wrap(err)
}

func (s *service) Departments(ctx context.Context) ([]domain.Department, error) {
	return s.repo.ListDepartments(ctx)
}

func (s *service) SaveSpecialization(ctx context.Context, sp domain.Specialization) (int64, error) {
	if sp.Name == "" || sp.Code == "" || sp.DepartmentId <= 0 {
		return 0, fmt.Errorf("%w: 专业名称、编码和所属院系不能为空", ErrInvalidInput)
	}
	_, err := s.repo.FindDepartment(ctx, sp.DepartmentId)
	if err != nil {
		return 0, s.wrap(err)
	}
	id, err := s.repo.SaveSpecialization(ctx, sp)
	return id, s.wrap(err)
}

func (s *service) DeleteSpecialization(ctx context.Context, id int64) error {
	return s.repo.DeleteSpecialization(ctx, id)
}

func (s *service) Specialization(ctx context.Context, id int64) (domain.Specialization, error) {
	sp, err := s.repo.FindSpecialization(ctx, id)
	return sp, s.wrap(err)
}

func (s *service) Specializations(ctx context.Context, did int64) ([]domain.Specialization, error) {
	return s.repo.ListSpecializations(ctx, did)
}

func (s *service) SaveYear(ctx context.Context, y domain.AcademicYear) (int64, error) {
	if y.Year == "" {
		return 0, fmt.Errorf("%w: 学年不能为空", ErrInvalidInput)
	}
	var err error
	dates := []*string{&y.SubmissionStart, &y.SubmissionEnd, &y.DefenseStart, &y.DefenseEnd}
	for _, d := range dates {
		*d, err = domain.NormalizeDate(*d)
		if err != nil {
			return 0, fmt.Errorf("%w: 日期格式错误 %w", ErrInvalidInput, err)
		}
	}
	id, err := s.repo.SaveYear(ctx, y)
	if err != nil {
		return id, s.wrap(err)
	}
	if y.IsCurrent {
		return id, s.wrap(s.repo.SetCurrentYear(ctx, id))
	}
	return id, nil
}

func (s *service) DeleteYear(ctx context.Context, id int64) error {
	return s.repo.DeleteYear(ctx, id)
}

func (s *service) Year(ctx context.Context, id int64) (domain.AcademicYear, error) {
	y, err := s.repo.FindYear(ctx, id)
	return y, s.wrap(err)
}

func (s *service) Years(ctx context.Context) ([]domain.AcademicYear, error) {
	return s.repo.ListYears(ctx)
}

func (s *service) CurrentYear(ctx context.Context) (domain.AcademicYear, error) {
	y, err := s.repo.CurrentYear(ctx)
	return y, s.wrap(err)
}

func (s *service) SetCurrentYear(ctx context.Context, id int64) error {
	return s.wrap(s.repo.SetCurrentYear(ctx, id))
}

func (s *service) wrap(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, repository.ErrDuplicateKey):
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	default:
		return err
	}
}
