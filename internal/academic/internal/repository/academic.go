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
	"github.com/ecodeclub/pfehub/internal/academic/internal/domain"
	"github.com/ecodeclub/pfehub/internal/academic/internal/repository/cache"
	"github.com/ecodeclub/pfehub/internal/academic/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrRecordNotFound = dao.ErrRecordNotFound
	ErrDuplicateKey   = dao.ErrDuplicateKey
)

//go:generate mockgen -source=./academic.go -package=repomocks -destination=./mocks/academic.mock.go AcademicRepository
type AcademicRepository interface {
	SaveDepartment(ctx context.Context, d domain.Department) (int64, error)
	DeleteDepartment(ctx context.Context, id int64) error
	FindDepartment(ctx context.Context, id int64) (domain.Department, error)
	ListDepartments(ctx context.Context) ([]domain.Department, error)

	SaveSpecialization(ctx context.Context, s domain.Specialization) (int64, error)
	DeleteSpecialization(ctx context.Context, id int64) error
	FindSpecialization(ctx context.Context, id int64) (domain.Specialization, error)
	ListSpecializations(ctx context.Context, did int64) ([]domain.Specialization, error)

	SaveYear(ctx context.Context, y domain.AcademicYear) (int64, error)
	DeleteYear(ctx context.Context, id int64) error
	FindYear(ctx context.Context, id int64) (domain.AcademicYear, error)
	ListYears(ctx context.Context) ([]domain.AcademicYear, error)
	CurrentYear(ctx context.Context) (domain.AcademicYear, error)
	SetCurrentYear(ctx context.Context, id int64) error
}

type CachedAcademicRepository struct {
	dao    dao.AcademicDAO
	cache  cache.AcademicCache
	logger *elog.Component
}

func NewCachedAcademicRepository(d dao.AcademicDAO, c cache.AcademicCache) AcademicRepository {
	return &CachedAcademicRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedAcademicRepository) SaveDepartment(ctx context.Context, d domain.Department) (int64, error) {
	return repo.dao.SaveDepartment(ctx, dao.Department{
		Id:          d.Id,
		Name:        d.Name,
		Code:        d.Code,
		Description: d.Description,
	})
}

func (repo *CachedAcademicRepository) DeleteDepartment(ctx context.Context, id int64) error {
	return repo.dao.DeleteDepartment(ctx, id)
}

func (repo *CachedAcademicRepository) FindDepartment(ctx context.Context, id int64) (domain.Department, error) {
	d, err := repo.dao.FindDepartment(ctx, id)
	return repo.departmentToDomain(d), err
}

func (repo *CachedAcademicRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	ds, err := repo.dao.ListDepartments(ctx)
	return slice.Map(ds, func(idx int, src dao.Department) domain.Department {
		return repo.departmentToDomain(src)
	}), err
}

func (repo *CachedAcademicRepository) SaveSpecialization(ctx context.Context, s domain.Specialization) (int64, error) {
	return repo.dao.SaveSpecialization(ctx, dao.Specialization{
		Id:           s.Id,
		Name:         s.Name,
		Code:         s.Code,
		DepartmentId: s.DepartmentId,
		Description:  s.Description,
	})
}

func (repo *CachedAcademicRepository) DeleteSpecialization(ctx context.Context, id int64) error {
	return repo.dao.DeleteSpecialization(ctx, id)
}

func (repo *CachedAcademicRepository) FindSpecialization(ctx context.Context, id int64) (domain.Specialization, error) {
	s, err := repo.dao.FindSpecialization(ctx, id)
	return repo.specializationToDomain(s), err
}

func (repo *CachedAcademicRepository) ListSpecializations(ctx context.Context, did int64) ([]domain.Specialization, error) {
	ss, err := repo.dao.ListSpecializations(ctx, did)
	return slice.Map(ss, func(idx int, src dao.Specialization) domain.Specialization {
		return repo.specializationToDomain(src)
	}), err
}

func (repo *CachedAcademicRepository) SaveYear(ctx context.Context, y domain.AcademicYear) (int64, error) {
	id, err := repo.dao.SaveYear(ctx, dao.AcademicYear{
		Id:              y.Id,
		Year:            y.Year,
		SubmissionStart: y.SubmissionStart,
		SubmissionEnd:   y.SubmissionEnd,
		DefenseStart:    y.DefenseStart,
		DefenseEnd:      y.DefenseEnd,
	})
	if err != nil {
		return id, err
	}
	repo.evictCurrentYear(ctx)
	return id, nil
}

func (repo *CachedAcademicRepository) DeleteYear(ctx context.Context, id int64) error {
	err := repo.dao.DeleteYear(ctx, id)
	if err != nil {
		return err
	}
	repo.evictCurrentYear(ctx)
	return nil
}

func (repo *CachedAcademicRepository) FindYear(ctx context.Context, id int64) (domain.AcademicYear, error) {
	y, err := repo.dao.FindYear(ctx, id)
	return repo.yearToDomain(y), err
}

func (repo *CachedAcademicRepository) ListYears(ctx context.Context) ([]domain.AcademicYear, error) {
	ys, err := repo.dao.ListYears(ctx)
	return slice.Map(ys, func(idx int, src dao.AcademicYear) domain.AcademicYear {
		return repo.yearToDomain(src)
	}), err
}

func (repo *CachedAcademicRepository) CurrentYear(ctx context.Context) (domain.AcademicYear, error) {
	y, err := repo.cache.GetCurrentYear(ctx)
	if err == nil {
		return y, nil
	}
	entity, err := repo.dao.FindCurrentYear(ctx)
	if err != nil {
		return domain.AcademicYear{}, err
	}
	y = repo.yearToDomain(entity)
	err = repo.cache.SetCurrentYear(ctx, y)
	if err != nil {
		repo.logger.Error("缓存当前学年失败", elog.FieldErr(err), elog.Int64("id", y.Id))
	}
	return y, nil
}

func (repo *CachedAcademicRepository) SetCurrentYear(ctx context.Context, id int64) error {
	err := repo.dao.SetCurrentYear(ctx, id)
	if err != nil {
		return err
	}
	repo.evictCurrentYear(ctx)
	return nil
}

func (repo *CachedAcademicRepository) evictCurrentYear(ctx context.Context) {
	err := repo.cache.DelCurrentYear(ctx)
	if err != nil {
		repo.logger.Error("删除当前学年缓存失败", elog.FieldErr(err))
	}
}

func (repo *CachedAcademicRepository) departmentToDomain(d dao.Department) domain.Department {
	return domain.Department{
		Id:          d.Id,
		Name:        d.Name,
		Code:        d.Code,
		Description: d.Description,
		Ctime:       d.Ctime,
		Utime:       d.Utime,
	}
}

func (repo *CachedAcademicRepository) specializationToDomain(s dao.Specialization) domain.Specialization {
	return domain.Specialization{
		Id:           s.Id,
		Name:         s.Name,
		Code:         s.Code,
		DepartmentId: s.DepartmentId,
		Description:  s.Description,
		Ctime:        s.Ctime,
		Utime:        s.Utime,
	}
}

func (repo *CachedAcademicRepository) yearToDomain(y dao.AcademicYear) domain.AcademicYear {
	return domain.AcademicYear{
		Id:              y.Id,
		Year:            y.Year,
		SubmissionStart: y.SubmissionStart,
		SubmissionEnd:   y.SubmissionEnd,
		DefenseStart:    y.DefenseStart,
		DefenseEnd:      y.DefenseEnd,
		IsCurrent:       y.IsCurrent,
		Ctime:           y.Ctime,
		Utime:           y.Utime,
	}
}
