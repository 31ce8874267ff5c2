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
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/pfehub/internal/user/internal/domain"
	"github.com/ecodeclub/pfehub/internal/user/internal/repository/cache"
	"github.com/ecodeclub/pfehub/internal/user/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=./mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	// Update 更新资料，不包括角色、邮箱和密码
	Update(ctx context.Context, u domain.User) error
	UpdatePassword(ctx context.Context, id int64, password string) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	// FindByEmail 会带上密码，用于登录
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context, role domain.Role, offset, limit int) ([]domain.User, error)
	Count(ctx context.Context, role domain.Role) (int64, error)
	Professors(ctx context.Context, sid int64) ([]domain.User, error)
}

type CachedUserRepository struct {
	dao    dao.UserDAO
	cache  cache.UserCache
	logger *elog.Component
}

func NewCachedUserRepository(d dao.UserDAO,
	c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.toEntity(u))
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.Update(ctx, ur.toEntity(u))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.Id)
}

func (ur *CachedUserRepository) UpdatePassword(ctx context.Context, id int64, password string) error {
	return ur.dao.UpdatePassword(ctx, id, password)
}

func (ur *CachedUserRepository) SetActive(ctx context.Context, id int64, active bool) error {
	err := ur.dao.SetActive(ctx, id, active)
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, id)
}

func (ur *CachedUserRepository) Delete(ctx context.Context, id int64) error {
	err := ur.dao.Delete(ctx, id)
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, id)
}

func (ur *CachedUserRepository) FindById(ctx context.Context,
	id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, err
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.toDomain(ue)
	u.Password = ""
	// 忽略掉这里的错误
	if er := ur.cache.Set(ctx, u); er != nil {
		ur.logger.Warn("缓存用户信息失败", elog.FieldErr(er), elog.Int64("uid", id))
	}
	return u, nil
}

func (ur *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := ur.dao.FindByIds(ctx, ids)
	return ur.toDomains(us), err
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := ur.dao.FindByEmail(ctx, email)
	return ur.toDomain(u), err
}

func (ur *CachedUserRepository) List(ctx context.Context, role domain.Role, offset, limit int) ([]domain.User, error) {
	us, err := ur.dao.ListByRole(ctx, role.String(), offset, limit)
	return ur.toDomains(us), err
}

func (ur *CachedUserRepository) Count(ctx context.Context, role domain.Role) (int64, error) {
	return ur.dao.CountByRole(ctx, role.String())
}

func (ur *CachedUserRepository) Professors(ctx context.Context, sid int64) ([]domain.User, error) {
	us, err := ur.dao.Professors(ctx, sid)
	return ur.toDomains(us), err
}

func (ur *CachedUserRepository) toDomains(us []dao.User) []domain.User {
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		u := ur.toDomain(src)
		u.Password = ""
		return u
	})
}

func (ur *CachedUserRepository) toEntity(u domain.User) dao.User {
	res := dao.User{
		Id:               u.Id,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		Password:         u.Password,
		Role:             u.Role.String(),
		DepartmentId:     u.DepartmentId,
		SpecializationId: u.SpecializationId,
		Active:           u.Active,
	}
	switch {
	case u.Student != nil:
		res.StudentNumber = sql.NullString{
			String: u.Student.StudentNumber,
			Valid:  u.Student.StudentNumber != "",
		}
		res.Promotion = u.Student.Promotion
		res.AcademicYearId = u.Student.AcademicYearId
	case u.Professor != nil:
		res.Expertise = domain.JoinTags(u.Professor.Expertise)
		res.MaxCapacity = u.Professor.MaxCapacity
	case u.Admin != nil:
		res.Permissions = sqlx.JsonColumn[[]string]{
			Val:   u.Admin.Permissions,
			Valid: len(u.Admin.Permissions) > 0,
		}
	}
	return res
}

func (ur *CachedUserRepository) toDomain(ue dao.User) domain.User {
	res := domain.User{
		Id:               ue.Id,
		FirstName:        ue.FirstName,
		LastName:         ue.LastName,
		Email:            ue.Email,
		Password:         ue.Password,
		Role:             domain.Role(ue.Role),
		DepartmentId:     ue.DepartmentId,
		SpecializationId: ue.SpecializationId,
		Active:           ue.Active,
		Ctime:            ue.Ctime,
		Utime:            ue.Utime,
	}
	switch res.Role {
	case domain.RoleStudent:
		res.Student = &domain.StudentProfile{
			StudentNumber:  ue.StudentNumber.String,
			Promotion:      ue.Promotion,
			AcademicYearId: ue.AcademicYearId,
		}
	case domain.RoleProfessor:
		res.Professor = &domain.ProfessorProfile{
			Expertise:   domain.SplitTags(ue.Expertise),
			MaxCapacity: ue.MaxCapacity,
		}
	case domain.RoleAdmin:
		res.Admin = &domain.AdminProfile{
			Permissions: ue.Permissions.Val,
		}
	}
	return res
}
