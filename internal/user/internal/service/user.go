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

	"github.com/ecodeclub/pfehub/internal/academic"
	"github.com/ecodeclub/pfehub/internal/user/internal/domain"
	"github.com/ecodeclub/pfehub/internal/user/internal/event"
	"github.com/ecodeclub/pfehub/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNotFound           = errors.New("用户不存在")
	ErrDuplicate          = errors.New("邮箱或者学号已经注册")
	ErrInvalidInput       = errors.New("参数错误")
	ErrInvalidCredentials = errors.New("邮箱或者密码不对")
	ErrInactive           = errors.New("账号已停用")
)

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go Service
type Service interface {
	// Register 创建用户，password 是明文
	Register(ctx context.Context, u domain.User, password string) (int64, error)
	Login(ctx context.Context, email string, password string) (domain.User, error)
	ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error
	Profile(ctx context.Context, id int64) (domain.User, error)
	// UpdateProfile 角色不能修改，邮箱不能修改
	UpdateProfile(ctx context.Context, u domain.User) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
	FindByIds(ctx context.Context, ids []int64) (map[int64]domain.User, error)
	List(ctx context.Context, role domain.Role, offset, limit int) ([]domain.User, int64, error)
	// Professors 启用状态的教授，sid > 0 的时候只返回该专业的
	Professors(ctx context.Context, sid int64) ([]domain.User, error)
}

type userService struct {
	repo        repository.UserRepository
	academicSvc academic.Service
	producer    event.RegistrationEventProducer
	logger      *elog.Component
}

func NewUserService(repo repository.UserRepository,
	academicSvc academic.Service,
	p event.RegistrationEventProducer) Service {
	return &userService{
		repo:        repo,
		academicSvc: academicSvc,
		producer:    p,
		logger:      elog.DefaultLogger,
	}
}

func (svc *userService) Register(ctx context.Context, u domain.User, password string) (int64, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Email == "" || password == "" {
		return 0, fmt.Errorf("%w: 邮箱和密码不能为空", ErrInvalidInput)
	}
	if err := u.CheckProfile(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := svc.checkAffiliation(ctx, u); err != nil {
		return 0, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	u.Password = string(hash)
	u.Active = true
	id, err := svc.repo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, repository.ErrUserDuplicate) {
			return 0, fmt.Errorf("%w: %s", ErrDuplicate, u.Email)
		}
		return 0, err
	}
	evt := event.RegistrationEvent{Uid: id, Role: u.Role.String(), Email: u.Email}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		svc.logger.Error("发送注册成功消息失败",
			elog.FieldErr(e),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
	return id, nil
}

func (svc *userService) Login(ctx context.Context, email string, password string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	if !u.Active {
		return domain.User{}, ErrInactive
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: 新密码不能为空", ErrInvalidInput)
	}
	u, err := svc.Profile(ctx, id)
	if err != nil {
		return err
	}
	// 缓存里面没有密码，要按照邮箱重新查一次
	full, err := svc.repo.FindByEmail(ctx, u.Email)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(full.Password), []byte(oldPassword)) != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return svc.repo.UpdatePassword(ctx, id, string(hash))
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	u, err := svc.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return u, err
}

func (svc *userService) UpdateProfile(ctx context.Context, u domain.User) error {
	old, err := svc.Profile(ctx, u.Id)
	if err != nil {
		return err
	}
	u.Role = old.Role
	// 只允许修改自己角色对应的资料，没传就沿用旧的
	switch old.Role {
	case domain.RoleStudent:
		if u.Student == nil {
			u.Student = old.Student
		}
		u.Professor, u.Admin = nil, nil
	case domain.RoleProfessor:
		if u.Professor == nil {
			u.Professor = old.Professor
		}
		u.Student, u.Admin = nil, nil
	case domain.RoleAdmin:
		if u.Admin == nil {
			u.Admin = old.Admin
		}
		u.Student, u.Professor = nil, nil
	}
	if err = u.CheckProfile(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err = svc.checkAffiliation(ctx, u); err != nil {
		return err
	}
	err = svc.repo.Update(ctx, u)
	if errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("%w: id %d", ErrNotFound, u.Id)
	}
	return err
}

func (svc *userService) SetActive(ctx context.Context, id int64, active bool) error {
	err := svc.repo.SetActive(ctx, id, active)
	if errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return err
}

func (svc *userService) Delete(ctx context.Context, id int64) error {
	return svc.repo.Delete(ctx, id)
}

func (svc *userService) FindByIds(ctx context.Context, ids []int64) (map[int64]domain.User, error) {
	us, err := svc.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.User, len(us))
	for _, u := range us {
		res[u.Id] = u
	}
	return res, nil
}

func (svc *userService) List(ctx context.Context, role domain.Role, offset, limit int) ([]domain.User, int64, error) {
	var (
		eg    errgroup.Group
		us    []domain.User
		total int64
	)
	eg.Go(func() error {
		var err error
		us, err = svc.repo.List(ctx, role, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = svc.repo.Count(ctx, role)
		return err
	})
	return us, total, eg.Wait()
}

func (svc *userService) Professors(ctx context.Context, sid int64) ([]domain.User, error) {
	return svc.repo.Professors(ctx, sid)
}

// checkAffiliation 专业必须存在，并且属于所填的院系
func (svc *userService) checkAffiliation(ctx context.Context, u domain.User) error {
	if u.DepartmentId > 0 {
		if _, err := svc.academicSvc.Department(ctx, u.DepartmentId); err != nil {
			return svc.affiliationErr(err)
		}
	}
	if u.SpecializationId <= 0 {
		return nil
	}
	sp, err := svc.academicSvc.Specialization(ctx, u.SpecializationId)
	if err != nil {
		return svc.affiliationErr(err)
	}
	if u.DepartmentId > 0 && sp.DepartmentId != u.DepartmentId {
		return fmt.Errorf("%w: 专业 %d 不属于院系 %d", ErrInvalidInput, sp.Id, u.DepartmentId)
	}
	return nil
}

func (svc *userService) affiliationErr(err error) error {
	if errors.Is(err, academic.ErrNotFound) {
		return fmt.Errorf("%w: 院系或者专业不存在", ErrInvalidInput)
	}
	return err
}
