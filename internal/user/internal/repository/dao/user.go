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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

var ErrUserDuplicate = errors.New("邮箱或者学号已经注册")

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	Update(ctx context.Context, u User) error
	UpdatePassword(ctx context.Context, id int64, password string) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	ListByRole(ctx context.Context, role string, offset, limit int) ([]User, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	// Professors 所有启用的教授，sid > 0 的时候按照专业过滤
	Professors(ctx context.Context, sid int64) ([]User, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

// Update 角色、邮箱、密码都不会在这里修改
func (ud *GORMUserDAO) Update(ctx context.Context, u User) error {
	res := ud.db.WithContext(ctx).Model(&User{}).Where("id = ?", u.Id).
		Updates(map[string]any{
			"first_name":        u.FirstName,
			"last_name":         u.LastName,
			"department_id":     u.DepartmentId,
			"specialization_id": u.SpecializationId,
			"student_number":    u.StudentNumber,
			"promotion":         u.Promotion,
			"academic_year_id":  u.AcademicYearId,
			"expertise":         u.Expertise,
			"max_capacity":      u.MaxCapacity,
			"permissions":       u.Permissions,
			"utime":             time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

func (ud *GORMUserDAO) UpdatePassword(ctx context.Context, id int64, password string) error {
	return ud.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).
		Updates(map[string]any{
			"password": password,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (ud *GORMUserDAO) SetActive(ctx context.Context, id int64, active bool) error {
	res := ud.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).
		Updates(map[string]any{
			"active": active,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

func (ud *GORMUserDAO) Delete(ctx context.Context, id int64) error {
	return ud.db.WithContext(ctx).Where("id = ?", id).Delete(&User{}).Error
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var us []User
	if len(ids) == 0 {
		return us, nil
	}
	err := ud.db.WithContext(ctx).Find(&us, "id IN ?", ids).Error
	return us, err
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (ud *GORMUserDAO) ListByRole(ctx context.Context, role string, offset, limit int) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).Where("role = ?", role).
		Order("id DESC").Offset(offset).Limit(limit).Find(&us).Error
	return us, err
}

func (ud *GORMUserDAO) CountByRole(ctx context.Context, role string) (int64, error) {
	var res int64
	err := ud.db.WithContext(ctx).Model(&User{}).Where("role = ?", role).Count(&res).Error
	return res, err
}

func (ud *GORMUserDAO) Professors(ctx context.Context, sid int64) ([]User, error) {
	var us []User
	db := ud.db.WithContext(ctx).Where("role = ? AND active = ?", RoleProfessor, true)
	if sid > 0 {
		db = db.Where("specialization_id = ?", sid)
	}
	err := db.Order("id ASC").Find(&us).Error
	return us, err
}

const RoleProfessor = "PROFESSOR"

// User 三种角色共用一张表，角色相关的字段只在对应角色下有意义
type User struct {
	Id               int64  `gorm:"primaryKey,autoIncrement"`
	FirstName        string `gorm:"type:varchar(128)"`
	LastName         string `gorm:"type:varchar(128)"`
	Email            string `gorm:"type:varchar(256);uniqueIndex"`
	Password         string `gorm:"type:varchar(256)"`
	Role             string `gorm:"type:varchar(32);index"`
	DepartmentId     int64  `gorm:"index"`
	SpecializationId int64  `gorm:"index"`
	Active           bool

	// 学生
	StudentNumber  sql.NullString `gorm:"type:varchar(64);uniqueIndex"`
	Promotion      string         `gorm:"type:varchar(64)"`
	AcademicYearId int64

	// 教授，专长用逗号分隔
	Expertise   string `gorm:"type:varchar(1024)"`
	MaxCapacity int

	// 管理员
	Permissions sqlx.JsonColumn[[]string] `gorm:"type:varchar(1024)"`

	Ctime int64
	Utime int64
}
