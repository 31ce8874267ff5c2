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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicateKey   = errors.New("唯一索引冲突")
)

//go:generate mockgen -source=./academic.go -package=daomocks -destination=mocks/academic.mock.go AcademicDAO
type AcademicDAO interface {
	SaveDepartment(ctx context.Context, d Department) (int64, error)
	DeleteDepartment(ctx context.Context, id int64) error
	FindDepartment(ctx context.Context, id int64) (Department, error)
	ListDepartments(ctx context.Context) ([]Department, error)

	SaveSpecialization(ctx context.Context, s Specialization) (int64, error)
	DeleteSpecialization(ctx context.Context, id int64) error
	FindSpecialization(ctx context.Context, id int64) (Specialization, error)
	// ListSpecializations did 为 0 的时候返回全部
	ListSpecializations(ctx context.Context, did int64) ([]Specialization, error)

	SaveYear(ctx context.Context, y AcademicYear) (int64, error)
	DeleteYear(ctx context.Context, id int64) error
	FindYear(ctx context.Context, id int64) (AcademicYear, error)
	ListYears(ctx context.Context) ([]AcademicYear, error)
	FindCurrentYear(ctx context.Context) (AcademicYear, error)
	// SetCurrentYear 在一个事务里面取消旧的当前学年，并且设置新的
	SetCurrentYear(ctx context.Context, id int64) error
}

var _ AcademicDAO = &GORMAcademicDAO{}

type GORMAcademicDAO struct {
	db *egorm.Component
}

func NewGORMAcademicDAO(db *egorm.Component) AcademicDAO {
	return &GORMAcademicDAO{db: db}
}

func (dao *GORMAcademicDAO) SaveDepartment(ctx context.Context, d Department) (int64, error) {
	now := time.Now().UnixMilli()
	d.Utime = now
	if d.Id > 0 {
		res := dao.db.WithContext(ctx).Model(&Department{}).Where("id = ?", d.Id).
			Updates(map[string]any{
				"name":        d.Name,
				"code":        d.Code,
				"description": d.Description,
				"utime":       d.Utime,
			})
		return d.Id, dao.updateErr(res, &Department{}, d.Id)
	}
	d.Ctime = now
	err := dao.db.WithContext(ctx).Create(&d).Error
	return d.Id, dao.insertErr(err)
}

func (dao *GORMAcademicDAO) DeleteDepartment(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Where("id = ?", id).Delete(&Department{}).Error
}

func (dao *GORMAcademicDAO) FindDepartment(ctx context.Context, id int64) (Department, error) {
	var res Department
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMAcademicDAO) ListDepartments(ctx context.Context) ([]Department, error) {
	var res []Department
	err := dao.db.WithContext(ctx).Order("name ASC").Find(&res).Error
	return res, err
}

func (dao *GORMAcademicDAO) SaveSpecialization(ctx context.Context, s Specialization) (int64, error) {
	now := time.Now().UnixMilli()
	s.Utime = now
	if s.Id > 0 {
		res := dao.db.WithContext(ctx).Model(&Specialization{}).Where("id = ?", s.Id).
			Updates(map[string]any{
				"name":          s.Name,
				"code":          s.Code,
				"department_id": s.DepartmentId,
				"description":   s.Description,
				"utime":         s.Utime,
			})
		return s.Id, dao.updateErr(res, &Specialization{}, s.Id)
	}
	s.Ctime = now
	err := dao.db.WithContext(ctx).Create(&s).Error
	return s.Id, dao.insertErr(err)
}

func (dao *GORMAcademicDAO) DeleteSpecialization(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Where("id = ?", id).Delete(&Specialization{}).Error
}

func (dao *GORMAcademicDAO) FindSpecialization(ctx context.Context, id int64) (Specialization, error) {
	var res Specialization
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMAcademicDAO) ListSpecializations(ctx context.Context, did int64) ([]Specialization, error) {
	var res []Specialization
	db := dao.db.WithContext(ctx)
	if did > 0 {
		db = db.Where("department_id = ?", did)
	}
	err := db.Order("name ASC").Find(&res).Error
	return res, err
}

func (dao *GORMAcademicDAO) SaveYear(ctx context.Context, y AcademicYear) (int64, error) {
	now := time.Now().UnixMilli()
	y.Utime = now
	if y.Id > 0 {
		// is_current 只能通过 SetCurrentYear 修改
		res := dao.db.WithContext(ctx).Model(&AcademicYear{}).Where("id = ?", y.Id).
			Updates(map[string]any{
				"year":             y.Year,
				"submission_start": y.SubmissionStart,
				"submission_end":   y.SubmissionEnd,
				"defense_start":    y.DefenseStart,
				"defense_end":      y.DefenseEnd,
				"utime":            y.Utime,
			})
		return y.Id, dao.updateErr(res, &AcademicYear{}, y.Id)
	}
	y.Ctime = now
	y.IsCurrent = false
	err := dao.db.WithContext(ctx).Create(&y).Error
	return y.Id, dao.insertErr(err)
}

func (dao *GORMAcademicDAO) DeleteYear(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Where("id = ?", id).Delete(&AcademicYear{}).Error
}

func (dao *GORMAcademicDAO) FindYear(ctx context.Context, id int64) (AcademicYear, error) {
	var res AcademicYear
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMAcademicDAO) ListYears(ctx context.Context) ([]AcademicYear, error) {
	var res []AcademicYear
	err := dao.db.WithContext(ctx).Order("year DESC").Find(&res).Error
	return res, err
}

func (dao *GORMAcademicDAO) FindCurrentYear(ctx context.Context) (AcademicYear, error) {
	var res AcademicYear
	err := dao.db.WithContext(ctx).Where("is_current = ?", true).First(&res).Error
	return res, err
}

func (dao *GORMAcademicDAO) SetCurrentYear(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var y AcademicYear
		err := tx.Where("id = ?", id).First(&y).Error
		if err != nil {
			return err
		}
		now := time.Now().UnixMilli()
		err = tx.Model(&AcademicYear{}).
			Where("is_current = ? AND id <> ?", true, id).
			Updates(map[string]any{
				"is_current": false,
				"utime":      now,
			}).Error
		if err != nil {
			return err
		}
		return tx.Model(&AcademicYear{}).Where("id = ?", id).
			Updates(map[string]any{
				"is_current": true,
				"utime":      now,
			}).Error
	})
}

func (dao *GORMAcademicDAO) insertErr(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return ErrDuplicateKey
		}
	}
	return err
}

// updateErr 没有修改任何行不代表记录不存在，内容完全相同的更新也是 0
func (dao *GORMAcademicDAO) updateErr(res *gorm.DB, model any, id int64) error {
	if res.Error != nil {
		return dao.insertErr(res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	var cnt int64
	err := dao.db.WithContext(res.Statement.Context).Model(model).Where("id = ?", id).Count(&cnt).Error
	if err != nil {
		return err
	}
	if cnt == 0 {
		return ErrRecordNotFound
	}
	return nil
}
