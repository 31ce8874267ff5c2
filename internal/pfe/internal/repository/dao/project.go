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
	// ErrDuplicateProject 同一个学生重复提交
	ErrDuplicateProject = errors.New("学生已经提交过项目")
	// ErrStatusChanged 更新的时候状态已经不是预期的状态
	ErrStatusChanged  = errors.New("状态已经发生变化")
	ErrCapacityExceed = errors.New("导师指导的项目已满")
)

type ProjectDAO interface {
	Create(ctx context.Context, p Project) (int64, error)
	// Update 只更新非零值字段
	Update(ctx context.Context, p Project) error
	FindById(ctx context.Context, id int64) (Project, error)
	FindByStudent(ctx context.Context, sid int64) (Project, error)
	FindByProfessor(ctx context.Context, pid int64) ([]Project, error)
	// List status 为空的时候不过滤
	List(ctx context.Context, status string, offset, limit int) ([]Project, error)
	Count(ctx context.Context, status string) (int64, error)
	Recent(ctx context.Context, limit int) ([]Project, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	ProfessorLoads(ctx context.Context) ([]ProfessorLoad, error)
	// Assign 在同一个事务里面检查导师容量并且分配
	Assign(ctx context.Context, id, professorId int64, capacity int, comments string, from []string) error
	// Transit 只有当前状态在 from 里面才会更新，from 为空不校验
	Transit(ctx context.Context, id int64, from []string, to string, fields map[string]any) error
	// Delete 级联删除交付物、答辩以及评委
	Delete(ctx context.Context, id int64) error
}

var _ ProjectDAO = &GORMProjectDAO{}

type GORMProjectDAO struct {
	db *egorm.Component
}

func NewGORMProjectDAO(db *egorm.Component) ProjectDAO {
	return &GORMProjectDAO{db: db}
}

func (dao *GORMProjectDAO) Create(ctx context.Context, p Project) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := dao.db.WithContext(ctx).Create(&p).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateProject
		}
	}
	return p.Id, err
}

func (dao *GORMProjectDAO) Update(ctx context.Context, p Project) error {
	// 状态、学生和导师不允许在这里修改
	upd := Project{
		Title:           p.Title,
		Description:     p.Description,
		Objectives:      p.Objectives,
		Context:         p.Context,
		Methodology:     p.Methodology,
		ExpectedResults: p.ExpectedResults,
		Keywords:        p.Keywords,
		ProposalFileURL: p.ProposalFileURL,
		Utime:           time.Now().UnixMilli(),
	}
	res := dao.db.WithContext(ctx).Model(&Project{}).Where("id = ?", p.Id).
		Updates(&upd)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (dao *GORMProjectDAO) FindById(ctx context.Context, id int64) (Project, error) {
	var res Project
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMProjectDAO) FindByStudent(ctx context.Context, sid int64) (Project, error) {
	var res Project
	err := dao.db.WithContext(ctx).Where("student_id = ?", sid).First(&res).Error
	return res, err
}

func (dao *GORMProjectDAO) FindByProfessor(ctx context.Context, pid int64) ([]Project, error) {
	var res []Project
	err := dao.db.WithContext(ctx).Where("professor_id = ?", pid).
		Order("utime DESC").Find(&res).Error
	return res, err
}

func (dao *GORMProjectDAO) List(ctx context.Context, status string, offset, limit int) ([]Project, error) {
	var res []Project
	db := dao.db.WithContext(ctx)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (dao *GORMProjectDAO) Count(ctx context.Context, status string) (int64, error) {
	var res int64
	db := dao.db.WithContext(ctx).Model(&Project{})
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Count(&res).Error
	return res, err
}

func (dao *GORMProjectDAO) Recent(ctx context.Context, limit int) ([]Project, error) {
	var res []Project
	err := dao.db.WithContext(ctx).Order("submitted_at DESC").Limit(limit).Find(&res).Error
	return res, err
}

func (dao *GORMProjectDAO) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var res []StatusCount
	err := dao.db.WithContext(ctx).Model(&Project{}).
		Select("status, COUNT(*) AS cnt").Group("status").Scan(&res).Error
	return res, err
}

func (dao *GORMProjectDAO) ProfessorLoads(ctx context.Context) ([]ProfessorLoad, error) {
	var res []ProfessorLoad
	err := dao.db.WithContext(ctx).Model(&Project{}).
		Select("professor_id, COUNT(*) AS cnt").
		Where("professor_id > 0").
		Group("professor_id").Scan(&res).Error
	return res, err
}

func (dao *GORMProjectDAO) Assign(ctx context.Context, id, professorId int64,
	capacity int, comments string, from []string) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var load int64
		err := tx.Model(&Project{}).
			Where("professor_id = ? AND id <> ?", professorId, id).
			Count(&load).Error
		if err != nil {
			return err
		}
		if load >= int64(capacity) {
			return ErrCapacityExceed
		}
		now := time.Now().UnixMilli()
		return transitProject(tx, id, from, "UNDER_REVIEW", map[string]any{
			"professor_id":       professorId,
			"professor_comments": comments,
			"assigned_at":        now,
		})
	})
}

func (dao *GORMProjectDAO) Transit(ctx context.Context, id int64, from []string,
	to string, fields map[string]any) error {
	return transitProject(dao.db.WithContext(ctx), id, from, to, fields)
}

func transitProject(db *gorm.DB, id int64, from []string,
	to string, fields map[string]any) error {
	updates := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		updates[k] = v
	}
	updates["status"] = to
	updates["utime"] = time.Now().UnixMilli()
	query := db.Model(&Project{}).Where("id = ?", id)
	if len(from) > 0 {
		query = query.Where("status IN ?", from)
	}
	res := query.Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	var cnt int64
	err := db.Model(&Project{}).Where("id = ?", id).Count(&cnt).Error
	if err != nil {
		return err
	}
	if cnt == 0 {
		return ErrRecordNotFound
	}
	return ErrStatusChanged
}

func (dao *GORMProjectDAO) Delete(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dids []int64
		err := tx.Model(&Defense{}).Where("project_id = ?", id).Pluck("id", &dids).Error
		if err != nil {
			return err
		}
		if len(dids) > 0 {
			if err = tx.Where("defense_id IN ?", dids).Delete(&JuryMember{}).Error; err != nil {
				return err
			}
			if err = tx.Where("id IN ?", dids).Delete(&Defense{}).Error; err != nil {
				return err
			}
		}
		if err = tx.Where("project_id = ?", id).Delete(&Deliverable{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Project{}).Error
	})
}
