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
	"gorm.io/gorm"
)

var ErrDefenseExists = errors.New("项目已经有答辩安排")

const (
	defenseStatusProposed  = "PROPOSED"
	defenseStatusRejected  = "REJECTED"
	defenseStatusValidated = "VALIDATED"
	defenseStatusModified  = "MODIFIED"

	projectStatusFinalSubmission  = "FINAL_SUBMISSION"
	projectStatusDefenseScheduled = "DEFENSE_SCHEDULED"
)

// DefenseTransition 答辩状态变更，连同评委和项目状态在一个事务里面完成
type DefenseTransition struct {
	Id int64
	// From 期望的当前状态，为空不校验
	From   string
	Fields map[string]any

	ReplaceJury bool
	Jury        []JuryMember

	ProjectId int64
	// ProjectStatus 为空不修改项目
	ProjectStatus string
}

type DefenseDAO interface {
	// Propose 新建答辩，或者复用被拒绝的答辩
	Propose(ctx context.Context, d Defense, jury []JuryMember) (int64, error)
	Apply(ctx context.Context, t DefenseTransition) error
	ReplaceJury(ctx context.Context, did int64, jury []JuryMember) error
	Delete(ctx context.Context, id int64) error

	FindById(ctx context.Context, id int64) (Defense, error)
	FindByProject(ctx context.Context, pid int64) (Defense, error)
	FindByProjects(ctx context.Context, pids []int64) ([]Defense, error)
	Jury(ctx context.Context, did int64) ([]JuryMember, error)
	JuryByDefenses(ctx context.Context, dids []int64) ([]JuryMember, error)

	FindByStatus(ctx context.Context, status string) ([]Defense, error)
	Upcoming(ctx context.Context, from string, limit int) ([]Defense, error)
	CountUpcoming(ctx context.Context, from string) (int64, error)
	Range(ctx context.Context, start, end string) ([]Defense, error)
	Evaluated(ctx context.Context) ([]Defense, error)
	FindByRoomAndDate(ctx context.Context, room, date string) ([]Defense, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
}

var _ DefenseDAO = &GORMDefenseDAO{}

type GORMDefenseDAO struct {
	db *egorm.Component
}

func NewGORMDefenseDAO(db *egorm.Component) DefenseDAO {
	return &GORMDefenseDAO{db: db}
}

func (dao *GORMDefenseDAO) Propose(ctx context.Context, d Defense, jury []JuryMember) (int64, error) {
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old Defense
		err := tx.Where("project_id = ?", d.ProjectId).First(&old).Error
		switch {
		case err == nil:
			if old.Status != defenseStatusRejected {
				return ErrDefenseExists
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return err
		}

		err = transitProject(tx, d.ProjectId, []string{projectStatusFinalSubmission},
			projectStatusDefenseScheduled, nil)
		if err != nil {
			return err
		}

		now := time.Now().UnixMilli()
		if old.Id > 0 {
			d.Id = old.Id
			err = tx.Model(&Defense{}).Where("id = ?", old.Id).
				Updates(map[string]any{
					"proposed_date":       d.ProposedDate,
					"proposed_time":       d.ProposedTime,
					"proposed_room":       d.ProposedRoom,
					"final_date":          "",
					"final_time":          "",
					"final_room":          "",
					"status":              defenseStatusProposed,
					"proposed_at":         now,
					"validated_at":        0,
					"validated_by":        0,
					"rejection_reason":    "",
					"modification_reason": "",
					"notes":               d.Notes,
					// 重新提议的答辩不能带着上一次的评分
					"presentation_quality": nil,
					"subject_mastery":      nil,
					"question_answers":     nil,
					"time_respect":         nil,
					"final_grade":          nil,
					"evaluation_comments":  "",
					"strengths":            "",
					"improvements":         "",
					"evaluated_at":         0,
					"evaluated_by":         0,
					"utime":                now,
				}).Error
		} else {
			d.Status = defenseStatusProposed
			d.ProposedAt = now
			d.Ctime = now
			d.Utime = now
			err = tx.Create(&d).Error
		}
		if err != nil {
			return err
		}
		return replaceJury(tx, d.Id, jury)
	})
	return d.Id, err
}

func (dao *GORMDefenseDAO) Apply(ctx context.Context, t DefenseTransition) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := make(map[string]any, len(t.Fields)+1)
		for k, v := range t.Fields {
			updates[k] = v
		}
		updates["utime"] = time.Now().UnixMilli()
		query := tx.Model(&Defense{}).Where("id = ?", t.Id)
		if t.From != "" {
			query = query.Where("status = ?", t.From)
		}
		res := query.Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// MySQL 默认返回的是真正被修改的行数，同一毫秒内的重复写入也是 0
			var cur Defense
			err := tx.Select("id", "status").Where("id = ?", t.Id).First(&cur).Error
			if err != nil {
				return err
			}
			if t.From != "" && cur.Status != t.From {
				return ErrStatusChanged
			}
		}
		if t.ReplaceJury {
			if err := replaceJury(tx, t.Id, t.Jury); err != nil {
				return err
			}
		}
		if t.ProjectStatus != "" {
			return transitProject(tx, t.ProjectId, nil, t.ProjectStatus, nil)
		}
		return nil
	})
}

func (dao *GORMDefenseDAO) ReplaceJury(ctx context.Context, did int64, jury []JuryMember) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		err := tx.Model(&Defense{}).Where("id = ?", did).Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt == 0 {
			return ErrRecordNotFound
		}
		err = tx.Model(&Defense{}).Where("id = ?", did).
			Update("utime", time.Now().UnixMilli()).Error
		if err != nil {
			return err
		}
		return replaceJury(tx, did, jury)
	})
}

func replaceJury(tx *gorm.DB, did int64, jury []JuryMember) error {
	err := tx.Where("defense_id = ?", did).Delete(&JuryMember{}).Error
	if err != nil || len(jury) == 0 {
		return err
	}
	now := time.Now().UnixMilli()
	for i := range jury {
		jury[i].Id = 0
		jury[i].DefenseId = did
		jury[i].Ctime = now
		jury[i].Utime = now
	}
	return tx.Create(&jury).Error
}

// Delete 已经安排答辩的项目会退回 FINAL_SUBMISSION，这样可以重新提议
func (dao *GORMDefenseDAO) Delete(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var d Defense
		if err := tx.Where("id = ?", id).First(&d).Error; err != nil {
			return err
		}
		if err := tx.Where("defense_id = ?", id).Delete(&JuryMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(&Defense{}).Error; err != nil {
			return err
		}
		return tx.Model(&Project{}).
			Where("id = ? AND status = ?", d.ProjectId, projectStatusDefenseScheduled).
			Updates(map[string]any{
				"status": projectStatusFinalSubmission,
				"utime":  time.Now().UnixMilli(),
			}).Error
	})
}

func (dao *GORMDefenseDAO) FindById(ctx context.Context, id int64) (Defense, error) {
	var res Defense
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMDefenseDAO) FindByProject(ctx context.Context, pid int64) (Defense, error) {
	var res Defense
	err := dao.db.WithContext(ctx).Where("project_id = ?", pid).First(&res).Error
	return res, err
}

func (dao *GORMDefenseDAO) FindByProjects(ctx context.Context, pids []int64) ([]Defense, error) {
	var res []Defense
	if len(pids) == 0 {
		return res, nil
	}
	err := dao.db.WithContext(ctx).Where("project_id IN ?", pids).
		Order("id DESC").Find(&res).Error
	return res, err
}

func (dao *GORMDefenseDAO) Jury(ctx context.Context, did int64) ([]JuryMember, error) {
	var res []JuryMember
	err := dao.db.WithContext(ctx).Where("defense_id = ?", did).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (dao *GORMDefenseDAO) JuryByDefenses(ctx context.Context, dids []int64) ([]JuryMember, error) {
	var res []JuryMember
	if len(dids) == 0 {
		return res, nil
	}
	err := dao.db.WithContext(ctx).Where("defense_id IN ?", dids).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (dao *GORMDefenseDAO) FindByStatus(ctx context.Context, status string) ([]Defense, error) {
	var res []Defense
	err := dao.db.WithContext(ctx).Where("status = ?", status).
		Order("proposed_at ASC").Find(&res).Error
	return res, err
}

func (dao *GORMDefenseDAO) Upcoming(ctx context.Context, from string, limit int) ([]Defense, error) {
	var res []Defense
	err := dao.upcoming(ctx, from).
		Order("final_date ASC, final_time ASC").Limit(limit).Find(&res).Error
	return res, err
}

func (dao *GORMDefenseDAO) CountUpcoming(ctx context.Context, from string) (int64, error) {
	var res int64
	err := dao.upcoming(ctx, from).Count(&res).Error
	return res, err
}

func (dao *GORMDefenseDAO) upcoming(ctx context.Context, from string) *gorm.DB {
	return dao.db.WithContext(ctx).Model(&Defense{}).
		Where("status IN ? AND final_date >= ?",
			[]string{defenseStatusValidated, defenseStatusModified}, from)
}

func (dao *GORMDefenseDAO) Range(ctx context.Context, start, end string) ([]Defense, error) {
	var res []Defense
	err := dao.db.WithContext(ctx).
		Where("final_date >= ? AND final_date <= ?", start, end).
		Order("final_date ASC, final_time ASC").Find(&res).Error
	return res, err
}

func (dao *GORMDefenseDAO) Evaluated(ctx context.Context) ([]Defense, error) {
	var res []Defense
	err := dao.db.WithContext(ctx).
		Where("final_grade IS NOT NULL AND evaluated_at > 0").
		Order("evaluated_at DESC").Find(&res).Error
	return res, err
}

func (dao *GORMDefenseDAO) FindByRoomAndDate(ctx context.Context, room, date string) ([]Defense, error) {
	var res []Defense
	err := dao.db.WithContext(ctx).
		Where("final_room = ? AND final_date = ?", room, date).
		Order("final_time ASC").Find(&res).Error
	return res, err
}

func (dao *GORMDefenseDAO) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var res []StatusCount
	err := dao.db.WithContext(ctx).Model(&Defense{}).
		Select("status, COUNT(*) AS cnt").Group("status").Scan(&res).Error
	return res, err
}
