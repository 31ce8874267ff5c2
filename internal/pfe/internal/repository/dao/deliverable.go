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
	"time"

	"github.com/ego-component/egorm"
)

type DeliverableDAO interface {
	Create(ctx context.Context, d Deliverable) (int64, error)
	FindById(ctx context.Context, id int64) (Deliverable, error)
	FindByProject(ctx context.Context, pid int64) ([]Deliverable, error)
	Delete(ctx context.Context, pid, id int64) error
}

type GORMDeliverableDAO struct {
	db *egorm.Component
}

func NewGORMDeliverableDAO(db *egorm.Component) DeliverableDAO {
	return &GORMDeliverableDAO{db: db}
}

func (dao *GORMDeliverableDAO) Create(ctx context.Context, d Deliverable) (int64, error) {
	now := time.Now().UnixMilli()
	d.Ctime = now
	d.Utime = now
	if d.SubmittedAt == 0 {
		d.SubmittedAt = now
	}
	err := dao.db.WithContext(ctx).Create(&d).Error
	return d.Id, err
}

func (dao *GORMDeliverableDAO) FindById(ctx context.Context, id int64) (Deliverable, error) {
	var res Deliverable
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMDeliverableDAO) FindByProject(ctx context.Context, pid int64) ([]Deliverable, error) {
	var res []Deliverable
	err := dao.db.WithContext(ctx).Where("project_id = ?", pid).
		Order("submitted_at DESC").Find(&res).Error
	return res, err
}

// Delete 带上 pid 避免删除别人项目的交付物
func (dao *GORMDeliverableDAO) Delete(ctx context.Context, pid, id int64) error {
	res := dao.db.WithContext(ctx).Where("id = ? AND project_id = ?", id, pid).
		Delete(&Deliverable{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
