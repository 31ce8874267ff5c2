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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/domain"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/event"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*DefenseReminderJob)(nil)

// DefenseReminderJob 给 days 天之后答辩的评委发送提醒
type DefenseReminderJob struct {
	svc      service.DefenseService
	producer event.DefenseEventProducer
	days     int
	now      func() time.Time
	logger   *elog.Component
}

func NewDefenseReminderJob(svc service.DefenseService,
	producer event.DefenseEventProducer, days int) *DefenseReminderJob {
	if days <= 0 {
		days = 1
	}
	return &DefenseReminderJob{
		svc:      svc,
		producer: producer,
		days:     days,
		now:      time.Now,
		logger:   elog.DefaultLogger,
	}
}

func (j *DefenseReminderJob) Name() string {
	return "DefenseReminderJob"
}

func (j *DefenseReminderJob) Run(ctx context.Context) error {
	date := j.now().AddDate(0, 0, j.days).Format(domain.DateLayout)
	ds, err := j.svc.Range(ctx, date, date)
	if err != nil {
		return fmt.Errorf("查询 %s 的答辩失败: %w", date, err)
	}
	failed := 0
	for _, d := range ds {
		if !d.Status.Scheduled() {
			continue
		}
		evt := event.DefenseEvent{
			Action:    event.DefenseActionReminder,
			DefenseId: d.Id,
			ProjectId: d.ProjectId,
			Status:    d.Status.String(),
			Date:      d.Final.Date,
			Time:      d.Final.Time,
			Room:      d.Final.Room,
			Recipients: slice.FilterMap(d.Jury, func(idx int, src domain.JuryMember) (string, bool) {
				return src.Email, src.Email != ""
			}),
		}
		if err = j.producer.Produce(ctx, evt); err != nil {
			failed++
			j.logger.Error("发送答辩提醒失败",
				elog.FieldErr(err),
				elog.Int64("defenseId", d.Id))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d 个答辩提醒发送失败", failed)
	}
	return nil
}
