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

package ioc

import (
	"context"
	"time"

	"github.com/ecodeclub/pfehub/internal/pfe"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

// initCronJobs 每个任务对应配置里面 cron 下的一个 key
func initCronJobs(reminder *pfe.DefenseReminderJob) []ecron.Ecron {
	jobs := map[string]ecron.NamedJob{
		"cron.defenseReminder": reminder,
	}
	res := make([]ecron.Ecron, 0, len(jobs))
	for key, job := range jobs {
		res = append(res, ecron.Load(key).Build(ecron.WithJob(loggedJob(job))))
	}
	return res
}

func loggedJob(job ecron.NamedJob) ecron.FuncJob {
	logger := elog.DefaultLogger.With(elog.String("cronjob", job.Name()))
	return func(ctx context.Context) error {
		start := time.Now()
		if err := job.Run(ctx); err != nil {
			logger.Error("定时任务失败", elog.FieldErr(err), elog.FieldCost(time.Since(start)))
			return err
		}
		logger.Info("定时任务完成", elog.FieldCost(time.Since(start)))
		return nil
	}
}
