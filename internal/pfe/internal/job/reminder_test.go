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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/pfehub/internal/pfe/internal/domain"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/event"
	evtmocks "github.com/ecodeclub/pfehub/internal/pfe/internal/event/mocks"
	pfemocks "github.com/ecodeclub/pfehub/internal/pfe/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDefenseReminderJob_Run(t *testing.T) {
	now := time.Date(2025, 6, 19, 8, 0, 0, 0, time.Local)
	defenses := []domain.Defense{
		{
			Id: 1, ProjectId: 11, Status: domain.DefenseStatusValidated,
			Final: domain.Slot{Date: "2025-06-20", Time: "09:00", Room: "A1"},
			Jury: []domain.JuryMember{
				{Name: "Ada", Email: "ada@pfe.tn"},
				{Name: "Guest"},
			},
		},
		// 被拒绝的不提醒
		{Id: 2, ProjectId: 12, Status: domain.DefenseStatusRejected},
		{
			Id: 3, ProjectId: 13, Status: domain.DefenseStatusModified,
			Final: domain.Slot{Date: "2025-06-20", Time: "14:00", Room: "B2"},
		},
	}
	testCases := []struct {
		name    string
		mock    func(svc *pfemocks.MockDefenseService, p *evtmocks.MockDefenseEventProducer)
		wantErr bool
	}{
		{
			name: "提醒已经确定的答辩",
			mock: func(svc *pfemocks.MockDefenseService, p *evtmocks.MockDefenseEventProducer) {
				svc.EXPECT().Range(gomock.Any(), "2025-06-20", "2025-06-20").Return(defenses, nil)
				p.EXPECT().Produce(gomock.Any(), event.DefenseEvent{
					Action: event.DefenseActionReminder, DefenseId: 1, ProjectId: 11,
					Status: "VALIDATED", Date: "2025-06-20", Time: "09:00", Room: "A1",
					Recipients: []string{"ada@pfe.tn"},
				}).Return(nil)
				p.EXPECT().Produce(gomock.Any(), event.DefenseEvent{
					Action: event.DefenseActionReminder, DefenseId: 3, ProjectId: 13,
					Status: "MODIFIED", Date: "2025-06-20", Time: "14:00", Room: "B2",
					Recipients: []string{},
				}).Return(nil)
			},
		},
		{
			name: "部分发送失败",
			mock: func(svc *pfemocks.MockDefenseService, p *evtmocks.MockDefenseEventProducer) {
				svc.EXPECT().Range(gomock.Any(), "2025-06-20", "2025-06-20").Return(defenses, nil)
				p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq down"))
				p.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: true,
		},
		{
			name: "查询失败",
			mock: func(svc *pfemocks.MockDefenseService, p *evtmocks.MockDefenseEventProducer) {
				svc.EXPECT().Range(gomock.Any(), "2025-06-20", "2025-06-20").
					Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := pfemocks.NewMockDefenseService(ctrl)
			p := evtmocks.NewMockDefenseEventProducer(ctrl)
			tc.mock(svc, p)
			job := NewDefenseReminderJob(svc, p, 0)
			job.now = func() time.Time { return now }
			assert.Equal(t, "DefenseReminderJob", job.Name())
			err := job.Run(context.Background())
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}
