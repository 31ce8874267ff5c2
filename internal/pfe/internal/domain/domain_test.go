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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlot(t *testing.T) {
	testCases := []struct {
		name    string
		date    string
		tm      string
		room    string
		want    Slot
		wantErr error
	}{
		{
			name: "带秒的时间",
			date: "2025-06-20", tm: "09:30:00", room: " A1 ",
			want: Slot{Date: "2025-06-20", Time: "09:30", Room: "A1"},
		},
		{
			name: "空字段保留",
			want: Slot{},
		},
		{
			name: "非法日期",
			date: "2025-13-01", tm: "09:30",
			wantErr: ErrInvalidSlot,
		},
		{
			name: "非法时间",
			date: "2025-06-20", tm: "25:00",
			wantErr: ErrInvalidSlot,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSlot(tc.date, tc.tm, tc.room)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, s)
		})
	}
}

func TestSlot_Or(t *testing.T) {
	proposed := Slot{Date: "2025-06-20", Time: "09:00", Room: "A1"}
	s := Slot{Room: "B2"}.Or(proposed)
	assert.Equal(t, Slot{Date: "2025-06-20", Time: "09:00", Room: "B2"}, s)
	require.True(t, s.Complete())
	assert.True(t, Slot{}.IsZero())
}

func TestDefenseStatus_CanTransitTo(t *testing.T) {
	assert.True(t, DefenseStatusProposed.CanTransitTo(DefenseStatusValidated))
	assert.True(t, DefenseStatusProposed.CanTransitTo(DefenseStatusRejected))
	assert.True(t, DefenseStatusValidated.CanTransitTo(DefenseStatusModified))
	assert.True(t, DefenseStatusModified.CanTransitTo(DefenseStatusModified))
	assert.False(t, DefenseStatusValidated.CanTransitTo(DefenseStatusRejected))
	assert.False(t, DefenseStatusRejected.CanTransitTo(DefenseStatusValidated))
	assert.False(t, DefenseStatusProposed.CanTransitTo(DefenseStatusModified))
}

func TestProjectStatus_CanTransitTo(t *testing.T) {
	assert.True(t, ProjectStatusPendingAssignment.CanTransitTo(ProjectStatusUnderReview))
	assert.True(t, ProjectStatusUnderReview.CanTransitTo(ProjectStatusUnderReview))
	assert.True(t, ProjectStatusAccepted.CanTransitTo(ProjectStatusFinalSubmission))
	assert.False(t, ProjectStatusPendingAssignment.CanTransitTo(ProjectStatusAccepted))
	assert.False(t, ProjectStatusEvaluated.CanTransitTo(ProjectStatusFinalSubmission))
}

func TestDefense_IsEvaluated(t *testing.T) {
	grade := 15.5
	assert.False(t, Defense{}.IsEvaluated())
	assert.False(t, Defense{Evaluation: Evaluation{FinalGrade: &grade}}.IsEvaluated())
	assert.True(t, Defense{Evaluation: Evaluation{FinalGrade: &grade, EvaluatedAt: 1}}.IsEvaluated())
}
