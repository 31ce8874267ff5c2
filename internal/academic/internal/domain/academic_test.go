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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcademicYear_PeriodActive(t *testing.T) {
	year := AcademicYear{
		Year:            "2025-2026",
		SubmissionStart: "2025-10-01",
		SubmissionEnd:   "2026-03-31",
		DefenseStart:    "2026-06-01",
		DefenseEnd:      "2026-07-15",
	}
	testCases := []struct {
		name           string
		now            time.Time
		wantSubmission bool
		wantDefense    bool
	}{
		{
			name:           "提交期第一天",
			now:            time.Date(2025, 10, 1, 8, 0, 0, 0, time.Local),
			wantSubmission: true,
		},
		{
			name:           "提交期最后一天",
			now:            time.Date(2026, 3, 31, 23, 0, 0, 0, time.Local),
			wantSubmission: true,
		},
		{
			name:        "答辩期",
			now:         time.Date(2026, 6, 20, 10, 0, 0, 0, time.Local),
			wantDefense: true,
		},
		{
			name: "都不在",
			now:  time.Date(2026, 5, 1, 10, 0, 0, 0, time.Local),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantSubmission, year.SubmissionPeriodActive(tc.now))
			assert.Equal(t, tc.wantDefense, year.DefensePeriodActive(tc.now))
		})
	}
	assert.False(t, AcademicYear{}.SubmissionPeriodActive(time.Now()))
}

func TestNormalizeDate(t *testing.T) {
	res, err := NormalizeDate("2026-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-06-01", res)

	res, err = NormalizeDate("")
	require.NoError(t, err)
	assert.Equal(t, "", res)

	_, err = NormalizeDate("2026/06/01")
	assert.Error(t, err)
	_, err = NormalizeDate("2026-13-01")
	assert.Error(t, err)
}
