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

package sngenerator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_Generate(t *testing.T) {
	gen := newGenerator("PFE", func() time.Time {
		return time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)
	}, func() string {
		return "nUfojcH2M5j2j3Tk5A1mf2"
	})
	testCases := []struct {
		name    string
		ownerId int64
		want    string
	}{
		{
			name:    "不足四位补零",
			ownerId: 42,
			want:    "PFE2025-0042-nUfojcH2M5j2j3Tk5A1mf2",
		},
		{
			name:    "超过四位取后四位",
			ownerId: 123456789,
			want:    "PFE2025-6789-nUfojcH2M5j2j3Tk5A1mf2",
		},
		{
			name:    "负数",
			ownerId: -7,
			want:    "PFE2025-0007-nUfojcH2M5j2j3Tk5A1mf2",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, gen.Generate(tc.ownerId))
		})
	}
}

func TestNew(t *testing.T) {
	sn := New("PFE").Generate(1)
	assert.Regexp(t, `^PFE\d{4}-0001-\w{22}$`, sn)
	assert.NotEqual(t, sn, New("PFE").Generate(1))
}
