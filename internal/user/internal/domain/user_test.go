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

func TestUser_CheckProfile(t *testing.T) {
	testCases := []struct {
		name    string
		user    User
		wantErr error
		after   func(t *testing.T, u User)
	}{
		{
			name: "学生",
			user: User{Role: RoleStudent, Student: &StudentProfile{StudentNumber: "S2025001"}},
		},
		{
			name: "教授默认容量",
			user: User{Role: RoleProfessor, Professor: &ProfessorProfile{
				Expertise: []string{" Go ", "", "Machine Learning"},
			}},
			after: func(t *testing.T, u User) {
				assert.Equal(t, DefaultMaxCapacity, u.Professor.MaxCapacity)
				assert.Equal(t, []string{"Go", "Machine Learning"}, u.Professor.Expertise)
			},
		},
		{
			name: "教授自定义容量",
			user: User{Role: RoleProfessor, Professor: &ProfessorProfile{MaxCapacity: 8}},
			after: func(t *testing.T, u User) {
				assert.Equal(t, 8, u.Professor.MaxCapacity)
			},
		},
		{
			name:    "角色缺少资料",
			user:    User{Role: RoleAdmin},
			wantErr: ErrProfileMismatch,
		},
		{
			name: "多个资料",
			user: User{Role: RoleStudent, Student: &StudentProfile{},
				Professor: &ProfessorProfile{}},
			wantErr: ErrProfileMismatch,
		},
		{
			name:    "未知角色",
			user:    User{Role: "GUEST"},
			wantErr: ErrProfileMismatch,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := tc.user
			err := u.CheckProfile()
			require.ErrorIs(t, err, tc.wantErr)
			if tc.after != nil {
				tc.after(t, u)
			}
		})
	}
}

func TestTags(t *testing.T) {
	assert.Equal(t, []string{}, SplitTags(""))
	assert.Equal(t, []string{"java", "spring boot", "ai"}, SplitTags("java, spring boot,,ai "))
	assert.Equal(t, "java,spring boot", JoinTags([]string{" java", "spring boot", " "}))
}
