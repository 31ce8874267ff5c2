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
	"errors"
	"strings"
)

const DefaultMaxCapacity = 5

type Role string

const (
	RoleStudent   Role = "STUDENT"
	RoleProfessor Role = "PROFESSOR"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleProfessor, RoleAdmin:
		return true
	default:
		return false
	}
}

var ErrProfileMismatch = errors.New("角色与资料不匹配")

// User 按照 Role 区分，Student / Professor / Admin 只有与 Role 对应的那一个非 nil
type User struct {
	Id        int64
	FirstName string
	LastName  string
	Email     string
	// Password 哈希之后的密码
	Password         string
	Role             Role
	DepartmentId     int64
	SpecializationId int64
	Active           bool

	Student   *StudentProfile
	Professor *ProfessorProfile
	Admin     *AdminProfile

	Ctime int64
	Utime int64
}

type StudentProfile struct {
	StudentNumber  string
	Promotion      string
	AcademicYearId int64
}

type ProfessorProfile struct {
	Expertise   []string
	MaxCapacity int
}

type AdminProfile struct {
	Permissions []string
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// CheckProfile 校验资料和角色是否一致，并且补全默认值
func (u *User) CheckProfile() error {
	if !u.Role.Valid() {
		return ErrProfileMismatch
	}
	switch u.Role {
	case RoleStudent:
		if u.Student == nil || u.Professor != nil || u.Admin != nil {
			return ErrProfileMismatch
		}
	case RoleProfessor:
		if u.Professor == nil || u.Student != nil || u.Admin != nil {
			return ErrProfileMismatch
		}
		if u.Professor.MaxCapacity <= 0 {
			u.Professor.MaxCapacity = DefaultMaxCapacity
		}
		u.Professor.Expertise = CleanTags(u.Professor.Expertise)
	case RoleAdmin:
		if u.Admin == nil || u.Student != nil || u.Professor != nil {
			return ErrProfileMismatch
		}
	}
	return nil
}

// CleanTags 去掉首尾空格和空标签，保留顺序
func CleanTags(tags []string) []string {
	res := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			res = append(res, t)
		}
	}
	return res
}

// SplitTags 把逗号分隔的字符串拆成标签
func SplitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	return CleanTags(strings.Split(s, ","))
}

func JoinTags(tags []string) string {
	return strings.Join(CleanTags(tags), ",")
}
