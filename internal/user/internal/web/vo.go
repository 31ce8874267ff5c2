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

package web

import (
	"github.com/ecodeclub/pfehub/internal/user/internal/domain"
)

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordReq struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type ListReq struct {
	Role   string `json:"role"`
	Offset int    `json:"offset,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

type SetActiveReq struct {
	Id     int64 `json:"id"`
	Active bool  `json:"active"`
}

type ProfessorListReq struct {
	SpecializationId int64 `json:"specializationId"`
}

type CreateReq struct {
	User     User   `json:"user"`
	Password string `json:"password"`
}

type User struct {
	Id               int64  `json:"id,omitempty"`
	FirstName        string `json:"firstName,omitempty"`
	LastName         string `json:"lastName,omitempty"`
	Email            string `json:"email,omitempty"`
	Role             string `json:"role,omitempty"`
	DepartmentId     int64  `json:"departmentId,omitempty"`
	SpecializationId int64  `json:"specializationId,omitempty"`
	Active           bool   `json:"active,omitempty"`

	Student   *Student   `json:"student,omitempty"`
	Professor *Professor `json:"professor,omitempty"`
	Admin     *Admin     `json:"admin,omitempty"`
}

type Student struct {
	StudentNumber  string `json:"studentNumber,omitempty"`
	Promotion      string `json:"promotion,omitempty"`
	AcademicYearId int64  `json:"academicYearId,omitempty"`
}

type Professor struct {
	Expertise   []string `json:"expertise,omitempty"`
	MaxCapacity int      `json:"maxCapacity,omitempty"`
}

type Admin struct {
	Permissions []string `json:"permissions,omitempty"`
}

type UserList struct {
	Total int64  `json:"total"`
	Users []User `json:"users"`
}

func (u User) toDomain() domain.User {
	res := domain.User{
		Id:               u.Id,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		Role:             domain.Role(u.Role),
		DepartmentId:     u.DepartmentId,
		SpecializationId: u.SpecializationId,
	}
	if u.Student != nil {
		res.Student = &domain.StudentProfile{
			StudentNumber:  u.Student.StudentNumber,
			Promotion:      u.Student.Promotion,
			AcademicYearId: u.Student.AcademicYearId,
		}
	}
	if u.Professor != nil {
		res.Professor = &domain.ProfessorProfile{
			Expertise:   u.Professor.Expertise,
			MaxCapacity: u.Professor.MaxCapacity,
		}
	}
	if u.Admin != nil {
		res.Admin = &domain.AdminProfile{
			Permissions: u.Admin.Permissions,
		}
	}
	return res
}

func newUser(u domain.User) User {
	res := User{
		Id:               u.Id,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		Role:             u.Role.String(),
		DepartmentId:     u.DepartmentId,
		SpecializationId: u.SpecializationId,
		Active:           u.Active,
	}
	if u.Student != nil {
		res.Student = &Student{
			StudentNumber:  u.Student.StudentNumber,
			Promotion:      u.Student.Promotion,
			AcademicYearId: u.Student.AcademicYearId,
		}
	}
	if u.Professor != nil {
		res.Professor = &Professor{
			Expertise:   u.Professor.Expertise,
			MaxCapacity: u.Professor.MaxCapacity,
		}
	}
	if u.Admin != nil {
		res.Admin = &Admin{
			Permissions: u.Admin.Permissions,
		}
	}
	return res
}
