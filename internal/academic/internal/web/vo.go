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
	"time"

	"github.com/ecodeclub/pfehub/internal/academic/internal/domain"
)

type IdReq struct {
	Id int64 `json:"id"`
}

type Department struct {
	Id          int64  `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
	Utime       int64  `json:"utime,omitempty"`
}

func (d Department) toDomain() domain.Department {
	return domain.Department{
		Id:          d.Id,
		Name:        d.Name,
		Code:        d.Code,
		Description: d.Description,
	}
}

func newDepartment(d domain.Department) Department {
	return Department{
		Id:          d.Id,
		Name:        d.Name,
		Code:        d.Code,
		Description: d.Description,
		Utime:       d.Utime,
	}
}

type Specialization struct {
	Id           int64  `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	Code         string `json:"code,omitempty"`
	DepartmentId int64  `json:"departmentId,omitempty"`
	Description  string `json:"description,omitempty"`
	Utime        int64  `json:"utime,omitempty"`
}

func (s Specialization) toDomain() domain.Specialization {
	return domain.Specialization{
		Id:           s.Id,
		Name:         s.Name,
		Code:         s.Code,
		DepartmentId: s.DepartmentId,
		Description:  s.Description,
	}
}

func newSpecialization(s domain.Specialization) Specialization {
	return Specialization{
		Id:           s.Id,
		Name:         s.Name,
		Code:         s.Code,
		DepartmentId: s.DepartmentId,
		Description:  s.Description,
		Utime:        s.Utime,
	}
}

type SpecializationListReq struct {
	DepartmentId int64 `json:"departmentId"`
}

type AcademicYear struct {
	Id              int64  `json:"id,omitempty"`
	Year            string `json:"year,omitempty"`
	SubmissionStart string `json:"submissionStart,omitempty"`
	SubmissionEnd   string `json:"submissionEnd,omitempty"`
	DefenseStart    string `json:"defenseStart,omitempty"`
	DefenseEnd      string `json:"defenseEnd,omitempty"`
	IsCurrent       bool   `json:"isCurrent,omitempty"`

	SubmissionPeriodActive bool  `json:"submissionPeriodActive,omitempty"`
	DefensePeriodActive    bool  `json:"defensePeriodActive,omitempty"`
	Utime                  int64 `json:"utime,omitempty"`
}

func (y AcademicYear) toDomain() domain.AcademicYear {
	return domain.AcademicYear{
		Id:              y.Id,
		Year:            y.Year,
		SubmissionStart: y.SubmissionStart,
		SubmissionEnd:   y.SubmissionEnd,
		DefenseStart:    y.DefenseStart,
		DefenseEnd:      y.DefenseEnd,
		IsCurrent:       y.IsCurrent,
	}
}

func newAcademicYear(y domain.AcademicYear, now time.Time) AcademicYear {
	return AcademicYear{
		Id:                     y.Id,
		Year:                   y.Year,
		SubmissionStart:        y.SubmissionStart,
		SubmissionEnd:          y.SubmissionEnd,
		DefenseStart:           y.DefenseStart,
		DefenseEnd:             y.DefenseEnd,
		IsCurrent:              y.IsCurrent,
		SubmissionPeriodActive: y.SubmissionPeriodActive(now),
		DefensePeriodActive:    y.DefensePeriodActive(now),
		Utime:                  y.Utime,
	}
}
