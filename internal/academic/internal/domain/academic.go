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

import "time"

const DateLayout = time.DateOnly

type Department struct {
	Id          int64
	Name        string
	Code        string
	Description string
	Ctime       int64
	Utime       int64
}

type Specialization struct {
	Id           int64
	Name         string
	Code         string
	DepartmentId int64
	Description  string
	Ctime        int64
	Utime        int64
}

// AcademicYear 学年，例如 2024-2025
// 四个日期都是 YYYY-MM-DD 格式，可以直接按字符串比较
type AcademicYear struct {
	Id              int64
	Year            string
	SubmissionStart string
	SubmissionEnd   string
	DefenseStart    string
	DefenseEnd      string
	IsCurrent       bool
	Ctime           int64
	Utime           int64
}

func (y AcademicYear) SubmissionPeriodActive(now time.Time) bool {
	return inWindow(now, y.SubmissionStart, y.SubmissionEnd)
}

func (y AcademicYear) DefensePeriodActive(now time.Time) bool {
	return inWindow(now, y.DefenseStart, y.DefenseEnd)
}

func inWindow(now time.Time, start, end string) bool {
	if start == "" || end == "" {
		return false
	}
	today := now.Format(DateLayout)
	return today >= start && today <= end
}

// NormalizeDate 校验并规整日期，空字符串原样返回
func NormalizeDate(date string) (string, error) {
	if date == "" {
		return "", nil
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}
