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

package dao

type Department struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Name        string `gorm:"type:varchar(256)"`
	Code        string `gorm:"type:varchar(64);uniqueIndex"`
	Description string
	Ctime       int64
	Utime       int64
}

type Specialization struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	Name         string `gorm:"type:varchar(256)"`
	Code         string `gorm:"type:varchar(64);uniqueIndex"`
	DepartmentId int64  `gorm:"index"`
	Description  string
	Ctime        int64
	Utime        int64
}

type AcademicYear struct {
	Id   int64  `gorm:"primaryKey,autoIncrement"`
	Year string `gorm:"type:varchar(32);uniqueIndex"`
	// 日期都是 YYYY-MM-DD
	SubmissionStart string `gorm:"type:varchar(10)"`
	SubmissionEnd   string `gorm:"type:varchar(10)"`
	DefenseStart    string `gorm:"type:varchar(10)"`
	DefenseEnd      string `gorm:"type:varchar(10)"`
	// 同一时刻最多只有一个当前学年，由 SetCurrentYear 维护
	IsCurrent bool `gorm:"index"`
	Ctime     int64
	Utime     int64
}
