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

import "database/sql"

type Project struct {
	Id              int64  `gorm:"primaryKey,autoIncrement"`
	SN              string `gorm:"type:varchar(64);uniqueIndex"`
	Title           string `gorm:"type:varchar(512)"`
	Description     string `gorm:"type:text"`
	Objectives      string `gorm:"type:text"`
	Context         string `gorm:"type:text"`
	Methodology     string `gorm:"type:text"`
	ExpectedResults string `gorm:"type:text"`
	// Keywords 逗号分隔
	Keywords string `gorm:"type:varchar(1024)"`
	Status   string `gorm:"type:varchar(32);index"`
	// StudentId 每个学生只能有一个项目
	StudentId         int64 `gorm:"uniqueIndex"`
	ProfessorId       int64 `gorm:"index"`
	AcademicYearId    int64
	ProposalFileURL   string `gorm:"type:varchar(1024)"`
	ProfessorComments string `gorm:"type:text"`
	RejectionReason   string `gorm:"type:text"`

	SubmittedAt      int64
	AssignedAt       int64
	AcceptedAt       int64
	FinalSubmittedAt int64
	Ctime            int64
	Utime            int64 `gorm:"index"`
}

type Deliverable struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	ProjectId   int64  `gorm:"index"`
	Title       string `gorm:"type:varchar(512)"`
	Description string `gorm:"type:text"`
	Type        string `gorm:"type:varchar(32)"`
	FileURL     string `gorm:"type:varchar(1024)"`
	Notes       string `gorm:"type:text"`
	SubmittedAt int64
	Ctime       int64
	Utime       int64
}

type Defense struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	ProjectId int64 `gorm:"uniqueIndex"`

	ProposedDate string `gorm:"type:varchar(10)"`
	ProposedTime string `gorm:"type:varchar(5)"`
	ProposedRoom string `gorm:"type:varchar(128)"`
	FinalDate    string `gorm:"type:varchar(10);index:idx_room_date,priority:2"`
	FinalTime    string `gorm:"type:varchar(5)"`
	FinalRoom    string `gorm:"type:varchar(128);index:idx_room_date,priority:1"`

	Status             string `gorm:"type:varchar(32);index"`
	ProposedAt         int64
	ValidatedAt        int64
	ValidatedBy        int64
	RejectionReason    string `gorm:"type:text"`
	ModificationReason string `gorm:"type:text"`
	Notes              string `gorm:"type:text"`

	PresentationQuality sql.Null[float64] `gorm:"type:double"`
	SubjectMastery      sql.Null[float64] `gorm:"type:double"`
	QuestionAnswers     sql.Null[float64] `gorm:"type:double"`
	TimeRespect         sql.Null[float64] `gorm:"type:double"`
	FinalGrade          sql.Null[float64] `gorm:"type:double"`
	EvaluationComments  string            `gorm:"type:text"`
	Strengths           string            `gorm:"type:text"`
	Improvements        string            `gorm:"type:text"`
	EvaluatedAt         int64
	EvaluatedBy         int64

	Ctime int64
	Utime int64
}

type JuryMember struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	DefenseId   int64  `gorm:"index"`
	Name        string `gorm:"type:varchar(256)"`
	Email       string `gorm:"type:varchar(256)"`
	Role        string `gorm:"type:varchar(32)"`
	ProfessorId int64
	Ctime       int64
	Utime       int64
}

type StatusCount struct {
	Status string
	Cnt    int64
}

type ProfessorLoad struct {
	ProfessorId int64
	Cnt         int64
}
