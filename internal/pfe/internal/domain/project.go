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

type ProjectStatus string

const (
	ProjectStatusPendingAssignment ProjectStatus = "PENDING_ASSIGNMENT"
	// ProjectStatusUnderReview 已分配导师，或者导师要求修改
	ProjectStatusUnderReview      ProjectStatus = "UNDER_REVIEW"
	ProjectStatusAccepted         ProjectStatus = "ACCEPTED"
	ProjectStatusRejected         ProjectStatus = "REJECTED"
	ProjectStatusInProgress       ProjectStatus = "IN_PROGRESS"
	ProjectStatusFinalSubmission  ProjectStatus = "FINAL_SUBMISSION"
	ProjectStatusDefenseScheduled ProjectStatus = "DEFENSE_SCHEDULED"
	ProjectStatusEvaluated        ProjectStatus = "EVALUATED"
)

func (s ProjectStatus) String() string {
	return string(s)
}

var projectTransitions = map[ProjectStatus][]ProjectStatus{
	ProjectStatusPendingAssignment: {ProjectStatusUnderReview},
	ProjectStatusUnderReview: {ProjectStatusUnderReview, ProjectStatusAccepted,
		ProjectStatusRejected},
	// 被拒绝之后可以重新分配导师
	ProjectStatusRejected:         {ProjectStatusUnderReview},
	ProjectStatusAccepted:         {ProjectStatusInProgress, ProjectStatusFinalSubmission},
	ProjectStatusInProgress:       {ProjectStatusFinalSubmission},
	ProjectStatusFinalSubmission:  {ProjectStatusDefenseScheduled},
	ProjectStatusDefenseScheduled: {ProjectStatusFinalSubmission, ProjectStatusEvaluated},
}

func (s ProjectStatus) CanTransitTo(next ProjectStatus) bool {
	for _, st := range projectTransitions[s] {
		if st == next {
			return true
		}
	}
	return false
}

type Project struct {
	Id              int64
	SN              string
	Title           string
	Description     string
	Objectives      string
	Context         string
	Methodology     string
	ExpectedResults string
	Keywords        []string
	Status          ProjectStatus
	StudentId       int64
	// ProfessorId 0 表示还没有分配导师
	ProfessorId       int64
	AcademicYearId    int64
	ProposalFileURL   string
	ProfessorComments string
	RejectionReason   string

	SubmittedAt      int64
	AssignedAt       int64
	AcceptedAt       int64
	FinalSubmittedAt int64
	Ctime            int64
	Utime            int64
}

func (p Project) HasProfessor() bool {
	return p.ProfessorId > 0
}

type DeliverableType string

const (
	DeliverableTypeProgressReport DeliverableType = "PROGRESS_REPORT"
	DeliverableTypeCode           DeliverableType = "CODE"
	DeliverableTypeDocumentation  DeliverableType = "DOCUMENTATION"
	DeliverableTypeOther          DeliverableType = "OTHER"
)

func (t DeliverableType) Valid() bool {
	switch t {
	case DeliverableTypeProgressReport, DeliverableTypeCode,
		DeliverableTypeDocumentation, DeliverableTypeOther:
		return true
	default:
		return false
	}
}

type Deliverable struct {
	Id          int64
	ProjectId   int64
	Title       string
	Description string
	Type        DeliverableType
	FileURL     string
	Notes       string
	SubmittedAt int64
}

type ProjectStats struct {
	Total    int64
	ByStatus map[ProjectStatus]int64
}
