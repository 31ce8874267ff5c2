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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/domain"
)

type IdReq struct {
	Id int64 `json:"id" validate:"required,gt=0"`
}

type Project struct {
	Id                int64    `json:"id,omitempty"`
	SN                string   `json:"sn,omitempty"`
	Title             string   `json:"title,omitempty"`
	Description       string   `json:"description,omitempty"`
	Objectives        string   `json:"objectives,omitempty"`
	Context           string   `json:"context,omitempty"`
	Methodology       string   `json:"methodology,omitempty"`
	ExpectedResults   string   `json:"expectedResults,omitempty"`
	Keywords          []string `json:"keywords,omitempty"`
	Status            string   `json:"status,omitempty"`
	StudentId         int64    `json:"studentId,omitempty"`
	ProfessorId       int64    `json:"professorId,omitempty"`
	AcademicYearId    int64    `json:"academicYearId,omitempty"`
	ProposalFileURL   string   `json:"proposalFileURL,omitempty"`
	ProfessorComments string   `json:"professorComments,omitempty"`
	RejectionReason   string   `json:"rejectionReason,omitempty"`
	SubmittedAt       int64    `json:"submittedAt,omitempty"`
	AssignedAt        int64    `json:"assignedAt,omitempty"`
	AcceptedAt        int64    `json:"acceptedAt,omitempty"`
	FinalSubmittedAt  int64    `json:"finalSubmittedAt,omitempty"`
	Utime             int64    `json:"utime,omitempty"`
}

func newProject(p domain.Project) Project {
	return Project{
		Id:                p.Id,
		SN:                p.SN,
		Title:             p.Title,
		Description:       p.Description,
		Objectives:        p.Objectives,
		Context:           p.Context,
		Methodology:       p.Methodology,
		ExpectedResults:   p.ExpectedResults,
		Keywords:          p.Keywords,
		Status:            p.Status.String(),
		StudentId:         p.StudentId,
		ProfessorId:       p.ProfessorId,
		AcademicYearId:    p.AcademicYearId,
		ProposalFileURL:   p.ProposalFileURL,
		ProfessorComments: p.ProfessorComments,
		RejectionReason:   p.RejectionReason,
		SubmittedAt:       p.SubmittedAt,
		AssignedAt:        p.AssignedAt,
		AcceptedAt:        p.AcceptedAt,
		FinalSubmittedAt:  p.FinalSubmittedAt,
		Utime:             p.Utime,
	}
}

func newProjects(ps []domain.Project) []Project {
	return slice.Map(ps, func(idx int, src domain.Project) Project {
		return newProject(src)
	})
}

type SubmitProjectReq struct {
	Title           string   `json:"title" validate:"required,max=255"`
	Description     string   `json:"description"`
	Objectives      string   `json:"objectives"`
	Context         string   `json:"context"`
	Methodology     string   `json:"methodology"`
	ExpectedResults string   `json:"expectedResults"`
	Keywords        []string `json:"keywords" validate:"max=20,dive,max=64"`
	ProposalFileURL string   `json:"proposalFileURL" validate:"omitempty,url"`
}

func (req SubmitProjectReq) toDomain() domain.Project {
	return domain.Project{
		Title:           req.Title,
		Description:     req.Description,
		Objectives:      req.Objectives,
		Context:         req.Context,
		Methodology:     req.Methodology,
		ExpectedResults: req.ExpectedResults,
		Keywords:        req.Keywords,
		ProposalFileURL: req.ProposalFileURL,
	}
}

// UpdateProjectReq 只会更新非空字段
type UpdateProjectReq struct {
	Id              int64    `json:"id" validate:"required,gt=0"`
	Title           string   `json:"title" validate:"max=255"`
	Description     string   `json:"description"`
	Objectives      string   `json:"objectives"`
	Context         string   `json:"context"`
	Methodology     string   `json:"methodology"`
	ExpectedResults string   `json:"expectedResults"`
	Keywords        []string `json:"keywords" validate:"max=20,dive,max=64"`
	ProposalFileURL string   `json:"proposalFileURL" validate:"omitempty,url"`
}

func (req UpdateProjectReq) toDomain() domain.Project {
	return domain.Project{
		Id:              req.Id,
		Title:           req.Title,
		Description:     req.Description,
		Objectives:      req.Objectives,
		Context:         req.Context,
		Methodology:     req.Methodology,
		ExpectedResults: req.ExpectedResults,
		Keywords:        req.Keywords,
		ProposalFileURL: req.ProposalFileURL,
	}
}

type ListReq struct {
	Status string `json:"status" validate:"omitempty,oneof=PENDING_ASSIGNMENT UNDER_REVIEW ACCEPTED REJECTED IN_PROGRESS FINAL_SUBMISSION DEFENSE_SCHEDULED EVALUATED"`
	Offset int    `json:"offset" validate:"gte=0"`
	Limit  int    `json:"limit" validate:"gte=0,lte=100"`
}

type ProjectList struct {
	Total    int64     `json:"total"`
	Projects []Project `json:"projects"`
}

type RecentReq struct {
	Limit int `json:"limit" validate:"gte=0,lte=100"`
}

type ReviewReq struct {
	Pid      int64  `json:"pid" validate:"required,gt=0"`
	Comments string `json:"comments"`
}

type RejectProjectReq struct {
	Pid      int64  `json:"pid" validate:"required,gt=0"`
	Reason   string `json:"reason" validate:"required"`
	Comments string `json:"comments"`
}

type AssignReq struct {
	Pid         int64  `json:"pid" validate:"required,gt=0"`
	ProfessorId int64  `json:"professorId" validate:"required,gt=0"`
	Comments    string `json:"comments"`
}

type ProjectStats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}

func newProjectStats(s domain.ProjectStats) ProjectStats {
	res := ProjectStats{Total: s.Total, ByStatus: make(map[string]int64, len(s.ByStatus))}
	for st, cnt := range s.ByStatus {
		res.ByStatus[st.String()] = cnt
	}
	return res
}

type Deliverable struct {
	Id          int64  `json:"id,omitempty"`
	ProjectId   int64  `json:"projectId" validate:"required,gt=0"`
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	Type        string `json:"type" validate:"omitempty,oneof=PROGRESS_REPORT CODE DOCUMENTATION OTHER"`
	FileURL     string `json:"fileURL" validate:"omitempty,url"`
	Notes       string `json:"notes"`
	SubmittedAt int64  `json:"submittedAt,omitempty"`
}

func (d Deliverable) toDomain() domain.Deliverable {
	return domain.Deliverable{
		ProjectId:   d.ProjectId,
		Title:       d.Title,
		Description: d.Description,
		Type:        domain.DeliverableType(d.Type),
		FileURL:     d.FileURL,
		Notes:       d.Notes,
	}
}

func newDeliverable(d domain.Deliverable) Deliverable {
	return Deliverable{
		Id:          d.Id,
		ProjectId:   d.ProjectId,
		Title:       d.Title,
		Description: d.Description,
		Type:        string(d.Type),
		FileURL:     d.FileURL,
		Notes:       d.Notes,
		SubmittedAt: d.SubmittedAt,
	}
}

type DeleteDeliverableReq struct {
	ProjectId int64 `json:"projectId" validate:"required,gt=0"`
	Id        int64 `json:"id" validate:"required,gt=0"`
}

type Recommendation struct {
	ProfessorId int64    `json:"professorId"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Score       int      `json:"score"`
	CurrentLoad int      `json:"currentLoad"`
	MaxCapacity int      `json:"maxCapacity"`
	Expertise   []string `json:"expertise,omitempty"`
	Reason      string   `json:"reason"`
}

type AvailableReq struct {
	SpecializationId int64 `json:"specializationId" validate:"gte=0"`
}

type Professor struct {
	Id               int64    `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	DepartmentId     int64    `json:"departmentId,omitempty"`
	SpecializationId int64    `json:"specializationId,omitempty"`
	Expertise        []string `json:"expertise,omitempty"`
	CurrentLoad      int      `json:"currentLoad"`
	MaxCapacity      int      `json:"maxCapacity"`
}

type JuryMember struct {
	Id          int64  `json:"id,omitempty"`
	Name        string `json:"name" validate:"max=255"`
	Email       string `json:"email" validate:"omitempty,email"`
	Role        string `json:"role" validate:"omitempty,oneof=PRESIDENT EXAMINER SUPERVISOR GUEST"`
	ProfessorId int64  `json:"professorId,omitempty" validate:"gte=0"`
}

func (m JuryMember) toDomain() domain.JuryMember {
	return domain.JuryMember{
		Name:        m.Name,
		Email:       m.Email,
		Role:        domain.JuryRole(m.Role),
		ProfessorId: m.ProfessorId,
	}
}

func toJury(ms []JuryMember) []domain.JuryMember {
	return slice.Map(ms, func(idx int, src JuryMember) domain.JuryMember {
		return src.toDomain()
	})
}

func newJury(ms []domain.JuryMember) []JuryMember {
	return slice.Map(ms, func(idx int, src domain.JuryMember) JuryMember {
		return JuryMember{
			Id:          src.Id,
			Name:        src.Name,
			Email:       src.Email,
			Role:        string(src.Role),
			ProfessorId: src.ProfessorId,
		}
	})
}

type ProposeReq struct {
	ProjectId int64        `json:"projectId" validate:"required,gt=0"`
	Date      string       `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string       `json:"time" validate:"required"`
	Room      string       `json:"room" validate:"required,max=64"`
	Jury      []JuryMember `json:"jury" validate:"dive"`
	Notes     string       `json:"notes"`
}

// ValidateReq 空的字段沿用提议的时间地点
type ValidateReq struct {
	Id    int64        `json:"id" validate:"required,gt=0"`
	Date  string       `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time  string       `json:"time"`
	Room  string       `json:"room" validate:"max=64"`
	Jury  []JuryMember `json:"jury" validate:"dive"`
	Notes string       `json:"notes"`
}

type ModifyReq struct {
	Id     int64        `json:"id" validate:"required,gt=0"`
	Date   string       `json:"date" validate:"required,datetime=2006-01-02"`
	Time   string       `json:"time" validate:"required"`
	Room   string       `json:"room" validate:"required,max=64"`
	Reason string       `json:"reason"`
	Jury   []JuryMember `json:"jury" validate:"dive"`
}

type RejectDefenseReq struct {
	Id     int64  `json:"id" validate:"required,gt=0"`
	Reason string `json:"reason" validate:"required"`
}

type JuryReq struct {
	Id   int64        `json:"id" validate:"required,gt=0"`
	Jury []JuryMember `json:"jury" validate:"dive"`
}

type Evaluation struct {
	PresentationQuality *float64 `json:"presentationQuality,omitempty" validate:"omitempty,gte=0,lte=20"`
	SubjectMastery      *float64 `json:"subjectMastery,omitempty" validate:"omitempty,gte=0,lte=20"`
	QuestionAnswers     *float64 `json:"questionAnswers,omitempty" validate:"omitempty,gte=0,lte=20"`
	TimeRespect         *float64 `json:"timeRespect,omitempty" validate:"omitempty,gte=0,lte=20"`
	FinalGrade          *float64 `json:"finalGrade,omitempty" validate:"omitempty,gte=0,lte=20"`
	Comments            string   `json:"comments,omitempty"`
	Strengths           string   `json:"strengths,omitempty"`
	Improvements        string   `json:"improvements,omitempty"`
	EvaluatedAt         int64    `json:"evaluatedAt,omitempty"`
	EvaluatedBy         int64    `json:"evaluatedBy,omitempty"`
}

type EvaluateReq struct {
	Id int64 `json:"id" validate:"required,gt=0"`
	Evaluation
}

func (e Evaluation) toDomain() domain.Evaluation {
	return domain.Evaluation{
		PresentationQuality: e.PresentationQuality,
		SubjectMastery:      e.SubjectMastery,
		QuestionAnswers:     e.QuestionAnswers,
		TimeRespect:         e.TimeRespect,
		FinalGrade:          e.FinalGrade,
		Comments:            e.Comments,
		Strengths:           e.Strengths,
		Improvements:        e.Improvements,
	}
}

type ConflictReq struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required"`
	Room string `json:"room" validate:"required"`
}

type RoomDateReq struct {
	Room string `json:"room" validate:"required"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type RangeReq struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02"`
	End   string `json:"end" validate:"required,datetime=2006-01-02"`
}

type UpcomingReq struct {
	From  string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	Limit int    `json:"limit" validate:"gte=0,lte=100"`
}

type Defense struct {
	Id                 int64        `json:"id"`
	ProjectId          int64        `json:"projectId"`
	ProposedDate       string       `json:"proposedDate"`
	ProposedTime       string       `json:"proposedTime"`
	ProposedRoom       string       `json:"proposedRoom"`
	FinalDate          string       `json:"finalDate,omitempty"`
	FinalTime          string       `json:"finalTime,omitempty"`
	FinalRoom          string       `json:"finalRoom,omitempty"`
	Status             string       `json:"status"`
	ProposedAt         int64        `json:"proposedAt,omitempty"`
	ValidatedAt        int64        `json:"validatedAt,omitempty"`
	ValidatedBy        int64        `json:"validatedBy,omitempty"`
	RejectionReason    string       `json:"rejectionReason,omitempty"`
	ModificationReason string       `json:"modificationReason,omitempty"`
	Notes              string       `json:"notes,omitempty"`
	Evaluated          bool         `json:"evaluated"`
	Evaluation         Evaluation   `json:"evaluation"`
	Jury               []JuryMember `json:"jury,omitempty"`
}

func newDefense(d domain.Defense) Defense {
	ev := d.Evaluation
	return Defense{
		Id:                 d.Id,
		ProjectId:          d.ProjectId,
		ProposedDate:       d.Proposed.Date,
		ProposedTime:       d.Proposed.Time,
		ProposedRoom:       d.Proposed.Room,
		FinalDate:          d.Final.Date,
		FinalTime:          d.Final.Time,
		FinalRoom:          d.Final.Room,
		Status:             d.Status.String(),
		ProposedAt:         d.ProposedAt,
		ValidatedAt:        d.ValidatedAt,
		ValidatedBy:        d.ValidatedBy,
		RejectionReason:    d.RejectionReason,
		ModificationReason: d.ModificationReason,
		Notes:              d.Notes,
		Evaluated:          d.IsEvaluated(),
		Evaluation: Evaluation{
			PresentationQuality: ev.PresentationQuality,
			SubjectMastery:      ev.SubjectMastery,
			QuestionAnswers:     ev.QuestionAnswers,
			TimeRespect:         ev.TimeRespect,
			FinalGrade:          ev.FinalGrade,
			Comments:            ev.Comments,
			Strengths:           ev.Strengths,
			Improvements:        ev.Improvements,
			EvaluatedAt:         ev.EvaluatedAt,
			EvaluatedBy:         ev.EvaluatedBy,
		},
		Jury: newJury(d.Jury),
	}
}

func newDefenses(ds []domain.Defense) []Defense {
	return slice.Map(ds, func(idx int, src domain.Defense) Defense {
		return newDefense(src)
	})
}

type DefenseStats struct {
	ByStatus map[string]int64 `json:"byStatus"`
	Upcoming int64            `json:"upcoming"`
}

func newDeliverables(ds []domain.Deliverable) []Deliverable {
	return slice.Map(ds, func(idx int, src domain.Deliverable) Deliverable {
		return newDeliverable(src)
	})
}
