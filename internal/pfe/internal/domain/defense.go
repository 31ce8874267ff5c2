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

type DefenseStatus string

const (
	DefenseStatusProposed  DefenseStatus = "PROPOSED"
	DefenseStatusValidated DefenseStatus = "VALIDATED"
	DefenseStatusRejected  DefenseStatus = "REJECTED"
	DefenseStatusModified  DefenseStatus = "MODIFIED"
)

func (s DefenseStatus) String() string {
	return string(s)
}

// REJECTED 回到 PROPOSED 只能通过重新提议
var defenseTransitions = map[DefenseStatus][]DefenseStatus{
	DefenseStatusProposed:  {DefenseStatusValidated, DefenseStatusRejected},
	DefenseStatusValidated: {DefenseStatusModified},
	DefenseStatusModified:  {DefenseStatusModified},
	DefenseStatusRejected:  {DefenseStatusProposed},
}

func (s DefenseStatus) CanTransitTo(next DefenseStatus) bool {
	for _, st := range defenseTransitions[s] {
		if st == next {
			return true
		}
	}
	return false
}

// Scheduled 已经确定了最终的时间地点
func (s DefenseStatus) Scheduled() bool {
	return s == DefenseStatusValidated || s == DefenseStatusModified
}

type JuryRole string

const (
	JuryRolePresident  JuryRole = "PRESIDENT"
	JuryRoleExaminer   JuryRole = "EXAMINER"
	JuryRoleSupervisor JuryRole = "SUPERVISOR"
	JuryRoleGuest      JuryRole = "GUEST"
)

func (r JuryRole) Valid() bool {
	switch r {
	case JuryRolePresident, JuryRoleExaminer, JuryRoleSupervisor, JuryRoleGuest:
		return true
	default:
		return false
	}
}

// JuryMember ProfessorId 为 0 表示外部评委
type JuryMember struct {
	Id          int64
	DefenseId   int64
	Name        string
	Email       string
	Role        JuryRole
	ProfessorId int64
}

type Evaluation struct {
	PresentationQuality *float64
	SubjectMastery      *float64
	QuestionAnswers     *float64
	TimeRespect         *float64
	FinalGrade          *float64
	Comments            string
	Strengths           string
	Improvements        string
	EvaluatedAt         int64
	EvaluatedBy         int64
}

type Defense struct {
	Id        int64
	ProjectId int64
	Proposed  Slot
	Final     Slot
	Status    DefenseStatus

	ProposedAt         int64
	ValidatedAt        int64
	ValidatedBy        int64
	RejectionReason    string
	ModificationReason string
	Notes              string

	Evaluation Evaluation
	Jury       []JuryMember

	Ctime int64
	Utime int64
}

func (d Defense) IsEvaluated() bool {
	return d.Evaluation.FinalGrade != nil && d.Evaluation.EvaluatedAt > 0
}

type DefenseStats struct {
	ByStatus map[DefenseStatus]int64
	Upcoming int64
}
