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

package event

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/pfehub/internal/pkg/mqx"
)

const (
	ProjectEventName = "pfe_project_events"
	DefenseEventName = "pfe_defense_events"
)

const (
	ProjectActionSubmitted      = "submitted"
	ProjectActionAssigned       = "assigned"
	ProjectActionAccepted       = "accepted"
	ProjectActionRejected       = "rejected"
	ProjectActionRevision       = "revision_requested"
	ProjectActionFinalSubmitted = "final_submitted"

	DefenseActionProposed  = "proposed"
	DefenseActionValidated = "validated"
	DefenseActionModified  = "modified"
	DefenseActionRejected  = "rejected"
	DefenseActionEvaluated = "evaluated"
	DefenseActionReminder  = "reminder"
)

type ProjectEvent struct {
	Action      string `json:"action"`
	ProjectId   int64  `json:"projectId"`
	StudentId   int64  `json:"studentId"`
	ProfessorId int64  `json:"professorId"`
	Status      string `json:"status"`
}

type DefenseEvent struct {
	Action    string `json:"action"`
	DefenseId int64  `json:"defenseId"`
	ProjectId int64  `json:"projectId"`
	Status    string `json:"status"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Room      string `json:"room"`
	// Recipients 评委和学生的邮箱，用于通知
	Recipients []string `json:"recipients,omitempty"`
}

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=./mocks/producer.mock.go -typed=false ProjectEventProducer,DefenseEventProducer
type ProjectEventProducer interface {
	Produce(ctx context.Context, evt ProjectEvent) error
}

type DefenseEventProducer interface {
	Produce(ctx context.Context, evt DefenseEvent) error
}

func NewProjectEventProducer(q mq.MQ) (ProjectEventProducer, error) {
	p, err := mqx.NewJSONProducer[ProjectEvent](q, ProjectEventName)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func NewDefenseEventProducer(q mq.MQ) (DefenseEventProducer, error) {
	p, err := mqx.NewJSONProducer[DefenseEvent](q, DefenseEventName)
	if err != nil {
		return nil, err
	}
	return p, nil
}
