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

const RegistrationEventName = "user_registration_events"

type RegistrationEvent struct {
	Uid   int64  `json:"uid"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=./mocks/producer.mock.go RegistrationEventProducer
type RegistrationEventProducer interface {
	Produce(ctx context.Context, evt RegistrationEvent) error
}

func NewRegistrationEventProducer(q mq.MQ) (RegistrationEventProducer, error) {
	p, err := mqx.NewJSONProducer[RegistrationEvent](q, RegistrationEventName)
	if err != nil {
		return nil, err
	}
	return p, nil
}
