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

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = time.DateOnly
	TimeLayout = "15:04"
)

var ErrInvalidSlot = errors.New("日期或者时间格式错误")

// Slot 答辩的时间地点，Date 是 YYYY-MM-DD，Time 是 HH:MM
type Slot struct {
	Date string
	Time string
	Room string
}

func (s Slot) IsZero() bool {
	return s.Date == "" && s.Time == "" && s.Room == ""
}

func (s Slot) Complete() bool {
	return s.Date != "" && s.Time != "" && s.Room != ""
}

// NewSlot 校验并规整日期和时间，时间也接受 HH:MM:SS
// 空字段原样保留，由调用方决定是否必填
func NewSlot(date, tm, room string) (Slot, error) {
	d, err := NormalizeDate(date)
	if err != nil {
		return Slot{}, err
	}
	t, err := NormalizeTime(tm)
	if err != nil {
		return Slot{}, err
	}
	return Slot{Date: d, Time: t, Room: strings.TrimSpace(room)}, nil
}

func NormalizeDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return "", nil
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlot, date)
	}
	return t.Format(DateLayout), nil
}

func NormalizeTime(tm string) (string, error) {
	tm = strings.TrimSpace(tm)
	if tm == "" {
		return "", nil
	}
	t, err := time.Parse(TimeLayout, tm)
	if err != nil {
		t, err = time.Parse(time.TimeOnly, tm)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidSlot, tm)
		}
	}
	return t.Format(TimeLayout), nil
}

// Or 每个字段独立地用 fallback 补齐
func (s Slot) Or(fallback Slot) Slot {
	return Slot{
		Date: or(s.Date, fallback.Date),
		Time: or(s.Time, fallback.Time),
		Room: or(s.Room, fallback.Room),
	}
}

func or(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
