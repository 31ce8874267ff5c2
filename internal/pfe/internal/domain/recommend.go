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
	"fmt"
	"sort"
	"strings"
)

const (
	MaxRecommendations = 5

	scoreSameSpecialization = 40
	scoreSameDepartment     = 20
	scoreKeywordMatch       = 10
	scoreKeywordCap         = 90
	scoreLowLoad            = 10
	scoreMax                = 100
)

// Candidate 可以指导的教授以及他当前的负载
type Candidate struct {
	ProfessorId      int64
	Name             string
	Email            string
	DepartmentId     int64
	SpecializationId int64
	Expertise        []string
	Load             int
	Capacity         int
}

func (c Candidate) Available() bool {
	return c.Load < c.Capacity
}

// Subject 参与打分的项目属性，院系和专业来自学生
type Subject struct {
	ProjectId        int64
	DepartmentId     int64
	SpecializationId int64
	Keywords         []string
}

type Recommendation struct {
	ProjectId   int64
	ProfessorId int64
	Name        string
	Email       string
	Score       int
	CurrentLoad int
	MaxCapacity int
	Expertise   []string
	Reason      string
}

// Recommend 满负载的教授不参与，按照分数降序，同分保持输入顺序
func Recommend(sub Subject, candidates []Candidate) []Recommendation {
	res := make([]Recommendation, 0, len(candidates))
	for _, c := range candidates {
		if !c.Available() {
			continue
		}
		score := Score(sub, c)
		res = append(res, Recommendation{
			ProjectId:   sub.ProjectId,
			ProfessorId: c.ProfessorId,
			Name:        c.Name,
			Email:       c.Email,
			Score:       score,
			CurrentLoad: c.Load,
			MaxCapacity: c.Capacity,
			Expertise:   c.Expertise,
			Reason:      reason(sameSpecialization(sub, c), score, c.Load, c.Capacity),
		})
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Score > res[j].Score
	})
	if len(res) > MaxRecommendations {
		res = res[:MaxRecommendations]
	}
	return res
}

func Score(sub Subject, c Candidate) int {
	score := 0
	if sameSpecialization(sub, c) {
		score += scoreSameSpecialization
	}
	if sub.DepartmentId > 0 && sub.DepartmentId == c.DepartmentId {
		score += scoreSameDepartment
	}
	if len(sub.Keywords) > 0 && len(c.Expertise) > 0 {
		score += scoreKeywordMatch * matchedKeywords(sub.Keywords, c.Expertise)
		score = min(score, scoreKeywordCap)
	}
	if c.Load < c.Capacity/2 {
		score += scoreLowLoad
	}
	return max(0, min(score, scoreMax))
}

func sameSpecialization(sub Subject, c Candidate) bool {
	return sub.SpecializationId > 0 && sub.SpecializationId == c.SpecializationId
}

// matchedKeywords 每个关键词最多算一次
func matchedKeywords(keywords, expertise []string) int {
	cnt := 0
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		for _, exp := range expertise {
			exp = strings.ToLower(strings.TrimSpace(exp))
			if exp == "" {
				continue
			}
			if strings.Contains(kw, exp) || strings.Contains(exp, kw) {
				cnt++
				break
			}
		}
	}
	return cnt
}

func reason(sameSpec bool, score, load, capacity int) string {
	var sb strings.Builder
	if sameSpec {
		sb.WriteString("same specialization. ")
	}
	switch {
	case score >= 70:
		sb.WriteString("excellent match. ")
	case score >= 50:
		sb.WriteString("good match. ")
	}
	sb.WriteString(fmt.Sprintf("load: %d/%d", load, capacity))
	return sb.String()
}
