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

package sngenerator

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// Generator 生成业务编号，格式为 前缀 + 年份 - 归属 id 的后四位 - shortuuid
// 例如 PFE2025-0042-nUfojcH2M5j2j3Tk5A1mf2
type Generator struct {
	prefix string
	now    func() time.Time
	uuid   func() string
}

func New(prefix string) *Generator {
	return newGenerator(prefix, time.Now, shortuuid.New)
}

func newGenerator(prefix string, now func() time.Time, uuid func() string) *Generator {
	return &Generator{
		prefix: prefix,
		now:    now,
		uuid:   uuid,
	}
}

func (g *Generator) Generate(ownerId int64) string {
	if ownerId < 0 {
		ownerId = -ownerId
	}
	return fmt.Sprintf("%s%d-%04d-%s", g.prefix, g.now().Year(), ownerId%10000, g.uuid())
}
