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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/pfehub/internal/academic/internal/domain"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=./academic.go -package=cachemocks -destination=mocks/academic.mock.go AcademicCache
type AcademicCache interface {
	GetCurrentYear(ctx context.Context) (domain.AcademicYear, error)
	SetCurrentYear(ctx context.Context, y domain.AcademicYear) error
	DelCurrentYear(ctx context.Context) error
}

type AcademicECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewAcademicECache(c ecache.Cache) AcademicCache {
	return &AcademicECache{
		ec: &ecache.NamespaceCache{
			Namespace: "academic:",
			C:         c,
		},
		expiration: time.Minute * 30,
	}
}

func (c *AcademicECache) GetCurrentYear(ctx context.Context) (domain.AcademicYear, error) {
	var y domain.AcademicYear
	err := c.ec.Get(ctx, c.currentYearKey()).JSONScan(&y)
	return y, err
}

func (c *AcademicECache) SetCurrentYear(ctx context.Context, y domain.AcademicYear) error {
	data, err := json.Marshal(y)
	if err != nil {
		return errors.Wrap(err, "序列化当前学年失败")
	}
	return c.ec.Set(ctx, c.currentYearKey(), data, c.expiration)
}

func (c *AcademicECache) DelCurrentYear(ctx context.Context) error {
	_, err := c.ec.Delete(ctx, c.currentYearKey())
	return err
}

func (c *AcademicECache) currentYearKey() string {
	return "year:current"
}
