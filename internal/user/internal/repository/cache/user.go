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
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/pfehub/internal/user/internal/domain"
	"github.com/pkg/errors"
)

type UserCache interface {
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (domain.User, error)
	Set(ctx context.Context, u domain.User) error
}

type UserECache struct {
	cache ecache.Cache
}

// 教师信息（专长、容量）被推荐算法频繁读取，而且很少修改
var expirations = map[domain.Role]time.Duration{
	domain.RoleStudent:   15 * time.Minute,
	domain.RoleProfessor: time.Hour,
	domain.RoleAdmin:     5 * time.Minute,
}

func NewUserECache(c ecache.Cache) UserCache {
	return &UserECache{
		cache: &ecache.NamespaceCache{
			Namespace: "user:",
			C:         c,
		},
	}
}

func (c *UserECache) Delete(ctx context.Context, id int64) error {
	_, err := c.cache.Delete(ctx, c.key(id))
	return errors.Wrapf(err, "删除用户缓存失败 uid=%d", id)
}

func (c *UserECache) Get(ctx context.Context, id int64) (domain.User, error) {
	var u domain.User
	err := c.cache.Get(ctx, c.key(id)).JSONScan(&u)
	return u, err
}

func (c *UserECache) Set(ctx context.Context, u domain.User) error {
	// 密码不进缓存
	u.Password = ""
	data, err := json.Marshal(u)
	if err != nil {
		return errors.Wrap(err, "序列化用户失败")
	}
	exp, ok := expirations[u.Role]
	if !ok {
		exp = 5 * time.Minute
	}
	return c.cache.Set(ctx, c.key(u.Id), data, exp)
}

func (c *UserECache) key(id int64) string {
	return fmt.Sprintf("profile:%d", id)
}
