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

package ioc

import (
	"fmt"

	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/ecodeclub/pfehub/config"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

func InitRedis() redis.Cmdable {
	cfg := redisConfig()
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func InitCache(cmd redis.Cmdable) ecache.Cache {
	ns := redisConfig().Namespace
	if ns == "" {
		ns = "pfehub:"
	}
	return &ecache.NamespaceCache{
		C:         eredis.NewCache(cmd),
		Namespace: ns,
	}
}

func redisConfig() config.RedisConfig {
	var cfg config.RedisConfig
	if err := econf.UnmarshalKey("redis", &cfg); err != nil {
		panic(fmt.Errorf("读取 redis 配置失败: %w", err))
	}
	return cfg
}
