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

package testioc

import (
	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/ecodeclub/pfehub/config"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

var (
	cache    ecache.Cache
	redisCmd redis.Cmdable
)

func InitRedis() redis.Cmdable {
	if redisCmd != nil {
		return redisCmd
	}
	mustLoadConfig()
	var cfg config.RedisConfig
	if err := econf.UnmarshalKey("redis", &cfg); err != nil {
		panic(err)
	}
	redisCmd = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return redisCmd
}

// InitCache 测试用的 key 都带 test 前缀，避免和本地开发数据混在一起
func InitCache() ecache.Cache {
	if cache != nil {
		return cache
	}
	cache = &ecache.NamespaceCache{
		C:         eredis.NewCache(InitRedis()),
		Namespace: "pfehub:test:",
	}
	return cache
}
