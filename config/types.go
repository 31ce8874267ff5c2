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

package config

// 和 config.yaml 里面的各个 section 一一对应，使用 econf.UnmarshalKey 读取

type MySQLConfig struct {
	DSN string `yaml:"dsn"`
	// WaitRetries 启动时等待 MySQL 的最大重试次数，0 表示用默认值
	WaitRetries int `yaml:"waitRetries"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	// Namespace 所有缓存 key 的前缀
	Namespace string `yaml:"namespace"`
}

type SessionConfig struct {
	SessionEncryptedKey string `yaml:"sessionEncryptedKey"`
	// ExpireHours 为 0 时默认一天
	ExpireHours int `yaml:"expireHours"`
	Cookie      struct {
		Domain string `yaml:"domain"`
		Secure bool   `yaml:"secure"`
	} `yaml:"cookie"`
}

type KafkaConfig struct {
	Network   string        `yaml:"network"`
	Addresses []string      `yaml:"addresses"`
	Topics    []TopicConfig `yaml:"topics"`
}

type TopicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

type CORSConfig struct {
	// AllowedDomains 允许跨域的域名，localhost 总是允许
	AllowedDomains []string `yaml:"allowedDomains"`
}
