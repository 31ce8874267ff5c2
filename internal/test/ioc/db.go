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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/ecodeclub/pfehub/config"
	"github.com/ecodeclub/pfehub/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var (
	db             *egorm.Component
	loadConfigOnce sync.Once
)

func InitDB() *egorm.Component {
	if db != nil {
		return db
	}
	mustLoadConfig()
	var cfg config.MySQLConfig
	if err := econf.UnmarshalKey("mysql", &cfg); err != nil {
		panic(err)
	}
	ioc.WaitForDBSetup(cfg.DSN)
	db = egorm.Load("mysql").Build()
	return db
}

// mustLoadConfig 测试从各个包目录启动，向上找到 go.mod 所在目录再读 config/local.yaml
func mustLoadConfig() {
	loadConfigOnce.Do(func() {
		root, err := moduleRoot()
		if err != nil {
			panic(err)
		}
		content, err := os.ReadFile(filepath.Join(root, "config", "local.yaml"))
		if err != nil {
			panic(err)
		}
		if err = econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal); err != nil {
			panic(err)
		}
	})
}

func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err = os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("找不到 go.mod")
		}
		dir = parent
	}
}
