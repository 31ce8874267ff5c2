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

import (
	"os"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// DAO 靠 RowsAffected 判断记录是否存在，DSN 必须让 MySQL 返回匹配的行数
func TestMySQLDSN(t *testing.T) {
	for _, file := range []string{"config.yaml", "local.yaml"} {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			require.NoError(t, err)
			var cfg struct {
				MySQL MySQLConfig `yaml:"mysql"`
			}
			require.NoError(t, yaml.Unmarshal(content, &cfg))
			dsn, err := mysql.ParseDSN(cfg.MySQL.DSN)
			require.NoError(t, err)
			assert.True(t, dsn.ClientFoundRows)
			assert.True(t, dsn.ParseTime)
			assert.True(t, dsn.MultiStatements)
			assert.Greater(t, cfg.MySQL.WaitRetries, 0)
		})
	}
}
