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
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/pfehub/config"
	"github.com/ego-component/egorm"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

const (
	defaultWaitRetries = 10
	pingTimeout        = 5 * time.Second
)

// InitDB 各模块的表由模块自己的 dao.InitTables 创建
func InitDB() *egorm.Component {
	var cfg config.MySQLConfig
	if err := econf.UnmarshalKey("mysql", &cfg); err != nil {
		panic(fmt.Errorf("读取 mysql 配置失败: %w", err))
	}
	if err := waitForDB(cfg.DSN, cfg.WaitRetries); err != nil {
		panic(err)
	}
	return egorm.Load("mysql").Build()
}

// WaitForDBSetup 测试和 InitDB 共用，MySQL 一直不可用就 panic
func WaitForDBSetup(dsn string) {
	if err := waitForDB(dsn, defaultWaitRetries); err != nil {
		panic(err)
	}
}

func waitForDB(dsn string, retries int) error {
	if retries <= 0 {
		retries = defaultWaitRetries
	}
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("打开 MySQL 连接失败: %w", err)
	}
	defer sqlDB.Close()
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, 10*time.Second, int32(retries))
	if err != nil {
		return err
	}
	for {
		err = ping(sqlDB)
		if err == nil {
			return nil
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("等待 MySQL 启动失败: %w", err)
		}
		elog.DefaultLogger.Warn("MySQL 还没有准备好",
			elog.FieldErr(err),
			elog.String("retryAfter", next.String()))
		time.Sleep(next)
	}
}

func ping(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return db.PingContext(ctx)
}
