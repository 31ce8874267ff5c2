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

package middleware

import (
	"strconv"
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/pfehub/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// sessionCtxKey ginx 在上下文中保存 session 使用的 key
const sessionCtxKey = "_session"

// MetricsBuilder 统计 HTTP 请求的次数和耗时，按照角色区分
type MetricsBuilder struct {
	duration *prometheus.HistogramVec
	total    *prometheus.CounterVec
}

func NewMetricsBuilder() *MetricsBuilder {
	return newMetricsBuilder(prometheus.DefaultRegisterer)
}

func newMetricsBuilder(reg prometheus.Registerer) *MetricsBuilder {
	factory := promauto.With(reg)
	labels := []string{"method", "path", "status_code", "role"}
	return &MetricsBuilder{
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pfehub",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP 请求耗时",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, labels),
		total: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pfehub",
			Name:      "http_requests_total",
			Help:      "HTTP 请求次数",
		}, labels),
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		// 没有匹配上路由的请求统一归到一个 path 下面，避免指标爆炸
		path := ctx.FullPath()
		if path == "" {
			path = "unknown"
		}
		role := "anonymous"
		// 只读取登录校验之后放进上下文的 session，不再访问 redis
		if val, ok := ctx.Get(sessionCtxKey); ok {
			if sess, ok := val.(session.Session); ok {
				role = sess.Claims().Get(user.RoleClaim).StringOrDefault(role)
			}
		}
		values := []string{ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status()), role}
		b.duration.WithLabelValues(values...).Observe(time.Since(start).Seconds())
		b.total.WithLabelValues(values...).Inc()
	}
}
