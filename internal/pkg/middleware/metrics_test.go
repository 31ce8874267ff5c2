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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/pfehub/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsBuilder_Build(t *testing.T) {
	reg := prometheus.NewRegistry()
	builder := newMetricsBuilder(reg)

	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		if ctx.GetHeader("X-Role") != "" {
			ctx.Set("_session", session.NewMemorySession(session.Claims{
				Uid:  1,
				Data: map[string]string{user.RoleClaim: ctx.GetHeader("X-Role")},
			}))
		}
	})
	server.Use(builder.Build())
	server.GET("/pfe/defense/:id", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	for _, role := range []string{"PROFESSOR", "PROFESSOR", ""} {
		req := httptest.NewRequest(http.MethodGet, "/pfe/defense/12", nil)
		req.Header.Set("X-Role", role)
		server.ServeHTTP(httptest.NewRecorder(), req)
	}
	server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, float64(2), testutil.ToFloat64(
		builder.total.WithLabelValues(http.MethodGet, "/pfe/defense/:id", "200", "PROFESSOR")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		builder.total.WithLabelValues(http.MethodGet, "/pfe/defense/:id", "200", "anonymous")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		builder.total.WithLabelValues(http.MethodGet, "unknown", "404", "anonymous")))
}
