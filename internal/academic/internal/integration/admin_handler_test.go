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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/pfehub/internal/academic/internal/integration/startup"
	"github.com/ecodeclub/pfehub/internal/academic/internal/repository/dao"
	"github.com/ecodeclub/pfehub/internal/academic/internal/web"
	"github.com/ecodeclub/pfehub/internal/test"
	testioc "github.com/ecodeclub/pfehub/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 2051

type AdminHandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.AcademicDAO
	cache  ecache.Cache
}

func (s *AdminHandlerTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{"role": "ADMIN"},
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	module.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.dao = dao.NewGORMAcademicDAO(s.db)
	s.cache = testioc.InitCache()
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `departments`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `specializations`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `academic_years`").Error
	require.NoError(s.T(), err)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	_, err = s.cache.Delete(ctx, "academic:year:current")
	require.NoError(s.T(), err)
}

func (s *AdminHandlerTestSuite) TestSaveDepartment() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		after    func(t *testing.T)
		req      web.Department
		wantCode int
		wantResp test.Result[int64]
	}{
		{
			name:   "新建院系",
			before: func(t *testing.T) {},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
				defer cancel()
				d, err := s.dao.FindDepartment(ctx, 1)
				require.NoError(t, err)
				assert.True(t, d.Ctime > 0)
				assert.True(t, d.Utime > 0)
				d.Ctime, d.Utime = 0, 0
				assert.Equal(t, dao.Department{
					Id:          1,
					Name:        "Informatique",
					Code:        "INFO",
					Description: "génie logiciel",
				}, d)
			},
			req: web.Department{
				Name:        "Informatique",
				Code:        "INFO",
				Description: "génie logiciel",
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[int64]{Data: 1},
		},
		{
			name: "编码重复",
			before: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
				defer cancel()
				_, err := s.dao.SaveDepartment(ctx, dao.Department{Name: "Maths", Code: "MATH"})
				require.NoError(t, err)
			},
			after: func(t *testing.T) {},
			req: web.Department{
				Name: "Mathématiques",
				Code: "MATH",
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[int64]{Code: 520003, Msg: "编码已存在"},
		},
		{
			name:     "缺少编码",
			before:   func(t *testing.T) {},
			after:    func(t *testing.T) {},
			req:      web.Department{Name: "Physique"},
			wantCode: http.StatusOK,
			wantResp: test.Result[int64]{Code: 520004, Msg: "参数错误: 院系名称和编码不能为空"},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/academic/department/save", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[int64]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
			tc.after(t)
		})
	}
}

func (s *AdminHandlerTestSuite) TestSetCurrentYear() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	oldId, err := s.dao.SaveYear(ctx, dao.AcademicYear{Year: "2024-2025"})
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.dao.SetCurrentYear(ctx, oldId))
	newId, err := s.dao.SaveYear(ctx, dao.AcademicYear{
		Year:         "2025-2026",
		DefenseStart: "2026-06-01",
		DefenseEnd:   "2026-07-15",
	})
	require.NoError(s.T(), err)

	// 先把旧的当前学年读进缓存
	req, err := http.NewRequest(http.MethodGet, "/academic/year/current", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.AcademicYear]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	assert.Equal(s.T(), "2024-2025", recorder.MustScan().Data.Year)

	req, err = http.NewRequest(http.MethodPost,
		"/academic/year/set-current", iox.NewJSONReader(web.IdReq{Id: newId}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	setRecorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(setRecorder, req)
	require.Equal(s.T(), http.StatusOK, setRecorder.Code)
	assert.Equal(s.T(), 0, setRecorder.MustScan().Code)

	var currents []dao.AcademicYear
	err = s.db.WithContext(ctx).Where("is_current = ?", true).Find(&currents).Error
	require.NoError(s.T(), err)
	require.Len(s.T(), currents, 1)
	assert.Equal(s.T(), newId, currents[0].Id)

	req, err = http.NewRequest(http.MethodGet, "/academic/year/current", nil)
	require.NoError(s.T(), err)
	recorder = test.NewJSONResponseRecorder[web.AcademicYear]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	cur := recorder.MustScan().Data
	assert.Equal(s.T(), "2025-2026", cur.Year)
	assert.True(s.T(), cur.IsCurrent)
	assert.Equal(s.T(), "2026-06-01", cur.DefenseStart)
}

func (s *AdminHandlerTestSuite) TestSetCurrentYear_NotFound() {
	req, err := http.NewRequest(http.MethodPost,
		"/academic/year/set-current", iox.NewJSONReader(web.IdReq{Id: 404}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	assert.Equal(s.T(), test.Result[any]{Code: 520002, Msg: "数据不存在"}, recorder.MustScan())
}

func TestAcademicAdminHandler(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}
