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

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/pfehub/internal/academic"
	academicmocks "github.com/ecodeclub/pfehub/internal/academic/mocks"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/integration/startup"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/repository/dao"
	"github.com/ecodeclub/pfehub/internal/pfe/internal/web"
	"github.com/ecodeclub/pfehub/internal/test"
	testioc "github.com/ecodeclub/pfehub/internal/test/ioc"
	"github.com/ecodeclub/pfehub/internal/user"
	usermocks "github.com/ecodeclub/pfehub/internal/user/mocks"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	adminUid     = 1
	studentUid   = 101
	professorUid = 201
	// otherProfessorUid 另外一个院系的教授，只用来当评委和候选人
	otherProfessorUid = 202
)

var users = map[int64]user.User{
	studentUid: {
		Id: studentUid, FirstName: "Grace", LastName: "Hopper", Email: "grace@pfe.tn",
		Role: user.RoleStudent, DepartmentId: 1, SpecializationId: 10, Active: true,
		Student: &user.StudentProfile{StudentNumber: "S2025-01"},
	},
	professorUid: {
		Id: professorUid, FirstName: "Ada", LastName: "Lovelace", Email: "ada@pfe.tn",
		Role: user.RoleProfessor, DepartmentId: 1, SpecializationId: 10, Active: true,
		Professor: &user.ProfessorProfile{Expertise: []string{"golang", "distributed systems"}, MaxCapacity: 2},
	},
	otherProfessorUid: {
		Id: otherProfessorUid, FirstName: "Alan", LastName: "Turing", Email: "alan@pfe.tn",
		Role: user.RoleProfessor, DepartmentId: 2, SpecializationId: 20, Active: true,
		Professor: &user.ProfessorProfile{Expertise: []string{"machine learning"}, MaxCapacity: 5},
	},
}

type HandlerTestSuite struct {
	suite.Suite
	db        *egorm.Component
	student   *egin.Component
	professor *egin.Component
	admin     *egin.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	ctrl := gomock.NewController(s.T())
	userSvc := usermocks.NewMockService(ctrl)
	userSvc.EXPECT().Profile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id int64) (user.User, error) {
			u, ok := users[id]
			if !ok {
				return user.User{}, user.ErrNotFound
			}
			return u, nil
		}).AnyTimes()
	userSvc.EXPECT().FindByIds(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ids []int64) (map[int64]user.User, error) {
			res := make(map[int64]user.User, len(ids))
			for _, id := range ids {
				if u, ok := users[id]; ok {
					res[id] = u
				}
			}
			return res, nil
		}).AnyTimes()
	userSvc.EXPECT().Professors(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, sid int64) ([]user.User, error) {
			res := make([]user.User, 0, 2)
			for _, id := range []int64{professorUid, otherProfessorUid} {
				if sid <= 0 || users[id].SpecializationId == sid {
					res = append(res, users[id])
				}
			}
			return res, nil
		}).AnyTimes()

	acSvc := academicmocks.NewMockService(ctrl)
	acSvc.EXPECT().CurrentYear(gomock.Any()).
		Return(academic.AcademicYear{}, academic.ErrNotFound).AnyTimes()

	module, err := startup.InitModule(&user.Module{Svc: userSvc}, &academic.Module{Svc: acSvc})
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	s.student = s.newServer(studentUid, user.RoleStudent, func(engine *gin.Engine) {
		module.Hdl.PrivateRoutes(engine)
		module.DefenseHdl.PrivateRoutes(engine)
	})
	s.professor = s.newServer(professorUid, user.RoleProfessor, func(engine *gin.Engine) {
		module.Hdl.PrivateRoutes(engine)
		module.DefenseHdl.PrivateRoutes(engine)
	})
	s.admin = s.newServer(adminUid, user.RoleAdmin, func(engine *gin.Engine) {
		module.AdminHdl.PrivateRoutes(engine)
	})
	s.db = testioc.InitDB()
}

func (s *HandlerTestSuite) newServer(uid int64, role user.Role, register func(engine *gin.Engine)) *egin.Component {
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{user.RoleClaim: role.String()},
		}))
	})
	register(server.Engine)
	return server
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"projects", "deliverables", "defenses", "jury_members"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func doRequest[T any](t *testing.T, server *egin.Component, path string, body any) test.Result[T] {
	var (
		req *http.Request
		err error
	)
	if body == nil {
		req, err = http.NewRequest(http.MethodGet, path, nil)
	} else {
		req, err = http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
		req.Header.Set("content-type", "application/json")
	}
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) project(t *testing.T, id int64) dao.Project {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	var p dao.Project
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	require.NoError(t, err)
	return p
}

func (s *HandlerTestSuite) TestWorkflow() {
	t := s.T()

	pid := doRequest[int64](t, s.student, "/pfe/project/submit", web.SubmitProjectReq{
		Title:    "分布式任务调度",
		Keywords: []string{"Go", "Microservices"},
	}).Data
	require.True(t, pid > 0)
	p := s.project(t, pid)
	assert.Equal(t, "PENDING_ASSIGNMENT", p.Status)
	assert.Equal(t, "Go,Microservices", p.Keywords)
	assert.Equal(t, int64(studentUid), p.StudentId)
	assert.NotEmpty(t, p.SN)

	// 一个学生只能有一个项目
	res := doRequest[int64](t, s.student, "/pfe/project/submit", web.SubmitProjectReq{Title: "第二个项目"})
	assert.Equal(t, 530004, res.Code)

	recs := doRequest[[]web.Recommendation](t, s.admin, "/pfe/project/recommend", web.IdReq{Id: pid}).Data
	require.Len(t, recs, 2)
	assert.Equal(t, web.Recommendation{
		ProfessorId: professorUid,
		Name:        "Ada Lovelace",
		Email:       "ada@pfe.tn",
		Score:       80,
		CurrentLoad: 0,
		MaxCapacity: 2,
		Expertise:   []string{"golang", "distributed systems"},
		Reason:      "same specialization. excellent match. load: 0/2",
	}, recs[0])
	assert.Equal(t, int64(otherProfessorUid), recs[1].ProfessorId)
	assert.Equal(t, 10, recs[1].Score)
	assert.Equal(t, "load: 0/5", recs[1].Reason)

	res = doRequest[int64](t, s.admin, "/pfe/project/assign", web.AssignReq{
		Pid: pid, ProfessorId: professorUid, Comments: "欢迎",
	})
	require.Equal(t, 0, res.Code)
	p = s.project(t, pid)
	assert.Equal(t, "UNDER_REVIEW", p.Status)
	assert.Equal(t, int64(professorUid), p.ProfessorId)
	assert.True(t, p.AssignedAt > 0)

	// 负载更新之后，导师的推荐分数不再有低负载加分
	recs = doRequest[[]web.Recommendation](t, s.admin, "/pfe/project/recommend", web.IdReq{Id: pid}).Data
	require.Len(t, recs, 2)
	assert.Equal(t, 70, recs[0].Score)
	assert.Equal(t, 1, recs[0].CurrentLoad)

	res = doRequest[int64](t, s.professor, "/pfe/project/accept", web.ReviewReq{Pid: pid, Comments: "不错"})
	require.Equal(t, 0, res.Code)
	assert.Equal(t, "ACCEPTED", s.project(t, pid).Status)

	// 还没有最终提交，不能安排答辩
	res = doRequest[int64](t, s.professor, "/pfe/defense/propose", web.ProposeReq{
		ProjectId: pid, Date: "2030-06-15", Time: "09:00", Room: "A1",
	})
	assert.Equal(t, 530002, res.Code)

	res = doRequest[int64](t, s.student, "/pfe/project/final", web.IdReq{Id: pid})
	require.Equal(t, 0, res.Code)
	assert.Equal(t, "FINAL_SUBMISSION", s.project(t, pid).Status)

	did := doRequest[int64](t, s.professor, "/pfe/defense/propose", web.ProposeReq{
		ProjectId: pid, Date: "2030-06-15", Time: "09:00:00", Room: "A1",
		Jury: []web.JuryMember{
			{ProfessorId: otherProfessorUid, Role: "PRESIDENT"},
			{Name: "Margaret Hamilton", Email: "margaret@nasa.gov", Role: "GUEST"},
			{Name: "Ghost", ProfessorId: 999},
		},
	}).Data
	require.True(t, did > 0)
	assert.Equal(t, "DEFENSE_SCHEDULED", s.project(t, pid).Status)

	d := doRequest[web.Defense](t, s.student, "/pfe/defense/project", web.IdReq{Id: pid}).Data
	assert.Equal(t, "PROPOSED", d.Status)
	assert.Equal(t, "09:00", d.ProposedTime)
	assert.True(t, d.ProposedAt > 0)
	require.Len(t, d.Jury, 3)
	jury := make(map[string]web.JuryMember, 3)
	for _, j := range d.Jury {
		j.Id = 0
		jury[j.Role] = j
	}
	assert.Equal(t, web.JuryMember{
		Name: "Alan Turing", Email: "alan@pfe.tn", Role: "PRESIDENT", ProfessorId: otherProfessorUid,
	}, jury["PRESIDENT"])
	assert.Equal(t, web.JuryMember{Name: "Ghost", Role: "EXAMINER"}, jury["EXAMINER"])

	// 已经有答辩了
	res = doRequest[int64](t, s.professor, "/pfe/defense/propose", web.ProposeReq{
		ProjectId: pid, Date: "2030-06-16", Time: "10:00", Room: "B2",
	})
	assert.Equal(t, 530004, res.Code)

	res = doRequest[int64](t, s.admin, "/pfe/defense/validate", web.ValidateReq{Id: did, Room: "Amphi"})
	require.Equal(t, 0, res.Code)
	d = doRequest[web.Defense](t, s.admin, "/pfe/defense/detail", web.IdReq{Id: did}).Data
	assert.Equal(t, "VALIDATED", d.Status)
	assert.Equal(t, "2030-06-15", d.FinalDate)
	assert.Equal(t, "09:00", d.FinalTime)
	assert.Equal(t, "Amphi", d.FinalRoom)
	assert.Equal(t, int64(adminUid), d.ValidatedBy)
	assert.Len(t, d.Jury, 3)

	conflict := doRequest[bool](t, s.professor, "/pfe/defense/conflict", web.ConflictReq{
		Date: "2030-06-15", Time: "09:00", Room: "Amphi",
	}).Data
	assert.True(t, conflict)
	conflict = doRequest[bool](t, s.professor, "/pfe/defense/conflict", web.ConflictReq{
		Date: "2030-06-15", Time: "10:00", Room: "Amphi",
	}).Data
	assert.False(t, conflict)

	upcoming := doRequest[[]web.Defense](t, s.student, "/pfe/defense/upcoming", web.UpcomingReq{From: "2030-01-01"}).Data
	require.Len(t, upcoming, 1)
	assert.Equal(t, did, upcoming[0].Id)

	grade := 15.5
	score := 16.0
	res = doRequest[int64](t, s.professor, "/pfe/defense/evaluate", web.EvaluateReq{
		Id: did,
		Evaluation: web.Evaluation{
			PresentationQuality: &score,
			SubjectMastery:      &score,
			QuestionAnswers:     &score,
			TimeRespect:         &score,
			FinalGrade:          &grade,
			Comments:            "很好",
		},
	})
	require.Equal(t, 0, res.Code)
	assert.Equal(t, "EVALUATED", s.project(t, pid).Status)
	d = doRequest[web.Defense](t, s.admin, "/pfe/defense/detail", web.IdReq{Id: did}).Data
	assert.True(t, d.Evaluated)
	assert.Equal(t, &grade, d.Evaluation.FinalGrade)
	assert.Equal(t, int64(professorUid), d.Evaluation.EvaluatedBy)
	// 评分不改变答辩状态
	assert.Equal(t, "VALIDATED", d.Status)

	stats := doRequest[web.ProjectStats](t, s.admin, "/pfe/project/stats", nil).Data
	assert.Equal(t, int64(1), stats.Total)
	assert.Equal(t, map[string]int64{"EVALUATED": 1}, stats.ByStatus)
}

func (s *HandlerTestSuite) TestRejectAndPropose() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	p := dao.Project{
		SN: "reject-case", Title: "编译器优化", Status: "FINAL_SUBMISSION",
		StudentId: studentUid, ProfessorId: professorUid,
	}
	require.NoError(t, s.db.WithContext(ctx).Create(&p).Error)

	did := doRequest[int64](t, s.professor, "/pfe/defense/propose", web.ProposeReq{
		ProjectId: p.Id, Date: "2030-07-01", Time: "14:00", Room: "C3",
	}).Data
	require.True(t, did > 0)

	// 评委名字不能为空
	res := doRequest[int64](t, s.admin, "/pfe/defense/jury/update", web.JuryReq{
		Id: did, Jury: []web.JuryMember{{Role: "EXAMINER"}},
	})
	assert.Equal(t, 530002, res.Code)

	// 评分在任何状态都可以进行
	grade := 12.0
	res = doRequest[int64](t, s.admin, "/pfe/defense/evaluate", web.EvaluateReq{
		Id:         did,
		Evaluation: web.Evaluation{FinalGrade: &grade, Strengths: "表达清晰"},
	})
	require.Equal(t, 0, res.Code)
	assert.True(t, doRequest[web.Defense](t, s.admin, "/pfe/defense/detail", web.IdReq{Id: did}).Data.Evaluated)

	res = doRequest[int64](t, s.admin, "/pfe/defense/reject", web.RejectDefenseReq{Id: did})
	assert.Equal(t, 530002, res.Code)
	res = doRequest[int64](t, s.admin, "/pfe/defense/reject", web.RejectDefenseReq{Id: did, Reason: "教室不可用"})
	require.Equal(t, 0, res.Code)
	assert.Equal(t, "FINAL_SUBMISSION", s.project(t, p.Id).Status)

	// 被拒绝之后不能再修改
	res = doRequest[int64](t, s.admin, "/pfe/defense/modify", web.ModifyReq{
		Id: did, Date: "2030-07-02", Time: "14:00", Room: "C3",
	})
	assert.Equal(t, 530004, res.Code)

	// 重新提议会复用原来的答辩
	newId := doRequest[int64](t, s.professor, "/pfe/defense/propose", web.ProposeReq{
		ProjectId: p.Id, Date: "2030-07-03", Time: "08:30", Room: "C3",
	}).Data
	assert.Equal(t, did, newId)
	d := doRequest[web.Defense](t, s.admin, "/pfe/defense/detail", web.IdReq{Id: did}).Data
	assert.Equal(t, "PROPOSED", d.Status)
	assert.Equal(t, "2030-07-03", d.ProposedDate)
	assert.Empty(t, d.RejectionReason)
	// 上一次的评分不能留在新的提议上
	assert.False(t, d.Evaluated)
	assert.Nil(t, d.Evaluation.FinalGrade)
	assert.Empty(t, d.Evaluation.Strengths)
	assert.Zero(t, d.Evaluation.EvaluatedAt)
	assert.Zero(t, d.Evaluation.EvaluatedBy)

	pending := doRequest[[]web.Defense](t, s.admin, "/pfe/defense/pending", nil).Data
	require.Len(t, pending, 1)
	assert.Equal(t, did, pending[0].Id)

	res = doRequest[int64](t, s.admin, "/pfe/defense/delete", web.IdReq{Id: did})
	require.Equal(t, 0, res.Code)
	assert.Equal(t, "FINAL_SUBMISSION", s.project(t, p.Id).Status)
	res = doRequest[int64](t, s.admin, "/pfe/defense/detail", web.IdReq{Id: did})
	assert.Equal(t, 530003, res.Code)
}

// 同样的写入连续执行两次，结果应该和执行一次一样
func (s *HandlerTestSuite) TestRepeatedWrites() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	p := dao.Project{
		SN: "repeat-case", Title: "日志压缩", Status: "FINAL_SUBMISSION",
		StudentId: studentUid, ProfessorId: professorUid,
	}
	require.NoError(t, s.db.WithContext(ctx).Create(&p).Error)
	did := doRequest[int64](t, s.professor, "/pfe/defense/propose", web.ProposeReq{
		ProjectId: p.Id, Date: "2030-09-01", Time: "10:00", Room: "B2",
		Jury: []web.JuryMember{{Name: "Grace Hopper", Role: "PRESIDENT"}},
	}).Data
	require.True(t, did > 0)

	for i := 0; i < 2; i++ {
		res := doRequest[int64](t, s.admin, "/pfe/defense/jury/update", web.JuryReq{Id: did})
		require.Equal(t, 0, res.Code, "第 %d 次清空评委", i+1)
	}
	jury := doRequest[[]web.JuryMember](t, s.admin, "/pfe/defense/jury", web.IdReq{Id: did}).Data
	assert.Empty(t, jury)

	members := []web.JuryMember{{Name: "Grace Hopper", Role: "PRESIDENT"}, {Name: "Alan Kay", Role: "EXAMINER"}}
	for i := 0; i < 2; i++ {
		res := doRequest[int64](t, s.admin, "/pfe/defense/jury/update", web.JuryReq{Id: did, Jury: members})
		require.Equal(t, 0, res.Code, "第 %d 次设置评委", i+1)
	}
	jury = doRequest[[]web.JuryMember](t, s.admin, "/pfe/defense/jury", web.IdReq{Id: did}).Data
	assert.Len(t, jury, 2)

	res := doRequest[int64](t, s.admin, "/pfe/defense/validate", web.ValidateReq{Id: did})
	require.Equal(t, 0, res.Code)
	modify := web.ModifyReq{Id: did, Date: "2030-09-02", Time: "11:00", Room: "B3", Reason: "教室冲突"}
	for i := 0; i < 2; i++ {
		res = doRequest[int64](t, s.admin, "/pfe/defense/modify", modify)
		require.Equal(t, 0, res.Code, "第 %d 次修改", i+1)
	}
	d := doRequest[web.Defense](t, s.admin, "/pfe/defense/detail", web.IdReq{Id: did}).Data
	assert.Equal(t, "MODIFIED", d.Status)
	assert.Equal(t, "B3", d.FinalRoom)

	// 不存在的答辩仍然是 NotFound
	res = doRequest[int64](t, s.admin, "/pfe/defense/jury/update", web.JuryReq{Id: did + 1000})
	assert.Equal(t, 530003, res.Code)
}

func (s *HandlerTestSuite) TestPermission() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	p := dao.Project{
		SN: "permission-case", Title: "推荐系统", Status: "UNDER_REVIEW",
		StudentId: 102, ProfessorId: otherProfessorUid,
	}
	require.NoError(t, s.db.WithContext(ctx).Create(&p).Error)

	testCases := []struct {
		name     string
		server   *egin.Component
		path     string
		req      any
		wantCode int
	}{
		{
			name:     "学生看别人的项目",
			server:   s.student,
			path:     "/pfe/project/detail",
			req:      web.IdReq{Id: p.Id},
			wantCode: 530005,
		},
		{
			name:     "不是项目的导师",
			server:   s.professor,
			path:     "/pfe/project/accept",
			req:      web.ReviewReq{Pid: p.Id},
			wantCode: 530005,
		},
		{
			name:     "项目不存在",
			server:   s.professor,
			path:     "/pfe/defense/propose",
			req:      web.ProposeReq{ProjectId: 404, Date: "2030-07-01", Time: "14:00", Room: "C3"},
			wantCode: 530003,
		},
		{
			name:     "参数错误",
			server:   s.student,
			path:     "/pfe/project/submit",
			req:      web.SubmitProjectReq{},
			wantCode: 530002,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := doRequest[any](t, tc.server, tc.path, tc.req)
			assert.Equal(t, tc.wantCode, res.Code)
		})
	}

	// 角色不对直接拒绝
	req, err := http.NewRequest(http.MethodPost, "/pfe/project/submit",
		iox.NewJSONReader(web.SubmitProjectReq{Title: "教授不能提交"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.professor.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
