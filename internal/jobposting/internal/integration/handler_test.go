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
	"fmt"
	"net/http"
	"testing"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hirehub/internal/jobposting/internal/errs"
	"github.com/ecodeclub/hirehub/internal/jobposting/internal/integration/startup"
	"github.com/ecodeclub/hirehub/internal/jobposting/internal/repository/dao"
	"github.com/ecodeclub/hirehub/internal/jobposting/internal/web"
	"github.com/ecodeclub/hirehub/internal/test"
	testioc "github.com/ecodeclub/hirehub/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const recruiterUid = 100

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.JobDAO
	cache  ecache.Cache
	uid    int64
	role   string
}

func (s *HandlerTestSuite) SetupSuite() {
	mou := startup.InitModule()
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", test.NewRoleSession(s.uid, s.role))
	})
	mou.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.dao = dao.NewGORMJobDAO(s.db)
	s.cache = testioc.InitCache()
}

func (s *HandlerTestSuite) SetupTest() {
	s.uid = recruiterUid
	s.role = "TALENT_MANAGER"
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `jobs`").Error
	require.NoError(s.T(), err)
	ids := make([]string, 0, 10)
	for i := 1; i <= 10; i++ {
		ids = append(ids, fmt.Sprintf("jobposting:job:%d", i))
	}
	_, _ = s.cache.Delete(context.Background(), ids...)
}

func (s *HandlerTestSuite) post(path string, body any) *http.Request {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	return req
}

func (s *HandlerTestSuite) TestSave() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		after    func(t *testing.T)
		role     string
		req      web.SaveReq
		wantCode int
		wantData int64
	}{
		{
			name:   "创建职位",
			before: func(t *testing.T) {},
			after: func(t *testing.T) {
				job, err := s.dao.FindById(context.Background(), 1)
				require.NoError(t, err)
				assert.Equal(t, "后端工程师", job.Title)
				assert.Equal(t, []string{"Go", "MySQL"}, job.Skills.Val)
				assert.Equal(t, "OPEN", job.Status)
				assert.Equal(t, int64(recruiterUid), job.OwnerId)
				assert.True(t, job.Ctime > 0)
			},
			role: "TALENT_MANAGER",
			req: web.SaveReq{Job: web.Job{
				Title:                   "后端工程师",
				RequiredSkills:          []string{"Go", "go ", "MySQL"},
				RequiredExperienceYears: 3,
				Location:                "深圳",
			}},
			wantData: 1,
		},
		{
			name: "更新已关闭的职位",
			before: func(t *testing.T) {
				_, err := s.dao.Create(context.Background(), dao.Job{Title: "旧职位", OwnerId: recruiterUid})
				require.NoError(t, err)
				require.NoError(t, s.dao.Close(context.Background(), 1))
			},
			after: func(t *testing.T) {
				job, err := s.dao.FindById(context.Background(), 1)
				require.NoError(t, err)
				assert.Equal(t, "旧职位", job.Title)
			},
			role:     "recruiter",
			req:      web.SaveReq{Job: web.Job{ID: 1, Title: "新职位"}},
			wantCode: errs.JobClosed.Code,
		},
		{
			name:     "候选人不能发布职位",
			before:   func(t *testing.T) {},
			after:    func(t *testing.T) {},
			role:     "consultant",
			req:      web.SaveReq{Job: web.Job{Title: "后端工程师"}},
			wantCode: errs.Unauthorized.Code,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			s.role = tc.role
			recorder := test.NewJSONResponseRecorder[int64]()
			s.server.ServeHTTP(recorder, s.post("/jobs/save", tc.req))
			require.Equal(t, 200, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantData, res.Data)
			tc.after(t)
			s.TearDownTest()
		})
	}
}

func (s *HandlerTestSuite) TestCloseAndList() {
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := s.dao.Create(ctx, dao.Job{
			Title:   "职位",
			Skills:  sqlx.JsonColumn[[]string]{Val: []string{"Go"}, Valid: true},
			OwnerId: recruiterUid,
		})
		require.NoError(s.T(), err)
	}
	_, err := s.dao.Create(ctx, dao.Job{Title: "别人的职位", OwnerId: 200})
	require.NoError(s.T(), err)

	// 先查一次详情，让缓存里有数据
	recorder := test.NewJSONResponseRecorder[web.Job]()
	s.server.ServeHTTP(recorder, s.post("/jobs/detail", web.IdReq{ID: 2}))
	require.Equal(s.T(), "OPEN", recorder.MustScan().Data.Status)

	recorder = test.NewJSONResponseRecorder[web.Job]()
	s.server.ServeHTTP(recorder, s.post("/jobs/close", web.IdReq{ID: 2}))
	require.Equal(s.T(), 0, recorder.MustScan().Code)

	// 关闭之后缓存被清理
	recorder = test.NewJSONResponseRecorder[web.Job]()
	s.server.ServeHTTP(recorder, s.post("/jobs/detail", web.IdReq{ID: 2}))
	assert.Equal(s.T(), "CLOSED", recorder.MustScan().Data.Status)

	// 不能关闭别人的职位
	recorder = test.NewJSONResponseRecorder[web.Job]()
	s.server.ServeHTTP(recorder, s.post("/jobs/close", web.IdReq{ID: 4}))
	assert.Equal(s.T(), errs.Unauthorized.Code, recorder.MustScan().Code)

	listRecorder := test.NewJSONResponseRecorder[web.JobList]()
	s.server.ServeHTTP(listRecorder, s.post("/jobs/list", web.Page{Limit: 10}))
	list := listRecorder.MustScan().Data
	assert.Equal(s.T(), int64(3), list.Total)
	for _, job := range list.List {
		assert.Equal(s.T(), "OPEN", job.Status)
	}

	listRecorder = test.NewJSONResponseRecorder[web.JobList]()
	s.server.ServeHTTP(listRecorder, s.post("/jobs/mine", web.Page{Limit: 10}))
	mine := listRecorder.MustScan().Data
	assert.Equal(s.T(), int64(3), mine.Total)

	recorder = test.NewJSONResponseRecorder[web.Job]()
	s.server.ServeHTTP(recorder, s.post("/jobs/detail", web.IdReq{ID: 99}))
	assert.Equal(s.T(), errs.JobNotFound.Code, recorder.MustScan().Code)
}

func TestJobHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
