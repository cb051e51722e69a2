// Copyright 2024 vyralabs
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
	"sync"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/vyralabs/vyra/internal/content"
	"github.com/vyralabs/vyra/internal/credit"
	"github.com/vyralabs/vyra/internal/engagement"
	"github.com/vyralabs/vyra/internal/engagement/internal/domain"
	"github.com/vyralabs/vyra/internal/engagement/internal/repository/dao"
	"github.com/vyralabs/vyra/internal/engagement/internal/web"
	"github.com/vyralabs/vyra/internal/test"
	testioc "github.com/vyralabs/vyra/internal/test/ioc"
)

const (
	uid      = int64(2051)
	ownerUid = int64(1024)
)

type HandlerTestSuite struct {
	suite.Suite
	server     *egin.Component
	db         *egorm.Component
	svc        engagement.Service
	creditSvc  credit.Service
	contentSvc content.Service
	vid        int64
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	q := testioc.InitMQ()
	creditM, err := credit.InitModule(s.db, testioc.InitCache())
	require.NoError(s.T(), err)
	node, err := snowflake.NewNode(1)
	require.NoError(s.T(), err)
	contentM, err := content.InitModule(s.db, node, creditM)
	require.NoError(s.T(), err)
	m, err := engagement.InitModule(s.db, q, creditM, contentM)
	require.NoError(s.T(), err)
	s.svc = m.Svc
	s.creditSvc = creditM.Svc
	s.contentSvc = contentM.Svc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) SetupTest() {
	vid, err := s.contentSvc.Publish(context.Background(), content.Video{
		Uid:        ownerUid,
		Title:      "测试视频",
		VideoURL:   "https://cdn.vyra.app/v/1.mp4",
		Visibility: content.VisibilityPublic,
	})
	require.NoError(s.T(), err)
	s.vid = vid
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{
		"`interactives`", "`user_actions`",
		"`credits`", "`credit_logs`",
		"`videos`", "`hashtags`", "`video_hashtags`",
	} {
		err := s.db.Exec("TRUNCATE TABLE " + table).Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) post(path string, req web.ActionReq) (int, test.Result[web.LikeResp]) {
	httpReq, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(req))
	require.NoError(s.T(), err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.LikeResp]()
	s.server.ServeHTTP(recorder, httpReq)
	return recorder.Code, recorder.MustScan()
}

// TestBuzz buzz 一次：计数 +1，操作者拿 3 分
func (s *HandlerTestSuite) TestBuzz() {
	t := s.T()
	ctx := context.Background()
	req := web.ActionReq{Biz: "video", BizId: s.vid}

	code, _ := s.post("/engagement/buzz", req)
	require.Equal(t, 200, code)

	intr, err := s.svc.Get(ctx, "video", s.vid, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), intr.BuzzCnt)
	assert.True(t, intr.Buzzed)

	balance, err := s.creditSvc.GetBalance(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(3), balance)

	// buzz 是一次性动作，重复会被拒绝
	code, resp := s.post("/engagement/buzz", req)
	require.Equal(t, 200, code)
	assert.Equal(t, 508002, resp.Code)

	intr, err = s.svc.Get(ctx, "video", s.vid, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), intr.BuzzCnt)
}

// TestLikeToggle 点赞-取消-再点赞：计数回到 1，积分只发一次
func (s *HandlerTestSuite) TestLikeToggle() {
	t := s.T()
	ctx := context.Background()
	req := web.ActionReq{Biz: "video", BizId: s.vid}

	code, resp := s.post("/engagement/like", req)
	require.Equal(t, 200, code)
	assert.True(t, resp.Data.Liked)

	balance, err := s.creditSvc.GetBalance(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), balance)

	// 取消点赞，计数回落，发出去的积分不追回
	code, resp = s.post("/engagement/like", req)
	require.Equal(t, 200, code)
	assert.False(t, resp.Data.Liked)

	intr, err := s.svc.Get(ctx, "video", s.vid, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(0), intr.LikeCnt)
	assert.False(t, intr.Liked)

	balance, err = s.creditSvc.GetBalance(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), balance)

	// 再点赞，幂等键拦住第二笔奖励
	code, resp = s.post("/engagement/like", req)
	require.Equal(t, 200, code)
	assert.True(t, resp.Data.Liked)

	intr, err = s.svc.Get(ctx, "video", s.vid, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), intr.LikeCnt)

	balance, err = s.creditSvc.GetBalance(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), balance)
}

// TestConcurrentBuzz 并发重复 buzz 只能留下一行、一次计数、一笔积分
func (s *HandlerTestSuite) TestConcurrentBuzz() {
	t := s.T()
	ctx := context.Background()

	const workers = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.svc.Record(ctx, domain.Interaction{
				Biz:    "video",
				BizID:  s.vid,
				Uid:    uid,
				Action: domain.ActionBuzz,
			})
		}()
	}
	wg.Wait()

	var rowCnt int64
	err := s.db.Model(&dao.UserAction{}).
		Where("uid = ? AND biz = ? AND biz_id = ? AND action = ?", uid, "video", s.vid, "buzz").
		Count(&rowCnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), rowCnt)

	intr, err := s.svc.Get(ctx, "video", s.vid, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), intr.BuzzCnt)

	balance, err := s.creditSvc.GetBalance(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(3), balance)
}

func (s *HandlerTestSuite) TestBuzzTargetNotFound() {
	t := s.T()
	code, resp := s.post("/engagement/buzz", web.ActionReq{Biz: "video", BizId: 999999})
	require.Equal(t, 200, code)
	assert.Equal(t, 508003, resp.Code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
