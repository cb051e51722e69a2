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
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/vyralabs/vyra/internal/challenge"
	"github.com/vyralabs/vyra/internal/challenge/internal/web"
	"github.com/vyralabs/vyra/internal/credit"
	creditdao "github.com/vyralabs/vyra/internal/credit/internal/repository/dao"
	"github.com/vyralabs/vyra/internal/test"
	testioc "github.com/vyralabs/vyra/internal/test/ioc"
)

const uid = int64(2051)

type HandlerTestSuite struct {
	suite.Suite
	server    *egin.Component
	db        *egorm.Component
	svc       challenge.Service
	creditSvc credit.Service
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	creditM, err := credit.InitModule(s.db, testioc.InitCache())
	require.NoError(s.T(), err)
	m, err := challenge.InitModule(s.db, testioc.InitMQ(), creditM)
	require.NoError(s.T(), err)
	s.svc = m.Svc
	s.creditSvc = creditM.Svc

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

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{
		"`challenges`", "`user_challenges`",
		"`credits`", "`credit_logs`",
	} {
		err := s.db.Exec("TRUNCATE TABLE " + table).Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) createChallenge(target, reward int64) int64 {
	id, err := s.svc.Create(context.Background(), challenge.Challenge{
		Name:   "点赞达人",
		Desc:   "点满规定次数",
		Action: "like",
		Target: target,
		Reward: reward,
	})
	require.NoError(s.T(), err)
	return id
}

func (s *HandlerTestSuite) claim(cid int64) test.Result[any] {
	req, err := http.NewRequest(http.MethodPost, "/challenge/claim",
		iox.NewJSONReader(web.IdReq{ID: cid}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) list() web.ListResp {
	req, err := http.NewRequest(http.MethodPost, "/challenge/list",
		iox.NewJSONReader(struct{}{}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ListResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	return recorder.MustScan().Data
}

// TestProgressAndClaim 进度累计到目标值才能领奖，领完标记落库
func (s *HandlerTestSuite) TestProgressAndClaim() {
	t := s.T()
	ctx := context.Background()
	cid := s.createChallenge(3, 20)

	require.NoError(t, s.svc.HandleProgress(ctx, uid, "like"))
	require.NoError(t, s.svc.HandleProgress(ctx, uid, "like"))

	// 差一次，还不能领
	resp := s.claim(cid)
	assert.Equal(t, 511003, resp.Code)

	require.NoError(t, s.svc.HandleProgress(ctx, uid, "like"))

	cs := s.list()
	require.Len(t, cs.Challenges, 1)
	assert.Equal(t, int64(3), cs.Challenges[0].Progress)
	assert.True(t, cs.Challenges[0].Completed)
	assert.False(t, cs.Challenges[0].Claimed)

	resp = s.claim(cid)
	assert.Equal(t, 0, resp.Code)

	balance, err := s.creditSvc.GetBalance(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(20), balance)

	cs = s.list()
	require.Len(t, cs.Challenges, 1)
	assert.True(t, cs.Challenges[0].Claimed)

	// 二次领取被拒，积分不变
	resp = s.claim(cid)
	assert.Equal(t, 511004, resp.Code)

	balance, err = s.creditSvc.GetBalance(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(20), balance)
}

// TestConcurrentClaim 并发领奖只能成功一次，只发一笔积分
func (s *HandlerTestSuite) TestConcurrentClaim() {
	t := s.T()
	ctx := context.Background()
	cid := s.createChallenge(1, 50)
	require.NoError(t, s.svc.HandleProgress(ctx, uid, "like"))

	const workers = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.svc.Claim(ctx, uid, cid)
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.True(t, errors.Is(err, challenge.ErrAlreadyClaimed))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)

	balance, err := s.creditSvc.GetBalance(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(50), balance)

	var cnt int64
	err = s.db.Model(&creditdao.CreditLog{}).Where("uid = ?", uid).Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}

// TestProgressOnlyMatchingAction 进度只认挑战声明的动作
func (s *HandlerTestSuite) TestProgressOnlyMatchingAction() {
	t := s.T()
	ctx := context.Background()
	cid := s.createChallenge(1, 10)

	require.NoError(t, s.svc.HandleProgress(ctx, uid, "buzz"))

	cs := s.list()
	require.Len(t, cs.Challenges, 1)
	assert.Equal(t, cid, cs.Challenges[0].ID)
	assert.Equal(t, int64(0), cs.Challenges[0].Progress)
	assert.False(t, cs.Challenges[0].Completed)
}

func (s *HandlerTestSuite) TestCreate_Invalid() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, "/challenge/create",
		iox.NewJSONReader(web.CreateReq{Name: "没有目标", Action: "like"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CreateResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 511005, recorder.MustScan().Code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
