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
	"fmt"
	"net/http"
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
	"github.com/vyralabs/vyra/internal/battle"
	"github.com/vyralabs/vyra/internal/battle/internal/web"
	"github.com/vyralabs/vyra/internal/credit"
	"github.com/vyralabs/vyra/internal/test"
	testioc "github.com/vyralabs/vyra/internal/test/ioc"
)

const uid = int64(2051)

type HandlerTestSuite struct {
	suite.Suite
	server    *egin.Component
	db        *egorm.Component
	svc       battle.Service
	creditSvc credit.Service
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	creditM, err := credit.InitModule(s.db, testioc.InitCache())
	require.NoError(s.T(), err)
	m, err := battle.InitModule(s.db, creditM)
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
	m.Hdl.PublicRoutes(server.Engine)
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{
		"`battles`", "`battle_votes`",
		"`credits`", "`credit_logs`",
	} {
		err := s.db.Exec("TRUNCATE TABLE " + table).Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) createBattle(live bool) int64 {
	id, err := s.svc.Create(context.Background(), battle.Battle{
		VidA: 101,
		VidB: 102,
		Live: live,
	})
	require.NoError(s.T(), err)
	return id
}

func (s *HandlerTestSuite) vote(battleId, vid int64) test.Result[any] {
	req, err := http.NewRequest(http.MethodPost, "/battle/vote",
		iox.NewJSONReader(web.VoteReq{BattleID: battleId, Vid: vid}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	return recorder.MustScan()
}

// TestFreeVote 普通对战投票免费，投票人得 1 分，重复投票被拒
func (s *HandlerTestSuite) TestFreeVote() {
	t := s.T()
	ctx := context.Background()
	id := s.createBattle(false)

	resp := s.vote(id, 101)
	assert.Equal(t, 0, resp.Code)

	b, err := s.svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.VotesA)
	assert.Equal(t, int64(0), b.VotesB)

	balance, err := s.creditSvc.GetBalance(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), balance)

	resp = s.vote(id, 101)
	assert.Equal(t, 510003, resp.Code)

	b, err = s.svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.VotesA)
}

// TestLiveVote 直播对战先扣 5 分再落票
func (s *HandlerTestSuite) TestLiveVote() {
	t := s.T()
	ctx := context.Background()
	id := s.createBattle(true)

	err := s.creditSvc.AddPoints(ctx, credit.CreditLog{
		Key:          "seed-live-vote",
		Uid:          uid,
		ChangeAmount: 20,
		Kind:         credit.KindEarned,
		Biz:          "test",
		BizId:        1,
	})
	require.NoError(t, err)

	resp := s.vote(id, 102)
	assert.Equal(t, 0, resp.Code)

	b, err := s.svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.VotesB)

	balance, err := s.creditSvc.GetBalance(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(15), balance)
}

// TestLiveVote_NotEnough 余额不足的直播投票要完整失败，不落票不扣费
func (s *HandlerTestSuite) TestLiveVote_NotEnough() {
	t := s.T()
	ctx := context.Background()
	id := s.createBattle(true)

	err := s.creditSvc.AddPoints(ctx, credit.CreditLog{
		Key:          "seed-poor",
		Uid:          uid,
		ChangeAmount: 3,
		Kind:         credit.KindEarned,
		Biz:          "test",
		BizId:        1,
	})
	require.NoError(t, err)

	resp := s.vote(id, 101)
	assert.Equal(t, 510005, resp.Code)

	b, err := s.svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), b.VotesA)

	balance, err := s.creditSvc.GetBalance(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(3), balance)
}

// TestLiveVote_RetryAfterCharge 上一次扣了费但票没落下去（进程挂在两步中间），
// 重试要把票补上，而且不能再扣一次
func (s *HandlerTestSuite) TestLiveVote_RetryAfterCharge() {
	t := s.T()
	ctx := context.Background()
	id := s.createBattle(true)

	err := s.creditSvc.AddPoints(ctx, credit.CreditLog{
		Key:          "seed-retry",
		Uid:          uid,
		ChangeAmount: 20,
		Kind:         credit.KindEarned,
		Biz:          "test",
		BizId:        1,
	})
	require.NoError(t, err)

	// 手工写入一笔带投票幂等键的扣费，模拟只走完第一步的现场
	err = s.creditSvc.DeductPoints(ctx, credit.CreditLog{
		Key:          fmt.Sprintf("battle-vote-%d-%d", id, uid),
		Uid:          uid,
		ChangeAmount: -5,
		Kind:         credit.KindSpent,
		Biz:          "battle",
		BizId:        id,
	})
	require.NoError(t, err)

	resp := s.vote(id, 102)
	assert.Equal(t, 0, resp.Code)

	b, err := s.svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.VotesB)

	// 只扣了一次：20 - 5
	balance, err := s.creditSvc.GetBalance(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(15), balance)
}

func (s *HandlerTestSuite) TestVote_InvalidVid() {
	t := s.T()
	id := s.createBattle(false)
	resp := s.vote(id, 999)
	assert.Equal(t, 510006, resp.Code)
}

func (s *HandlerTestSuite) TestVote_BattleNotFound() {
	t := s.T()
	resp := s.vote(999999, 101)
	assert.Equal(t, 510002, resp.Code)
}

// TestFinish 按票数定胜负，已收盘的对战不能再投票也不能再收盘
func (s *HandlerTestSuite) TestFinish() {
	t := s.T()
	ctx := context.Background()
	id := s.createBattle(false)

	// 两票投 B，一票投 A
	require.NoError(t, s.svc.Vote(ctx, 3001, id, 102))
	require.NoError(t, s.svc.Vote(ctx, 3002, id, 102))
	require.NoError(t, s.svc.Vote(ctx, 3003, id, 101))

	req, err := http.NewRequest(http.MethodPost, "/battle/finish",
		iox.NewJSONReader(web.IdReq{ID: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Battle]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	got := recorder.MustScan()
	assert.Equal(t, 0, got.Code)
	assert.Equal(t, string(battle.StatusFinished), got.Data.Status)
	assert.Equal(t, int64(102), got.Data.Winner)
	assert.Equal(t, int64(1), got.Data.VotesA)
	assert.Equal(t, int64(2), got.Data.VotesB)

	// 收盘之后投票和二次收盘都要被拒
	resp := s.vote(id, 101)
	assert.Equal(t, 510004, resp.Code)

	req, err = http.NewRequest(http.MethodPost, "/battle/finish",
		iox.NewJSONReader(web.IdReq{ID: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[web.Battle]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 510004, recorder.MustScan().Code)
}

// TestFinish_Draw 平局胜方记 0
func (s *HandlerTestSuite) TestFinish_Draw() {
	t := s.T()
	ctx := context.Background()
	id := s.createBattle(false)

	require.NoError(t, s.svc.Vote(ctx, 3001, id, 101))
	require.NoError(t, s.svc.Vote(ctx, 3002, id, 102))

	b, err := s.svc.Finish(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, battle.StatusFinished, b.Status)
	assert.Equal(t, int64(0), b.Winner)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
