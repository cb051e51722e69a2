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
	"github.com/vyralabs/vyra/internal/boost"
	"github.com/vyralabs/vyra/internal/boost/internal/domain"
	"github.com/vyralabs/vyra/internal/boost/internal/repository"
	"github.com/vyralabs/vyra/internal/boost/internal/repository/dao"
	"github.com/vyralabs/vyra/internal/boost/internal/service"
	"github.com/vyralabs/vyra/internal/boost/internal/web"
	"github.com/vyralabs/vyra/internal/content"
	"github.com/vyralabs/vyra/internal/credit"
	creditdao "github.com/vyralabs/vyra/internal/credit/internal/repository/dao"
	"github.com/vyralabs/vyra/internal/engagement"
	"github.com/vyralabs/vyra/internal/test"
	testioc "github.com/vyralabs/vyra/internal/test/ioc"
)

const uid = int64(2051)

type HandlerTestSuite struct {
	suite.Suite
	server        *egin.Component
	db            *egorm.Component
	svc           boost.Service
	creditSvc     credit.Service
	contentSvc    content.Service
	engagementSvc engagement.Service
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
	engagementM, err := engagement.InitModule(s.db, q, creditM, contentM)
	require.NoError(s.T(), err)
	m, err := boost.InitModule(s.db, creditM, contentM, engagementM)
	require.NoError(s.T(), err)
	s.svc = m.Svc
	s.creditSvc = creditM.Svc
	s.contentSvc = contentM.Svc
	s.engagementSvc = engagementM.Svc

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
		"`boost_records`",
		"`interactives`", "`user_actions`",
		"`credits`", "`credit_logs`",
		"`videos`", "`hashtags`", "`video_hashtags`",
	} {
		err := s.db.Exec("TRUNCATE TABLE " + table).Error
		require.NoError(s.T(), err)
	}
}

// publish 以 owner 的身份发一条视频，发布奖励 10 分会落到 owner 头上
func (s *HandlerTestSuite) publish(owner int64) int64 {
	vid, err := s.contentSvc.Publish(context.Background(), content.Video{
		Uid:        owner,
		Title:      "测试视频",
		VideoURL:   "https://cdn.vyra.app/v/1.mp4",
		Visibility: content.VisibilityPublic,
	})
	require.NoError(s.T(), err)
	return vid
}

func (s *HandlerTestSuite) seed(amount int64) {
	err := s.creditSvc.AddPoints(context.Background(), credit.CreditLog{
		Key:          "seed-boost",
		Uid:          uid,
		ChangeAmount: amount,
		Kind:         credit.KindEarned,
		Biz:          "test",
		BizId:        1,
	})
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) buy(vid int64, typ string) test.Result[web.BuyResp] {
	req, err := http.NewRequest(http.MethodPost, "/boost/buy",
		iox.NewJSONReader(web.BuyReq{Vid: vid, Type: typ}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.BuyResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	return recorder.MustScan()
}

// TestBuy_NotEnough 余额不够买不了，余额和加成分都不能动
func (s *HandlerTestSuite) TestBuy_NotEnough() {
	t := s.T()
	ctx := context.Background()
	vid := s.publish(uid)
	s.seed(30)

	// 发布奖励 10 + 30 = 40，glow 要 50
	resp := s.buy(vid, "glow")
	assert.Equal(t, 509002, resp.Code)

	balance, err := s.creditSvc.GetBalance(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(40), balance)

	intr, err := s.engagementSvc.Get(ctx, "video", vid, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(0), intr.BoostScore)

	records, err := s.svc.ListByUid(ctx, uid, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

// TestBuy_Campus 整个链路：扣 100 分，视频加成 15 分，
// 响应里带上总加成分和买完之后的余额
func (s *HandlerTestSuite) TestBuy_Campus() {
	t := s.T()
	ctx := context.Background()
	vid := s.publish(uid)
	s.seed(90)

	resp := s.buy(vid, "campus")
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, int64(100), resp.Data.Record.Price)
	assert.Equal(t, int64(15), resp.Data.Record.Score)
	assert.Equal(t, int64(15), resp.Data.BoostScore)
	assert.Equal(t, int64(0), resp.Data.Balance)

	balance, err := s.creditSvc.GetBalance(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	intr, err := s.engagementSvc.Get(ctx, "video", vid, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(15), intr.BoostScore)

	records, err := s.svc.ListByUid(ctx, uid, 0, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, boost.TypeCampus, records[0].Type)
}

// TestBuy_Repeat 重复购买每次独立扣费，响应里的总加成分逐次累加
func (s *HandlerTestSuite) TestBuy_Repeat() {
	t := s.T()
	ctx := context.Background()
	vid := s.publish(uid)
	s.seed(100)

	resp := s.buy(vid, "glow")
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, int64(10), resp.Data.BoostScore)
	assert.Equal(t, int64(60), resp.Data.Balance)
	resp = s.buy(vid, "glow")
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, int64(20), resp.Data.BoostScore)
	assert.Equal(t, int64(10), resp.Data.Balance)

	// 110 - 50 - 50
	balance, err := s.creditSvc.GetBalance(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(10), balance)

	intr, err := s.engagementSvc.Get(ctx, "video", vid, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(20), intr.BoostScore)

	records, err := s.svc.ListByUid(ctx, uid, 0, 10)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

// saveFailRepo 写流水必然失败，用来验证扣掉的积分会被冲正
type saveFailRepo struct {
	repository.BoostRepository
}

func (r saveFailRepo) Save(ctx context.Context, rec domain.Record) (int64, error) {
	return 0, errors.New("模拟数据库故障")
}

// TestBuy_SaveFails 扣费之后流水落库失败，钱要原路退回，加成分不能动
func (s *HandlerTestSuite) TestBuy_SaveFails() {
	t := s.T()
	ctx := context.Background()
	vid := s.publish(uid)
	s.seed(90)

	broken := service.NewService(
		saveFailRepo{repository.NewBoostRepository(dao.NewBoostDAO(s.db))},
		s.creditSvc, s.contentSvc, s.engagementSvc)
	_, err := broken.Buy(ctx, uid, vid, domain.TypeCampus)
	require.Error(t, err)

	// 100 扣掉又冲正回来
	balance, err := s.creditSvc.GetBalance(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)

	intr, err := s.engagementSvc.Get(ctx, "video", vid, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(0), intr.BoostScore)

	// 流水上是一扣一退两笔，对账能看见
	var cnt int64
	err = s.db.Model(&creditdao.CreditLog{}).
		Where("uid = ? AND biz = ?", uid, "video").
		Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(3), cnt)
}

func (s *HandlerTestSuite) TestBuy_NotOwner() {
	t := s.T()
	vid := s.publish(3001)
	s.seed(100)

	resp := s.buy(vid, "glow")
	assert.Equal(t, 509005, resp.Code)
}

func (s *HandlerTestSuite) TestBuy_UnknownType() {
	t := s.T()
	vid := s.publish(uid)

	resp := s.buy(vid, "mega")
	assert.Equal(t, 509003, resp.Code)
}

func (s *HandlerTestSuite) TestTiers() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, "/boost/tiers",
		iox.NewJSONReader(struct{}{}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.TiersResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	resp := recorder.MustScan()
	require.Len(t, resp.Data.Tiers, 4)
	for _, tier := range resp.Data.Tiers {
		assert.Positive(t, tier.Price)
		assert.Positive(t, tier.Score)
	}
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
