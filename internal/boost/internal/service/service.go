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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"github.com/vyralabs/vyra/internal/boost/internal/domain"
	"github.com/vyralabs/vyra/internal/boost/internal/repository"
	"github.com/vyralabs/vyra/internal/content"
	"github.com/vyralabs/vyra/internal/credit"
	"github.com/vyralabs/vyra/internal/engagement"
)

var (
	ErrPointsNotEnough = credit.ErrPointsNotEnough
	ErrUnknownType     = errors.New("未知的推广档位")
	ErrVideoNotFound   = errors.New("视频不存在")
	ErrNotOwner        = errors.New("只能推广自己的视频")
	ErrNoProduct       = errors.New("视频没有挂商品")
)

const bizVideo = "video"

//go:generate mockgen -source=./service.go -destination=../../mocks/boost.mock.go -package=boostmocks Service
type Service interface {
	// Buy 购买一次推广：扣积分，给视频加 boost 分，
	// 返回买完之后视频的总加成分和买家余额。
	// 同一个视频可以反复买，每次都是独立扣费
	Buy(ctx context.Context, uid int64, vid int64, typ domain.Type) (domain.Purchase, error)
	Tiers() []domain.Tier
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Record, error)
}

type boostService struct {
	repo          repository.BoostRepository
	creditSvc     credit.Service
	contentSvc    content.Service
	engagementSvc engagement.Service
	logger        *elog.Component
}

func NewService(repo repository.BoostRepository,
	creditSvc credit.Service,
	contentSvc content.Service,
	engagementSvc engagement.Service) Service {
	return &boostService{
		repo:          repo,
		creditSvc:     creditSvc,
		contentSvc:    contentSvc,
		engagementSvc: engagementSvc,
		logger:        elog.DefaultLogger,
	}
}

func (s *boostService) Buy(ctx context.Context, uid int64, vid int64, typ domain.Type) (domain.Purchase, error) {
	tier, ok := domain.TierOf(typ)
	if !ok {
		return domain.Purchase{}, fmt.Errorf("%w: %s", ErrUnknownType, typ)
	}
	v, err := s.video(ctx, vid)
	if err != nil {
		return domain.Purchase{}, err
	}
	if v.Uid != uid {
		return domain.Purchase{}, ErrNotOwner
	}
	if typ == domain.TypeProduct && v.ProductID == 0 {
		return domain.Purchase{}, ErrNoProduct
	}
	// 每次购买都是一笔新交易，幂等键用随机串
	key := fmt.Sprintf("boost-%s", shortuuid.New())
	err = s.creditSvc.DeductPoints(ctx, credit.CreditLog{
		Key:          key,
		Uid:          uid,
		ChangeAmount: -tier.Price,
		Kind:         credit.KindSpent,
		Biz:          bizVideo,
		BizId:        vid,
		Desc:         fmt.Sprintf("购买推广: %s", typ),
	})
	if err != nil {
		return domain.Purchase{}, err
	}
	rec := domain.Record{
		Uid:   uid,
		Vid:   vid,
		Type:  typ,
		Price: tier.Price,
		Score: tier.Score,
	}
	rec.ID, err = s.repo.Save(ctx, rec)
	if err != nil {
		// 钱扣了但交易没成，冲正退回去
		s.logger.Error("写入推广流水失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid),
			elog.Int64("vid", vid))
		s.refund(ctx, key, uid, vid, tier)
		return domain.Purchase{}, err
	}
	if err = s.engagementSvc.AddBoostScore(ctx, bizVideo, vid, tier.Score); err != nil {
		// 同样冲正。已落库的流水留着对账
		s.logger.Error("追加推广加成分失败",
			elog.FieldErr(err),
			elog.Int64("vid", vid),
			elog.Int64("score", tier.Score))
		s.refund(ctx, key, uid, vid, tier)
		return domain.Purchase{}, err
	}
	res := domain.Purchase{Record: rec}
	// 购买已经成交，下面的回读失败只影响响应字段，不影响结果
	intr, err := s.engagementSvc.Get(ctx, bizVideo, vid, uid)
	if err != nil {
		s.logger.Error("查询推广加成分失败",
			elog.FieldErr(err),
			elog.Int64("vid", vid))
	} else {
		res.BoostScore = intr.BoostScore
	}
	res.Balance, err = s.creditSvc.GetBalance(ctx, uid)
	if err != nil {
		s.logger.Error("查询买家余额失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid))
	}
	return res, nil
}

// refund 扣费之后后续步骤失败的冲正。
// 幂等键挂在原交易上，重复冲正会被拦住
func (s *boostService) refund(ctx context.Context, key string, uid, vid int64, tier domain.Tier) {
	err := s.creditSvc.AddPoints(ctx, credit.CreditLog{
		Key:          key + "-refund",
		Uid:          uid,
		ChangeAmount: tier.Price,
		Kind:         credit.KindReward,
		Biz:          bizVideo,
		BizId:        vid,
		Desc:         fmt.Sprintf("购买推广冲正: %s", tier.Type),
	})
	if err != nil && !errors.Is(err, credit.ErrDuplicatedCreditLog) {
		s.logger.Error("购买推广冲正失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid),
			elog.Int64("vid", vid))
	}
}

func (s *boostService) video(ctx context.Context, vid int64) (content.Video, error) {
	vs, err := s.contentSvc.GetByIds(ctx, []int64{vid})
	if err != nil {
		return content.Video{}, err
	}
	if len(vs) == 0 {
		return content.Video{}, ErrVideoNotFound
	}
	return vs[0], nil
}

func (s *boostService) Tiers() []domain.Tier {
	return domain.Tiers()
}

func (s *boostService) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Record, error) {
	return s.repo.ListByUid(ctx, uid, offset, limit)
}
