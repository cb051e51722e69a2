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

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/vyralabs/vyra/internal/credit/internal/domain"
	"github.com/vyralabs/vyra/internal/credit/internal/repository/cache"
	"github.com/vyralabs/vyra/internal/credit/internal/repository/dao"
)

var (
	ErrPointsNotEnough     = dao.ErrPointsNotEnough
	ErrDuplicatedCreditLog = dao.ErrDuplicatedCreditLog
	ErrRecordNotFound      = dao.ErrRecordNotFound
)

type CreditRepository interface {
	AddPoints(ctx context.Context, l domain.CreditLog) error
	DeductPoints(ctx context.Context, l domain.CreditLog) error
	GetCreditByUID(ctx context.Context, uid int64) (domain.Credit, error)
	GetBalance(ctx context.Context, uid int64) (int64, error)
	IncrTotalLikes(ctx context.Context, uid int64, delta int64) error
	IncrTotalBuzz(ctx context.Context, uid int64) error
	IncrUploadCnt(ctx context.Context, uid int64) error
	WeeklyLeaderboard(ctx context.Context, n int) ([]domain.LeaderboardEntry, error)
}

type creditRepository struct {
	dao    dao.CreditDAO
	cache  cache.LeaderboardCache
	logger *elog.Component
}

func NewCreditRepository(d dao.CreditDAO, c cache.LeaderboardCache) CreditRepository {
	return &creditRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *creditRepository) AddPoints(ctx context.Context, l domain.CreditLog) error {
	return r.dao.AddPoints(ctx, r.toEntity(l))
}

func (r *creditRepository) DeductPoints(ctx context.Context, l domain.CreditLog) error {
	return r.dao.DeductPoints(ctx, r.toEntity(l))
}

func (r *creditRepository) toEntity(l domain.CreditLog) dao.CreditLog {
	return dao.CreditLog{
		Key:          l.Key,
		Uid:          l.Uid,
		BizId:        l.BizId,
		Biz:          l.Biz,
		Desc:         l.Desc,
		Kind:         string(l.Kind),
		ChangeAmount: l.ChangeAmount,
	}
}

func (r *creditRepository) GetCreditByUID(ctx context.Context, uid int64) (domain.Credit, error) {
	c, err := r.dao.FindCreditByUID(ctx, uid)
	if errors.Is(err, dao.ErrRecordNotFound) {
		// 账户在第一笔流水时才落库，没有记录等价于零余额
		return domain.Credit{Uid: uid}, nil
	}
	if err != nil {
		return domain.Credit{}, err
	}
	logs, err := r.dao.FindCreditLogsByUID(ctx, uid)
	return r.toDomain(c, logs), err
}

func (r *creditRepository) GetBalance(ctx context.Context, uid int64) (int64, error) {
	c, err := r.dao.FindCreditByUID(ctx, uid)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return 0, nil
	}
	return c.TotalPoints, err
}

func (r *creditRepository) IncrTotalLikes(ctx context.Context, uid int64, delta int64) error {
	return r.dao.IncrCounter(ctx, uid, "total_likes", delta)
}

func (r *creditRepository) IncrTotalBuzz(ctx context.Context, uid int64) error {
	return r.dao.IncrCounter(ctx, uid, "total_buzz", 1)
}

func (r *creditRepository) IncrUploadCnt(ctx context.Context, uid int64) error {
	return r.dao.IncrCounter(ctx, uid, "upload_cnt", 1)
}

func (r *creditRepository) WeeklyLeaderboard(ctx context.Context, n int) ([]domain.LeaderboardEntry, error) {
	entries, err := r.cache.Get(ctx)
	if err == nil {
		return entries, nil
	}
	since := time.Now().Add(-7 * 24 * time.Hour).UnixMilli()
	items, err := r.dao.SumEarnedSince(ctx, since, n)
	if err != nil {
		return nil, err
	}
	entries = slice.Map(items, func(idx int, src dao.LeaderboardItem) domain.LeaderboardEntry {
		return domain.LeaderboardEntry{Uid: src.Uid, Points: src.Points}
	})
	if err := r.cache.Set(ctx, entries); err != nil {
		r.logger.Error("写入排行榜缓存失败", elog.FieldErr(err))
	}
	return entries, nil
}

func (r *creditRepository) toDomain(c dao.Credit, logs []dao.CreditLog) domain.Credit {
	return domain.Credit{
		Uid:         c.Uid,
		TotalPoints: c.TotalPoints,
		TotalLikes:  c.TotalLikes,
		TotalBuzz:   c.TotalBuzz,
		UploadCnt:   c.UploadCnt,
		Logs: slice.Map(logs, func(idx int, src dao.CreditLog) domain.CreditLog {
			return domain.CreditLog{
				ID:           src.Id,
				Key:          src.Key,
				Uid:          src.Uid,
				ChangeAmount: src.ChangeAmount,
				Kind:         domain.Kind(src.Kind),
				Biz:          src.Biz,
				BizId:        src.BizId,
				Desc:         src.Desc,
				Balance:      src.Balance,
				Ctime:        src.Ctime,
			}
		}),
	}
}
