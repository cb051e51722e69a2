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
	"github.com/vyralabs/vyra/internal/battle/internal/domain"
	"github.com/vyralabs/vyra/internal/battle/internal/repository"
	"github.com/vyralabs/vyra/internal/credit"
)

var (
	ErrBattleNotFound  = repository.ErrBattleNotFound
	ErrAlreadyVoted    = repository.ErrAlreadyVoted
	ErrBattleFinished  = repository.ErrBattleFinished
	ErrPointsNotEnough = credit.ErrPointsNotEnough
	ErrInvalidVote     = errors.New("投票对象不在对战里")
	ErrInvalidBattle   = errors.New("对战信息非法")
)

const bizBattle = "battle"

//go:generate mockgen -source=./service.go -destination=../../mocks/battle.mock.go -package=battlemocks Service
type Service interface {
	Create(ctx context.Context, b domain.Battle) (int64, error)
	Get(ctx context.Context, id int64) (domain.Battle, error)
	ListOngoing(ctx context.Context, offset, limit int) ([]domain.Battle, error)
	// Vote 普通对战投票免费，投票人按奖励表得积分；
	// 直播对战先扣 5 积分再落票，重试靠幂等键和唯一索引兜底
	Vote(ctx context.Context, uid, battleId, vid int64) error
	// Finish 收盘并按票数定胜负，平局胜方记 0
	Finish(ctx context.Context, id int64) (domain.Battle, error)
}

type battleService struct {
	repo      repository.BattleRepository
	creditSvc credit.Service
	schedule  credit.RewardSchedule
	logger    *elog.Component
}

func NewService(repo repository.BattleRepository,
	creditSvc credit.Service,
	schedule credit.RewardSchedule) Service {
	return &battleService{
		repo:      repo,
		creditSvc: creditSvc,
		schedule:  schedule,
		logger:    elog.DefaultLogger,
	}
}

func (s *battleService) Create(ctx context.Context, b domain.Battle) (int64, error) {
	if b.VidA == 0 || b.VidB == 0 || b.VidA == b.VidB {
		return 0, ErrInvalidBattle
	}
	return s.repo.Create(ctx, b)
}

func (s *battleService) Get(ctx context.Context, id int64) (domain.Battle, error) {
	return s.repo.FindById(ctx, id)
}

func (s *battleService) ListOngoing(ctx context.Context, offset, limit int) ([]domain.Battle, error) {
	return s.repo.ListOngoing(ctx, offset, limit)
}

func (s *battleService) Vote(ctx context.Context, uid, battleId, vid int64) error {
	b, err := s.repo.FindById(ctx, battleId)
	if err != nil {
		return err
	}
	if b.Status != domain.StatusOngoing {
		return ErrBattleFinished
	}
	if vid != b.VidA && vid != b.VidB {
		return ErrInvalidVote
	}
	voted, err := s.repo.HasVoted(ctx, battleId, uid)
	if err != nil {
		return err
	}
	if voted {
		return ErrAlreadyVoted
	}
	if b.Live {
		return s.liveVote(ctx, b, uid, vid)
	}
	return s.freeVote(ctx, b, uid, vid)
}

func (s *battleService) freeVote(ctx context.Context, b domain.Battle, uid, vid int64) error {
	err := s.repo.Vote(ctx, b.ID, uid, vid, vid == b.VidA)
	if err != nil {
		return err
	}
	amount := s.schedule.Amount(credit.RewardBattleVote)
	if amount == 0 {
		return nil
	}
	err = s.creditSvc.AddPoints(ctx, credit.CreditLog{
		Key:          voteKey(b.ID, uid),
		Uid:          uid,
		ChangeAmount: amount,
		Kind:         credit.KindEarned,
		Biz:          bizBattle,
		BizId:        b.ID,
		Desc:         "对战投票奖励",
	})
	if err != nil && !errors.Is(err, credit.ErrDuplicatedCreditLog) {
		s.logger.Error("发放投票奖励失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid),
			elog.Int64("battle", b.ID))
	}
	return nil
}

// liveVote 先扣费再落票。两步不在一个事务里：
// 扣费撞了幂等键说明之前扣过费但票可能没落下去，继续落票补齐；
// 票已经在了就直接返回已投，那笔扣费就是这张票的钱，不退
func (s *battleService) liveVote(ctx context.Context, b domain.Battle, uid, vid int64) error {
	err := s.creditSvc.DeductPoints(ctx, credit.CreditLog{
		Key:          voteKey(b.ID, uid),
		Uid:          uid,
		ChangeAmount: -domain.LiveVoteCost,
		Kind:         credit.KindSpent,
		Biz:          bizBattle,
		BizId:        b.ID,
		Desc:         "直播对战投票",
	})
	if err != nil && !errors.Is(err, credit.ErrDuplicatedCreditLog) {
		return err
	}
	err = s.repo.Vote(ctx, b.ID, uid, vid, vid == b.VidA)
	if errors.Is(err, repository.ErrAlreadyVoted) {
		return ErrAlreadyVoted
	}
	return err
}

func (s *battleService) Finish(ctx context.Context, id int64) (domain.Battle, error) {
	b, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Battle{}, err
	}
	var winner int64
	switch {
	case b.VotesA > b.VotesB:
		winner = b.VidA
	case b.VotesB > b.VotesA:
		winner = b.VidB
	}
	if err = s.repo.Finish(ctx, id, winner); err != nil {
		return domain.Battle{}, err
	}
	return s.repo.FindById(ctx, id)
}

func voteKey(battleId, uid int64) string {
	return fmt.Sprintf("battle-vote-%d-%d", battleId, uid)
}
