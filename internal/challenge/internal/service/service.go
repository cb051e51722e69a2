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

	"github.com/ecodeclub/ekit/slice"
	"github.com/vyralabs/vyra/internal/challenge/internal/domain"
	"github.com/vyralabs/vyra/internal/challenge/internal/repository"
	"github.com/vyralabs/vyra/internal/credit"
)

var (
	ErrChallengeNotFound = repository.ErrChallengeNotFound
	ErrNotCompleted      = errors.New("挑战还没完成")
	ErrAlreadyClaimed    = errors.New("奖励已经领过了")
	ErrInvalidChallenge  = errors.New("挑战信息非法")
)

// ChallengeProgress 挑战加上当前用户的进度
type ChallengeProgress struct {
	Challenge domain.Challenge
	Progress  int64
	Completed bool
	Claimed   bool
}

//go:generate mockgen -source=./service.go -destination=../../mocks/challenge.mock.go -package=challengemocks Service
type Service interface {
	Create(ctx context.Context, c domain.Challenge) (int64, error)
	// List 所有在线挑战和当前用户的进度
	List(ctx context.Context, uid int64) ([]ChallengeProgress, error)
	// Claim 领取已完成挑战的奖励。先记积分流水再翻领取标记，
	// 流水幂等键保证至多发一次，条件更新保证标记只翻一次
	Claim(ctx context.Context, uid, cid int64) error
	// HandleProgress 互动事件驱动的进度累计
	HandleProgress(ctx context.Context, uid int64, action string) error
}

type challengeService struct {
	repo      repository.ChallengeRepository
	creditSvc credit.Service
}

func NewService(repo repository.ChallengeRepository, creditSvc credit.Service) Service {
	return &challengeService{
		repo:      repo,
		creditSvc: creditSvc,
	}
}

func (s *challengeService) Create(ctx context.Context, c domain.Challenge) (int64, error) {
	if c.Name == "" || c.Action == "" || c.Target <= 0 || c.Reward <= 0 {
		return 0, ErrInvalidChallenge
	}
	c.Active = true
	return s.repo.Create(ctx, c)
}

func (s *challengeService) List(ctx context.Context, uid int64) ([]ChallengeProgress, error) {
	cs, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	cids := slice.Map(cs, func(idx int, src domain.Challenge) int64 {
		return src.ID
	})
	ucs, err := s.repo.ListUserChallenges(ctx, uid, cids)
	if err != nil {
		return nil, err
	}
	ucMap := make(map[int64]domain.UserChallenge, len(ucs))
	for _, uc := range ucs {
		ucMap[uc.ChallengeID] = uc
	}
	return slice.Map(cs, func(idx int, src domain.Challenge) ChallengeProgress {
		uc := ucMap[src.ID]
		return ChallengeProgress{
			Challenge: src,
			Progress:  uc.Progress,
			Completed: uc.Completed,
			Claimed:   uc.Claimed,
		}
	}), nil
}

func (s *challengeService) Claim(ctx context.Context, uid, cid int64) error {
	c, err := s.repo.FindById(ctx, cid)
	if err != nil {
		return err
	}
	uc, err := s.repo.FindUserChallenge(ctx, cid, uid)
	if err != nil {
		return err
	}
	if !uc.Completed {
		return ErrNotCompleted
	}
	if uc.Claimed {
		return ErrAlreadyClaimed
	}
	// 先发钱再翻标记。中间挂了重试也只会发一次，幂等键会拦住第二笔
	err = s.creditSvc.AddPoints(ctx, credit.CreditLog{
		Key:          fmt.Sprintf("challenge-claim-%d-%d", cid, uid),
		Uid:          uid,
		ChangeAmount: c.Reward,
		Kind:         credit.KindReward,
		Biz:          "challenge",
		BizId:        cid,
		Desc:         fmt.Sprintf("挑战奖励: %s", c.Name),
	})
	if err != nil && !errors.Is(err, credit.ErrDuplicatedCreditLog) {
		return err
	}
	err = s.repo.MarkClaimed(ctx, cid, uid)
	if errors.Is(err, repository.ErrNotClaimable) {
		return ErrAlreadyClaimed
	}
	return err
}

func (s *challengeService) HandleProgress(ctx context.Context, uid int64, action string) error {
	cs, err := s.repo.ListActiveByAction(ctx, action)
	if err != nil {
		return err
	}
	for _, c := range cs {
		if err = s.repo.IncrProgress(ctx, c.ID, uid, c.Target); err != nil {
			return err
		}
	}
	return nil
}
