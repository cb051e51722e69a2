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

	"github.com/ecodeclub/ekit/slice"
	"github.com/vyralabs/vyra/internal/challenge/internal/domain"
	"github.com/vyralabs/vyra/internal/challenge/internal/repository/dao"
)

var (
	ErrChallengeNotFound = errors.New("挑战不存在")
	ErrNotClaimable      = dao.ErrNotClaimable
)

type ChallengeRepository interface {
	Create(ctx context.Context, c domain.Challenge) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Challenge, error)
	ListActive(ctx context.Context) ([]domain.Challenge, error)
	ListActiveByAction(ctx context.Context, action string) ([]domain.Challenge, error)
	FindUserChallenge(ctx context.Context, cid, uid int64) (domain.UserChallenge, error)
	ListUserChallenges(ctx context.Context, uid int64, cids []int64) ([]domain.UserChallenge, error)
	IncrProgress(ctx context.Context, cid, uid, target int64) error
	MarkClaimed(ctx context.Context, cid, uid int64) error
}

type challengeRepository struct {
	dao dao.ChallengeDAO
}

func NewChallengeRepository(d dao.ChallengeDAO) ChallengeRepository {
	return &challengeRepository{dao: d}
}

func (r *challengeRepository) Create(ctx context.Context, c domain.Challenge) (int64, error) {
	return r.dao.Create(ctx, dao.Challenge{
		Name:   c.Name,
		Desc:   c.Desc,
		Action: c.Action,
		Target: c.Target,
		Reward: c.Reward,
		Active: c.Active,
	})
}

func (r *challengeRepository) FindById(ctx context.Context, id int64) (domain.Challenge, error) {
	c, err := r.dao.FindById(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Challenge{}, ErrChallengeNotFound
	}
	return r.toDomain(c), err
}

func (r *challengeRepository) ListActive(ctx context.Context) ([]domain.Challenge, error) {
	cs, err := r.dao.ListActive(ctx)
	return r.toDomains(cs), err
}

func (r *challengeRepository) ListActiveByAction(ctx context.Context, action string) ([]domain.Challenge, error) {
	cs, err := r.dao.ListActiveByAction(ctx, action)
	return r.toDomains(cs), err
}

func (r *challengeRepository) FindUserChallenge(ctx context.Context, cid, uid int64) (domain.UserChallenge, error) {
	uc, err := r.dao.FindUserChallenge(ctx, cid, uid)
	if errors.Is(err, dao.ErrRecordNotFound) {
		// 还没有任何进度
		return domain.UserChallenge{ChallengeID: cid, Uid: uid}, nil
	}
	return r.ucToDomain(uc), err
}

func (r *challengeRepository) ListUserChallenges(ctx context.Context, uid int64, cids []int64) ([]domain.UserChallenge, error) {
	ucs, err := r.dao.ListUserChallenges(ctx, uid, cids)
	return slice.Map(ucs, func(idx int, src dao.UserChallenge) domain.UserChallenge {
		return r.ucToDomain(src)
	}), err
}

func (r *challengeRepository) IncrProgress(ctx context.Context, cid, uid, target int64) error {
	return r.dao.IncrProgress(ctx, cid, uid, target)
}

func (r *challengeRepository) MarkClaimed(ctx context.Context, cid, uid int64) error {
	return r.dao.MarkClaimed(ctx, cid, uid)
}

func (r *challengeRepository) toDomain(c dao.Challenge) domain.Challenge {
	return domain.Challenge{
		ID:     c.Id,
		Name:   c.Name,
		Desc:   c.Desc,
		Action: c.Action,
		Target: c.Target,
		Reward: c.Reward,
		Active: c.Active,
		Ctime:  c.Ctime,
	}
}

func (r *challengeRepository) toDomains(cs []dao.Challenge) []domain.Challenge {
	return slice.Map(cs, func(idx int, src dao.Challenge) domain.Challenge {
		return r.toDomain(src)
	})
}

func (r *challengeRepository) ucToDomain(uc dao.UserChallenge) domain.UserChallenge {
	return domain.UserChallenge{
		ChallengeID: uc.Cid,
		Uid:         uc.Uid,
		Progress:    uc.Progress,
		Completed:   uc.Completed,
		Claimed:     uc.Claimed,
	}
}
