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

	"github.com/gotomicro/ego/core/elog"
	"github.com/vyralabs/vyra/internal/pkg/mqx"
	"github.com/vyralabs/vyra/internal/relation/internal/domain"
	"github.com/vyralabs/vyra/internal/relation/internal/event"
	"github.com/vyralabs/vyra/internal/relation/internal/repository"
)

var ErrSelfFollow = errors.New("不能关注自己")

//go:generate mockgen -source=./service.go -destination=../../mocks/relation.mock.go -package=relationmocks Service
type Service interface {
	// Follow 重复关注是幂等的
	Follow(ctx context.Context, follower, followee int64) error
	Unfollow(ctx context.Context, follower, followee int64) error
	FolloweeIDs(ctx context.Context, follower int64) ([]int64, error)
	FollowerIDs(ctx context.Context, followee int64, offset, limit int) ([]int64, error)
	IsFollowing(ctx context.Context, follower, followee int64) (bool, error)
	Stat(ctx context.Context, uid int64) (domain.FollowStat, error)
}

type followService struct {
	repo     repository.FollowRepository
	notifier mqx.Producer[event.NotificationEvent]
	logger   *elog.Component
}

func NewService(repo repository.FollowRepository,
	notifier mqx.Producer[event.NotificationEvent]) Service {
	return &followService{
		repo:     repo,
		notifier: notifier,
		logger:   elog.DefaultLogger,
	}
}

func (s *followService) Follow(ctx context.Context, follower, followee int64) error {
	if follower == followee {
		return ErrSelfFollow
	}
	err := s.repo.Follow(ctx, follower, followee)
	if errors.Is(err, repository.ErrDuplicatedFollow) {
		return nil
	}
	if err != nil {
		return err
	}
	s.notify(ctx, follower, followee)
	return nil
}

func (s *followService) notify(ctx context.Context, follower, followee int64) {
	err := s.notifier.Produce(ctx, event.NotificationEvent{
		Biz:          "user",
		BizID:        followee,
		Action:       "follow",
		ActorUid:     follower,
		RecipientUid: followee,
	})
	if err != nil {
		s.logger.Error("发送关注通知失败",
			elog.FieldErr(err),
			elog.Int64("follower", follower),
			elog.Int64("followee", followee))
	}
}

func (s *followService) Unfollow(ctx context.Context, follower, followee int64) error {
	return s.repo.Unfollow(ctx, follower, followee)
}

func (s *followService) FolloweeIDs(ctx context.Context, follower int64) ([]int64, error) {
	return s.repo.FolloweeIDs(ctx, follower)
}

func (s *followService) FollowerIDs(ctx context.Context, followee int64, offset, limit int) ([]int64, error) {
	return s.repo.FollowerIDs(ctx, followee, offset, limit)
}

func (s *followService) IsFollowing(ctx context.Context, follower, followee int64) (bool, error) {
	return s.repo.IsFollowing(ctx, follower, followee)
}

func (s *followService) Stat(ctx context.Context, uid int64) (domain.FollowStat, error) {
	return s.repo.Stat(ctx, uid)
}
