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

	"github.com/vyralabs/vyra/internal/relation/internal/domain"
	"github.com/vyralabs/vyra/internal/relation/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var ErrDuplicatedFollow = dao.ErrDuplicatedFollow

type FollowRepository interface {
	Follow(ctx context.Context, follower, followee int64) error
	Unfollow(ctx context.Context, follower, followee int64) error
	FolloweeIDs(ctx context.Context, follower int64) ([]int64, error)
	FollowerIDs(ctx context.Context, followee int64, offset, limit int) ([]int64, error)
	IsFollowing(ctx context.Context, follower, followee int64) (bool, error)
	Stat(ctx context.Context, uid int64) (domain.FollowStat, error)
}

type followRepository struct {
	dao dao.FollowDAO
}

func NewFollowRepository(d dao.FollowDAO) FollowRepository {
	return &followRepository{dao: d}
}

func (r *followRepository) Follow(ctx context.Context, follower, followee int64) error {
	return r.dao.Insert(ctx, follower, followee)
}

func (r *followRepository) Unfollow(ctx context.Context, follower, followee int64) error {
	return r.dao.Delete(ctx, follower, followee)
}

func (r *followRepository) FolloweeIDs(ctx context.Context, follower int64) ([]int64, error) {
	return r.dao.FolloweeIds(ctx, follower)
}

func (r *followRepository) FollowerIDs(ctx context.Context, followee int64, offset, limit int) ([]int64, error) {
	return r.dao.FollowerIds(ctx, followee, offset, limit)
}

func (r *followRepository) IsFollowing(ctx context.Context, follower, followee int64) (bool, error) {
	return r.dao.Exists(ctx, follower, followee)
}

func (r *followRepository) Stat(ctx context.Context, uid int64) (domain.FollowStat, error) {
	res := domain.FollowStat{Uid: uid}
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		res.FollowerCnt, err = r.dao.CountFollowers(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		res.FollowingCnt, err = r.dao.CountFollowing(ctx, uid)
		return err
	})
	return res, eg.Wait()
}
