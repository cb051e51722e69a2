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
	"github.com/vyralabs/vyra/internal/engagement/internal/domain"
	"github.com/vyralabs/vyra/internal/engagement/internal/repository/dao"
)

var (
	ErrRecordNotFound   = dao.ErrRecordNotFound
	ErrDuplicatedAction = dao.ErrDuplicatedAction
)

type EngagementRepository interface {
	LikeToggle(ctx context.Context, biz string, id int64, uid int64) (bool, error)
	AddAction(ctx context.Context, biz string, id int64, uid int64, action domain.Action) error
	IncrViewCnt(ctx context.Context, biz string, bizId int64) error
	IncrCommentCnt(ctx context.Context, biz string, bizId int64, delta int64) error
	AddBoostScore(ctx context.Context, biz string, bizId int64, score int64) error
	Get(ctx context.Context, biz string, id int64) (domain.Interactive, error)
	GetByIds(ctx context.Context, biz string, ids []int64) ([]domain.Interactive, error)
	HasAction(ctx context.Context, biz string, id int64, uid int64, action domain.Action) (bool, error)
	ListActedIds(ctx context.Context, uid int64, biz string, action domain.Action, limit int) ([]int64, error)
}

type engagementRepository struct {
	dao dao.EngagementDAO
}

func NewEngagementRepository(d dao.EngagementDAO) EngagementRepository {
	return &engagementRepository{dao: d}
}

func (r *engagementRepository) LikeToggle(ctx context.Context, biz string, id int64, uid int64) (bool, error) {
	return r.dao.LikeToggle(ctx, biz, id, uid)
}

func (r *engagementRepository) AddAction(ctx context.Context, biz string, id int64, uid int64, action domain.Action) error {
	return r.dao.InsertAction(ctx, biz, id, uid, string(action))
}

func (r *engagementRepository) IncrViewCnt(ctx context.Context, biz string, bizId int64) error {
	return r.dao.IncrViewCnt(ctx, biz, bizId)
}

func (r *engagementRepository) IncrCommentCnt(ctx context.Context, biz string, bizId int64, delta int64) error {
	return r.dao.IncrCommentCnt(ctx, biz, bizId, delta)
}

func (r *engagementRepository) AddBoostScore(ctx context.Context, biz string, bizId int64, score int64) error {
	return r.dao.AddBoostScore(ctx, biz, bizId, score)
}

func (r *engagementRepository) Get(ctx context.Context, biz string, id int64) (domain.Interactive, error) {
	intr, err := r.dao.Get(ctx, biz, id)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			// 没人互动过，等价于全 0
			return domain.Interactive{Biz: biz, BizID: id}, nil
		}
		return domain.Interactive{}, err
	}
	return r.toDomain(intr), nil
}

func (r *engagementRepository) GetByIds(ctx context.Context, biz string, ids []int64) ([]domain.Interactive, error) {
	intrs, err := r.dao.GetByIds(ctx, biz, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(intrs, func(idx int, src dao.Interactive) domain.Interactive {
		return r.toDomain(src)
	}), nil
}

func (r *engagementRepository) HasAction(ctx context.Context, biz string, id int64, uid int64, action domain.Action) (bool, error) {
	return r.dao.HasAction(ctx, biz, id, uid, string(action))
}

func (r *engagementRepository) ListActedIds(ctx context.Context, uid int64, biz string, action domain.Action, limit int) ([]int64, error) {
	return r.dao.ListActedIds(ctx, uid, biz, string(action), limit)
}

func (r *engagementRepository) toDomain(ie dao.Interactive) domain.Interactive {
	return domain.Interactive{
		Biz:        ie.Biz,
		BizID:      ie.BizId,
		LikeCnt:    ie.LikeCnt,
		CommentCnt: ie.CommentCnt,
		ShareCnt:   ie.ShareCnt,
		BuzzCnt:    ie.BuzzCnt,
		ViewCnt:    ie.ViewCnt,
		BoostScore: ie.BoostScore,
	}
}
