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
	"github.com/vyralabs/vyra/internal/battle/internal/domain"
	"github.com/vyralabs/vyra/internal/battle/internal/repository/dao"
)

var (
	ErrBattleNotFound = errors.New("对战不存在")
	ErrAlreadyVoted   = dao.ErrAlreadyVoted
	ErrBattleFinished = dao.ErrBattleFinished
)

type BattleRepository interface {
	Create(ctx context.Context, b domain.Battle) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Battle, error)
	ListOngoing(ctx context.Context, offset, limit int) ([]domain.Battle, error)
	Vote(ctx context.Context, battleId, uid, vid int64, sideA bool) error
	HasVoted(ctx context.Context, battleId, uid int64) (bool, error)
	Finish(ctx context.Context, id int64, winner int64) error
}

type battleRepository struct {
	dao dao.BattleDAO
}

func NewBattleRepository(d dao.BattleDAO) BattleRepository {
	return &battleRepository{dao: d}
}

func (r *battleRepository) Create(ctx context.Context, b domain.Battle) (int64, error) {
	return r.dao.Create(ctx, dao.Battle{
		VidA:    b.VidA,
		VidB:    b.VidB,
		Live:    b.Live,
		Status:  string(domain.StatusOngoing),
		EndTime: b.EndTime,
	})
}

func (r *battleRepository) FindById(ctx context.Context, id int64) (domain.Battle, error) {
	b, err := r.dao.FindById(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Battle{}, ErrBattleNotFound
	}
	return r.toDomain(b), err
}

func (r *battleRepository) ListOngoing(ctx context.Context, offset, limit int) ([]domain.Battle, error) {
	bs, err := r.dao.ListByStatus(ctx, string(domain.StatusOngoing), offset, limit)
	return slice.Map(bs, func(idx int, src dao.Battle) domain.Battle {
		return r.toDomain(src)
	}), err
}

func (r *battleRepository) Vote(ctx context.Context, battleId, uid, vid int64, sideA bool) error {
	return r.dao.Vote(ctx, battleId, uid, vid, sideA)
}

func (r *battleRepository) HasVoted(ctx context.Context, battleId, uid int64) (bool, error) {
	return r.dao.HasVoted(ctx, battleId, uid)
}

func (r *battleRepository) Finish(ctx context.Context, id int64, winner int64) error {
	return r.dao.Finish(ctx, id, winner)
}

func (r *battleRepository) toDomain(b dao.Battle) domain.Battle {
	return domain.Battle{
		ID:      b.Id,
		VidA:    b.VidA,
		VidB:    b.VidB,
		Live:    b.Live,
		Status:  domain.Status(b.Status),
		VotesA:  b.VotesA,
		VotesB:  b.VotesB,
		Winner:  b.Winner,
		EndTime: b.EndTime,
		Ctime:   b.Ctime,
	}
}
