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

	"github.com/ecodeclub/ekit/slice"
	"github.com/vyralabs/vyra/internal/boost/internal/domain"
	"github.com/vyralabs/vyra/internal/boost/internal/repository/dao"
)

type BoostRepository interface {
	Save(ctx context.Context, r domain.Record) (int64, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Record, error)
}

type boostRepository struct {
	dao dao.BoostDAO
}

func NewBoostRepository(d dao.BoostDAO) BoostRepository {
	return &boostRepository{dao: d}
}

func (r *boostRepository) Save(ctx context.Context, rec domain.Record) (int64, error) {
	return r.dao.Insert(ctx, dao.BoostRecord{
		Uid:   rec.Uid,
		Vid:   rec.Vid,
		Type:  string(rec.Type),
		Price: rec.Price,
		Score: rec.Score,
	})
}

func (r *boostRepository) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Record, error) {
	rs, err := r.dao.ListByUid(ctx, uid, offset, limit)
	return slice.Map(rs, func(idx int, src dao.BoostRecord) domain.Record {
		return domain.Record{
			ID:    src.Id,
			Uid:   src.Uid,
			Vid:   src.Vid,
			Type:  domain.Type(src.Type),
			Price: src.Price,
			Score: src.Score,
			Ctime: src.Ctime,
		}
	}), err
}
