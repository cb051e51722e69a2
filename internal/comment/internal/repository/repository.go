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
	"github.com/vyralabs/vyra/internal/comment/internal/domain"
	"github.com/vyralabs/vyra/internal/comment/internal/repository/dao"
)

var (
	ErrRecordNotFound = dao.ErrRecordNotFound
	ErrNotOwner       = dao.ErrNotOwner
)

type CommentRepository interface {
	Create(ctx context.Context, c domain.Comment) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Comment, error)
	List(ctx context.Context, vid int64, offset, limit int) ([]domain.Comment, error)
	Delete(ctx context.Context, uid, id int64) error
}

type commentRepository struct {
	dao dao.CommentDAO
}

func NewCommentRepository(d dao.CommentDAO) CommentRepository {
	return &commentRepository{dao: d}
}

func (r *commentRepository) Create(ctx context.Context, c domain.Comment) (int64, error) {
	return r.dao.Insert(ctx, dao.Comment{
		Vid:     c.Vid,
		Uid:     c.Uid,
		Content: c.Content,
	})
}

func (r *commentRepository) FindById(ctx context.Context, id int64) (domain.Comment, error) {
	c, err := r.dao.FindById(ctx, id)
	return r.toDomain(c), err
}

func (r *commentRepository) List(ctx context.Context, vid int64, offset, limit int) ([]domain.Comment, error) {
	cs, err := r.dao.List(ctx, vid, offset, limit)
	return slice.Map(cs, func(idx int, src dao.Comment) domain.Comment {
		return r.toDomain(src)
	}), err
}

func (r *commentRepository) Delete(ctx context.Context, uid, id int64) error {
	return r.dao.Delete(ctx, uid, id)
}

func (r *commentRepository) toDomain(c dao.Comment) domain.Comment {
	return domain.Comment{
		ID:      c.Id,
		Uid:     c.Uid,
		Vid:     c.Vid,
		Content: c.Content,
		Ctime:   c.Ctime,
	}
}
