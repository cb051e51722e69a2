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
	"database/sql"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/vyralabs/vyra/internal/content/internal/domain"
	"github.com/vyralabs/vyra/internal/content/internal/repository/dao"
)

var (
	ErrVideoNotFound = errors.New("视频不存在")
	ErrNotOwner      = dao.ErrNotOwner
)

type VideoRepository interface {
	Create(ctx context.Context, v domain.Video) error
	FindById(ctx context.Context, id int64) (domain.Video, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Video, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Video, error)
	ListFeed(ctx context.Context, uids []int64, offset, limit int) ([]domain.Video, error)
	ListPublic(ctx context.Context, offset, limit int) ([]domain.Video, error)
	ListGeoTagged(ctx context.Context, limit int) ([]domain.Video, error)
	ListByHashtag(ctx context.Context, name string, offset, limit int) ([]domain.Video, error)
	ListPublicByHashtags(ctx context.Context, names []string, limit int) ([]domain.Video, error)
	HashtagNamesOf(ctx context.Context, vids []int64) ([]string, error)
	Search(ctx context.Context, keyword string, offset, limit int) ([]domain.Video, error)
	UpdateVisibility(ctx context.Context, uid, id int64, visibility domain.Visibility) error
	Delete(ctx context.Context, uid, id int64) error

	CreateProduct(ctx context.Context, p domain.Product) (int64, error)
	FindProductById(ctx context.Context, id int64) (domain.Product, error)
	ListProductsByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Product, error)
}

type videoRepository struct {
	dao dao.VideoDAO
}

func NewVideoRepository(d dao.VideoDAO) VideoRepository {
	return &videoRepository{dao: d}
}

func (r *videoRepository) Create(ctx context.Context, v domain.Video) error {
	return r.dao.Create(ctx, r.toEntity(v), v.Hashtags)
}

func (r *videoRepository) FindById(ctx context.Context, id int64) (domain.Video, error) {
	v, err := r.dao.FindById(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Video{}, ErrVideoNotFound
	}
	if err != nil {
		return domain.Video{}, err
	}
	res := r.toDomain(v)
	hts, err := r.dao.HashtagsOf(ctx, id)
	if err != nil {
		return domain.Video{}, err
	}
	res.Hashtags = slice.Map(hts, func(idx int, src dao.Hashtag) string {
		return src.Name
	})
	return res, nil
}

func (r *videoRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Video, error) {
	vs, err := r.dao.FindByIds(ctx, ids)
	return r.toDomains(vs), err
}

func (r *videoRepository) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Video, error) {
	vs, err := r.dao.ListByUid(ctx, uid, offset, limit)
	return r.toDomains(vs), err
}

func (r *videoRepository) ListFeed(ctx context.Context, uids []int64, offset, limit int) ([]domain.Video, error) {
	vs, err := r.dao.ListFeed(ctx, uids, offset, limit)
	return r.toDomains(vs), err
}

func (r *videoRepository) ListPublic(ctx context.Context, offset, limit int) ([]domain.Video, error) {
	vs, err := r.dao.ListPublic(ctx, offset, limit)
	return r.toDomains(vs), err
}

func (r *videoRepository) ListGeoTagged(ctx context.Context, limit int) ([]domain.Video, error) {
	vs, err := r.dao.ListGeoTagged(ctx, limit)
	return r.toDomains(vs), err
}

func (r *videoRepository) ListByHashtag(ctx context.Context, name string, offset, limit int) ([]domain.Video, error) {
	vs, err := r.dao.ListByHashtag(ctx, name, offset, limit)
	return r.toDomains(vs), err
}

func (r *videoRepository) ListPublicByHashtags(ctx context.Context, names []string, limit int) ([]domain.Video, error) {
	vs, err := r.dao.ListPublicByHashtags(ctx, names, limit)
	return r.toDomains(vs), err
}

func (r *videoRepository) HashtagNamesOf(ctx context.Context, vids []int64) ([]string, error) {
	return r.dao.HashtagNamesOf(ctx, vids)
}

func (r *videoRepository) Search(ctx context.Context, keyword string, offset, limit int) ([]domain.Video, error) {
	vs, err := r.dao.Search(ctx, keyword, offset, limit)
	return r.toDomains(vs), err
}

func (r *videoRepository) UpdateVisibility(ctx context.Context, uid, id int64, visibility domain.Visibility) error {
	return r.dao.UpdateVisibility(ctx, uid, id, string(visibility))
}

func (r *videoRepository) Delete(ctx context.Context, uid, id int64) error {
	return r.dao.Delete(ctx, uid, id)
}

func (r *videoRepository) CreateProduct(ctx context.Context, p domain.Product) (int64, error) {
	return r.dao.CreateProduct(ctx, dao.Product{
		Uid:         p.Uid,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		URL:         p.URL,
		CoverURL:    p.CoverURL,
	})
}

func (r *videoRepository) FindProductById(ctx context.Context, id int64) (domain.Product, error) {
	p, err := r.dao.FindProductById(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Product{}, ErrVideoNotFound
	}
	return r.productToDomain(p), err
}

func (r *videoRepository) ListProductsByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Product, error) {
	ps, err := r.dao.ListProductsByUid(ctx, uid, offset, limit)
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return r.productToDomain(src)
	}), err
}

func (r *videoRepository) toEntity(v domain.Video) dao.Video {
	e := dao.Video{
		Id:          v.ID,
		Uid:         v.Uid,
		Title:       v.Title,
		Description: v.Description,
		VideoURL:    v.VideoURL,
		CoverURL:    v.CoverURL,
		Visibility:  string(v.Visibility),
	}
	if v.ProductID > 0 {
		e.ProductId = sql.NullInt64{Int64: v.ProductID, Valid: true}
	}
	if v.Geotagged {
		e.Latitude = sql.NullFloat64{Float64: v.Latitude, Valid: true}
		e.Longitude = sql.NullFloat64{Float64: v.Longitude, Valid: true}
	}
	return e
}

func (r *videoRepository) toDomain(v dao.Video) domain.Video {
	return domain.Video{
		ID:          v.Id,
		Uid:         v.Uid,
		Title:       v.Title,
		Description: v.Description,
		VideoURL:    v.VideoURL,
		CoverURL:    v.CoverURL,
		Visibility:  domain.Visibility(v.Visibility),
		ProductID:   v.ProductId.Int64,
		Geotagged:   v.Latitude.Valid && v.Longitude.Valid,
		Latitude:    v.Latitude.Float64,
		Longitude:   v.Longitude.Float64,
		Ctime:       v.Ctime,
		Utime:       v.Utime,
	}
}

func (r *videoRepository) toDomains(vs []dao.Video) []domain.Video {
	return slice.Map(vs, func(idx int, src dao.Video) domain.Video {
		return r.toDomain(src)
	})
}

func (r *videoRepository) productToDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:          p.Id,
		Uid:         p.Uid,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		URL:         p.URL,
		CoverURL:    p.CoverURL,
		Ctime:       p.Ctime,
	}
}
