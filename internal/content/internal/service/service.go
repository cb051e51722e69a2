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

	"github.com/bwmarrin/snowflake"
	"github.com/gotomicro/ego/core/elog"
	"github.com/vyralabs/vyra/internal/content/internal/domain"
	"github.com/vyralabs/vyra/internal/content/internal/repository"
	"github.com/vyralabs/vyra/internal/credit"
)

var (
	ErrVideoNotFound = repository.ErrVideoNotFound
	ErrNotOwner      = repository.ErrNotOwner
	ErrInvalidVideo  = errors.New("视频信息非法")
)

//go:generate mockgen -source=./service.go -destination=../../mocks/content.mock.go -package=contentmocks Service
type Service interface {
	// Publish 发布视频，返回雪花 id。
	// 发积分和计数是尽力而为的，失败只记日志，不影响发布本身
	Publish(ctx context.Context, v domain.Video) (int64, error)
	// Detail 私密视频只有本人可见
	Detail(ctx context.Context, id int64, uid int64) (domain.Video, error)
	GetByIds(ctx context.Context, ids []int64) ([]domain.Video, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Video, error)
	ListFeed(ctx context.Context, uids []int64, offset, limit int) ([]domain.Video, error)
	ListPublic(ctx context.Context, offset, limit int) ([]domain.Video, error)
	ListGeoTagged(ctx context.Context, limit int) ([]domain.Video, error)
	ListByHashtag(ctx context.Context, name string, offset, limit int) ([]domain.Video, error)
	// ListPublicByHashtags 命中任意一个标签的公开视频
	ListPublicByHashtags(ctx context.Context, names []string, limit int) ([]domain.Video, error)
	// HashtagNamesOf 一批视频身上的所有标签名
	HashtagNamesOf(ctx context.Context, vids []int64) ([]string, error)
	Search(ctx context.Context, keyword string, offset, limit int) ([]domain.Video, error)
	UpdateVisibility(ctx context.Context, uid, id int64, visibility domain.Visibility) error
	Delete(ctx context.Context, uid, id int64) error

	CreateProduct(ctx context.Context, p domain.Product) (int64, error)
	ProductDetail(ctx context.Context, id int64) (domain.Product, error)
	ListProductsByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Product, error)
}

type service struct {
	repo      repository.VideoRepository
	creditSvc credit.Service
	schedule  credit.RewardSchedule
	node      *snowflake.Node
	logger    *elog.Component
}

func NewService(repo repository.VideoRepository,
	creditSvc credit.Service,
	schedule credit.RewardSchedule,
	node *snowflake.Node) Service {
	return &service{
		repo:      repo,
		creditSvc: creditSvc,
		schedule:  schedule,
		node:      node,
		logger:    elog.DefaultLogger,
	}
}

func (s *service) Publish(ctx context.Context, v domain.Video) (int64, error) {
	if v.Title == "" || v.VideoURL == "" || !v.Visibility.Valid() {
		return 0, ErrInvalidVideo
	}
	v.ID = s.node.Generate().Int64()
	err := s.repo.Create(ctx, v)
	if err != nil {
		return 0, err
	}
	s.awardPublish(ctx, v)
	return v.ID, nil
}

func (s *service) awardPublish(ctx context.Context, v domain.Video) {
	amount := s.schedule.Amount(credit.RewardUpload)
	if amount != 0 {
		err := s.creditSvc.AddPoints(ctx, credit.CreditLog{
			Key:          fmt.Sprintf("upload-video-%d", v.ID),
			Uid:          v.Uid,
			ChangeAmount: amount,
			Kind:         credit.KindEarned,
			Biz:          "video",
			BizId:        v.ID,
			Desc:         "发布视频奖励",
		})
		if err != nil && !errors.Is(err, credit.ErrDuplicatedCreditLog) {
			s.logger.Error("发放视频发布奖励失败",
				elog.FieldErr(err),
				elog.Int64("uid", v.Uid),
				elog.Int64("vid", v.ID))
		}
	}
	if err := s.creditSvc.IncrUploadCnt(ctx, v.Uid); err != nil {
		s.logger.Error("更新发布计数失败",
			elog.FieldErr(err),
			elog.Int64("uid", v.Uid))
	}
}

func (s *service) Detail(ctx context.Context, id int64, uid int64) (domain.Video, error) {
	v, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Video{}, err
	}
	if v.Visibility == domain.VisibilityPrivate && v.Uid != uid {
		return domain.Video{}, ErrVideoNotFound
	}
	return v, nil
}

func (s *service) GetByIds(ctx context.Context, ids []int64) ([]domain.Video, error) {
	return s.repo.FindByIds(ctx, ids)
}

func (s *service) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Video, error) {
	return s.repo.ListByUid(ctx, uid, offset, limit)
}

func (s *service) ListFeed(ctx context.Context, uids []int64, offset, limit int) ([]domain.Video, error) {
	return s.repo.ListFeed(ctx, uids, offset, limit)
}

func (s *service) ListPublic(ctx context.Context, offset, limit int) ([]domain.Video, error) {
	return s.repo.ListPublic(ctx, offset, limit)
}

func (s *service) ListGeoTagged(ctx context.Context, limit int) ([]domain.Video, error) {
	return s.repo.ListGeoTagged(ctx, limit)
}

func (s *service) ListByHashtag(ctx context.Context, name string, offset, limit int) ([]domain.Video, error) {
	return s.repo.ListByHashtag(ctx, name, offset, limit)
}

func (s *service) ListPublicByHashtags(ctx context.Context, names []string, limit int) ([]domain.Video, error) {
	return s.repo.ListPublicByHashtags(ctx, names, limit)
}

func (s *service) HashtagNamesOf(ctx context.Context, vids []int64) ([]string, error) {
	return s.repo.HashtagNamesOf(ctx, vids)
}

func (s *service) Search(ctx context.Context, keyword string, offset, limit int) ([]domain.Video, error) {
	return s.repo.Search(ctx, keyword, offset, limit)
}

func (s *service) UpdateVisibility(ctx context.Context, uid, id int64, visibility domain.Visibility) error {
	if !visibility.Valid() {
		return ErrInvalidVideo
	}
	return s.repo.UpdateVisibility(ctx, uid, id, visibility)
}

func (s *service) Delete(ctx context.Context, uid, id int64) error {
	return s.repo.Delete(ctx, uid, id)
}

func (s *service) CreateProduct(ctx context.Context, p domain.Product) (int64, error) {
	if p.Name == "" {
		return 0, ErrInvalidVideo
	}
	return s.repo.CreateProduct(ctx, p)
}

func (s *service) ProductDetail(ctx context.Context, id int64) (domain.Product, error) {
	return s.repo.FindProductById(ctx, id)
}

func (s *service) ListProductsByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Product, error) {
	return s.repo.ListProductsByUid(ctx, uid, offset, limit)
}
