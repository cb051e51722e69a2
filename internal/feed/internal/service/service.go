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
	"sort"

	"github.com/ecodeclub/ekit/slice"
	"github.com/vyralabs/vyra/internal/content"
	"github.com/vyralabs/vyra/internal/engagement"
	"github.com/vyralabs/vyra/internal/feed/internal/domain"
	"github.com/vyralabs/vyra/internal/relation"
)

var ErrInvalidCoordinates = errors.New("经纬度非法")

const (
	bizVideo = "video"
	// recommendTopN 推荐流只取打分最高的前 20 个
	recommendTopN = 20
	// candidateLimit 参与打分的候选集上限
	candidateLimit = 200
	// likeHistoryLimit 用多少条点赞历史推标签
	likeHistoryLimit = 50
	// DefaultRadiusKm 附近流的默认半径
	DefaultRadiusKm = 10.0
)

// FeedItem 视频加上它的聚合计数和打分结果
type FeedItem struct {
	Video      content.Video
	LikeCnt    int64
	CommentCnt int64
	ShareCnt   int64
	BuzzCnt    int64
	ViewCnt    int64
	BoostScore int64
	// Score 只在推荐流里有意义
	Score int64
	// Distance 只在附近流里有意义，单位公里
	Distance float64
}

//go:generate mockgen -source=./service.go -destination=../../mocks/feed.mock.go -package=feedmocks Service
type Service interface {
	// DefaultFeed 关注的人的视频加所有公开视频，按发布时间倒序
	DefaultFeed(ctx context.Context, uid int64, offset, limit int) ([]FeedItem, error)
	// RecommendedFeed 根据点赞历史的标签选候选，打分取前 20
	RecommendedFeed(ctx context.Context, uid int64) ([]FeedItem, error)
	// NearbyFeed 带定位的公开视频里半径以内的，保持候选集原始顺序
	NearbyFeed(ctx context.Context, lat, lng, radiusKm float64) ([]FeedItem, error)
}

type feedService struct {
	contentSvc    content.Service
	engagementSvc engagement.Service
	relationSvc   relation.Service
	weights       domain.Weights
}

func NewService(contentSvc content.Service,
	engagementSvc engagement.Service,
	relationSvc relation.Service,
	weights domain.Weights) Service {
	return &feedService{
		contentSvc:    contentSvc,
		engagementSvc: engagementSvc,
		relationSvc:   relationSvc,
		weights:       weights,
	}
}

func (s *feedService) DefaultFeed(ctx context.Context, uid int64, offset, limit int) ([]FeedItem, error) {
	uids, err := s.relationSvc.FolloweeIDs(ctx, uid)
	if err != nil {
		return nil, err
	}
	vs, err := s.contentSvc.ListFeed(ctx, uids, offset, limit)
	if err != nil {
		return nil, err
	}
	return s.attachCounters(ctx, vs)
}

func (s *feedService) RecommendedFeed(ctx context.Context, uid int64) ([]FeedItem, error) {
	vs, err := s.candidates(ctx, uid)
	if err != nil {
		return nil, err
	}
	items, err := s.attachCounters(ctx, vs)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Score = s.weights.Score(domain.Counters{
			Likes:      items[i].LikeCnt,
			Comments:   items[i].CommentCnt,
			Buzz:       items[i].BuzzCnt,
			BoostScore: items[i].BoostScore,
		})
	}
	// 分数倒序，平分按发布时间倒序，保证同一份快照排出来的结果稳定
	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].Video.Ctime > items[j].Video.Ctime
	})
	if len(items) > recommendTopN {
		items = items[:recommendTopN]
	}
	return items, nil
}

// candidates 有点赞历史就按标签圈候选，否则退化成全部公开视频
func (s *feedService) candidates(ctx context.Context, uid int64) ([]content.Video, error) {
	likedIds, err := s.engagementSvc.LikedIds(ctx, bizVideo, uid, likeHistoryLimit)
	if err != nil {
		return nil, err
	}
	if len(likedIds) > 0 {
		tags, err := s.contentSvc.HashtagNamesOf(ctx, likedIds)
		if err != nil {
			return nil, err
		}
		if len(tags) > 0 {
			return s.contentSvc.ListPublicByHashtags(ctx, tags, candidateLimit)
		}
	}
	return s.contentSvc.ListPublic(ctx, 0, candidateLimit)
}

func (s *feedService) NearbyFeed(ctx context.Context, lat, lng, radiusKm float64) ([]FeedItem, error) {
	if !domain.ValidCoordinate(lat, lng) {
		return nil, ErrInvalidCoordinates
	}
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	vs, err := s.contentSvc.ListGeoTagged(ctx, candidateLimit)
	if err != nil {
		return nil, err
	}
	inRange := make([]content.Video, 0, len(vs))
	dists := make([]float64, 0, len(vs))
	for _, v := range vs {
		d := domain.Distance(lat, lng, v.Latitude, v.Longitude)
		if d <= radiusKm {
			inRange = append(inRange, v)
			dists = append(dists, d)
		}
	}
	items, err := s.attachCounters(ctx, inRange)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Distance = dists[i]
	}
	return items, nil
}

func (s *feedService) attachCounters(ctx context.Context, vs []content.Video) ([]FeedItem, error) {
	if len(vs) == 0 {
		return []FeedItem{}, nil
	}
	ids := slice.Map(vs, func(idx int, src content.Video) int64 {
		return src.ID
	})
	intrs, err := s.engagementSvc.GetByIds(ctx, bizVideo, ids)
	if err != nil {
		return nil, err
	}
	intrMap := make(map[int64]engagement.Interactive, len(intrs))
	for _, intr := range intrs {
		intrMap[intr.BizID] = intr
	}
	return slice.Map(vs, func(idx int, src content.Video) FeedItem {
		intr := intrMap[src.ID]
		return FeedItem{
			Video:      src,
			LikeCnt:    intr.LikeCnt,
			CommentCnt: intr.CommentCnt,
			ShareCnt:   intr.ShareCnt,
			BuzzCnt:    intr.BuzzCnt,
			ViewCnt:    intr.ViewCnt,
			BoostScore: intr.BoostScore,
		}
	}), nil
}
