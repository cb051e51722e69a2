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
	"testing"

	"github.com/ecodeclub/ekit/slice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vyralabs/vyra/internal/content"
	contentmocks "github.com/vyralabs/vyra/internal/content/mocks"
	"github.com/vyralabs/vyra/internal/engagement"
	engagementmocks "github.com/vyralabs/vyra/internal/engagement/mocks"
	"github.com/vyralabs/vyra/internal/feed/internal/domain"
	relationmocks "github.com/vyralabs/vyra/internal/relation/mocks"
	gomock "go.uber.org/mock/gomock"
)

const testUid = int64(2051)

func newTestService(ctrl *gomock.Controller) (Service,
	*contentmocks.MockService,
	*engagementmocks.MockService,
	*relationmocks.MockService) {
	contentSvc := contentmocks.NewMockService(ctrl)
	engagementSvc := engagementmocks.NewMockService(ctrl)
	relationSvc := relationmocks.NewMockService(ctrl)
	svc := NewService(contentSvc, engagementSvc, relationSvc, domain.DefaultWeights())
	return svc, contentSvc, engagementSvc, relationSvc
}

func TestService_RecommendedFeed(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, contentSvc, engagementSvc, _ := newTestService(ctrl)

	// 没有点赞历史，候选集退化成全部公开视频
	engagementSvc.EXPECT().LikedIds(gomock.Any(), "video", testUid, likeHistoryLimit).
		Return([]int64{}, nil)
	vs := []content.Video{
		{ID: 1, Ctime: 100},
		{ID: 2, Ctime: 200},
		{ID: 3, Ctime: 300},
	}
	contentSvc.EXPECT().ListPublic(gomock.Any(), 0, candidateLimit).Return(vs, nil)
	engagementSvc.EXPECT().GetByIds(gomock.Any(), "video", []int64{1, 2, 3}).
		Return([]engagement.Interactive{
			// 2*5 = 10
			{BizID: 1, LikeCnt: 5},
			// 3*2 + 5*1 = 11
			{BizID: 2, CommentCnt: 2, BoostScore: 1},
			// 4*2 + 3*1 = 11，和 2 号平分，发布更晚排前面
			{BizID: 3, BuzzCnt: 2, CommentCnt: 1},
		}, nil)

	items, err := svc.RecommendedFeed(context.Background(), testUid)
	require.NoError(t, err)
	gotIds := slice.Map(items, func(idx int, src FeedItem) int64 {
		return src.Video.ID
	})
	assert.Equal(t, []int64{3, 2, 1}, gotIds)
	assert.Equal(t, int64(11), items[0].Score)
	assert.Equal(t, int64(11), items[1].Score)
	assert.Equal(t, int64(10), items[2].Score)
}

func TestService_RecommendedFeed_LikeHistory(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, contentSvc, engagementSvc, _ := newTestService(ctrl)

	engagementSvc.EXPECT().LikedIds(gomock.Any(), "video", testUid, likeHistoryLimit).
		Return([]int64{7, 8}, nil)
	contentSvc.EXPECT().HashtagNamesOf(gomock.Any(), []int64{7, 8}).
		Return([]string{"dance", "campus"}, nil)
	contentSvc.EXPECT().ListPublicByHashtags(gomock.Any(), []string{"dance", "campus"}, candidateLimit).
		Return([]content.Video{{ID: 9, Ctime: 900}}, nil)
	engagementSvc.EXPECT().GetByIds(gomock.Any(), "video", []int64{9}).
		Return([]engagement.Interactive{{BizID: 9, LikeCnt: 1}}, nil)

	items, err := svc.RecommendedFeed(context.Background(), testUid)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(9), items[0].Video.ID)
	assert.Equal(t, int64(2), items[0].Score)
}

func TestService_RecommendedFeed_TopN(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, contentSvc, engagementSvc, _ := newTestService(ctrl)

	n := recommendTopN + 5
	vs := make([]content.Video, 0, n)
	intrs := make([]engagement.Interactive, 0, n)
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		id := int64(i + 1)
		vs = append(vs, content.Video{ID: id, Ctime: id})
		intrs = append(intrs, engagement.Interactive{BizID: id, LikeCnt: id})
		ids = append(ids, id)
	}
	engagementSvc.EXPECT().LikedIds(gomock.Any(), "video", testUid, likeHistoryLimit).
		Return(nil, nil)
	contentSvc.EXPECT().ListPublic(gomock.Any(), 0, candidateLimit).Return(vs, nil)
	engagementSvc.EXPECT().GetByIds(gomock.Any(), "video", ids).Return(intrs, nil)

	items, err := svc.RecommendedFeed(context.Background(), testUid)
	require.NoError(t, err)
	assert.Len(t, items, recommendTopN)
	// 点赞最多的排第一
	assert.Equal(t, int64(n), items[0].Video.ID)
}

func TestService_DefaultFeed(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, contentSvc, engagementSvc, relationSvc := newTestService(ctrl)

	relationSvc.EXPECT().FolloweeIDs(gomock.Any(), testUid).Return([]int64{11, 12}, nil)
	contentSvc.EXPECT().ListFeed(gomock.Any(), []int64{11, 12}, 0, 20).
		Return([]content.Video{{ID: 5, Ctime: 500}, {ID: 4, Ctime: 400}}, nil)
	engagementSvc.EXPECT().GetByIds(gomock.Any(), "video", []int64{5, 4}).
		Return([]engagement.Interactive{{BizID: 5, LikeCnt: 3}}, nil)

	items, err := svc.DefaultFeed(context.Background(), testUid, 0, 20)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// 默认流不打分，保持时间倒序的原始顺序
	assert.Equal(t, int64(5), items[0].Video.ID)
	assert.Equal(t, int64(3), items[0].LikeCnt)
	assert.Equal(t, int64(0), items[0].Score)
	assert.Equal(t, int64(4), items[1].Video.ID)
}

func TestService_NearbyFeed(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, contentSvc, engagementSvc, _ := newTestService(ctrl)

	// 上海人民广场为圆心
	lat, lng := 31.2304, 121.4737
	contentSvc.EXPECT().ListGeoTagged(gomock.Any(), candidateLimit).
		Return([]content.Video{
			// 圆心本地
			{ID: 1, Geotagged: true, Latitude: 31.2304, Longitude: 121.4737},
			// 北京，远超出半径
			{ID: 2, Geotagged: true, Latitude: 39.9042, Longitude: 116.4074},
			// 几公里外
			{ID: 3, Geotagged: true, Latitude: 31.25, Longitude: 121.50},
		}, nil)
	engagementSvc.EXPECT().GetByIds(gomock.Any(), "video", []int64{1, 3}).
		Return([]engagement.Interactive{}, nil)

	items, err := svc.NearbyFeed(context.Background(), lat, lng, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// 地理过滤不重排，保持候选集原始顺序
	assert.Equal(t, int64(1), items[0].Video.ID)
	assert.Equal(t, int64(3), items[1].Video.ID)
	assert.Less(t, items[1].Distance, 10.0)
}

func TestService_NearbyFeed_InvalidCoordinates(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _, _, _ := newTestService(ctrl)

	_, err := svc.NearbyFeed(context.Background(), 91, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}
