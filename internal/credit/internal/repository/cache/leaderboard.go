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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
	"github.com/vyralabs/vyra/internal/credit/internal/domain"
)

// 排行榜允许短暂滞后，缓存过期后重新聚合
const expiration = 5 * time.Minute

var ErrLeaderboardNotFound = errors.New("排行榜缓存未命中")

type LeaderboardCache interface {
	Set(ctx context.Context, entries []domain.LeaderboardEntry) error
	Get(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

type leaderboardCache struct {
	ec ecache.Cache
}

func NewLeaderboardCache(ec ecache.Cache) LeaderboardCache {
	return &leaderboardCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "credit:leaderboard:",
		},
	}
}

func (c *leaderboardCache) Set(ctx context.Context, entries []domain.LeaderboardEntry) error {
	bytes, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "序列化排行榜失败")
	}
	return c.ec.Set(ctx, c.key(), string(bytes), expiration)
}

func (c *leaderboardCache) Get(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	val := c.ec.Get(ctx, c.key())
	if val.KeyNotFound() {
		return nil, ErrLeaderboardNotFound
	}
	if val.Err != nil {
		return nil, val.Err
	}
	var res []domain.LeaderboardEntry
	err := json.Unmarshal([]byte(val.Val.(string)), &res)
	return res, errors.Wrap(err, "反序列化排行榜失败")
}

func (c *leaderboardCache) key() string {
	return "weekly"
}
