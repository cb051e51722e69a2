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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrDuplicatedFollow 已经关注过了
	ErrDuplicatedFollow = errors.New("重复关注")
)

const uniqueIndexErrNo uint16 = 1062

// Follow 关注关系，唯一索引保证一条关系只有一行
type Follow struct {
	Id       int64 `gorm:"primaryKey,autoIncrement"`
	Follower int64 `gorm:"uniqueIndex:unq_follower_followee;index:idx_follower"`
	Followee int64 `gorm:"uniqueIndex:unq_follower_followee;index:idx_followee"`
	Ctime    int64
}

type FollowDAO interface {
	Insert(ctx context.Context, follower, followee int64) error
	Delete(ctx context.Context, follower, followee int64) error
	FolloweeIds(ctx context.Context, follower int64) ([]int64, error)
	FollowerIds(ctx context.Context, followee int64, offset, limit int) ([]int64, error)
	Exists(ctx context.Context, follower, followee int64) (bool, error)
	CountFollowers(ctx context.Context, followee int64) (int64, error)
	CountFollowing(ctx context.Context, follower int64) (int64, error)
}

type GORMFollowDAO struct {
	db *egorm.Component
}

func NewFollowDAO(db *egorm.Component) FollowDAO {
	return &GORMFollowDAO{db: db}
}

func (g *GORMFollowDAO) Insert(ctx context.Context, follower, followee int64) error {
	err := g.db.WithContext(ctx).Create(&Follow{
		Follower: follower,
		Followee: followee,
		Ctime:    time.Now().UnixMilli(),
	}).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
			return ErrDuplicatedFollow
		}
	}
	return err
}

func (g *GORMFollowDAO) Delete(ctx context.Context, follower, followee int64) error {
	return g.db.WithContext(ctx).
		Where("follower = ? AND followee = ?", follower, followee).
		Delete(&Follow{}).Error
}

func (g *GORMFollowDAO) FolloweeIds(ctx context.Context, follower int64) ([]int64, error) {
	var ids []int64
	err := g.db.WithContext(ctx).
		Model(&Follow{}).
		Where("follower = ?", follower).
		Pluck("followee", &ids).Error
	return ids, err
}

func (g *GORMFollowDAO) FollowerIds(ctx context.Context, followee int64, offset, limit int) ([]int64, error) {
	var ids []int64
	err := g.db.WithContext(ctx).
		Model(&Follow{}).
		Where("followee = ?", followee).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Pluck("follower", &ids).Error
	return ids, err
}

func (g *GORMFollowDAO) Exists(ctx context.Context, follower, followee int64) (bool, error) {
	err := g.db.WithContext(ctx).
		Where("follower = ? AND followee = ?", follower, followee).
		First(&Follow{}).Error
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (g *GORMFollowDAO) CountFollowers(ctx context.Context, followee int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).
		Model(&Follow{}).
		Where("followee = ?", followee).
		Count(&cnt).Error
	return cnt, err
}

func (g *GORMFollowDAO) CountFollowing(ctx context.Context, follower int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).
		Model(&Follow{}).
		Where("follower = ?", follower).
		Count(&cnt).Error
	return cnt, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Follow{})
}
