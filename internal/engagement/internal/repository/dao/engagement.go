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
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrDuplicatedAction 同一个动作重复提交，唯一索引拦下来了
	ErrDuplicatedAction = errors.New("重复的互动")
)

const uniqueIndexErrNo uint16 = 1062

type EngagementDAO interface {
	// LikeToggle 返回这次操作之后是不是点赞状态
	LikeToggle(ctx context.Context, biz string, id int64, uid int64) (bool, error)
	// InsertAction 一次性动作，buzz 和 share 用，重复返回 ErrDuplicatedAction
	InsertAction(ctx context.Context, biz string, id int64, uid int64, action string) error
	IncrViewCnt(ctx context.Context, biz string, bizId int64) error
	IncrCommentCnt(ctx context.Context, biz string, bizId int64, delta int64) error
	AddBoostScore(ctx context.Context, biz string, bizId int64, score int64) error
	Get(ctx context.Context, biz string, id int64) (Interactive, error)
	GetByIds(ctx context.Context, biz string, ids []int64) ([]Interactive, error)
	HasAction(ctx context.Context, biz string, id int64, uid int64, action string) (bool, error)
	GetUserActions(ctx context.Context, uid int64, biz string, ids []int64, action string) ([]UserAction, error)
	// ListActedIds 用户做过某个动作的 biz_id，按时间倒序
	ListActedIds(ctx context.Context, uid int64, biz string, action string, limit int) ([]int64, error)
}

// counterColumns 动作对应汇总表的哪一列
var counterColumns = map[string]string{
	"like":  "like_cnt",
	"buzz":  "buzz_cnt",
	"share": "share_cnt",
}

type GORMEngagementDAO struct {
	db *egorm.Component
}

func NewEngagementDAO(db *egorm.Component) EngagementDAO {
	return &GORMEngagementDAO{db: db}
}

func (g *GORMEngagementDAO) LikeToggle(ctx context.Context, biz string, id int64, uid int64) (bool, error) {
	var liked bool
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("biz = ? AND biz_id = ? AND uid = ? AND action = ?", biz, id, uid, "like").
			First(&UserAction{}).Error
		switch {
		case err == nil:
			liked = false
			return g.deleteAction(tx, biz, id, uid, "like")
		case errors.Is(err, gorm.ErrRecordNotFound):
			liked = true
			return g.insertAction(tx, biz, id, uid, "like")
		default:
			return err
		}
	})
	return liked, err
}

func (g *GORMEngagementDAO) InsertAction(ctx context.Context, biz string, id int64, uid int64, action string) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return g.insertAction(tx, biz, id, uid, action)
	})
}

func (g *GORMEngagementDAO) insertAction(tx *gorm.DB, biz string, id int64, uid int64, action string) error {
	now := time.Now().UnixMilli()
	err := tx.Create(&UserAction{
		Uid:    uid,
		Biz:    biz,
		BizId:  id,
		Action: action,
		Utime:  now,
		Ctime:  now,
	}).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
			return ErrDuplicatedAction
		}
		return err
	}
	col := counterColumns[action]
	intr := Interactive{
		Biz:   biz,
		BizId: id,
		Ctime: now,
		Utime: now,
	}
	switch action {
	case "like":
		intr.LikeCnt = 1
	case "buzz":
		intr.BuzzCnt = 1
	case "share":
		intr.ShareCnt = 1
	}
	return tx.Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			col:     gorm.Expr("`" + col + "` + 1"),
			"utime": now,
		}),
	}).Create(&intr).Error
}

func (g *GORMEngagementDAO) deleteAction(tx *gorm.DB, biz string, id int64, uid int64, action string) error {
	now := time.Now().UnixMilli()
	res := tx.
		Where("uid = ? AND biz_id = ? AND biz = ? AND action = ?", uid, id, biz, action).
		Delete(&UserAction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return nil
	}
	col := counterColumns[action]
	return tx.Model(&Interactive{}).
		Where("biz = ? AND biz_id = ?", biz, id).
		Updates(map[string]any{
			col:     gorm.Expr("`" + col + "` - 1"),
			"utime": now,
		}).Error
}

func (g *GORMEngagementDAO) IncrViewCnt(ctx context.Context, biz string, bizId int64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"view_cnt": gorm.Expr("`view_cnt` + 1"),
			"utime":    now,
		}),
	}).Create(&Interactive{
		Biz:     biz,
		BizId:   bizId,
		ViewCnt: 1,
		Ctime:   now,
		Utime:   now,
	}).Error
}

func (g *GORMEngagementDAO) IncrCommentCnt(ctx context.Context, biz string, bizId int64, delta int64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"comment_cnt": gorm.Expr("`comment_cnt` + ?", delta),
			"utime":       now,
		}),
	}).Create(&Interactive{
		Biz:        biz,
		BizId:      bizId,
		CommentCnt: delta,
		Ctime:      now,
		Utime:      now,
	}).Error
}

func (g *GORMEngagementDAO) AddBoostScore(ctx context.Context, biz string, bizId int64, score int64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"boost_score": gorm.Expr("`boost_score` + ?", score),
			"utime":       now,
		}),
	}).Create(&Interactive{
		Biz:        biz,
		BizId:      bizId,
		BoostScore: score,
		Ctime:      now,
		Utime:      now,
	}).Error
}

func (g *GORMEngagementDAO) Get(ctx context.Context, biz string, id int64) (Interactive, error) {
	var res Interactive
	err := g.db.WithContext(ctx).
		Where("biz = ? AND biz_id = ?", biz, id).
		First(&res).Error
	return res, err
}

func (g *GORMEngagementDAO) GetByIds(ctx context.Context, biz string, ids []int64) ([]Interactive, error) {
	var res []Interactive
	err := g.db.WithContext(ctx).
		Where("biz = ? AND biz_id IN ?", biz, ids).
		Find(&res).Error
	return res, err
}

func (g *GORMEngagementDAO) HasAction(ctx context.Context, biz string, id int64, uid int64, action string) (bool, error) {
	err := g.db.WithContext(ctx).
		Where("biz = ? AND biz_id = ? AND uid = ? AND action = ?", biz, id, uid, action).
		First(&UserAction{}).Error
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (g *GORMEngagementDAO) GetUserActions(ctx context.Context, uid int64, biz string, ids []int64, action string) ([]UserAction, error) {
	var actions []UserAction
	err := g.db.WithContext(ctx).
		Where("uid = ? AND biz = ? AND biz_id IN ? AND action = ?", uid, biz, ids, action).
		Find(&actions).Error
	return actions, err
}

func (g *GORMEngagementDAO) ListActedIds(ctx context.Context, uid int64, biz string, action string, limit int) ([]int64, error) {
	var ids []int64
	err := g.db.WithContext(ctx).Model(&UserAction{}).
		Where("uid = ? AND biz = ? AND action = ?", uid, biz, action).
		Order("ctime DESC").
		Limit(limit).
		Pluck("biz_id", &ids).Error
	return ids, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Interactive{}, &UserAction{})
}
