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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrNotClaimable 没完成，或者已经领过了
	ErrNotClaimable = errors.New("奖励不可领取")
)

type Challenge struct {
	Id     int64  `gorm:"primaryKey,autoIncrement"`
	Name   string `gorm:"type:varchar(256)"`
	Desc   string `gorm:"type:varchar(1024)"`
	Action string `gorm:"type:varchar(32);index"`
	Target int64
	Reward int64
	Active bool `gorm:"index"`
	Ctime  int64
	Utime  int64
}

type UserChallenge struct {
	Id       int64 `gorm:"primaryKey,autoIncrement"`
	Cid      int64 `gorm:"uniqueIndex:unq_cid_uid"`
	Uid      int64 `gorm:"uniqueIndex:unq_cid_uid"`
	Progress int64
	// Completed 进度达标后置位，不回退
	Completed bool
	// Claimed 领奖标记，条件更新保证只翻一次
	Claimed bool
	Ctime   int64
	Utime   int64
}

type ChallengeDAO interface {
	Create(ctx context.Context, c Challenge) (int64, error)
	FindById(ctx context.Context, id int64) (Challenge, error)
	ListActive(ctx context.Context) ([]Challenge, error)
	ListActiveByAction(ctx context.Context, action string) ([]Challenge, error)
	FindUserChallenge(ctx context.Context, cid, uid int64) (UserChallenge, error)
	ListUserChallenges(ctx context.Context, uid int64, cids []int64) ([]UserChallenge, error)
	// IncrProgress 进度 +1，达到 target 时置 completed
	IncrProgress(ctx context.Context, cid, uid int64, target int64) error
	// MarkClaimed 只有 completed 且未领取才会翻标记，
	// 翻不动返回 ErrNotClaimable
	MarkClaimed(ctx context.Context, cid, uid int64) error
}

type GORMChallengeDAO struct {
	db *egorm.Component
}

func NewChallengeDAO(db *egorm.Component) ChallengeDAO {
	return &GORMChallengeDAO{db: db}
}

func (g *GORMChallengeDAO) Create(ctx context.Context, c Challenge) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime = now
	c.Utime = now
	err := g.db.WithContext(ctx).Create(&c).Error
	return c.Id, err
}

func (g *GORMChallengeDAO) FindById(ctx context.Context, id int64) (Challenge, error) {
	var c Challenge
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (g *GORMChallengeDAO) ListActive(ctx context.Context) ([]Challenge, error) {
	var cs []Challenge
	err := g.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id DESC").
		Find(&cs).Error
	return cs, err
}

func (g *GORMChallengeDAO) ListActiveByAction(ctx context.Context, action string) ([]Challenge, error) {
	var cs []Challenge
	err := g.db.WithContext(ctx).
		Where("active = ? AND action = ?", true, action).
		Find(&cs).Error
	return cs, err
}

func (g *GORMChallengeDAO) FindUserChallenge(ctx context.Context, cid, uid int64) (UserChallenge, error) {
	var uc UserChallenge
	err := g.db.WithContext(ctx).
		Where("cid = ? AND uid = ?", cid, uid).
		First(&uc).Error
	return uc, err
}

func (g *GORMChallengeDAO) ListUserChallenges(ctx context.Context, uid int64, cids []int64) ([]UserChallenge, error) {
	var ucs []UserChallenge
	err := g.db.WithContext(ctx).
		Where("uid = ? AND cid IN ?", uid, cids).
		Find(&ucs).Error
	return ucs, err
}

func (g *GORMChallengeDAO) IncrProgress(ctx context.Context, cid, uid int64, target int64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cid"}, {Name: "uid"}},
			DoUpdates: clause.Assignments(map[string]any{
				"progress": gorm.Expr("`progress` + 1"),
				"utime":    now,
			}),
		}).Create(&UserChallenge{
			Cid:      cid,
			Uid:      uid,
			Progress: 1,
			Ctime:    now,
			Utime:    now,
		}).Error
		if err != nil {
			return err
		}
		return tx.Model(&UserChallenge{}).
			Where("cid = ? AND uid = ? AND progress >= ? AND completed = ?", cid, uid, target, false).
			Updates(map[string]any{
				"completed": true,
				"utime":     now,
			}).Error
	})
}

func (g *GORMChallengeDAO) MarkClaimed(ctx context.Context, cid, uid int64) error {
	res := g.db.WithContext(ctx).Model(&UserChallenge{}).
		Where("cid = ? AND uid = ? AND completed = ? AND claimed = ?", cid, uid, true, false).
		Updates(map[string]any{
			"claimed": true,
			"utime":   time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return ErrNotClaimable
	}
	return nil
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Challenge{}, &UserChallenge{})
}
