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
	// ErrAlreadyVoted 一个用户对一场对战只能投一票
	ErrAlreadyVoted = errors.New("重复投票")
	// ErrBattleFinished 对战已经结束
	ErrBattleFinished = errors.New("对战已结束")
)

const uniqueIndexErrNo uint16 = 1062

type Battle struct {
	Id      int64 `gorm:"primaryKey,autoIncrement"`
	VidA    int64
	VidB    int64
	Live    bool
	Status  string `gorm:"type:varchar(16);index"`
	VotesA  int64
	VotesB  int64
	Winner  int64
	EndTime int64
	Ctime   int64
	Utime   int64
}

// BattleVote 投票明细，唯一索引兜底并发重复投票
type BattleVote struct {
	Id       int64 `gorm:"primaryKey,autoIncrement"`
	BattleId int64 `gorm:"uniqueIndex:unq_battle_uid"`
	Uid      int64 `gorm:"uniqueIndex:unq_battle_uid"`
	Vid      int64
	Ctime    int64
}

type BattleDAO interface {
	Create(ctx context.Context, b Battle) (int64, error)
	FindById(ctx context.Context, id int64) (Battle, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]Battle, error)
	// Vote 插票和计票在一个事务里，重复投票返回 ErrAlreadyVoted
	Vote(ctx context.Context, battleId, uid, vid int64, sideA bool) error
	HasVoted(ctx context.Context, battleId, uid int64) (bool, error)
	// Finish 只有 ongoing 状态才能收盘，已收盘返回 ErrBattleFinished
	Finish(ctx context.Context, id int64, winner int64) error
}

type GORMBattleDAO struct {
	db *egorm.Component
}

func NewBattleDAO(db *egorm.Component) BattleDAO {
	return &GORMBattleDAO{db: db}
}

func (g *GORMBattleDAO) Create(ctx context.Context, b Battle) (int64, error) {
	now := time.Now().UnixMilli()
	b.Ctime = now
	b.Utime = now
	err := g.db.WithContext(ctx).Create(&b).Error
	return b.Id, err
}

func (g *GORMBattleDAO) FindById(ctx context.Context, id int64) (Battle, error) {
	var b Battle
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&b).Error
	return b, err
}

func (g *GORMBattleDAO) ListByStatus(ctx context.Context, status string, offset, limit int) ([]Battle, error) {
	var bs []Battle
	err := g.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&bs).Error
	return bs, err
}

func (g *GORMBattleDAO) Vote(ctx context.Context, battleId, uid, vid int64, sideA bool) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&BattleVote{
			BattleId: battleId,
			Uid:      uid,
			Vid:      vid,
			Ctime:    now,
		}).Error
		if err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
				return ErrAlreadyVoted
			}
			return err
		}
		col := "votes_b"
		if sideA {
			col = "votes_a"
		}
		return tx.Model(&Battle{}).
			Where("id = ?", battleId).
			Updates(map[string]any{
				col:     gorm.Expr("`"+col+"` + 1"),
				"utime": now,
			}).Error
	})
}

func (g *GORMBattleDAO) HasVoted(ctx context.Context, battleId, uid int64) (bool, error) {
	err := g.db.WithContext(ctx).
		Where("battle_id = ? AND uid = ?", battleId, uid).
		First(&BattleVote{}).Error
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (g *GORMBattleDAO) Finish(ctx context.Context, id int64, winner int64) error {
	res := g.db.WithContext(ctx).Model(&Battle{}).
		Where("id = ? AND status = ?", id, "ongoing").
		Updates(map[string]any{
			"status": "finished",
			"winner": winner,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return ErrBattleFinished
	}
	return nil
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Battle{}, &BattleVote{})
}
