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
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrPointsNotEnough     = errors.New("积分不足")
	ErrDuplicatedCreditLog = errors.New("积分流水已存在")
	ErrRecordNotFound      = gorm.ErrRecordNotFound
	// ErrConcurrentUpdate 账户主记录被并发修改，重试次数耗尽
	ErrConcurrentUpdate = errors.New("账户记录已被并发修改")
)

// 版本号冲突时的重试上限
const maxRetries = 3

type CreditDAO interface {
	// AddPoints 入账：追加一条流水并同步增加余额，二者在同一事务内生效
	AddPoints(ctx context.Context, l CreditLog) error
	// DeductPoints 出账：事务内重读余额，余额不足直接失败，不产生任何可见变更
	DeductPoints(ctx context.Context, l CreditLog) error
	FindCreditByUID(ctx context.Context, uid int64) (Credit, error)
	FindCreditLogsByUID(ctx context.Context, uid int64) ([]CreditLog, error)
	IncrCounter(ctx context.Context, uid int64, column string, delta int64) error
	// SumEarnedSince 按用户聚合 since 之后的正向流水，降序取前 n 个
	SumEarnedSince(ctx context.Context, since int64, n int) ([]LeaderboardItem, error)
}

type creditDAO struct {
	db *egorm.Component
}

func NewCreditGORMDAO(db *egorm.Component) CreditDAO {
	return &creditDAO{db: db}
}

func (g *creditDAO) AddPoints(ctx context.Context, l CreditLog) error {
	if l.ChangeAmount <= 0 {
		return fmt.Errorf("入账金额非法: %d", l.ChangeAmount)
	}
	return g.change(ctx, l)
}

func (g *creditDAO) DeductPoints(ctx context.Context, l CreditLog) error {
	if l.ChangeAmount >= 0 {
		return fmt.Errorf("出账金额非法: %d", l.ChangeAmount)
	}
	return g.change(ctx, l)
}

// change 以乐观锁方式变更余额并落流水。
// 版本号冲突说明同一账户有并发写入，重读后重试
func (g *creditDAO) change(ctx context.Context, l CreditLog) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = g.changeOnce(ctx, l)
		if !errors.Is(err, ErrConcurrentUpdate) {
			return err
		}
	}
	return err
}

func (g *creditDAO) changeOnce(ctx context.Context, l CreditLog) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		var c Credit
		res := tx.Where(Credit{Uid: l.Uid}).
			Attrs(Credit{Ctime: now, Utime: now}).
			FirstOrCreate(&c)
		if res.Error != nil {
			return res.Error
		}
		balance := c.TotalPoints + l.ChangeAmount
		if balance < 0 {
			return fmt.Errorf("%w: uid=%d, balance=%d, change=%d",
				ErrPointsNotEnough, l.Uid, c.TotalPoints, l.ChangeAmount)
		}
		upd := tx.Model(&Credit{}).
			Where("uid = ? AND version = ?", c.Uid, c.Version).
			Updates(map[string]any{
				"total_points": balance,
				"version":      c.Version + 1,
				"utime":        now,
			})
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			return ErrConcurrentUpdate
		}
		l.Cid = c.Id
		l.Balance = balance
		l.Ctime = now
		if err := tx.Create(&l).Error; err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) {
				const uniqueIndexErrNo uint16 = 1062
				if me.Number == uniqueIndexErrNo {
					return ErrDuplicatedCreditLog
				}
			}
			return err
		}
		return nil
	})
}

func (g *creditDAO) FindCreditByUID(ctx context.Context, uid int64) (Credit, error) {
	var res Credit
	err := g.db.WithContext(ctx).First(&res, "uid = ?", uid).Error
	return res, err
}

func (g *creditDAO) FindCreditLogsByUID(ctx context.Context, uid int64) ([]CreditLog, error) {
	var logs []CreditLog
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Find(&logs).Error
	return logs, err
}

func (g *creditDAO) IncrCounter(ctx context.Context, uid int64, column string, delta int64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c Credit
		res := tx.Where(Credit{Uid: uid}).
			Attrs(Credit{Ctime: now, Utime: now}).
			FirstOrCreate(&c)
		if res.Error != nil {
			return res.Error
		}
		return tx.Model(&Credit{}).
			Where("uid = ?", uid).
			Updates(map[string]any{
				column:  gorm.Expr(fmt.Sprintf("`%s` + ?", column), delta),
				"utime": now,
			}).Error
	})
}

func (g *creditDAO) SumEarnedSince(ctx context.Context, since int64, n int) ([]LeaderboardItem, error) {
	var items []LeaderboardItem
	err := g.db.WithContext(ctx).
		Model(&CreditLog{}).
		Select("uid, SUM(change_amount) AS points").
		Where("ctime >= ? AND change_amount > 0", since).
		Group("uid").
		Order("points DESC").
		Limit(n).
		Scan(&items).Error
	return items, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Credit{}, &CreditLog{})
}

// Credit 积分账户主表，每个用户一条记录
type Credit struct {
	Id          int64 `gorm:"primaryKey;autoIncrement;comment:积分主表自增ID"`
	Uid         int64 `gorm:"not null;uniqueIndex:unq_user_id;comment:用户ID"`
	TotalPoints int64 `gorm:"not null;default:0;comment:可用积分总数"`
	TotalLikes  int64 `gorm:"not null;default:0;comment:获赞总数"`
	TotalBuzz   int64 `gorm:"not null;default:0;comment:被buzz总数"`
	UploadCnt   int64 `gorm:"not null;default:0;comment:发布作品总数"`
	Version     int64 `gorm:"not null;default:1;comment:版本号"`
	Ctime       int64
	Utime       int64
}

// CreditLog 积分流水表。只插入，不更新
type CreditLog struct {
	Id  int64 `gorm:"primaryKey;autoIncrement;comment:积分流水表自增ID"`
	Cid int64 `gorm:"not null;index:idx_credit_id;comment:积分主记录ID"`
	Uid int64 `gorm:"not null;index:idx_user_id;comment:用户ID"`
	// Key 幂等键。同一逻辑动作只会产生一条流水
	Key          string `gorm:"type:varchar(256);not null;uniqueIndex:unq_key;comment:幂等键"`
	BizId        int64  `gorm:"not null;index:idx_biz;comment:业务ID"`
	Biz          string `gorm:"type:varchar(128);not null;index:idx_biz;comment:业务类型"`
	Desc         string `gorm:"type:varchar(255);not null;comment:流水描述"`
	Kind         string `gorm:"type:varchar(20);not null;comment:流水类型 earned/spent/reward/penalty"`
	ChangeAmount int64  `gorm:"not null;comment:积分变动数量,正数为增加,负数为减少"`
	Balance      int64  `gorm:"not null;comment:变动后可用的积分总数"`
	Ctime        int64  `gorm:"index"`
}

type LeaderboardItem struct {
	Uid    int64
	Points int64
}
