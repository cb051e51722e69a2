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
)

var (
	ErrRecordNotFound = egorm.ErrRecordNotFound
	// ErrNotFound 通知不存在，或者不属于当前用户
	ErrNotFound = errors.New("通知不存在")
)

type NotificationDAO interface {
	Insert(ctx context.Context, n Notification) (int64, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, id, uid int64) error
	MarkAllRead(ctx context.Context, uid int64) error
}

type GORMNotificationDAO struct {
	db *egorm.Component
}

func NewNotificationDAO(db *egorm.Component) NotificationDAO {
	return &GORMNotificationDAO{db: db}
}

func (g *GORMNotificationDAO) Insert(ctx context.Context, n Notification) (int64, error) {
	now := time.Now().UnixMilli()
	n.Ctime = now
	n.Utime = now
	err := g.db.WithContext(ctx).Create(&n).Error
	return n.Id, err
}

func (g *GORMNotificationDAO) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Notification, error) {
	var res []Notification
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMNotificationDAO) CountUnread(ctx context.Context, uid int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ? AND `read` = ?", uid, false).
		Count(&cnt).Error
	return cnt, err
}

func (g *GORMNotificationDAO) MarkRead(ctx context.Context, id, uid int64) error {
	res := g.db.WithContext(ctx).Model(&Notification{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]any{
			"read":  true,
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return ErrNotFound
	}
	return nil
}

func (g *GORMNotificationDAO) MarkAllRead(ctx context.Context, uid int64) error {
	return g.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ? AND `read` = ?", uid, false).
		Updates(map[string]any{
			"read":  true,
			"utime": time.Now().UnixMilli(),
		}).Error
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Notification{})
}

type Notification struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Uid      int64  `gorm:"index:idx_uid_ctime"`
	ActorUid int64
	Biz      string `gorm:"type:varchar(128)"`
	BizId    int64
	Action   string `gorm:"type:varchar(128)"`
	Read     bool
	Ctime    int64 `gorm:"index:idx_uid_ctime"`
	Utime    int64
}
