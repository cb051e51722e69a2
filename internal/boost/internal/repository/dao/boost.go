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
	"time"

	"github.com/ego-component/egorm"
)

// BoostRecord 推广购买流水，纯审计用途
type BoostRecord struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	Uid   int64  `gorm:"index"`
	Vid   int64  `gorm:"index"`
	Type  string `gorm:"type:varchar(32)"`
	Price int64
	Score int64
	Ctime int64
}

type BoostDAO interface {
	Insert(ctx context.Context, r BoostRecord) (int64, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]BoostRecord, error)
}

type GORMBoostDAO struct {
	db *egorm.Component
}

func NewBoostDAO(db *egorm.Component) BoostDAO {
	return &GORMBoostDAO{db: db}
}

func (g *GORMBoostDAO) Insert(ctx context.Context, r BoostRecord) (int64, error) {
	r.Ctime = time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Create(&r).Error
	return r.Id, err
}

func (g *GORMBoostDAO) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]BoostRecord, error) {
	var rs []BoostRecord
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&rs).Error
	return rs, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&BoostRecord{})
}
