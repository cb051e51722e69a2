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
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrNotOwner 删除了不属于自己的评论
	ErrNotOwner = errors.New("删除非本人的评论")
)

type Comment struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	Vid     int64  `gorm:"index"`
	Uid     int64  `gorm:"index"`
	Content string `gorm:"type:varchar(1024)"`
	Ctime   int64
}

type CommentDAO interface {
	Insert(ctx context.Context, c Comment) (int64, error)
	FindById(ctx context.Context, id int64) (Comment, error)
	List(ctx context.Context, vid int64, offset, limit int) ([]Comment, error)
	// Delete 只能删自己的评论
	Delete(ctx context.Context, uid, id int64) error
}

type GORMCommentDAO struct {
	db *egorm.Component
}

func NewCommentDAO(db *egorm.Component) CommentDAO {
	return &GORMCommentDAO{db: db}
}

func (g *GORMCommentDAO) Insert(ctx context.Context, c Comment) (int64, error) {
	c.Ctime = time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Create(&c).Error
	return c.Id, err
}

func (g *GORMCommentDAO) FindById(ctx context.Context, id int64) (Comment, error) {
	var c Comment
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (g *GORMCommentDAO) List(ctx context.Context, vid int64, offset, limit int) ([]Comment, error) {
	var cs []Comment
	err := g.db.WithContext(ctx).
		Where("vid = ?", vid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&cs).Error
	return cs, err
}

func (g *GORMCommentDAO) Delete(ctx context.Context, uid, id int64) error {
	res := g.db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(&Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return ErrNotOwner
	}
	return nil
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Comment{})
}
