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
	// ErrNotOwner 操作了不属于自己的视频
	ErrNotOwner = errors.New("操作非本人的视频")
)

type VideoDAO interface {
	Create(ctx context.Context, v Video, hashtags []string) error
	FindById(ctx context.Context, id int64) (Video, error)
	FindByIds(ctx context.Context, ids []int64) ([]Video, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Video, error)
	// ListFeed 关注的人的非私密视频，加上所有公开视频，按发布时间倒序
	ListFeed(ctx context.Context, uids []int64, offset, limit int) ([]Video, error)
	ListPublic(ctx context.Context, offset, limit int) ([]Video, error)
	// ListGeoTagged 所有带定位的公开视频
	ListGeoTagged(ctx context.Context, limit int) ([]Video, error)
	ListByHashtag(ctx context.Context, name string, offset, limit int) ([]Video, error)
	// ListPublicByHashtags 命中任意一个标签的公开视频，去重
	ListPublicByHashtags(ctx context.Context, names []string, limit int) ([]Video, error)
	Search(ctx context.Context, keyword string, offset, limit int) ([]Video, error)
	UpdateVisibility(ctx context.Context, uid, id int64, visibility string) error
	Delete(ctx context.Context, uid, id int64) error
	HashtagsOf(ctx context.Context, vid int64) ([]Hashtag, error)
	// HashtagNamesOf 一批视频身上所有标签名，去重
	HashtagNamesOf(ctx context.Context, vids []int64) ([]string, error)

	CreateProduct(ctx context.Context, p Product) (int64, error)
	FindProductById(ctx context.Context, id int64) (Product, error)
	ListProductsByUid(ctx context.Context, uid int64, offset, limit int) ([]Product, error)
}

type GORMVideoDAO struct {
	db *egorm.Component
}

func NewVideoDAO(db *egorm.Component) VideoDAO {
	return &GORMVideoDAO{db: db}
}

func (g *GORMVideoDAO) Create(ctx context.Context, v Video, hashtags []string) error {
	now := time.Now().UnixMilli()
	v.Ctime = now
	v.Utime = now
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&v).Error; err != nil {
			return err
		}
		for _, name := range hashtags {
			ht := Hashtag{
				Name:     name,
				VideoCnt: 1,
				Ctime:    now,
				Utime:    now,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "name"}},
				DoUpdates: clause.Assignments(map[string]any{
					"video_cnt": gorm.Expr("`video_cnt` + 1"),
					"utime":     now,
				}),
			}).Create(&ht).Error
			if err != nil {
				return err
			}
			if ht.Id == 0 {
				// 冲突更新时 gorm 不回填主键
				if err = tx.Where("name = ?", name).First(&ht).Error; err != nil {
					return err
				}
			}
			err = tx.Create(&VideoHashtag{
				Vid:   v.Id,
				Hid:   ht.Id,
				Ctime: now,
			}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (g *GORMVideoDAO) FindById(ctx context.Context, id int64) (Video, error) {
	var v Video
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&v).Error
	return v, err
}

func (g *GORMVideoDAO) FindByIds(ctx context.Context, ids []int64) ([]Video, error) {
	var vs []Video
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&vs).Error
	return vs, err
}

func (g *GORMVideoDAO) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Video, error) {
	var vs []Video
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&vs).Error
	return vs, err
}

func (g *GORMVideoDAO) ListFeed(ctx context.Context, uids []int64, offset, limit int) ([]Video, error) {
	var vs []Video
	query := g.db.WithContext(ctx).Where("visibility = ?", "public")
	if len(uids) > 0 {
		query = g.db.WithContext(ctx).
			Where("(uid IN ? AND visibility <> ?) OR visibility = ?",
				uids, "private", "public")
	}
	err := query.Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&vs).Error
	return vs, err
}

func (g *GORMVideoDAO) ListPublic(ctx context.Context, offset, limit int) ([]Video, error) {
	var vs []Video
	err := g.db.WithContext(ctx).
		Where("visibility = ?", "public").
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&vs).Error
	return vs, err
}

func (g *GORMVideoDAO) ListGeoTagged(ctx context.Context, limit int) ([]Video, error) {
	var vs []Video
	err := g.db.WithContext(ctx).
		Where("visibility = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", "public").
		Order("ctime DESC").
		Limit(limit).
		Find(&vs).Error
	return vs, err
}

func (g *GORMVideoDAO) ListByHashtag(ctx context.Context, name string, offset, limit int) ([]Video, error) {
	var vs []Video
	err := g.db.WithContext(ctx).
		Joins("JOIN video_hashtags ON video_hashtags.vid = videos.id").
		Joins("JOIN hashtags ON hashtags.id = video_hashtags.hid").
		Where("hashtags.name = ? AND videos.visibility = ?", name, "public").
		Order("videos.ctime DESC").
		Offset(offset).Limit(limit).
		Find(&vs).Error
	return vs, err
}

func (g *GORMVideoDAO) ListPublicByHashtags(ctx context.Context, names []string, limit int) ([]Video, error) {
	var vs []Video
	err := g.db.WithContext(ctx).
		Distinct("videos.*").
		Joins("JOIN video_hashtags ON video_hashtags.vid = videos.id").
		Joins("JOIN hashtags ON hashtags.id = video_hashtags.hid").
		Where("hashtags.name IN ? AND videos.visibility = ?", names, "public").
		Order("videos.ctime DESC").
		Limit(limit).
		Find(&vs).Error
	return vs, err
}

func (g *GORMVideoDAO) Search(ctx context.Context, keyword string, offset, limit int) ([]Video, error) {
	var vs []Video
	like := "%" + keyword + "%"
	err := g.db.WithContext(ctx).
		Where("visibility = ? AND (title LIKE ? OR description LIKE ?)", "public", like, like).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&vs).Error
	return vs, err
}

func (g *GORMVideoDAO) UpdateVisibility(ctx context.Context, uid, id int64, visibility string) error {
	res := g.db.WithContext(ctx).Model(&Video{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]any{
			"visibility": visibility,
			"utime":      time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return ErrNotOwner
	}
	return nil
}

func (g *GORMVideoDAO) Delete(ctx context.Context, uid, id int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND uid = ?", id, uid).Delete(&Video{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return ErrNotOwner
		}
		return tx.Where("vid = ?", id).Delete(&VideoHashtag{}).Error
	})
}

func (g *GORMVideoDAO) HashtagsOf(ctx context.Context, vid int64) ([]Hashtag, error) {
	var hts []Hashtag
	err := g.db.WithContext(ctx).
		Joins("JOIN video_hashtags ON video_hashtags.hid = hashtags.id").
		Where("video_hashtags.vid = ?", vid).
		Find(&hts).Error
	return hts, err
}

func (g *GORMVideoDAO) HashtagNamesOf(ctx context.Context, vids []int64) ([]string, error) {
	var names []string
	err := g.db.WithContext(ctx).Model(&Hashtag{}).
		Distinct("hashtags.name").
		Joins("JOIN video_hashtags ON video_hashtags.hid = hashtags.id").
		Where("video_hashtags.vid IN ?", vids).
		Pluck("hashtags.name", &names).Error
	return names, err
}

func (g *GORMVideoDAO) CreateProduct(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := g.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (g *GORMVideoDAO) FindProductById(ctx context.Context, id int64) (Product, error) {
	var p Product
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (g *GORMVideoDAO) ListProductsByUid(ctx context.Context, uid int64, offset, limit int) ([]Product, error) {
	var ps []Product
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&ps).Error
	return ps, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Video{}, &Hashtag{}, &VideoHashtag{}, &Product{})
}
