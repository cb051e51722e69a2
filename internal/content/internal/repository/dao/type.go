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

import "database/sql"

// Video 视频主表。Id 是雪花 id，由上层生成，不走自增
type Video struct {
	Id          int64  `gorm:"primaryKey"`
	Uid         int64  `gorm:"index"`
	Title       string `gorm:"type:varchar(256)"`
	Description string `gorm:"type:varchar(4096)"`
	VideoURL    string `gorm:"type:varchar(1024)"`
	CoverURL    string `gorm:"type:varchar(1024)"`
	Visibility  string `gorm:"type:varchar(32);index"`
	// ProductId 挂载的商品
	ProductId sql.NullInt64
	// 发布时带的定位，没开定位就是 NULL
	Latitude  sql.NullFloat64
	Longitude sql.NullFloat64
	Ctime     int64 `gorm:"index"`
	Utime     int64
}

type Hashtag struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Name     string `gorm:"type:varchar(128);uniqueIndex:unq_name"`
	VideoCnt int64
	Ctime    int64
	Utime    int64
}

// VideoHashtag 视频和话题的关联表
type VideoHashtag struct {
	Id    int64 `gorm:"primaryKey,autoIncrement"`
	Vid   int64 `gorm:"uniqueIndex:unq_vid_hid"`
	Hid   int64 `gorm:"uniqueIndex:unq_vid_hid"`
	Ctime int64
}

type Product struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Uid         int64  `gorm:"index"`
	Name        string `gorm:"type:varchar(256)"`
	Description string `gorm:"type:varchar(4096)"`
	// Price 单位是分
	Price    int64
	URL      string `gorm:"type:varchar(1024)"`
	CoverURL string `gorm:"type:varchar(1024)"`
	Ctime    int64
	Utime    int64
}
