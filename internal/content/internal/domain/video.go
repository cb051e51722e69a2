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

package domain

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityPrivate   Visibility = "private"
	VisibilityFollowers Visibility = "followers"
)

func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate, VisibilityFollowers:
		return true
	default:
		return false
	}
}

type Video struct {
	ID          int64
	Uid         int64
	Title       string
	Description string
	VideoURL    string
	CoverURL    string
	Visibility  Visibility
	Hashtags    []string
	// ProductID 关联的商品，0 表示没有挂商品
	ProductID int64
	// Geotagged 为 true 时 Latitude/Longitude 才有意义
	Geotagged bool
	Latitude  float64
	Longitude float64
	Ctime     int64
	Utime     int64
}

type Hashtag struct {
	ID       int64
	Name     string
	VideoCnt int64
}

type Product struct {
	ID          int64
	Uid         int64
	Name        string
	Description string
	// Price 单位是分
	Price    int64
	URL      string
	CoverURL string
	Ctime    int64
}
