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

package web

import "github.com/vyralabs/vyra/internal/content/internal/domain"

type PublishReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	VideoURL    string   `json:"videoUrl"`
	CoverURL    string   `json:"coverUrl"`
	Visibility  string   `json:"visibility"`
	Hashtags    []string `json:"hashtags"`
	ProductID   int64    `json:"productId"`
	// Geotagged 为 true 才读经纬度
	Geotagged bool    `json:"geotagged"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type PublishResp struct {
	ID int64 `json:"id"`
}

type IdReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type HashtagReq struct {
	Name   string `json:"name"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type SearchReq struct {
	Keyword string `json:"keyword"`
	Offset  int    `json:"offset"`
	Limit   int    `json:"limit"`
}

type VisibilityReq struct {
	ID         int64  `json:"id"`
	Visibility string `json:"visibility"`
}

type Video struct {
	ID          int64    `json:"id"`
	Uid         int64    `json:"uid"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	VideoURL    string   `json:"videoUrl"`
	CoverURL    string   `json:"coverUrl"`
	Visibility  string   `json:"visibility"`
	Hashtags    []string `json:"hashtags,omitempty"`
	ProductID   int64    `json:"productId,omitempty"`
	Geotagged   bool     `json:"geotagged"`
	Latitude    float64  `json:"latitude,omitempty"`
	Longitude   float64  `json:"longitude,omitempty"`
	Ctime       int64    `json:"ctime"`
}

type VideoListResp struct {
	Videos []Video `json:"videos"`
}

type CreateProductReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	URL         string `json:"url"`
	CoverURL    string `json:"coverUrl"`
}

type Product struct {
	ID          int64  `json:"id"`
	Uid         int64  `json:"uid"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	URL         string `json:"url"`
	CoverURL    string `json:"coverUrl"`
}

type ProductListResp struct {
	Products []Product `json:"products"`
}

func newVideo(v domain.Video) Video {
	return Video{
		ID:          v.ID,
		Uid:         v.Uid,
		Title:       v.Title,
		Description: v.Description,
		VideoURL:    v.VideoURL,
		CoverURL:    v.CoverURL,
		Visibility:  string(v.Visibility),
		Hashtags:    v.Hashtags,
		ProductID:   v.ProductID,
		Geotagged:   v.Geotagged,
		Latitude:    v.Latitude,
		Longitude:   v.Longitude,
		Ctime:       v.Ctime,
	}
}

func newProduct(p domain.Product) Product {
	return Product{
		ID:          p.ID,
		Uid:         p.Uid,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		URL:         p.URL,
		CoverURL:    p.CoverURL,
	}
}
