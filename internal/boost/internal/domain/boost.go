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

type Type string

const (
	// TypeGlow 普通曝光加成
	TypeGlow Type = "glow"
	// TypeCampus 校园位推广
	TypeCampus Type = "campus"
	// TypeHashtag 话题页推广
	TypeHashtag Type = "hashtag"
	// TypeProduct 商品推广，要求视频挂了商品
	TypeProduct Type = "product"
)

// Tier 一档推广：花 Price 积分，换 Score 加成分
type Tier struct {
	Type  Type
	Price int64
	Score int64
}

var tiers = map[Type]Tier{
	TypeGlow:    {Type: TypeGlow, Price: 50, Score: 10},
	TypeCampus:  {Type: TypeCampus, Price: 100, Score: 15},
	TypeHashtag: {Type: TypeHashtag, Price: 75, Score: 12},
	TypeProduct: {Type: TypeProduct, Price: 100, Score: 20},
}

func TierOf(t Type) (Tier, bool) {
	tier, ok := tiers[t]
	return tier, ok
}

func Tiers() []Tier {
	return []Tier{
		tiers[TypeGlow],
		tiers[TypeCampus],
		tiers[TypeHashtag],
		tiers[TypeProduct],
	}
}

// Record 一次推广购买的流水
type Record struct {
	ID    int64
	Uid   int64
	Vid   int64
	Type  Type
	Price int64
	Score int64
	Ctime int64
}

// Purchase 一次购买的结果：流水、买完之后视频的总加成分和买家余额
type Purchase struct {
	Record     Record
	BoostScore int64
	Balance    int64
}
