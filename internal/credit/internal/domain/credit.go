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

// Kind 积分流水类型
type Kind string

const (
	KindEarned  Kind = "earned"
	KindSpent   Kind = "spent"
	KindReward  Kind = "reward"
	KindPenalty Kind = "penalty"
)

// Credit 用户积分账户。余额永远等于该用户全部流水的总和
type Credit struct {
	Uid         int64
	TotalPoints int64
	// 个人主页上的聚合计数
	TotalLikes int64
	TotalBuzz  int64
	UploadCnt  int64
	Logs       []CreditLog
}

// CreditLog 一条不可变的积分流水。
// Key 是调用方选定的幂等键，重复的 Key 不会产生第二条流水
type CreditLog struct {
	ID           int64
	Key          string
	Uid          int64
	ChangeAmount int64
	Kind         Kind
	Biz          string
	BizId        int64
	Desc         string
	// 本条流水生效后的余额快照
	Balance int64
	Ctime   int64
}

// LeaderboardEntry 最近一周获得积分排行榜中的一项
type LeaderboardEntry struct {
	Uid    int64
	Points int64
}
