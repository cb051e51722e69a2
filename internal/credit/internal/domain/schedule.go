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

// RewardAction 会触发积分奖励的动作
type RewardAction string

const (
	RewardLike       RewardAction = "like"
	RewardComment    RewardAction = "comment"
	RewardShare      RewardAction = "share"
	RewardBuzz       RewardAction = "buzz"
	RewardUpload     RewardAction = "upload"
	RewardBattleVote RewardAction = "battle-vote"
)

// RewardSchedule 动作到积分的静态映射。
// 所有发奖励的业务共用这一张表，调数值只改这里
type RewardSchedule struct {
	Amounts map[RewardAction]int64
}

// Amount 没配置的动作返回 0
func (s RewardSchedule) Amount(a RewardAction) int64 {
	return s.Amounts[a]
}

func DefaultRewardSchedule() RewardSchedule {
	return RewardSchedule{
		Amounts: map[RewardAction]int64{
			RewardLike:       1,
			RewardComment:    2,
			RewardShare:      1,
			RewardBuzz:       3,
			RewardUpload:     10,
			RewardBattleVote: 1,
		},
	}
}
