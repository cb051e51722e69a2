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

import "github.com/vyralabs/vyra/internal/credit"

// Schedule 互动发多少积分。数值统一走积分模块的奖励表
type Schedule struct {
	Table credit.RewardSchedule
	// StickyAward 为 true 时取消点赞不追回已发的积分，
	// 重新点赞也不会再发一遍，幂等键会拦住
	StickyAward bool
}

// Reward 没配置的动作返回 0
func (s Schedule) Reward(a Action) int64 {
	return s.Table.Amount(credit.RewardAction(a))
}

func DefaultSchedule() Schedule {
	return Schedule{
		Table:       credit.DefaultRewardSchedule(),
		StickyAward: true,
	}
}
