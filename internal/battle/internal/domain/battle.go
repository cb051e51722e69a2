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

type Status string

const (
	StatusOngoing  Status = "ongoing"
	StatusFinished Status = "finished"
)

// LiveVoteCost 直播对战投票要花的积分。
// 投票奖励不在这里，走积分模块的奖励表
const LiveVoteCost int64 = 5

type Battle struct {
	ID   int64
	VidA int64
	VidB int64
	// Live 直播对战，投票要扣积分
	Live   bool
	Status Status
	VotesA int64
	VotesB int64
	// Winner 结束之后的胜方视频 id，平局为 0
	Winner  int64
	EndTime int64
	Ctime   int64
}

type Vote struct {
	ID       int64
	BattleID int64
	Uid      int64
	// Vid 投给哪个视频
	Vid   int64
	Ctime int64
}
