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

// Challenge 一个挑战：做满 Target 次 Action，领 Reward 积分
type Challenge struct {
	ID     int64
	Name   string
	Desc   string
	Action string
	Target int64
	Reward int64
	// Active 下线的挑战不再累计进度
	Active bool
	Ctime  int64
}

// UserChallenge 用户在一个挑战上的进度
type UserChallenge struct {
	ChallengeID int64
	Uid         int64
	Progress    int64
	Completed   bool
	Claimed     bool
}
