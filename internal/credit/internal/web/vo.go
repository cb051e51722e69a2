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

type Credit struct {
	TotalPoints int64 `json:"totalPoints"`
	TotalLikes  int64 `json:"totalLikes"`
	TotalBuzz   int64 `json:"totalBuzz"`
	UploadCnt   int64 `json:"uploadCnt"`
}

type CreditLog struct {
	ChangeAmount int64  `json:"changeAmount"`
	Kind         string `json:"kind"`
	Desc         string `json:"desc"`
	Balance      int64  `json:"balance"`
	Ctime        int64  `json:"ctime"`
}

type LogsResp struct {
	Logs []CreditLog `json:"logs"`
}

type LeaderboardEntry struct {
	Uid    int64 `json:"uid"`
	Points int64 `json:"points"`
}

type LeaderboardResp struct {
	Entries []LeaderboardEntry `json:"entries"`
}
