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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewardSchedule(t *testing.T) {
	s := DefaultRewardSchedule()
	testCases := []struct {
		action RewardAction
		want   int64
	}{
		{RewardLike, 1},
		{RewardComment, 2},
		{RewardShare, 1},
		{RewardBuzz, 3},
		{RewardUpload, 10},
		{RewardBattleVote, 1},
		{RewardAction("view"), 0},
	}
	for _, tc := range testCases {
		t.Run(string(tc.action), func(t *testing.T) {
			assert.Equal(t, tc.want, s.Amount(tc.action))
		})
	}
}
