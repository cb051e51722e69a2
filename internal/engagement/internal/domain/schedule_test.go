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

func TestDefaultSchedule(t *testing.T) {
	t.Parallel()
	s := DefaultSchedule()
	assert.Equal(t, int64(1), s.Reward(ActionLike))
	assert.Equal(t, int64(2), s.Reward(ActionComment))
	assert.Equal(t, int64(1), s.Reward(ActionShare))
	assert.Equal(t, int64(3), s.Reward(ActionBuzz))
	// 没配奖励的动作不发积分
	assert.Equal(t, int64(0), s.Reward(ActionView))
	assert.True(t, s.StickyAward)
}
