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

func TestWeights_Score(t *testing.T) {
	t.Parallel()
	w := DefaultWeights()
	testCases := []struct {
		name     string
		counters Counters
		want     int64
	}{
		{
			name:     "全零",
			counters: Counters{},
			want:     0,
		},
		{
			name: "只有点赞",
			counters: Counters{
				Likes: 10,
			},
			want: 20,
		},
		{
			name: "全量计数",
			counters: Counters{
				Likes:      10,
				Comments:   5,
				Buzz:       3,
				BoostScore: 15,
			},
			// 2*10 + 3*5 + 4*3 + 5*15
			want: 122,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, w.Score(tc.counters))
			// 同一份快照反复算，结果必须一致
			assert.Equal(t, w.Score(tc.counters), w.Score(tc.counters))
		})
	}
}

func TestDefaultWeights(t *testing.T) {
	t.Parallel()
	w := DefaultWeights()
	assert.Equal(t, Weights{Like: 2, Comment: 3, Buzz: 4, Boost: 5}, w)
}
