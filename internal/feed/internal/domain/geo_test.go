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

func TestDistance(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64
		delta                  float64
	}{
		{
			name: "同一个点",
			lat1: 31.2304, lng1: 121.4737,
			lat2: 31.2304, lng2: 121.4737,
			want:  0,
			delta: 0.001,
		},
		{
			name: "赤道上一度经线",
			lat1: 0, lng1: 0,
			lat2: 0, lng2: 1,
			want:  111.19,
			delta: 0.05,
		},
		{
			name: "北京到上海",
			lat1: 39.9042, lng1: 116.4074,
			lat2: 31.2304, lng2: 121.4737,
			want:  1067,
			delta: 5,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Distance(tc.lat1, tc.lng1, tc.lat2, tc.lng2)
			assert.InDelta(t, tc.want, got, tc.delta)
			// 距离对称
			assert.InDelta(t, got, Distance(tc.lat2, tc.lng2, tc.lat1, tc.lng1), 0.0001)
		})
	}
}

func TestValidCoordinate(t *testing.T) {
	t.Parallel()
	assert.True(t, ValidCoordinate(0, 0))
	assert.True(t, ValidCoordinate(90, 180))
	assert.True(t, ValidCoordinate(-90, -180))
	assert.False(t, ValidCoordinate(90.1, 0))
	assert.False(t, ValidCoordinate(0, 180.1))
	assert.False(t, ValidCoordinate(-91, 0))
}
