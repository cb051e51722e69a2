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

func TestTierOf(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		typ       Type
		wantTier  Tier
		wantFound bool
	}{
		{
			name:      "glow",
			typ:       TypeGlow,
			wantTier:  Tier{Type: TypeGlow, Price: 50, Score: 10},
			wantFound: true,
		},
		{
			name:      "campus",
			typ:       TypeCampus,
			wantTier:  Tier{Type: TypeCampus, Price: 100, Score: 15},
			wantFound: true,
		},
		{
			name:      "hashtag",
			typ:       TypeHashtag,
			wantTier:  Tier{Type: TypeHashtag, Price: 75, Score: 12},
			wantFound: true,
		},
		{
			name:      "product",
			typ:       TypeProduct,
			wantTier:  Tier{Type: TypeProduct, Price: 100, Score: 20},
			wantFound: true,
		},
		{
			name:      "未知档位",
			typ:       Type("mega"),
			wantFound: false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tier, ok := TierOf(tc.typ)
			assert.Equal(t, tc.wantFound, ok)
			if ok {
				assert.Equal(t, tc.wantTier, tier)
			}
		})
	}
}

func TestTiers(t *testing.T) {
	t.Parallel()
	ts := Tiers()
	assert.Len(t, ts, 4)
	for _, tier := range ts {
		assert.Positive(t, tier.Price)
		assert.Positive(t, tier.Score)
	}
}
