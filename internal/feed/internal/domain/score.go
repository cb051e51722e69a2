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

// Weights 推荐流的打分权重
type Weights struct {
	Like    int64
	Comment int64
	Buzz    int64
	Boost   int64
}

func DefaultWeights() Weights {
	return Weights{
		Like:    2,
		Comment: 3,
		Buzz:    4,
		Boost:   5,
	}
}

// Counters 参与打分的聚合计数快照
type Counters struct {
	Likes      int64
	Comments   int64
	Buzz       int64
	BoostScore int64
}

// Score 纯整数打分，同一份快照算出来的结果必然一致
func (w Weights) Score(c Counters) int64 {
	return w.Like*c.Likes +
		w.Comment*c.Comments +
		w.Buzz*c.Buzz +
		w.Boost*c.BoostScore
}
