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

type Action string

const (
	// ActionLike 点赞，可以取消，再点回来也不会重复给积分
	ActionLike Action = "like"
	// ActionBuzz 一个用户对一个视频只能 buzz 一次，不能取消
	ActionBuzz  Action = "buzz"
	ActionShare Action = "share"
	ActionView  Action = "view"
	// ActionComment 评论的计数走 IncrCommentCnt，不走明细表
	ActionComment Action = "comment"
)

// Interaction 一次用户对内容的互动
type Interaction struct {
	Biz    string
	BizID  int64
	Uid    int64
	Action Action
}

// Interactive 一个内容的互动汇总
type Interactive struct {
	Biz        string
	BizID      int64
	LikeCnt    int64
	CommentCnt int64
	ShareCnt   int64
	BuzzCnt    int64
	ViewCnt    int64
	// BoostScore 推广买来的加成分，参与推荐排序
	BoostScore int64
	Liked      bool
	Buzzed     bool
}
