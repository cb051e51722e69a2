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

type ActionReq struct {
	Biz   string `json:"biz"`
	BizId int64  `json:"bizId"`
}

type LikeResp struct {
	// Liked 这次操作之后是否处于点赞状态
	Liked bool `json:"liked"`
}

type GetCntReq struct {
	Biz   string `json:"biz"`
	BizId int64  `json:"bizId"`
}

type GetCntResp struct {
	LikeCnt    int64 `json:"likeCnt"`
	CommentCnt int64 `json:"commentCnt"`
	ShareCnt   int64 `json:"shareCnt"`
	BuzzCnt    int64 `json:"buzzCnt"`
	ViewCnt    int64 `json:"viewCnt"`
	Liked      bool  `json:"liked"`
	Buzzed     bool  `json:"buzzed"`
}
