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

package dao

// Interactive 汇总表
type Interactive struct {
	Id         int64  `gorm:"primaryKey,autoIncrement"`
	BizId      int64  `gorm:"uniqueIndex:unq_biz_id"`
	Biz        string `gorm:"type:varchar(128);uniqueIndex:unq_biz_id"`
	LikeCnt    int64
	CommentCnt int64
	ShareCnt   int64
	BuzzCnt    int64
	ViewCnt    int64
	// BoostScore 推广加成分
	BoostScore int64
	Utime      int64
	Ctime      int64
}

// UserAction 互动明细表。唯一索引保证同一个动作只落一条，
// 并发重复提交靠它去重
type UserAction struct {
	Id     int64  `gorm:"primaryKey,autoIncrement"`
	Uid    int64  `gorm:"uniqueIndex:unq_uid_biz_action"`
	BizId  int64  `gorm:"uniqueIndex:unq_uid_biz_action"`
	Biz    string `gorm:"type:varchar(128);uniqueIndex:unq_uid_biz_action"`
	Action string `gorm:"type:varchar(32);uniqueIndex:unq_uid_biz_action"`
	Utime  int64
	Ctime  int64
}
