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

package event

const (
	NotificationEventName = "notification_events"
	ProgressEventName     = "challenge_progress_events"
)

type NotificationEvent struct {
	Biz          string `json:"biz"`
	BizID        int64  `json:"bizId"`
	Action       string `json:"action"`
	ActorUid     int64  `json:"actorUid"`
	RecipientUid int64  `json:"recipientUid"`
}

type ProgressEvent struct {
	Uid    int64  `json:"uid"`
	Action string `json:"action"`
	Biz    string `json:"biz"`
	BizID  int64  `json:"bizId"`
}
