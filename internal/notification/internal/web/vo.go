package web

import "github.com/vyralabs/vyra/internal/notification/internal/domain"

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type IdReq struct {
	ID int64 `json:"id"`
}

type Notification struct {
	ID       int64  `json:"id"`
	ActorUid int64  `json:"actorUid"`
	Biz      string `json:"biz"`
	BizID    int64  `json:"bizId"`
	Action   string `json:"action"`
	Read     bool   `json:"read"`
	Ctime    int64  `json:"ctime"`
}

type ListResp struct {
	Notifications []Notification `json:"notifications"`
}

type UnreadCountResp struct {
	Count int64 `json:"count"`
}

func newNotification(n domain.Notification) Notification {
	return Notification{
		ID:       n.ID,
		ActorUid: n.ActorUid,
		Biz:      n.Biz,
		BizID:    n.BizID,
		Action:   n.Action,
		Read:     n.Read,
		Ctime:    n.Ctime,
	}
}
