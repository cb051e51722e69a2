package web

type FollowReq struct {
	Uid int64 `json:"uid"`
}

type FollowerListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type UidListResp struct {
	Uids []int64 `json:"uids"`
}

type IsFollowingResp struct {
	Following bool `json:"following"`
}

type StatResp struct {
	FollowerCnt  int64 `json:"followerCnt"`
	FollowingCnt int64 `json:"followingCnt"`
}
