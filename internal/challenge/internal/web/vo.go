package web

import "github.com/vyralabs/vyra/internal/challenge/internal/service"

type CreateReq struct {
	Name   string `json:"name"`
	Desc   string `json:"desc"`
	Action string `json:"action"`
	Target int64  `json:"target"`
	Reward int64  `json:"reward"`
}

type CreateResp struct {
	ID int64 `json:"id"`
}

type IdReq struct {
	ID int64 `json:"id"`
}

type Challenge struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Desc      string `json:"desc"`
	Action    string `json:"action"`
	Target    int64  `json:"target"`
	Reward    int64  `json:"reward"`
	Progress  int64  `json:"progress"`
	Completed bool   `json:"completed"`
	Claimed   bool   `json:"claimed"`
}

type ListResp struct {
	Challenges []Challenge `json:"challenges"`
}

func newChallenge(cp service.ChallengeProgress) Challenge {
	return Challenge{
		ID:        cp.Challenge.ID,
		Name:      cp.Challenge.Name,
		Desc:      cp.Challenge.Desc,
		Action:    cp.Challenge.Action,
		Target:    cp.Challenge.Target,
		Reward:    cp.Challenge.Reward,
		Progress:  cp.Progress,
		Completed: cp.Completed,
		Claimed:   cp.Claimed,
	}
}
