package web

import "github.com/vyralabs/vyra/internal/battle/internal/domain"

type CreateReq struct {
	VidA    int64 `json:"vidA"`
	VidB    int64 `json:"vidB"`
	Live    bool  `json:"live"`
	EndTime int64 `json:"endTime"`
}

type CreateResp struct {
	ID int64 `json:"id"`
}

type IdReq struct {
	ID int64 `json:"id"`
}

type VoteReq struct {
	BattleID int64 `json:"battleId"`
	Vid      int64 `json:"vid"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type Battle struct {
	ID      int64  `json:"id"`
	VidA    int64  `json:"vidA"`
	VidB    int64  `json:"vidB"`
	Live    bool   `json:"live"`
	Status  string `json:"status"`
	VotesA  int64  `json:"votesA"`
	VotesB  int64  `json:"votesB"`
	Winner  int64  `json:"winner,omitempty"`
	EndTime int64  `json:"endTime"`
	Ctime   int64  `json:"ctime"`
}

type BattleListResp struct {
	Battles []Battle `json:"battles"`
}

func newBattle(b domain.Battle) Battle {
	return Battle{
		ID:      b.ID,
		VidA:    b.VidA,
		VidB:    b.VidB,
		Live:    b.Live,
		Status:  string(b.Status),
		VotesA:  b.VotesA,
		VotesB:  b.VotesB,
		Winner:  b.Winner,
		EndTime: b.EndTime,
		Ctime:   b.Ctime,
	}
}
