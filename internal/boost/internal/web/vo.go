package web

import "github.com/vyralabs/vyra/internal/boost/internal/domain"

type BuyReq struct {
	Vid  int64  `json:"vid"`
	Type string `json:"type"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type Tier struct {
	Type  string `json:"type"`
	Price int64  `json:"price"`
	Score int64  `json:"score"`
}

type TiersResp struct {
	Tiers []Tier `json:"tiers"`
}

type Record struct {
	ID    int64  `json:"id"`
	Vid   int64  `json:"vid"`
	Type  string `json:"type"`
	Price int64  `json:"price"`
	Score int64  `json:"score"`
	Ctime int64  `json:"ctime"`
}

// BuyResp 购买之后视频的总加成分和买家余额
type BuyResp struct {
	Record     Record `json:"record"`
	BoostScore int64  `json:"boostScore"`
	Balance    int64  `json:"balance"`
}

type RecordListResp struct {
	Records []Record `json:"records"`
}

func newRecord(r domain.Record) Record {
	return Record{
		ID:    r.ID,
		Vid:   r.Vid,
		Type:  string(r.Type),
		Price: r.Price,
		Score: r.Score,
		Ctime: r.Ctime,
	}
}

func newBuyResp(p domain.Purchase) BuyResp {
	return BuyResp{
		Record:     newRecord(p.Record),
		BoostScore: p.BoostScore,
		Balance:    p.Balance,
	}
}
