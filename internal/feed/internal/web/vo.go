package web

import "github.com/vyralabs/vyra/internal/feed/internal/service"

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type NearbyReq struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radiusKm"`
}

type FeedVideo struct {
	ID         int64    `json:"id"`
	Uid        int64    `json:"uid"`
	Title      string   `json:"title"`
	CoverURL   string   `json:"coverUrl"`
	VideoURL   string   `json:"videoUrl"`
	Hashtags   []string `json:"hashtags,omitempty"`
	LikeCnt    int64    `json:"likeCnt"`
	CommentCnt int64    `json:"commentCnt"`
	ShareCnt   int64    `json:"shareCnt"`
	BuzzCnt    int64    `json:"buzzCnt"`
	ViewCnt    int64    `json:"viewCnt"`
	BoostScore int64    `json:"boostScore"`
	Score      int64    `json:"score,omitempty"`
	Distance   float64  `json:"distance,omitempty"`
	Ctime      int64    `json:"ctime"`
}

type FeedResp struct {
	Videos []FeedVideo `json:"videos"`
}

func newFeedVideo(item service.FeedItem) FeedVideo {
	return FeedVideo{
		ID:         item.Video.ID,
		Uid:        item.Video.Uid,
		Title:      item.Video.Title,
		CoverURL:   item.Video.CoverURL,
		VideoURL:   item.Video.VideoURL,
		Hashtags:   item.Video.Hashtags,
		LikeCnt:    item.LikeCnt,
		CommentCnt: item.CommentCnt,
		ShareCnt:   item.ShareCnt,
		BuzzCnt:    item.BuzzCnt,
		ViewCnt:    item.ViewCnt,
		BoostScore: item.BoostScore,
		Score:      item.Score,
		Distance:   item.Distance,
		Ctime:      item.Video.Ctime,
	}
}
