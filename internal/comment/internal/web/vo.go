package web

import "github.com/vyralabs/vyra/internal/comment/internal/domain"

type CreateReq struct {
	Vid     int64  `json:"vid"`
	Content string `json:"content"`
}

type CreateResp struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	Vid    int64 `json:"vid"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

type IdReq struct {
	ID int64 `json:"id"`
}

type Comment struct {
	ID      int64  `json:"id"`
	Uid     int64  `json:"uid"`
	Vid     int64  `json:"vid"`
	Content string `json:"content"`
	Ctime   int64  `json:"ctime"`
}

type ListResp struct {
	Comments []Comment `json:"comments"`
}

func newComment(c domain.Comment) Comment {
	return Comment{
		ID:      c.ID,
		Uid:     c.Uid,
		Vid:     c.Vid,
		Content: c.Content,
		Ctime:   c.Ctime,
	}
}
