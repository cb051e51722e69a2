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

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/vyralabs/vyra/internal/credit/internal/domain"
	"github.com/vyralabs/vyra/internal/credit/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/credit")
	g.POST("/balance", ginx.S(h.Balance))
	g.POST("/detail", ginx.S(h.Detail))
	g.POST("/leaderboard", ginx.S(h.Leaderboard))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Balance(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	balance, err := h.svc.GetBalance(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: balance}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.GetCreditByUID(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Credit{
			TotalPoints: c.TotalPoints,
			TotalLikes:  c.TotalLikes,
			TotalBuzz:   c.TotalBuzz,
			UploadCnt:   c.UploadCnt,
		},
	}, nil
}

func (h *Handler) Leaderboard(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	entries, err := h.svc.WeeklyLeaderboard(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: LeaderboardResp{
			Entries: slice.Map(entries, func(idx int, src domain.LeaderboardEntry) LeaderboardEntry {
				return LeaderboardEntry{Uid: src.Uid, Points: src.Points}
			}),
		},
	}, nil
}
