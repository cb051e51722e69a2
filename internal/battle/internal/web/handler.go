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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/vyralabs/vyra/internal/battle/internal/domain"
	"github.com/vyralabs/vyra/internal/battle/internal/service"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/battle")
	g.POST("/create", ginx.BS[CreateReq](h.Create))
	g.POST("/vote", ginx.BS[VoteReq](h.Vote))
	g.POST("/finish", ginx.BS[IdReq](h.Finish))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/battle")
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/list", ginx.B[ListReq](h.List))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, domain.Battle{
		VidA:    req.VidA,
		VidB:    req.VidB,
		Live:    req.Live,
		EndTime: req.EndTime,
	})
	if errors.Is(err, service.ErrInvalidBattle) {
		return invalidBattleResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: CreateResp{ID: id}}, nil
}

func (h *Handler) Vote(ctx *ginx.Context, req VoteReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Vote(ctx, sess.Claims().Uid, req.BattleID, req.Vid)
	switch {
	case errors.Is(err, service.ErrBattleNotFound):
		return battleNotFoundResult, err
	case errors.Is(err, service.ErrBattleFinished):
		return battleFinishedResult, err
	case errors.Is(err, service.ErrInvalidVote):
		return invalidVoteResult, err
	case errors.Is(err, service.ErrAlreadyVoted):
		return alreadyVotedResult, err
	case errors.Is(err, service.ErrPointsNotEnough):
		return pointsNotEnoughResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Finish(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	b, err := h.svc.Finish(ctx, req.ID)
	switch {
	case errors.Is(err, service.ErrBattleNotFound):
		return battleNotFoundResult, err
	case errors.Is(err, service.ErrBattleFinished):
		return battleFinishedResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newBattle(b)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	b, err := h.svc.Get(ctx, req.ID)
	if errors.Is(err, service.ErrBattleNotFound) {
		return battleNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newBattle(b)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	bs, err := h.svc.ListOngoing(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: BattleListResp{
		Battles: slice.Map(bs, func(idx int, src domain.Battle) Battle {
			return newBattle(src)
		}),
	}}, nil
}
