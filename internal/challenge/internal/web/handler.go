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
	"github.com/vyralabs/vyra/internal/challenge/internal/domain"
	"github.com/vyralabs/vyra/internal/challenge/internal/service"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/challenge")
	g.POST("/create", ginx.BS[CreateReq](h.Create))
	g.POST("/list", ginx.S(h.List))
	g.POST("/claim", ginx.BS[IdReq](h.Claim))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, domain.Challenge{
		Name:   req.Name,
		Desc:   req.Desc,
		Action: req.Action,
		Target: req.Target,
		Reward: req.Reward,
	})
	if errors.Is(err, service.ErrInvalidChallenge) {
		return invalidChallengeResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: CreateResp{ID: id}}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cps, err := h.svc.List(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ListResp{
		Challenges: slice.Map(cps, func(idx int, src service.ChallengeProgress) Challenge {
			return newChallenge(src)
		}),
	}}, nil
}

func (h *Handler) Claim(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Claim(ctx, sess.Claims().Uid, req.ID)
	switch {
	case errors.Is(err, service.ErrChallengeNotFound):
		return challengeNotFoundResult, err
	case errors.Is(err, service.ErrNotCompleted):
		return notCompletedResult, err
	case errors.Is(err, service.ErrAlreadyClaimed):
		return alreadyClaimedResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
