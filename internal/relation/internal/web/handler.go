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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/vyralabs/vyra/internal/relation/internal/service"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/relation")
	g.POST("/follow", ginx.BS[FollowReq](h.Follow))
	g.POST("/unfollow", ginx.BS[FollowReq](h.Unfollow))
	g.POST("/following", ginx.S(h.Following))
	g.POST("/followers", ginx.BS[FollowerListReq](h.Followers))
	g.POST("/is-following", ginx.BS[FollowReq](h.IsFollowing))
	g.POST("/stat", ginx.S(h.Stat))
}

func (h *Handler) Follow(ctx *ginx.Context, req FollowReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Follow(ctx, sess.Claims().Uid, req.Uid)
	if errors.Is(err, service.ErrSelfFollow) {
		return selfFollowResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Unfollow(ctx *ginx.Context, req FollowReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Unfollow(ctx, sess.Claims().Uid, req.Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Following(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	ids, err := h.svc.FolloweeIDs(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: UidListResp{Uids: ids}}, nil
}

func (h *Handler) Followers(ctx *ginx.Context, req FollowerListReq, sess session.Session) (ginx.Result, error) {
	ids, err := h.svc.FollowerIDs(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: UidListResp{Uids: ids}}, nil
}

func (h *Handler) IsFollowing(ctx *ginx.Context, req FollowReq, sess session.Session) (ginx.Result, error) {
	ok, err := h.svc.IsFollowing(ctx, sess.Claims().Uid, req.Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: IsFollowingResp{Following: ok}}, nil
}

func (h *Handler) Stat(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	stat, err := h.svc.Stat(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: StatResp{
		FollowerCnt:  stat.FollowerCnt,
		FollowingCnt: stat.FollowingCnt,
	}}, nil
}
