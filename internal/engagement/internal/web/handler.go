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
	"github.com/vyralabs/vyra/internal/engagement/internal/domain"
	"github.com/vyralabs/vyra/internal/engagement/internal/service"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/engagement")
	g.POST("/like", ginx.BS[ActionReq](h.Like))
	g.POST("/buzz", ginx.BS[ActionReq](h.Buzz))
	g.POST("/share", ginx.BS[ActionReq](h.Share))
	g.POST("/view", ginx.BS[ActionReq](h.View))
	g.POST("/cnt", ginx.BS[GetCntReq](h.GetCnt))
}

func (h *Handler) Like(ctx *ginx.Context, req ActionReq, sess session.Session) (ginx.Result, error) {
	liked, err := h.record(ctx, req, sess, domain.ActionLike)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Data: LikeResp{Liked: liked}}, nil
}

func (h *Handler) Buzz(ctx *ginx.Context, req ActionReq, sess session.Session) (ginx.Result, error) {
	if _, err := h.record(ctx, req, sess, domain.ActionBuzz); err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Share(ctx *ginx.Context, req ActionReq, sess session.Session) (ginx.Result, error) {
	if _, err := h.record(ctx, req, sess, domain.ActionShare); err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) View(ctx *ginx.Context, req ActionReq, sess session.Session) (ginx.Result, error) {
	if _, err := h.record(ctx, req, sess, domain.ActionView); err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) GetCnt(ctx *ginx.Context, req GetCntReq, sess session.Session) (ginx.Result, error) {
	intr, err := h.svc.Get(ctx, req.Biz, req.BizId, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: GetCntResp{
		LikeCnt:    intr.LikeCnt,
		CommentCnt: intr.CommentCnt,
		ShareCnt:   intr.ShareCnt,
		BuzzCnt:    intr.BuzzCnt,
		ViewCnt:    intr.ViewCnt,
		Liked:      intr.Liked,
		Buzzed:     intr.Buzzed,
	}}, nil
}

func (h *Handler) record(ctx *ginx.Context, req ActionReq, sess session.Session, action domain.Action) (bool, error) {
	return h.svc.Record(ctx, domain.Interaction{
		Biz:    req.Biz,
		BizID:  req.BizId,
		Uid:    sess.Claims().Uid,
		Action: action,
	})
}

func (h *Handler) errResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrDuplicatedAction):
		return duplicatedActionResult, err
	case errors.Is(err, service.ErrTargetNotFound):
		return targetNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}
