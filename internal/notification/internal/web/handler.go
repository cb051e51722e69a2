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
	"github.com/vyralabs/vyra/internal/notification/internal/domain"
	"github.com/vyralabs/vyra/internal/notification/internal/service"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/notification")
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/unread-cnt", ginx.S(h.UnreadCount))
	g.POST("/read", ginx.BS[IdReq](h.MarkRead))
	g.POST("/read-all", ginx.S(h.MarkAllRead))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	ns, err := h.svc.List(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ListResp{
		Notifications: slice.Map(ns, func(idx int, src domain.Notification) Notification {
			return newNotification(src)
		}),
	}}, nil
}

func (h *Handler) UnreadCount(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cnt, err := h.svc.UnreadCount(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: UnreadCountResp{Count: cnt}}, nil
}

func (h *Handler) MarkRead(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.MarkRead(ctx, req.ID, sess.Claims().Uid)
	if errors.Is(err, service.ErrNotificationNotFound) {
		return notificationNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) MarkAllRead(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.svc.MarkAllRead(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
