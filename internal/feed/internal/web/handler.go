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
	"github.com/vyralabs/vyra/internal/feed/internal/service"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/feed")
	g.POST("/default", ginx.BS[ListReq](h.Default))
	g.POST("/recommended", ginx.S(h.Recommended))
	g.POST("/nearby", ginx.BS[NearbyReq](h.Nearby))
}

func (h *Handler) Default(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	items, err := h.svc.DefaultFeed(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newFeedResp(items)}, nil
}

func (h *Handler) Recommended(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	items, err := h.svc.RecommendedFeed(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newFeedResp(items)}, nil
}

func (h *Handler) Nearby(ctx *ginx.Context, req NearbyReq, sess session.Session) (ginx.Result, error) {
	items, err := h.svc.NearbyFeed(ctx, req.Latitude, req.Longitude, req.RadiusKm)
	if errors.Is(err, service.ErrInvalidCoordinates) {
		return invalidCoordinatesResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newFeedResp(items)}, nil
}

func newFeedResp(items []service.FeedItem) FeedResp {
	return FeedResp{
		Videos: slice.Map(items, func(idx int, src service.FeedItem) FeedVideo {
			return newFeedVideo(src)
		}),
	}
}
