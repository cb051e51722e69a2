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
	"github.com/vyralabs/vyra/internal/boost/internal/domain"
	"github.com/vyralabs/vyra/internal/boost/internal/service"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/boost")
	g.POST("/buy", ginx.BS[BuyReq](h.Buy))
	g.POST("/records", ginx.BS[ListReq](h.Records))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/boost")
	g.POST("/tiers", ginx.W(h.Tiers))
}

func (h *Handler) Buy(ctx *ginx.Context, req BuyReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Buy(ctx, sess.Claims().Uid, req.Vid, domain.Type(req.Type))
	switch {
	case errors.Is(err, service.ErrUnknownType):
		return unknownTypeResult, err
	case errors.Is(err, service.ErrVideoNotFound):
		return videoNotFoundResult, err
	case errors.Is(err, service.ErrNotOwner):
		return notOwnerResult, err
	case errors.Is(err, service.ErrNoProduct):
		return noProductResult, err
	case errors.Is(err, service.ErrPointsNotEnough):
		return pointsNotEnoughResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newBuyResp(p)}, nil
}

func (h *Handler) Tiers(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{Data: TiersResp{
		Tiers: slice.Map(h.svc.Tiers(), func(idx int, src domain.Tier) Tier {
			return Tier{
				Type:  string(src.Type),
				Price: src.Price,
				Score: src.Score,
			}
		}),
	}}, nil
}

func (h *Handler) Records(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	recs, err := h.svc.ListByUid(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: RecordListResp{
		Records: slice.Map(recs, func(idx int, src domain.Record) Record {
			return newRecord(src)
		}),
	}}, nil
}
