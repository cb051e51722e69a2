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
	"github.com/vyralabs/vyra/internal/comment/internal/domain"
	"github.com/vyralabs/vyra/internal/comment/internal/service"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/comment")
	g.POST("/create", ginx.BS[CreateReq](h.Create))
	g.POST("/delete", ginx.BS[IdReq](h.Delete))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/comment")
	g.POST("/list", ginx.B[ListReq](h.List))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, domain.Comment{
		Uid:     sess.Claims().Uid,
		Vid:     req.Vid,
		Content: req.Content,
	})
	switch {
	case errors.Is(err, service.ErrInvalidComment):
		return invalidCommentResult, err
	case errors.Is(err, service.ErrVideoNotFound):
		return videoNotFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: CreateResp{ID: id}}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	cs, err := h.svc.List(ctx, req.Vid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ListResp{
		Comments: slice.Map(cs, func(idx int, src domain.Comment) Comment {
			return newComment(src)
		}),
	}}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, sess.Claims().Uid, req.ID)
	if errors.Is(err, service.ErrNotOwner) {
		return commentNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
