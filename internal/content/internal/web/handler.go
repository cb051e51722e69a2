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
	"github.com/vyralabs/vyra/internal/content/internal/domain"
	"github.com/vyralabs/vyra/internal/content/internal/service"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/video")
	g.POST("/publish", ginx.BS[PublishReq](h.Publish))
	g.POST("/detail", ginx.BS[IdReq](h.Detail))
	g.POST("/mine", ginx.BS[ListReq](h.Mine))
	g.POST("/visibility", ginx.BS[VisibilityReq](h.UpdateVisibility))
	g.POST("/delete", ginx.BS[IdReq](h.Delete))

	p := server.Group("/product")
	p.POST("/create", ginx.BS[CreateProductReq](h.CreateProduct))
	p.POST("/list", ginx.BS[ListReq](h.ListProducts))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/video")
	g.POST("/search", ginx.B[SearchReq](h.Search))
	g.POST("/hashtag", ginx.B[HashtagReq](h.Hashtag))
}

func (h *Handler) Publish(ctx *ginx.Context, req PublishReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Publish(ctx, domain.Video{
		Uid:         sess.Claims().Uid,
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		CoverURL:    req.CoverURL,
		Visibility:  domain.Visibility(req.Visibility),
		Hashtags:    req.Hashtags,
		ProductID:   req.ProductID,
		Geotagged:   req.Geotagged,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if errors.Is(err, service.ErrInvalidVideo) {
		return invalidVideoResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: PublishResp{ID: id}}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	v, err := h.svc.Detail(ctx, req.ID, sess.Claims().Uid)
	if errors.Is(err, service.ErrVideoNotFound) {
		return videoNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newVideo(v)}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	vs, err := h.svc.ListByUid(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newVideoListResp(vs)}, nil
}

func (h *Handler) UpdateVisibility(ctx *ginx.Context, req VisibilityReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateVisibility(ctx, sess.Claims().Uid, req.ID, domain.Visibility(req.Visibility))
	switch {
	case errors.Is(err, service.ErrInvalidVideo):
		return invalidVideoResult, err
	case errors.Is(err, service.ErrNotOwner):
		return videoNotFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, sess.Claims().Uid, req.ID)
	if errors.Is(err, service.ErrNotOwner) {
		return videoNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Search(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	vs, err := h.svc.Search(ctx, req.Keyword, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newVideoListResp(vs)}, nil
}

func (h *Handler) Hashtag(ctx *ginx.Context, req HashtagReq) (ginx.Result, error) {
	vs, err := h.svc.ListByHashtag(ctx, req.Name, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newVideoListResp(vs)}, nil
}

func (h *Handler) CreateProduct(ctx *ginx.Context, req CreateProductReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.CreateProduct(ctx, domain.Product{
		Uid:         sess.Claims().Uid,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		URL:         req.URL,
		CoverURL:    req.CoverURL,
	})
	if errors.Is(err, service.ErrInvalidVideo) {
		return invalidVideoResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: PublishResp{ID: id}}, nil
}

func (h *Handler) ListProducts(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	ps, err := h.svc.ListProductsByUid(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ProductListResp{
		Products: slice.Map(ps, func(idx int, src domain.Product) Product {
			return newProduct(src)
		}),
	}}, nil
}

func newVideoListResp(vs []domain.Video) VideoListResp {
	return VideoListResp{
		Videos: slice.Map(vs, func(idx int, src domain.Video) Video {
			return newVideo(src)
		}),
	}
}
