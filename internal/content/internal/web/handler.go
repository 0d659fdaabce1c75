// Copyright 2023 ecodeclub
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
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/studio/internal/content/internal/errs"
	"github.com/ecodeclub/studio/internal/content/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger.With(elog.FieldComponent("content.handler")),
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/blog")
	g.POST("/list", ginx.W(h.BlogList))
	g.POST("/search", ginx.B[SearchReq](h.Search))
	g.POST("/detail", ginx.B[SlugReq](h.BlogDetail))

	server.POST("/tutorial/series", ginx.B[SeriesReq](h.TutorialSeries))
	server.POST("/tutorial/detail", ginx.B[ChapterReq](h.TutorialDetail))
}

func (h *Handler) BlogList(ctx *ginx.Context) (ginx.Result, error) {
	items, err := h.svc.BlogList(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newItemList(items),
	}, nil
}

func (h *Handler) Search(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	items, err := h.svc.Search(ctx, req.Query)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newItemList(items),
	}, nil
}

func (h *Handler) BlogDetail(ctx *ginx.Context, req SlugReq) (ginx.Result, error) {
	item, err := h.svc.BlogDetail(ctx, req.Slug)
	switch {
	case err == nil:
		return ginx.Result{
			Data: newItem(item, true),
		}, nil
	case errors.Is(err, service.ErrMalformedContent):
		h.logger.Error("博客格式错误", elog.FieldErr(err), elog.String("slug", req.Slug))
		return ginx.Result{
			Code: errs.ContentMalformed.Code,
			Msg:  errs.ContentMalformed.Msg,
			Data: newItem(item, true),
		}, nil
	case errors.Is(err, service.ErrContentNotFound):
		return h.notFound(ctx)
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) TutorialSeries(ctx *ginx.Context, req SeriesReq) (ginx.Result, error) {
	s, err := h.svc.TutorialSeries(ctx, req.Series)
	switch {
	case err == nil:
		return ginx.Result{
			Data: newSeries(s),
		}, nil
	case errors.Is(err, service.ErrContentNotFound):
		return h.notFound(ctx)
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) TutorialDetail(ctx *ginx.Context, req ChapterReq) (ginx.Result, error) {
	page, err := h.svc.TutorialChapter(ctx, req.Series, req.Slug)
	switch {
	case err == nil:
		return ginx.Result{
			Data: newChapterPage(page),
		}, nil
	case errors.Is(err, service.ErrMalformedContent):
		h.logger.Error("教程格式错误", elog.FieldErr(err),
			elog.String("series", req.Series), elog.String("slug", req.Slug))
		return ginx.Result{
			Code: errs.ContentMalformed.Code,
			Msg:  errs.ContentMalformed.Msg,
			Data: newChapterPage(page),
		}, nil
	case errors.Is(err, service.ErrContentNotFound):
		return h.notFound(ctx)
	default:
		return systemErrorResult, err
	}
}

// notFound 不存在是正常情况，不记录错误
func (h *Handler) notFound(ctx *ginx.Context) (ginx.Result, error) {
	ctx.JSON(http.StatusNotFound, notFoundResult)
	return ginx.Result{}, ginx.ErrNoResponse
}
