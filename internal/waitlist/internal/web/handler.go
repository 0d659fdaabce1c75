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
	"github.com/ecodeclub/studio/internal/waitlist/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	msgJoined      = "已加入等待列表"
	msgWelcomeSent = "欢迎邮件已发送"
)

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger.With(elog.FieldComponent("waitlist.handler")),
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/waitlist/join", ginx.B[JoinReq](h.Join))
	server.POST("/email/welcome", ginx.B[WelcomeReq](h.Welcome))
}

func (h *Handler) Join(ctx *ginx.Context, req JoinReq) (ginx.Result, error) {
	_, err := h.svc.Join(ctx, req.Email)
	switch {
	case err == nil:
		return ginx.Result{
			Msg: msgJoined,
			Data: Resp{
				Success: true,
				Message: msgJoined,
			},
		}, nil
	case errors.Is(err, service.ErrInvalidEmail):
		return withStatus(ctx, http.StatusBadRequest, invalidEmailResult)
	case errors.Is(err, service.ErrAlreadyJoined):
		return withStatus(ctx, http.StatusConflict, alreadyJoinedResult)
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Welcome(ctx *ginx.Context, req WelcomeReq) (ginx.Result, error) {
	err := h.svc.SendWelcome(ctx, req.Email, req.Name)
	switch {
	case err == nil:
		return ginx.Result{
			Msg: msgWelcomeSent,
			Data: Resp{
				Success: true,
				Message: msgWelcomeSent,
			},
		}, nil
	case errors.Is(err, service.ErrInvalidEmail):
		return withStatus(ctx, http.StatusBadRequest, invalidEmailResult)
	default:
		h.logger.Error("发送欢迎邮件失败", elog.FieldErr(err))
		return systemErrorResult, err
	}
}
