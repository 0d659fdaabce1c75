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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/studio/internal/mission/internal/domain"
	"github.com/ecodeclub/studio/internal/mission/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	msgApplied         = "申请已提交"
	msgAppliedNoNotice = "申请已提交，确认邮件发送失败，请留意后续邮件"
)

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger.With(elog.FieldComponent("mission.handler")),
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/mission")
	g.POST("/list", ginx.B[ListMissionReq](h.List))
	g.POST("/detail", ginx.B[MissionID](h.Detail))
	g.POST("/apply", ginx.B[ApplyReq](h.Apply))
}

func (h *Handler) List(ctx *ginx.Context, req ListMissionReq) (ginx.Result, error) {
	offset, limit := normalizePage(req.Offset, req.Limit)
	missions, err := h.svc.ListMissions(ctx, domain.MissionStatus(req.Status), offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: MissionList{
			Missions: slice.Map(missions, func(idx int, src domain.Mission) Mission {
				return newMission(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req MissionID) (ginx.Result, error) {
	m, err := h.svc.MissionDetail(ctx, req.ID)
	switch {
	case err == nil:
		return ginx.Result{
			Data: newMission(m),
		}, nil
	case errors.Is(err, service.ErrMissionNotFound):
		return withStatus(ctx, http.StatusNotFound, missionNotFoundResult)
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Apply(ctx *ginx.Context, req ApplyReq) (ginx.Result, error) {
	res, err := h.svc.Apply(ctx, req.MissionID, req.toApplicant())
	switch {
	case err == nil:
		msg := msgApplied
		if !res.Notified {
			msg = msgAppliedNoNotice
		}
		return ginx.Result{
			Msg: msg,
			Data: ApplyResp{
				Success:  true,
				Message:  msg,
				SN:       res.Application.SN,
				Notified: res.Notified,
			},
		}, nil
	case errors.Is(err, service.ErrInvalidApplication):
		h.logger.Debug("申请信息不合法", elog.FieldErr(err))
		return withStatus(ctx, http.StatusBadRequest, invalidApplicationResult)
	case errors.Is(err, service.ErrDuplicatedApplication):
		return withStatus(ctx, http.StatusConflict, duplicatedResult)
	case errors.Is(err, service.ErrMissionNotFound):
		return withStatus(ctx, http.StatusNotFound, missionNotFoundResult)
	default:
		return systemErrorResult, err
	}
}
