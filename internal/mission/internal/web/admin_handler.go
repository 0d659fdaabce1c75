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
)

// AdminHandler 挂在管理后台的 server 上，鉴权由 server 的中间件负责
type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/mission/application")
	g.POST("/list", ginx.B[ListApplicationReq](h.List))
	g.POST("/update-status", ginx.B[UpdateStatusReq](h.UpdateStatus))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListApplicationReq) (ginx.Result, error) {
	offset, limit := normalizePage(req.Offset, req.Limit)
	apps, total, err := h.svc.ListApplications(ctx, req.MissionID, offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ApplicationList{
			Total: total,
			Applications: slice.Map(apps, func(idx int, src domain.Application) Application {
				return newApplication(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq) (ginx.Result, error) {
	err := h.svc.UpdateApplicationStatus(ctx, req.ID, domain.ApplicationStatus(req.Status))
	switch {
	case err == nil:
		return ginx.Result{}, nil
	case errors.Is(err, service.ErrApplicationNotFound):
		return withStatus(ctx, http.StatusNotFound, applicationNotFoundResult)
	case errors.Is(err, service.ErrInvalidStatus):
		return withStatus(ctx, http.StatusBadRequest, invalidApplicationResult)
	default:
		return systemErrorResult, err
	}
}
