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
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/studio/internal/mission/internal/domain"
	"github.com/ecodeclub/studio/internal/mission/internal/errs"
	"github.com/ecodeclub/studio/internal/mission/internal/service"
	svcmocks "github.com/ecodeclub/studio/internal/mission/internal/service/mocks"
	"github.com/ecodeclub/studio/internal/test"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validApplyReq() ApplyReq {
	return ApplyReq{
		MissionID:    1,
		Name:         "Alice",
		Email:        "alice@example.com",
		Experience:   "5 years of Go",
		Availability: "weekends",
	}
}

func TestHandler_Apply(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Service
		req      any
		wantCode int
		wantResp test.Result[ApplyResp]
	}{
		{
			name: "申请成功",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Apply(gomock.Any(), int64(1), validApplyReq().toApplicant()).
					Return(domain.ApplyResult{
						Application: domain.Application{SN: "SN-1"},
						Notified:    true,
					}, nil)
				return svc
			},
			req:      validApplyReq(),
			wantCode: http.StatusOK,
			wantResp: test.Result[ApplyResp]{
				Msg:  msgApplied,
				Data: ApplyResp{Success: true, Message: msgApplied, SN: "SN-1", Notified: true},
			},
		},
		{
			name: "申请成功但确认邮件没有发出去",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Apply(gomock.Any(), int64(1), gomock.Any()).
					Return(domain.ApplyResult{Application: domain.Application{SN: "SN-2"}}, nil)
				return svc
			},
			req:      validApplyReq(),
			wantCode: http.StatusOK,
			wantResp: test.Result[ApplyResp]{
				Msg:  msgAppliedNoNotice,
				Data: ApplyResp{Success: true, Message: msgAppliedNoNotice, SN: "SN-2"},
			},
		},
		{
			name: "重复申请",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Apply(gomock.Any(), int64(1), gomock.Any()).
					Return(domain.ApplyResult{}, service.ErrDuplicatedApplication)
				return svc
			},
			req:      validApplyReq(),
			wantCode: http.StatusConflict,
			wantResp: test.Result[ApplyResp]{
				Code: errs.ApplicationDuplicated.Code,
				Msg:  errs.ApplicationDuplicated.Msg,
			},
		},
		{
			name: "任务不存在",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Apply(gomock.Any(), int64(1), gomock.Any()).
					Return(domain.ApplyResult{}, service.ErrMissionNotFound)
				return svc
			},
			req:      validApplyReq(),
			wantCode: http.StatusNotFound,
			wantResp: test.Result[ApplyResp]{
				Code: errs.MissionNotFound.Code,
				Msg:  errs.MissionNotFound.Msg,
			},
		},
		{
			name: "申请信息不合法",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Apply(gomock.Any(), int64(1), gomock.Any()).
					Return(domain.ApplyResult{}, service.ErrInvalidApplication)
				return svc
			},
			req:      validApplyReq(),
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[ApplyResp]{
				Code: errs.InvalidApplication.Code,
				Msg:  errs.InvalidApplication.Msg,
			},
		},
		{
			name: "系统错误不暴露细节",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Apply(gomock.Any(), int64(1), gomock.Any()).
					Return(domain.ApplyResult{}, errors.New("dial tcp 10.0.0.1:3306: i/o timeout"))
				return svc
			},
			req:      validApplyReq(),
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[ApplyResp]{
				Code: errs.SystemError.Code,
				Msg:  errs.SystemError.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newTestServer()
			NewHandler(tc.mock(ctrl)).PublicRoutes(server.Engine)

			req, err := http.NewRequest(http.MethodPost, "/mission/apply", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[ApplyResp]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_Apply_Binding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newTestServer()
	// 缺少必填字段的时候不会调用 service
	NewHandler(svcmocks.NewMockService(ctrl)).PublicRoutes(server.Engine)

	req, err := http.NewRequest(http.MethodPost, "/mission/apply",
		iox.NewJSONReader(ApplyReq{MissionID: 1, Email: "alice@example.com"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[ApplyResp]()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAdminHandler_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.AdminService
		req      UpdateStatusReq
		wantCode int
	}{
		{
			name: "审核通过",
			mock: func(ctrl *gomock.Controller) service.AdminService {
				svc := svcmocks.NewMockAdminService(ctrl)
				svc.EXPECT().UpdateApplicationStatus(gomock.Any(), int64(3), domain.ApplicationStatusAccepted).Return(nil)
				return svc
			},
			req:      UpdateStatusReq{ID: 3, Status: "accepted"},
			wantCode: http.StatusOK,
		},
		{
			name: "申请不存在",
			mock: func(ctrl *gomock.Controller) service.AdminService {
				svc := svcmocks.NewMockAdminService(ctrl)
				svc.EXPECT().UpdateApplicationStatus(gomock.Any(), int64(3), domain.ApplicationStatusRejected).
					Return(service.ErrApplicationNotFound)
				return svc
			},
			req:      UpdateStatusReq{ID: 3, Status: "rejected"},
			wantCode: http.StatusNotFound,
		},
		{
			name: "已经审核过",
			mock: func(ctrl *gomock.Controller) service.AdminService {
				svc := svcmocks.NewMockAdminService(ctrl)
				svc.EXPECT().UpdateApplicationStatus(gomock.Any(), int64(3), domain.ApplicationStatusRejected).
					Return(service.ErrInvalidStatus)
				return svc
			},
			req:      UpdateStatusReq{ID: 3, Status: "rejected"},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "不能改回 pending",
			mock: func(ctrl *gomock.Controller) service.AdminService {
				return svcmocks.NewMockAdminService(ctrl)
			},
			req:      UpdateStatusReq{ID: 3, Status: "pending"},
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newTestServer()
			NewAdminHandler(tc.mock(ctrl)).PrivateRoutes(server.Engine)

			req, err := http.NewRequest(http.MethodPost, "/mission/application/update-status", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}

func newTestServer() *egin.Component {
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	return egin.Load("server").Build()
}
