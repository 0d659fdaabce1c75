//go:build e2e

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

package integration

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/studio/internal/email"
	emailmocks "github.com/ecodeclub/studio/internal/email/mocks"
	"github.com/ecodeclub/studio/internal/mission"
	"github.com/ecodeclub/studio/internal/mission/internal/errs"
	"github.com/ecodeclub/studio/internal/mission/internal/event"
	"github.com/ecodeclub/studio/internal/mission/internal/repository/dao"
	"github.com/ecodeclub/studio/internal/mission/internal/web"
	"github.com/ecodeclub/studio/internal/test"
	testioc "github.com/ecodeclub/studio/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HandlerTestSuite struct {
	suite.Suite
	db          *egorm.Component
	server      *egin.Component
	adminServer *egin.Component
	mailer      *emailmocks.MockService
	consumer    mq.Consumer
}

func TestMissionHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupSuite() {
	db := testioc.InitDB()
	q := testioc.InitMQ()
	ctrl := gomock.NewController(s.T())
	s.mailer = emailmocks.NewMockService(ctrl)
	mou := mission.InitModule(db, testioc.InitCache(), q, s.mailer)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	mou.Hdl.PublicRoutes(server.Engine)
	adminServer := egin.Load("server").Build()
	mou.AdminHdl.PrivateRoutes(adminServer.Engine)

	consumer, err := q.Consumer(event.MissionApplicationEventName, "mission.integration")
	require.NoError(s.T(), err)

	s.db = db
	s.server = server
	s.adminServer = adminServer
	s.consumer = consumer
}

func (s *HandlerTestSuite) SetupTest() {
	now := time.Now().UnixMilli()
	err := s.db.Create(&dao.Mission{
		ID:        1,
		Title:     "Studio Site",
		Status:    "recruiting",
		TechStack: sqlx.JsonColumn[[]string]{Val: []string{"Go", "React"}, Valid: true},
		Duration:  "6 weeks",
		TeamSize:  4,
		Filled:    1,
		Capacity:  4,
		Ctime:     now,
		Utime:     now,
	}).Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `missions`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `mission_applications`").Error
	require.NoError(s.T(), err)
	_, err = testioc.InitCache().Delete(context.Background(), "mission:detail:1")
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestApply() {
	t := s.T()
	s.mailer.EXPECT().SendMail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mail email.Mail) error {
			assert.Equal(t, "alice@example.com", mail.To)
			return nil
		})

	req := web.ApplyReq{
		MissionID:    1,
		Name:         "Alice",
		Email:        " Alice@Example.com",
		Experience:   "5 years of Go",
		Availability: "weekends",
	}
	recorder := post[web.ApplyResp](t, s.server, "/mission/apply", req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	assert.True(t, res.Data.Success)
	assert.True(t, res.Data.Notified)
	assert.NotEmpty(t, res.Data.SN)

	var app dao.MissionApplication
	err := s.db.Where("mission_id = ? AND email = ?", 1, "alice@example.com").First(&app).Error
	require.NoError(t, err)
	assert.Equal(t, "pending", app.Status)
	assert.Equal(t, res.Data.SN, app.SN)
	assert.Equal(t, "Alice", app.ApplicationData.Val.Name)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	msg, err := s.consumer.Consume(ctx)
	require.NoError(t, err)
	var evt event.MissionApplicationEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	assert.Equal(t, app.ID, evt.ApplicationID)
	assert.Equal(t, "Studio Site", evt.MissionTitle)

	// 第二次提交被拒绝，并且不会产生第二条记录
	recorder = post[web.ApplyResp](t, s.server, "/mission/apply", req)
	require.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, errs.ApplicationDuplicated.Code, recorder.MustScan().Code)
	var cnt int64
	err = s.db.Model(&dao.MissionApplication{}).Where("mission_id = ?", 1).Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}

func (s *HandlerTestSuite) TestApplyWhenMailFailed() {
	t := s.T()
	s.mailer.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(errors.New("provider down"))
	recorder := post[web.ApplyResp](t, s.server, "/mission/apply", web.ApplyReq{
		MissionID:    1,
		Name:         "Bob",
		Email:        "bob@example.com",
		Experience:   "junior",
		Availability: "evenings",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	assert.True(t, res.Data.Success)
	assert.False(t, res.Data.Notified)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, err := s.consumer.Consume(ctx)
	require.NoError(t, err)
}

func (s *HandlerTestSuite) TestApplyFailed() {
	testCases := []struct {
		name     string
		req      any
		wantCode int
		wantResp test.Result[web.ApplyResp]
	}{
		{
			name: "任务不存在",
			req: web.ApplyReq{
				MissionID:    404,
				Name:         "Alice",
				Email:        "alice@example.com",
				Experience:   "5 years",
				Availability: "weekends",
			},
			wantCode: http.StatusNotFound,
			wantResp: test.Result[web.ApplyResp]{
				Code: errs.MissionNotFound.Code,
				Msg:  errs.MissionNotFound.Msg,
			},
		},
		{
			name: "邮箱格式错误",
			req: web.ApplyReq{
				MissionID:    1,
				Name:         "Alice",
				Email:        "alice",
				Experience:   "5 years",
				Availability: "weekends",
			},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[web.ApplyResp]{
				Code: errs.InvalidApplication.Code,
				Msg:  errs.InvalidApplication.Msg,
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			recorder := post[web.ApplyResp](t, s.server, "/mission/apply", tc.req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())

			var cnt int64
			err := s.db.Model(&dao.MissionApplication{}).Count(&cnt).Error
			require.NoError(t, err)
			assert.Equal(t, int64(0), cnt)
		})
	}

	// 缺少必填字段，绑定失败
	recorder := post[web.ApplyResp](s.T(), s.server, "/mission/apply", map[string]any{"missionId": 1})
	assert.Equal(s.T(), http.StatusBadRequest, recorder.Code)
}

func (s *HandlerTestSuite) TestListAndDetail() {
	t := s.T()
	recorder := post[web.MissionList](t, s.server, "/mission/list", web.ListMissionReq{Status: "recruiting"})
	require.Equal(t, http.StatusOK, recorder.Code)
	list := recorder.MustScan()
	require.Len(t, list.Data.Missions, 1)
	assert.Equal(t, web.Mission{
		ID:         1,
		Title:      "Studio Site",
		Status:     "recruiting",
		StatusText: "Recruiting",
		TechStack:  []string{"Go", "React"},
		Duration:   "6 weeks",
		TeamSize:   4,
		Filled:     1,
		Capacity:   4,
	}, list.Data.Missions[0])

	detail := post[web.Mission](t, s.server, "/mission/detail", web.MissionID{ID: 404})
	assert.Equal(t, http.StatusNotFound, detail.Code)
	assert.Equal(t, errs.MissionNotFound.Code, detail.MustScan().Code)
}

func (s *HandlerTestSuite) TestAdminReview() {
	t := s.T()
	now := time.Now().UnixMilli()
	app := dao.MissionApplication{
		SN:        "20240101-0001-ABCDEF",
		MissionID: 1,
		Email:     "carol@example.com",
		ApplicationData: sqlx.JsonColumn[dao.ApplicationData]{
			Val:   dao.ApplicationData{Name: "Carol", Email: "carol@example.com"},
			Valid: true,
		},
		Status: "pending",
		Ctime:  now,
		Utime:  now,
	}
	require.NoError(t, s.db.Create(&app).Error)

	recorder := post[web.ApplicationList](t, s.adminServer, "/mission/application/list", web.ListApplicationReq{MissionID: 1})
	require.Equal(t, http.StatusOK, recorder.Code)
	list := recorder.MustScan()
	assert.Equal(t, int64(1), list.Data.Total)
	require.Len(t, list.Data.Applications, 1)
	assert.Equal(t, "Carol", list.Data.Applications[0].Name)

	update := post[any](t, s.adminServer, "/mission/application/update-status",
		web.UpdateStatusReq{ID: app.ID, Status: "accepted"})
	require.Equal(t, http.StatusOK, update.Code)
	var got dao.MissionApplication
	require.NoError(t, s.db.Where("id = ?", app.ID).First(&got).Error)
	assert.Equal(t, "accepted", got.Status)

	update = post[any](t, s.adminServer, "/mission/application/update-status",
		web.UpdateStatusReq{ID: app.ID, Status: "rejected"})
	assert.Equal(t, http.StatusBadRequest, update.Code)

	update = post[any](t, s.adminServer, "/mission/application/update-status",
		web.UpdateStatusReq{ID: app.ID + 100, Status: "rejected"})
	assert.Equal(t, http.StatusNotFound, update.Code)
}

func post[T any](t *testing.T, server *egin.Component, path string, body any) test.JSONResponseRecorder[T] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	return recorder
}
