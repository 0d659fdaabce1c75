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

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/studio/internal/email"
	emailmocks "github.com/ecodeclub/studio/internal/email/mocks"
	"github.com/ecodeclub/studio/internal/mission/internal/domain"
	"github.com/ecodeclub/studio/internal/mission/internal/event"
	"github.com/ecodeclub/studio/internal/mission/internal/repository"
	repomocks "github.com/ecodeclub/studio/internal/mission/internal/repository/mocks"
	"github.com/ecodeclub/studio/internal/pkg/sequencenumber"
	mqxmocks "github.com/ecodeclub/studio/internal/pkg/mqx/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const wantSN = "20240102-0001-ABCDEF"

var testMission = domain.Mission{
	ID:        1,
	Title:     "Studio Site",
	Status:    domain.MissionStatusRecruiting,
	TechStack: []string{"Go", "React"},
	Capacity:  3,
}

func testApplicant() domain.Applicant {
	return domain.Applicant{
		Name:         "Alice",
		Email:        "alice@example.com",
		Experience:   "5 years of Go",
		Availability: "weekends",
	}
}

func TestService_Apply(t *testing.T) {
	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) (repository.MissionRepository, email.Service, event.MissionApplicationEventProducer)
		missionID int64
		applicant domain.Applicant

		wantNotified bool
		wantID       int64
		wantErr      error
	}{
		{
			name: "申请成功",
			mock: func(ctrl *gomock.Controller) (repository.MissionRepository, email.Service, event.MissionApplicationEventProducer) {
				repo := repomocks.NewMockMissionRepository(ctrl)
				mailer := emailmocks.NewMockService(ctrl)
				producer := mqxmocks.NewMockProducer[event.MissionApplicationEvent](ctrl)
				gomock.InOrder(
					repo.EXPECT().FindApplication(gomock.Any(), int64(1), "alice@example.com").
						Return(domain.Application{}, repository.ErrApplicationNotFound),
					repo.EXPECT().FindMission(gomock.Any(), int64(1)).Return(testMission, nil),
					repo.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).
						DoAndReturn(func(ctx context.Context, app domain.Application) (int64, error) {
							assert.Equal(t, wantSN, app.SN)
							assert.Equal(t, domain.ApplicationStatusPending, app.Status)
							assert.Equal(t, testApplicant(), app.Applicant)
							return 10, nil
						}),
					mailer.EXPECT().SendMail(gomock.Any(), gomock.Any()).
						DoAndReturn(func(ctx context.Context, mail email.Mail) error {
							assert.Equal(t, "alice@example.com", mail.To)
							assert.Contains(t, string(mail.Body), "Alice")
							assert.Contains(t, string(mail.Body), "Studio Site")
							assert.Contains(t, string(mail.Body), wantSN)
							return nil
						}),
					producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
						DoAndReturn(func(ctx context.Context, evt event.MissionApplicationEvent) error {
							assert.Equal(t, int64(10), evt.ApplicationID)
							assert.Equal(t, "Studio Site", evt.MissionTitle)
							assert.True(t, evt.Notified)
							return nil
						}),
				)
				return repo, mailer, producer
			},
			missionID:    1,
			applicant:    testApplicant(),
			wantNotified: true,
			wantID:       10,
		},
		{
			name: "邮箱先规范化再查重",
			mock: func(ctrl *gomock.Controller) (repository.MissionRepository, email.Service, event.MissionApplicationEventProducer) {
				repo := repomocks.NewMockMissionRepository(ctrl)
				repo.EXPECT().FindApplication(gomock.Any(), int64(1), "alice@example.com").
					Return(domain.Application{ID: 3}, nil)
				return repo, emailmocks.NewMockService(ctrl), mqxmocks.NewMockProducer[event.MissionApplicationEvent](ctrl)
			},
			missionID: 1,
			applicant: func() domain.Applicant {
				a := testApplicant()
				a.Email = "  Alice@Example.COM "
				return a
			}(),
			wantErr: ErrDuplicatedApplication,
		},
		{
			name: "任务不存在，不会入库",
			mock: func(ctrl *gomock.Controller) (repository.MissionRepository, email.Service, event.MissionApplicationEventProducer) {
				repo := repomocks.NewMockMissionRepository(ctrl)
				repo.EXPECT().FindApplication(gomock.Any(), int64(404), "alice@example.com").
					Return(domain.Application{}, repository.ErrApplicationNotFound)
				repo.EXPECT().FindMission(gomock.Any(), int64(404)).
					Return(domain.Mission{}, repository.ErrMissionNotFound)
				return repo, emailmocks.NewMockService(ctrl), mqxmocks.NewMockProducer[event.MissionApplicationEvent](ctrl)
			},
			missionID: 404,
			applicant: testApplicant(),
			wantErr:   ErrMissionNotFound,
		},
		{
			name: "并发提交，唯一索引冲突",
			mock: func(ctrl *gomock.Controller) (repository.MissionRepository, email.Service, event.MissionApplicationEventProducer) {
				repo := repomocks.NewMockMissionRepository(ctrl)
				repo.EXPECT().FindApplication(gomock.Any(), int64(1), "alice@example.com").
					Return(domain.Application{}, repository.ErrApplicationNotFound)
				repo.EXPECT().FindMission(gomock.Any(), int64(1)).Return(testMission, nil)
				repo.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).
					Return(int64(0), repository.ErrDuplicatedApplication)
				return repo, emailmocks.NewMockService(ctrl), mqxmocks.NewMockProducer[event.MissionApplicationEvent](ctrl)
			},
			missionID: 1,
			applicant: testApplicant(),
			wantErr:   ErrDuplicatedApplication,
		},
		{
			name: "邮件发送失败，申请依旧成功",
			mock: func(ctrl *gomock.Controller) (repository.MissionRepository, email.Service, event.MissionApplicationEventProducer) {
				repo := repomocks.NewMockMissionRepository(ctrl)
				mailer := emailmocks.NewMockService(ctrl)
				producer := mqxmocks.NewMockProducer[event.MissionApplicationEvent](ctrl)
				repo.EXPECT().FindApplication(gomock.Any(), int64(1), "alice@example.com").
					Return(domain.Application{}, repository.ErrApplicationNotFound)
				repo.EXPECT().FindMission(gomock.Any(), int64(1)).Return(testMission, nil)
				repo.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).Return(int64(11), nil)
				mailer.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(errors.New("provider down")).Times(1)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.MissionApplicationEvent) error {
						assert.False(t, evt.Notified)
						return nil
					})
				return repo, mailer, producer
			},
			missionID:    1,
			applicant:    testApplicant(),
			wantNotified: false,
			wantID:       11,
		},
		{
			name: "事件发送失败，申请依旧成功",
			mock: func(ctrl *gomock.Controller) (repository.MissionRepository, email.Service, event.MissionApplicationEventProducer) {
				repo := repomocks.NewMockMissionRepository(ctrl)
				mailer := emailmocks.NewMockService(ctrl)
				producer := mqxmocks.NewMockProducer[event.MissionApplicationEvent](ctrl)
				repo.EXPECT().FindApplication(gomock.Any(), int64(1), "alice@example.com").
					Return(domain.Application{}, repository.ErrApplicationNotFound)
				repo.EXPECT().FindMission(gomock.Any(), int64(1)).Return(testMission, nil)
				repo.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).Return(int64(12), nil)
				mailer.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq down"))
				return repo, mailer, producer
			},
			missionID:    1,
			applicant:    testApplicant(),
			wantNotified: true,
			wantID:       12,
		},
		{
			name: "申请信息不合法",
			mock: func(ctrl *gomock.Controller) (repository.MissionRepository, email.Service, event.MissionApplicationEventProducer) {
				return repomocks.NewMockMissionRepository(ctrl), emailmocks.NewMockService(ctrl),
					mqxmocks.NewMockProducer[event.MissionApplicationEvent](ctrl)
			},
			missionID: 1,
			applicant: domain.Applicant{Name: "Bob", Email: "not-an-email", Experience: "x", Availability: "y"},
			wantErr:   ErrInvalidApplication,
		},
		{
			name: "查重的时候数据库出错",
			mock: func(ctrl *gomock.Controller) (repository.MissionRepository, email.Service, event.MissionApplicationEventProducer) {
				repo := repomocks.NewMockMissionRepository(ctrl)
				repo.EXPECT().FindApplication(gomock.Any(), int64(1), "alice@example.com").
					Return(domain.Application{}, errors.New("db error"))
				return repo, emailmocks.NewMockService(ctrl), mqxmocks.NewMockProducer[event.MissionApplicationEvent](ctrl)
			},
			missionID: 1,
			applicant: testApplicant(),
			wantErr:   errUnexpected,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, mailer, producer := tc.mock(ctrl)
			svc := NewService(repo, mailer, producer, newTestGenerator())
			res, err := svc.Apply(context.Background(), tc.missionID, tc.applicant)
			if tc.wantErr == errUnexpected {
				require.Error(t, err)
				assert.False(t, errors.Is(err, ErrDuplicatedApplication))
				assert.False(t, errors.Is(err, ErrMissionNotFound))
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantID, res.Application.ID)
			assert.Equal(t, wantSN, res.Application.SN)
			assert.Equal(t, tc.wantNotified, res.Notified)
			assert.Equal(t, testMission, res.Mission)
		})
	}
}

var errUnexpected = errors.New("任意的系统错误")

func TestService_ListMissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockMissionRepository(ctrl)
	repo.EXPECT().ListMissions(gomock.Any(), domain.MissionStatusRecruiting, 0, 10).
		Return([]domain.Mission{testMission}, nil)
	svc := NewService(repo, emailmocks.NewMockService(ctrl),
		mqxmocks.NewMockProducer[event.MissionApplicationEvent](ctrl), newTestGenerator())

	res, err := svc.ListMissions(context.Background(), domain.MissionStatusRecruiting, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.Mission{testMission}, res)

	// 未知的状态直接返回空
	res, err = svc.ListMissions(context.Background(), "archived", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func newTestGenerator() *sequencenumber.Generator {
	return sequencenumber.NewGeneratorWith(func() time.Time {
		return time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	}, func() string {
		return "abcdefgh"
	})
}
