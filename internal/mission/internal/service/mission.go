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
	"fmt"
	"strconv"
	"time"

	"github.com/ecodeclub/studio/internal/email"
	"github.com/ecodeclub/studio/internal/mission/internal/domain"
	"github.com/ecodeclub/studio/internal/mission/internal/event"
	"github.com/ecodeclub/studio/internal/mission/internal/repository"
	"github.com/ecodeclub/studio/internal/pkg/sequencenumber"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrMissionNotFound       = repository.ErrMissionNotFound
	ErrDuplicatedApplication = repository.ErrDuplicatedApplication
	ErrApplicationNotFound   = repository.ErrApplicationNotFound
	ErrInvalidApplication    = errors.New("申请信息不合法")
	ErrInvalidStatus         = errors.New("非法的申请状态")
)

const mailFrom = "Studio"

//go:generate mockgen -source=./mission.go -package=svcmocks -destination=mocks/mission.mock.go Service
type Service interface {
	// Apply 入库成功就算申请成功，确认邮件和事件都是尽力而为
	Apply(ctx context.Context, missionID int64, applicant domain.Applicant) (domain.ApplyResult, error)
	ListMissions(ctx context.Context, status domain.MissionStatus, offset, limit int) ([]domain.Mission, error)
	MissionDetail(ctx context.Context, id int64) (domain.Mission, error)
}

type service struct {
	repo     repository.MissionRepository
	mailer   email.Service
	producer event.MissionApplicationEventProducer
	snGen    *sequencenumber.Generator
	logger   *elog.Component
}

func NewService(repo repository.MissionRepository,
	mailer email.Service,
	producer event.MissionApplicationEventProducer,
	snGen *sequencenumber.Generator) Service {
	return &service{
		repo:     repo,
		mailer:   mailer,
		producer: producer,
		snGen:    snGen,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("mission.service")),
	}
}

func (s *service) Apply(ctx context.Context, missionID int64, applicant domain.Applicant) (domain.ApplyResult, error) {
	res, err := s.apply(ctx, missionID, applicant)
	applyCounter.WithLabelValues(applyResult(err), strconv.FormatBool(res.Notified)).Inc()
	return res, err
}

func (s *service) apply(ctx context.Context, missionID int64, applicant domain.Applicant) (domain.ApplyResult, error) {
	applicant = applicant.Normalize()
	if err := applicant.Validate(); err != nil {
		return domain.ApplyResult{}, fmt.Errorf("%w: %w", ErrInvalidApplication, err)
	}

	_, err := s.repo.FindApplication(ctx, missionID, applicant.Email)
	if err == nil {
		return domain.ApplyResult{}, fmt.Errorf("%w: mid=%d", ErrDuplicatedApplication, missionID)
	}
	if !errors.Is(err, ErrApplicationNotFound) {
		return domain.ApplyResult{}, fmt.Errorf("检查重复申请失败: %w", err)
	}

	mission, err := s.repo.FindMission(ctx, missionID)
	if err != nil {
		return domain.ApplyResult{}, err
	}

	sn, err := s.snGen.Generate(missionID)
	if err != nil {
		return domain.ApplyResult{}, fmt.Errorf("生成申请编号失败: %w", err)
	}
	app := domain.Application{
		SN:        sn,
		MissionID: missionID,
		Applicant: applicant,
		Status:    domain.ApplicationStatusPending,
		Ctime:     time.Now(),
	}
	// 并发提交的时候预检查拦不住，唯一索引冲突同样返回 ErrDuplicatedApplication
	app.ID, err = s.repo.CreateApplication(ctx, app)
	if err != nil {
		return domain.ApplyResult{}, err
	}

	res := domain.ApplyResult{
		Application: app,
		Mission:     mission,
	}
	res.Notified = s.sendConfirmation(ctx, res)
	s.publish(ctx, res)
	return res, nil
}

// sendConfirmation 只发一次，失败只记录日志
func (s *service) sendConfirmation(ctx context.Context, res domain.ApplyResult) bool {
	app := res.Application
	body, err := renderConfirmation(confirmationData{
		Name:         app.Applicant.Name,
		MissionTitle: res.Mission.Title,
		SN:           app.SN,
	})
	if err == nil {
		err = s.mailer.SendMail(ctx, email.Mail{
			From:    mailFrom,
			To:      app.Applicant.Email,
			Subject: confirmationSubject,
			Body:    body,
		})
	}
	if err != nil {
		s.logger.Error("发送申请确认邮件失败",
			elog.FieldErr(err),
			elog.Int64("aid", app.ID),
			elog.String("sn", app.SN))
		return false
	}
	return true
}

func (s *service) publish(ctx context.Context, res domain.ApplyResult) {
	app := res.Application
	a := app.Applicant
	err := s.producer.Produce(ctx, event.MissionApplicationEvent{
		ApplicationID: app.ID,
		SN:            app.SN,
		MissionID:     app.MissionID,
		MissionTitle:  res.Mission.Title,
		Name:          a.Name,
		Email:         a.Email,
		Experience:    a.Experience,
		Availability:  a.Availability,
		Portfolio:     a.Portfolio,
		Motivation:    a.Motivation,
		Notified:      res.Notified,
		Ctime:         app.Ctime.UnixMilli(),
	})
	if err != nil {
		s.logger.Error("发送任务申请事件失败",
			elog.FieldErr(err),
			elog.Int64("aid", app.ID),
			elog.String("sn", app.SN))
	}
}

func (s *service) ListMissions(ctx context.Context, status domain.MissionStatus, offset, limit int) ([]domain.Mission, error) {
	if status != "" && !status.IsValid() {
		return []domain.Mission{}, nil
	}
	return s.repo.ListMissions(ctx, status, offset, limit)
}

func (s *service) MissionDetail(ctx context.Context, id int64) (domain.Mission, error) {
	return s.repo.FindMission(ctx, id)
}

func applyResult(err error) string {
	switch {
	case err == nil:
		return applyResultAccepted
	case errors.Is(err, ErrDuplicatedApplication):
		return applyResultDuplicate
	case errors.Is(err, ErrMissionNotFound):
		return applyResultNotFound
	case errors.Is(err, ErrInvalidApplication):
		return applyResultInvalid
	default:
		return applyResultError
	}
}
