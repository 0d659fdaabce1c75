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

	"github.com/ecodeclub/studio/internal/email"
	"github.com/ecodeclub/studio/internal/waitlist/internal/domain"
	"github.com/ecodeclub/studio/internal/waitlist/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ErrAlreadyJoined = repository.ErrAlreadyJoined
	ErrInvalidEmail  = errors.New("邮箱格式不正确")
)

const mailFrom = "Studio"

var joinCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "studio",
	Subsystem: "waitlist",
	Name:      "joins_total",
	Help:      "加入等待列表的处理结果",
}, []string{"result"})

//go:generate mockgen -source=./waitlist.go -package=svcmocks -destination=mocks/waitlist.mock.go Service
type Service interface {
	// Join 欢迎邮件发送失败不影响加入结果
	Join(ctx context.Context, email string) (domain.User, error)
	// SendWelcome 发送失败会返回错误
	SendWelcome(ctx context.Context, email, name string) error
}

type service struct {
	repo   repository.UserRepository
	mailer email.Service
	logger *elog.Component
}

func NewService(repo repository.UserRepository, mailer email.Service) Service {
	return &service{
		repo:   repo,
		mailer: mailer,
		logger: elog.DefaultLogger.With(elog.FieldComponent("waitlist.service")),
	}
}

func (s *service) Join(ctx context.Context, addr string) (domain.User, error) {
	u, err := s.join(ctx, addr)
	joinCounter.WithLabelValues(joinResult(err)).Inc()
	return u, err
}

func (s *service) join(ctx context.Context, addr string) (domain.User, error) {
	addr = domain.NormalizeEmail(addr)
	if err := domain.ValidateEmail(addr); err != nil {
		return domain.User{}, fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	}
	_, err := s.repo.FindByEmail(ctx, addr)
	if err == nil {
		return domain.User{}, ErrAlreadyJoined
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, fmt.Errorf("查询等待列表失败: %w", err)
	}
	u := domain.User{
		Email:  addr,
		Status: domain.UserStatusWaitlist,
	}
	// 并发加入由唯一索引兜底
	u.ID, err = s.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	if err = s.sendWelcome(ctx, addr, ""); err != nil {
		s.logger.Error("发送欢迎邮件失败",
			elog.FieldErr(err),
			elog.Int64("uid", u.ID))
	}
	return u, nil
}

func (s *service) SendWelcome(ctx context.Context, addr, name string) error {
	addr = domain.NormalizeEmail(addr)
	if err := domain.ValidateEmail(addr); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	}
	return s.sendWelcome(ctx, addr, name)
}

func (s *service) sendWelcome(ctx context.Context, addr, name string) error {
	body, err := renderWelcome(welcomeData{Name: name})
	if err != nil {
		return err
	}
	return s.mailer.SendMail(ctx, email.Mail{
		From:    mailFrom,
		To:      addr,
		Subject: welcomeSubject,
		Body:    body,
	})
}

func joinResult(err error) string {
	switch {
	case err == nil:
		return "joined"
	case errors.Is(err, ErrAlreadyJoined):
		return "duplicate"
	case errors.Is(err, ErrInvalidEmail):
		return "invalid"
	default:
		return "error"
	}
}
