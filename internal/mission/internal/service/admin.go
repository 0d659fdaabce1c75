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
	"fmt"

	"github.com/ecodeclub/studio/internal/mission/internal/domain"
	"github.com/ecodeclub/studio/internal/mission/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./admin.go -package=svcmocks -destination=mocks/admin.mock.go AdminService
type AdminService interface {
	// ListApplications missionID 为 0 的时候列出全部
	ListApplications(ctx context.Context, missionID int64, offset, limit int) ([]domain.Application, int64, error)
	// UpdateApplicationStatus 只能从 pending 变成 accepted 或者 rejected
	UpdateApplicationStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error
}

type adminService struct {
	repo   repository.MissionRepository
	logger *elog.Component
}

func NewAdminService(repo repository.MissionRepository) AdminService {
	return &adminService{
		repo:   repo,
		logger: elog.DefaultLogger.With(elog.FieldComponent("mission.admin")),
	}
}

func (s *adminService) ListApplications(ctx context.Context, missionID int64, offset, limit int) ([]domain.Application, int64, error) {
	var (
		eg    errgroup.Group
		apps  []domain.Application
		total int64
	)
	eg.Go(func() error {
		var err error
		apps, err = s.repo.ListApplications(ctx, missionID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountApplications(ctx, missionID)
		return err
	})
	return apps, total, eg.Wait()
}

func (s *adminService) UpdateApplicationStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	if status != domain.ApplicationStatusAccepted && status != domain.ApplicationStatusRejected {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	app, err := s.repo.FindApplicationByID(ctx, id)
	if err != nil {
		return err
	}
	if app.Status == status {
		return nil
	}
	if app.Status != domain.ApplicationStatusPending {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatus, app.Status, status)
	}
	err = s.repo.UpdateApplicationStatus(ctx, id, status)
	if err == nil {
		s.logger.Info("更新申请状态", elog.Int64("aid", id), elog.String("status", string(status)))
	}
	return err
}
