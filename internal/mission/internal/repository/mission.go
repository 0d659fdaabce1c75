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

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/studio/internal/mission/internal/domain"
	"github.com/ecodeclub/studio/internal/mission/internal/repository/cache"
	"github.com/ecodeclub/studio/internal/mission/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrMissionNotFound       = errors.New("任务不存在")
	ErrApplicationNotFound   = errors.New("申请不存在")
	ErrDuplicatedApplication = dao.ErrDuplicatedApplication
)

//go:generate mockgen -source=./mission.go -package=repomocks -destination=mocks/mission.mock.go MissionRepository
type MissionRepository interface {
	// FindMission 记录校验不通过的也当作不存在
	FindMission(ctx context.Context, id int64) (domain.Mission, error)
	ListMissions(ctx context.Context, status domain.MissionStatus, offset, limit int) ([]domain.Mission, error)

	FindApplication(ctx context.Context, missionID int64, email string) (domain.Application, error)
	FindApplicationByID(ctx context.Context, id int64) (domain.Application, error)
	CreateApplication(ctx context.Context, app domain.Application) (int64, error)
	ListApplications(ctx context.Context, missionID int64, offset, limit int) ([]domain.Application, error)
	CountApplications(ctx context.Context, missionID int64) (int64, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error
}

type missionRepository struct {
	dao    dao.MissionDAO
	cache  cache.MissionCache
	logger *elog.Component
}

func NewMissionRepository(d dao.MissionDAO, c cache.MissionCache) MissionRepository {
	return &missionRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger.With(elog.FieldComponent("mission.repository")),
	}
}

func (r *missionRepository) FindMission(ctx context.Context, id int64) (domain.Mission, error) {
	m, err := r.cache.GetMission(ctx, id)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, cache.ErrMissionNotFound) {
		r.logger.Warn("查询任务缓存失败", elog.FieldErr(err), elog.Int64("mid", id))
	}
	dm, err := r.dao.FindMissionByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Mission{}, fmt.Errorf("%w: id=%d", ErrMissionNotFound, id)
	}
	if err != nil {
		return domain.Mission{}, err
	}
	m = r.toDomainMission(dm)
	if err = m.Validate(); err != nil {
		r.logger.Error("任务数据不合法", elog.FieldErr(err), elog.Int64("mid", id))
		return domain.Mission{}, fmt.Errorf("%w: id=%d: %w", ErrMissionNotFound, id, err)
	}
	if er := r.cache.SetMission(ctx, m); er != nil {
		r.logger.Warn("回写任务缓存失败", elog.FieldErr(er), elog.Int64("mid", id))
	}
	return m, nil
}

func (r *missionRepository) ListMissions(ctx context.Context, status domain.MissionStatus, offset, limit int) ([]domain.Mission, error) {
	missions, err := r.dao.ListMissions(ctx, string(status), offset, limit)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Mission, 0, len(missions))
	for _, dm := range missions {
		m := r.toDomainMission(dm)
		if er := m.Validate(); er != nil {
			r.logger.Error("任务数据不合法，忽略", elog.FieldErr(er), elog.Int64("mid", dm.ID))
			continue
		}
		res = append(res, m)
	}
	return res, nil
}

func (r *missionRepository) FindApplication(ctx context.Context, missionID int64, email string) (domain.Application, error) {
	app, err := r.dao.FindApplication(ctx, missionID, email)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Application{}, ErrApplicationNotFound
	}
	if err != nil {
		return domain.Application{}, err
	}
	return r.toDomainApplication(app), nil
}

func (r *missionRepository) FindApplicationByID(ctx context.Context, id int64) (domain.Application, error) {
	app, err := r.dao.FindApplicationByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Application{}, ErrApplicationNotFound
	}
	if err != nil {
		return domain.Application{}, err
	}
	return r.toDomainApplication(app), nil
}

func (r *missionRepository) CreateApplication(ctx context.Context, app domain.Application) (int64, error) {
	return r.dao.CreateApplication(ctx, r.toDAOApplication(app))
}

func (r *missionRepository) ListApplications(ctx context.Context, missionID int64, offset, limit int) ([]domain.Application, error) {
	apps, err := r.dao.ListApplications(ctx, missionID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(apps, func(idx int, src dao.MissionApplication) domain.Application {
		return r.toDomainApplication(src)
	}), nil
}

func (r *missionRepository) CountApplications(ctx context.Context, missionID int64) (int64, error) {
	return r.dao.CountApplications(ctx, missionID)
}

func (r *missionRepository) UpdateApplicationStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	return r.dao.UpdateApplicationStatus(ctx, id, string(status))
}

func (r *missionRepository) toDomainMission(m dao.Mission) domain.Mission {
	return domain.Mission{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Status:      domain.MissionStatus(m.Status),
		TechStack:   m.TechStack.Val,
		Duration:    m.Duration,
		TeamSize:    m.TeamSize,
		Filled:      m.Filled,
		Capacity:    m.Capacity,
		Ctime:       time.UnixMilli(m.Ctime),
		Utime:       time.UnixMilli(m.Utime),
	}
}

func (r *missionRepository) toDomainApplication(app dao.MissionApplication) domain.Application {
	data := app.ApplicationData.Val
	return domain.Application{
		ID:        app.ID,
		SN:        app.SN,
		MissionID: app.MissionID,
		Applicant: domain.Applicant{
			Name:         data.Name,
			Email:        app.Email,
			Experience:   data.Experience,
			Availability: data.Availability,
			Portfolio:    data.Portfolio,
			Motivation:   data.Motivation,
		},
		Status: domain.ApplicationStatus(app.Status),
		Ctime:  time.UnixMilli(app.Ctime),
		Utime:  time.UnixMilli(app.Utime),
	}
}

func (r *missionRepository) toDAOApplication(app domain.Application) dao.MissionApplication {
	a := app.Applicant
	return dao.MissionApplication{
		ID:        app.ID,
		SN:        app.SN,
		MissionID: app.MissionID,
		Email:     a.Email,
		ApplicationData: sqlx.JsonColumn[dao.ApplicationData]{
			Val: dao.ApplicationData{
				Name:         a.Name,
				Email:        a.Email,
				Experience:   a.Experience,
				Availability: a.Availability,
				Portfolio:    a.Portfolio,
				Motivation:   a.Motivation,
			},
			Valid: true,
		},
		Status: string(app.Status),
	}
}
