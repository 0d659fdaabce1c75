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

package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound        = gorm.ErrRecordNotFound
	ErrDuplicatedApplication = errors.New("重复的申请")
)

const uniqueIndexErrNo uint16 = 1062

//go:generate mockgen -source=./mission.go -package=daomocks -destination=mocks/mission.mock.go MissionDAO
type MissionDAO interface {
	FindMissionByID(ctx context.Context, id int64) (Mission, error)
	// ListMissions status 为空的时候不过滤
	ListMissions(ctx context.Context, status string, offset, limit int) ([]Mission, error)

	FindApplication(ctx context.Context, missionID int64, email string) (MissionApplication, error)
	FindApplicationByID(ctx context.Context, id int64) (MissionApplication, error)
	// CreateApplication 唯一索引冲突返回 ErrDuplicatedApplication
	CreateApplication(ctx context.Context, app MissionApplication) (int64, error)
	ListApplications(ctx context.Context, missionID int64, offset, limit int) ([]MissionApplication, error)
	CountApplications(ctx context.Context, missionID int64) (int64, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status string) error
}

type GORMMissionDAO struct {
	db *egorm.Component
}

func NewGORMMissionDAO(db *egorm.Component) MissionDAO {
	return &GORMMissionDAO{db: db}
}

func (d *GORMMissionDAO) FindMissionByID(ctx context.Context, id int64) (Mission, error) {
	var m Mission
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	return m, err
}

func (d *GORMMissionDAO) ListMissions(ctx context.Context, status string, offset, limit int) ([]Mission, error) {
	var res []Mission
	db := d.db.WithContext(ctx)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *GORMMissionDAO) FindApplication(ctx context.Context, missionID int64, email string) (MissionApplication, error) {
	var app MissionApplication
	err := d.db.WithContext(ctx).
		Where("mission_id = ? AND email = ?", missionID, email).
		First(&app).Error
	return app, err
}

func (d *GORMMissionDAO) FindApplicationByID(ctx context.Context, id int64) (MissionApplication, error) {
	var app MissionApplication
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&app).Error
	return app, err
}

func (d *GORMMissionDAO) CreateApplication(ctx context.Context, app MissionApplication) (int64, error) {
	now := time.Now().UnixMilli()
	app.Ctime = now
	app.Utime = now
	err := d.db.WithContext(ctx).Create(&app).Error
	var me *mysql.MySQLError
	// 编号冲突也是 1062，但是那不是重复申请
	if errors.As(err, &me) && me.Number == uniqueIndexErrNo &&
		!strings.Contains(me.Message, "uniq_sn") {
		return 0, ErrDuplicatedApplication
	}
	return app.ID, err
}

func (d *GORMMissionDAO) ListApplications(ctx context.Context, missionID int64, offset, limit int) ([]MissionApplication, error) {
	var res []MissionApplication
	db := d.db.WithContext(ctx)
	if missionID > 0 {
		db = db.Where("mission_id = ?", missionID)
	}
	err := db.Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *GORMMissionDAO) CountApplications(ctx context.Context, missionID int64) (int64, error) {
	var cnt int64
	db := d.db.WithContext(ctx).Model(&MissionApplication{})
	if missionID > 0 {
		db = db.Where("mission_id = ?", missionID)
	}
	err := db.Count(&cnt).Error
	return cnt, err
}

func (d *GORMMissionDAO) UpdateApplicationStatus(ctx context.Context, id int64, status string) error {
	return d.db.WithContext(ctx).Model(&MissionApplication{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}
