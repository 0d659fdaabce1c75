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
	"github.com/ecodeclub/ekit/sqlx"
)

type Mission struct {
	ID          int64                     `gorm:"primaryKey;autoIncrement;column:id"`
	Title       string                    `gorm:"type:varchar(256);not null"`
	Description string                    `gorm:"type:text"`
	Status      string                    `gorm:"type:varchar(32);index;comment:recruiting/in_progress/completed"`
	TechStack   sqlx.JsonColumn[[]string] `gorm:"type:varchar(1024)"`
	Duration    string                    `gorm:"type:varchar(64)"`
	TeamSize    int
	Filled      int
	Capacity    int
	Ctime       int64
	Utime       int64
}

// MissionApplication 同一个任务同一个邮箱只能有一条
type MissionApplication struct {
	ID        int64  `gorm:"primaryKey;autoIncrement;column:id"`
	SN        string `gorm:"type:varchar(64);uniqueIndex:uniq_sn;column:sn"`
	MissionID int64  `gorm:"not null;uniqueIndex:uniq_mission_email"`
	// Email 规范化之后的邮箱
	Email           string                           `gorm:"type:varchar(254);not null;uniqueIndex:uniq_mission_email"`
	ApplicationData sqlx.JsonColumn[ApplicationData] `gorm:"type:json;comment:申请人填写的资料"`
	Status          string                           `gorm:"type:varchar(32);index;comment:pending/accepted/rejected"`
	Ctime           int64
	Utime           int64
}

type ApplicationData struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Experience   string `json:"experience"`
	Availability string `json:"availability"`
	Portfolio    string `json:"portfolio,omitempty"`
	Motivation   string `json:"motivation,omitempty"`
}
