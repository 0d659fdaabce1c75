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
	"time"

	"github.com/ecodeclub/studio/internal/mission/internal/domain"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type ListMissionReq struct {
	Status string `json:"status"`
	Offset int    `json:"offset,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

type MissionID struct {
	ID int64 `json:"id" binding:"required"`
}

type ApplyReq struct {
	MissionID int64  `json:"missionId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	// Email 规范化之后再校验格式
	Email        string `json:"email" binding:"required"`
	Experience   string `json:"experience" binding:"required"`
	Availability string `json:"availability" binding:"required"`
	Portfolio    string `json:"portfolio,omitempty"`
	Motivation   string `json:"motivation,omitempty"`
}

func (r ApplyReq) toApplicant() domain.Applicant {
	return domain.Applicant{
		Name:         r.Name,
		Email:        r.Email,
		Experience:   r.Experience,
		Availability: r.Availability,
		Portfolio:    r.Portfolio,
		Motivation:   r.Motivation,
	}
}

type ApplyResp struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	SN       string `json:"sn"`
	Notified bool   `json:"notified"`
}

type Mission struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	StatusText  string   `json:"statusText"`
	TechStack   []string `json:"techStack"`
	Duration    string   `json:"duration"`
	TeamSize    int      `json:"teamSize"`
	Filled      int      `json:"filled"`
	Capacity    int      `json:"capacity"`
}

type MissionList struct {
	Missions []Mission `json:"missions"`
}

func newMission(m domain.Mission) Mission {
	techStack := m.TechStack
	if techStack == nil {
		techStack = []string{}
	}
	return Mission{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Status:      string(m.Status),
		StatusText:  m.Status.DisplayName(),
		TechStack:   techStack,
		Duration:    m.Duration,
		TeamSize:    m.TeamSize,
		Filled:      m.Filled,
		Capacity:    m.Capacity,
	}
}

type ListApplicationReq struct {
	// MissionID 为 0 的时候列出全部
	MissionID int64 `json:"missionId"`
	Offset    int   `json:"offset,omitempty"`
	Limit     int   `json:"limit,omitempty"`
}

type UpdateStatusReq struct {
	ID     int64  `json:"id" binding:"required"`
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

type Application struct {
	ID           int64  `json:"id"`
	SN           string `json:"sn"`
	MissionID    int64  `json:"missionId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Experience   string `json:"experience"`
	Availability string `json:"availability"`
	Portfolio    string `json:"portfolio,omitempty"`
	Motivation   string `json:"motivation,omitempty"`
	Status       string `json:"status"`
	Ctime        string `json:"ctime"`
	Utime        string `json:"utime"`
}

type ApplicationList struct {
	Total        int64         `json:"total"`
	Applications []Application `json:"applications"`
}

func newApplication(app domain.Application) Application {
	a := app.Applicant
	return Application{
		ID:           app.ID,
		SN:           app.SN,
		MissionID:    app.MissionID,
		Name:         a.Name,
		Email:        a.Email,
		Experience:   a.Experience,
		Availability: a.Availability,
		Portfolio:    a.Portfolio,
		Motivation:   a.Motivation,
		Status:       string(app.Status),
		Ctime:        app.Ctime.Format(time.DateTime),
		Utime:        app.Utime.Format(time.DateTime),
	}
}

func normalizePage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return offset, min(limit, maxLimit)
}
