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

package domain

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type MissionStatus string

const (
	MissionStatusRecruiting MissionStatus = "recruiting"
	MissionStatusInProgress MissionStatus = "in_progress"
	MissionStatusCompleted  MissionStatus = "completed"
)

var missionStatusNames = map[MissionStatus]string{
	MissionStatusRecruiting: "Recruiting",
	MissionStatusInProgress: "In Progress",
	MissionStatusCompleted:  "Completed",
}

func (s MissionStatus) IsValid() bool {
	_, ok := missionStatusNames[s]
	return ok
}

// DisplayName 页面展示用
func (s MissionStatus) DisplayName() string {
	return missionStatusNames[s]
}

type Mission struct {
	ID          int64
	Title       string
	Description string
	Status      MissionStatus
	TechStack   []string
	// Duration 预计周期，例如 "6 weeks"
	Duration string
	TeamSize int
	// Filled 已经确定的人数
	Filled   int
	Capacity int
	Ctime    time.Time
	Utime    time.Time
}

var errFilledOverCapacity = errors.New("已确定人数超过了容量")

// Validate 数据库里读出来的记录也要校验，脏数据当作不存在
func (m Mission) Validate() error {
	err := validation.ValidateStruct(&m,
		validation.Field(&m.ID, validation.Required, validation.Min(int64(1))),
		validation.Field(&m.Title, validation.Required, validation.Length(1, 256)),
		validation.Field(&m.Status, validation.Required, validation.By(func(value any) error {
			if !value.(MissionStatus).IsValid() {
				return errors.New("未知的状态")
			}
			return nil
		})),
		validation.Field(&m.TeamSize, validation.Min(0)),
		validation.Field(&m.Filled, validation.Min(0)),
		validation.Field(&m.Capacity, validation.Min(0)),
	)
	if err != nil {
		return err
	}
	if m.Filled > m.Capacity {
		return errFilledOverCapacity
	}
	return nil
}
