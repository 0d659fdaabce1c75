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
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Applicant 申请人填写的资料
type Applicant struct {
	Name         string
	Email        string
	Experience   string
	Availability string
	Portfolio    string
	Motivation   string
}

func (a Applicant) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Name, validation.Required, validation.Length(1, 128)),
		validation.Field(&a.Email, validation.Required, validation.Length(3, 254), is.EmailFormat),
		validation.Field(&a.Experience, validation.Required, validation.Length(1, 4096)),
		validation.Field(&a.Availability, validation.Required, validation.Length(1, 256)),
		validation.Field(&a.Portfolio, validation.Length(0, 512), is.URL),
		validation.Field(&a.Motivation, validation.Length(0, 4096)),
	)
}

// Normalize 邮箱是唯一键的一部分，必须先规范化
func (a Applicant) Normalize() Applicant {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = NormalizeEmail(a.Email)
	a.Experience = strings.TrimSpace(a.Experience)
	a.Availability = strings.TrimSpace(a.Availability)
	a.Portfolio = strings.TrimSpace(a.Portfolio)
	a.Motivation = strings.TrimSpace(a.Motivation)
	return a
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type Application struct {
	ID        int64
	SN        string
	MissionID int64
	Applicant Applicant
	Status    ApplicationStatus
	Ctime     time.Time
	Utime     time.Time
}

type ApplyResult struct {
	Application Application
	Mission     Mission
	// Notified 确认邮件是否发送成功，失败不影响申请本身
	Notified bool
}
