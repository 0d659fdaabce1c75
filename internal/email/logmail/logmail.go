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

package logmail

import (
	"context"

	"github.com/ecodeclub/studio/internal/email"
	"github.com/gotomicro/ego/core/elog"
)

// Service 本地开发用，只打印日志，不真的发邮件
type Service struct {
	logger *elog.Component
}

func NewService() *Service {
	return &Service{
		logger: elog.DefaultLogger.With(elog.FieldComponent("email.log")),
	}
}

func (s *Service) SendMail(ctx context.Context, mail email.Mail) error {
	s.logger.Info("模拟发送邮件",
		elog.String("from", mail.From),
		elog.String("to", mail.To),
		elog.String("subject", mail.Subject),
		elog.Int("bodySize", len(mail.Body)))
	return nil
}
