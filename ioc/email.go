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

package ioc

import (
	"fmt"

	"github.com/ecodeclub/studio/config"
	"github.com/ecodeclub/studio/internal/email"
	"github.com/ecodeclub/studio/internal/email/aliyun"
	"github.com/ecodeclub/studio/internal/email/logmail"
	"github.com/gotomicro/ego/core/econf"
)

func InitEmailService() email.Service {
	var cfg config.EmailConfig
	err := econf.UnmarshalKey("email", &cfg)
	if err != nil {
		panic(err)
	}
	switch cfg.Provider {
	case "aliyun":
		svc, err := aliyun.NewDirectMail(cfg.AccessKeyID, cfg.AccessKeySecret, cfg.AccountName)
		if err != nil {
			panic(err)
		}
		return svc
	case "", "log":
		return logmail.NewService()
	default:
		panic(fmt.Sprintf("未知的邮件服务: %s", cfg.Provider))
	}
}
