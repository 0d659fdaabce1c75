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

package consumer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/studio/internal/email"
	"github.com/ecodeclub/studio/internal/notification/event"
	"github.com/gotomicro/ego/core/elog"
)

// 邮件里的长文本最多保留的字节数
const fieldLimit = 2048

var summaryTmpl = template.Must(template.New("summary").Parse(`<!DOCTYPE html>
<html>
<body>
<p>任务「{{.MissionTitle}}」（ID {{.MissionID}}）收到了新的申请。</p>
<table>
<tr><td>申请编号</td><td>{{.SN}}</td></tr>
<tr><td>姓名</td><td>{{.Name}}</td></tr>
<tr><td>邮箱</td><td>{{.Email}}</td></tr>
<tr><td>经验</td><td>{{.Experience}}</td></tr>
<tr><td>可投入时间</td><td>{{.Availability}}</td></tr>
{{if .Portfolio}}<tr><td>作品集</td><td>{{.Portfolio}}</td></tr>{{end}}
{{if .Motivation}}<tr><td>动机</td><td>{{.Motivation}}</td></tr>{{end}}
<tr><td>确认邮件</td><td>{{if .Notified}}已发送{{else}}发送失败{{end}}</td></tr>
<tr><td>提交时间</td><td>{{.SubmittedAt}}</td></tr>
</table>
</body>
</html>
`))

type summaryData struct {
	event.MissionApplicationEvent
	SubmittedAt string
}

type StudioInboxConfig struct {
	Inbox string `yaml:"studioInbox"`
	From  string `yaml:"from"`
}

type MissionApplicationEventConsumer struct {
	consumer mq.Consumer
	mailer   email.Service
	config   StudioInboxConfig
	logger   *elog.Component
}

func NewMissionApplicationEventConsumer(q mq.MQ, mailer email.Service, config StudioInboxConfig) (*MissionApplicationEventConsumer, error) {
	groupID := "notification.studio"
	consumer, err := q.Consumer(event.MissionApplicationEventName, groupID)
	if err != nil {
		return nil, err
	}
	if config.From == "" {
		config.From = "Studio"
	}
	return &MissionApplicationEventConsumer{
		consumer: consumer,
		mailer:   mailer,
		config:   config,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification.email.consumer")),
	}, nil
}

// Start 处理失败的消息记录日志之后跳过
func (c *MissionApplicationEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费任务申请事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *MissionApplicationEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt event.MissionApplicationEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	if evt.ApplicationID <= 0 || evt.SN == "" {
		c.logger.Error("非法任务申请消息", elog.Any("event", evt))
		return errors.New("非法任务申请消息")
	}
	if c.config.Inbox == "" {
		c.logger.Warn("未配置工作室收件箱，忽略通知", elog.String("sn", evt.SN))
		return nil
	}
	body, err := c.render(evt)
	if err != nil {
		return fmt.Errorf("渲染通知邮件失败: %w", err)
	}
	err = c.mailer.SendMail(ctx, email.Mail{
		From:    c.config.From,
		To:      c.config.Inbox,
		Subject: fmt.Sprintf("新的任务申请：%s - %s", evt.MissionTitle, evt.Name),
		Body:    body,
	})
	if err != nil {
		return fmt.Errorf("发送工作室通知邮件失败 sn=%s: %w", evt.SN, err)
	}
	return nil
}

func (c *MissionApplicationEventConsumer) render(evt event.MissionApplicationEvent) ([]byte, error) {
	evt.Experience = truncate(evt.Experience, fieldLimit)
	evt.Motivation = truncate(evt.Motivation, fieldLimit)
	var buf bytes.Buffer
	err := summaryTmpl.Execute(&buf, summaryData{
		MissionApplicationEvent: evt,
		SubmittedAt:             time.UnixMilli(evt.Ctime).Format(time.DateTime),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
