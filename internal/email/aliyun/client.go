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

package aliyun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"

	"github.com/ecodeclub/studio/internal/email"
)

const endpoint = "dm.aliyuncs.com"

// DirectMail 阿里云邮件推送
type DirectMail struct {
	client *dm20151123.Client
	// accountName 控制台配置的发信地址，例如 noreply@mail.example.com
	accountName string
}

func NewDirectMail(accessKeyID, accessKeySecret, accountName string) (*DirectMail, error) {
	cred, err := credential.NewCredential(&credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
	})
	if err != nil {
		return nil, fmt.Errorf("创建阿里云凭据失败: %w", err)
	}
	client, err := dm20151123.NewClient(&openapi.Config{
		Credential: cred,
		Endpoint:   tea.String(endpoint),
	})
	if err != nil {
		return nil, fmt.Errorf("创建 DirectMail 客户端失败: %w", err)
	}
	return &DirectMail{
		client:      client,
		accountName: accountName,
	}, nil
}

func (d *DirectMail) SendMail(ctx context.Context, mail email.Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	request := &dm20151123.SingleSendMailRequest{
		AccountName: tea.String(d.accountName),
		FromAlias:   tea.String(mail.From),
		// 1 表示使用发信地址
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
	_, err := d.client.SingleSendMailWithOptions(request, &util.RuntimeOptions{})
	if err != nil {
		return d.wrapError(err)
	}
	return nil
}

func (d *DirectMail) wrapError(err error) error {
	var sdkErr *tea.SDKError
	if !errors.As(err, &sdkErr) {
		return fmt.Errorf("发送邮件失败: %w", err)
	}
	msg := fmt.Sprintf("阿里云邮件推送API错误: code=%s, msg=%s",
		tea.StringValue(sdkErr.Code), tea.StringValue(sdkErr.Message))
	if sdkErr.Data != nil {
		var data struct {
			Recommend string `json:"Recommend"`
			RequestId string `json:"RequestId"`
		}
		if json.Unmarshal([]byte(tea.StringValue(sdkErr.Data)), &data) == nil {
			msg = fmt.Sprintf("%s, requestId=%s, recommend=%s", msg, data.RequestId, data.Recommend)
		}
	}
	return errors.New(msg)
}
