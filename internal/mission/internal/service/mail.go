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

package service

import (
	"bytes"
	"html/template"
)

const confirmationSubject = "我们收到了你的任务申请"

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<body>
<p>{{.Name}}，你好：</p>
<p>我们已经收到了你对「{{.MissionTitle}}」的申请，申请编号 <strong>{{.SN}}</strong>。</p>
<p>我们会在几个工作日内审核并通过邮件联系你。</p>
<p>Studio 团队</p>
</body>
</html>
`))

type confirmationData struct {
	Name         string
	MissionTitle string
	SN           string
}

func renderConfirmation(data confirmationData) ([]byte, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
