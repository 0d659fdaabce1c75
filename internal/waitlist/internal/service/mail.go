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

const welcomeSubject = "欢迎加入 Studio"

var welcomeTmpl = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<body>
<p>{{if .Name}}{{.Name}}，{{end}}你好：</p>
<p>感谢你关注 Studio，你已经加入了我们的等待列表。</p>
<p>新的任务开放招募时，我们会第一时间通过邮件通知你。</p>
<p>Studio 团队</p>
</body>
</html>
`))

type welcomeData struct {
	Name string
}

func renderWelcome(data welcomeData) ([]byte, error) {
	var buf bytes.Buffer
	if err := welcomeTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
