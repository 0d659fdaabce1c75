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

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContent(t *testing.T) {
	testCases := []struct {
		name    string
		source  string
		want    parsedContent
		wantErr bool
	}{
		{
			name: "完整的 YAML 头部",
			source: "---\n" +
				"title: Hello\n" +
				"excerpt: 第一篇\n" +
				"date: 2024-03-01\n" +
				"tags: [intro, go]\n" +
				"---\n" +
				"# Hello\n\nbody text\n",
			want: parsedContent{
				Title:   "Hello",
				Excerpt: "第一篇",
				Date:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				Tags:    []string{"intro", "go"},
				Body:    "# Hello\n\nbody text\n",
			},
		},
		{
			name: "description 作为摘要",
			source: "---\n" +
				"title: Old\n" +
				"description: 老格式\n" +
				"date: 2023-12-31T08:00:00Z\n" +
				"---\n" +
				"old body",
			want: parsedContent{
				Title:   "Old",
				Excerpt: "老格式",
				Date:    time.Date(2023, 12, 31, 8, 0, 0, 0, time.UTC),
				Tags:    []string{},
				Body:    "old body",
			},
		},
		{
			name:   "正文开头的空行原样保留",
			source: "---\ntitle: T\n---\n\n\nfoo\n",
			want: parsedContent{
				Title: "T",
				Tags:  []string{},
				Body:  "\n\nfoo\n",
			},
		},
		{
			name: "TOML 头部",
			source: "+++\n" +
				"title = \"Toml\"\n" +
				"date = \"2024-05-01\"\n" +
				"tags = [\"go\"]\n" +
				"+++\n" +
				"\ntoml body\n",
			want: parsedContent{
				Title: "Toml",
				Date:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
				Tags:  []string{"go"},
				Body:  "\ntoml body\n",
			},
		},
		{
			name:   "没有头部",
			source: "just markdown",
			want: parsedContent{
				Tags: []string{},
				Body: "just markdown",
			},
		},
		{
			name: "头部格式错误",
			source: "---\n" +
				"title: [unclosed\n" +
				"---\n" +
				"body",
			wantErr: true,
		},
		{
			name:    "头部没有结束标记",
			source:  "---\ntitle: T\nfoo\n",
			wantErr: true,
		},
		{
			name:    "TOML 头部没有结束标记",
			source:  "+++\ntitle = \"T\"\n",
			wantErr: true,
		},
		{
			name: "日期格式错误",
			source: "---\n" +
				"title: Bad date\n" +
				"date: yesterday\n" +
				"---\n" +
				"body",
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseContent([]byte(tc.source))
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
