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
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
}

var errUnclosedFrontMatter = errors.New("头部缺少结束标记")

type frontMatter struct {
	Title   string `yaml:"title" toml:"title" json:"title"`
	Excerpt string `yaml:"excerpt" toml:"excerpt" json:"excerpt"`
	// Description 老文章用的是 description
	Description string   `yaml:"description" toml:"description" json:"description"`
	Date        string   `yaml:"date" toml:"date" json:"date"`
	Tags        []string `yaml:"tags" toml:"tags" json:"tags"`
}

type parsedContent struct {
	Title   string
	Excerpt string
	Date    time.Time
	Tags    []string
	Body    string
}

// parseContent 拆分头部元数据和 markdown 正文。
// 没有头部的文件整个当作正文。
func parseContent(source []byte) (parsedContent, error) {
	var meta frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return parsedContent{}, fmt.Errorf("解析头部失败: %w", err)
	}
	// 有开始标记但是没有结束标记的时候，frontmatter 会把整个文件当作正文
	if opensFrontMatter(source) && bytes.Equal(body, source) {
		return parsedContent{}, errUnclosedFrontMatter
	}
	date, err := parseDate(meta.Date)
	if err != nil {
		return parsedContent{}, err
	}
	excerpt := meta.Excerpt
	if excerpt == "" {
		excerpt = meta.Description
	}
	tags := make([]string, 0, len(meta.Tags))
	for _, t := range meta.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return parsedContent{
		Title:   strings.TrimSpace(meta.Title),
		Excerpt: strings.TrimSpace(excerpt),
		Date:    date,
		Tags:    tags,
		Body:    string(body),
	}, nil
}

func parseDate(val string) (time.Time, error) {
	val = strings.TrimSpace(val)
	if val == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, val); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("无法识别的日期格式: %q", val)
}

func opensFrontMatter(source []byte) bool {
	line, _, _ := bytes.Cut(source, []byte("\n"))
	line = bytes.TrimSpace(line)
	return bytes.Equal(line, []byte("---")) || bytes.Equal(line, []byte("+++"))
}
