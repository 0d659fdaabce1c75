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
	"strings"

	"github.com/ecodeclub/studio/internal/content/internal/domain"
	"golang.org/x/text/cases"
)

// Search 对标题、摘要、正文和标签做大小写无关的子串匹配。
// 空白的 query 返回全部，结果保持 items 原本的顺序。
func Search(items []domain.Item, query string) []domain.Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}
	folder := cases.Fold()
	q := folder.String(query)
	contains := func(field string) bool {
		return strings.Contains(folder.String(field), q)
	}
	res := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if contains(item.Title) || contains(item.Excerpt) || contains(item.Body) ||
			containsTag(item.Tags, contains) {
			res = append(res, item)
		}
	}
	return res
}

func containsTag(tags []string, contains func(string) bool) bool {
	for _, t := range tags {
		if contains(t) {
			return true
		}
	}
	return false
}
