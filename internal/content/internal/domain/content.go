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
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Collection string

const CollectionBlog Collection = "blog"

// Item 博客文章或者教程章节，只读
type Item struct {
	Slug       string
	Collection Collection
	Title      string
	Excerpt    string
	Date       time.Time
	Tags       []string
	// Body 原始 markdown
	Body string
	// HTML 渲染之后的 Body
	HTML string
}

// DisplayTitle 页面上统一用小写展示标题
func (i Item) DisplayTitle() string {
	return cases.Lower(language.Und).String(i.Title)
}

type Chapter struct {
	Slug string
	// File 相对于 Series.Dir 的文件名
	File  string
	Title string
}

// Series 一个教程系列，章节顺序就是阅读顺序
type Series struct {
	ID       string
	Title    string
	Dir      string
	Chapters []Chapter
}

// ChapterIndex 找不到返回 -1
func (s Series) ChapterIndex(slug string) int {
	for idx, c := range s.Chapters {
		if c.Slug == slug {
			return idx
		}
	}
	return -1
}

type ChapterPage struct {
	Item   Item
	Series Series
	Prev   *Chapter
	Next   *Chapter
}
