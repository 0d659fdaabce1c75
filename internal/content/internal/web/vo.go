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

package web

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/studio/internal/content/internal/domain"
)

type SlugReq struct {
	Slug string `json:"slug" binding:"required"`
}

type SearchReq struct {
	Query string `json:"query"`
}

type SeriesReq struct {
	Series string `json:"series" binding:"required"`
}

type ChapterReq struct {
	Series string `json:"series" binding:"required"`
	Slug   string `json:"slug" binding:"required"`
}

type Item struct {
	Slug       string `json:"slug"`
	Collection string `json:"collection"`
	Title      string `json:"title"`
	// DisplayTitle 页面展示用的小写标题
	DisplayTitle string   `json:"displayTitle"`
	Excerpt      string   `json:"excerpt"`
	Date         string   `json:"date,omitempty"`
	Tags         []string `json:"tags"`
	Body         string   `json:"body,omitempty"`
	HTML         string   `json:"html,omitempty"`
}

type ItemList struct {
	Total int    `json:"total"`
	Items []Item `json:"items"`
}

type Chapter struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

type Series struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Chapters []Chapter `json:"chapters"`
}

type ChapterPage struct {
	Item   Item     `json:"item"`
	Series Series   `json:"series"`
	Prev   *Chapter `json:"prev,omitempty"`
	Next   *Chapter `json:"next,omitempty"`
}

// newItem withBody 为 false 的时候只返回列表需要的字段
func newItem(item domain.Item, withBody bool) Item {
	res := Item{
		Slug:         item.Slug,
		Collection:   string(item.Collection),
		Title:        item.Title,
		DisplayTitle: item.DisplayTitle(),
		Excerpt:      item.Excerpt,
		Tags:         item.Tags,
	}
	if res.Tags == nil {
		res.Tags = []string{}
	}
	if !item.Date.IsZero() {
		res.Date = item.Date.Format(time.DateOnly)
	}
	if withBody {
		res.Body = item.Body
		res.HTML = item.HTML
	}
	return res
}

func newItemList(items []domain.Item) ItemList {
	return ItemList{
		Total: len(items),
		Items: slice.Map(items, func(idx int, src domain.Item) Item {
			return newItem(src, false)
		}),
	}
}

func newChapter(c *domain.Chapter) *Chapter {
	if c == nil {
		return nil
	}
	return &Chapter{Slug: c.Slug, Title: c.Title}
}

func newSeries(s domain.Series) Series {
	return Series{
		ID:    s.ID,
		Title: s.Title,
		Chapters: slice.Map(s.Chapters, func(idx int, src domain.Chapter) Chapter {
			return Chapter{Slug: src.Slug, Title: src.Title}
		}),
	}
}

func newChapterPage(p domain.ChapterPage) ChapterPage {
	return ChapterPage{
		Item:   newItem(p.Item, true),
		Series: newSeries(p.Series),
		Prev:   newChapter(p.Prev),
		Next:   newChapter(p.Next),
	}
}
