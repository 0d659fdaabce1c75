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

package integration

import (
	"net/http"
	"testing"
	"testing/fstest"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/studio/internal/content"
	"github.com/ecodeclub/studio/internal/content/internal/errs"
	"github.com/ecodeclub/studio/internal/content/internal/web"
	"github.com/ecodeclub/studio/internal/test"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
}

func TestContentHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupSuite() {
	fsys := fstest.MapFS{
		"blog/hello-world.md": {Data: []byte("---\ntitle: Hello\nexcerpt: 第一篇\ndate: 2024-01-01\ntags: [intro]\n---\nHello **world**\n")},
		"blog/go-tips.md":     {Data: []byte("---\ntitle: Go Tips\ndate: 2024-03-01\ntags: [go]\n---\nUse `errgroup` for fan out.\n")},
		"blog/broken.md":      {Data: []byte("---\ntitle: [oops\n---\n")},
		"tutorials/go/01-intro.md": {Data: []byte("---\ntitle: Intro\n---\nwelcome\n")},
		"tutorials/go/02-setup.md": {Data: []byte("install go\n")},
	}
	mou := content.InitModule(fsys, content.Config{
		BlogDir: "blog",
		Series: []content.Series{
			{
				ID:    "go",
				Title: "Go 入门",
				Dir:   "tutorials/go",
				Chapters: []content.Chapter{
					{Slug: "intro", File: "01-intro.md", Title: "介绍"},
					{Slug: "setup", File: "02-setup.md", Title: "环境准备"},
				},
			},
		},
	})
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	mou.Hdl.PublicRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TestBlogDetail() {
	testCases := []struct {
		name     string
		req      web.SlugReq
		wantCode int
		wantResp test.Result[web.Item]
	}{
		{
			name:     "找到文章，标题小写展示",
			req:      web.SlugReq{Slug: "hello-world"},
			wantCode: http.StatusOK,
			wantResp: test.Result[web.Item]{
				Data: web.Item{
					Slug:         "hello-world",
					Collection:   "blog",
					Title:        "Hello",
					DisplayTitle: "hello",
					Excerpt:      "第一篇",
					Date:         "2024-01-01",
					Tags:         []string{"intro"},
					Body:         "Hello **world**\n",
					HTML:         "<p>Hello <strong>world</strong></p>\n",
				},
			},
		},
		{
			name:     "文章不存在",
			req:      web.SlugReq{Slug: "missing-post"},
			wantCode: http.StatusNotFound,
			wantResp: test.Result[web.Item]{
				Code: errs.ContentNotFound.Code,
				Msg:  errs.ContentNotFound.Msg,
			},
		},
		{
			name:     "路径穿越当作不存在",
			req:      web.SlugReq{Slug: "../tutorials/go/01-intro"},
			wantCode: http.StatusNotFound,
			wantResp: test.Result[web.Item]{
				Code: errs.ContentNotFound.Code,
				Msg:  errs.ContentNotFound.Msg,
			},
		},
		{
			name:     "格式错误返回占位内容",
			req:      web.SlugReq{Slug: "broken"},
			wantCode: http.StatusOK,
			wantResp: test.Result[web.Item]{
				Code: errs.ContentMalformed.Code,
				Msg:  errs.ContentMalformed.Msg,
				Data: web.Item{
					Slug:         "broken",
					Collection:   "blog",
					Title:        "内容加载失败",
					DisplayTitle: "内容加载失败",
					Tags:         []string{},
				},
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/blog/detail", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Item]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func (s *HandlerTestSuite) TestBlogDetailWithoutSlug() {
	req, err := http.NewRequest(http.MethodPost,
		"/blog/detail", iox.NewJSONReader(web.SlugReq{}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.Item]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(s.T(), http.StatusBadRequest, recorder.Code)
}

func (s *HandlerTestSuite) TestBlogListAndSearch() {
	testCases := []struct {
		name      string
		path      string
		req       any
		wantSlugs []string
	}{
		{
			name:      "列表按日期倒序，格式错误的在最后",
			path:      "/blog/list",
			req:       map[string]any{},
			wantSlugs: []string{"go-tips", "hello-world", "broken"},
		},
		{
			name:      "空搜索返回全部",
			path:      "/blog/search",
			req:       web.SearchReq{},
			wantSlugs: []string{"go-tips", "hello-world", "broken"},
		},
		{
			name:      "大小写无关",
			path:      "/blog/search",
			req:       web.SearchReq{Query: "ERRGROUP"},
			wantSlugs: []string{"go-tips"},
		},
		{
			name:      "匹配标签",
			path:      "/blog/search",
			req:       web.SearchReq{Query: "Intro"},
			wantSlugs: []string{"hello-world"},
		},
		{
			name:      "没有结果",
			path:      "/blog/search",
			req:       web.SearchReq{Query: "kotlin"},
			wantSlugs: []string{},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, tc.path, iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.ItemList]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			resp := recorder.MustScan()
			slugs := make([]string, 0, len(resp.Data.Items))
			for _, item := range resp.Data.Items {
				assert.Empty(t, item.Body)
				slugs = append(slugs, item.Slug)
			}
			assert.Equal(t, tc.wantSlugs, slugs)
			assert.Equal(t, len(tc.wantSlugs), resp.Data.Total)
		})
	}
}

func (s *HandlerTestSuite) TestTutorialDetail() {
	testCases := []struct {
		name     string
		req      web.ChapterReq
		wantCode int
		wantResp test.Result[web.ChapterPage]
	}{
		{
			name:     "第一章",
			req:      web.ChapterReq{Series: "go", Slug: "intro"},
			wantCode: http.StatusOK,
			wantResp: test.Result[web.ChapterPage]{
				Data: web.ChapterPage{
					Item: web.Item{
						Slug:         "intro",
						Collection:   "go",
						Title:        "Intro",
						DisplayTitle: "intro",
						Excerpt:      "welcome",
						Tags:         []string{},
						Body:         "welcome\n",
						HTML:         "<p>welcome</p>\n",
					},
					Series: web.Series{
						ID:    "go",
						Title: "Go 入门",
						Chapters: []web.Chapter{
							{Slug: "intro", Title: "介绍"},
							{Slug: "setup", Title: "环境准备"},
						},
					},
					Next: &web.Chapter{Slug: "setup", Title: "环境准备"},
				},
			},
		},
		{
			name:     "章节不存在",
			req:      web.ChapterReq{Series: "go", Slug: "advanced"},
			wantCode: http.StatusNotFound,
			wantResp: test.Result[web.ChapterPage]{
				Code: errs.ContentNotFound.Code,
				Msg:  errs.ContentNotFound.Msg,
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/tutorial/detail", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.ChapterPage]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func (s *HandlerTestSuite) TestTutorialSeries() {
	req, err := http.NewRequest(http.MethodPost,
		"/tutorial/series", iox.NewJSONReader(web.SeriesReq{Series: "rust"}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.Series]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(s.T(), http.StatusNotFound, recorder.Code)
}
