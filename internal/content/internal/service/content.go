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
	"context"
	"fmt"

	"github.com/ecodeclub/studio/internal/content/internal/domain"
	"github.com/ecodeclub/studio/internal/content/internal/repository"
	"github.com/ecodeclub/studio/internal/pkg/excerpt"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrContentNotFound  = repository.ErrContentNotFound
	ErrMalformedContent = repository.ErrMalformedContent
)

const excerptMaxRunes = 160

type Service interface {
	// BlogDetail 格式错误的时候返回占位内容和 ErrMalformedContent
	BlogDetail(ctx context.Context, slug string) (domain.Item, error)
	BlogList(ctx context.Context) ([]domain.Item, error)
	Search(ctx context.Context, query string) ([]domain.Item, error)
	TutorialSeries(ctx context.Context, series string) (domain.Series, error)
	TutorialChapter(ctx context.Context, series, slug string) (domain.ChapterPage, error)
}

type service struct {
	repo     repository.ContentRepository
	renderer Renderer
	logger   *elog.Component
}

func NewService(repo repository.ContentRepository, renderer Renderer) Service {
	return &service{
		repo:     repo,
		renderer: renderer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("content.service")),
	}
}

func (s *service) BlogDetail(ctx context.Context, slug string) (domain.Item, error) {
	item, err := s.repo.FindBlog(ctx, slug)
	if err != nil {
		return item, err
	}
	return s.render(item)
}

func (s *service) BlogList(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.ListBlog(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Excerpt != "" || items[i].Body == "" {
			continue
		}
		html, er := s.renderer.Render(items[i].Body)
		if er != nil {
			s.logger.Error("渲染摘要失败", elog.FieldErr(er), elog.String("slug", items[i].Slug))
			continue
		}
		items[i].Excerpt = excerpt.FromHTML(html, excerptMaxRunes)
	}
	return items, nil
}

func (s *service) Search(ctx context.Context, query string) ([]domain.Item, error) {
	items, err := s.BlogList(ctx)
	if err != nil {
		return nil, err
	}
	return Search(items, query), nil
}

func (s *service) TutorialSeries(ctx context.Context, series string) (domain.Series, error) {
	return s.repo.FindSeries(ctx, series)
}

func (s *service) TutorialChapter(ctx context.Context, series, slug string) (domain.ChapterPage, error) {
	sr, err := s.repo.FindSeries(ctx, series)
	if err != nil {
		return domain.ChapterPage{}, err
	}
	idx := sr.ChapterIndex(slug)
	if idx < 0 {
		return domain.ChapterPage{}, fmt.Errorf("%w: 教程 %s 章节 %s", ErrContentNotFound, series, slug)
	}
	page := domain.ChapterPage{Series: sr}
	if idx > 0 {
		prev := sr.Chapters[idx-1]
		page.Prev = &prev
	}
	if idx < len(sr.Chapters)-1 {
		next := sr.Chapters[idx+1]
		page.Next = &next
	}
	item, err := s.repo.FindTutorial(ctx, series, slug)
	if err != nil {
		page.Item = item
		return page, err
	}
	page.Item, err = s.render(item)
	return page, err
}

func (s *service) render(item domain.Item) (domain.Item, error) {
	html, err := s.renderer.Render(item.Body)
	if err != nil {
		return item, fmt.Errorf("渲染 %s/%s 失败: %w", item.Collection, item.Slug, err)
	}
	item.HTML = html
	if item.Excerpt == "" {
		item.Excerpt = excerpt.FromHTML(html, excerptMaxRunes)
	}
	return item, nil
}
