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
	"context"
	"errors"
	"fmt"
	"path"
	"regexp"
	"sort"

	"github.com/ecodeclub/studio/internal/content/internal/domain"
	"github.com/ecodeclub/studio/internal/content/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrContentNotFound  = errors.New("内容不存在")
	ErrMalformedContent = errors.New("内容格式错误")
)

// PlaceholderTitle 解析失败时返回的占位标题
const PlaceholderTitle = "内容加载失败"

const listConcurrency = 8

var slugRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

type Config struct {
	// BlogDir 博客目录，文件名去掉扩展名就是 slug
	BlogDir string
	Series  []domain.Series
}

//go:generate mockgen -source=./content.go -package=repomocks -destination=mocks/content.mock.go ContentRepository
type ContentRepository interface {
	// FindBlog 格式错误的时候返回占位内容和 ErrMalformedContent
	FindBlog(ctx context.Context, slug string) (domain.Item, error)
	// ListBlog 按照日期倒序，格式错误的文章以占位内容出现在末尾
	ListBlog(ctx context.Context) ([]domain.Item, error)
	FindSeries(ctx context.Context, series string) (domain.Series, error)
	FindTutorial(ctx context.Context, series, slug string) (domain.Item, error)
}

type contentRepository struct {
	dao    dao.ContentDAO
	cfg    Config
	logger *elog.Component
}

func NewContentRepository(d dao.ContentDAO, cfg Config) ContentRepository {
	if cfg.BlogDir == "" {
		cfg.BlogDir = string(domain.CollectionBlog)
	}
	return &contentRepository{
		dao:    d,
		cfg:    cfg,
		logger: elog.DefaultLogger.With(elog.FieldComponent("content.repository")),
	}
}

func (r *contentRepository) FindBlog(ctx context.Context, slug string) (domain.Item, error) {
	if !slugRe.MatchString(slug) {
		return domain.Item{}, ErrContentNotFound
	}
	for _, name := range dao.Candidates(r.cfg.BlogDir, slug) {
		item, err := r.load(ctx, domain.CollectionBlog, slug, name)
		if errors.Is(err, ErrContentNotFound) {
			continue
		}
		return item, err
	}
	return domain.Item{}, ErrContentNotFound
}

func (r *contentRepository) ListBlog(ctx context.Context) ([]domain.Item, error) {
	names, err := r.dao.ListMarkdown(ctx, r.cfg.BlogDir)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(names))
	files := make([]string, 0, len(names))
	for _, name := range names {
		slug := dao.Stem(name)
		if !slugRe.MatchString(slug) {
			r.logger.Warn("文件名不能作为 slug，忽略", elog.String("file", name))
			continue
		}
		slugs = append(slugs, slug)
		files = append(files, path.Join(r.cfg.BlogDir, name))
	}

	items := make([]domain.Item, len(files))
	var eg errgroup.Group
	eg.SetLimit(listConcurrency)
	for i := range files {
		eg.Go(func() error {
			item, err := r.load(ctx, domain.CollectionBlog, slugs[i], files[i])
			if errors.Is(err, ErrMalformedContent) {
				r.logger.Error("博客格式错误", elog.FieldErr(err), elog.String("file", files[i]))
				err = nil
			}
			items[i] = item
			return err
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	sortByDateDesc(items)
	return items, nil
}

func (r *contentRepository) FindSeries(ctx context.Context, series string) (domain.Series, error) {
	for _, s := range r.cfg.Series {
		if s.ID == series {
			return s, nil
		}
	}
	return domain.Series{}, fmt.Errorf("%w: 教程 %s", ErrContentNotFound, series)
}

func (r *contentRepository) FindTutorial(ctx context.Context, series, slug string) (domain.Item, error) {
	s, err := r.FindSeries(ctx, series)
	if err != nil {
		return domain.Item{}, err
	}
	idx := s.ChapterIndex(slug)
	if idx < 0 {
		return domain.Item{}, fmt.Errorf("%w: 教程 %s 章节 %s", ErrContentNotFound, series, slug)
	}
	chapter := s.Chapters[idx]
	item, err := r.load(ctx, domain.Collection(s.ID), slug, path.Join(s.Dir, chapter.File))
	// 章节表里面有标题的时候，以章节表为准
	if err == nil && item.Title == slug && chapter.Title != "" {
		item.Title = chapter.Title
	}
	return item, err
}

func (r *contentRepository) load(ctx context.Context, c domain.Collection, slug, file string) (domain.Item, error) {
	data, err := r.dao.ReadFile(ctx, file)
	if errors.Is(err, dao.ErrFileNotFound) {
		return domain.Item{}, fmt.Errorf("%w: %s", ErrContentNotFound, file)
	}
	if err != nil {
		return domain.Item{}, err
	}
	parsed, err := parseContent(data)
	if err != nil {
		return placeholder(c, slug), fmt.Errorf("%w: %s: %w", ErrMalformedContent, file, err)
	}
	title := parsed.Title
	if title == "" {
		title = slug
	}
	return domain.Item{
		Slug:       slug,
		Collection: c,
		Title:      title,
		Excerpt:    parsed.Excerpt,
		Date:       parsed.Date,
		Tags:       parsed.Tags,
		Body:       parsed.Body,
	}, nil
}

func placeholder(c domain.Collection, slug string) domain.Item {
	return domain.Item{
		Slug:       slug,
		Collection: c,
		Title:      PlaceholderTitle,
		Tags:       []string{},
	}
}

func sortByDateDesc(items []domain.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].Date.Equal(items[j].Date) {
			return items[i].Date.After(items[j].Date)
		}
		return items[i].Slug < items[j].Slug
	})
}
