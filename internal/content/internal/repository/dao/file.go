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

package dao

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

var ErrFileNotFound = errors.New("文件不存在")

var markdownExts = []string{".md", ".markdown"}

//go:generate mockgen -source=./file.go -package=daomocks -destination=mocks/file.mock.go ContentDAO
type ContentDAO interface {
	// ReadFile name 是相对于内容根目录的路径
	ReadFile(ctx context.Context, name string) ([]byte, error)
	// ListMarkdown 列出 dir 下所有的 markdown 文件名，按照文件名排序，不递归。
	// dir 不存在的时候返回空
	ListMarkdown(ctx context.Context, dir string) ([]string, error)
}

// FSContentDAO 每次调用都直接读文件，不做缓存
type FSContentDAO struct {
	fsys fs.FS
}

func NewFSContentDAO(fsys fs.FS) ContentDAO {
	return &FSContentDAO{fsys: fsys}
}

func (d *FSContentDAO) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name = path.Clean(name)
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}
	data, err := fs.ReadFile(d.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}
	return data, err
}

func (d *FSContentDAO) ListMarkdown(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(d.fsys, path.Clean(dir))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsMarkdown(e.Name()) {
			continue
		}
		res = append(res, e.Name())
	}
	return res, nil
}

func IsMarkdown(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, m := range markdownExts {
		if ext == m {
			return true
		}
	}
	return false
}

// Stem 去掉扩展名
func Stem(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

// Candidates slug 可能对应的文件名
func Candidates(dir, slug string) []string {
	res := make([]string, 0, len(markdownExts))
	for _, ext := range markdownExts {
		res = append(res, path.Join(dir, slug+ext))
	}
	return res
}
