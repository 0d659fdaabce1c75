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

package sequencenumber

import (
	"fmt"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// DateFunc 返回生成序列号时使用的时间
type DateFunc func() time.Time

// ShortUUIDGenerateFunc 定义生成ShortUUID的函数类型
type ShortUUIDGenerateFunc func() string

const suffixLength = 6

// Generator 生成给用户看的申请编号，例如 20260102-0042-K7PXQ2
type Generator struct {
	dateFunc         DateFunc
	shortUUIDGenFunc ShortUUIDGenerateFunc
}

func NewGeneratorWith(dateFunc DateFunc, uuidGen ShortUUIDGenerateFunc) *Generator {
	return &Generator{
		dateFunc:         dateFunc,
		shortUUIDGenFunc: uuidGen,
	}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(time.Now, func() string { return shortuuid.New() })
}

// Generate bizID 取后四位，例如任务 ID
func (g *Generator) Generate(bizID int64) (string, error) {
	if bizID < 0 {
		return "", fmt.Errorf("非法的业务ID: %d", bizID)
	}
	uuid := g.shortUUIDGenFunc()
	if len(uuid) < suffixLength {
		return "", fmt.Errorf("uuid 长度不足: %q", uuid)
	}
	return fmt.Sprintf("%s-%04d-%s",
		g.dateFunc().Format("20060102"),
		bizID%10000,
		strings.ToUpper(uuid[:suffixLength])), nil
}
