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

package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const AdminTokenHeader = "X-Admin-Token"

// CheckAdminTokenMiddlewareBuilder 管理后台只有工作室内部使用，共享一个 token 即可
type CheckAdminTokenMiddlewareBuilder struct {
	token  string
	logger *elog.Component
}

func NewCheckAdminTokenMiddlewareBuilder(token string) *CheckAdminTokenMiddlewareBuilder {
	return &CheckAdminTokenMiddlewareBuilder{
		token:  token,
		logger: elog.DefaultLogger,
	}
}

func (b *CheckAdminTokenMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// 没有配置 token 的时候拒绝所有请求
		if b.token == "" {
			b.logger.Error("管理后台没有配置 token")
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}
		got := ctx.GetHeader(AdminTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(b.token)) != 1 {
			b.logger.Debug("非法访问管理后台", elog.String("path", ctx.Request.URL.Path))
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}
		ctx.Next()
	}
}
