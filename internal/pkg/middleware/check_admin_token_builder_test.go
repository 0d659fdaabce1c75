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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCheckAdminTokenMiddlewareBuilder_Build(t *testing.T) {
	testCases := []struct {
		name       string
		token      string
		header     string
		wantCode   int
		wantCalled bool
	}{
		{
			name:       "token 正确",
			token:      "secret",
			header:     "secret",
			wantCode:   http.StatusOK,
			wantCalled: true,
		},
		{
			name:     "token 错误",
			token:    "secret",
			header:   "guess",
			wantCode: http.StatusForbidden,
		},
		{
			name:     "没有携带 token",
			token:    "secret",
			wantCode: http.StatusForbidden,
		},
		{
			name:     "没有配置 token",
			token:    "",
			header:   "",
			wantCode: http.StatusForbidden,
		},
	}
	gin.SetMode(gin.TestMode)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := gin.New()
			called := false
			server.Use(NewCheckAdminTokenMiddlewareBuilder(tc.token).Build())
			server.POST("/mission/application/list", func(ctx *gin.Context) {
				called = true
				ctx.Status(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodPost, "/mission/application/list", nil)
			if tc.header != "" {
				req.Header.Set(AdminTokenHeader, tc.header)
			}
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantCalled, called)
		})
	}
}
