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

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/studio/internal/content"
	"github.com/ecodeclub/studio/internal/mission"
	"github.com/ecodeclub/studio/internal/pkg/middleware"
	"github.com/ecodeclub/studio/internal/waitlist"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(contentHdl *content.Handler,
	missionHdl *mission.Handler,
	waitlistHdl *waitlist.Handler,
) *egin.Component {
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Content-Type"},
		AllowOriginFunc:  allowOrigin(econf.GetStringSlice("web.allowOrigins")),
	}))
	res.Use(middleware.NewMetricsBuilder("web").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	contentHdl.PublicRoutes(res.Engine)
	missionHdl.PublicRoutes(res.Engine)
	waitlistHdl.PublicRoutes(res.Engine)
	return res
}

// allowOrigin 本地开发放行 localhost，其余只放行配置的域名
func allowOrigin(domains []string) func(origin string) bool {
	return func(origin string) bool {
		if strings.HasPrefix(origin, "http://localhost") {
			return true
		}
		for _, d := range domains {
			if strings.Contains(origin, d) {
				return true
			}
		}
		return false
	}
}
