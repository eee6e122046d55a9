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

	"github.com/ecodeclub/examsite/internal/competition"
	"github.com/ecodeclub/examsite/internal/exam"
	"github.com/ecodeclub/examsite/internal/marketing"
	"github.com/ecodeclub/examsite/internal/pkg/middleware"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

func initGinxServer(sp session.Provider,
	mhdl *marketing.Handler,
	chdl *competition.Handler,
	ehdl *exam.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	metrics, err := middleware.NewMetricsBuilder(prometheus.DefaultRegisterer, "web")
	if err != nil {
		panic(err)
	}
	res.Use(metrics.Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type", "Idempotency-Key"},
		AllowOriginFunc:  allowOrigin(econf.GetStringSlice("web.allowOrigins")),
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	mhdl.PublicRoutes(res.Engine)
	chdl.PublicRoutes(res.Engine)
	ehdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	res.Use(middleware.NewIdempotencyKeyBuilder().Build())
	mhdl.PrivateRoutes(res.Engine)
	chdl.PrivateRoutes(res.Engine)
	ehdl.PrivateRoutes(res.Engine)
	return res
}

// allowOrigin 本地开发总是放行，其余只放行配置的域名
func allowOrigin(domains []string) func(origin string) bool {
	return func(origin string) bool {
		if strings.HasPrefix(origin, "http://localhost") {
			return true
		}
		for _, d := range domains {
			if d != "" && strings.Contains(origin, d) {
				return true
			}
		}
		return false
	}
}
