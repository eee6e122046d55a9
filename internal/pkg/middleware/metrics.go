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
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type MetricsBuilder struct {
	server      string
	durationVec *prometheus.HistogramVec
	activeGauge prometheus.Gauge
}

// NewMetricsBuilder server 用来区分同一个进程里的多个 HTTP 服务
func NewMetricsBuilder(reg prometheus.Registerer, server string) (*MetricsBuilder, error) {
	durationVec := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   "examsite",
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP 请求耗时",
			ConstLabels: prometheus.Labels{"server": server},
			Buckets:     []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 3},
		},
		[]string{"method", "path", "status_code"},
	)
	activeGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   "examsite",
		Subsystem:   "http",
		Name:        "active_requests",
		Help:        "正在处理的 HTTP 请求数",
		ConstLabels: prometheus.Labels{"server": server},
	})
	if err := reg.Register(durationVec); err != nil {
		return nil, err
	}
	if err := reg.Register(activeGauge); err != nil {
		return nil, err
	}
	return &MetricsBuilder{
		server:      server,
		durationVec: durationVec,
		activeGauge: activeGauge,
	}, nil
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		b.activeGauge.Inc()
		defer b.activeGauge.Dec()

		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			// 没有匹配上路由的，不按照原始路径打点，避免标签爆炸
			path = "unknown"
		}
		b.durationVec.WithLabelValues(ctx.Request.Method, path,
			strconv.Itoa(ctx.Writer.Status())).Observe(time.Since(start).Seconds())
	}
}
