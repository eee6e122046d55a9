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
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

type traceConfig struct {
	ServiceName    string  `yaml:"serviceName"`
	ServiceVersion string  `yaml:"serviceVersion"`
	Endpoint       string  `yaml:"endpoint"`
	SampleRatio    float64 `yaml:"sampleRatio"`
}

// InitZipkinTracer 初始化 zipkin tracer，GORM 插件和 MQ 生产者都从全局 provider 取 tracer
func InitZipkinTracer() *trace.TracerProvider {
	cfg := loadTraceConfig()
	res, err := newResource(cfg)
	if err != nil {
		elog.Panic("init resource failed", elog.FieldErr(err))
	}

	otel.SetTextMapPropagator(newPropagator())

	tp, err := newTracerProvider(cfg, res)
	if err != nil {
		elog.Panic("init tracer provider failed", elog.FieldErr(err))
	}
	otel.SetTracerProvider(tp)
	return tp
}

func loadTraceConfig() traceConfig {
	cfg := traceConfig{
		ServiceName:    "examsite",
		ServiceVersion: "v0.0.1",
		SampleRatio:    1,
	}
	if econf.Get("trace.zipkin") != nil {
		if err := econf.UnmarshalKey("trace.zipkin", &cfg); err != nil {
			elog.Panic("解析 trace 配置失败", elog.FieldErr(err))
		}
	}
	return cfg
}

func newResource(cfg traceConfig) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
}

func newTracerProvider(cfg traceConfig, res *resource.Resource) (*trace.TracerProvider, error) {
	exporter, err := zipkin.New(cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	return trace.NewTracerProvider(
		trace.WithBatcher(exporter, trace.WithBatchTimeout(time.Second)),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(cfg.SampleRatio))),
		trace.WithResource(res),
	), nil
}

func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}
