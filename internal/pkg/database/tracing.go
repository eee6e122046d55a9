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

package database

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "internal/pkg/database"
	spanKey             = "tracing:span"
)

// GormTracingPlugin 给每一次数据库操作创建一个 span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	if err := cb.Query().Before("gorm:query").Register("tracing:before_query", p.before("SELECT")); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("tracing:after_query", p.after("SELECT")); err != nil {
		return err
	}
	if err := cb.Create().Before("gorm:create").Register("tracing:before_create", p.before("INSERT")); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("tracing:after_create", p.after("INSERT")); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("tracing:before_update", p.before("UPDATE")); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("tracing:after_update", p.after("UPDATE")); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register("tracing:before_delete", p.before("DELETE")); err != nil {
		return err
	}
	if err := cb.Delete().After("gorm:delete").Register("tracing:after_delete", p.after("DELETE")); err != nil {
		return err
	}
	// Count 走的是 row 回调
	if err := cb.Row().Before("gorm:row").Register("tracing:before_row", p.before("ROW")); err != nil {
		return err
	}
	if err := cb.Row().After("gorm:row").Register("tracing:after_row", p.after("ROW")); err != nil {
		return err
	}
	if err := cb.Raw().Before("gorm:raw").Register("tracing:before_raw", p.before("RAW")); err != nil {
		return err
	}
	return cb.Raw().After("gorm:raw").Register("tracing:after_raw", p.after("RAW"))
}

func (p *GormTracingPlugin) before(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		ctx, span := p.tracer.Start(db.Statement.Context,
			fmt.Sprintf("%s %s", db.Statement.Table, op),
			trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.InstanceGet(spanKey)
		if !ok {
			return
		}
		if span, ok := val.(trace.Span); ok {
			p.end(db, op, span)
		}
	}
}

func (p *GormTracingPlugin) end(db *gorm.DB, op string, span trace.Span) {
	defer span.End()

	attrs := []attribute.KeyValue{
		attribute.String("db.system", db.Dialector.Name()),
		attribute.String("db.operation", op),
		attribute.String("db.table", db.Statement.Table),
		attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
	}
	if sql := db.Statement.SQL.String(); sql != "" {
		attrs = append(attrs, attribute.String("db.statement", sql))
	}
	span.SetAttributes(attrs...)

	// 记录不存在是正常的业务结果
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.RecordError(db.Error)
		span.SetStatus(codes.Error, db.Error.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
