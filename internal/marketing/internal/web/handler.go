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

package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ecodeclub/examsite/internal/marketing/internal/domain"
	"github.com/ecodeclub/examsite/internal/marketing/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// 监听者来不及消费时最多积压的事件数
const watchBufferSize = 16

type Handler struct {
	svc    service.DemoModalService
	logger *elog.Component
}

func NewHandler(svc service.DemoModalService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/demo-modal")
	g.GET("", ginx.W(h.State))
	g.POST("/open", ginx.W(h.Open))
	g.POST("/close", ginx.W(h.Close))
	g.GET("/watch", h.Watch)
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) State(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{Data: newDemoModal(h.svc.State())}, nil
}

func (h *Handler) Open(ctx *ginx.Context) (ginx.Result, error) {
	h.svc.OnOpen()
	return ginx.Result{Data: newDemoModal(h.svc.State())}, nil
}

func (h *Handler) Close(ctx *ginx.Context) (ginx.Result, error) {
	h.svc.OnClose()
	return ginx.Result{Data: newDemoModal(h.svc.State())}, nil
}

// Watch 以 SSE 的形式推送状态变更，连接建立时先推一次当前状态
func (h *Handler) Watch(ctx *gin.Context) {
	flusher, ok := ctx.Writer.(http.Flusher)
	if !ok {
		h.logger.Error("不支持流式响应")
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ch := make(chan domain.DemoModal, watchBufferSize)
	cancel := h.svc.Subscribe(func(state domain.DemoModal) {
		select {
		case ch <- state:
		default:
			h.logger.Warn("弹窗状态推送积压，丢弃事件", elog.Any("state", state))
		}
	})
	defer cancel()

	ctx.Writer.Header().Set("Content-Type", "text/event-stream")
	ctx.Writer.Header().Set("Cache-Control", "no-cache")
	ctx.Writer.Header().Set("Connection", "keep-alive")
	ctx.Status(http.StatusOK)

	if !h.send(ctx, flusher, h.svc.State()) {
		return
	}
	done := ctx.Request.Context().Done()
	for {
		select {
		case <-done:
			return
		case state := <-ch:
			if !h.send(ctx, flusher, state) {
				return
			}
		}
	}
}

func (h *Handler) send(ctx *gin.Context, flusher http.Flusher, state domain.DemoModal) bool {
	data, _ := json.Marshal(newDemoModal(state))
	_, err := fmt.Fprintf(ctx.Writer, "event: state\ndata: %s\n\n", data)
	if err != nil {
		h.logger.Error("推送弹窗状态失败", elog.FieldErr(err))
		return false
	}
	flusher.Flush()
	return true
}
