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
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/examsite/internal/competition/internal/domain"
	"github.com/ecodeclub/examsite/internal/competition/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	list   *service.ListQueryClient
	detail *service.DetailQueryClient
}

func NewHandler(list *service.ListQueryClient, detail *service.DetailQueryClient) *Handler {
	return &Handler{
		list:   list,
		detail: detail,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/competition")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[DetailReq](h.Detail))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	res, err := h.list.Fetch(ctx.Request.Context(), req.toDomain())
	if err != nil {
		return systemErrorResult, fmt.Errorf("获取竞赛列表失败: %w", err)
	}
	return ginx.Result{
		Data: ListResp{
			Total: res.Total,
			List: slice.Map(res.List, func(idx int, src domain.Competition) Competition {
				return newCompetition(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	if req.ID.IsZero() {
		return notFoundResult, nil
	}
	res, err := h.detail.Fetch(ctx.Request.Context(), req.ID)
	switch {
	case errors.Is(err, service.ErrCompetitionNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, fmt.Errorf("获取竞赛详情失败: %w", err)
	}
	return ginx.Result{Data: newCompetition(res)}, nil
}
