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

	"github.com/ecodeclub/examsite/internal/exam/internal/domain"
	"github.com/ecodeclub/examsite/internal/exam/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/exam")
	g.POST("/start", ginx.BS[StartReq](h.Start))
}

func (h *Handler) Start(ctx *ginx.Context, req StartReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.Start(ctx.Request.Context(), sess.Claims().Uid, req.ExamID)
	var rejected *domain.RejectedError
	switch {
	case err == nil:
		return ginx.Result{Data: newStartResp(res)}, nil
	case errors.As(err, &rejected):
		return rejectedResult(rejected.Message), nil
	case errors.Is(err, service.ErrInvalidExamID):
		return invalidExamIDResult, nil
	case errors.Is(err, domain.ErrInvalidResponse):
		return invalidResponseResult, err
	default:
		return systemErrorResult, err
	}
}
