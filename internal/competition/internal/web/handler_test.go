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
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/examsite/internal/competition/internal/domain"
	"github.com/ecodeclub/examsite/internal/competition/internal/errs"
	"github.com/ecodeclub/examsite/internal/competition/internal/service"
	compmocks "github.com/ecodeclub/examsite/internal/competition/mocks"
	"github.com/ecodeclub/examsite/internal/pkg/query"
	"github.com/ecodeclub/examsite/internal/pkg/types"
	"github.com/ecodeclub/examsite/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(svc service.Service) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	server := gin.New()
	hdl := NewHandler(service.NewListQuery(svc, nil, query.Options{}),
		service.NewDetailQuery(svc, nil, query.Options{}))
	hdl.PublicRoutes(server)
	return server
}

func TestHandler_List(t *testing.T) {
	start := time.UnixMilli(1700000000000)
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Service
		req      map[string]any
		wantCode int
		wantResp test.Result[ListResp]
	}{
		{
			name: "查询成功",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := compmocks.NewMockService(ctrl)
				svc.EXPECT().List(gomock.Any(), domain.ListQuery{
					Status: types.StatusActive,
					SortBy: domain.SortByStartAt,
					Desc:   true,
					Limit:  2,
				}).Return(domain.CompetitionList{
					List: []domain.Competition{
						{
							ID:               "c-1",
							Title:            "春季赛",
							Status:           types.StatusActive,
							ExamID:           "e-1",
							StartAt:          start,
							EndAt:            start.Add(time.Hour),
							ParticipantCount: 3,
							Ctime:            start,
							Utime:            start,
						},
					},
					Total: 5,
				}, nil)
				return svc
			},
			req:      map[string]any{"status": "ACTIVE", "sortBy": "unknown", "desc": true, "limit": 2},
			wantCode: 200,
			wantResp: test.Result[ListResp]{
				Data: ListResp{
					List: []Competition{
						{
							ID:               "c-1",
							Title:            "春季赛",
							Status:           "ACTIVE",
							ExamID:           "e-1",
							StartAt:          1700000000000,
							EndAt:            1700003600000,
							ParticipantCount: 3,
							Ctime:            1700000000000,
							Utime:            1700000000000,
						},
					},
					Total: 5,
				},
			},
		},
		{
			name: "空列表",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := compmocks.NewMockService(ctrl)
				svc.EXPECT().List(gomock.Any(), domain.ListQuery{}.Normalize()).
					Return(domain.CompetitionList{}, nil)
				return svc
			},
			req:      map[string]any{},
			wantCode: 200,
			wantResp: test.Result[ListResp]{
				Data: ListResp{List: []Competition{}},
			},
		},
		{
			name: "系统错误",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := compmocks.NewMockService(ctrl)
				svc.EXPECT().List(gomock.Any(), gomock.Any()).
					Return(domain.CompetitionList{}, errors.New("db 挂了"))
				return svc
			},
			req:      map[string]any{"limit": 10},
			wantCode: 500,
			wantResp: test.Result[ListResp]{
				Code: errs.SystemError.Code,
				Msg:  errs.SystemError.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			server := newServer(tc.mock(ctrl))
			req, err := http.NewRequest(http.MethodPost,
				"/competition/list", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[ListResp]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_ListInvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := newServer(compmocks.NewMockService(ctrl))
	req, err := http.NewRequest(http.MethodPost,
		"/competition/list", iox.NewJSONReader(map[string]any{"status": "DELETED"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[ListResp]()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_Detail(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Service
		req      DetailReq
		wantResp test.Result[Competition]
	}{
		{
			name: "查询成功",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := compmocks.NewMockService(ctrl)
				svc.EXPECT().Detail(gomock.Any(), types.ID("c-1")).Return(domain.Competition{
					ID:      "c-1",
					Title:   "春季赛",
					Status:  types.StatusCompleted,
					StartAt: time.UnixMilli(1),
					EndAt:   time.UnixMilli(2),
					Ctime:   time.UnixMilli(3),
					Utime:   time.UnixMilli(4),
				}, nil)
				return svc
			},
			req: DetailReq{ID: "c-1"},
			wantResp: test.Result[Competition]{
				Data: Competition{
					ID:      "c-1",
					Title:   "春季赛",
					Status:  "COMPLETED",
					StartAt: 1,
					EndAt:   2,
					Ctime:   3,
					Utime:   4,
				},
			},
		},
		{
			name: "竞赛不存在",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := compmocks.NewMockService(ctrl)
				svc.EXPECT().Detail(gomock.Any(), types.ID("404")).
					Return(domain.Competition{}, service.ErrCompetitionNotFound)
				return svc
			},
			req: DetailReq{ID: "404"},
			wantResp: test.Result[Competition]{
				Code: errs.CompetitionNotFound.Code,
				Msg:  errs.CompetitionNotFound.Msg,
			},
		},
		{
			name: "没有传 ID",
			mock: func(ctrl *gomock.Controller) service.Service {
				return compmocks.NewMockService(ctrl)
			},
			wantResp: test.Result[Competition]{
				Code: errs.CompetitionNotFound.Code,
				Msg:  errs.CompetitionNotFound.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			server := newServer(tc.mock(ctrl))
			req, err := http.NewRequest(http.MethodPost,
				"/competition/detail", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[Competition]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}
