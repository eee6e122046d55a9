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

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/examsite/internal/exam"
	"github.com/ecodeclub/examsite/internal/exam/internal/errs"
	"github.com/ecodeclub/examsite/internal/exam/internal/web"
	"github.com/ecodeclub/examsite/internal/pkg/types"
	"github.com/ecodeclub/examsite/internal/test"
	testioc "github.com/ecodeclub/examsite/internal/test/ioc"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 2048

type ModuleTestSuite struct {
	suite.Suite
	backend  *httptest.Server
	calls    atomic.Int64
	server   *egin.Component
	consumer mq.Consumer
}

func (s *ModuleTestSuite) SetupSuite() {
	s.backend = httptest.NewServer(http.HandlerFunc(s.serveStartExam))
	econf.Set("exam", map[string]any{
		"baseURL": s.backend.URL,
		"timeout": "1s",
		"retry": map[string]any{
			"interval":    "1ms",
			"maxInterval": "5ms",
			"maxRetries":  2,
		},
	})
	q := testioc.InitMQ()
	consumer, err := q.Consumer(exam.ExamStartedTopic, "exam_module_test")
	require.NoError(s.T(), err)
	s.consumer = consumer

	module, err := exam.InitModule(q)
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{Uid: uid}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *ModuleTestSuite) TearDownSuite() {
	s.backend.Close()
}

// serveStartExam 模拟考试后台：flaky 第一次返回 503，closed 表示考试已结束
func (s *ModuleTestSuite) serveStartExam(w http.ResponseWriter, r *http.Request) {
	call := s.calls.Add(1)
	var req exam.StartExamRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	w.Header().Set("Content-Type", "application/json")
	switch req.ExamID {
	case "flaky":
		if call%2 == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	case "closed":
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"success":false,"message":"考试已结束"}`))
		return
	case "broken":
		_, _ = w.Write([]byte(`{"success":true,"data":{"examPortalUrl":"","durationMinutes":0}}`))
		return
	}
	_ = json.NewEncoder(w).Encode(exam.StartExamResponse{
		Success: true,
		Data: &exam.StartExamData{
			ExamPortalURL:   "https://portal.example.com/" + req.ExamID.String(),
			ExamTitle:       "标题 " + req.ExamID.String(),
			TotalQuestions:  5,
			DurationMinutes: 45,
		},
	})
}

func (s *ModuleTestSuite) SetupTest() {
	s.calls.Store(0)
}

func (s *ModuleTestSuite) TestStart() {
	testCases := []struct {
		name      string
		examID    string
		wantCode  int
		wantResp  test.Result[web.StartResp]
		wantCalls int64
		wantEvent bool
	}{
		{
			name:     "开考成功",
			examID:   "go-101",
			wantCode: 200,
			wantResp: test.Result[web.StartResp]{
				Data: web.StartResp{
					ExamPortalURL:   "https://portal.example.com/go-101",
					ExamTitle:       "标题 go-101",
					TotalQuestions:  5,
					DurationMinutes: 45,
				},
			},
			wantCalls: 1,
			wantEvent: true,
		},
		{
			name:     "后台暂时不可用，重试之后成功",
			examID:   "flaky",
			wantCode: 200,
			wantResp: test.Result[web.StartResp]{
				Data: web.StartResp{
					ExamPortalURL:   "https://portal.example.com/flaky",
					ExamTitle:       "标题 flaky",
					TotalQuestions:  5,
					DurationMinutes: 45,
				},
			},
			wantCalls: 2,
			wantEvent: true,
		},
		{
			name:     "考试已结束",
			examID:   "closed",
			wantCode: 200,
			wantResp: test.Result[web.StartResp]{
				Code: errs.ExamRejected.Code,
				Msg:  "考试已结束",
			},
			wantCalls: 1,
		},
		{
			name:     "后台数据不合法",
			examID:   "broken",
			wantCode: 500,
			wantResp: test.Result[web.StartResp]{
				Code: errs.InvalidResponse.Code,
				Msg:  errs.InvalidResponse.Msg,
			},
			wantCalls: 1,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			s.calls.Store(0)
			req, err := http.NewRequest(http.MethodPost,
				"/exam/start", iox.NewJSONReader(web.StartReq{ExamID: types.ID(tc.examID)}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.StartResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
			assert.Equal(t, tc.wantCalls, s.calls.Load())
			if !tc.wantEvent {
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			msg, err := s.consumer.Consume(ctx)
			require.NoError(t, err)
			var evt exam.ExamStartedEvent
			require.NoError(t, json.Unmarshal(msg.Value, &evt))
			assert.Equal(t, int64(uid), evt.Uid)
			assert.Equal(t, tc.examID, evt.ExamID)
		})
	}
}

func TestModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}
