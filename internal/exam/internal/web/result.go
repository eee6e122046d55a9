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
	"github.com/ecodeclub/examsite/internal/exam/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidResponseResult = ginx.Result{
		Code: errs.InvalidResponse.Code,
		Msg:  errs.InvalidResponse.Msg,
	}
	invalidExamIDResult = ginx.Result{
		Code: errs.InvalidExamID.Code,
		Msg:  errs.InvalidExamID.Msg,
	}
)

// rejectedResult 后台的拒绝原因直接透传给用户
func rejectedResult(msg string) ginx.Result {
	if msg == "" {
		msg = errs.ExamRejected.Msg
	}
	return ginx.Result{
		Code: errs.ExamRejected.Code,
		Msg:  msg,
	}
}
