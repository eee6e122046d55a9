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

package test

import (
	"encoding/json"
	"net/http/httptest"
)

type JSONResponseRecorder[T any] struct {
	*httptest.ResponseRecorder
}

func NewJSONResponseRecorder[T any]() JSONResponseRecorder[T] {
	return JSONResponseRecorder[T]{
		ResponseRecorder: httptest.NewRecorder(),
	}
}

func (r JSONResponseRecorder[T]) Scan() (Result[T], error) {
	var res Result[T]
	err := json.NewDecoder(r.Body).Decode(&res)
	return res, err
}

// MustScan 响应体不是合法的 JSON 就直接 panic
func (r JSONResponseRecorder[T]) MustScan() Result[T] {
	res, err := r.Scan()
	if err != nil {
		panic(err)
	}
	return res
}
