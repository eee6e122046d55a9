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

package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

var (
	ErrInvalidStatus   = errors.New("非法的状态")
	ErrInvalidFormMode = errors.New("非法的表单模式")
)

// Status 各个端共享的通用状态
// 零值表示未设置
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusInactive  Status = "INACTIVE"
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if st != "" && !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) MarshalText() ([]byte, error) {
	if s != "" && !s.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
	}
	return []byte(s), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	st, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

func (s Status) Value() (driver.Value, error) {
	if s != "" && !s.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
	}
	return string(s), nil
}

func (s *Status) Scan(src any) error {
	switch val := src.(type) {
	case nil:
		*s = ""
		return nil
	case string:
		return s.UnmarshalText([]byte(val))
	case []byte:
		return s.UnmarshalText(val)
	default:
		return fmt.Errorf("%w: 不支持的类型 %T", ErrInvalidStatus, src)
	}
}
