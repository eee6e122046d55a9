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

import "fmt"

// FormMode 管理后台表单的打开方式
type FormMode string

const (
	FormModeCreate FormMode = "create"
	FormModeEdit   FormMode = "edit"
	FormModeView   FormMode = "view"
)

func ParseFormMode(s string) (FormMode, error) {
	m := FormMode(s)
	if m != "" && !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormMode, s)
	}
	return m, nil
}

func (m FormMode) IsValid() bool {
	switch m {
	case FormModeCreate, FormModeEdit, FormModeView:
		return true
	default:
		return false
	}
}

func (m FormMode) String() string {
	return string(m)
}

func (m FormMode) MarshalText() ([]byte, error) {
	if m != "" && !m.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormMode, string(m))
	}
	return []byte(m), nil
}

func (m *FormMode) UnmarshalText(text []byte) error {
	mode, err := ParseFormMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
