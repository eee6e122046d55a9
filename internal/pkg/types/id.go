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
	"fmt"
)

// ID 不透明的文本标识，由后端分配，这一层不保证唯一
type ID string

func (id ID) String() string {
	return string(id)
}

func (id ID) IsZero() bool {
	return id == ""
}

func (id ID) Value() (driver.Value, error) {
	return string(id), nil
}

func (id *ID) Scan(src any) error {
	switch val := src.(type) {
	case nil:
		*id = ""
	case string:
		*id = ID(val)
	case []byte:
		*id = ID(val)
	default:
		return fmt.Errorf("ID 不支持的类型 %T", src)
	}
	return nil
}
