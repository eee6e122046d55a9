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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_RoundTrip(t *testing.T) {
	for _, st := range []Status{StatusActive, StatusInactive, StatusPending, StatusCompleted} {
		t.Run(st.String(), func(t *testing.T) {
			text, err := st.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, string(st), string(text))

			var got Status
			require.NoError(t, got.UnmarshalText(text))
			assert.Equal(t, st, got)

			data, err := json.Marshal(st)
			require.NoError(t, err)
			assert.Equal(t, `"`+string(st)+`"`, string(data))
			var fromJSON Status
			require.NoError(t, json.Unmarshal(data, &fromJSON))
			assert.Equal(t, st, fromJSON)
		})
	}
}

func TestStatus_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Status
		wantErr error
	}{
		{name: "小写", input: "active", wantErr: ErrInvalidStatus},
		{name: "未知状态", input: "DELETED", wantErr: ErrInvalidStatus},
		{name: "空值表示未设置", input: "", want: ""},
		{name: "合法", input: "PENDING", want: StatusPending},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var st Status
			err := json.Unmarshal([]byte(`"`+tc.input+`"`), &st)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, st)
		})
	}

	_, err := Status("archived").MarshalText()
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestStatus_Scan(t *testing.T) {
	var st Status
	require.NoError(t, st.Scan([]byte("COMPLETED")))
	assert.Equal(t, StatusCompleted, st)
	require.NoError(t, st.Scan(nil))
	assert.Equal(t, Status(""), st)
	assert.ErrorIs(t, st.Scan(int64(1)), ErrInvalidStatus)
	assert.ErrorIs(t, st.Scan("nope"), ErrInvalidStatus)

	val, err := StatusInactive.Value()
	require.NoError(t, err)
	assert.Equal(t, "INACTIVE", val)
}

func TestFormMode_RoundTrip(t *testing.T) {
	for _, m := range []FormMode{FormModeCreate, FormModeEdit, FormModeView} {
		t.Run(m.String(), func(t *testing.T) {
			data, err := json.Marshal(m)
			require.NoError(t, err)
			var got FormMode
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, m, got)
		})
	}

	var m FormMode
	assert.ErrorIs(t, json.Unmarshal([]byte(`"delete"`), &m), ErrInvalidFormMode)
}

func TestID(t *testing.T) {
	var id ID
	assert.True(t, id.IsZero())
	require.NoError(t, id.Scan([]byte("cmp-1")))
	assert.Equal(t, ID("cmp-1"), id)
	assert.False(t, id.IsZero())
	val, err := id.Value()
	require.NoError(t, err)
	assert.Equal(t, "cmp-1", val)
	assert.Error(t, id.Scan(3.14))
}
