// Copyright 2025 Greenmask
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package csvopts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDelimiter(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected rune
	}{
		{name: "comma", value: ",", expected: ','},
		{name: "pipe", value: "|", expected: '|'},
		{name: "unicode character", value: "§", expected: '§'},
		{name: "tab", value: `\t`, expected: '\t'},
		{name: "carriage return", value: `\r`, expected: '\r'},
		{name: "backspace", value: `\b`, expected: '\b'},
		{name: "form feed", value: `\f`, expected: '\f'},
		{name: "double quote", value: `\"`, expected: '"'},
		{name: "single quote", value: `\'`, expected: '\''},
		{name: "backslash", value: `\\`, expected: '\\'},
		{name: "nul reference", value: `\u0000`, expected: 0},
		{name: "unicode reference", value: `\u0001`, expected: '\u0001'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := DecodeDelimiter(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestDecodeDelimiter_Errors(t *testing.T) {
	tests := []struct {
		name  string
		value string
		msg   string
	}{
		{name: "empty", value: "", msg: "cannot be empty"},
		{name: "single backslash", value: `\`, msg: "single backslash is prohibited"},
		{name: "unsupported escape", value: `\x`, msg: "unsupported special character"},
		{name: "bad unicode reference", value: `\uZZZZ`, msg: "unsupported unicode reference"},
		{name: "two characters", value: "ab", msg: "more than one character"},
		{name: "long escape", value: `\tt`, msg: "more than one character"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDelimiter(tt.value)
			require.ErrorIs(t, err, ErrInvalidDelimiter)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
