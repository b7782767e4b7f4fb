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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams(t *testing.T) {
	p := NewParams(map[string]string{
		"Sep":        ";",
		"MAXCOLUMNS": "10",
	})

	v, ok := p.Get("sep")
	require.True(t, ok)
	assert.Equal(t, ";", v)

	v, ok = p.Get("maxColumns")
	require.True(t, ok)
	assert.Equal(t, "10", v)

	_, ok = p.Get("quote")
	assert.False(t, ok)

	assert.Equal(t, []string{"maxcolumns", "sep"}, p.Keys())
	assert.Equal(t, 2, p.Len())
}

func TestParams_FirstOf(t *testing.T) {
	p := NewParams(map[string]string{"delimiter": "|"})
	name, v, ok := p.firstOf(OptionSep, OptionDelimiter)
	require.True(t, ok)
	assert.Equal(t, OptionDelimiter, name)
	assert.Equal(t, "|", v)

	_, _, ok = p.firstOf(OptionCompression, OptionCodec)
	assert.False(t, ok)
}

func TestNewParamsFromAny(t *testing.T) {
	p, err := NewParamsFromAny(map[string]any{
		"header":        true,
		"maxColumns":    100,
		"samplingRatio": 0.5,
		"quote":         nil,
		"sep":           ";",
	})
	require.NoError(t, err)

	v, _ := p.Get("header")
	assert.Equal(t, "true", v)
	v, _ = p.Get("maxcolumns")
	assert.Equal(t, "100", v)
	v, _ = p.Get("samplingratio")
	assert.Equal(t, "0.5", v)

	_, ok := p.Get("quote")
	assert.False(t, ok)
	assert.True(t, p.Contains("quote"))

	t.Run("unsupported value", func(t *testing.T) {
		_, err := NewParamsFromAny(map[string]any{"quote": []string{"a"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quote")
	})
}

func TestInvalidOptionError(t *testing.T) {
	err := newInvalidOptionValueError(OptionMaxColumns, "abc", "expected integer value")
	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.Equal(t, `invalid option "maxColumns" value "abc": expected integer value`, err.Error())

	err = newInvalidOptionError(OptionLineSep, "cannot be an empty string")
	assert.Equal(t, `invalid option "lineSep": cannot be an empty string`, err.Error())
	assert.False(t, err.HasRawValue)
}

func TestDefinitions(t *testing.T) {
	defs := Definitions()
	require.NotEmpty(t, defs)
	for i := 1; i < len(defs); i++ {
		assert.LessOrEqual(t, strings.ToLower(defs[i-1].Name), strings.ToLower(defs[i].Name))
	}

	d, ok := LookupDefinition("CODEC")
	require.True(t, ok)
	assert.Equal(t, OptionCompression, d.Name)

	_, ok = LookupDefinition("unknown")
	assert.False(t, ok)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, "DROPMALFORMED", DropMalformed.String())
	m, ok := ParseParseMode("FailFast")
	assert.True(t, ok)
	assert.Equal(t, FailFast, m)
	_, ok = ParseParseMode("strict")
	assert.False(t, ok)
}
