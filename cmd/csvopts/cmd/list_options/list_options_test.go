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

package list_options

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenmaskio/csvopts/pkg/csvopts"
)

func TestRun_Json(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		require.NoError(t, run(buf, nil, JsonFormatName))

		var defs []*csvopts.Definition
		require.NoError(t, json.Unmarshal(buf.Bytes(), &defs))
		assert.Len(t, defs, len(csvopts.Definitions()))
	})

	t.Run("by alias keeps requested order", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		require.NoError(t, run(buf, []string{"codec", "DELIMITER"}, JsonFormatName))

		var defs []*csvopts.Definition
		require.NoError(t, json.Unmarshal(buf.Bytes(), &defs))
		require.Len(t, defs, 2)
		assert.Equal(t, csvopts.OptionCompression, defs[0].Name)
		assert.Equal(t, csvopts.OptionSep, defs[1].Name)
	})
}

func TestRun_Text(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	require.NoError(t, run(buf, []string{"sep"}, TextFormatName))
	out := buf.String()
	assert.Contains(t, out, "ALIASES")
	assert.Contains(t, out, csvopts.OptionSep)
	assert.Contains(t, out, csvopts.OptionDelimiter)
	assert.Contains(t, out, `","`)
}

func TestRun_Errors(t *testing.T) {
	err := run(bytes.NewBuffer(nil), []string{"unknown"}, TextFormatName)
	require.ErrorContains(t, err, "unknown option name \"unknown\"")

	err = run(bytes.NewBuffer(nil), nil, "xml")
	require.ErrorContains(t, err, "unknown format")
}
