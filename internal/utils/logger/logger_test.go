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

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json info", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		l, err := New(buf, "info", LogFormatJsonValue)
		require.NoError(t, err)

		l.Debug().Msg("hidden")
		l.Info().Str("OptionName", "sep").Msg("visible")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "visible", entry["message"])
		assert.Equal(t, "sep", entry["OptionName"])
		assert.NotContains(t, entry, "pid")
	})

	t.Run("json debug adds caller and pid", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		l, err := New(buf, "debug", LogFormatJsonValue)
		require.NoError(t, err)

		l.Debug().Msg("visible")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Contains(t, entry, "pid")
		assert.Contains(t, entry, "caller")
	})

	t.Run("text", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		l, err := New(buf, "warn", LogFormatTextValue)
		require.NoError(t, err)

		l.Info().Msg("hidden")
		l.Warn().Msg("visible")
		assert.Contains(t, buf.String(), "visible")
		assert.NotContains(t, buf.String(), "hidden")
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := New(bytes.NewBuffer(nil), "trace", LogFormatJsonValue)
		require.ErrorContains(t, err, "unknown log level")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := New(bytes.NewBuffer(nil), "info", "xml")
		require.ErrorContains(t, err, "unknown log format")
	})
}
