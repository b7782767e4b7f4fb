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

package dateformat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const defaultTimestampPattern = "yyyy-MM-dd'T'HH:mm:ss.SSSXXX"

func TestNew_Layout(t *testing.T) {
	tests := []struct {
		pattern string
		layout  string
		ok      bool
	}{
		{pattern: "yyyy-MM-dd", layout: "2006-01-02", ok: true},
		{pattern: defaultTimestampPattern, layout: "2006-01-02T15:04:05.000Z07:00", ok: true},
		{pattern: "dd/MM/yy", layout: "02/01/06", ok: true},
		{pattern: "EEE, d MMM yyyy hh:mm a z", layout: "Mon, 2 Jan 2006 03:04 PM MST", ok: true},
		{pattern: "EEEE MMMM", layout: "Monday January", ok: true},
		{pattern: "yyyy-MM-dd'T'HH:mm:ssX", layout: "2006-01-02T15:04:05Z07", ok: true},
		{pattern: "yyyy-MM-dd HH:mm:ssxx", layout: "2006-01-02 15:04:05-0700", ok: true},
		{pattern: "h 'o''clock'", layout: "3 o'clock", ok: true},
		{pattern: "''yyyy''", layout: "'2006'", ok: true},
		{pattern: "yyyyMMddHHmmssSSS"},
		{pattern: "kk:mm"},
		{pattern: "H:mm"},
		{pattern: "HH:mm:ss,SSSSSS Z"},
		{pattern: "yyyy 'Mon'"},
		{pattern: "G yyyy"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			f, err := New(tt.pattern, language.AmericanEnglish, nil)
			require.NoError(t, err)
			layout, ok := f.Layout()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.layout, layout)
			assert.Equal(t, tt.pattern, f.Pattern())
		})
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{name: "unknown letter", pattern: "yyyy-qq"},
		{name: "unterminated quote", pattern: "yyyy 'at"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.pattern, language.AmericanEnglish, nil)
			require.ErrorIs(t, err, ErrUnsupportedPattern)
		})
	}
}

func TestFormatter_Format(t *testing.T) {
	// Thursday
	ts := time.Date(2024, 3, 7, 10, 11, 12, 345_000_000, time.UTC)

	tests := []struct {
		name     string
		pattern  string
		value    time.Time
		expected string
	}{
		{name: "compact", pattern: "yyyyMMddHHmmssSSS", value: ts, expected: "20240307101112345"},
		{name: "default timestamp", pattern: defaultTimestampPattern, value: ts, expected: "2024-03-07T10:11:12.345Z"},
		{name: "hour of day 1-24", pattern: "yyyy-MM-dd kk:mm", value: ts, expected: "2024-03-07 10:11"},
		{
			name:     "midnight as 24",
			pattern:  "kk:mm",
			value:    time.Date(2024, 3, 7, 0, 5, 0, 0, time.UTC),
			expected: "24:05",
		},
		{
			name:     "hour in am/pm 0-11",
			pattern:  "K:mm a",
			value:    time.Date(2024, 3, 7, 12, 30, 0, 0, time.UTC),
			expected: "0:30 PM",
		},
		{
			name:     "hour in am/pm 1-12",
			pattern:  "h:mm a",
			value:    time.Date(2024, 3, 7, 12, 30, 0, 0, time.UTC),
			expected: "12:30 PM",
		},
		{
			name:     "single letter fields are not padded",
			pattern:  "H:m:s.S",
			value:    time.Date(2024, 3, 7, 9, 5, 7, 45_000_000, time.UTC),
			expected: "9:5:7.45",
		},
		{name: "milliseconds padded to the count", pattern: "SSSSSS", value: ts, expected: "000345"},
		{name: "era", pattern: "G yyyy", value: ts, expected: "AD 2024"},
		{name: "short names", pattern: "EEE, d MMM yyyy", value: ts, expected: "Thu, 7 Mar 2024"},
		{name: "full names", pattern: "EEEE MMMM", value: ts, expected: "Thursday March"},
		{name: "day of year", pattern: "D", value: ts, expected: "67"},
		{name: "padded day of year", pattern: "DDD", value: ts, expected: "067"},
		{name: "week of year", pattern: "w", value: ts, expected: "10"},
		{name: "week of month", pattern: "W", value: ts, expected: "2"},
		{name: "day of week in month", pattern: "F", value: ts, expected: "1"},
		{name: "two digit year", pattern: "yy", value: ts, expected: "24"},
		{name: "quoted text", pattern: "'week' w 'of' yyyy", value: ts, expected: "week 10 of 2024"},
		{name: "escaped quote", pattern: "hh 'o''clock' a", value: ts, expected: "10 o'clock AM"},
		{
			name:     "last days of december belong to the first week",
			pattern:  "w",
			value:    time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			expected: "1",
		},
		{
			name:     "second sunday of january",
			pattern:  "w",
			value:    time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
			expected: "2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.pattern, language.AmericanEnglish, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f.Format(tt.value))
		})
	}

	t.Run("timestamp in location", func(t *testing.T) {
		loc := time.FixedZone("UTC+2", 2*3600)
		f, err := New(defaultTimestampPattern, language.AmericanEnglish, loc)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-07T12:11:12.345+02:00", f.Format(ts))
	})

	t.Run("literal looking like a layout", func(t *testing.T) {
		f, err := New("yyyy 'Mon' MM '1'", language.AmericanEnglish, nil)
		require.NoError(t, err)
		assert.Equal(t, "2024 Mon 03 1", f.Format(ts))
	})
}

func TestFormatter_Parse(t *testing.T) {
	plus2 := time.FixedZone("UTC+2", 2*3600)

	tests := []struct {
		name     string
		pattern  string
		loc      *time.Location
		value    string
		expected time.Time
	}{
		{
			name:     "date",
			pattern:  "yyyy-MM-dd",
			value:    "2024-03-07",
			expected: time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "compact",
			pattern:  "yyyyMMddHHmmssSSS",
			value:    "20240307101112345",
			expected: time.Date(2024, 3, 7, 10, 11, 12, 345_000_000, time.UTC),
		},
		{
			name:     "offset",
			pattern:  defaultTimestampPattern,
			value:    "2024-03-07T12:11:12.345+02:00",
			expected: time.Date(2024, 3, 7, 10, 11, 12, 345_000_000, time.UTC),
		},
		{
			name:     "utc designator",
			pattern:  defaultTimestampPattern,
			loc:      plus2,
			value:    "2024-03-07T10:11:12.345Z",
			expected: time.Date(2024, 3, 7, 10, 11, 12, 345_000_000, time.UTC),
		},
		{
			name:     "value without offset uses location",
			pattern:  "yyyy-MM-dd HH:mm:ss",
			loc:      plus2,
			value:    "2024-03-07 12:00:00",
			expected: time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "hour 24 is midnight",
			pattern:  "yyyy-MM-dd kk:mm",
			value:    "2024-03-07 24:05",
			expected: time.Date(2024, 3, 7, 0, 5, 0, 0, time.UTC),
		},
		{
			name:     "am",
			pattern:  "yyyy-MM-dd h:mm a",
			value:    "2024-03-07 12:30 AM",
			expected: time.Date(2024, 3, 7, 0, 30, 0, 0, time.UTC),
		},
		{
			name:     "pm",
			pattern:  "yyyy-MM-dd h:mm a",
			value:    "2024-03-07 1:30 pm",
			expected: time.Date(2024, 3, 7, 13, 30, 0, 0, time.UTC),
		},
		{
			name:     "month and weekday names ignore case",
			pattern:  "EEE, d MMM yyyy",
			value:    "thu, 7 MAR 2024",
			expected: time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "two digit year after pivot",
			pattern:  "dd/MM/yy",
			value:    "07/03/85",
			expected: time.Date(1985, 3, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "two digit year before pivot",
			pattern:  "dd/MM/yy",
			value:    "07/03/24",
			expected: time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "era",
			pattern:  "yyyy-MM-dd G",
			value:    "0044-03-15 BC",
			expected: time.Date(-43, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "day of year",
			pattern:  "yyyy-DDD",
			value:    "2024-067",
			expected: time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "literal with digits",
			pattern:  "yyyy 'Q1' MM",
			value:    "2024 Q1 03",
			expected: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.pattern, language.AmericanEnglish, tt.loc)
			require.NoError(t, err)
			res, err := f.Parse(tt.value)
			require.NoError(t, err)
			assert.Truef(t, tt.expected.Equal(res), "expected %s got %s", tt.expected, res)
		})
	}
}

func TestFormatter_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		value   string
	}{
		{name: "different order", pattern: "yyyy-MM-dd", value: "07.03.2024"},
		{name: "day does not exist", pattern: "yyyy-MM-dd", value: "2024-02-30"},
		{name: "trailing text", pattern: "yyyy-MM-dd", value: "2024-03-07 10:00"},
		{name: "month out of range", pattern: "yyyy-MM-dd", value: "2024-13-01"},
		{name: "hour out of range", pattern: "HH:mm", value: "24:00"},
		{name: "short compact value", pattern: "yyyyMMdd", value: "202403"},
		{name: "unknown month", pattern: "d MMM yyyy", value: "7 Foo 2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.pattern, language.AmericanEnglish, nil)
			require.NoError(t, err)
			_, err = f.Parse(tt.value)
			require.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestFormatter_RoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 7, 22, 11, 12, 345_000_000, time.FixedZone("", -5*3600))
	patterns := []string{
		defaultTimestampPattern,
		"yyyyMMddHHmmssSSSZ",
		"EEEE, MMMM d yyyy hh:mm:ss.SSS a xxx",
		"kk:mm:ss.SSS dd.MM.yyyy X",
	}
	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			f, err := New(pattern, language.AmericanEnglish, nil)
			require.NoError(t, err)
			res, err := f.Parse(f.Format(ts))
			require.NoError(t, err)
			assert.True(t, ts.Equal(res))
		})
	}
}
