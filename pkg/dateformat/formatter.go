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

// Package dateformat builds date and timestamp formatters from SimpleDateFormat-like patterns
// such as "yyyy-MM-dd'T'HH:mm:ss.SSSXXX".
//
// Text fields (month and weekday names, AM/PM markers, eras, zone abbreviations) are always rendered
// in English, the locale is kept for the consumers that need it. Weeks start on Sunday and the first
// week of the year is the one containing January 1st.
package dateformat

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/text/language"
)

var (
	ErrUnsupportedPattern = errors.New("unsupported pattern")
	ErrInvalidValue       = errors.New("value does not match the pattern")
)

// Formatter - immutable date/time formatter bound to the pattern, locale and optionally location.
type Formatter struct {
	pattern  string
	segments []segment
	// layout - equivalent Go layout, empty if hasLayout is false
	layout    string
	hasLayout bool
	locale    language.Tag
	location  *time.Location
}

// New creates the formatter. When loc is nil values are formatted in their own location and parsed
// as UTC, which is what date-only patterns need.
func New(pattern string, locale language.Tag, loc *time.Location) (*Formatter, error) {
	segments, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	layout, hasLayout := buildLayout(segments)
	return &Formatter{
		pattern:   pattern,
		segments:  segments,
		layout:    layout,
		hasLayout: hasLayout,
		locale:    locale,
		location:  loc,
	}, nil
}

func (f *Formatter) Pattern() string {
	return f.pattern
}

// Layout returns the equivalent Go layout. The second result is false for patterns that Go layouts
// cannot express, for instance "yyyyMMddHHmmssSSS" or "kk:mm".
func (f *Formatter) Layout() (string, bool) {
	return f.layout, f.hasLayout
}

func (f *Formatter) Locale() language.Tag {
	return f.locale
}

// Location returns the bound location or nil.
func (f *Formatter) Location() *time.Location {
	return f.location
}

func (f *Formatter) Format(t time.Time) string {
	if f.location != nil {
		t = t.In(f.location)
	}
	var sb strings.Builder
	for _, s := range f.segments {
		if s.isField() {
			formatField(&sb, s, t)
		} else {
			sb.WriteString(s.literal)
		}
	}
	return sb.String()
}

// Parse reads the value written in the pattern. Fields missing in the pattern default to
// 1970-01-01 00:00:00, the location is taken from the value, then from the formatter, then UTC.
func (f *Formatter) Parse(v string) (time.Time, error) {
	p := &parser{
		pattern: f.pattern,
		value:   v,
		year:    1970,
		month:   1,
		day:     1,
	}
	if err := p.run(f.segments); err != nil {
		return time.Time{}, err
	}
	loc := f.location
	if loc == nil {
		loc = time.UTC
	}
	return p.build(loc)
}

func (f *Formatter) String() string {
	return f.pattern
}

func (f *Formatter) MarshalText() ([]byte, error) {
	return []byte(f.pattern), nil
}
