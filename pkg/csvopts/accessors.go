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
	"strconv"
	"strings"
	"unicode/utf8"
)

// getChar - absent option gives the default, empty string gives the nul sentinel which means
// the feature is disabled, a single character is returned as is.
func getChar(p Params, name string, defaultValue rune) (rune, error) {
	v, ok := p.Get(name)
	if !ok {
		return defaultValue, nil
	}
	switch utf8.RuneCountInString(v) {
	case 0:
		return 0, nil
	case 1:
		r, _ := utf8.DecodeRuneInString(v)
		return r, nil
	}
	return 0, newInvalidOptionValueError(name, v, "cannot be more than one character")
}

// getOptionalChar - same as getChar but without default. Absent and empty values are reported as not set.
func getOptionalChar(p Params, name string) (rune, bool, error) {
	v, ok := p.Get(name)
	if !ok || v == "" {
		return 0, false, nil
	}
	if utf8.RuneCountInString(v) > 1 {
		return 0, false, newInvalidOptionValueError(name, v, "cannot be more than one character")
	}
	r, _ := utf8.DecodeRuneInString(v)
	return r, true, nil
}

func getInt(p Params, name string, defaultValue int) (int, error) {
	v, ok := p.Get(name)
	if !ok {
		return defaultValue, nil
	}
	res, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, newInvalidOptionValueError(name, v, "expected 32-bit integer value")
	}
	return int(res), nil
}

func getDouble(p Params, name string, defaultValue float64) (float64, error) {
	v, ok := p.Get(name)
	if !ok {
		return defaultValue, nil
	}
	res, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, newInvalidOptionValueError(name, v, "expected double value")
	}
	return res, nil
}

// getBool accepts only "true" and "false" in any case.
func getBool(p Params, name string, defaultValue bool) (bool, error) {
	v, ok := p.Get(name)
	if !ok {
		return defaultValue, nil
	}
	switch {
	case strings.EqualFold(v, "true"):
		return true, nil
	case strings.EqualFold(v, "false"):
		return false, nil
	}
	return false, newInvalidOptionValueError(name, v, "expected boolean value \"true\" or \"false\"")
}

// getPlainBool - the plain boolean parse used by multiLine. It accepts the same spellings as getBool
// but reports failures as a plain boolean parse error.
func getPlainBool(p Params, name string, defaultValue bool) (bool, error) {
	v, ok := p.Get(name)
	if !ok {
		return defaultValue, nil
	}
	switch {
	case strings.EqualFold(v, "true"):
		return true, nil
	case strings.EqualFold(v, "false"):
		return false, nil
	}
	return false, newInvalidOptionValueError(name, v, "cannot parse as boolean")
}

func getString(p Params, name string, defaultValue string) string {
	if v, ok := p.Get(name); ok {
		return v
	}
	return defaultValue
}
