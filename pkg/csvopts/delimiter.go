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
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

var (
	ErrInvalidDelimiter = errors.New("invalid delimiter")
)

// DecodeDelimiter converts the delimiter token into a single character. It accepts a single
// character, the escape sequences \t \r \b \f \" \' \\ and unicode references like \u0001.
func DecodeDelimiter(v string) (rune, error) {
	switch utf8.RuneCountInString(v) {
	case 0:
		return 0, fmt.Errorf("delimiter cannot be empty string: %w", ErrInvalidDelimiter)
	case 1:
		if v == `\` {
			return 0, fmt.Errorf(
				"single backslash is prohibited, it has special meaning as beginning of an escape sequence. "+
					"To get the backslash character, pass a string with two backslashes as the delimiter: %w",
				ErrInvalidDelimiter,
			)
		}
		r, _ := utf8.DecodeRuneInString(v)
		return r, nil
	}

	if v[0] != '\\' {
		return 0, fmt.Errorf("delimiter cannot be more than one character \"%s\": %w", v, ErrInvalidDelimiter)
	}

	if len(v) == 2 {
		switch v[1] {
		case 't':
			return '\t', nil
		case 'r':
			return '\r', nil
		case 'b':
			return '\b', nil
		case 'f':
			return '\f', nil
		case '"':
			return '"', nil
		case '\'':
			return '\'', nil
		case '\\':
			return '\\', nil
		}
		return 0, fmt.Errorf("unsupported special character for delimiter \"%s\": %w", v, ErrInvalidDelimiter)
	}

	if len(v) == 6 && v[1] == 'u' {
		code, err := strconv.ParseUint(v[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("unsupported unicode reference for delimiter \"%s\": %w", v, ErrInvalidDelimiter)
		}
		return rune(code), nil
	}

	return 0, fmt.Errorf("delimiter cannot be more than one character \"%s\": %w", v, ErrInvalidDelimiter)
}
