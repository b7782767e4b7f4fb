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
	"fmt"
	"strings"
	"unicode"
)

// supportedLetters - pattern letters with a meaning, any other ASCII letter must be quoted
const supportedLetters = "GyuMLwWDdFEaHkKhmsSzZXx"

// segment - either a literal text or a pattern field such as "yyyy"
type segment struct {
	literal string
	letter  rune
	count   int
}

func (s segment) isField() bool {
	return s.letter != 0
}

// isNumeric reports whether the field is rendered with digits only
func (s segment) isNumeric() bool {
	switch s.letter {
	case 'y', 'u', 'w', 'W', 'D', 'd', 'F', 'H', 'k', 'K', 'h', 'm', 's', 'S':
		return true
	case 'M', 'L':
		return s.count <= 2
	}
	return false
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// compile splits the pattern into literals and fields.
func compile(pattern string) ([]segment, error) {
	var (
		res     []segment
		literal strings.Builder
		runes   = []rune(pattern)
	)

	flushLiteral := func() {
		if literal.Len() > 0 {
			res = append(res, segment{literal: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\'':
			// '' is an escaped single quote both inside and outside of the quoted text
			if i+1 < len(runes) && runes[i+1] == '\'' {
				literal.WriteRune('\'')
				i += 2
				continue
			}
			i++
			closed := false
			for i < len(runes) {
				if runes[i] == '\'' {
					if i+1 < len(runes) && runes[i+1] == '\'' {
						literal.WriteRune('\'')
						i += 2
						continue
					}
					closed = true
					i++
					break
				}
				literal.WriteRune(runes[i])
				i++
			}
			if !closed {
				return nil, fmt.Errorf("unterminated quote in pattern \"%s\": %w", pattern, ErrUnsupportedPattern)
			}
		case isPatternLetter(r):
			if !strings.ContainsRune(supportedLetters, r) {
				return nil, fmt.Errorf("pattern \"%s\": pattern letter '%c': %w", pattern, r, ErrUnsupportedPattern)
			}
			count := 1
			for i+count < len(runes) && runes[i+count] == r {
				count++
			}
			i += count
			flushLiteral()
			res = append(res, segment{letter: r, count: count})
		default:
			literal.WriteRune(r)
			i++
		}
	}
	flushLiteral()
	return res, nil
}

var ambiguousWords = []string{"Jan", "Mon", "MST", "PM", "pm"}

// isAmbiguousLiteral reports whether Go would read the literal as a layout element
func isAmbiguousLiteral(v string) bool {
	if strings.IndexFunc(v, unicode.IsDigit) != -1 {
		return true
	}
	for _, w := range ambiguousWords {
		if strings.Contains(v, w) {
			return true
		}
	}
	return false
}

// buildLayout returns the Go layout producing the same text. The second result is false when some
// field or literal has no exact Go equivalent.
func buildLayout(segments []segment) (string, bool) {
	var sb strings.Builder
	for _, s := range segments {
		if !s.isField() {
			if isAmbiguousLiteral(s.literal) {
				return "", false
			}
			sb.WriteString(s.literal)
			continue
		}
		if s.letter == 'S' {
			// Go fraction element is the separator followed by zeros
			l := sb.String()
			if s.count != 3 || l == "" || (l[len(l)-1] != '.' && l[len(l)-1] != ',') {
				return "", false
			}
			sb.WriteString("000")
			continue
		}
		el, ok := layoutElement(s)
		if !ok {
			return "", false
		}
		sb.WriteString(el)
	}
	return sb.String(), true
}

func layoutElement(s segment) (string, bool) {
	switch s.letter {
	case 'y', 'u':
		switch s.count {
		case 2:
			return "06", true
		case 4:
			return "2006", true
		}
	case 'M', 'L':
		switch s.count {
		case 1:
			return "1", true
		case 2:
			return "01", true
		case 3:
			return "Jan", true
		}
		return "January", true
	case 'd':
		switch s.count {
		case 1:
			return "2", true
		case 2:
			return "02", true
		}
	case 'D':
		if s.count == 3 {
			return "002", true
		}
	case 'H':
		if s.count == 2 {
			return "15", true
		}
	case 'h':
		switch s.count {
		case 1:
			return "3", true
		case 2:
			return "03", true
		}
	case 'm':
		switch s.count {
		case 1:
			return "4", true
		case 2:
			return "04", true
		}
	case 's':
		switch s.count {
		case 1:
			return "5", true
		case 2:
			return "05", true
		}
	case 'a':
		return "PM", true
	case 'E':
		if s.count <= 3 {
			return "Mon", true
		}
		return "Monday", true
	case 'z':
		return "MST", true
	case 'Z':
		return "-0700", true
	case 'X':
		return zoneLayout(s.count, "Z07", "Z0700", "Z07:00"), true
	case 'x':
		return zoneLayout(s.count, "-07", "-0700", "-07:00"), true
	}
	return "", false
}

func zoneLayout(count int, short, basic, extended string) string {
	switch count {
	case 1:
		return short
	case 2:
		return basic
	}
	return extended
}
