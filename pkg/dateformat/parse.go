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
	"strconv"
	"strings"
	"time"
)

// maxGreedyDigits - limit for fields that are not followed by another numeric field
const maxGreedyDigits = 9

// twoDigitYearPivot - two digit years at or above the pivot belong to the 20th century
const twoDigitYearPivot = 69

type parser struct {
	pattern string
	value   string
	pos     int

	year, month, day, yearDay int
	hour, minute, second      int
	millis                    int
	hourLetter                rune
	hasMonthOrDay             bool
	hasYearDay                bool
	pm                        bool
	bc                        bool
	loc                       *time.Location
}

func (p *parser) fail(format string, args ...any) error {
	return fmt.Errorf(
		"cannot parse \"%s\" as \"%s\": %s: %w", p.value, p.pattern, fmt.Sprintf(format, args...), ErrInvalidValue,
	)
}

func (p *parser) rest() string {
	return p.value[p.pos:]
}

func (p *parser) run(segments []segment) error {
	for i, s := range segments {
		if !s.isField() {
			if !strings.HasPrefix(p.rest(), s.literal) {
				return p.fail("expected \"%s\" at position %d", s.literal, p.pos)
			}
			p.pos += len(s.literal)
			continue
		}
		if s.isNumeric() {
			// abutting numeric fields are read with the fixed width, "yyyyMMdd" for instance
			width := 0
			if i+1 < len(segments) && segments[i+1].isField() && segments[i+1].isNumeric() {
				width = s.count
			}
			v, n, err := p.readNumber(width)
			if err != nil {
				return err
			}
			p.setNumber(s, v, n)
			continue
		}
		if err := p.readText(s); err != nil {
			return err
		}
	}
	if p.pos != len(p.value) {
		return p.fail("unexpected trailing text \"%s\"", p.rest())
	}
	return nil
}

func (p *parser) readNumber(width int) (int, int, error) {
	n := 0
	rest := p.rest()
	for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
		if (width > 0 && n == width) || (width == 0 && n == maxGreedyDigits) {
			break
		}
		n++
	}
	if n == 0 || (width > 0 && n != width) {
		return 0, 0, p.fail("expected number at position %d", p.pos)
	}
	v, err := strconv.Atoi(rest[:n])
	if err != nil {
		return 0, 0, p.fail("invalid number \"%s\"", rest[:n])
	}
	p.pos += n
	return v, n, nil
}

func (p *parser) setNumber(s segment, v, digits int) {
	switch s.letter {
	case 'y', 'u':
		if s.count == 2 && digits == 2 {
			if v >= twoDigitYearPivot {
				v += 1900
			} else {
				v += 2000
			}
		}
		p.year = v
	case 'M', 'L':
		p.month = v
		p.hasMonthOrDay = true
	case 'd':
		p.day = v
		p.hasMonthOrDay = true
	case 'D':
		p.yearDay = v
		p.hasYearDay = true
	case 'H', 'k', 'K', 'h':
		p.hour = v
		p.hourLetter = s.letter
	case 'm':
		p.minute = v
	case 's':
		p.second = v
	case 'S':
		p.millis = v
	}
	// w, W and F are consumed without affecting the result
}

// matchWord consumes the first word matching case-insensitively and returns its index
func (p *parser) matchWord(words []string) int {
	rest := p.rest()
	for i, w := range words {
		if len(rest) >= len(w) && strings.EqualFold(rest[:len(w)], w) {
			p.pos += len(w)
			return i
		}
	}
	return -1
}

func (p *parser) readText(s segment) error {
	switch s.letter {
	case 'M', 'L':
		idx := p.matchWord(monthNames)
		if idx == -1 {
			return p.fail("expected month name at position %d", p.pos)
		}
		p.month = idx%12 + 1
		p.hasMonthOrDay = true
	case 'E':
		if p.matchWord(weekdayNames) == -1 {
			return p.fail("expected weekday name at position %d", p.pos)
		}
	case 'a':
		idx := p.matchWord([]string{amMarker, pmMarker})
		if idx == -1 {
			return p.fail("expected AM/PM marker at position %d", p.pos)
		}
		p.pm = idx == 1
	case 'G':
		idx := p.matchWord([]string{adEra, bcEra})
		if idx == -1 {
			return p.fail("expected era at position %d", p.pos)
		}
		p.bc = idx == 1
	case 'z':
		return p.readZoneName()
	case 'Z':
		return p.readOffset(false, true, false)
	case 'X':
		return p.readOffset(true, s.count != 1, s.count >= 3)
	case 'x':
		return p.readOffset(false, s.count != 1, s.count >= 3)
	}
	return nil
}

func (p *parser) readZoneName() error {
	rest := p.rest()
	n := 0
	for n < len(rest) && ((rest[n] >= 'A' && rest[n] <= 'Z') || (rest[n] >= 'a' && rest[n] <= 'z')) {
		n++
	}
	if n == 0 {
		return p.fail("expected zone name at position %d", p.pos)
	}
	name := rest[:n]
	switch strings.ToUpper(name) {
	case "UTC", "GMT", "UT", "Z":
		p.loc = time.UTC
	default:
		t, err := time.Parse("MST", name)
		if err != nil {
			return p.fail("unknown zone \"%s\"", name)
		}
		p.loc = t.Location()
	}
	p.pos += n
	return nil
}

// readOffset reads the zone offset such as "+02", "+0200" or "+02:00"
func (p *parser) readOffset(allowZ, withMinutes, withColon bool) error {
	rest := p.rest()
	if allowZ && strings.HasPrefix(rest, "Z") {
		p.pos++
		p.loc = time.UTC
		return nil
	}
	if rest == "" || (rest[0] != '+' && rest[0] != '-') {
		return p.fail("expected zone offset at position %d", p.pos)
	}
	sign := 1
	if rest[0] == '-' {
		sign = -1
	}
	p.pos++
	hours, _, err := p.readNumber(2)
	if err != nil {
		return err
	}
	minutes := 0
	if withMinutes {
		if withColon {
			if !strings.HasPrefix(p.rest(), ":") {
				return p.fail("expected ':' in zone offset at position %d", p.pos)
			}
			p.pos++
		}
		if minutes, _, err = p.readNumber(2); err != nil {
			return err
		}
	}
	if hours > 23 || minutes > 59 {
		return p.fail("zone offset is out of range")
	}
	p.loc = time.FixedZone("", sign*(hours*3600+minutes*60))
	return nil
}

func (p *parser) resolveHour() (int, error) {
	h := p.hour
	switch p.hourLetter {
	case 'H':
		if h > 23 {
			return 0, p.fail("hour %d is out of range", h)
		}
	case 'k':
		if h < 1 || h > 24 {
			return 0, p.fail("hour %d is out of range", h)
		}
		if h == 24 {
			h = 0
		}
	case 'K':
		if h > 11 {
			return 0, p.fail("hour %d is out of range", h)
		}
		if p.pm {
			h += 12
		}
	case 'h':
		if h < 1 || h > 12 {
			return 0, p.fail("hour %d is out of range", h)
		}
		h %= 12
		if p.pm {
			h += 12
		}
	}
	return h, nil
}

func (p *parser) build(defaultLoc *time.Location) (time.Time, error) {
	loc := p.loc
	if loc == nil {
		loc = defaultLoc
	}
	year := p.year
	if p.bc {
		year = 1 - year
	}
	hour, err := p.resolveHour()
	if err != nil {
		return time.Time{}, err
	}
	if p.minute > 59 || p.second > 59 || p.millis > 999 {
		return time.Time{}, p.fail("time is out of range")
	}
	nanos := p.millis * int(time.Millisecond)

	if p.hasYearDay && !p.hasMonthOrDay {
		days := 365
		if time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay() == 366 {
			days = 366
		}
		if p.yearDay < 1 || p.yearDay > days {
			return time.Time{}, p.fail("day of year %d is out of range", p.yearDay)
		}
		t := time.Date(year, time.January, 1, hour, p.minute, p.second, nanos, loc)
		return t.AddDate(0, 0, p.yearDay-1), nil
	}

	if p.month < 1 || p.month > 12 {
		return time.Time{}, p.fail("month %d is out of range", p.month)
	}
	t := time.Date(year, time.Month(p.month), p.day, hour, p.minute, p.second, nanos, loc)
	if p.day < 1 || t.Day() != p.day || int(t.Month()) != p.month {
		return time.Time{}, p.fail("day %d does not exist in %d-%02d", p.day, year, p.month)
	}
	return t, nil
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
	"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var weekdayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
}
