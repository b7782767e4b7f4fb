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
	"strconv"
	"strings"
	"time"
)

const (
	amMarker = "AM"
	pmMarker = "PM"
	adEra    = "AD"
	bcEra    = "BC"
)

// pad writes v with at least width digits
func pad(sb *strings.Builder, v int, width int) {
	if v < 0 {
		sb.WriteByte('-')
		v = -v
	}
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		sb.WriteByte('0')
	}
	sb.WriteString(s)
}

// yearOfEra - years before 1 AD are counted backwards: 0 is 1 BC
func yearOfEra(year int) int {
	if year <= 0 {
		return 1 - year
	}
	return year
}

func weekOfYear(t time.Time) int {
	weekStart := t.AddDate(0, 0, -int(t.Weekday()))
	if weekStart.AddDate(0, 0, 6).Year() > t.Year() {
		return 1
	}
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	return (t.YearDay()-1+int(jan1.Weekday()))/7 + 1
}

func weekOfMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return (t.Day()-1+int(first.Weekday()))/7 + 1
}

func formatField(sb *strings.Builder, s segment, t time.Time) {
	switch s.letter {
	case 'G':
		if t.Year() > 0 {
			sb.WriteString(adEra)
		} else {
			sb.WriteString(bcEra)
		}
	case 'y', 'u':
		year := t.Year()
		if s.letter == 'y' {
			year = yearOfEra(year)
		}
		if s.count == 2 {
			pad(sb, year%100, 2)
		} else {
			pad(sb, year, s.count)
		}
	case 'M', 'L':
		switch {
		case s.count <= 2:
			pad(sb, int(t.Month()), s.count)
		case s.count == 3:
			sb.WriteString(t.Month().String()[:3])
		default:
			sb.WriteString(t.Month().String())
		}
	case 'w':
		pad(sb, weekOfYear(t), s.count)
	case 'W':
		pad(sb, weekOfMonth(t), s.count)
	case 'D':
		pad(sb, t.YearDay(), s.count)
	case 'd':
		pad(sb, t.Day(), s.count)
	case 'F':
		pad(sb, (t.Day()-1)/7+1, s.count)
	case 'E':
		if s.count <= 3 {
			sb.WriteString(t.Weekday().String()[:3])
		} else {
			sb.WriteString(t.Weekday().String())
		}
	case 'a':
		if t.Hour() < 12 {
			sb.WriteString(amMarker)
		} else {
			sb.WriteString(pmMarker)
		}
	case 'H':
		pad(sb, t.Hour(), s.count)
	case 'k':
		h := t.Hour()
		if h == 0 {
			h = 24
		}
		pad(sb, h, s.count)
	case 'K':
		pad(sb, t.Hour()%12, s.count)
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		pad(sb, h, s.count)
	case 'm':
		pad(sb, t.Minute(), s.count)
	case 's':
		pad(sb, t.Second(), s.count)
	case 'S':
		pad(sb, t.Nanosecond()/int(time.Millisecond), s.count)
	case 'z':
		sb.WriteString(t.Format("MST"))
	case 'Z':
		sb.WriteString(t.Format("-0700"))
	case 'X':
		sb.WriteString(t.Format(zoneLayout(s.count, "Z07", "Z0700", "Z07:00")))
	case 'x':
		sb.WriteString(t.Format(zoneLayout(s.count, "-07", "-0700", "-07:00")))
	}
}
