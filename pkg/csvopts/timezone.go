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
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeZoneRegistry resolves time zone identifiers. Validation of the identifier is entirely the
// registry concern.
type TimeZoneRegistry interface {
	LoadLocation(id string) (*time.Location, error)
}

// DefaultTimeZoneRegistry resolves IANA region ids through the system tz database and also accepts
// fixed offsets such as "+08:00", "-0530", "GMT+3" or "UTC-01:30".
var DefaultTimeZoneRegistry TimeZoneRegistry = timeZoneRegistry{}

var offsetRegexp = regexp.MustCompile(`^(?:GMT|UTC|UT)?([+-])(\d{1,2})(?::?(\d{2}))?$`)

type timeZoneRegistry struct{}

func (timeZoneRegistry) LoadLocation(id string) (*time.Location, error) {
	switch strings.ToUpper(id) {
	case "Z", "UTC", "GMT", "UT":
		return time.UTC, nil
	}

	if m := offsetRegexp.FindStringSubmatch(id); m != nil {
		hours, _ := strconv.Atoi(m[2])
		var minutes int
		if m[3] != "" {
			minutes, _ = strconv.Atoi(m[3])
		}
		if hours > 18 || minutes > 59 {
			return nil, fmt.Errorf("time zone offset \"%s\" is out of range", id)
		}
		offset := hours*3600 + minutes*60
		if m[1] == "-" {
			offset = -offset
		}
		return time.FixedZone(id, offset), nil
	}

	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("load time zone \"%s\": %w", id, err)
	}
	return loc, nil
}
