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
	"strings"
)

// ParseMode - policy for malformed records.
type ParseMode int

const (
	// Permissive - sets other fields to null when it meets a corrupted record and puts the malformed
	// string into the corrupt record column.
	Permissive ParseMode = iota
	// DropMalformed - ignores the whole corrupted record.
	DropMalformed
	// FailFast - aborts reading when it meets a corrupted record.
	FailFast
)

const (
	permissiveModeName    = "PERMISSIVE"
	dropMalformedModeName = "DROPMALFORMED"
	failFastModeName      = "FAILFAST"
)

func (m ParseMode) String() string {
	switch m {
	case Permissive:
		return permissiveModeName
	case DropMalformed:
		return dropMalformedModeName
	case FailFast:
		return failFastModeName
	}
	return "UNKNOWN"
}

func (m ParseMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseParseMode maps the mode name case-insensitively.
func ParseParseMode(v string) (ParseMode, bool) {
	switch strings.ToUpper(v) {
	case permissiveModeName:
		return Permissive, true
	case dropMalformedModeName:
		return DropMalformed, true
	case failFastModeName:
		return FailFast, true
	}
	return Permissive, false
}
