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
)

var ErrInvalidOption = errors.New("invalid option")

// InvalidOptionError - the single error kind produced by option resolution. It keeps the option
// name, the raw value if one was provided and the reason, so callers can branch on the option.
type InvalidOptionError struct {
	// Name - name of the option as it is known by the resolver (for instance "maxColumns")
	Name string
	// RawValue - raw value that failed. Valid only if HasRawValue is true
	RawValue    string
	HasRawValue bool
	// Reason - what was expected
	Reason string
}

func newInvalidOptionError(name, reason string) *InvalidOptionError {
	return &InvalidOptionError{
		Name:   name,
		Reason: reason,
	}
}

func newInvalidOptionValueError(name, rawValue, reason string) *InvalidOptionError {
	return &InvalidOptionError{
		Name:        name,
		RawValue:    rawValue,
		HasRawValue: true,
		Reason:      reason,
	}
}

func (e *InvalidOptionError) Error() string {
	if e.HasRawValue {
		return fmt.Sprintf("invalid option \"%s\" value \"%s\": %s", e.Name, e.RawValue, e.Reason)
	}
	return fmt.Sprintf("invalid option \"%s\": %s", e.Name, e.Reason)
}

func (e *InvalidOptionError) Is(target error) bool {
	return target == ErrInvalidOption
}
