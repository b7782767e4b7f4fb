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
	"slices"
	"strings"

	"github.com/spf13/cast"
)

// Params - case-insensitive set of raw CSV options. Keys are unique after folding to lower case.
// A key may be present with a null value, which is treated the same way as an absent key.
type Params struct {
	values map[string]*string
}

// NewParams builds Params from a plain string map. If two keys differ only by case the last one
// in the iteration order wins, so callers must not rely on it.
func NewParams(raw map[string]string) Params {
	values := make(map[string]*string, len(raw))
	for k, v := range raw {
		v := v
		values[strings.ToLower(k)] = &v
	}
	return Params{values: values}
}

// NewParamsFromAny builds Params from an untyped map as it comes from a config decoder. Scalar values
// are converted to their string form, nil is kept as an explicit null.
func NewParamsFromAny(raw map[string]any) (Params, error) {
	values := make(map[string]*string, len(raw))
	for k, v := range raw {
		if v == nil {
			values[strings.ToLower(k)] = nil
			continue
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			return Params{}, fmt.Errorf("option \"%s\": %w", k, err)
		}
		values[strings.ToLower(k)] = &s
	}
	return Params{values: values}, nil
}

// Get returns the option value. The second result is false when the option is absent or null.
func (p Params) Get(name string) (string, bool) {
	v, ok := p.values[strings.ToLower(name)]
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

// Contains reports whether the option key is present, even with a null value.
func (p Params) Contains(name string) bool {
	_, ok := p.values[strings.ToLower(name)]
	return ok
}

// Keys returns the lower-cased option names in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (p Params) Len() int {
	return len(p.values)
}

// firstOf returns the value of the first present candidate name.
func (p Params) firstOf(names ...string) (name string, value string, ok bool) {
	for _, n := range names {
		if v, found := p.Get(n); found {
			return n, v, true
		}
	}
	return "", "", false
}
