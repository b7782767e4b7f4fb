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

	"golang.org/x/text/language"
)

// LocaleRegistry parses BCP-47 language tags.
type LocaleRegistry interface {
	Parse(tag string) (language.Tag, error)
}

var DefaultLocaleRegistry LocaleRegistry = localeRegistry{}

type localeRegistry struct{}

func (localeRegistry) Parse(tag string) (language.Tag, error) {
	res, err := language.Parse(tag)
	if err != nil {
		return language.Und, fmt.Errorf("parse locale \"%s\": %w", tag, err)
	}
	return res, nil
}
