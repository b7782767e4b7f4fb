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

package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

var optionsMapType = reflect.TypeOf(map[string]any{})

// StringToOptionsMapHookFunc - decodes the options provided as a single string, for instance via the
// CSV_OPTIONS environment variable. The string is either a JSON object or a list of key=value pairs
// separated by new lines (LF or CRLF). A carriage return value needs the JSON form.
func StringToOptionsMapHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data any,
	) (any, error) {
		if f.Kind() != reflect.String || t != optionsMapType {
			return data, nil
		}
		raw := strings.TrimSpace(data.(string))
		if raw == "" {
			return map[string]any{}, nil
		}
		if strings.HasPrefix(raw, "{") {
			res := make(map[string]any)
			if err := json.Unmarshal([]byte(raw), &res); err != nil {
				return nil, fmt.Errorf("cannot decode options object: %w", err)
			}
			return res, nil
		}
		res := make(map[string]any)
		for _, line := range strings.Split(raw, "\n") {
			line = strings.TrimSuffix(line, "\r")
			if strings.TrimSpace(line) == "" {
				continue
			}
			k, v, err := SplitKeyValue(line)
			if err != nil {
				return nil, err
			}
			res[k] = v
		}
		return res, nil
	}
}

// SplitKeyValue - splits "key=value" by the first equal sign. The value is kept as is, so it
// may contain spaces and equal signs.
func SplitKeyValue(v string) (string, string, error) {
	k, val, ok := strings.Cut(v, "=")
	k = strings.TrimSpace(k)
	if !ok || k == "" {
		return "", "", fmt.Errorf("expected key=value pair got \"%s\"", v)
	}
	return k, val, nil
}
