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

package domains

import (
	"sync"
)

var (
	Cfg  *Config
	once sync.Once
)

const (
	DefaultTimeZone                  = "UTC"
	DefaultColumnNameOfCorruptRecord = "_corrupt_record"
	defaultLogFormat                 = "text"
	defaultLogLevel                  = "info"
)

func NewConfig() *Config {
	once.Do(
		func() {
			Cfg = &Config{
				Log: LogConfig{
					Format: defaultLogFormat,
					Level:  defaultLogLevel,
				},
				Csv: CsvConfig{
					TimeZone:                  DefaultTimeZone,
					ColumnNameOfCorruptRecord: DefaultColumnNameOfCorruptRecord,
				},
			}
		},
	)
	return Cfg
}

type Config struct {
	Log LogConfig `mapstructure:"log" yaml:"log" json:"log"`
	Csv CsvConfig `mapstructure:"csv" yaml:"csv" json:"csv"`
}

type LogConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format,omitempty"`
	Level  string `mapstructure:"level" yaml:"level" json:"level,omitempty"`
}

// CsvConfig - raw CSV options and the session values the resolver needs
type CsvConfig struct {
	// Options - option name to value. Scalars of any type are accepted, null means the option is not set
	Options                   map[string]any `mapstructure:"options" yaml:"options" json:"options,omitempty"`
	ColumnPruning             bool           `mapstructure:"column_pruning" yaml:"column_pruning" json:"column_pruning,omitempty"`
	TimeZone                  string         `mapstructure:"time_zone" yaml:"time_zone" json:"time_zone,omitempty"`
	ColumnNameOfCorruptRecord string         `mapstructure:"column_name_of_corrupt_record" yaml:"column_name_of_corrupt_record" json:"column_name_of_corrupt_record,omitempty"`
}
