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

package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	LogFormatJsonValue = "json"
	LogFormatTextValue = "text"
)

func parseLevel(levelStr string) (zerolog.Level, error) {
	switch levelStr {
	case zerolog.LevelDebugValue:
		return zerolog.DebugLevel, nil
	case zerolog.LevelInfoValue:
		return zerolog.InfoLevel, nil
	case zerolog.LevelWarnValue:
		return zerolog.WarnLevel, nil
	case zerolog.LevelErrorValue:
		return zerolog.ErrorLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log level %s", levelStr)
}

// New - creates the logger writing into out. Debug level adds the caller and pid to each entry.
func New(out io.Writer, levelStr string, format string) (zerolog.Logger, error) {
	level, err := parseLevel(levelStr)
	if err != nil {
		return zerolog.Nop(), err
	}

	var formatWriter io.Writer
	switch format {
	case LogFormatJsonValue:
		formatWriter = out
	case LogFormatTextValue:
		formatWriter = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %s", format)
	}

	ctx := zerolog.New(formatWriter).
		Level(level).
		With().
		Timestamp()
	if level == zerolog.DebugLevel {
		ctx = ctx.Caller().Int("pid", os.Getpid())
	}
	return ctx.Logger(), nil
}

// SetLogLevel - replaces the global logger with the one writing into stderr
func SetLogLevel(logLevelStr string, logFormat string) error {
	l, err := New(os.Stderr, logLevelStr, logFormat)
	if err != nil {
		return err
	}
	log.Logger = l
	return nil
}
