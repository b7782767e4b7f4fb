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

package resolve

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/greenmaskio/csvopts/internal/domains"
	configUtils "github.com/greenmaskio/csvopts/internal/utils/config"
	"github.com/greenmaskio/csvopts/internal/utils/logger"
	"github.com/greenmaskio/csvopts/pkg/csvopts"
)

var (
	Cmd = &cobra.Command{
		Use:   "resolve",
		Short: "validate CSV options and show the resolved options with parser and writer settings",
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Fatal().Err(err).Msg("")
			}

			if err := run(os.Stdout, Config, optionFlags, format); err != nil {
				var invalidOptionErr *csvopts.InvalidOptionError
				if errors.As(err, &invalidOptionErr) {
					log.Fatal().
						Str("option", invalidOptionErr.Name).
						Str("value", invalidOptionErr.RawValue).
						Str("reason", invalidOptionErr.Reason).
						Msg("invalid csv option")
				}
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config      = domains.NewConfig()
	format      string
	optionFlags []string
)

const (
	JsonFormatName = "json"
	TextFormatName = "text"
	YamlFormatName = "yaml"
)

const (
	optionsSection = "options"
	parserSection  = "parser"
	writerSection  = "writer"
)

type result struct {
	Options any                    `json:"options" yaml:"options"`
	Parser  csvopts.ParserSettings `json:"parser" yaml:"parser"`
	Writer  csvopts.WriterSettings `json:"writer" yaml:"writer"`
}

// mergeOptions - applies the --option overrides on top of the configured options. Names are
// case-insensitive, so the keys are lowercased to let the override replace the configured value.
func mergeOptions(configured map[string]any, overrides []string) (map[string]any, error) {
	res := make(map[string]any, len(configured)+len(overrides))
	for k, v := range configured {
		res[strings.ToLower(k)] = v
	}
	for _, o := range overrides {
		k, v, err := configUtils.SplitKeyValue(o)
		if err != nil {
			return nil, fmt.Errorf("cannot parse --option flag: %w", err)
		}
		res[strings.ToLower(k)] = v
	}
	return res, nil
}

func run(w io.Writer, cfg *domains.Config, overrides []string, format string) error {
	if !slices.Contains([]string{JsonFormatName, TextFormatName, YamlFormatName}, format) {
		return fmt.Errorf(`unknown format %s`, format)
	}

	raw, err := mergeOptions(cfg.Csv.Options, overrides)
	if err != nil {
		return err
	}
	params, err := csvopts.NewParamsFromAny(raw)
	if err != nil {
		return fmt.Errorf("cannot read options: %w", err)
	}

	opts, err := csvopts.Resolve(
		params, cfg.Csv.ColumnPruning, cfg.Csv.TimeZone, cfg.Csv.ColumnNameOfCorruptRecord,
		csvopts.WithLogger(log.Logger),
	)
	if err != nil {
		return err
	}
	log.Debug().
		Int("OptionsCount", params.Len()).
		Str("ParseMode", opts.ParseMode().String()).
		Msg("options resolved")

	res := &result{
		Options: opts.View(),
		Parser:  opts.ParserSettings(),
		Writer:  opts.WriterSettings(),
	}

	switch format {
	case JsonFormatName:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case YamlFormatName:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	}
	return printText(w, res)
}

func printText(w io.Writer, res *result) error {
	sections := []struct {
		name  string
		value any
	}{
		{name: optionsSection, value: res.Options},
		{name: parserSection, value: res.Parser},
		{name: writerSection, value: res.Writer},
	}

	var data [][]string
	for _, s := range sections {
		rows, err := flatten(s.value)
		if err != nil {
			return fmt.Errorf("cannot render %s section: %w", s.name, err)
		}
		for _, r := range rows {
			data = append(data, append([]string{s.name}, r...))
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"section", "name", "value"})
	table.AppendBulk(data)
	table.SetRowLine(true)
	table.SetAutoMergeCellsByColumnIndex([]int{0})
	table.Render()
	return nil
}

// flatten - renders the value as sorted name-value pairs, nested objects are joined with a dot
func flatten(v any) ([][]string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	obj := make(map[string]any)
	if err = json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	var res [][]string
	flattenInto(&res, "", obj)
	slices.SortFunc(res, func(a, b []string) int {
		return strings.Compare(a[0], b[0])
	})
	return res, nil
}

func flattenInto(res *[][]string, prefix string, obj map[string]any) {
	for k, v := range obj {
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(res, name, nested)
			continue
		}
		*res = append(*res, []string{name, displayValue(v)})
	}
}

func displayValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "<not set>"
	case string:
		return fmt.Sprintf("%q", val)
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			items = append(items, cast.ToString(item))
		}
		return "[" + strings.Join(items, " ") + "]"
	}
	return cast.ToString(v)
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", TextFormatName, "output format [text|json|yaml]")
	Cmd.Flags().StringArrayVarP(
		&optionFlags, "option", "o", nil, "CSV option in key=value format, overrides the config value",
	)
	Cmd.Flags().Bool("column-pruning", false, "enable column pruning")
	Cmd.Flags().String("time-zone", domains.DefaultTimeZone, "default session time zone")
	Cmd.Flags().String(
		"corrupt-record-column", domains.DefaultColumnNameOfCorruptRecord,
		"default name of the column holding malformed records",
	)

	flags := []struct {
		key  string
		name string
	}{
		{key: "csv.column_pruning", name: "column-pruning"},
		{key: "csv.time_zone", name: "time-zone"},
		{key: "csv.column_name_of_corrupt_record", name: "corrupt-record-column"},
	}
	for _, f := range flags {
		if err := viper.BindPFlag(f.key, Cmd.Flags().Lookup(f.name)); err != nil {
			log.Fatal().Err(err).Msg("")
		}
	}
}
