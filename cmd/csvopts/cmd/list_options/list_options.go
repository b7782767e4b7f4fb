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

package list_options

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/greenmaskio/csvopts/internal/domains"
	"github.com/greenmaskio/csvopts/internal/utils/logger"
	stringsUtils "github.com/greenmaskio/csvopts/internal/utils/strings"
	"github.com/greenmaskio/csvopts/pkg/csvopts"
)

var (
	Cmd = &cobra.Command{
		Use:   "list-options [names...]",
		Short: "list of the recognized CSV options with documentation",
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Err(err).Msg("")
			}

			if err := run(os.Stdout, args, format); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config = domains.NewConfig()
	format string
)

const (
	JsonFormatName = "json"
	TextFormatName = "text"
)

const descriptionMaxLength = 60

func run(w io.Writer, optionNames []string, format string) error {
	defs, err := selectDefinitions(optionNames)
	if err != nil {
		return err
	}

	switch format {
	case JsonFormatName:
		err = listOptionsJson(w, defs)
	case TextFormatName:
		listOptionsText(w, defs)
	default:
		return fmt.Errorf(`unknown format %s`, format)
	}
	if err != nil {
		return fmt.Errorf("error listing options: %w", err)
	}
	return nil
}

// selectDefinitions - returns the requested definitions in the requested order or all of them sorted by name
func selectDefinitions(optionNames []string) ([]*csvopts.Definition, error) {
	if len(optionNames) == 0 {
		return csvopts.Definitions(), nil
	}
	res := make([]*csvopts.Definition, 0, len(optionNames))
	for _, name := range optionNames {
		def, ok := csvopts.LookupDefinition(name)
		if !ok {
			return nil, fmt.Errorf("unknown option name \"%s\"", name)
		}
		res = append(res, def)
	}
	return res, nil
}

func listOptionsJson(w io.Writer, defs []*csvopts.Definition) error {
	return json.NewEncoder(w).Encode(defs)
}

func listOptionsText(w io.Writer, defs []*csvopts.Definition) {
	var data [][]string
	for _, def := range defs {
		data = append(data, []string{
			def.Name,
			strings.Join(def.Aliases, ", "),
			def.Type,
			fmt.Sprintf("%q", def.Default),
			stringsUtils.WrapString(def.Description, descriptionMaxLength),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"name", "aliases", "type", "default", "description"})
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.SetRowLine(true)
	table.Render()
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", TextFormatName, "output format [text|json]")
}
