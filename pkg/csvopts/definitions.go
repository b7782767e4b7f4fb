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
	"slices"
	"strings"
)

const (
	OptionSep                       = "sep"
	OptionDelimiter                 = "delimiter"
	OptionMode                      = "mode"
	OptionEncoding                  = "encoding"
	OptionCharset                   = "charset"
	OptionQuote                     = "quote"
	OptionEscape                    = "escape"
	OptionCharToEscapeQuoteEscaping = "charToEscapeQuoteEscaping"
	OptionComment                   = "comment"
	OptionHeader                    = "header"
	OptionInferSchema               = "inferSchema"
	OptionIgnoreLeadingWhiteSpace   = "ignoreLeadingWhiteSpace"
	OptionIgnoreTrailingWhiteSpace  = "ignoreTrailingWhiteSpace"
	OptionColumnNameOfCorruptRecord = "columnNameOfCorruptRecord"
	OptionNullValue                 = "nullValue"
	OptionNanValue                  = "nanValue"
	OptionPositiveInf               = "positiveInf"
	OptionNegativeInf               = "negativeInf"
	OptionCompression               = "compression"
	OptionCodec                     = "codec"
	OptionTimeZone                  = "timeZone"
	OptionLocale                    = "locale"
	OptionDateFormat                = "dateFormat"
	OptionTimestampFormat           = "timestampFormat"
	OptionMultiLine                 = "multiLine"
	OptionMaxColumns                = "maxColumns"
	OptionMaxCharsPerColumn         = "maxCharsPerColumn"
	OptionEscapeQuotes              = "escapeQuotes"
	OptionQuoteAll                  = "quoteAll"
	OptionSamplingRatio             = "samplingRatio"
	OptionEnforceSchema             = "enforceSchema"
	OptionEmptyValue                = "emptyValue"
	OptionKeepQuotes                = "keepQuotes"
	OptionLineSep                   = "lineSep"
)

// Alias groups. The first present name wins.
var (
	delimiterOptionNames   = []string{OptionSep, OptionDelimiter}
	charsetOptionNames     = []string{OptionEncoding, OptionCharset}
	compressionOptionNames = []string{OptionCompression, OptionCodec}
)

const (
	DefaultDelimiter          = ','
	DefaultQuote              = '"'
	DefaultEscape             = '\\'
	DefaultComment            = rune(0)
	DefaultCharset            = "UTF-8"
	DefaultNullValue          = ""
	DefaultNanValue           = "NaN"
	DefaultPositiveInf        = "Inf"
	DefaultNegativeInf        = "-Inf"
	DefaultLocale             = "en-US"
	DefaultDateFormat         = "yyyy-MM-dd"
	DefaultTimestampFormat    = "yyyy-MM-dd'T'HH:mm:ss.SSSXXX"
	DefaultMaxColumns         = 20480
	DefaultMaxCharsPerColumn  = -1
	DefaultSamplingRatio      = 1.0
	DefaultEmptyValueInRead   = ""
	DefaultEmptyValueInWrite  = `""`
	DefaultWriteLineSeparator = "\n"
)

// Definition - description of the recognized option. It is used for documentation purposes only,
// resolution rules live in Resolve.
type Definition struct {
	// Name - canonical option name
	Name string `json:"name"`
	// Aliases - other names that are accepted for the same option. Name has priority over aliases
	Aliases []string `json:"aliases,omitempty"`
	// Type - textual value type: char, string, bool, int, double, enum
	Type string `json:"type"`
	// Default - textual form of the default value. Empty if there is no default
	Default string `json:"default,omitempty"`
	// Description - brief info about the option
	Description string `json:"description"`
}

var definitions = []*Definition{
	{
		Name:        OptionSep,
		Aliases:     []string{OptionDelimiter},
		Type:        "char",
		Default:     string(DefaultDelimiter),
		Description: "field separator. Accepts a single character or an escape sequence such as \\t or \\u0001",
	},
	{
		Name:        OptionMode,
		Type:        "enum",
		Default:     permissiveModeName,
		Description: "malformed records policy: PERMISSIVE, DROPMALFORMED or FAILFAST",
	},
	{
		Name:        OptionEncoding,
		Aliases:     []string{OptionCharset},
		Type:        "string",
		Default:     DefaultCharset,
		Description: "character encoding of the records",
	},
	{
		Name:        OptionQuote,
		Type:        "char",
		Default:     string(DefaultQuote),
		Description: "quote character. Empty string disables quoting",
	},
	{
		Name:        OptionEscape,
		Type:        "char",
		Default:     string(DefaultEscape),
		Description: "character used for escaping quotes inside a quoted value",
	},
	{
		Name:        OptionCharToEscapeQuoteEscaping,
		Type:        "char",
		Description: "character used for escaping the escape for the quote character",
	},
	{
		Name:        OptionComment,
		Type:        "char",
		Description: "lines starting with this character are skipped. Disabled by default",
	},
	{
		Name:        OptionHeader,
		Type:        "bool",
		Default:     "false",
		Description: "the first line contains column names",
	},
	{
		Name:        OptionInferSchema,
		Type:        "bool",
		Default:     "false",
		Description: "infer column types from the data",
	},
	{
		Name:        OptionIgnoreLeadingWhiteSpace,
		Type:        "bool",
		Default:     "false (read), true (write)",
		Description: "trim leading whitespaces of the values",
	},
	{
		Name:        OptionIgnoreTrailingWhiteSpace,
		Type:        "bool",
		Default:     "false (read), true (write)",
		Description: "trim trailing whitespaces of the values",
	},
	{
		Name:        OptionColumnNameOfCorruptRecord,
		Type:        "string",
		Description: "column that receives the malformed string in PERMISSIVE mode. Defaults to the caller setting",
	},
	{
		Name:        OptionNullValue,
		Type:        "string",
		Default:     DefaultNullValue,
		Description: "string representation of a null value",
	},
	{
		Name:        OptionNanValue,
		Type:        "string",
		Default:     DefaultNanValue,
		Description: "string representation of a non-number value",
	},
	{
		Name:        OptionPositiveInf,
		Type:        "string",
		Default:     DefaultPositiveInf,
		Description: "string representation of a positive infinity value",
	},
	{
		Name:        OptionNegativeInf,
		Type:        "string",
		Default:     DefaultNegativeInf,
		Description: "string representation of a negative infinity value",
	},
	{
		Name:        OptionCompression,
		Aliases:     []string{OptionCodec},
		Type:        "string",
		Description: "compression codec: none, uncompressed, gzip, deflate, bzip2, lz4, snappy, zstd",
	},
	{
		Name:        OptionTimeZone,
		Type:        "string",
		Description: "time zone id used for timestamps. Defaults to the caller setting",
	},
	{
		Name:        OptionLocale,
		Type:        "string",
		Default:     DefaultLocale,
		Description: "BCP-47 language tag used for dates and timestamps",
	},
	{
		Name:        OptionDateFormat,
		Type:        "string",
		Default:     DefaultDateFormat,
		Description: "date pattern",
	},
	{
		Name:        OptionTimestampFormat,
		Type:        "string",
		Default:     DefaultTimestampFormat,
		Description: "timestamp pattern",
	},
	{
		Name:        OptionMultiLine,
		Type:        "bool",
		Default:     "false",
		Description: "a record may span multiple lines",
	},
	{
		Name:        OptionMaxColumns,
		Type:        "int",
		Default:     "20480",
		Description: "hard limit of columns a record can have",
	},
	{
		Name:        OptionMaxCharsPerColumn,
		Type:        "int",
		Default:     "-1",
		Description: "maximum number of characters allowed for any value. -1 means unlimited",
	},
	{
		Name:        OptionEscapeQuotes,
		Type:        "bool",
		Default:     "true",
		Description: "escape quotes in values containing quotes on write",
	},
	{
		Name:        OptionQuoteAll,
		Type:        "bool",
		Default:     "false",
		Description: "always quote all values on write",
	},
	{
		Name:        OptionSamplingRatio,
		Type:        "double",
		Default:     "1.0",
		Description: "fraction of rows used for schema inferring",
	},
	{
		Name:        OptionEnforceSchema,
		Type:        "bool",
		Default:     "true",
		Description: "apply the specified or inferred schema forcibly, header names are ignored",
	},
	{
		Name:        OptionEmptyValue,
		Type:        "string",
		Default:     `"" (read), "\"\"" (write)`,
		Description: "string representation of an empty value",
	},
	{
		Name:        OptionKeepQuotes,
		Type:        "bool",
		Default:     "false",
		Description: "keep quotes of quoted values on read",
	},
	{
		Name:        OptionLineSep,
		Type:        "char",
		Description: "line separator. Must be a single character. Auto-detected on read if not set",
	},
}

// Definitions returns the recognized options catalogue sorted by name.
func Definitions() []*Definition {
	res := slices.Clone(definitions)
	slices.SortFunc(res, func(a, b *Definition) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return res
}

// LookupDefinition finds the definition by the name or by one of its aliases case-insensitively.
func LookupDefinition(name string) (*Definition, bool) {
	for _, d := range definitions {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
		if slices.ContainsFunc(d.Aliases, func(a string) bool { return strings.EqualFold(a, name) }) {
			return d, true
		}
	}
	return nil, false
}
