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
	"encoding/json"
	"slices"
	"time"

	"golang.org/x/text/language"

	"github.com/greenmaskio/csvopts/pkg/compression"
	"github.com/greenmaskio/csvopts/pkg/dateformat"
)

// Options - resolved CSV configuration. It is immutable once Resolve returned it and can be read
// from multiple goroutines.
type Options struct {
	delimiter                 rune
	parseMode                 ParseMode
	charset                   string
	quote                     rune
	escape                    rune
	charToEscapeQuoteEscaping rune
	hasCharToEscapeQuote      bool
	comment                   rune

	headerFlag                   bool
	inferSchemaFlag              bool
	ignoreLeadingWhiteSpaceRead  bool
	ignoreTrailingWhiteSpaceRead bool
	// Writing trims by default for backward compatibility, reading does not
	ignoreLeadingWhiteSpaceWrite  bool
	ignoreTrailingWhiteSpaceWrite bool

	columnNameOfCorruptRecord string
	nullValue                 string
	nanValue                  string
	positiveInf               string
	negativeInf               string

	compressionCodec compression.Codec

	timeZone        *time.Location
	locale          language.Tag
	dateFormat      *dateformat.Formatter
	timestampFormat *dateformat.Formatter

	multiLine         bool
	maxColumns        int
	maxCharsPerColumn int
	escapeQuotes      bool
	quoteAll          bool
	samplingRatio     float64
	enforceSchema     bool

	emptyValue        string
	hasEmptyValue     bool
	emptyValueInRead  string
	emptyValueInWrite string
	keepQuotes        bool

	lineSeparator        string
	hasLineSeparator     bool
	lineSeparatorInRead  []byte
	lineSeparatorInWrite string

	columnPruning bool
}

func (o *Options) Delimiter() rune        { return o.delimiter }
func (o *Options) ParseMode() ParseMode   { return o.parseMode }
func (o *Options) Charset() string        { return o.charset }
func (o *Options) Quote() rune            { return o.quote }
func (o *Options) Escape() rune           { return o.escape }
func (o *Options) HeaderFlag() bool       { return o.headerFlag }
func (o *Options) InferSchemaFlag() bool  { return o.inferSchemaFlag }
func (o *Options) NullValue() string      { return o.nullValue }
func (o *Options) NanValue() string       { return o.nanValue }
func (o *Options) PositiveInf() string    { return o.positiveInf }
func (o *Options) NegativeInf() string    { return o.negativeInf }
func (o *Options) MultiLine() bool        { return o.multiLine }
func (o *Options) MaxColumns() int        { return o.maxColumns }
func (o *Options) MaxCharsPerColumn() int { return o.maxCharsPerColumn }
func (o *Options) EscapeQuotes() bool     { return o.escapeQuotes }
func (o *Options) QuoteAll() bool         { return o.quoteAll }
func (o *Options) SamplingRatio() float64 { return o.samplingRatio }
func (o *Options) EnforceSchema() bool    { return o.enforceSchema }
func (o *Options) KeepQuotes() bool       { return o.keepQuotes }
func (o *Options) ColumnPruning() bool    { return o.columnPruning }

// CharToEscapeQuoteEscaping returns the character and false if it was not set.
func (o *Options) CharToEscapeQuoteEscaping() (rune, bool) {
	return o.charToEscapeQuoteEscaping, o.hasCharToEscapeQuote
}

// Comment returns the comment character. Zero means comments are disabled.
func (o *Options) Comment() rune {
	return o.comment
}

func (o *Options) IsCommentSet() bool {
	return o.comment != 0
}

func (o *Options) IgnoreLeadingWhiteSpaceInRead() bool {
	return o.ignoreLeadingWhiteSpaceRead
}

func (o *Options) IgnoreTrailingWhiteSpaceInRead() bool {
	return o.ignoreTrailingWhiteSpaceRead
}

func (o *Options) IgnoreLeadingWhiteSpaceFlagInWrite() bool {
	return o.ignoreLeadingWhiteSpaceWrite
}

func (o *Options) IgnoreTrailingWhiteSpaceFlagInWrite() bool {
	return o.ignoreTrailingWhiteSpaceWrite
}

func (o *Options) ColumnNameOfCorruptRecord() string {
	return o.columnNameOfCorruptRecord
}

// CompressionCodec returns the codec and false if the compression was not requested or disabled.
func (o *Options) CompressionCodec() (compression.Codec, bool) {
	return o.compressionCodec, o.compressionCodec != nil
}

func (o *Options) TimeZone() *time.Location {
	return o.timeZone
}

func (o *Options) Locale() language.Tag {
	return o.locale
}

func (o *Options) DateFormat() *dateformat.Formatter {
	return o.dateFormat
}

func (o *Options) TimestampFormat() *dateformat.Formatter {
	return o.timestampFormat
}

// EmptyValue returns the raw emptyValue option and false if it was not provided.
func (o *Options) EmptyValue() (string, bool) {
	return o.emptyValue, o.hasEmptyValue
}

func (o *Options) EmptyValueInRead() string {
	return o.emptyValueInRead
}

func (o *Options) EmptyValueInWrite() string {
	return o.emptyValueInWrite
}

// LineSeparator returns the explicit line separator and false if it was not provided.
func (o *Options) LineSeparator() (string, bool) {
	return o.lineSeparator, o.hasLineSeparator
}

// LineSeparatorInRead returns a copy of the separator encoded with the charset, nil if not provided.
func (o *Options) LineSeparatorInRead() []byte {
	return slices.Clone(o.lineSeparatorInRead)
}

func (o *Options) LineSeparatorInWrite() (string, bool) {
	return o.lineSeparatorInWrite, o.hasLineSeparator
}

type optionsView struct {
	Delimiter                     string  `json:"delimiter" yaml:"delimiter"`
	ParseMode                     string  `json:"mode" yaml:"mode"`
	Charset                       string  `json:"charset" yaml:"charset"`
	Quote                         string  `json:"quote" yaml:"quote"`
	Escape                        string  `json:"escape" yaml:"escape"`
	CharToEscapeQuoteEscaping     *string `json:"charToEscapeQuoteEscaping" yaml:"charToEscapeQuoteEscaping"`
	Comment                       string  `json:"comment" yaml:"comment"`
	IsCommentSet                  bool    `json:"isCommentSet" yaml:"isCommentSet"`
	Header                        bool    `json:"header" yaml:"header"`
	InferSchema                   bool    `json:"inferSchema" yaml:"inferSchema"`
	IgnoreLeadingWhiteSpaceRead   bool    `json:"ignoreLeadingWhiteSpaceInRead" yaml:"ignoreLeadingWhiteSpaceInRead"`
	IgnoreTrailingWhiteSpaceRead  bool    `json:"ignoreTrailingWhiteSpaceInRead" yaml:"ignoreTrailingWhiteSpaceInRead"`
	IgnoreLeadingWhiteSpaceWrite  bool    `json:"ignoreLeadingWhiteSpaceInWrite" yaml:"ignoreLeadingWhiteSpaceInWrite"`
	IgnoreTrailingWhiteSpaceWrite bool    `json:"ignoreTrailingWhiteSpaceInWrite" yaml:"ignoreTrailingWhiteSpaceInWrite"`
	ColumnNameOfCorruptRecord     string  `json:"columnNameOfCorruptRecord" yaml:"columnNameOfCorruptRecord"`
	NullValue                     string  `json:"nullValue" yaml:"nullValue"`
	NanValue                      string  `json:"nanValue" yaml:"nanValue"`
	PositiveInf                   string  `json:"positiveInf" yaml:"positiveInf"`
	NegativeInf                   string  `json:"negativeInf" yaml:"negativeInf"`
	Compression                   *string `json:"compression" yaml:"compression"`
	TimeZone                      string  `json:"timeZone" yaml:"timeZone"`
	Locale                        string  `json:"locale" yaml:"locale"`
	DateFormat                    string  `json:"dateFormat" yaml:"dateFormat"`
	TimestampFormat               string  `json:"timestampFormat" yaml:"timestampFormat"`
	MultiLine                     bool    `json:"multiLine" yaml:"multiLine"`
	MaxColumns                    int     `json:"maxColumns" yaml:"maxColumns"`
	MaxCharsPerColumn             int     `json:"maxCharsPerColumn" yaml:"maxCharsPerColumn"`
	EscapeQuotes                  bool    `json:"escapeQuotes" yaml:"escapeQuotes"`
	QuoteAll                      bool    `json:"quoteAll" yaml:"quoteAll"`
	SamplingRatio                 float64 `json:"samplingRatio" yaml:"samplingRatio"`
	EnforceSchema                 bool    `json:"enforceSchema" yaml:"enforceSchema"`
	EmptyValue                    *string `json:"emptyValue" yaml:"emptyValue"`
	EmptyValueInRead              string  `json:"emptyValueInRead" yaml:"emptyValueInRead"`
	EmptyValueInWrite             string  `json:"emptyValueInWrite" yaml:"emptyValueInWrite"`
	KeepQuotes                    bool    `json:"keepQuotes" yaml:"keepQuotes"`
	LineSeparator                 *string `json:"lineSep" yaml:"lineSep"`
	LineSeparatorInRead           []int   `json:"lineSepInRead" yaml:"lineSepInRead"`
	ColumnPruning                 bool    `json:"columnPruning" yaml:"columnPruning"`
}

func runeString(r rune) string {
	if r == 0 {
		return ""
	}
	return string(r)
}

// View returns a plain serializable copy of the options. It is used for diagnostics output.
func (o *Options) View() any {
	v := &optionsView{
		Delimiter:                     runeString(o.delimiter),
		ParseMode:                     o.parseMode.String(),
		Charset:                       o.charset,
		Quote:                         runeString(o.quote),
		Escape:                        runeString(o.escape),
		Comment:                       runeString(o.comment),
		IsCommentSet:                  o.IsCommentSet(),
		Header:                        o.headerFlag,
		InferSchema:                   o.inferSchemaFlag,
		IgnoreLeadingWhiteSpaceRead:   o.ignoreLeadingWhiteSpaceRead,
		IgnoreTrailingWhiteSpaceRead:  o.ignoreTrailingWhiteSpaceRead,
		IgnoreLeadingWhiteSpaceWrite:  o.ignoreLeadingWhiteSpaceWrite,
		IgnoreTrailingWhiteSpaceWrite: o.ignoreTrailingWhiteSpaceWrite,
		ColumnNameOfCorruptRecord:     o.columnNameOfCorruptRecord,
		NullValue:                     o.nullValue,
		NanValue:                      o.nanValue,
		PositiveInf:                   o.positiveInf,
		NegativeInf:                   o.negativeInf,
		TimeZone:                      o.timeZone.String(),
		Locale:                        o.locale.String(),
		DateFormat:                    o.dateFormat.Pattern(),
		TimestampFormat:               o.timestampFormat.Pattern(),
		MultiLine:                     o.multiLine,
		MaxColumns:                    o.maxColumns,
		MaxCharsPerColumn:             o.maxCharsPerColumn,
		EscapeQuotes:                  o.escapeQuotes,
		QuoteAll:                      o.quoteAll,
		SamplingRatio:                 o.samplingRatio,
		EnforceSchema:                 o.enforceSchema,
		EmptyValueInRead:              o.emptyValueInRead,
		EmptyValueInWrite:             o.emptyValueInWrite,
		KeepQuotes:                    o.keepQuotes,
		ColumnPruning:                 o.columnPruning,
	}
	if o.hasCharToEscapeQuote {
		s := string(o.charToEscapeQuoteEscaping)
		v.CharToEscapeQuoteEscaping = &s
	}
	if o.compressionCodec != nil {
		s := o.compressionCodec.Name()
		v.Compression = &s
	}
	if o.hasEmptyValue {
		s := o.emptyValue
		v.EmptyValue = &s
	}
	if o.hasLineSeparator {
		s := o.lineSeparator
		v.LineSeparator = &s
		v.LineSeparatorInRead = make([]int, len(o.lineSeparatorInRead))
		for i, b := range o.lineSeparatorInRead {
			v.LineSeparatorInRead[i] = int(b)
		}
	}
	return v
}

func (o *Options) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.View())
}
