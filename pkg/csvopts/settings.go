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

import "encoding/json"

type UnescapedQuoteHandling string

const (
	// StopAtDelimiter - an unescaped quote inside a value makes the parser accumulate characters
	// until the delimiter or line ending is found.
	StopAtDelimiter UnescapedQuoteHandling = "STOP_AT_DELIMITER"
)

// Format - CSV format characters shared by parser and writer settings.
type Format struct {
	Delimiter   rune `json:"delimiter" yaml:"delimiter"`
	Quote       rune `json:"quote" yaml:"quote"`
	QuoteEscape rune `json:"quoteEscape" yaml:"quoteEscape"`
	// CharToEscapeQuoteEscaping - zero if not set
	CharToEscapeQuoteEscaping rune `json:"charToEscapeQuoteEscaping" yaml:"charToEscapeQuoteEscaping"`
	// Comment - zero means comments are disabled
	Comment rune `json:"comment" yaml:"comment"`
	// LineSeparator - empty means the engine default or auto-detection on read
	LineSeparator string `json:"lineSeparator" yaml:"lineSeparator"`
}

// ParserSettings - settings for the CSV reading engine.
type ParserSettings struct {
	Format                           Format                 `json:"format" yaml:"format"`
	IgnoreLeadingWhitespaces         bool                   `json:"ignoreLeadingWhitespaces" yaml:"ignoreLeadingWhitespaces"`
	IgnoreTrailingWhitespaces        bool                   `json:"ignoreTrailingWhitespaces" yaml:"ignoreTrailingWhitespaces"`
	ReadInputOnSeparateThread        bool                   `json:"readInputOnSeparateThread" yaml:"readInputOnSeparateThread"`
	InputBufferSize                  int                    `json:"inputBufferSize" yaml:"inputBufferSize"`
	MaxColumns                       int                    `json:"maxColumns" yaml:"maxColumns"`
	MaxCharsPerColumn                int                    `json:"maxCharsPerColumn" yaml:"maxCharsPerColumn"`
	NullValue                        string                 `json:"nullValue" yaml:"nullValue"`
	EmptyValue                       string                 `json:"emptyValue" yaml:"emptyValue"`
	UnescapedQuoteHandling           UnescapedQuoteHandling `json:"unescapedQuoteHandling" yaml:"unescapedQuoteHandling"`
	LineSeparatorDetectionEnabled    bool                   `json:"lineSeparatorDetectionEnabled" yaml:"lineSeparatorDetectionEnabled"`
	NormalizeLineEndingsWithinQuotes bool                   `json:"normalizeLineEndingsWithinQuotes" yaml:"normalizeLineEndingsWithinQuotes"`
	CommentProcessingEnabled         bool                   `json:"commentProcessingEnabled" yaml:"commentProcessingEnabled"`
	KeepQuotes                       bool                   `json:"keepQuotes" yaml:"keepQuotes"`
	// HeaderExtractionEnabled - the header is handled by the caller, the engine never consumes it
	HeaderExtractionEnabled bool `json:"headerExtractionEnabled" yaml:"headerExtractionEnabled"`
}

// WriterSettings - settings for the CSV writing engine.
type WriterSettings struct {
	Format                    Format `json:"format" yaml:"format"`
	IgnoreLeadingWhitespaces  bool   `json:"ignoreLeadingWhitespaces" yaml:"ignoreLeadingWhitespaces"`
	IgnoreTrailingWhitespaces bool   `json:"ignoreTrailingWhitespaces" yaml:"ignoreTrailingWhitespaces"`
	NullValue                 string `json:"nullValue" yaml:"nullValue"`
	EmptyValue                string `json:"emptyValue" yaml:"emptyValue"`
	SkipEmptyLines            bool   `json:"skipEmptyLines" yaml:"skipEmptyLines"`
	QuoteAllFields            bool   `json:"quoteAllFields" yaml:"quoteAllFields"`
	QuoteEscapingEnabled      bool   `json:"quoteEscapingEnabled" yaml:"quoteEscapingEnabled"`
}

type formatView struct {
	Delimiter                 string `json:"delimiter" yaml:"delimiter"`
	Quote                     string `json:"quote" yaml:"quote"`
	QuoteEscape               string `json:"quoteEscape" yaml:"quoteEscape"`
	CharToEscapeQuoteEscaping string `json:"charToEscapeQuoteEscaping" yaml:"charToEscapeQuoteEscaping"`
	Comment                   string `json:"comment" yaml:"comment"`
	LineSeparator             string `json:"lineSeparator" yaml:"lineSeparator"`
}

func (f Format) view() formatView {
	return formatView{
		Delimiter:                 runeString(f.Delimiter),
		Quote:                     runeString(f.Quote),
		QuoteEscape:               runeString(f.QuoteEscape),
		CharToEscapeQuoteEscaping: runeString(f.CharToEscapeQuoteEscaping),
		Comment:                   runeString(f.Comment),
		LineSeparator:             f.LineSeparator,
	}
}

// MarshalJSON renders characters as strings instead of code points.
func (f Format) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.view())
}

func (f Format) MarshalYAML() (any, error) {
	return f.view(), nil
}

// InputBufferSize - buffer size used by the parser.
const InputBufferSize = 128

func (o *Options) format() Format {
	return Format{
		Delimiter:                 o.delimiter,
		Quote:                     o.quote,
		QuoteEscape:               o.escape,
		CharToEscapeQuoteEscaping: o.charToEscapeQuoteEscaping,
		Comment:                   o.comment,
	}
}

// ParserSettings builds the engine settings for reading. Every call returns a new value.
func (o *Options) ParserSettings() ParserSettings {
	f := o.format()
	if o.hasLineSeparator {
		f.LineSeparator = o.lineSeparator
	}
	return ParserSettings{
		Format:                           f,
		IgnoreLeadingWhitespaces:         o.ignoreLeadingWhiteSpaceRead,
		IgnoreTrailingWhitespaces:        o.ignoreTrailingWhiteSpaceRead,
		ReadInputOnSeparateThread:        false,
		InputBufferSize:                  InputBufferSize,
		MaxColumns:                       o.maxColumns,
		MaxCharsPerColumn:                o.maxCharsPerColumn,
		NullValue:                        o.nullValue,
		EmptyValue:                       o.emptyValueInRead,
		UnescapedQuoteHandling:           StopAtDelimiter,
		LineSeparatorDetectionEnabled:    !o.hasLineSeparator && o.multiLine,
		NormalizeLineEndingsWithinQuotes: !o.hasLineSeparator || !o.multiLine,
		CommentProcessingEnabled:         o.IsCommentSet(),
		KeepQuotes:                       o.keepQuotes,
		HeaderExtractionEnabled:          false,
	}
}

// WriterSettings builds the engine settings for writing. Every call returns a new value.
func (o *Options) WriterSettings() WriterSettings {
	f := o.format()
	f.LineSeparator = DefaultWriteLineSeparator
	if o.hasLineSeparator {
		f.LineSeparator = o.lineSeparatorInWrite
	}
	return WriterSettings{
		Format:                    f,
		IgnoreLeadingWhitespaces:  o.ignoreLeadingWhiteSpaceWrite,
		IgnoreTrailingWhitespaces: o.ignoreTrailingWhiteSpaceWrite,
		NullValue:                 o.nullValue,
		EmptyValue:                o.emptyValueInWrite,
		SkipEmptyLines:            true,
		QuoteAllFields:            o.quoteAll,
		QuoteEscapingEnabled:      o.escapeQuotes,
	}
}
