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
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/greenmaskio/csvopts/pkg/compression"
	"github.com/greenmaskio/csvopts/pkg/dateformat"
)

// CodecRegistry resolves compression codec names. A nil codec with nil error means
// the compression is disabled explicitly.
type CodecRegistry interface {
	Lookup(name string) (compression.Codec, error)
}

type resolver struct {
	logger   zerolog.Logger
	codecs   CodecRegistry
	zones    TimeZoneRegistry
	locales  LocaleRegistry
	charsets CharsetRegistry
}

type ResolveOption func(r *resolver)

func WithLogger(logger zerolog.Logger) ResolveOption {
	return func(r *resolver) {
		r.logger = logger
	}
}

func WithCodecRegistry(registry CodecRegistry) ResolveOption {
	return func(r *resolver) {
		r.codecs = registry
	}
}

func WithTimeZoneRegistry(registry TimeZoneRegistry) ResolveOption {
	return func(r *resolver) {
		r.zones = registry
	}
}

func WithLocaleRegistry(registry LocaleRegistry) ResolveOption {
	return func(r *resolver) {
		r.locales = registry
	}
}

func WithCharsetRegistry(registry CharsetRegistry) ResolveOption {
	return func(r *resolver) {
		r.charsets = registry
	}
}

// Resolve validates the raw options and builds the immutable Options. The first invalid option
// aborts the resolution with *InvalidOptionError. Errors of the time zone, locale, charset and codec
// registries and of the delimiter decoder are returned wrapped but not translated.
func Resolve(
	params Params, columnPruning bool, defaultTimeZoneID string, defaultColumnNameOfCorruptRecord string,
	opts ...ResolveOption,
) (*Options, error) {
	r := &resolver{
		logger:   log.Logger,
		codecs:   compression.DefaultRegistry,
		zones:    DefaultTimeZoneRegistry,
		locales:  DefaultLocaleRegistry,
		charsets: DefaultCharsetRegistry,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r.resolve(params, columnPruning, defaultTimeZoneID, defaultColumnNameOfCorruptRecord)
}

// firstOf finds the first present alias and reports shadowed ones.
func (r *resolver) firstOf(p Params, names ...string) (string, string, bool) {
	name, value, ok := p.firstOf(names...)
	if !ok {
		return "", "", false
	}
	for _, n := range names {
		if n == name {
			continue
		}
		if _, shadowed := p.Get(n); shadowed {
			r.logger.Debug().
				Str("OptionName", name).
				Str("ShadowedOptionName", n).
				Msg("option alias is ignored because option with higher priority is set")
		}
	}
	return name, value, true
}

func (r *resolver) resolve(
	p Params, columnPruning bool, defaultTimeZoneID string, defaultColumnNameOfCorruptRecord string,
) (*Options, error) {
	var err error
	o := &Options{
		columnPruning: columnPruning,
	}

	delimiter := string(DefaultDelimiter)
	if _, v, ok := r.firstOf(p, delimiterOptionNames...); ok {
		delimiter = v
	}
	if o.delimiter, err = DecodeDelimiter(delimiter); err != nil {
		return nil, fmt.Errorf("decode delimiter: %w", err)
	}

	o.parseMode = Permissive
	if v, ok := p.Get(OptionMode); ok {
		mode, found := ParseParseMode(v)
		if !found {
			return nil, newInvalidOptionValueError(
				OptionMode, v,
				fmt.Sprintf("expected one of %s, %s, %s", Permissive, DropMalformed, FailFast),
			)
		}
		o.parseMode = mode
	}

	o.charset = DefaultCharset
	if _, v, ok := r.firstOf(p, charsetOptionNames...); ok {
		o.charset = v
	}

	if o.quote, err = getChar(p, OptionQuote, DefaultQuote); err != nil {
		return nil, err
	}
	if o.escape, err = getChar(p, OptionEscape, DefaultEscape); err != nil {
		return nil, err
	}
	o.charToEscapeQuoteEscaping, o.hasCharToEscapeQuote, err = getOptionalChar(p, OptionCharToEscapeQuoteEscaping)
	if err != nil {
		return nil, err
	}
	if o.comment, err = getChar(p, OptionComment, DefaultComment); err != nil {
		return nil, err
	}

	if o.headerFlag, err = getBool(p, OptionHeader, false); err != nil {
		return nil, err
	}
	if o.inferSchemaFlag, err = getBool(p, OptionInferSchema, false); err != nil {
		return nil, err
	}
	if o.ignoreLeadingWhiteSpaceRead, err = getBool(p, OptionIgnoreLeadingWhiteSpace, false); err != nil {
		return nil, err
	}
	if o.ignoreTrailingWhiteSpaceRead, err = getBool(p, OptionIgnoreTrailingWhiteSpace, false); err != nil {
		return nil, err
	}
	if o.ignoreLeadingWhiteSpaceWrite, err = getBool(p, OptionIgnoreLeadingWhiteSpace, true); err != nil {
		return nil, err
	}
	if o.ignoreTrailingWhiteSpaceWrite, err = getBool(p, OptionIgnoreTrailingWhiteSpace, true); err != nil {
		return nil, err
	}

	o.columnNameOfCorruptRecord = getString(p, OptionColumnNameOfCorruptRecord, defaultColumnNameOfCorruptRecord)

	o.nullValue = getString(p, OptionNullValue, DefaultNullValue)
	o.nanValue = getString(p, OptionNanValue, DefaultNanValue)
	o.positiveInf = getString(p, OptionPositiveInf, DefaultPositiveInf)
	o.negativeInf = getString(p, OptionNegativeInf, DefaultNegativeInf)

	if _, v, ok := r.firstOf(p, compressionOptionNames...); ok {
		if o.compressionCodec, err = r.codecs.Lookup(v); err != nil {
			return nil, fmt.Errorf("resolve compression codec: %w", err)
		}
	}

	timeZoneID := getString(p, OptionTimeZone, defaultTimeZoneID)
	if o.timeZone, err = r.zones.LoadLocation(timeZoneID); err != nil {
		return nil, fmt.Errorf("resolve time zone: %w", err)
	}

	if o.locale, err = r.locales.Parse(getString(p, OptionLocale, DefaultLocale)); err != nil {
		return nil, fmt.Errorf("resolve locale: %w", err)
	}

	o.dateFormat, err = dateformat.New(getString(p, OptionDateFormat, DefaultDateFormat), o.locale, nil)
	if err != nil {
		return nil, fmt.Errorf("build date formatter: %w", err)
	}
	o.timestampFormat, err = dateformat.New(
		getString(p, OptionTimestampFormat, DefaultTimestampFormat), o.locale, o.timeZone,
	)
	if err != nil {
		return nil, fmt.Errorf("build timestamp formatter: %w", err)
	}

	if o.multiLine, err = getPlainBool(p, OptionMultiLine, false); err != nil {
		return nil, err
	}
	if o.maxColumns, err = getInt(p, OptionMaxColumns, DefaultMaxColumns); err != nil {
		return nil, err
	}
	if o.maxCharsPerColumn, err = getInt(p, OptionMaxCharsPerColumn, DefaultMaxCharsPerColumn); err != nil {
		return nil, err
	}
	if o.escapeQuotes, err = getBool(p, OptionEscapeQuotes, true); err != nil {
		return nil, err
	}
	if o.quoteAll, err = getBool(p, OptionQuoteAll, false); err != nil {
		return nil, err
	}
	if o.samplingRatio, err = getDouble(p, OptionSamplingRatio, DefaultSamplingRatio); err != nil {
		return nil, err
	}
	if o.enforceSchema, err = getBool(p, OptionEnforceSchema, true); err != nil {
		return nil, err
	}

	o.emptyValue, o.hasEmptyValue = p.Get(OptionEmptyValue)
	o.emptyValueInRead = DefaultEmptyValueInRead
	o.emptyValueInWrite = DefaultEmptyValueInWrite
	if o.hasEmptyValue {
		o.emptyValueInRead = o.emptyValue
		o.emptyValueInWrite = o.emptyValue
	}

	if o.keepQuotes, err = getBool(p, OptionKeepQuotes, false); err != nil {
		return nil, err
	}

	if err = r.resolveLineSeparator(p, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (r *resolver) resolveLineSeparator(p Params, o *Options) error {
	sep, ok := p.Get(OptionLineSep)
	if !ok {
		return nil
	}
	switch n := utf8.RuneCountInString(sep); {
	case n == 0:
		return newInvalidOptionValueError(OptionLineSep, sep, "cannot be an empty string")
	case n > 1:
		return newInvalidOptionValueError(OptionLineSep, sep, "can contain only 1 character")
	}
	encoded, err := r.charsets.Encode(o.charset, sep)
	if err != nil {
		return fmt.Errorf("encode line separator: %w", err)
	}
	o.lineSeparator = sep
	o.hasLineSeparator = true
	o.lineSeparatorInRead = encoded
	o.lineSeparatorInWrite = sep
	return nil
}
