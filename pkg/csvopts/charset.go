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
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode/utf32"
)

var (
	ErrUnsupportedCharset = errors.New("unsupported charset")
)

// CharsetRegistry encodes strings with the named charset.
type CharsetRegistry interface {
	Encode(charset string, s string) ([]byte, error)
}

// utf32Encodings - the IANA index knows the UTF-32 names but has no encodings for them. Like UTF-16 the
// plain name means big endian without the byte order mark.
var utf32Encodings = map[string]encoding.Encoding{
	"UTF-32":   utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	"UTF-32BE": utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	"UTF-32LE": utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
}

// DefaultCharsetRegistry looks the charset up in the IANA index first, in the WHATWG index then and
// falls back to the UTF-32 family.
var DefaultCharsetRegistry CharsetRegistry = charsetRegistry{}

type charsetRegistry struct{}

func (charsetRegistry) lookup(charset string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err == nil && enc != nil {
		return enc, nil
	}
	enc, err = htmlindex.Get(charset)
	if err == nil && enc != nil {
		return enc, nil
	}
	if enc, ok := utf32Encodings[strings.ToUpper(charset)]; ok {
		return enc, nil
	}
	return nil, fmt.Errorf("charset \"%s\": %w", charset, ErrUnsupportedCharset)
}

func (r charsetRegistry) Encode(charset string, s string) ([]byte, error) {
	enc, err := r.lookup(charset)
	if err != nil {
		return nil, err
	}
	res, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode with charset \"%s\": %w", charset, err)
	}
	return res, nil
}
