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

// Package compression resolves compression codec names used by CSV options and provides
// stream readers and writers for them.
package compression

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

var (
	ErrUnknownCodec = errors.New("unknown compression codec")
)

const (
	NoneCodecName         = "none"
	UncompressedCodecName = "uncompressed"
	GzipCodecName         = "gzip"
	DeflateCodecName      = "deflate"
	Bzip2CodecName        = "bzip2"
	Lz4CodecName          = "lz4"
	SnappyCodecName       = "snappy"
	ZstdCodecName         = "zstd"
)

type Codec interface {
	// Name - canonical short name of the codec
	Name() string
	// Extension - file extension including the leading dot
	Extension() string
	NewReader(r io.Reader) (io.ReadCloser, error)
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

// Registry - set of codecs available by name.
type Registry struct {
	codecs map[string]Codec
	// disabled - names that are known but mean "no compression"
	disabled []string
}

func NewRegistry(codecs ...Codec) *Registry {
	r := &Registry{
		codecs:   make(map[string]Codec, len(codecs)),
		disabled: []string{NoneCodecName, UncompressedCodecName},
	}
	for _, c := range codecs {
		r.Register(c)
	}
	return r
}

func (r *Registry) Register(c Codec) {
	r.codecs[strings.ToLower(c.Name())] = c
}

// Lookup resolves the codec name case-insensitively. The nil codec without error means compression
// is explicitly disabled ("none" or "uncompressed").
func (r *Registry) Lookup(name string) (Codec, error) {
	key := strings.ToLower(name)
	if slices.Contains(r.disabled, key) {
		return nil, nil
	}
	c, ok := r.codecs[key]
	if !ok {
		return nil, fmt.Errorf(
			"codec [%s] is not available, known codecs are %s: %w",
			name, strings.Join(r.Names(), ", "), ErrUnknownCodec,
		)
	}
	return c, nil
}

// Names returns all known codec names including the ones that disable compression.
func (r *Registry) Names() []string {
	res := slices.Clone(r.disabled)
	for name := range r.codecs {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

var DefaultRegistry = NewRegistry(
	&gzipCodec{},
	&deflateCodec{},
	&bzip2Codec{},
	&lz4Codec{},
	&snappyCodec{},
	&zstdCodec{},
)

// Lookup resolves the codec in DefaultRegistry.
func Lookup(name string) (Codec, error) {
	return DefaultRegistry.Lookup(name)
}
