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

package compression

import (
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

type gzipCodec struct{}

func (gzipCodec) Name() string      { return GzipCodecName }
func (gzipCodec) Extension() string { return ".gz" }

func (gzipCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	gz, err := pgzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create gzip reader")
	}
	return gz, nil
}

func (gzipCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return pgzip.NewWriter(w), nil
}

type deflateCodec struct{}

func (deflateCodec) Name() string      { return DeflateCodecName }
func (deflateCodec) Extension() string { return ".deflate" }

func (deflateCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return flate.NewReader(r), nil
}

func (deflateCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	fw, err := flate.NewWriter(w, flate.DefaultCompression)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create deflate writer")
	}
	return fw, nil
}

type bzip2Codec struct{}

func (bzip2Codec) Name() string      { return Bzip2CodecName }
func (bzip2Codec) Extension() string { return ".bz2" }

func (bzip2Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	br, err := bzip2.NewReader(r, nil)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create bzip2 reader")
	}
	return br, nil
}

func (bzip2Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	bw, err := bzip2.NewWriter(w, &bzip2.WriterConfig{Level: bzip2.DefaultCompression})
	if err != nil {
		return nil, errors.Wrap(err, "cannot create bzip2 writer")
	}
	return bw, nil
}

type lz4Codec struct{}

func (lz4Codec) Name() string      { return Lz4CodecName }
func (lz4Codec) Extension() string { return ".lz4" }

func (lz4Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

func (lz4Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}

type snappyCodec struct{}

func (snappyCodec) Name() string      { return SnappyCodecName }
func (snappyCodec) Extension() string { return ".snappy" }

func (snappyCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(snappy.NewReader(r)), nil
}

func (snappyCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return snappy.NewBufferedWriter(w), nil
}

type zstdCodec struct{}

func (zstdCodec) Name() string      { return ZstdCodecName }
func (zstdCodec) Extension() string { return ".zst" }

func (zstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create zstd reader")
	}
	return dec.IOReadCloser(), nil
}

func (zstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create zstd writer")
	}
	return enc, nil
}
