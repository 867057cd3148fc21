// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package gunzip

import (
	"io"

	"github.com/klauspost/compress/flate"
)

//go:generate mockgen -source=inflate.go -destination=mock_inflater_test.go -package=gunzip_test

// Inflater decodes a raw DEFLATE stream (RFC 1951) from src and writes the
// decompressed bytes to dst. Errors returned by dst must be passed on unchanged.
//
// An Inflater must not read beyond the final block of the stream, so that trailing
// bytes in src can be detected.
type Inflater interface {
	Inflate(dst io.Writer, src io.Reader) error
}

// InflaterFunc is an adapter to allow the use of ordinary functions as [Inflater].
type InflaterFunc func(dst io.Writer, src io.Reader) error

// Inflate calls f(dst, src).
func (f InflaterFunc) Inflate(dst io.Writer, src io.Reader) error {
	return f(dst, src)
}

// flateInflater is the default [Inflater] backed by github.com/klauspost/compress/flate.
type flateInflater struct{}

// NewFlateInflater returns an [Inflater] that uses github.com/klauspost/compress/flate.
func NewFlateInflater() Inflater {
	return flateInflater{}
}

// Inflate implements [Inflater].
func (flateInflater) Inflate(dst io.Writer, src io.Reader) error {
	fr := flate.NewReader(src)
	defer fr.Close()
	_, err := io.Copy(dst, fr)
	return err
}
