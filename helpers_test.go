// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package gunzip_test

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
)

// emptyMember is a member with an empty payload: base header, empty deflate
// block and a trailer for zero bytes.
var emptyMember = []byte{
	0x1f, 0x8b, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // header
	0x03, 0x00, // final fixed huffman block without data
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // crc32 and isize
}

// compressGzip compresses data with a gzip writer and returns the member.
func compressGzip(t testing.TB, data []byte) []byte {
	t.Helper()
	return compressGzipWithHeader(t, data, gzip.Header{})
}

// compressGzipWithHeader compresses data and stores hdr in the gzip header.
func compressGzipWithHeader(t testing.TB, data []byte, hdr gzip.Header) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Header = hdr
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("error writing gzip data: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("error closing gzip writer: %v", err)
	}
	return buf.Bytes()
}

// deflateRaw compresses data to a raw deflate stream.
func deflateRaw(t testing.TB, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		t.Fatalf("error creating flate writer: %v", err)
	}
	if _, err := fw.Write(data); err != nil {
		t.Fatalf("error writing flate data: %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("error closing flate writer: %v", err)
	}
	return buf.Bytes()
}

// trailerFor returns the trailer that belongs to data.
func trailerFor(data []byte) []byte {
	tr := make([]byte, 8)
	binary.LittleEndian.PutUint32(tr[0:4], crc32.ChecksumIEEE(data))
	binary.LittleEndian.PutUint32(tr[4:8], uint32(len(data)))
	return tr
}

// baseHeader returns a 10 byte header with the given flags.
func baseHeader(flags byte) []byte {
	return []byte{0x1f, 0x8b, 0x08, flags, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff}
}

// newMember concatenates header, the deflated data and the trailer for data.
func newMember(t testing.TB, header []byte, data []byte) []byte {
	t.Helper()
	var m []byte
	m = append(m, header...)
	m = append(m, deflateRaw(t, data)...)
	m = append(m, trailerFor(data)...)
	return m
}
