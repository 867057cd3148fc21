// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package gunzip

import "bytes"

const (
	// FileExtensionGzip is the file extension for gzip files.
	FileExtensionGzip = "gz"

	// FileExtensionTarGzip is the file extension for tgz files, which are tar archives compressed with gzip.
	FileExtensionTarGzip = "tgz"
)

const (
	// magicNumber is the big-endian value of the first two bytes of a gzip member.
	magicNumber = 0x1f8b

	// baseHeaderLength is the length of the fixed part of the header.
	baseHeaderLength = 10

	// trailerLength is the length of the trailer (CRC-32 and ISIZE).
	trailerLength = 8

	// MinMemberSize is the size of the smallest valid member: a base header, an
	// empty payload and a trailer.
	MinMemberSize = baseHeaderLength + trailerLength
)

// magicBytesGzip are the magic bytes for gzip compressed files.
//
// https://www.rfc-editor.org/rfc/rfc1952#section-2.3.1
var magicBytesGzip = []byte{0x1f, 0x8b}

// IsGzip checks if the header matches the magic bytes for gzip compressed files.
func IsGzip(header []byte) bool {
	return bytes.HasPrefix(header, magicBytesGzip)
}
