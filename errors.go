// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package gunzip

import "errors"

var (
	// ErrTruncated is returned when the input ends before a required field is available.
	ErrTruncated = errors.New("gzip: input truncated")

	// ErrNotGzip is returned when the input does not start with the gzip magic bytes.
	ErrNotGzip = errors.New("gzip: not a gzip file")

	// ErrUnsupportedMethod is returned when the compression method is not DEFLATE.
	ErrUnsupportedMethod = errors.New("gzip: unknown compression method (only DEFLATE supported)")

	// ErrUnsupportedMultipart is returned when the multipart flag is set in the header.
	ErrUnsupportedMultipart = errors.New("gzip: multipart gzip files not supported")

	// ErrInflate is returned when the inflate engine rejects the compressed payload.
	ErrInflate = errors.New("gzip: cannot inflate payload")

	// ErrChecksumMismatch is returned when the CRC-32 of the decompressed data does not
	// match the value stored in the trailer.
	ErrChecksumMismatch = errors.New("gzip: checksum mismatch")

	// ErrSizeMismatch is returned when the length of the decompressed data does not
	// match the size stored in the trailer.
	ErrSizeMismatch = errors.New("gzip: size mismatch")

	// ErrMaxDecompressedSizeExceeded is returned when the decompressed data exceeds
	// the configured maximum.
	ErrMaxDecompressedSizeExceeded = errors.New("maximum decompressed size exceeded")

	// ErrMaxInputSizeExceeded is returned when the input exceeds the configured maximum.
	ErrMaxInputSizeExceeded = errors.New("maximum input size exceeded")
)
