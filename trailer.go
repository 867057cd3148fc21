// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package gunzip

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

// Trailer holds the two fields that close a gzip member.
type Trailer struct {
	// CRC32 is the CRC-32 (IEEE) of the uncompressed data.
	CRC32 uint32

	// Size is the length of the uncompressed data modulo 2^32.
	Size uint32
}

// ParseTrailer reads the trailer from the last 8 bytes of tail.
func ParseTrailer(tail []byte) (Trailer, error) {
	if len(tail) < trailerLength {
		return Trailer{}, fmt.Errorf("%w: trailer needs %d bytes, %d available", ErrTruncated, trailerLength, len(tail))
	}
	tail = tail[len(tail)-trailerLength:]
	return Trailer{
		CRC32: binary.LittleEndian.Uint32(tail[0:4]),
		Size:  binary.LittleEndian.Uint32(tail[4:8]),
	}, nil
}

// Verify compares the trailer with the checksum and the length of the data that has
// been decompressed. The checksum is compared first.
func (t Trailer) Verify(crc uint32, size int64) error {
	if crc != t.CRC32 {
		return fmt.Errorf("%w: got %08x, want %08x", ErrChecksumMismatch, crc, t.CRC32)
	}
	if uint32(size) != t.Size {
		return fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, uint32(size), t.Size)
	}
	return nil
}

// VerifyTrailer checks decompressed against the trailer stored in the last 8 bytes of tail.
func VerifyTrailer(tail []byte, decompressed []byte) error {
	t, err := ParseTrailer(tail)
	if err != nil {
		return err
	}
	return t.Verify(crc32.ChecksumIEEE(decompressed), int64(len(decompressed)))
}
