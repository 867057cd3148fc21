// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package gunzip

import "fmt"

// Header is the result of a successful [ParseHeader]. The contents of the optional
// fields (extra data, file name and comment) are skipped and not retained.
type Header struct {
	// Method is the compression method, always [MethodDeflate].
	Method Method

	// Flags are the header flags as found in the input.
	Flags Flags

	// PayloadOffset is the offset of the first byte of the compressed payload.
	PayloadOffset int

	// PayloadEnd is the offset of the first trailer byte.
	PayloadEnd int
}

// PayloadSize returns the length of the compressed payload.
func (h *Header) PayloadSize() int {
	return h.PayloadEnd - h.PayloadOffset
}

// Payload returns the compressed payload as a sub-slice of buf, which must be the
// buffer that has been passed to [ParseHeader].
func (h *Header) Payload(buf []byte) []byte {
	return buf[h.PayloadOffset:h.PayloadEnd]
}

// ParseHeader validates the header of the gzip member in buf and determines where
// the compressed payload starts. The last 8 bytes of buf are reserved for the
// trailer; none of the optional header fields may reach into them.
//
// buf is neither modified nor retained.
func ParseHeader(buf []byte) (*Header, error) {

	// the smallest member is a base header, an empty payload and a trailer
	if len(buf) < MinMemberSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncated, len(buf), MinMemberSize)
	}
	c := newCursor(buf, len(buf)-trailerLength)

	// magic number
	c, magic, err := c.readUint16BE("magic number")
	if err != nil {
		return nil, err
	}
	if magic != magicNumber {
		return nil, fmt.Errorf("%w: magic number 0x%04x", ErrNotGzip, magic)
	}

	// compression method
	c, method, err := c.readByte("compression method")
	if err != nil {
		return nil, err
	}
	if Method(method) != MethodDeflate {
		return nil, fmt.Errorf("%w: method %d", ErrUnsupportedMethod, method)
	}

	c, fl, err := c.readByte("flags")
	if err != nil {
		return nil, err
	}
	flags := Flags(fl)

	// modification time (4), extra flags (1) and operating system (1) are not used
	if c, err = c.skip(6, "mtime, xfl and os"); err != nil {
		return nil, err
	}

	if flags.Has(FlagMultipart) {
		return nil, ErrUnsupportedMultipart
	}

	if c, err = skipOptionalFields(c, flags); err != nil {
		return nil, err
	}

	return &Header{
		Method:        MethodDeflate,
		Flags:         flags,
		PayloadOffset: c.off,
		PayloadEnd:    c.end,
	}, nil
}

// skipOptionalFields advances c past the extra field, the file name and the
// comment, in this order, depending on which of them are flagged.
func skipOptionalFields(c cursor, flags Flags) (cursor, error) {
	var err error

	if flags.Has(FlagExtra) {
		var xlen uint16
		if c, xlen, err = c.readUint16LE("extra field length"); err != nil {
			return c, err
		}
		if c, err = c.skip(int(xlen), "extra field"); err != nil {
			return c, err
		}
	}

	if flags.Has(FlagName) {
		if c, err = c.skipZeroTerminated("file name"); err != nil {
			return c, err
		}
	}

	if flags.Has(FlagComment) {
		if c, err = c.skipZeroTerminated("comment"); err != nil {
			return c, err
		}
	}

	return c, nil
}
