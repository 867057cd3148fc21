// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package gunzip

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// cursor is a read position in a borrowed buffer. Reads never go past end, which
// may be smaller than len(buf) to keep the trailer out of reach. Every method
// returns the advanced cursor and leaves the receiver untouched.
type cursor struct {
	buf []byte
	off int
	end int
}

// newCursor returns a cursor over buf[0:end].
func newCursor(buf []byte, end int) cursor {
	if end > len(buf) {
		end = len(buf)
	}
	return cursor{buf: buf, end: end}
}

// remaining returns how many bytes can still be read.
func (c cursor) remaining() int {
	return c.end - c.off
}

// need returns an error if less than n bytes remain.
func (c cursor) need(n int, field string) error {
	if n < 0 || c.remaining() < n {
		return fmt.Errorf("%w: %s needs %d bytes at offset %d, %d remaining", ErrTruncated, field, n, c.off, c.remaining())
	}
	return nil
}

// skip advances n bytes.
func (c cursor) skip(n int, field string) (cursor, error) {
	if err := c.need(n, field); err != nil {
		return c, err
	}
	c.off += n
	return c, nil
}

// readByte reads one byte.
func (c cursor) readByte(field string) (cursor, uint8, error) {
	if err := c.need(1, field); err != nil {
		return c, 0, err
	}
	v := c.buf[c.off]
	c.off++
	return c, v, nil
}

// readUint16BE reads a big-endian 16-bit value.
func (c cursor) readUint16BE(field string) (cursor, uint16, error) {
	if err := c.need(2, field); err != nil {
		return c, 0, err
	}
	v := binary.BigEndian.Uint16(c.buf[c.off:])
	c.off += 2
	return c, v, nil
}

// readUint16LE reads a little-endian 16-bit value.
func (c cursor) readUint16LE(field string) (cursor, uint16, error) {
	if err := c.need(2, field); err != nil {
		return c, 0, err
	}
	v := binary.LittleEndian.Uint16(c.buf[c.off:])
	c.off += 2
	return c, v, nil
}

// skipZeroTerminated advances past the next NUL byte, the NUL included.
func (c cursor) skipZeroTerminated(field string) (cursor, error) {
	i := bytes.IndexByte(c.buf[c.off:c.end], 0)
	if i < 0 {
		return c, fmt.Errorf("%w: %s at offset %d is not zero-terminated", ErrTruncated, field, c.off)
	}
	c.off += i + 1
	return c, nil
}
