// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package gunzip

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"time"
)

// maxDeflateRatio is the highest expansion ratio DEFLATE can reach. A trailer
// size beyond payload*maxDeflateRatio cannot be true.
const maxDeflateRatio = 1032

// maxPreallocSize caps the output capacity that is reserved up front. Output
// beyond it grows the buffer as the engine writes.
const maxPreallocSize = 64 << 20

// Decompress decompresses the single gzip member in buf with the default [Config].
// See [DecompressWithConfig].
func Decompress(buf []byte) ([]byte, error) {
	return DecompressWithConfig(context.Background(), buf, NewConfig())
}

// DecompressWithConfig validates the gzip member in buf, inflates its payload and
// verifies the trailer. The decompressed bytes are returned only if every step
// succeeds; on failure the returned slice is nil. buf is not modified.
//
// ctx is checked between the decoding phases. The [TelemetryHook] of cfg is called
// once, after the decompression has finished or failed.
func DecompressWithConfig(ctx context.Context, buf []byte, cfg *Config) ([]byte, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	// prepare telemetry capturing
	td := &TelemetryData{InputSize: int64(len(buf))}
	defer cfg.TelemetryHook()(ctx, td)
	defer captureDecompressionDuration(td, time.Now())

	return decompress(ctx, buf, cfg, td)
}

// DecompressReader reads src until EOF and decompresses the gzip member it
// contains with [DecompressWithConfig]. Reading stops with [ErrMaxInputSizeExceeded]
// as soon as src provides more than the configured maximum input size.
func DecompressReader(ctx context.Context, src io.Reader, cfg *Config) ([]byte, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	// limit input size
	limitedReader := newLimitErrorReader(src, cfg.MaxInputSize())
	buf, err := io.ReadAll(limitedReader)
	if err != nil {
		td := &TelemetryData{InputSize: int64(limitedReader.ReadBytes())}
		defer cfg.TelemetryHook()(ctx, td)
		return nil, handleError(cfg, td, "cannot read input", err)
	}
	cfg.Logger().Debug("read input", "size", len(buf))

	return DecompressWithConfig(ctx, buf, cfg)
}

// decompress is the decoding pipeline: header, inflate, trailer.
func decompress(ctx context.Context, buf []byte, cfg *Config, td *TelemetryData) ([]byte, error) {

	// check if context is canceled
	if err := ctx.Err(); err != nil {
		return nil, handleError(cfg, td, "context error", err)
	}

	hdr, err := ParseHeader(buf)
	if err != nil {
		return nil, handleError(cfg, td, "cannot parse header", err)
	}
	td.HeaderFlags = hdr.Flags
	td.PayloadSize = int64(hdr.PayloadSize())
	cfg.Logger().Debug("parsed header", "flags", hdr.Flags.String(), "payloadOffset", hdr.PayloadOffset, "payloadSize", hdr.PayloadSize())

	trailer, err := ParseTrailer(buf)
	if err != nil {
		return nil, handleError(cfg, td, "cannot parse trailer", err)
	}

	out, crc, err := inflate(cfg, hdr.Payload(buf), trailer.Size)
	td.DecompressedSize = int64(len(out))
	if err != nil {
		return nil, handleError(cfg, td, "cannot inflate payload", err)
	}

	// check if context is canceled
	if err := ctx.Err(); err != nil {
		return nil, handleError(cfg, td, "context error", err)
	}

	if err := trailer.Verify(crc, int64(len(out))); err != nil {
		return nil, handleError(cfg, td, "cannot verify trailer", err)
	}

	// an empty member decompresses to an empty, non-nil slice
	if out == nil {
		out = []byte{}
	}

	cfg.Logger().Debug("decompressed", "inputSize", len(buf), "decompressedSize", len(out))
	return out, nil
}

// inflate runs the configured engine over payload. The output passes the size limit
// before it reaches the buffer and the checksum, so the limit trips while the engine
// is still producing data. sizeHint is the trailer size, used to preallocate the
// output if it is plausible.
func inflate(cfg *Config, payload []byte, sizeHint uint32) ([]byte, uint32, error) {
	var out bytes.Buffer
	if hint := preallocSize(cfg, len(payload), sizeHint); hint > 0 {
		out.Grow(hint)
	}

	digest := crc32.NewIEEE()
	dst := limitWriter(io.MultiWriter(&out, digest), cfg.MaxDecompressedSize())
	src := bytes.NewReader(payload)

	if err := cfg.Inflater().Inflate(dst, src); err != nil {
		if errors.Is(err, ErrMaxDecompressedSizeExceeded) {
			return out.Bytes(), 0, fmt.Errorf("%w: limit is %d bytes", err, cfg.MaxDecompressedSize())
		}
		return out.Bytes(), 0, fmt.Errorf("%w: %w", ErrInflate, err)
	}

	// the payload ends right before the trailer
	if src.Len() > 0 {
		return out.Bytes(), 0, fmt.Errorf("%w: %d bytes after the end of the deflate stream", ErrInflate, src.Len())
	}

	return out.Bytes(), digest.Sum32(), nil
}

// preallocSize returns how many bytes of output capacity to reserve for a payload
// of payloadLen bytes whose trailer claims sizeHint bytes. The claim comes from the
// input and is only followed if it is plausible and small.
func preallocSize(cfg *Config, payloadLen int, sizeHint uint32) int {
	hint := int64(sizeHint)
	if hint > int64(payloadLen)*maxDeflateRatio || cfg.CheckDecompressedSize(hint) != nil {
		return 0
	}
	if hint > maxPreallocSize {
		hint = maxPreallocSize
	}
	return int(hint)
}

// handleError records err in td, logs it and returns it wrapped with msg.
func handleError(c *Config, td *TelemetryData, msg string, err error) error {
	td.DecodeErrors++
	td.LastDecodeError = fmt.Errorf("%s: %w", msg, err)
	c.Logger().Error(msg, "error", err)
	return td.LastDecodeError
}

// captureDecompressionDuration captures the duration of the decompression
func captureDecompressionDuration(td *TelemetryData, start time.Time) {
	td.DecompressionDuration = time.Since(start)
}
