// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package gunzip_test

import (
	"context"
	"testing"

	gunzip "github.com/hashicorp/go-gunzip"
	"github.com/klauspost/compress/gzip"
)

func FuzzDecompress(f *testing.F) {
	f.Add(emptyMember)
	f.Add([]byte{0x1f, 0x8b, 0x08, 0x04, 0xff, 0xff})
	f.Add(append(baseHeader(0x1c), 0x01, 0x00, 'x', 'n', 0x00, 'c', 0x00, 0x03, 0x00, 0, 0, 0, 0, 0, 0, 0, 0))

	f.Add(compressGzip(f, []byte("seed")))
	f.Add(compressGzipWithHeader(f, []byte("seed"), gzip.Header{Name: "seed.txt", Comment: "seed", Extra: []byte{0, 0, 0, 0}}))

	cfg := gunzip.NewConfig(gunzip.WithMaxDecompressedSize(1 << 20))

	f.Fuzz(func(t *testing.T, input []byte) {
		hdr, err := gunzip.ParseHeader(input)
		if err == nil {
			if hdr.PayloadOffset < 10 || hdr.PayloadOffset > hdr.PayloadEnd || hdr.PayloadEnd != len(input)-8 {
				t.Fatalf("ParseHeader() returned invalid bounds %+v for %d bytes", hdr, len(input))
			}
		}

		out, err := gunzip.DecompressWithConfig(context.Background(), input, cfg)
		if err != nil {
			if out != nil {
				t.Fatalf("DecompressWithConfig() returned data on error: %v", err)
			}
			return
		}
		if err := gunzip.VerifyTrailer(input, out); err != nil {
			t.Fatalf("DecompressWithConfig() output does not match trailer: %v", err)
		}
	})
}
