// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDetermineOutputName(t *testing.T) {
	tests := []struct {
		name      string
		inputName string
		want      string
	}{
		{
			name:      "gzip file",
			inputName: "test.gz",
			want:      "test",
		},
		{
			name:      "upper case extension",
			inputName: "TEST.GZ",
			want:      "TEST",
		},
		{
			name:      "tgz becomes tar",
			inputName: "archive.tgz",
			want:      "archive.tar",
		},
		{
			name:      "tar.gz",
			inputName: "archive.tar.gz",
			want:      "archive.tar",
		},
		{
			name:      "path is dropped",
			inputName: filepath.Join("some", "dir", "file.txt.gz"),
			want:      "file.txt",
		},
		{
			name:      "no gzip extension",
			inputName: "file.bin",
			want:      "file.bin.decompressed",
		},
		{
			name:      "stdin",
			inputName: "",
			want:      defaultDecompressionName,
		},
		{
			name:      "extension only",
			inputName: ".gz",
			want:      defaultDecompressionName,
		},
		{
			name:      "too long",
			inputName: strings.Repeat("a", 300) + ".gz",
			want:      defaultDecompressionName,
		},
		{
			name:      "line break in name",
			inputName: "a\nb.gz",
			want:      defaultDecompressionName,
		},
		{
			name:      "invalid utf8",
			inputName: "a\xff\xfe.gz",
			want:      defaultDecompressionName,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := determineOutputName(test.inputName); got != test.want {
				t.Errorf("determineOutputName(%q) = %q, want %q", test.inputName, got, test.want)
			}
		})
	}
}
