// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package gunzip_test

import (
	"fmt"
	"testing"
	"time"

	gunzip "github.com/hashicorp/go-gunzip"
)

// TestDataString tests the String method of the data struct
func TestDataString(t *testing.T) {
	m := gunzip.TelemetryData{
		DecodeErrors:          1,
		DecompressedSize:      1024,
		DecompressionDuration: time.Duration(5 * time.Millisecond),
		HeaderFlags:           gunzip.FlagName,
		InputSize:             2048,
		LastDecodeError:       fmt.Errorf("example error"),
		PayloadSize:           2000,
	}

	expected := `{"last_decode_error":"example error","decode_errors":1,"decompressed_size":1024,"decompression_duration":5000000,"header_flags":8,"input_size":2048,"payload_size":2000}`
	if m.String() != expected {
		t.Errorf("Expected '%s', but got '%s'", expected, m.String())
	}
}

// TestDataStringWithoutError tests that a missing error is rendered as empty string
func TestDataStringWithoutError(t *testing.T) {
	m := gunzip.TelemetryData{InputSize: 18}

	expected := `{"last_decode_error":"","decode_errors":0,"decompressed_size":0,"decompression_duration":0,"header_flags":0,"input_size":18,"payload_size":0}`
	if m.String() != expected {
		t.Errorf("Expected '%s', but got '%s'", expected, m.String())
	}
}

func TestDataEquals(t *testing.T) {
	a := &gunzip.TelemetryData{InputSize: 20, PayloadSize: 2, DecompressionDuration: time.Second}
	b := &gunzip.TelemetryData{InputSize: 20, PayloadSize: 2}
	c := &gunzip.TelemetryData{InputSize: 21, PayloadSize: 2}
	var nilData *gunzip.TelemetryData

	tests := []struct {
		name  string
		left  *gunzip.TelemetryData
		right *gunzip.TelemetryData
		want  bool
	}{
		{"same values, duration ignored", a, b, true},
		{"different input size", a, c, false},
		{"both nil", nilData, nilData, true},
		{"one nil", a, nilData, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.left.Equals(test.right); got != test.want {
				t.Errorf("Equals() = %v, want %v", got, test.want)
			}
		})
	}
}
