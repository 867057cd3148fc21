// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package gunzip

import (
	"context"
	"encoding/json"
	"time"
)

// TelemetryData holds all telemetry data of a decompression.
type TelemetryData struct {
	// DecodeErrors is the number of errors during decompression
	DecodeErrors int64 `json:"decode_errors"`

	// DecompressedSize is the number of bytes produced by the inflate engine
	DecompressedSize int64 `json:"decompressed_size"`

	// DecompressionDuration is the time it took to decompress the input
	DecompressionDuration time.Duration `json:"decompression_duration"`

	// HeaderFlags are the flags found in the header
	HeaderFlags Flags `json:"header_flags"`

	// InputSize is the size of the input
	InputSize int64 `json:"input_size"`

	// LastDecodeError is the last error during decompression
	LastDecodeError error `json:"last_decode_error"`

	// PayloadSize is the size of the compressed payload
	PayloadSize int64 `json:"payload_size"`
}

// String returns a string representation of [TelemetryData].
func (m TelemetryData) String() string {
	b, _ := json.Marshal(m)
	return string(b)
}

// MarshalJSON implements the [encoding/json.Marshaler] interface.
func (m TelemetryData) MarshalJSON() ([]byte, error) {
	var lastError string
	if m.LastDecodeError != nil {
		lastError = m.LastDecodeError.Error()
	}

	type Alias TelemetryData
	return json.Marshal(&struct {
		LastDecodeError string `json:"last_decode_error"`
		*Alias
	}{
		LastDecodeError: lastError,
		Alias:           (*Alias)(&m),
	})
}

// TelemetryHook is a function type that performs operations on [TelemetryData]
// after a decompression has finished which can be used to submit the [TelemetryData]
// to a telemetry service, for example.
type TelemetryHook func(context.Context, *TelemetryData)

// Equals returns true if the given [TelemetryData] is equal to the receiver.
// The duration is not compared.
func (td *TelemetryData) Equals(other *TelemetryData) bool {
	if td == nil && other == nil {
		return true
	}
	if td == nil || other == nil {
		return false
	}
	return td.DecodeErrors == other.DecodeErrors &&
		td.DecompressedSize == other.DecompressedSize &&
		td.HeaderFlags == other.HeaderFlags &&
		td.InputSize == other.InputSize &&
		td.PayloadSize == other.PayloadSize
}
