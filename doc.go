// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

// Package gunzip decodes a single GZIP member (RFC 1952) that is held fully in memory.
//
// The decoding process validates the header, skips the optional fields selected by the
// header flags, hands the compressed payload to an [Inflater] and finally verifies the
// CRC-32 and size stored in the trailer. Only if every step succeeds, the decompressed
// bytes are returned. Multipart input is rejected with [ErrUnsupportedMultipart].
//
// Configuration is done using the [Config], which can be used to set the logger, the
// telemetry hook, the inflate engine, and the maximum input and decompressed size.
// Telemetry data is captured for every call and handed to the [TelemetryHook].
package gunzip
