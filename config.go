// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package gunzip

import (
	"context"
	"io"
	"log/slog"
)

// ConfigOption is a function pointer to implement the option pattern
type ConfigOption func(*Config)

// Config provides a configuration struct and options to adjust the configuration.
//
// The configuration struct holds all configuration options for the decompression.
// The configuration options can be adjusted using the option pattern style.
//
// The default configuration is designed to be secure by default and prevent
// exhaustion by decompression bombs. A Config must not be changed after it has
// been handed to a decompression call; it can be shared between concurrent calls.
type Config struct {
	// inflater is the engine that decodes the DEFLATE payload
	inflater Inflater

	// logger stream for decompression
	logger logger

	// maxDecompressedSize is the maximum size of the decompressed data.
	// Set value to -1 to disable the check.
	maxDecompressedSize int64

	// maxInputSize is the maximum size of the input
	// Set value to -1 to disable the check.
	maxInputSize int64

	// telemetryHook is a function to consume telemetry data after a finished decompression
	// Important: do not adjust this value after decompression started
	telemetryHook TelemetryHook
}

// CheckDecompressedSize checks if size exceeds the configured maximum. If the maximum is exceeded,
// a [ErrMaxDecompressedSizeExceeded] error is returned.
func (c *Config) CheckDecompressedSize(size int64) error {

	// check if disabled
	if c.MaxDecompressedSize() == -1 {
		return nil
	}

	// check value
	if size > c.MaxDecompressedSize() {
		return ErrMaxDecompressedSizeExceeded
	}
	return nil
}

// Inflater returns the engine that decodes the DEFLATE payload.
func (c *Config) Inflater() Inflater {
	return c.inflater
}

// Logger returns the logger.
func (c *Config) Logger() logger {
	return c.logger
}

// MaxDecompressedSize returns the maximum size of the decompressed data.
func (c *Config) MaxDecompressedSize() int64 {
	return c.maxDecompressedSize
}

// MaxInputSize returns the maximum size of the input.
func (c *Config) MaxInputSize() int64 {
	return c.maxInputSize
}

// TelemetryHook returns the telemetry hook.
func (c *Config) TelemetryHook() TelemetryHook {
	if c.telemetryHook == nil {
		return func(ctx context.Context, d *TelemetryData) {
			// noop
		}
	}
	return c.telemetryHook
}

const (
	defaultMaxDecompressedSize = 1 << (10 * 3) // 1 Gb
	defaultMaxInputSize        = 1 << (10 * 3) // 1 Gb
)

var (
	// slog to discard
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	// no operation telemetry hook
	defaultTelemetryHook = func(ctx context.Context, d *TelemetryData) {
		// noop
	}
)

// NewConfig is a generator option that takes opts as adjustments of the
// default configuration in an option pattern style.
func NewConfig(opts ...ConfigOption) *Config {

	// setup default values
	config := &Config{
		inflater:            NewFlateInflater(),
		logger:              defaultLogger,
		maxDecompressedSize: defaultMaxDecompressedSize,
		maxInputSize:        defaultMaxInputSize,
		telemetryHook:       defaultTelemetryHook,
	}

	// Loop through each option
	for _, opt := range opts {
		opt(config)
	}

	return config
}

// WithInflater options pattern function to replace the engine that decodes the
// DEFLATE payload. A nil inflater keeps the default engine.
func WithInflater(inflater Inflater) ConfigOption {
	return func(c *Config) {
		if inflater != nil {
			c.inflater = inflater
		}
	}
}

// WithLogger options pattern function to set a custom logger.
func WithLogger(logger logger) ConfigOption {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithMaxDecompressedSize options pattern function to set the maximum size of
// the decompressed data. (-1 to disable check)
func WithMaxDecompressedSize(maxDecompressedSize int64) ConfigOption {
	return func(c *Config) {
		c.maxDecompressedSize = maxDecompressedSize
	}
}

// WithMaxInputSize options pattern function to set MaxInputSize for the decompression input. (-1 to disable check)
func WithMaxInputSize(maxInputSize int64) ConfigOption {
	return func(c *Config) {
		c.maxInputSize = maxInputSize
	}
}

// WithTelemetryHook options pattern function to set a [TelemetryHook], which is called after decompression.
func WithTelemetryHook(hook TelemetryHook) ConfigOption {
	return func(c *Config) {
		c.telemetryHook = hook
	}
}
