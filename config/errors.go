// Copyright (c) 2026 The TokenForge developers
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package config

import "errors"

var (
	// ErrInvalidLogLevel indicates the log level is not recognized.
	ErrInvalidLogLevel = errors.New("config: invalid log level (must be \"debug\", \"info\", \"warn\", or \"error\")")

	// ErrEmptyDataDir indicates the data directory path is empty.
	ErrEmptyDataDir = errors.New("config: data directory must not be empty")

	// ErrZeroPricePerByte indicates a storage price of zero, which would
	// disable admission control entirely.
	ErrZeroPricePerByte = errors.New("config: price per byte must be positive")
)
