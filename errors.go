// SPDX-FileCopyrightText: 2026 The pngwire authors
// SPDX-License-Identifier: MIT

package pngchunk

import (
	"errors"
)

var (
	// errNilSource indicates that a Reader was created without a byte source.
	errNilSource = errors.New("source must not be nil")

	// errNilSink indicates that a Writer was created without a byte sink.
	errNilSink = errors.New("sink must not be nil")
)
