// SPDX-FileCopyrightText: 2026 The pngwire authors
// SPDX-License-Identifier: MIT

package pngchunk

import (
	"io"

	"github.com/pion/logging"
)

// ReaderConfig collects the options for a Reader.
type ReaderConfig struct {
	// LoggerFactory produces the reader's logger. Defaults to
	// logging.NewDefaultLoggerFactory() when nil.
	LoggerFactory logging.LoggerFactory
}

// Reader decodes chunks from an underlying byte source. Each ReadChunk
// call consumes exactly one whole, validated chunk; bookkeeping across a
// stream of chunks stays with the caller.
type Reader struct {
	src io.Reader
	log logging.LeveledLogger
}

// NewReader wraps src as a chunk source.
func NewReader(src io.Reader, config ReaderConfig) (*Reader, error) {
	if src == nil {
		return nil, errNilSource
	}

	loggerFactory := config.LoggerFactory
	if loggerFactory == nil {
		loggerFactory = logging.NewDefaultLoggerFactory()
	}

	return &Reader{
		src: src,
		log: loggerFactory.NewLogger("pngchunk"),
	}, nil
}

// ReadChunk reads and validates the next chunk from the source.
// Validation failures and short reads are returned to the caller
// unchanged; the reader never skips or resynchronizes.
func (r *Reader) ReadChunk() (*Chunk, error) {
	chunk, err := readChunk(r.src)
	if err != nil {
		r.log.Warnf("failed to read chunk: %v", err)

		return nil, err
	}

	r.log.Debugf("read chunk %s length=%d crc=0x%08X", chunk.ChunkType(), chunk.Length(), chunk.CRC())

	return chunk, nil
}
