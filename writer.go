// SPDX-FileCopyrightText: 2026 The pngwire authors
// SPDX-License-Identifier: MIT

package pngchunk

import (
	"io"

	"github.com/pion/logging"
)

// WriterConfig collects the options for a Writer.
type WriterConfig struct {
	// LoggerFactory produces the writer's logger. Defaults to
	// logging.NewDefaultLoggerFactory() when nil.
	LoggerFactory logging.LoggerFactory
}

// Writer emits chunks to an underlying byte sink in the canonical wire
// layout, one WriteChunk call per chunk.
type Writer struct {
	dst io.Writer
	log logging.LeveledLogger
}

// NewWriter wraps dst as a chunk sink.
func NewWriter(dst io.Writer, config WriterConfig) (*Writer, error) {
	if dst == nil {
		return nil, errNilSink
	}

	loggerFactory := config.LoggerFactory
	if loggerFactory == nil {
		loggerFactory = logging.NewDefaultLoggerFactory()
	}

	return &Writer{
		dst: dst,
		log: loggerFactory.NewLogger("pngchunk"),
	}, nil
}

// WriteChunk serializes chunk and writes it to the sink.
func (w *Writer) WriteChunk(chunk *Chunk) error {
	if _, err := w.dst.Write(chunk.Bytes()); err != nil {
		w.log.Warnf("failed to write chunk %s: %v", chunk.ChunkType(), err)

		return err
	}

	w.log.Debugf("wrote chunk %s length=%d", chunk.ChunkType(), chunk.Length())

	return nil
}
