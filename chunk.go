// SPDX-FileCopyrightText: 2026 The pngwire authors
// SPDX-License-Identifier: MIT

package pngchunk

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"strings"
	"unicode/utf8"
)

// Create the crc32 table we'll use for the checksum.
// PNG uses the ISO-HDLC variant, which Go ships as crc32.IEEE.
var isoHDLCTable = crc32.MakeTable(crc32.IEEE) // nolint:gochecknoglobals

/*
Chunk represents a single PNG chunk, defined in PNG spec section 5.3.
A chunk is a self-describing record: a length-prefixed, type-tagged
payload protected by a trailing CRC.

Chunk layout (all integers big-endian):

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                            Length                             |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                          Chunk Type                           |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                          Chunk Data                           |
	|                              ...                              |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                              CRC                              |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

Length counts the data field only. The CRC is a CRC-32 (ISO-HDLC
polynomial) over the chunk type and data fields, excluding the length.

Every Chunk in existence, whether built with NewChunk or parsed with
ParseChunk, satisfies crc == CRC32(type ++ data) and length == len(data).
A Chunk is immutable after construction, so read-only sharing across
goroutines needs no synchronization.
*/
type Chunk struct {
	length    uint32
	chunkType ChunkType
	data      []byte
	crc       uint32
}

// chunkOverhead is the serialized size of the length, type and crc fields.
const chunkOverhead = 12

// Chunk parsing errors.
var (
	ErrChunkInvalidLength = errors.New("declared chunk length does not match payload length")
	ErrChunkInvalidCRC    = errors.New("chunk crc mismatch")
)

// NewChunk builds a chunk from a type tag and a payload, deriving the
// length and crc fields. It cannot fail. The chunk takes ownership of
// data; the caller must not modify it afterwards.
//
// Payloads longer than the unsigned 32-bit range are not representable in
// the wire format; staying within it is the caller's responsibility.
func NewChunk(chunkType ChunkType, data []byte) *Chunk {
	return &Chunk{
		length:    uint32(len(data)), //nolint:gosec // G115
		chunkType: chunkType,
		data:      data,
		crc:       chunkChecksum(chunkType, data),
	}
}

// ParseChunk parses and validates one chunk from the front of raw.
// Trailing bytes beyond the chunk are ignored; chunk-boundary bookkeeping
// across a multi-chunk buffer is the caller's concern.
//
// The length and crc embedded in raw are cross-checked against values
// recomputed from the parsed type and payload; a mismatch fails with
// ErrChunkInvalidLength or ErrChunkInvalidCRC. An input too short for a
// declared field fails with the underlying read error (io.EOF or
// io.ErrUnexpectedEOF).
func ParseChunk(raw []byte) (*Chunk, error) {
	return readChunk(bytes.NewReader(raw))
}

// readChunk reads the four chunk fields sequentially, then rebuilds the
// chunk from the parsed type and payload and cross-checks the derived
// length and crc against the declared ones.
func readChunk(src io.Reader) (*Chunk, error) {
	var buf [4]byte

	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return nil, err
	}
	declaredLength := binary.BigEndian.Uint32(buf[:])

	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return nil, err
	}
	chunkType, err := NewChunkType(buf)
	if err != nil {
		return nil, err
	}

	data := make([]byte, declaredLength)
	if _, err := io.ReadFull(src, data); err != nil {
		return nil, err
	}

	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return nil, err
	}
	declaredCRC := binary.BigEndian.Uint32(buf[:])

	chunk := NewChunk(chunkType, data)
	if chunk.length != declaredLength {
		// Unreachable in practice: the payload was read using the declared
		// length as the byte count. Kept as a cross-check on the derivation.
		return nil, fmt.Errorf("%w: computed %d declared %d", ErrChunkInvalidLength, chunk.length, declaredLength)
	}
	if chunk.crc != declaredCRC {
		return nil, fmt.Errorf("%w: computed %d declared %d", ErrChunkInvalidCRC, chunk.crc, declaredCRC)
	}

	return chunk, nil
}

// Length returns the payload byte count.
func (c *Chunk) Length() uint32 {
	return c.length
}

// ChunkType returns the chunk's 4-byte type tag.
func (c *Chunk) ChunkType() ChunkType {
	return c.chunkType
}

// Data returns the payload. The slice is owned by the chunk; callers must
// not modify it.
func (c *Chunk) Data() []byte {
	return c.data
}

// CRC returns the chunk's CRC-32 over the type and data fields.
func (c *Chunk) CRC() uint32 {
	return c.crc
}

// Bytes serializes the chunk to its canonical wire layout. It is the
// exact inverse of ParseChunk over the consumed prefix.
func (c *Chunk) Bytes() []byte {
	raw := make([]byte, chunkOverhead+len(c.data))

	binary.BigEndian.PutUint32(raw[0:], c.length)
	tag := c.chunkType.Bytes()
	copy(raw[4:], tag[:])
	copy(raw[8:], c.data)
	binary.BigEndian.PutUint32(raw[8+len(c.data):], c.crc)

	return raw
}

// String makes Chunk printable. A payload that is valid UTF-8 renders
// as-is; anything else renders as one U+FFFD replacement character per
// payload byte. Display only, never an encoding.
func (c *Chunk) String() string {
	if utf8.Valid(c.data) {
		return string(c.data)
	}

	return strings.Repeat("\uFFFD", int(c.length))
}

// chunkChecksum computes the CRC-32 (ISO-HDLC) over the type tag followed
// by the payload without concatenating the two.
func chunkChecksum(chunkType ChunkType, data []byte) (sum uint32) {
	tag := chunkType.Bytes()
	sum = crc32.Update(sum, isoHDLCTable, tag[:])
	sum = crc32.Update(sum, isoHDLCTable, data)

	return sum
}
