package pngchunk

import (
	"errors"
	"fmt"
)

// ChunkType is the 4-byte identifier of a chunk's kind, per PNG spec
// section 5.4. The ASCII case of each byte carries an independent
// property bit, so the bytes are stored exactly as given:
//
//	byte 0  uppercase = chunk is critical for display
//	byte 1  uppercase = chunk is public (defined by the standard)
//	byte 2  uppercase = reserved bit is valid under the current standard
//	byte 3  lowercase = chunk is safe to copy by editors
//
// A ChunkType is an immutable value; comparison with == is value-based.
type ChunkType struct {
	bytes [4]byte
}

// Chunk type errors.
var (
	ErrChunkTypeInvalidEncoding = errors.New("chunk type bytes must be within the ASCII range")
	ErrChunkTypeInvalidLength   = errors.New("chunk type must be exactly 4 bytes")
)

// NewChunkType validates raw as a chunk type. Every byte must be in the
// ASCII range (0x00-0x7F).
func NewChunkType(raw [4]byte) (ChunkType, error) {
	for i, b := range raw {
		if b > 0x7F {
			return ChunkType{}, fmt.Errorf("%w: byte %d is 0x%02X", ErrChunkTypeInvalidEncoding, i, b)
		}
	}

	return ChunkType{bytes: raw}, nil
}

// ChunkTypeFromString validates s as a chunk type. The byte length of s,
// not its character count, must be exactly 4.
func ChunkTypeFromString(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, fmt.Errorf("%w: got %d bytes", ErrChunkTypeInvalidLength, len(s))
	}

	var raw [4]byte
	copy(raw[:], s)

	return NewChunkType(raw)
}

// Bytes returns the 4 raw tag bytes.
func (t ChunkType) Bytes() [4]byte {
	return t.bytes
}

// IsCritical reports whether the chunk is necessary for meaningful use of
// the stream (byte 0 is uppercase).
func (t ChunkType) IsCritical() bool {
	return isASCIIUpper(t.bytes[0])
}

// IsPublic reports whether the chunk type is part of the public registry
// (byte 1 is uppercase).
func (t ChunkType) IsPublic() bool {
	return isASCIIUpper(t.bytes[1])
}

// IsReservedBitValid reports whether the reserved bit conforms to the
// current standard (byte 2 is uppercase).
func (t ChunkType) IsReservedBitValid() bool {
	return isASCIIUpper(t.bytes[2])
}

// IsSafeToCopy reports whether an editor that does not recognize the chunk
// may copy it unchanged (byte 3 is lowercase).
func (t ChunkType) IsSafeToCopy() bool {
	return isASCIILower(t.bytes[3])
}

// String makes ChunkType printable. Construction enforced ASCII, so the
// result is always the original 4 characters.
func (t ChunkType) String() string {
	return string(t.bytes[:])
}

func isASCIIUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isASCIILower(b byte) bool {
	return b >= 'a' && b <= 'z'
}
