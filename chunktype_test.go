package pngchunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkType_FromBytesAndString(t *testing.T) {
	fromBytes, err := NewChunkType([4]byte{82, 117, 83, 116})
	assert.NoError(t, err)

	fromString, err := ChunkTypeFromString("RuSt")
	assert.NoError(t, err)

	assert.Equal(t, fromBytes, fromString)
	assert.Equal(t, [4]byte{'R', 'u', 'S', 't'}, fromBytes.Bytes())
	assert.Equal(t, "RuSt", fromBytes.String())
}

func TestChunkType_InvalidEncoding(t *testing.T) {
	// "RËèØ" in Latin-1: every accented byte is outside the ASCII range.
	_, err := NewChunkType([4]byte{0x52, 0xCB, 0xE8, 0xD8})
	assert.ErrorIs(t, err, ErrChunkTypeInvalidEncoding)

	_, err = ChunkTypeFromString(string([]byte{0x52, 0xCB, 0xE8, 0xD8}))
	assert.ErrorIs(t, err, ErrChunkTypeInvalidEncoding)
}

func TestChunkType_InvalidEncoding_AnyPosition(t *testing.T) {
	for i := 0; i < 4; i++ {
		raw := [4]byte{'a', 'b', 'c', 'd'}
		raw[i] = 0x80

		_, err := NewChunkType(raw)
		assert.ErrorIs(t, err, ErrChunkTypeInvalidEncoding, "position %d", i)
	}
}

func TestChunkType_InvalidLength(t *testing.T) {
	_, err := ChunkTypeFromString("RuStt")
	assert.ErrorIs(t, err, ErrChunkTypeInvalidLength)
	assert.ErrorContains(t, err, "5 bytes")

	_, err = ChunkTypeFromString("")
	assert.ErrorIs(t, err, ErrChunkTypeInvalidLength)
	assert.ErrorContains(t, err, "0 bytes")

	// Byte length counts, not character count: 4 characters, 7 bytes of UTF-8.
	_, err = ChunkTypeFromString("RËèØ")
	assert.ErrorIs(t, err, ErrChunkTypeInvalidLength)
	assert.ErrorContains(t, err, "7 bytes")
}

func TestChunkType_Properties(t *testing.T) {
	tt := []struct {
		tag              string
		critical         bool
		public           bool
		reservedBitValid bool
		safeToCopy       bool
	}{
		{"RuSt", true, false, true, true},
		{"ruSt", false, false, true, true},
		{"RUSt", true, true, true, true},
		{"Rust", true, false, false, true},
		{"RuST", true, false, true, false},
		{"bLOb", false, true, true, true},
		{"IHDR", true, true, true, false},
		{"1234", false, false, false, false},
	}

	for _, tc := range tt {
		tag, err := ChunkTypeFromString(tc.tag)
		assert.NoError(t, err, tc.tag)
		assert.Equal(t, tc.critical, tag.IsCritical(), "%s critical", tc.tag)
		assert.Equal(t, tc.public, tag.IsPublic(), "%s public", tc.tag)
		assert.Equal(t, tc.reservedBitValid, tag.IsReservedBitValid(), "%s reserved bit", tc.tag)
		assert.Equal(t, tc.safeToCopy, tag.IsSafeToCopy(), "%s safe to copy", tc.tag)
	}
}

func TestChunkType_PropertiesIndependent(t *testing.T) {
	props := func(tag ChunkType) [4]bool {
		return [4]bool{tag.IsCritical(), tag.IsPublic(), tag.IsReservedBitValid(), tag.IsSafeToCopy()}
	}

	base, err := ChunkTypeFromString("RuSt")
	assert.NoError(t, err)
	baseProps := props(base)

	// Flipping the case of one byte toggles that byte's property and no other.
	for i := 0; i < 4; i++ {
		raw := base.Bytes()
		raw[i] ^= 0x20

		flipped, err := NewChunkType(raw)
		assert.NoError(t, err)

		flippedProps := props(flipped)
		for j := 0; j < 4; j++ {
			if j == i {
				assert.NotEqual(t, baseProps[j], flippedProps[j], "byte %d should toggle property %d", i, j)
			} else {
				assert.Equal(t, baseProps[j], flippedProps[j], "byte %d should not affect property %d", i, j)
			}
		}
	}
}
