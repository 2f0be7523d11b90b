// Package stl decodes STL files, both the fixed-record binary variant
// and the nested-block ASCII variant, into triangle buffers.
package stl

import (
	"bytes"
	"encoding/binary"
)

// Format identifies the STL encoding variant
type Format int

// STL encoding variants.
const (
	FormatBinary Format = iota
	FormatASCII
)

// String returns a human-readable format name
func (f Format) String() string {
	if f == FormatASCII {
		return "ascii"
	}
	return "binary"
}

const (
	binaryHeaderSize = 80
	binaryFaceSize   = 50 // 12 float32 + 1 uint16
	binaryMinSize    = binaryHeaderSize + 4
)

var asciiMagic = []byte("solid")

// DetectFormat classifies a raw STL byte buffer. The binary length
// check is authoritative: a buffer whose declared face count matches
// its exact length is binary no matter what text it starts with.
// Otherwise a "solid" literal within the first bytes marks ASCII, and
// anything else falls back to binary, which tolerates malformed but
// binary-shaped files.
func DetectFormat(data []byte) Format {
	if len(data) >= binaryMinSize {
		n := binary.LittleEndian.Uint32(data[binaryHeaderSize:])
		expected := binaryMinSize + int(n)*binaryFaceSize
		if expected == len(data) {
			return FormatBinary
		}
	}

	limit := len(data) - len(asciiMagic)
	for off := 0; off < 5 && off <= limit; off++ {
		if bytes.Equal(data[off:off+len(asciiMagic)], asciiMagic) {
			return FormatASCII
		}
	}

	return FormatBinary
}
