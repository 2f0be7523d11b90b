package stl

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// emptyBinarySTL builds a valid binary STL with the given face count
// worth of zeroed records
func emptyBinarySTL(faceCount uint32) []byte {
	buf := new(bytes.Buffer)
	buf.Write(make([]byte, 80))
	binary.Write(buf, binary.LittleEndian, faceCount)
	buf.Write(make([]byte, int(faceCount)*50))
	return buf.Bytes()
}

func TestDetectFormatBinaryLengthMatch(t *testing.T) {
	data := emptyBinarySTL(3)

	if got := DetectFormat(data); got != FormatBinary {
		t.Errorf("expected binary, got %s", got)
	}
}

func TestDetectFormatBinaryBeatsSolidPrefix(t *testing.T) {
	// A binary file whose header happens to start with "solid": the
	// length check is authoritative
	data := emptyBinarySTL(2)
	copy(data, "solid ")

	if got := DetectFormat(data); got != FormatBinary {
		t.Errorf("expected binary, got %s", got)
	}
}

func TestDetectFormatASCII(t *testing.T) {
	data := []byte("solid cube\nendsolid cube\n")

	if got := DetectFormat(data); got != FormatASCII {
		t.Errorf("expected ascii, got %s", got)
	}
}

func TestDetectFormatASCIIWithLeadingWhitespace(t *testing.T) {
	// "solid" found within the first offsets still classifies as ASCII
	data := []byte("  solid cube\nendsolid cube\n")

	if got := DetectFormat(data); got != FormatASCII {
		t.Errorf("expected ascii, got %s", got)
	}
}

func TestDetectFormatSolidOffsetWindow(t *testing.T) {
	// "solid" is recognized at offsets 0 through 4 only
	atFour := append([]byte("    "), []byte("solid cube\nendsolid cube\n")...)
	if got := DetectFormat(atFour); got != FormatASCII {
		t.Errorf("expected ascii for solid at offset 4, got %s", got)
	}

	atFive := append([]byte("     "), []byte("solid cube\nendsolid cube\n")...)
	if got := DetectFormat(atFive); got != FormatBinary {
		t.Errorf("expected binary fallback for solid at offset 5, got %s", got)
	}
}

func TestDetectFormatFallbackBinary(t *testing.T) {
	// Neither a length match nor a solid prefix: permissive binary
	data := make([]byte, 200)
	for i := range data {
		data[i] = 0xAB
	}

	if got := DetectFormat(data); got != FormatBinary {
		t.Errorf("expected binary fallback, got %s", got)
	}
}

func TestDetectFormatTinyBuffer(t *testing.T) {
	if got := DetectFormat([]byte("sol")); got != FormatBinary {
		t.Errorf("expected binary fallback for tiny buffer, got %s", got)
	}
}
