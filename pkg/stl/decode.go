package stl

import (
	"fmt"
	"os"

	"github.com/alselawi/castcad/pkg/mesh"
)

// Decode detects the format of a raw STL byte buffer and decodes it
// into a triangle buffer. Warnings report malformed ASCII facets that
// were skipped; the returned buffer is still usable when warnings are
// present. On error the buffer is nil and any previously loaded mesh
// should be left untouched by the caller.
func Decode(data []byte) (*mesh.Buffer, []Warning, error) {
	if DetectFormat(data) == FormatASCII {
		return decodeASCII(data)
	}
	buf, err := decodeBinary(data)
	return buf, nil, err
}

// Parse reads and decodes an STL file
func Parse(filename string) (*mesh.Buffer, []Warning, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("reading stl file: %w", err)
	}
	buf, warnings, err := Decode(data)
	if err != nil {
		return nil, warnings, fmt.Errorf("decoding %s: %w", filename, err)
	}
	if buf.Name == "" {
		buf.Name = filename
	}
	return buf, warnings, nil
}
