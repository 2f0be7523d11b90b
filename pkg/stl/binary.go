package stl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/alselawi/castcad/pkg/geometry"
	"github.com/alselawi/castcad/pkg/mesh"
)

// ErrTruncatedBinary is returned when a binary STL file declares more
// triangles than its byte length can hold.
var ErrTruncatedBinary = errors.New("truncated binary stl")

// colorTag marks the non-standard color extension in the 80-byte
// header: "COLOR=" followed by 4 default RGBA bytes. Only the first 70
// header bytes are scanned, matching the original tooling that wrote
// the tag. The tag is not validated beyond the literal match, so color
// text appearing by coincidence yields a false-positive default color.
var colorTag = []byte("COLOR=")

const colorTagScanLimit = 70

// decodeBinary parses the binary variant: an 80-byte header, a little-
// endian uint32 face count and one 50-byte record per face (normal,
// three vertices, 16-bit attribute).
func decodeBinary(data []byte) (*mesh.Buffer, error) {
	if len(data) < binaryMinSize {
		return nil, fmt.Errorf("%w: %d bytes is too short for a header", ErrTruncatedBinary, len(data))
	}

	header := data[:binaryHeaderSize]
	faceCount := int(binary.LittleEndian.Uint32(data[binaryHeaderSize:]))

	expected := binaryMinSize + faceCount*binaryFaceSize
	if len(data) < expected {
		return nil, fmt.Errorf("%w: header declares %d triangles (%d bytes), buffer holds %d",
			ErrTruncatedBinary, faceCount, expected, len(data))
	}

	buf := mesh.NewBuffer("")
	buf.Position = make([]geometry.Vector3, 0, faceCount*3)
	buf.Normal = make([]geometry.Vector3, 0, faceCount*3)

	defaultColor, hasColor := headerDefaultColor(header)
	if hasColor {
		buf.Color = make([]mesh.Color, 0, faceCount*3)
	} else {
		// Without the color tag the header is free text; use it as
		// the model name like most exporters intend
		buf.Name = string(bytes.TrimRight(header, "\x00"))
	}

	for f := 0; f < faceCount; f++ {
		rec := data[binaryMinSize+f*binaryFaceSize:]

		normal := readVector3(rec)
		v1 := readVector3(rec[12:])
		v2 := readVector3(rec[24:])
		v3 := readVector3(rec[36:])

		buf.Position = append(buf.Position, v1, v2, v3)
		buf.Normal = append(buf.Normal, normal, normal, normal)

		if hasColor {
			attr := binary.LittleEndian.Uint16(rec[48:])
			c := unpackColor(attr, defaultColor)
			buf.Color = append(buf.Color, c, c, c)
		}
	}

	return buf, nil
}

// headerDefaultColor scans the header for the color extension tag and
// returns the default color carried after it
func headerDefaultColor(header []byte) (mesh.Color, bool) {
	limit := colorTagScanLimit
	if limit > len(header) {
		limit = len(header)
	}
	for i := 0; i < limit; i++ {
		if !bytes.HasPrefix(header[i:], colorTag) {
			continue
		}
		rgba := header[i+len(colorTag):]
		if len(rgba) < 4 {
			break
		}
		// Alpha is dropped: the buffer color attribute is RGB
		return mesh.Color{
			R: float64(rgba[0]) / 255.0,
			G: float64(rgba[1]) / 255.0,
			B: float64(rgba[2]) / 255.0,
		}, true
	}
	return mesh.Color{}, false
}

// unpackColor interprets a 16-bit face attribute as a packed color:
// bit 15 clear means 5-bit R/G/B channels in the low 15 bits, bit 15
// set means the face uses the header default
func unpackColor(attr uint16, def mesh.Color) mesh.Color {
	if attr&0x8000 != 0 {
		return def
	}
	return mesh.Color{
		R: float64(attr&0x1F) / 31.0,
		G: float64((attr>>5)&0x1F) / 31.0,
		B: float64((attr>>10)&0x1F) / 31.0,
	}
}

// readVector3 reads three consecutive little-endian float32 values
func readVector3(b []byte) geometry.Vector3 {
	return geometry.Vector3{
		X: float64(math.Float32frombits(binary.LittleEndian.Uint32(b))),
		Y: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))),
		Z: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))),
	}
}
