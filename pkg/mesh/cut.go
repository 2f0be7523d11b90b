package mesh

import (
	"errors"

	"github.com/alselawi/castcad/pkg/geometry"
)

// ErrIndexedGeometry is returned by Cut when the buffer is not in the
// triangle-soup layout. Index remapping is not implemented.
var ErrIndexedGeometry = errors.New("cut requires non-indexed triangle geometry")

// Cut returns a new buffer with every selected face removed. The input
// buffer is never mutated; the caller must replace its reference and
// discard the selection afterwards, since the surviving faces are
// renumbered. Attributes are copied independently, so a buffer with a
// partial attribute set yields an output with the same partial set.
// If the source carries no normals, the output normals are recomputed
// flat from the face winding.
func Cut(src *Buffer, sel *Selection) (*Buffer, error) {
	if !src.IsSoup() {
		return nil, ErrIndexedGeometry
	}

	removed := countSelected(src, sel)
	kept := src.FaceCount() - removed

	out := &Buffer{
		Name:     src.Name,
		Position: make([]geometry.Vector3, 0, kept*3),
	}
	if src.Normal != nil {
		out.Normal = make([]geometry.Vector3, 0, kept*3)
	}
	if src.UV != nil {
		out.UV = make([]geometry.Vector2, 0, kept*3)
	}
	if src.Color != nil {
		out.Color = make([]Color, 0, kept*3)
	}

	for f := 0; f < src.FaceCount(); f++ {
		if sel != nil && sel.Has(f) {
			continue
		}
		i := f * 3
		out.Position = append(out.Position, src.Position[i], src.Position[i+1], src.Position[i+2])
		if src.Normal != nil {
			out.Normal = append(out.Normal, src.Normal[i], src.Normal[i+1], src.Normal[i+2])
		}
		if src.UV != nil {
			out.UV = append(out.UV, src.UV[i], src.UV[i+1], src.UV[i+2])
		}
		if src.Color != nil {
			out.Color = append(out.Color, src.Color[i], src.Color[i+1], src.Color[i+2])
		}
	}

	// Never hand back an un-lit mesh
	if out.Normal == nil {
		out.ComputeFlatNormals()
	}

	// Group ranges no longer correspond to the renumbered faces. An
	// empty cut renumbers nothing, so the groups stay valid.
	if removed == 0 && src.Groups != nil {
		out.Groups = append([]Group(nil), src.Groups...)
	}

	return out, nil
}

// countSelected counts selection entries that refer to faces actually
// present in the buffer, ignoring stale out-of-range indices
func countSelected(src *Buffer, sel *Selection) int {
	if sel == nil {
		return 0
	}
	n := 0
	for _, f := range sel.Faces() {
		if f >= 0 && f < src.FaceCount() {
			n++
		}
	}
	return n
}
