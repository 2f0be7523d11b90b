package brush

import (
	"math"

	"github.com/alselawi/castcad/pkg/geometry"
	"github.com/alselawi/castcad/pkg/mesh"
)

// Rect is a screen-space selection rectangle spanned by a drag
type Rect struct {
	Start geometry.Vector2
	End   geometry.Vector2
}

// Normalized returns the rectangle corners with positive extent,
// regardless of the drag direction
func (r Rect) Normalized() (min, max geometry.Vector2) {
	min = geometry.Vector2{
		X: math.Min(r.Start.X, r.End.X),
		Y: math.Min(r.Start.Y, r.End.Y),
	}
	max = geometry.Vector2{
		X: math.Max(r.Start.X, r.End.X),
		Y: math.Max(r.Start.Y, r.End.Y),
	}
	return min, max
}

// Contains reports whether a screen point lies inside the rectangle
func (r Rect) Contains(p geometry.Vector2) bool {
	min, max := r.Normalized()
	return p.X >= min.X && p.X <= max.X && p.Y >= min.Y && p.Y <= max.Y
}

// SelectRect adds every face whose projected centroid falls inside the
// rectangle, using the same predicate pipeline as the paint brush.
// Used for ctrl-drag multi-select.
func (b *Brush) SelectRect(r Rect, proj Projector, buf *mesh.Buffer) {
	identity := b.Transform.IsIdentity()

	for f := 0; f < buf.FaceCount(); f++ {
		centroid := buf.FaceCentroid(f)
		if !identity {
			centroid = b.Transform.TransformPoint(centroid)
		}

		pos, ok := proj.Project(centroid)
		if !ok || !r.Contains(pos) {
			continue
		}

		b.selection.Add(f)
		buf.EnsureColors(b.Base)
		buf.SetFaceColor(f, b.Highlight)
	}
}
