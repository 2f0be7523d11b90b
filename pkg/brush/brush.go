// Package brush implements screen-space paint selection of mesh faces.
// A drag gesture grows a persistent selection: every face whose
// projected centroid falls within the brush radius around the pointer
// is selected and tinted.
package brush

import (
	"github.com/alselawi/castcad/pkg/geometry"
	"github.com/alselawi/castcad/pkg/mesh"
)

// Projector maps between world space and screen pixels. Both the
// software viewer camera and the raylib camera satisfy it, so the same
// brush drives every frontend.
type Projector interface {
	// Project returns the screen position of a world-space point and
	// whether the point is in front of the camera
	Project(world geometry.Vector3) (geometry.Vector2, bool)
	// PickRay returns the world-space ray through a screen position
	PickRay(screen geometry.Vector2) geometry.Ray
}

// Default brush appearance.
var (
	DefaultRadius    = 10.0
	DefaultBaseColor = mesh.Color{R: 0.78, G: 0.78, B: 0.78}
	DefaultHighlight = mesh.Color{R: 0.39, G: 0.59, B: 1.0}
)

// Brush accumulates a face selection over pointer drag gestures.
// Selection state persists across gestures and unions between them;
// it only resets on Clear or when the owner loads a new buffer.
type Brush struct {
	Radius    float64       // brush radius in screen pixels
	Transform geometry.Mat4 // local-to-world transform of the mesh
	Base      mesh.Color    // color restored on clear
	Highlight mesh.Color    // color painted on selected faces

	selection *mesh.Selection
	active    bool
}

// New creates a brush with the default radius and palette
func New() *Brush {
	return &Brush{
		Radius:    DefaultRadius,
		Transform: geometry.Identity(),
		Base:      DefaultBaseColor,
		Highlight: DefaultHighlight,
		selection: mesh.NewSelection(),
	}
}

// Selection returns the accumulated selection set
func (b *Brush) Selection() *mesh.Selection {
	return b.selection
}

// Active reports whether a paint gesture is in progress
func (b *Brush) Active() bool {
	return b.active
}

// PointerDown starts a paint gesture. Painting activates only when the
// pick ray through the pointer hits the mesh, so a drag that starts
// off-mesh rotates the camera instead of painting. The hit is for
// activation only and selects nothing; faces are painted by the move
// events that follow. Returns whether the gesture activated.
func (b *Brush) PointerDown(screen geometry.Vector2, proj Projector, buf *mesh.Buffer) bool {
	b.active = b.hitsMesh(proj.PickRay(screen), buf)
	return b.active
}

// PointerMove paints while a gesture is active: every face whose
// transformed, projected centroid lies within the brush radius of the
// pointer is added to the selection and tinted. The scan is a full
// pass over the buffer on every event.
func (b *Brush) PointerMove(screen geometry.Vector2, proj Projector, buf *mesh.Buffer) {
	if !b.active {
		return
	}
	b.paint(screen, proj, buf)
}

// PointerUp ends the gesture. The accumulated selection persists.
func (b *Brush) PointerUp() {
	b.active = false
}

// Clear empties the selection and restores all vertex colors to the
// base color. Safe to call with no active selection.
func (b *Brush) Clear(buf *mesh.Buffer) {
	b.selection.Clear()
	if buf != nil && buf.HasColors() {
		buf.FillColors(b.Base)
	}
}

// Invalidate drops the selection without touching the buffer, for use
// when the buffer reference itself has been replaced (cut or reload)
// and the old face indices no longer apply.
func (b *Brush) Invalidate() {
	b.selection.Clear()
	b.active = false
}

func (b *Brush) paint(screen geometry.Vector2, proj Projector, buf *mesh.Buffer) {
	radiusSq := b.Radius * b.Radius
	identity := b.Transform.IsIdentity()

	for f := 0; f < buf.FaceCount(); f++ {
		centroid := buf.FaceCentroid(f)
		if !identity {
			centroid = b.Transform.TransformPoint(centroid)
		}

		pos, ok := proj.Project(centroid)
		if !ok {
			continue
		}
		if pos.DistanceSquared(screen) > radiusSq {
			continue
		}

		if !b.selection.Has(f) {
			b.selection.Add(f)
		}
		buf.EnsureColors(b.Base)
		buf.SetFaceColor(f, b.Highlight)
	}
}

// hitsMesh casts the ray against every triangle of the buffer
func (b *Brush) hitsMesh(ray geometry.Ray, buf *mesh.Buffer) bool {
	identity := b.Transform.IsIdentity()

	for f := 0; f < buf.FaceCount(); f++ {
		i := f * 3
		v1, v2, v3 := buf.Position[i], buf.Position[i+1], buf.Position[i+2]
		if !identity {
			v1 = b.Transform.TransformPoint(v1)
			v2 = b.Transform.TransformPoint(v2)
			v3 = b.Transform.TransformPoint(v3)
		}
		if _, hit := ray.IntersectTriangle(v1, v2, v3); hit {
			return true
		}
	}
	return false
}
