package mesh

import (
	"math"
	"testing"

	"github.com/alselawi/castcad/pkg/geometry"
)

// quadBuffer builds a two-triangle buffer in the XY plane
func quadBuffer() *Buffer {
	b := NewBuffer("quad")
	b.Position = []geometry.Vector3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
	}
	return b
}

func TestBufferFaceCount(t *testing.T) {
	b := quadBuffer()

	if b.VertexCount() != 6 {
		t.Errorf("expected 6 vertices, got %d", b.VertexCount())
	}
	if b.FaceCount() != 2 {
		t.Errorf("expected 2 faces, got %d", b.FaceCount())
	}
}

func TestBufferFaceCentroid(t *testing.T) {
	b := quadBuffer()

	c := b.FaceCentroid(0)
	expected := geometry.NewVector3(1.0/3.0, 1.0/3.0, 0)

	if math.Abs(c.X-expected.X) > 1e-10 || math.Abs(c.Y-expected.Y) > 1e-10 || c.Z != 0 {
		t.Errorf("centroid failed: expected %v, got %v", expected, c)
	}
}

func TestBufferComputeFlatNormals(t *testing.T) {
	b := quadBuffer()
	b.ComputeFlatNormals()

	if len(b.Normal) != 6 {
		t.Fatalf("expected 6 normals, got %d", len(b.Normal))
	}

	// Counter-clockwise winding in the XY plane faces +Z
	expected := geometry.NewVector3(0, 0, 1)
	for i, n := range b.Normal {
		if n.Distance(expected) > 1e-10 {
			t.Errorf("normal %d: expected %v, got %v", i, expected, n)
		}
	}
}

func TestBufferEnsureColors(t *testing.T) {
	b := quadBuffer()
	base := Color{R: 0.5, G: 0.5, B: 0.5}

	b.EnsureColors(base)
	if len(b.Color) != 6 {
		t.Fatalf("expected 6 colors, got %d", len(b.Color))
	}
	for i, c := range b.Color {
		if c != base {
			t.Errorf("color %d: expected %v, got %v", i, base, c)
		}
	}

	// A second call must not reset existing colors
	b.SetFaceColor(0, Color{R: 1, G: 0, B: 0})
	b.EnsureColors(base)
	if b.Color[0] != (Color{R: 1, G: 0, B: 0}) {
		t.Error("EnsureColors overwrote existing colors")
	}
}

func TestBufferIsSoup(t *testing.T) {
	b := quadBuffer()
	if !b.IsSoup() {
		t.Error("expected soup buffer")
	}

	b.Index = []uint32{0, 1, 2}
	if b.IsSoup() {
		t.Error("indexed buffer must not report as soup")
	}

	b = quadBuffer()
	b.Position = b.Position[:5] // vertex count not divisible by 3
	if b.IsSoup() {
		t.Error("partial face must not report as soup")
	}
}

func TestBufferSurfaceArea(t *testing.T) {
	b := quadBuffer()

	// Two half-unit triangles form a unit square
	if math.Abs(b.SurfaceArea()-1.0) > 1e-10 {
		t.Errorf("expected area 1.0, got %v", b.SurfaceArea())
	}
}

func TestBufferCloneIsIndependent(t *testing.T) {
	b := quadBuffer()
	b.EnsureColors(Color{R: 0.2, G: 0.2, B: 0.2})
	b.Groups = []Group{{Name: "quad", Start: 0, Count: 6}}

	clone := b.Clone()
	clone.Position[0].X = 99
	clone.Color[0].R = 1

	if b.Position[0].X == 99 || b.Color[0].R == 1 {
		t.Error("clone shares storage with the original")
	}
	if len(clone.Groups) != 1 || clone.Groups[0].Name != "quad" {
		t.Error("clone lost groups")
	}
}
