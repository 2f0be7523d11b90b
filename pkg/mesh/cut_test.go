package mesh

import (
	"errors"
	"testing"

	"github.com/alselawi/castcad/pkg/geometry"
)

// threeFaceBuffer builds a buffer with three distinct triangles and a
// full attribute set
func threeFaceBuffer() *Buffer {
	b := NewBuffer("three")
	for f := 0; f < 3; f++ {
		off := float64(f * 10)
		b.AppendFace(geometry.Vector3{},
			geometry.NewVector3(off, 0, 0),
			geometry.NewVector3(off+1, 0, 0),
			geometry.NewVector3(off, 1, 0),
		)
	}
	b.ComputeFlatNormals()
	b.UV = make([]geometry.Vector2, 9)
	for i := range b.UV {
		b.UV[i] = geometry.NewVector2(float64(i), float64(i))
	}
	b.EnsureColors(Color{R: 0.5, G: 0.5, B: 0.5})
	return b
}

func TestCutRemovesSelectedFaces(t *testing.T) {
	src := threeFaceBuffer()
	sel := NewSelection()
	sel.Add(1)

	out, err := Cut(src, sel)
	if err != nil {
		t.Fatalf("Cut failed: %v", err)
	}

	if out.FaceCount() != 2 {
		t.Fatalf("expected 2 faces, got %d", out.FaceCount())
	}
	if out.VertexCount()%3 != 0 {
		t.Errorf("vertex count %d not divisible by 3", out.VertexCount())
	}

	// Face 1 started at x=10; none of its vertices may survive
	for _, p := range out.Position {
		if p.X >= 10 && p.X < 20 {
			t.Errorf("vertex of cut face survived: %v", p)
		}
	}

	// The input must be untouched
	if src.FaceCount() != 3 {
		t.Error("Cut mutated the input buffer")
	}
}

func TestCutEmptySelectionIsIdentity(t *testing.T) {
	src := threeFaceBuffer()

	out, err := Cut(src, NewSelection())
	if err != nil {
		t.Fatalf("Cut failed: %v", err)
	}

	if out.VertexCount() != src.VertexCount() {
		t.Fatalf("expected %d vertices, got %d", src.VertexCount(), out.VertexCount())
	}
	for i := range src.Position {
		if out.Position[i] != src.Position[i] {
			t.Errorf("position %d changed", i)
		}
		if out.Normal[i] != src.Normal[i] {
			t.Errorf("normal %d changed", i)
		}
		if out.UV[i] != src.UV[i] {
			t.Errorf("uv %d changed", i)
		}
		if out.Color[i] != src.Color[i] {
			t.Errorf("color %d changed", i)
		}
	}
}

func TestCutPreservesPartialAttributes(t *testing.T) {
	src := threeFaceBuffer()
	src.UV = nil
	src.Color = nil

	sel := NewSelection()
	sel.Add(0)

	out, err := Cut(src, sel)
	if err != nil {
		t.Fatalf("Cut failed: %v", err)
	}

	if out.HasUV() {
		t.Error("output gained a UV attribute the source did not have")
	}
	if out.HasColors() {
		t.Error("output gained a color attribute the source did not have")
	}
	if !out.HasNormals() {
		t.Error("output lost the normal attribute")
	}
}

func TestCutRecomputesMissingNormals(t *testing.T) {
	src := threeFaceBuffer()
	src.Normal = nil

	out, err := Cut(src, NewSelection())
	if err != nil {
		t.Fatalf("Cut failed: %v", err)
	}

	if !out.HasNormals() {
		t.Fatal("expected recomputed normals")
	}
	expected := geometry.NewVector3(0, 0, 1)
	for i, n := range out.Normal {
		if n.Distance(expected) > 1e-10 {
			t.Errorf("normal %d: expected %v, got %v", i, expected, n)
		}
	}
}

func TestCutRejectsIndexedGeometry(t *testing.T) {
	src := threeFaceBuffer()
	src.Index = []uint32{0, 1, 2}

	_, err := Cut(src, NewSelection())
	if !errors.Is(err, ErrIndexedGeometry) {
		t.Errorf("expected ErrIndexedGeometry, got %v", err)
	}
}

func TestCutDropsGroupsWhenFacesRemoved(t *testing.T) {
	src := threeFaceBuffer()
	src.Groups = []Group{{Name: "a", Start: 0, Count: 9}}

	sel := NewSelection()
	sel.Add(2)

	out, err := Cut(src, sel)
	if err != nil {
		t.Fatalf("Cut failed: %v", err)
	}
	if out.Groups != nil {
		t.Error("groups must not survive a real cut, their ranges are stale")
	}
}

func TestCutEmptySelectionKeepsGroups(t *testing.T) {
	src := threeFaceBuffer()
	src.Groups = []Group{
		{Name: "a", Start: 0, Count: 6},
		{Name: "b", Start: 6, Count: 3},
	}

	out, err := Cut(src, NewSelection())
	if err != nil {
		t.Fatalf("Cut failed: %v", err)
	}

	if len(out.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(out.Groups))
	}
	for i, g := range out.Groups {
		if g != src.Groups[i] {
			t.Errorf("group %d changed: %+v", i, g)
		}
	}
}
