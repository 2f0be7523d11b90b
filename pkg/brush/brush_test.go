package brush

import (
	"testing"

	"github.com/alselawi/castcad/pkg/geometry"
	"github.com/alselawi/castcad/pkg/mesh"
)

// planarProjector maps world XY directly to screen pixels at 100 px
// per unit and picks with rays looking down -Z
type planarProjector struct{}

func (planarProjector) Project(world geometry.Vector3) (geometry.Vector2, bool) {
	return geometry.NewVector2(world.X*100, world.Y*100), true
}

func (planarProjector) PickRay(screen geometry.Vector2) geometry.Ray {
	origin := geometry.NewVector3(screen.X/100, screen.Y/100, 10)
	return geometry.NewRay(origin, geometry.NewVector3(0, 0, -1))
}

// rowBuffer builds faceCount unit triangles in the XY plane, face f
// spanning x in [2f, 2f+1]
func rowBuffer(faceCount int) *mesh.Buffer {
	b := mesh.NewBuffer("row")
	for f := 0; f < faceCount; f++ {
		x := float64(f * 2)
		b.Position = append(b.Position,
			geometry.NewVector3(x, 0, 0),
			geometry.NewVector3(x+1, 0, 0),
			geometry.NewVector3(x, 1, 0),
		)
	}
	return b
}

func TestBrushActivationRequiresMeshHit(t *testing.T) {
	b := New()
	buf := rowBuffer(2)
	proj := planarProjector{}

	// Pointer far away from every triangle: no activation
	if b.PointerDown(geometry.NewVector2(5000, 5000), proj, buf) {
		t.Error("expected no activation off-mesh")
	}
	if b.Active() {
		t.Error("brush reports active after failed activation")
	}

	// Pointer over face 0 activates
	if !b.PointerDown(geometry.NewVector2(30, 30), proj, buf) {
		t.Error("expected activation over the mesh")
	}
	if !b.Active() {
		t.Error("brush should be active after a mesh hit")
	}
}

func TestBrushPaintSelectsWithinRadius(t *testing.T) {
	b := New()
	buf := rowBuffer(3)
	proj := planarProjector{}

	// Face 0 centroid is (1/3, 1/3) -> screen (33.3, 33.3);
	// face 1 centroid is (2.33, 0.33) -> screen (233.3, 33.3)
	if !b.PointerDown(geometry.NewVector2(33, 33), proj, buf) {
		t.Fatal("activation failed")
	}
	b.PointerMove(geometry.NewVector2(33, 33), proj, buf)
	b.PointerUp()

	sel := b.Selection()
	if !sel.Has(0) {
		t.Error("face 0 should be selected")
	}
	if sel.Has(1) || sel.Has(2) {
		t.Error("faces outside the brush radius were selected")
	}

	// Selected face is tinted, others carry the base color
	if buf.Color[0] != b.Highlight {
		t.Errorf("expected highlight on face 0, got %v", buf.Color[0])
	}
	if buf.Color[3] != b.Base {
		t.Errorf("expected base color on face 1, got %v", buf.Color[3])
	}
}

func TestBrushPaintIsIdempotent(t *testing.T) {
	b := New()
	buf := rowBuffer(1)
	proj := planarProjector{}

	b.PointerDown(geometry.NewVector2(33, 33), proj, buf)
	b.PointerMove(geometry.NewVector2(33, 33), proj, buf)
	b.PointerMove(geometry.NewVector2(34, 33), proj, buf)
	b.PointerUp()

	if b.Selection().Len() != 1 {
		t.Errorf("expected 1 selected face, got %d", b.Selection().Len())
	}
}

func TestBrushPointerDownAloneSelectsNothing(t *testing.T) {
	b := New()
	buf := rowBuffer(1)
	proj := planarProjector{}

	// A click on the mesh activates the gesture but must not select:
	// painting belongs to the move events
	if !b.PointerDown(geometry.NewVector2(33, 33), proj, buf) {
		t.Fatal("activation failed")
	}
	b.PointerUp()

	if b.Selection().Len() != 0 {
		t.Errorf("pointer down alone selected %d face(s)", b.Selection().Len())
	}
	if buf.HasColors() {
		t.Error("pointer down alone must not allocate colors")
	}
}

func TestBrushSelectionUnionsAcrossGestures(t *testing.T) {
	b := New()
	buf := rowBuffer(3)
	proj := planarProjector{}

	b.PointerDown(geometry.NewVector2(33, 33), proj, buf)
	b.PointerMove(geometry.NewVector2(33, 33), proj, buf)
	b.PointerUp()

	// Second gesture over face 2 (centroid x=4.33 -> screen 433)
	b.PointerDown(geometry.NewVector2(433, 33), proj, buf)
	b.PointerMove(geometry.NewVector2(433, 33), proj, buf)
	b.PointerUp()

	sel := b.Selection()
	if !sel.Has(0) || !sel.Has(2) {
		t.Errorf("expected faces 0 and 2 selected, got %v", sel.Faces())
	}
}

func TestBrushMoveWithoutActivationPaintsNothing(t *testing.T) {
	b := New()
	buf := rowBuffer(2)
	proj := planarProjector{}

	b.PointerMove(geometry.NewVector2(33, 33), proj, buf)

	if b.Selection().Len() != 0 {
		t.Error("inactive brush must not paint")
	}
	if buf.HasColors() {
		t.Error("inactive brush must not allocate colors")
	}
}

func TestBrushClearRestoresColors(t *testing.T) {
	b := New()
	buf := rowBuffer(2)
	proj := planarProjector{}

	b.PointerDown(geometry.NewVector2(33, 33), proj, buf)
	b.PointerMove(geometry.NewVector2(33, 33), proj, buf)
	b.PointerUp()

	b.Clear(buf)
	if b.Selection().Len() != 0 {
		t.Error("clear left faces selected")
	}
	for i, c := range buf.Color {
		if c != b.Base {
			t.Errorf("color %d not restored: %v", i, c)
		}
	}

	// Clearing again is safe
	b.Clear(buf)
}

func TestBrushTransformAppliesToCentroids(t *testing.T) {
	b := New()
	b.Transform = geometry.Translate(10, 0, 0)
	buf := rowBuffer(1)
	proj := planarProjector{}

	// Local centroid (1/3, 1/3) moves to (10.33, 0.33) in world, so
	// the untranslated position must no longer match
	b.active = true
	b.PointerMove(geometry.NewVector2(33, 33), proj, buf)
	if b.Selection().Len() != 0 {
		t.Error("selection ignored the model transform")
	}

	b.PointerMove(geometry.NewVector2(1033, 33), proj, buf)
	if !b.Selection().Has(0) {
		t.Error("expected face 0 selected at its transformed position")
	}
}

func TestSelectRect(t *testing.T) {
	b := New()
	buf := rowBuffer(3)
	proj := planarProjector{}

	// Rectangle covering the centroids of faces 0 and 1, dragged
	// bottom-right to top-left
	rect := Rect{
		Start: geometry.NewVector2(300, 60),
		End:   geometry.NewVector2(0, 0),
	}
	b.SelectRect(rect, proj, buf)

	sel := b.Selection()
	if !sel.Has(0) || !sel.Has(1) {
		t.Errorf("expected faces 0 and 1, got %v", sel.Faces())
	}
	if sel.Has(2) {
		t.Error("face 2 lies outside the rectangle")
	}
}
