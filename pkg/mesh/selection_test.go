package mesh

import "testing"

func TestSelectionAddIsIdempotent(t *testing.T) {
	sel := NewSelection()

	sel.Add(3)
	sel.Add(3)
	sel.Add(3)

	if sel.Len() != 1 {
		t.Errorf("expected 1 selected face, got %d", sel.Len())
	}
	if !sel.Has(3) {
		t.Error("expected face 3 to be selected")
	}
}

func TestSelectionClear(t *testing.T) {
	sel := NewSelection()
	sel.Add(0)
	sel.Add(7)

	sel.Clear()
	if sel.Len() != 0 {
		t.Errorf("expected empty selection, got %d", sel.Len())
	}

	// Clearing an empty selection is safe
	sel.Clear()
	if sel.Len() != 0 {
		t.Error("clear on empty selection failed")
	}
}

func TestSelectionFacesSorted(t *testing.T) {
	sel := NewSelection()
	sel.Add(5)
	sel.Add(1)
	sel.Add(3)

	faces := sel.Faces()
	expected := []int{1, 3, 5}

	if len(faces) != len(expected) {
		t.Fatalf("expected %d faces, got %d", len(expected), len(faces))
	}
	for i := range expected {
		if faces[i] != expected[i] {
			t.Errorf("face %d: expected %d, got %d", i, expected[i], faces[i])
		}
	}
}
