package mesh

import "sort"

// Selection is a set of selected face indices. It is transient UI state:
// indices refer to the buffer that was current when they were added, and
// the owner must discard the selection whenever that buffer is replaced.
type Selection struct {
	faces map[int]struct{}
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{faces: make(map[int]struct{})}
}

// Add adds a face index to the selection. Adding an already selected
// face is a no-op.
func (s *Selection) Add(face int) {
	s.faces[face] = struct{}{}
}

// Has reports whether a face is selected
func (s *Selection) Has(face int) bool {
	_, ok := s.faces[face]
	return ok
}

// Len returns the number of selected faces
func (s *Selection) Len() int {
	return len(s.faces)
}

// Clear removes all faces from the selection
func (s *Selection) Clear() {
	for f := range s.faces {
		delete(s.faces, f)
	}
}

// Faces returns the selected face indices in ascending order
func (s *Selection) Faces() []int {
	out := make([]int, 0, len(s.faces))
	for f := range s.faces {
		out = append(out, f)
	}
	sort.Ints(out)
	return out
}
