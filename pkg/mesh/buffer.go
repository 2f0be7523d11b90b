// Package mesh provides the non-indexed triangle buffer shared by the
// decoders, the brush selector and the cutter. Every triangle owns three
// private vertices: face f maps to vertex indices 3f, 3f+1 and 3f+2.
package mesh

import (
	"github.com/alselawi/castcad/pkg/geometry"
)

// Color is an RGB color with channels in the 0..1 range
type Color struct {
	R, G, B float64
}

// Group is a named sub-range of the vertex stream, produced for each
// "solid" block of an ASCII STL file
type Group struct {
	Name  string
	Start int // first vertex index
	Count int // number of vertices
}

// Buffer is a triangle mesh stored as parallel per-vertex attribute
// arrays. Position is always present; the other attributes are nil when
// absent. Index is nil for triangle-soup buffers and only set when a
// later pipeline stage attaches an index buffer.
type Buffer struct {
	Name     string
	Position []geometry.Vector3
	Normal   []geometry.Vector3
	UV       []geometry.Vector2
	Color    []Color
	Index    []uint32
	Groups   []Group
}

// NewBuffer creates an empty triangle buffer
func NewBuffer(name string) *Buffer {
	return &Buffer{Name: name}
}

// VertexCount returns the number of vertices in the buffer
func (b *Buffer) VertexCount() int {
	return len(b.Position)
}

// FaceCount returns the number of triangles in the buffer
func (b *Buffer) FaceCount() int {
	return len(b.Position) / 3
}

// IsSoup reports whether the buffer is in the non-indexed triangle-soup
// layout: no index buffer and a vertex count divisible by 3
func (b *Buffer) IsSoup() bool {
	return b.Index == nil && len(b.Position)%3 == 0
}

// HasNormals reports whether the buffer carries a normal attribute
func (b *Buffer) HasNormals() bool {
	return b.Normal != nil
}

// HasColors reports whether the buffer carries a color attribute
func (b *Buffer) HasColors() bool {
	return b.Color != nil
}

// HasUV reports whether the buffer carries a UV attribute
func (b *Buffer) HasUV() bool {
	return b.UV != nil
}

// Face returns the triangle owned by face index f
func (b *Buffer) Face(f int) geometry.Triangle {
	i := f * 3
	tri := geometry.Triangle{
		V1: b.Position[i],
		V2: b.Position[i+1],
		V3: b.Position[i+2],
	}
	if b.Normal != nil {
		tri.Normal = b.Normal[i]
	} else {
		tri.Normal = tri.CalculateNormal()
	}
	return tri
}

// FaceCentroid returns the centroid of face f in local space
func (b *Buffer) FaceCentroid(f int) geometry.Vector3 {
	i := f * 3
	return geometry.Vector3{
		X: (b.Position[i].X + b.Position[i+1].X + b.Position[i+2].X) / 3.0,
		Y: (b.Position[i].Y + b.Position[i+1].Y + b.Position[i+2].Y) / 3.0,
		Z: (b.Position[i].Z + b.Position[i+1].Z + b.Position[i+2].Z) / 3.0,
	}
}

// AppendFace appends one triangle with a replicated per-vertex normal
func (b *Buffer) AppendFace(normal, v1, v2, v3 geometry.Vector3) {
	b.Position = append(b.Position, v1, v2, v3)
	if b.Normal != nil {
		b.Normal = append(b.Normal, normal, normal, normal)
	}
}

// ComputeFlatNormals derives the normal attribute from the face winding,
// replicating each face normal to its three vertices. Any existing
// normals are replaced.
func (b *Buffer) ComputeFlatNormals() {
	b.Normal = make([]geometry.Vector3, len(b.Position))
	for f := 0; f < b.FaceCount(); f++ {
		i := f * 3
		edge1 := b.Position[i+1].Sub(b.Position[i])
		edge2 := b.Position[i+2].Sub(b.Position[i])
		n := edge1.Cross(edge2).Normalize()
		b.Normal[i] = n
		b.Normal[i+1] = n
		b.Normal[i+2] = n
	}
}

// EnsureColors allocates the color attribute initialized to base if the
// buffer does not carry one yet
func (b *Buffer) EnsureColors(base Color) {
	if b.Color != nil {
		return
	}
	b.Color = make([]Color, len(b.Position))
	for i := range b.Color {
		b.Color[i] = base
	}
}

// SetFaceColor overwrites the three vertex colors of face f.
// The color attribute must exist.
func (b *Buffer) SetFaceColor(f int, c Color) {
	i := f * 3
	b.Color[i] = c
	b.Color[i+1] = c
	b.Color[i+2] = c
}

// FillColors sets every vertex color to c. The color attribute must exist.
func (b *Buffer) FillColors(c Color) {
	for i := range b.Color {
		b.Color[i] = c
	}
}

// BoundingBox calculates the bounding box of all vertices
func (b *Buffer) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, p := range b.Position {
		bbox.Extend(p)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the mesh
func (b *Buffer) SurfaceArea() float64 {
	total := 0.0
	for f := 0; f < b.FaceCount(); f++ {
		total += b.Face(f).Area()
	}
	return total
}

// Clone returns a deep copy of the buffer
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{Name: b.Name}
	out.Position = append([]geometry.Vector3(nil), b.Position...)
	if b.Normal != nil {
		out.Normal = append([]geometry.Vector3(nil), b.Normal...)
	}
	if b.UV != nil {
		out.UV = append([]geometry.Vector2(nil), b.UV...)
	}
	if b.Color != nil {
		out.Color = append([]Color(nil), b.Color...)
	}
	if b.Index != nil {
		out.Index = append([]uint32(nil), b.Index...)
	}
	if b.Groups != nil {
		out.Groups = append([]Group(nil), b.Groups...)
	}
	return out
}
