package geometry

import "math"

// Ray represents a half-line from an origin along a direction.
// The direction is assumed to be normalized.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray with a normalized direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// IntersectTriangle tests the ray against a triangle using the
// Moeller-Trumbore algorithm. It returns the distance along the ray
// and true when the ray hits the triangle front or back face.
func (r Ray) IntersectTriangle(v1, v2, v3 Vector3) (float64, bool) {
	const epsilon = 1e-9

	edge1 := v2.Sub(v1)
	edge2 := v3.Sub(v1)

	pvec := r.Direction.Cross(edge2)
	det := edge1.Dot(pvec)

	// Ray parallel to the triangle plane
	if math.Abs(det) < epsilon {
		return 0, false
	}
	invDet := 1.0 / det

	tvec := r.Origin.Sub(v1)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	qvec := tvec.Cross(edge1)
	v := r.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := edge2.Dot(qvec) * invDet
	if t < epsilon {
		return 0, false
	}

	return t, true
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
