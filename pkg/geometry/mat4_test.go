package geometry

import (
	"math"
	"testing"
)

func TestMat4IdentityTransform(t *testing.T) {
	p := NewVector3(1, 2, 3)
	result := Identity().TransformPoint(p)

	if result != p {
		t.Errorf("Identity transform failed: expected %v, got %v", p, result)
	}
}

func TestMat4Translate(t *testing.T) {
	m := Translate(10, 20, 30)
	result := m.TransformPoint(NewVector3(1, 2, 3))
	expected := NewVector3(11, 22, 33)

	if result != expected {
		t.Errorf("Translate failed: expected %v, got %v", expected, result)
	}
}

func TestMat4Scale(t *testing.T) {
	m := Scale(2, 3, 4)
	result := m.TransformPoint(NewVector3(1, 1, 1))
	expected := NewVector3(2, 3, 4)

	if result != expected {
		t.Errorf("Scale failed: expected %v, got %v", expected, result)
	}
}

func TestMat4RotateY(t *testing.T) {
	// Right-handed rotation: 90 degrees around Y maps +X to -Z
	m := RotateY(math.Pi / 2)
	result := m.TransformPoint(NewVector3(1, 0, 0))

	if math.Abs(result.X) > 1e-10 || math.Abs(result.Y) > 1e-10 || math.Abs(result.Z+1) > 1e-10 {
		t.Errorf("RotateY failed: got %v", result)
	}
}

func TestMat4MulCombinesTransforms(t *testing.T) {
	// Translate then scale: scale applies first when multiplied on the right
	m := Translate(10, 0, 0).Mul(Scale(2, 2, 2))
	result := m.TransformPoint(NewVector3(1, 1, 1))
	expected := NewVector3(12, 2, 2)

	if result != expected {
		t.Errorf("Mul failed: expected %v, got %v", expected, result)
	}
}
