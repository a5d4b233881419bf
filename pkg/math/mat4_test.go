package math

import (
	"math"
	"testing"
)

var identity = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// translation by (x, y, z), column-major
func translation(x, y, z float32) Mat4 {
	m := identity
	m[12], m[13], m[14] = x, y, z
	return m
}

func TestMulIdentity(t *testing.T) {
	m := translation(1, 2, 3)
	result := m.Mul(identity)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTransformPoint(t *testing.T) {
	m := translation(10, 20, 30)
	result := m.TransformPoint(Point3{1, 2, 3})

	expected := Point3{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	result := m.TransformPoint(Point3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result.X) > 0.001 || abs(result.Y) > 0.001 || abs(result.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateX90(t *testing.T) {
	m := RotateX(float32(math.Pi / 2))
	result := m.TransformPoint(Point3{0, 1, 0})

	// (0,1,0) rotates onto +Z
	if abs(result.X) > 0.001 || abs(result.Y) > 0.001 || abs(result.Z-1) > 0.001 {
		t.Errorf("RotateX 90: got %v, want (0, 0, 1)", result)
	}
}

func TestEulerDegreesZero(t *testing.T) {
	m := EulerDegrees(0, 0, 0)
	for i := range m {
		if abs(m[i]-identity[i]) > 1e-6 {
			t.Fatalf("EulerDegrees(0,0,0)[%d] = %f, want %f", i, m[i], identity[i])
		}
	}
}

func TestEulerDegreesOrder(t *testing.T) {
	// Y is applied before X: (1,0,0) -> Ry(90) -> (0,0,-1) -> Rx(90) -> (0,1,0)
	result := EulerDegrees(90, 90, 0).TransformPoint(Point3{1, 0, 0})
	if abs(result.X) > 0.001 || abs(result.Y-1) > 0.001 || abs(result.Z) > 0.001 {
		t.Errorf("EulerDegrees(90,90,0): got %v, want (0, 1, 0)", result)
	}
}

func TestPerspective(t *testing.T) {
	fov := float32(math.Pi / 4) // 45 degrees
	m := Perspective(fov, 1.0, 0.1, 100.0)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAt(t *testing.T) {
	eye := Point3{0, 0, 2.75}
	m := LookAt(eye, Point3{0, 0, -1}, Vec3{0, 1, 0})

	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}

	// The eye maps to the view-space origin
	got := m.TransformPoint(eye)
	if abs(got.X) > 1e-5 || abs(got.Y) > 1e-5 || abs(got.Z) > 1e-5 {
		t.Errorf("LookAt eye -> %v, want origin", got)
	}

	// The world origin ends up in front of the camera (negative Z)
	if o := m.TransformPoint(Origin); o.Z >= 0 {
		t.Errorf("LookAt origin z = %f, want negative", o.Z)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestOrthoTopDown(t *testing.T) {
	// screen space with the origin at the top-left, as the 2D panel uses
	m := Ortho(0, 800, 600, 0, -1, 1)

	tests := []struct {
		in   Point3
		x, y float32
	}{
		{Point3{0, 0, 0}, -1, 1},
		{Point3{800, 600, 0}, 1, -1},
		{Point3{400, 300, 0}, 0, 0},
	}
	for _, tt := range tests {
		got := m.TransformPoint(tt.in)
		if abs(got.X-tt.x) > 1e-5 || abs(got.Y-tt.y) > 1e-5 {
			t.Errorf("Ortho(%v) = (%f, %f), want (%f, %f)", tt.in, got.X, got.Y, tt.x, tt.y)
		}
	}
}
