package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(Vec3{10, 20, 30})
	got := m.TransformPoint(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

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

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, Vec3Up)

	got := m.TransformPoint(eye)
	if !got.ApproxEqual(Vec3{}, 1e-5) {
		t.Errorf("LookAt should map eye to origin, got %v", got)
	}
	// The center lies straight ahead on -Z in view space
	c := m.TransformPoint(Vec3{})
	if !c.ApproxEqual(Vec3{0, 0, -5}, 1e-5) {
		t.Errorf("LookAt center: got %v, want (0, 0, -5)", c)
	}
}

func TestInverse(t *testing.T) {
	m := Translate(Vec3{1, 2, 3}).Mul(QuatFromAxisAngle(Vec3Up, 0.7).ToMat4())
	product := m.Mul(m.Inverse())

	id := Identity()
	for i := 0; i < 16; i++ {
		if abs(product[i]-id[i]) > 1e-5 {
			t.Errorf("M * M^-1 element %d: got %f, want %f", i, product[i], id[i])
		}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestOrthoScreenSpace(t *testing.T) {
	// Pixel coordinates with Y down map to clip space with Y up
	m := Ortho(0, 800, 600, 0, -1, 1)

	tests := []struct {
		in   Vec3
		want Vec3
	}{
		{Vec3{0, 0, 0}, Vec3{-1, 1, 0}},
		{Vec3{800, 600, 0}, Vec3{1, -1, 0}},
		{Vec3{400, 300, 0}, Vec3{0, 0, 0}},
	}
	for _, tt := range tests {
		if got := m.TransformPoint(tt.in); !got.ApproxEqual(tt.want, 1e-6) {
			t.Errorf("Ortho * %v = %v, want %v", tt.in, got, tt.want)
		}
	}
}
