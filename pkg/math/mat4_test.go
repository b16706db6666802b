package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
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
	m := LookAt(Vec3{1, 2, 3}, Vec3{0, 0, 0}, WorldUp)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestPerspectiveMatchesMathgl(t *testing.T) {
	tests := []struct {
		name        string
		fov, aspect float32
		near, far   float32
	}{
		{"window 800x600", Radians(45), 800.0 / 600.0, 0.1, 1000},
		{"square", float32(math.Pi / 4), 1, 0.1, 100},
		{"wide", Radians(60), 16.0 / 9.0, 1, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Perspective(tt.fov, tt.aspect, tt.near, tt.far)
			want := mgl32.Perspective(tt.fov, tt.aspect, tt.near, tt.far)
			for i := 0; i < 16; i++ {
				if abs(got[i]-want[i]) > 1e-4 {
					t.Errorf("element %d: got %f, want %f", i, got[i], want[i])
				}
			}
		})
	}
}

func TestLookAtMatchesMathgl(t *testing.T) {
	eye := Vec3{0, 50, 150}
	center := Vec3{0, 50, 149}

	got := LookAt(eye, center, WorldUp)
	want := mgl32.LookAtV(mgl32.Vec3{0, 50, 150}, mgl32.Vec3{0, 50, 149}, mgl32.Vec3{0, 1, 0})
	for i := 0; i < 16; i++ {
		if abs(got[i]-want[i]) > 1e-4 {
			t.Errorf("element %d: got %f, want %f", i, got[i], want[i])
		}
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{10, 20, 30}
	m := LookAt(eye, Vec3{0, 0, 0}, WorldUp)

	p := m.TransformPoint(eye)
	if !p.ApproxEqual(Vec3{}, 1e-4) {
		t.Errorf("eye in view space = %v, want origin", p)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	m := Perspective(Radians(45), 4.0/3.0, 0.1, 1000)

	near := m.TransformPoint(Vec3{0, 0, -0.1})
	far := m.TransformPoint(Vec3{0, 0, -1000})
	if abs(near.Z+1) > 1e-3 {
		t.Errorf("near plane depth = %f, want -1", near.Z)
	}
	if abs(far.Z-1) > 1e-3 {
		t.Errorf("far plane depth = %f, want 1", far.Z)
	}
}
