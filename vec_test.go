package glscene

import (
	"math"
	"testing"
)

func TestVec3Length(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want float32
	}{
		{"zero", V3(0, 0, 0), 0},
		{"axis", V3(0, 0, -6), 6},
		{"pythagorean", V3(3, 4, 0), 5},
		{"diagonal", V3(1, 1, 1), float32(math.Sqrt(3))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Length(); math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3Normalize(t *testing.T) {
	n := V3(0.5, 0, 1).Normalize()
	if l := n.Length(); math.Abs(float64(l-1)) > 1e-6 {
		t.Errorf("normalized length = %v, want 1", l)
	}
	if n.Y != 0 || n.Z <= n.X {
		t.Errorf("Normalize changed direction: %v", n)
	}
	if z := V3(0, 0, 0).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector normalized to %v", z)
	}
}

func TestV4(t *testing.T) {
	if v := V4(1, 2, 3, 4); v != (Vec4{X: 1, Y: 2, Z: 3, W: 4}) {
		t.Errorf("V4 = %v", v)
	}
}
