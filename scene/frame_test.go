package scene

import (
	"math"
	"testing"

	"github.com/gogpu/glscene"
)

func TestDescribeAngleZero(t *testing.T) {
	want := glscene.Translation(glscene.V3(0, 0, -6))
	for name, m := range map[string]Motion{"static": nil, "spin": Spin, "tumble": Tumble} {
		got := Describe(640, 480, 0, m).ModelView
		if got != want {
			t.Errorf("%s: ModelView at angle 0 = %v, want %v", name, got, want)
		}
	}
}

func TestDescribeProjection(t *testing.T) {
	f := 1 / math.Tan(math.Pi/8)
	aspect := 800.0 / 600.0
	want := map[[2]int]float64{
		{0, 0}: f / aspect,
		{1, 1}: f,
		{2, 2}: (100 + 0.1) / (0.1 - 100),
		{2, 3}: 2 * 100 * 0.1 / (0.1 - 100),
		{3, 2}: -1,
		{3, 3}: 0,
		{0, 1}: 0,
		{1, 0}: 0,
	}
	p := Describe(800, 600, 1.5, Tumble).Projection
	for rc, w := range want {
		if got := float64(p.At(rc[0], rc[1])); math.Abs(got-w) > 1e-5 {
			t.Errorf("projection[%d][%d] = %v, want %v", rc[0], rc[1], got, w)
		}
	}
}

func TestDescribeSpin(t *testing.T) {
	mv := Describe(1, 1, math.Pi/2, Spin).ModelView
	got := mv.Transform(glscene.V4(1, 0, 0, 1))
	want := glscene.V4(0, 1, -6, 1)
	if !approx(got, want) {
		t.Errorf("spin(π/2) * (1,0,0) = %v, want %v", got, want)
	}
}

func TestDescribeTumble(t *testing.T) {
	const angle = 0.8
	want := glscene.Translation(glscene.V3(0, 0, -6)).
		Mul(glscene.Rotation(angle, glscene.V3(0.5, 0, 1))).
		Mul(glscene.Rotation(angle*0.7, glscene.V3(0, 1, 0)))
	got := Describe(4, 3, angle, Tumble).ModelView
	if !got.ApproxEqual(want, 1e-6) {
		t.Errorf("ModelView = %v, want %v", got, want)
	}
	// The translation column is untouched by the rotations.
	if got.At(0, 3) != 0 || got.At(1, 3) != 0 || got.At(2, 3) != -6 {
		t.Errorf("translation column = (%v, %v, %v), want (0, 0, -6)", got.At(0, 3), got.At(1, 3), got.At(2, 3))
	}
}

func approx(a, b glscene.Vec4) bool {
	const eps = 1e-5
	d := func(x, y float32) bool { return math.Abs(float64(x-y)) <= eps }
	return d(a.X, b.X) && d(a.Y, b.Y) && d(a.Z, b.Z) && d(a.W, b.W)
}
