package curve_test

import (
	"testing"

	math "github.com/chewxy/math32"

	"github.com/stephenwagner-grafana/GrafTrail/curve"
)

const tol = 1e-3

func near(a, b float32) bool { return math.Abs(a-b) <= tol }

func TestSmoothDegenerate(t *testing.T) {
	if got := curve.Smooth(nil, 8, 1); got != nil {
		t.Errorf("empty input: got %v, want nil", got)
	}
	one := []curve.Sample{{X: 3, Y: 4, V: 0.5}}
	got := curve.Smooth(one, 8, 1)
	if len(got) != 1 || got[0] != one[0] {
		t.Errorf("single point: got %v, want %v", got, one)
	}
}

func TestSmoothTwoPointsStraight(t *testing.T) {
	in := []curve.Sample{{X: 0, Y: 0, V: 0}, {X: 8, Y: 0, V: 1}}
	got := curve.Smooth(in, 4, 1)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	for i, s := range got {
		wantX := float32(i) * 2
		if !near(s.X, wantX) || !near(s.Y, 0) {
			t.Errorf("sample %d = (%v,%v), want (%v,0)", i, s.X, s.Y, wantX)
		}
	}
	if !near(got[2].V, 0.5) {
		t.Errorf("midpoint V = %v, want 0.5", got[2].V)
	}
}

func TestSmoothInterpolatesControlPoints(t *testing.T) {
	in := []curve.Sample{
		{X: 0, Y: 0, V: 1.0},
		{X: 10, Y: 5, V: 0.7},
		{X: 20, Y: -5, V: 0.4},
		{X: 30, Y: 10, V: 0.2},
		{X: 35, Y: 12, V: 0.0},
	}
	const sub = 8
	got := curve.Smooth(in, sub, 1)
	if want := (len(in)-1)*sub + 1; len(got) != want {
		t.Fatalf("len = %d, want %d", len(got), want)
	}
	for k, p := range in {
		s := got[k*sub]
		if !near(s.X, p.X) || !near(s.Y, p.Y) {
			t.Errorf("control %d: path has (%v,%v), want (%v,%v)", k, s.X, s.Y, p.X, p.Y)
		}
		if !near(s.V, p.V) {
			t.Errorf("control %d: V = %v, want %v", k, s.V, p.V)
		}
	}
}

func TestSmoothContinuous(t *testing.T) {
	in := []curve.Sample{
		{X: 0, Y: 0}, {X: 4, Y: 30}, {X: 60, Y: 31}, {X: 64, Y: 0}, {X: 90, Y: -40},
	}
	got := curve.Smooth(in, 8, 1)
	// adjacent samples should never jump further than a few times the
	// largest control spacing / substeps; a gap means a discontinuity.
	for i := 1; i < len(got); i++ {
		dx, dy := got[i].X-got[i-1].X, got[i].Y-got[i-1].Y
		if step := math.Sqrt(dx*dx + dy*dy); step > 30 {
			t.Fatalf("gap of %v between samples %d and %d", step, i-1, i)
		}
	}
}

func TestSmoothMergesCoincident(t *testing.T) {
	in := []curve.Sample{
		{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 5},
	}
	got := curve.Smooth(in, 8, 1)
	for i, s := range got {
		if math.IsNaN(s.X) || math.IsNaN(s.Y) {
			t.Fatalf("NaN at sample %d after coincident merge", i)
		}
	}
	// three distinct points remain: straight-segment fallback, 2 spans
	if want := 2*8 + 1; len(got) != want {
		t.Errorf("len = %d, want %d", len(got), want)
	}
}

func TestSmoothZeroTensionIsStillThroughPoints(t *testing.T) {
	in := []curve.Sample{
		{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}, {X: 30, Y: 10}, {X: 40, Y: 0},
	}
	got := curve.Smooth(in, 4, 0)
	for k, p := range in {
		s := got[k*4]
		if !near(s.X, p.X) || !near(s.Y, p.Y) {
			t.Errorf("control %d: path has (%v,%v), want (%v,%v)", k, s.X, s.Y, p.X, p.Y)
		}
	}
}

func BenchmarkSmooth(b *testing.B) {
	in := make([]curve.Sample, 128)
	for i := range in {
		in[i] = curve.Sample{
			X: float32(i) * 7,
			Y: math.Sin(float32(i)/5) * 40,
			V: float32(i) / 128,
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		curve.Smooth(in, curve.DefaultSubsteps, 1)
	}
}
