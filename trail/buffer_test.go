package trail_test

import (
	"math"
	"testing"

	"github.com/stephenwagner-grafana/GrafTrail/trail"
)

func TestAppendCoalescing(t *testing.T) {
	// min spacing 5px, alpha 1.0: (3,0) is within spacing of (0,0) and
	// coalesces; (10,0) is far enough from (0,0) to be retained.
	b := trail.NewBuffer(5, 1.0, 2, 1.0)
	b.BeginStroke()
	if !b.Append(0, 0) {
		t.Fatalf("first append rejected")
	}
	if b.Append(3, 0) {
		t.Errorf("append within min spacing retained a new point")
	}
	if got := b.Len(); got != 1 {
		t.Fatalf("after coalescing: len = %d, want 1", got)
	}
	if sx := b.Points()[0].SX; sx != 3 {
		t.Errorf("alpha=1 coalesce: smoothed X = %v, want 3 (raw replacement)", sx)
	}
	if x := b.Points()[0].X; x != 0 {
		t.Errorf("coalesce moved the raw position: X = %v, want 0", x)
	}
	if !b.Append(10, 0) {
		t.Errorf("append beyond min spacing was not retained")
	}
	if got := b.Len(); got != 2 {
		t.Errorf("len = %d, want 2", got)
	}
}

func TestCoalesceShiftsByAlpha(t *testing.T) {
	b := trail.NewBuffer(10, 0.25, 2, 1.0)
	b.BeginStroke()
	b.Append(0, 0)
	before := b.Points()[0]
	b.Append(4, 8)
	after := b.Points()[0]
	if b.Len() != 1 {
		t.Fatalf("len = %d, want 1", b.Len())
	}
	wantX := before.SX + 0.25*(4-before.SX)
	wantY := before.SY + 0.25*(8-before.SY)
	if after.SX != wantX || after.SY != wantY {
		t.Errorf("smoothed = (%v,%v), want (%v,%v)", after.SX, after.SY, wantX, wantY)
	}
}

func TestAppendRejectsNonFinite(t *testing.T) {
	b := trail.NewBuffer(5, 1.0, 2, 1.0)
	b.BeginStroke()
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	for _, c := range [][2]float32{{nan, 0}, {0, nan}, {inf, 0}, {0, -inf}} {
		if b.Append(c[0], c[1]) {
			t.Errorf("Append(%v, %v) accepted", c[0], c[1])
		}
	}
	if b.Len() != 0 {
		t.Errorf("len = %d, want 0", b.Len())
	}
}

func TestTickAgesAndEvicts(t *testing.T) {
	b := trail.NewBuffer(5, 1.0, 2, 1.0)
	b.BeginStroke()
	b.Append(0, 0)
	b.Tick(0.5)
	if age := b.Points()[0].Age; age != 0.5 {
		t.Errorf("age = %v, want 0.5", age)
	}
	// age 2.1 > fade 2.0: evicted
	b.Tick(1.6)
	if b.Len() != 0 {
		t.Errorf("expired point still retained, len = %d", b.Len())
	}
}

func TestTickNegativeRejected(t *testing.T) {
	b := trail.NewBuffer(5, 1.0, 2, 1.0)
	b.BeginStroke()
	b.Append(0, 0)
	b.Tick(-1)
	if age := b.Points()[0].Age; age != 0 {
		t.Errorf("negative dt aged the point to %v", age)
	}
}

func TestPauseFreezesAging(t *testing.T) {
	b := trail.NewBuffer(5, 1.0, 2, 1.0)
	b.BeginStroke()
	b.Append(0, 0)
	b.Tick(0.5)
	b.SetPaused(true)
	b.Tick(5)
	if age := b.Points()[0].Age; age != 0.5 {
		t.Errorf("paused tick changed age to %v, want 0.5", age)
	}
	if b.Len() != 1 {
		t.Errorf("paused tick evicted; len = %d, want 1", b.Len())
	}
	b.SetPaused(false)
	b.Tick(0.25)
	if age := b.Points()[0].Age; age != 0.75 {
		t.Errorf("after unpause age = %v, want 0.75", age)
	}
}

func TestProgressSlowdown(t *testing.T) {
	b := trail.NewBuffer(5, 1.0, 2, 2.0)
	// slowdown 2: progress = sqrt(age/fade)
	if got, want := b.Progress(0.5), float32(0.5); got != want {
		t.Errorf("Progress(0.5) = %v, want %v", got, want)
	}
	if got := b.Progress(2.5); got != 1 {
		t.Errorf("Progress past fade = %v, want 1", got)
	}
	if got := b.Progress(0); got != 0 {
		t.Errorf("Progress(0) = %v, want 0", got)
	}
}

func TestStrokesDoNotCoalesceAcrossBoundary(t *testing.T) {
	b := trail.NewBuffer(5, 0.5, 2, 1.0)
	b.BeginStroke()
	b.Append(0, 0)
	b.BeginStroke()
	if !b.Append(1, 1) {
		t.Fatalf("first point of a new stroke was coalesced into the old one")
	}
	var strokes int
	b.EachStroke(func(pts []trail.Point) { strokes++ })
	if strokes != 2 {
		t.Errorf("strokes = %d, want 2", strokes)
	}
	// EMA restarts per stroke: smoothed == raw for a stroke's first point
	p := b.Points()[1]
	if p.SX != 1 || p.SY != 1 {
		t.Errorf("new stroke smoothed = (%v,%v), want (1,1)", p.SX, p.SY)
	}
}

func TestMaxPointsEvictsOldest(t *testing.T) {
	b := trail.NewBuffer(0.5, 1.0, 100, 1.0)
	b.MaxPoints = 8
	b.BeginStroke()
	for i := 0; i < 20; i++ {
		b.Append(float32(i)*10, 0)
	}
	if b.Len() != 8 {
		t.Fatalf("len = %d, want 8", b.Len())
	}
	if first := b.Points()[0].X; first != 120 {
		t.Errorf("oldest retained X = %v, want 120", first)
	}
}

func TestAppendShape(t *testing.T) {
	b := trail.NewBuffer(5, 1.0, 2, 1.0)
	b.AppendShape(
		[]trail.Point{{X: 0, Y: 0}, {X: 1, Y: 0}},
		[]trail.Point{{X: 5, Y: 5}, {X: 6, Y: 5}},
	)
	if b.Len() != 4 {
		t.Fatalf("len = %d, want 4", b.Len())
	}
	var sizes []int
	b.EachStroke(func(pts []trail.Point) { sizes = append(sizes, len(pts)) })
	if len(sizes) != 2 || sizes[0] != 2 || sizes[1] != 2 {
		t.Errorf("stroke sizes = %v, want [2 2]", sizes)
	}
}

func BenchmarkAppendTick(b *testing.B) {
	buf := trail.NewBuffer(3.5, 0.35, 1.5, 2.5)
	buf.BeginStroke()
	for i := 0; i < b.N; i++ {
		buf.Append(float32(i%1000), float32(i%600))
		buf.Tick(1.0 / 60)
	}
}
