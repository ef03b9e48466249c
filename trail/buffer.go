// Package trail holds the live sequence of aging cursor samples that
// make up the visible trail. The buffer owns the points: appends happen
// at the tail, expired points fall off the head, and every retained
// point's age advances once per frame unless aging is paused.
package trail

import (
	math "github.com/chewxy/math32"
)

// A Point is one retained cursor sample. X, Y are the raw screen
// coordinates the sample arrived with; SX, SY are the EMA-smoothed
// position the renderer actually uses. Age is recomputed every tick,
// everything else is fixed at creation.
type Point struct {
	X, Y   float32
	SX, SY float32
	Age    float32
	Stroke int
	Shape  bool // part of a committed box/circle/arrow outline
}

// DefaultMaxPoints bounds buffer growth when expiry alone can't keep
// up (very long fades at high sample rates).
const DefaultMaxPoints = 4096

// A Buffer is an ordered sequence of Points, oldest first. Tuning
// fields may be swapped between frames but must not change during one.
type Buffer struct {
	MinDist      float32 // minimum spacing between retained points, px
	Alpha        float32 // EMA weight in (0, 1]
	FadeSeconds  float32 // time from fully opaque to fully gone
	FadeSlowdown float32 // >1 stretches the late part of the fade
	MaxPoints    int

	points     []Point
	stroke     int
	emaX, emaY float32
	haveEMA    bool
	paused     bool
}

// NewBuffer returns an empty buffer with the given tuning.
func NewBuffer(minDist, alpha, fadeSeconds, fadeSlowdown float32) *Buffer {
	return &Buffer{
		MinDist:      minDist,
		Alpha:        alpha,
		FadeSeconds:  fadeSeconds,
		FadeSlowdown: fadeSlowdown,
		MaxPoints:    DefaultMaxPoints,
	}
}

// BeginStroke starts a new stroke: the next accepted point won't
// coalesce with, or draw connected to, anything appended before now.
func (b *Buffer) BeginStroke() {
	b.stroke++
	b.haveEMA = false
}

// Stroke reports the current stroke ID.
func (b *Buffer) Stroke() int { return b.stroke }

// Append offers a raw cursor sample to the buffer. Samples with
// non-finite coordinates are dropped. A sample closer than MinDist to
// the last retained point of the same stroke does not create a new
// point; instead it nudges that point's smoothed position by Alpha.
// Append reports whether a new point was retained.
func (b *Buffer) Append(x, y float32) bool {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	if n := len(b.points); n > 0 && b.points[n-1].Stroke == b.stroke {
		last := &b.points[n-1]
		dx, dy := x-last.X, y-last.Y
		if dx*dx+dy*dy < b.MinDist*b.MinDist {
			last.SX = b.Alpha*x + (1-b.Alpha)*last.SX
			last.SY = b.Alpha*y + (1-b.Alpha)*last.SY
			b.emaX, b.emaY = last.SX, last.SY
			return false
		}
	}
	sx, sy := x, y
	if b.haveEMA {
		sx = b.Alpha*x + (1-b.Alpha)*b.emaX
		sy = b.Alpha*y + (1-b.Alpha)*b.emaY
	}
	b.emaX, b.emaY, b.haveEMA = sx, sy, true
	b.push(Point{X: x, Y: y, SX: sx, SY: sy, Stroke: b.stroke})
	return true
}

// AppendShape retains a pre-built outline (box, circle, arrow strokes)
// verbatim: no spacing filter, no smoothing, each slice its own stroke.
func (b *Buffer) AppendShape(strokes ...[]Point) {
	for _, pts := range strokes {
		b.stroke++
		for _, p := range pts {
			p.Stroke = b.stroke
			p.SX, p.SY = p.X, p.Y
			p.Shape = true
			b.push(p)
		}
	}
	b.haveEMA = false
}

func (b *Buffer) push(p Point) {
	max := b.MaxPoints
	if max <= 0 {
		max = DefaultMaxPoints
	}
	// hard cap: evict oldest regardless of age
	if len(b.points) >= max {
		copy(b.points, b.points[len(b.points)-max+1:])
		b.points = b.points[:max-1]
	}
	b.points = append(b.points, p)
}

// Tick advances every point's age by dt seconds and drops points that
// have fully faded. Negative dt is rejected; a paused buffer ignores
// ticks entirely, so points neither age nor expire.
func (b *Buffer) Tick(dt float32) {
	if dt < 0 || b.paused {
		return
	}
	for i := range b.points {
		b.points[i].Age += dt
	}
	expired := 0
	for expired < len(b.points) && b.Progress(b.points[expired].Age) >= 1 {
		expired++
	}
	if expired > 0 {
		b.points = append(b.points[:0], b.points[expired:]...)
	}
}

// Progress maps an age to effective fade progress in [0, 1], applying
// the slowdown reparametrization: (age/fade)^(1/slowdown). Slowdown
// above 1 burns through the early fade quickly and lingers at the end.
func (b *Buffer) Progress(age float32) float32 {
	if b.FadeSeconds <= 0 {
		return 1
	}
	p := age / b.FadeSeconds
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	if b.FadeSlowdown > 0 && b.FadeSlowdown != 1 {
		p = math.Pow(p, 1/b.FadeSlowdown)
	}
	return p
}

// SetPaused freezes or unfreezes aging without touching the points.
func (b *Buffer) SetPaused(p bool) { b.paused = p }

// Paused reports whether aging is frozen.
func (b *Buffer) Paused() bool { return b.paused }

// Clear discards every point but keeps tuning and stroke numbering.
func (b *Buffer) Clear() {
	b.points = b.points[:0]
	b.haveEMA = false
}

// Len reports the number of retained points.
func (b *Buffer) Len() int { return len(b.points) }

// Points exposes the retained points, oldest first. The slice is owned
// by the buffer and valid until the next Append/Tick/Clear.
func (b *Buffer) Points() []Point { return b.points }

// EachStroke calls fn once per run of consecutive same-stroke points,
// oldest stroke first. Insertion order within a run is preserved; that
// order is what defines the curve shape downstream.
func (b *Buffer) EachStroke(fn func(pts []Point)) {
	i := 0
	for i < len(b.points) {
		j := i + 1
		for j < len(b.points) && b.points[j].Stroke == b.points[i].Stroke {
			j++
		}
		fn(b.points[i:j])
		i = j
	}
}
