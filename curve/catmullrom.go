// Package curve turns a sequence of discrete control points into a
// smooth drawable polyline. The interpolation is centripetal
// Catmull-Rom: the curve passes through every control point exactly,
// and the centripetal knot spacing behaves well on the uneven gaps the
// minimum-spacing filter produces upstream.
package curve

import (
	math "github.com/chewxy/math32"
)

// A Sample is a point on (or feeding) the curve. V is an arbitrary
// scalar carried along and interpolated with the position; the
// renderer uses it for fade progress.
type Sample struct {
	X, Y float32
	V    float32
}

// DefaultSubsteps is the number of evaluation steps per control-point
// span. Dense enough that the stroke ribbon needs no miter handling.
const DefaultSubsteps = 8

// coincident points closer than this are merged before evaluation, so
// knot intervals never collapse to zero.
const mergeEps = 1e-3

// Smooth expands control points into an open polyline with substeps
// samples per span. Tension 1 is standard Catmull-Rom; lower values
// flatten the curve toward its chords. The output passes through every
// (deduplicated) input point: input k sits at output index k*substeps.
//
// Fewer than four points degrade gracefully: nil for empty input, the
// lone point itself, and straight segments for two or three points.
func Smooth(in []Sample, substeps int, tension float32) []Sample {
	if substeps < 1 {
		substeps = DefaultSubsteps
	}
	pts := dedup(in)
	switch len(pts) {
	case 0:
		return nil
	case 1:
		return []Sample{pts[0]}
	case 2, 3:
		return segments(pts, substeps)
	}

	out := make([]Sample, 0, (len(pts)-1)*substeps+1)
	for i := 0; i < len(pts)-1; i++ {
		p1, p2 := pts[i], pts[i+1]
		p0 := virtualBefore(pts, i)
		p3 := virtualAfter(pts, i)
		span(&out, p0, p1, p2, p3, substeps, tension)
	}
	out = append(out, pts[len(pts)-1])
	return out
}

// dedup drops points coincident with their predecessor. The original
// slice is returned untouched when nothing needs merging.
func dedup(in []Sample) []Sample {
	for i := 1; i < len(in); i++ {
		if coincident(in[i-1], in[i]) {
			out := make([]Sample, i, len(in))
			copy(out, in[:i])
			for _, p := range in[i:] {
				if !coincident(out[len(out)-1], p) {
					out = append(out, p)
				}
			}
			return out
		}
	}
	return in
}

func coincident(a, b Sample) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	return dx*dx+dy*dy < mergeEps*mergeEps
}

// segments is the straight-line fallback for short inputs, keeping the
// same per-span sample density as the curved path.
func segments(pts []Sample, substeps int) []Sample {
	out := make([]Sample, 0, (len(pts)-1)*substeps+1)
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		for s := 0; s < substeps; s++ {
			t := float32(s) / float32(substeps)
			out = append(out, lerp(a, b, t))
		}
	}
	return append(out, pts[len(pts)-1])
}

func lerp(a, b Sample, t float32) Sample {
	return Sample{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		V: a.V + (b.V-a.V)*t,
	}
}

// virtualBefore yields the control point preceding span i, linearly
// extrapolating past the head of the trail.
func virtualBefore(pts []Sample, i int) Sample {
	if i > 0 {
		return pts[i-1]
	}
	return Sample{
		X: 2*pts[0].X - pts[1].X,
		Y: 2*pts[0].Y - pts[1].Y,
		V: pts[0].V,
	}
}

// virtualAfter yields the control point following span i..i+1.
func virtualAfter(pts []Sample, i int) Sample {
	if i+2 < len(pts) {
		return pts[i+2]
	}
	n := len(pts)
	return Sample{
		X: 2*pts[n-1].X - pts[n-2].X,
		Y: 2*pts[n-1].Y - pts[n-2].Y,
		V: pts[n-1].V,
	}
}

// span appends substeps samples for the p1..p2 span (p2 itself is
// emitted by the next span, or once at the very end). Tangents come
// from the centripetal knot parametrization and are converted to a
// cubic Hermite basis, which pins the endpoints regardless of tension.
func span(out *[]Sample, p0, p1, p2, p3 Sample, substeps int, tension float32) {
	dt0 := knot(p0, p1)
	dt1 := knot(p1, p2)
	dt2 := knot(p2, p3)

	t1x := tangent(p0.X, p1.X, p2.X, dt0, dt1) * dt1 * tension
	t1y := tangent(p0.Y, p1.Y, p2.Y, dt0, dt1) * dt1 * tension
	t2x := tangent(p1.X, p2.X, p3.X, dt1, dt2) * dt1 * tension
	t2y := tangent(p1.Y, p2.Y, p3.Y, dt1, dt2) * dt1 * tension

	for s := 0; s < substeps; s++ {
		t := float32(s) / float32(substeps)
		t2 := t * t
		t3 := t2 * t
		h00 := 2*t3 - 3*t2 + 1
		h10 := t3 - 2*t2 + t
		h01 := -2*t3 + 3*t2
		h11 := t3 - t2
		*out = append(*out, Sample{
			X: h00*p1.X + h10*t1x + h01*p2.X + h11*t2x,
			Y: h00*p1.Y + h10*t1y + h01*p2.Y + h11*t2y,
			V: p1.V + (p2.V-p1.V)*t,
		})
	}
}

// knot is the centripetal knot interval: |b-a|^0.5, floored so a
// near-coincident pair that slipped past dedup can't divide by zero.
func knot(a, b Sample) float32 {
	dx, dy := b.X-a.X, b.Y-a.Y
	d := math.Sqrt(math.Sqrt(dx*dx + dy*dy))
	if d < mergeEps {
		return mergeEps
	}
	return d
}

// tangent is the nonuniform Catmull-Rom finite difference at the
// middle of three values.
func tangent(a, b, c, dt0, dt1 float32) float32 {
	return (b-a)/dt0 - (c-a)/(dt0+dt1) + (c-b)/dt1
}
