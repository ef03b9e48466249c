package stroke

import (
	math "github.com/chewxy/math32"

	"github.com/stephenwagner-grafana/GrafTrail/trail"
)

// Shape modes are drawn as fixed parametric outlines anchored to the
// drag start and the current cursor. They skip curve smoothing; the
// generators below sample the outline densely enough that the fade
// gradient still runs along it point by point.

// boxEdgePoints is the number of samples per box edge.
const boxEdgePoints = 10

// Box samples a rectangle outline with opposite corners at the drag
// start and the cursor, closed back to the start. One stroke.
func Box(x0, y0, x1, y1 float32) [][]trail.Point {
	corners := [5][2]float32{
		{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0},
	}
	pts := make([]trail.Point, 0, 4*boxEdgePoints+1)
	for e := 0; e < 4; e++ {
		a, b := corners[e], corners[e+1]
		steps := boxEdgePoints
		if e == 3 {
			steps++ // include the closing corner on the last edge
		}
		for i := 0; i < steps; i++ {
			t := float32(i) / boxEdgePoints
			pts = append(pts, trail.Point{
				X: a[0] + (b[0]-a[0])*t,
				Y: a[1] + (b[1]-a[1])*t,
			})
		}
	}
	return [][]trail.Point{pts}
}

// Circle samples a circle outline centered on the drag start with the
// cursor on its rim, closed. Sample count grows with the radius so big
// circles stay round. One stroke.
func Circle(cx, cy, ex, ey float32) [][]trail.Point {
	dx, dy := ex-cx, ey-cy
	radius := math.Sqrt(dx*dx + dy*dy)
	n := int(radius / 2)
	if n < 20 {
		n = 20
	}
	pts := make([]trail.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		theta := 2 * math.Pi * float32(i) / float32(n)
		s, c := math.Sincos(theta)
		pts = append(pts, trail.Point{X: cx + radius*c, Y: cy + radius*s})
	}
	return [][]trail.Point{pts}
}

// arrowHeadRatio caps the barb length at this multiple of the core
// stroke width.
const arrowHeadRatio = 10

// Arrow samples an arrow with its tip at the drag start and its tail
// at the cursor: a shaft stroke plus two 45-degree barb strokes. The
// barb length is min(shaft/2, arrowHeadRatio*coreWidth). A zero-length
// drag yields no strokes.
func Arrow(tipX, tipY, tailX, tailY, coreWidth float32) [][]trail.Point {
	dx, dy := tipX-tailX, tipY-tailY
	shaft := math.Sqrt(dx*dx + dy*dy)
	if shaft == 0 {
		return nil
	}
	ux, uy := dx/shaft, dy/shaft

	head := shaft / 2
	if m := coreWidth * arrowHeadRatio; m < head {
		head = m
	}

	// barbs point backwards from the tip, rotated ±45 degrees
	rx, ry := -ux, -uy
	const cos45 = 0.70710678
	b1x := tipX + head*(rx*cos45+ry*cos45)
	b1y := tipY + head*(-rx*cos45+ry*cos45)
	b2x := tipX + head*(rx*cos45-ry*cos45)
	b2y := tipY + head*(rx*cos45+ry*cos45)

	return [][]trail.Point{
		sampleSegment(tailX, tailY, tipX, tipY),
		sampleSegment(tipX, tipY, b1x, b1y),
		sampleSegment(tipX, tipY, b2x, b2y),
	}
}

// sampleSegment places boxEdgePoints+1 points along a straight line.
func sampleSegment(x0, y0, x1, y1 float32) []trail.Point {
	pts := make([]trail.Point, 0, boxEdgePoints+1)
	for i := 0; i <= boxEdgePoints; i++ {
		t := float32(i) / boxEdgePoints
		pts = append(pts, trail.Point{
			X: x0 + (x1-x0)*t,
			Y: y0 + (y1-y0)*t,
		})
	}
	return pts
}
