// Package stroke renders the smoothed trail path as a glowing stroke:
// a wide additive glow pass under a narrow opaque core pass, each a
// single continuous triangle ribbon with per-vertex gradient color and
// age-based alpha.
package stroke

import (
	"image"
	"image/color"

	math "github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/stephenwagner-grafana/GrafTrail/curve"
	"github.com/stephenwagner-grafana/GrafTrail/gradient"
)

// Triangle sources sample the middle texel so FilterLinear can't bleed
// the texture border into the stroke.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// A Ribbon renders one polyline as a connected triangle strip. Unlike
// per-segment quads, adjacent segments share their boundary vertices,
// so nothing double-blends where the path turns sharply; that shared
// edge is what keeps additive glow free of beading artifacts.
//
// Vertex and index buffers persist across frames.
type Ribbon struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

// MaxRibbonPoints bounds one draw call; 2 vertices per point must stay
// under ebiten's 65536-vertex limit per DrawTriangles.
const MaxRibbonPoints = 32000

// Draw strokes the path onto target. Width is the full stroke width in
// unscaled pixels, maxAlpha the opacity at phase 0; per-vertex alpha
// tapers to zero as the carried fade value V reaches 1. Scale is the
// supersampling factor from the render context.
func (rb *Ribbon) Draw(target *ebiten.Image, path []curve.Sample, grad gradient.Map, width, maxAlpha, scale float32, blend ebiten.Blend) {
	if len(path) < 2 || target == nil {
		return
	}
	if len(path) > MaxRibbonPoints {
		path = path[len(path)-MaxRibbonPoints:]
	}
	half := width / 2
	if half <= 0 {
		half = 0.35
	}
	n := len(path)
	if cap(rb.vertices) < n*2 {
		rb.vertices = make([]ebiten.Vertex, 0, n*2)
	}
	rb.vertices = rb.vertices[:0]

	// carry the previous normal across zero-length steps so dedup
	// stragglers can't flip the ribbon
	nx, ny := float32(0), float32(0)
	for i := 0; i < n; i++ {
		prev := path[maxInt(i-1, 0)]
		next := path[minInt(i+1, n-1)]
		dx, dy := next.X-prev.X, next.Y-prev.Y
		if l := math.Sqrt(dx*dx + dy*dy); l > 0 {
			nx, ny = dy/l, -dx/l
		}
		p := path[i]
		r, g, b := grad.At(p.V)
		a := (1 - p.V) * maxAlpha
		if a < 0 {
			a = 0
		}
		rb.vertices = append(rb.vertices,
			ebiten.Vertex{
				DstX: (p.X + nx*half) * scale, DstY: (p.Y + ny*half) * scale,
				SrcX: 1.5, SrcY: 1.5,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			},
			ebiten.Vertex{
				DstX: (p.X - nx*half) * scale, DstY: (p.Y - ny*half) * scale,
				SrcX: 1.5, SrcY: 1.5,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			},
		)
	}

	// indices only ever grow, and never change once written
	for i := len(rb.indices) / 6; i < n-1; i++ {
		o := uint16(i * 2)
		rb.indices = append(rb.indices,
			o+1, o+0, o+2,
			o+2, o+3, o+1)
	}

	target.DrawTriangles(rb.vertices, rb.indices[:(n-1)*6], whiteSubImage, &ebiten.DrawTrianglesOptions{
		Blend:     blend,
		AntiAlias: true,
	})
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
