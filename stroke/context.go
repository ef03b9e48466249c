package stroke

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// A Context caches the render surface size and, when multisampling is
// on, a 2x offscreen that frames are drawn into and scaled back down,
// smoothing the stroke edges beyond what per-triangle antialiasing
// manages on thin glow layers.
type Context struct {
	w, h        int
	fsaa        *ebiten.Image
	fsaaOp      *ebiten.DrawImageOptions
	multisample bool
}

// NewContext creates a context for a w by h surface. With multisample
// set, everything renders at 2x internally.
func NewContext(w, h int, multisample bool) *Context {
	ctx := &Context{w: w, h: h, multisample: multisample}
	if multisample {
		ctx.fsaa = ebiten.NewImage(w*2, h*2)
		ctx.fsaaOp = &ebiten.DrawImageOptions{}
		ctx.fsaaOp.GeoM.Scale(0.5, 0.5)
		ctx.fsaaOp.Filter = ebiten.FilterLinear
	}
	return ctx
}

// Render invokes fn with the drawing target and the coordinate scale
// drawing code must apply.
func (c *Context) Render(screen *ebiten.Image, fn func(target *ebiten.Image, scale float32)) {
	if c.multisample {
		c.fsaa.Clear()
		fn(c.fsaa, 2)
		screen.DrawImage(c.fsaa, c.fsaaOp)
	} else {
		fn(screen, 1)
	}
}
