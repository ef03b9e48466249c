package stroke

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/stephenwagner-grafana/GrafTrail/curve"
	"github.com/stephenwagner-grafana/GrafTrail/gradient"
)

// Layer opacities at age zero (110/255 glow, 230/255 core).
const (
	GlowAlpha = 110.0 / 255
	CoreAlpha = 230.0 / 255
)

// capShrink sizes the round end caps slightly under the stroke radius
// so they don't overshoot the stroke ends.
const capShrink = 0.9

// A Style is the per-frame stroke configuration. It is read-only
// during a frame; the scheduler swaps it between frames.
type Style struct {
	Grad      gradient.Map
	CoreWidth float32
	GlowWidth float32
	Glow      bool
}

// A Renderer composites one smoothed path: glow pass, core pass, round
// caps. It owns the ribbons so their buffers are reused across frames.
type Renderer struct {
	glow Ribbon
	core Ribbon
}

// Draw renders the path with the given style. A single sample renders
// as a capped dot and touches no curve or ribbon math. An empty path
// draws nothing.
func (r *Renderer) Draw(target *ebiten.Image, path []curve.Sample, st Style, scale float32) {
	switch len(path) {
	case 0:
		return
	case 1:
		r.dot(target, path[0], st, scale)
		return
	}
	if st.Glow && st.GlowWidth > st.CoreWidth {
		r.glow.Draw(target, path, st.Grad, st.GlowWidth, GlowAlpha, scale, ebiten.BlendLighter)
	}
	r.core.Draw(target, path, st.Grad, st.CoreWidth, CoreAlpha, scale, ebiten.BlendSourceOver)
	r.cap(target, path[0], st, scale)
	r.cap(target, path[len(path)-1], st, scale)
}

// cap draws a core-colored round cap at a path extremity.
func (r *Renderer) cap(target *ebiten.Image, s curve.Sample, st Style, scale float32) {
	alpha := (1 - s.V) * CoreAlpha
	if alpha <= 0 {
		return
	}
	radius := st.CoreWidth / 2 * capShrink
	if radius <= 0 {
		return
	}
	vector.DrawFilledCircle(target, s.X*scale, s.Y*scale, radius*scale, st.Grad.NRGBA(s.V, alpha), true)
}

// dot is the degenerate one-point trail: glow halo plus core cap.
func (r *Renderer) dot(target *ebiten.Image, s curve.Sample, st Style, scale float32) {
	if st.Glow && st.GlowWidth > st.CoreWidth {
		alpha := (1 - s.V) * GlowAlpha
		if alpha > 0 {
			vector.DrawFilledCircle(target, s.X*scale, s.Y*scale, st.GlowWidth/2*scale, st.Grad.NRGBA(s.V, alpha), true)
		}
	}
	r.cap(target, s, st, scale)
}
