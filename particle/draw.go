package particle

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/stephenwagner-grafana/GrafTrail/gradient"
)

// Draw renders the live particles as filled dots, colored from the
// gradient by each particle's own fade progress and faded linearly
// over its lifetime. Failure to draw a particle is never an error;
// decoration must not take the frame down with it.
func (s *System) Draw(target *ebiten.Image, grad gradient.Map, scale float32) {
	if target == nil {
		return
	}
	for i := range s.particles {
		p := &s.particles[i]
		alpha := p.Alpha()
		if alpha <= 0 {
			continue
		}
		phase := float32(0)
		if p.Life > 0 {
			phase = p.Age / p.Life
		}
		vector.DrawFilledCircle(target, p.X*scale, p.Y*scale, p.Size*scale, grad.NRGBA(phase, alpha), false)
	}
}
