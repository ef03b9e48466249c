package engine

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/stephenwagner-grafana/GrafTrail/trail"
)

// Draw runs the render pass: every stroke through the compositor,
// then the shape preview, then particles on top. A panic anywhere in
// the pass skips this frame's drawing; the next tick starts clean.
func (e *Engine) Draw(target *ebiten.Image, scale float32) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("render pass skipped: %v", r)
		}
	}()
	st := e.style()
	e.buf.EachStroke(func(pts []trail.Point) {
		e.rend.Draw(target, e.path(pts), st, scale)
	})
	for _, pts := range e.preview {
		e.rend.Draw(target, e.previewPath(pts), st, scale)
	}
	e.parts.Draw(target, st.Grad, scale)
}
