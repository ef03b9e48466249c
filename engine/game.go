package engine

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/stephenwagner-grafana/GrafTrail/input"
	"github.com/stephenwagner-grafana/GrafTrail/stroke"
)

// Game adapts the engine to the ebiten run loop. The loop is the
// single thread that mutates and reads everything; Update and Draw
// are sequenced per frame, so the core needs no locks.
type Game struct {
	eng  *Engine
	in   *input.State
	ctx  *stroke.Context
	w, h int
}

// NewGame wires an engine and an input state to a w by h surface.
func NewGame(eng *Engine, in *input.State, w, h int) *Game {
	return &Game{
		eng: eng,
		in:  in,
		ctx: stroke.NewContext(w, h, eng.Settings().Multisample),
		w:   w, h: h,
	}
}

// Engine exposes the wrapped engine.
func (g *Game) Engine() *Engine { return g.eng }

// Update polls input and runs one scheduler tick.
func (g *Game) Update() error {
	snap := g.in.Poll()
	if snap.Quit {
		return ebiten.Termination
	}
	tps := float32(ebiten.TPS())
	if tps <= 0 {
		tps = DefaultTPS
	}
	g.eng.tps = tps
	g.eng.Tick(snap, 1/tps)
	return nil
}

// Draw renders the frame through the context (possibly supersampled).
func (g *Game) Draw(screen *ebiten.Image) {
	g.ctx.Render(screen, g.eng.Draw)
}

// Layout reports the fixed logical surface size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
