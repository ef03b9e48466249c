// Command trace drives the trail with a synthetic Lissajous cursor in
// a plain window. Handy for eyeballing curve and fade tuning without
// waving a mouse around; Q quits.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	math "github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/seebs/gogetopt"

	"github.com/stephenwagner-grafana/GrafTrail/config"
	"github.com/stephenwagner-grafana/GrafTrail/engine"
	"github.com/stephenwagner-grafana/GrafTrail/input"
	"github.com/stephenwagner-grafana/GrafTrail/stroke"
)

const (
	screenWidth  = 960
	screenHeight = 720
)

// game bypasses the key-driven input state entirely: the trigger is
// always down and the cursor follows a Lissajous figure.
type game struct {
	eng *engine.Engine
	ctx *stroke.Context
	t   float32
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	dt := 1 / float32(engine.DefaultTPS)
	g.t += dt
	sy, cx := math.Sincos(g.t * 1.1)
	sy2, _ := math.Sincos(g.t*1.7 + 0.5)
	g.eng.Tick(input.Snapshot{
		X:        screenWidth/2 + cx*screenWidth*0.35,
		Y:        screenHeight/2 + (sy*0.6+sy2*0.4)*screenHeight*0.35,
		CursorOK: true,
		Trigger:  true,
		// no mode key this tick
		ModeSwitch: -1,
	}, dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.ctx.Render(screen, g.eng.Draw)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	opts, _, err := gogetopt.GetOpt(os.Args[1:], "r")
	if err != nil {
		log.Fatalf("option parsing failed: %s\n", err)
	}

	cfg := config.Default()
	cfg.Multisample = true
	if opts.Seen("r") {
		cfg.Rainbow = true
	}

	g := &game{
		eng: engine.New(cfg, time.Now().UnixNano()),
		ctx: stroke.NewContext(screenWidth, screenHeight, cfg.Multisample),
	}

	ebiten.SetTPS(engine.DefaultTPS)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("GrafTrail trace")
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "exiting: %s\n", err)
	}
}
