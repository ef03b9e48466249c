// Command graftrail is the cursor trail overlay: a transparent,
// undecorated, click-through window covering the screen, drawing a
// glowing trail wherever the cursor goes while the trigger key is held.
//
// Options:
//
//	-c FILE  settings file (default: user config dir)
//	-w       windowed demo run instead of the overlay (Q quits)
//	-p       write cpu-profile.dat
//	-m       write heap-profile.dat and alloc-profile.dat on exit
//	-s SECS  exit after SECS seconds
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/seebs/gogetopt"

	"github.com/stephenwagner-grafana/GrafTrail/config"
	"github.com/stephenwagner-grafana/GrafTrail/engine"
	"github.com/stephenwagner-grafana/GrafTrail/input"
)

const (
	windowedWidth  = 1280
	windowedHeight = 960
)

var timedOut <-chan time.Time

// game adds the -s deadline on top of the engine's run loop.
type game struct {
	*engine.Game
}

func (g *game) Update() error {
	if err := g.Game.Update(); err != nil {
		return err
	}
	select {
	case <-timedOut:
		return errors.New("regular termination")
	default:
		return nil
	}
}

func main() {
	opts, _, err := gogetopt.GetOpt(os.Args[1:], "c:mps#w")
	if err != nil {
		log.Fatalf("option parsing failed: %s\n", err)
	}
	if opts.Seen("p") {
		f, err := os.Create("cpu-profile.dat")
		if err != nil {
			log.Fatalf("can't create cpu-profile.dat: %s", err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	if opts.Seen("m") {
		defer func() {
			f, err := os.Create("heap-profile.dat")
			if err != nil {
				fmt.Fprintf(os.Stderr, "can't create heap-profile.dat: %s", err)
			} else {
				pprof.Lookup("heap").WriteTo(f, 0)
			}
			f, err = os.Create("alloc-profile.dat")
			if err != nil {
				fmt.Fprintf(os.Stderr, "can't create alloc-profile.dat: %s", err)
			} else {
				pprof.Lookup("allocs").WriteTo(f, 0)
			}
		}()
	}
	if opts.Seen("s") {
		timedOut = time.After(time.Duration(opts["s"].Int) * time.Second)
	}

	path := ""
	if opts.Seen("c") {
		path = opts["c"].Value
	} else if path, err = config.Path(); err != nil {
		log.Printf("settings location unavailable, using defaults: %s", err)
	}
	cfg := config.Default()
	if path != "" {
		if cfg, err = config.Load(path); err != nil {
			log.Printf("settings: %s", err)
		}
	}

	windowed := opts.Seen("w")
	w, h := windowedWidth, windowedHeight
	if !windowed {
		w, h = ebiten.Monitor().Size()
	}

	var pointer input.Pointer
	if windowed {
		pointer = input.WindowPointer{}
	} else {
		pointer = &input.GlobalPointer{}
	}
	in := input.NewState(pointer, cfg.TriggerKey, cfg.PauseKey, cfg.ToggleKey, windowed)
	eng := engine.New(cfg, time.Now().UnixNano())

	ebiten.SetTPS(engine.DefaultTPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("GrafTrail")
	runOpts := &ebiten.RunGameOptions{}
	if !windowed {
		ebiten.SetWindowDecorated(false)
		ebiten.SetWindowFloating(true)
		ebiten.SetWindowMousePassthrough(true)
		ebiten.SetWindowPosition(0, 0)
		runOpts.ScreenTransparent = true
		runOpts.InitUnfocused = true
		runOpts.SkipTaskbar = true
	}

	if err := ebiten.RunGameWithOptions(&game{engine.NewGame(eng, in, w, h)}, runOpts); err != nil {
		fmt.Fprintf(os.Stderr, "exiting: %s\n", err)
	}
}
