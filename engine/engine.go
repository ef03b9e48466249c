// Package engine is the frame scheduler: a fixed-rate tick that reads
// the input snapshot, feeds the point buffer, ages everything, and
// drives the render pass. The tick logic is plain state so it can run
// (and be tested) without a display; the ebiten wiring lives in Game.
package engine

import (
	"math/rand"

	math "github.com/chewxy/math32"

	"github.com/stephenwagner-grafana/GrafTrail/config"
	"github.com/stephenwagner-grafana/GrafTrail/curve"
	"github.com/stephenwagner-grafana/GrafTrail/gradient"
	"github.com/stephenwagner-grafana/GrafTrail/input"
	"github.com/stephenwagner-grafana/GrafTrail/particle"
	"github.com/stephenwagner-grafana/GrafTrail/stroke"
	"github.com/stephenwagner-grafana/GrafTrail/trail"
)

// State is the scheduler's coarse mode.
type State int

const (
	// Idle: trigger up and nothing left on screen.
	Idle State = iota
	// Drawing: trigger held, or released with points still fading.
	Drawing
	// Frozen: pause key or latch active; aging suspended.
	Frozen
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case Frozen:
		return "frozen"
	}
	return "unknown"
}

// DefaultTPS is the target tick rate.
const DefaultTPS = 60

// emission and preview distance thresholds, in pixels
const (
	burstDistance   = 40 // force a spark burst after this many px
	crystalSpacing  = 2  // backfill one crystal cluster per this many px
	previewDeadzone = 5  // drag distance before a shape preview appears
)

// An Engine owns the trail buffer and particle system and advances
// them once per tick. Everything here is single-threaded: Tick and
// Draw are called in sequence from the same loop, so no locking.
type Engine struct {
	cfg   config.Settings
	buf   *trail.Buffer
	parts *particle.System
	rend  stroke.Renderer
	rng   *rand.Rand
	tps   float32

	state       State
	resume      State // state to restore when unfreezing
	prevTrigger bool

	shapeActive    bool
	shapeX, shapeY float32
	preview        [][]trail.Point

	lastBurstX, lastBurstY     float32
	haveBurst                  bool
	lastCrystalX, lastCrystalY float32
	haveCrystal                bool

	samples []curve.Sample
}

// New builds an engine from a settings snapshot. Seed fixes the
// particle random stream for tests.
func New(cfg config.Settings, seed int64) *Engine {
	cfg.Clamp()
	e := &Engine{
		cfg:   cfg,
		buf:   trail.NewBuffer(cfg.MinDistance, cfg.EMAAlpha, cfg.FadeSeconds, cfg.FadeSlowdown),
		parts: particle.NewSystem(seed),
		rng:   rand.New(rand.NewSource(seed + 1)),
		tps:   DefaultTPS,
	}
	return e
}

// State reports the scheduler state.
func (e *Engine) State() State { return e.state }

// Buffer exposes the point buffer (read-only use expected).
func (e *Engine) Buffer() *trail.Buffer { return e.buf }

// Particles exposes the particle system (read-only use expected).
func (e *Engine) Particles() *particle.System { return e.parts }

// Settings returns the active settings snapshot.
func (e *Engine) Settings() config.Settings { return e.cfg }

// Apply swaps in a new settings snapshot between frames.
func (e *Engine) Apply(cfg config.Settings) {
	cfg.Clamp()
	e.cfg = cfg
	e.buf.MinDist = cfg.MinDistance
	e.buf.Alpha = cfg.EMAAlpha
	e.buf.FadeSeconds = cfg.FadeSeconds
	e.buf.FadeSlowdown = cfg.FadeSlowdown
}

// Clear wipes the trail immediately; particles finish on their own.
func (e *Engine) Clear() {
	e.buf.Clear()
	if e.state == Drawing {
		e.state = Idle
	}
	if e.state == Frozen && e.resume == Drawing {
		e.resume = Idle
	}
}

// Tick advances one frame: freeze bookkeeping, trigger edges, cursor
// sampling, aging, particle motion, and the state machine. Negative dt
// is rejected outright; time runs forward only.
func (e *Engine) Tick(in input.Snapshot, dt float32) {
	if dt < 0 {
		return
	}
	if in.ModeSwitch >= 0 && in.ModeSwitch < len(config.Modes) {
		e.cfg.ShapeMode = config.Modes[in.ModeSwitch]
	}

	frozen := in.Frozen()
	if frozen && e.state != Frozen {
		e.resume, e.state = e.state, Frozen
	}
	if !frozen && e.state == Frozen {
		e.state = e.resume
	}
	e.buf.SetPaused(frozen)

	pressed := in.Trigger && in.CursorOK
	canDraw := pressed && (!frozen || e.cfg.DrawWhileFrozen)

	if pressed && !e.prevTrigger {
		e.buf.BeginStroke()
		e.haveBurst, e.haveCrystal = false, false
		if e.cfg.ShapeMode != config.Freehand {
			e.shapeActive, e.shapeX, e.shapeY = true, in.X, in.Y
		}
		if e.state == Idle {
			e.state = Drawing
		} else if e.state == Frozen && e.resume == Idle {
			e.resume = Drawing
		}
	}
	if !pressed && e.prevTrigger && e.shapeActive {
		e.commitShape(in.X, in.Y)
		e.shapeActive = false
	}

	if canDraw && e.cfg.ShapeMode == config.Freehand {
		if e.buf.Append(in.X, in.Y) && !frozen {
			e.emit(in.X, in.Y)
		}
	}

	e.preview = e.preview[:0]
	if canDraw && e.shapeActive {
		dx, dy := in.X-e.shapeX, in.Y-e.shapeY
		if dx*dx+dy*dy > previewDeadzone*previewDeadzone {
			e.preview = e.buildShape(in.X, in.Y)
		}
	}

	e.prevTrigger = pressed
	e.buf.Tick(dt)
	if !frozen {
		e.parts.Tick(dt)
	}

	if e.state == Drawing && !pressed && e.buf.Len() == 0 {
		e.state = Idle
	}
}

// emit spawns decoration for one accepted freehand sample. Sparks fire
// with probability frequency/tickrate, or unconditionally once the
// cursor has outrun the last burst; ice crystals backfill the whole
// segment since the previous sample so fast sweeps stay covered.
func (e *Engine) emit(x, y float32) {
	if e.cfg.ParticlesEnabled {
		chance := e.cfg.ExplosionFrequency / e.tps
		far := false
		if e.haveBurst {
			dx, dy := x-e.lastBurstX, y-e.lastBurstY
			far = dx*dx+dy*dy > burstDistance*burstDistance
		}
		if e.rng.Float32() < chance || far {
			burst := 1 + int(e.cfg.ParticleIntensity)
			for i := 0; i < burst; i++ {
				e.parts.SpawnSpark(x, y)
			}
			e.lastBurstX, e.lastBurstY, e.haveBurst = x, y, true
		}
	}
	if e.cfg.CrystalsEnabled {
		if e.haveCrystal {
			dx, dy := x-e.lastCrystalX, y-e.lastCrystalY
			dist := math.Sqrt(dx*dx + dy*dy)
			steps := int(dist / crystalSpacing)
			if steps < 1 {
				steps = 1
			}
			for s := 0; s <= steps; s++ {
				t := float32(s) / float32(steps)
				fx := e.lastCrystalX + dx*t
				fy := e.lastCrystalY + dy*t
				for n := e.rng.Intn(3); n > 0; n-- {
					e.parts.SpawnCrystal(fx, fy, dx, dy)
				}
			}
		} else {
			e.parts.SpawnCrystal(x, y, 0, 0)
		}
		e.lastCrystalX, e.lastCrystalY, e.haveCrystal = x, y, true
	}
}

// buildShape renders the drag-in-progress outline for the preview.
func (e *Engine) buildShape(x, y float32) [][]trail.Point {
	switch e.cfg.ShapeMode {
	case config.Box:
		return stroke.Box(e.shapeX, e.shapeY, x, y)
	case config.Circle:
		return stroke.Circle(e.shapeX, e.shapeY, x, y)
	case config.Arrow:
		return stroke.Arrow(e.shapeX, e.shapeY, x, y, e.cfg.CoreThickness)
	}
	return nil
}

// commitShape freezes the dragged outline into the buffer, where it
// fades exactly like a freehand stroke.
func (e *Engine) commitShape(x, y float32) {
	if strokes := e.buildShape(x, y); len(strokes) > 0 {
		e.buf.AppendShape(strokes...)
	}
}

// grad assembles the frame's gradient map from the settings.
func (e *Engine) grad() gradient.Map {
	m := gradient.Map{Rainbow: e.cfg.Rainbow}
	for i, s := range e.cfg.Stops {
		m.Stops[i] = gradient.Stop{Enabled: s.Enabled, R: s.R, G: s.G, B: s.B}
	}
	return m
}

// style assembles the frame's stroke style.
func (e *Engine) style() stroke.Style {
	return stroke.Style{
		Grad:      e.grad(),
		CoreWidth: e.cfg.CoreThickness,
		GlowWidth: e.cfg.GlowWidth(),
		Glow:      e.cfg.GlowEnabled,
	}
}

// path converts one stroke's points to render samples. Freehand
// strokes go through the curve engine; committed shapes stay as their
// parametric outlines.
func (e *Engine) path(pts []trail.Point) []curve.Sample {
	e.samples = e.samples[:0]
	for _, p := range pts {
		e.samples = append(e.samples, curve.Sample{X: p.SX, Y: p.SY, V: e.buf.Progress(p.Age)})
	}
	if len(pts) > 0 && pts[0].Shape {
		return e.samples
	}
	return curve.Smooth(e.samples, curve.DefaultSubsteps, e.cfg.Tension)
}

// previewPath converts preview outline points at full opacity.
func (e *Engine) previewPath(pts []trail.Point) []curve.Sample {
	e.samples = e.samples[:0]
	for _, p := range pts {
		e.samples = append(e.samples, curve.Sample{X: p.X, Y: p.Y, V: 0})
	}
	return e.samples
}
