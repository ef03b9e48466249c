package input

import (
	math "github.com/chewxy/math32"
	"github.com/go-vgo/robotgo"
	"github.com/hajimehoshi/ebiten/v2"
)

// A Pointer reports the current cursor position in surface
// coordinates. ok is false on a transient read fault; callers keep the
// previous position in that case.
type Pointer interface {
	Position() (x, y float32, ok bool)
}

// GlobalPointer reads the OS-global cursor, which keeps working while
// the overlay is click-through and unfocused. Offsets shift global
// coordinates into the overlay surface (multi-monitor origins).
type GlobalPointer struct {
	OffsetX, OffsetY float32
}

// Position polls the global cursor location.
func (g *GlobalPointer) Position() (float32, float32, bool) {
	x, y := robotgo.Location()
	fx, fy := float32(x)-g.OffsetX, float32(y)-g.OffsetY
	if math.IsNaN(fx) || math.IsNaN(fy) {
		return 0, 0, false
	}
	return fx, fy, true
}

// WindowPointer reads the in-window cursor, for windowed/demo runs
// where no global hook is wanted.
type WindowPointer struct{}

// Position reports the ebiten cursor position.
func (WindowPointer) Position() (float32, float32, bool) {
	x, y := ebiten.CursorPosition()
	return float32(x), float32(y), true
}

// Func adapts a plain function to a Pointer; the demo drives the trail
// with a synthetic path this way.
type Func func() (float32, float32, bool)

// Position calls the wrapped function.
func (f Func) Position() (float32, float32, bool) { return f() }
