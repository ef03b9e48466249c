package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// A Snapshot is the per-tick view of the outside world the scheduler
// consumes. It is a plain value; nothing in it blocks.
type Snapshot struct {
	X, Y     float32 // cursor position (last known good on read fault)
	CursorOK bool    // false until a position has ever been read

	Trigger      bool // trigger key down: drawing
	PauseHeld    bool // pause key physically held
	PauseToggled bool // pause latch state

	// ModeSwitch is a discrete shape-mode selection event: 0..3 for
	// freehand, box, circle, arrow, or -1 when no key was pressed.
	ModeSwitch int

	Quit bool
}

// Frozen reports whether aging should be suspended this tick.
func (s Snapshot) Frozen() bool { return s.PauseHeld || s.PauseToggled }

var modeKeys = [4]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
}

// State owns the key tracker, the pointer, and the pause latch, and
// flattens them into Snapshots.
type State struct {
	keys    Keys
	pointer Pointer

	trigger []ebiten.Key
	pause   []ebiten.Key
	toggle  []ebiten.Key

	toggled      bool
	lastX, lastY float32
	havePos      bool
	allowQuit    bool
}

// NewState builds the input state. Key bindings are settings-file
// names; unknown names leave that binding empty (the feature is simply
// inert, never an error). allowQuit enables the Q-to-quit binding for
// windowed runs.
func NewState(p Pointer, triggerKey, pauseKey, toggleKey string, allowQuit bool) *State {
	s := &State{
		pointer:   p,
		trigger:   KeyByName(triggerKey),
		pause:     KeyByName(pauseKey),
		toggle:    KeyByName(toggleKey),
		allowQuit: allowQuit,
	}
	watch := make([]ebiten.Key, 0, 12)
	watch = append(watch, s.trigger...)
	watch = append(watch, s.pause...)
	watch = append(watch, s.toggle...)
	watch = append(watch, modeKeys[:]...)
	watch = append(watch, ebiten.KeyQ)
	s.keys = NewKeys(watch...)
	return s
}

// Rebind swaps the key bindings, keeping the pause latch.
func (s *State) Rebind(triggerKey, pauseKey, toggleKey string) {
	s.trigger = KeyByName(triggerKey)
	s.pause = KeyByName(pauseKey)
	s.toggle = KeyByName(toggleKey)
	for _, k := range s.trigger {
		s.keys.state(k)
	}
	for _, k := range s.pause {
		s.keys.state(k)
	}
	for _, k := range s.toggle {
		s.keys.state(k)
	}
}

func (s *State) anyDown(ks []ebiten.Key) bool {
	for _, k := range ks {
		if s.keys.Down(k) {
			return true
		}
	}
	return false
}

func (s *State) anyPressed(ks []ebiten.Key) bool {
	for _, k := range ks {
		if s.keys.Pressed(k) {
			return true
		}
	}
	return false
}

// Poll advances key state and produces this tick's snapshot.
func (s *State) Poll() Snapshot {
	s.keys.Update()

	if x, y, ok := s.pointer.Position(); ok {
		s.lastX, s.lastY = x, y
		s.havePos = true
	}
	if s.anyPressed(s.toggle) {
		s.toggled = !s.toggled
	}

	snap := Snapshot{
		X: s.lastX, Y: s.lastY, CursorOK: s.havePos,
		Trigger:      s.anyDown(s.trigger),
		PauseHeld:    s.anyDown(s.pause),
		PauseToggled: s.toggled,
		ModeSwitch:   -1,
		Quit:         s.allowQuit && s.keys.Released(ebiten.KeyQ),
	}
	for i, k := range modeKeys {
		if s.keys.Pressed(k) {
			snap.ModeSwitch = i
		}
	}
	return snap
}
