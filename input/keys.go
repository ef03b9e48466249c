// Package input gathers everything the scheduler consumes per tick:
// key states, the cursor position, and discrete mode-switch events,
// flattened into one Snapshot.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// key state bits: low bit is the current frame, high bit the previous
const (
	press   = 0x01
	release = 0x02
	hold    = 0x03
)

// A Keys tracks edge and hold state for the keys it is told to watch.
type Keys map[ebiten.Key]byte

// NewKeys builds a key tracker for the given keys.
func NewKeys(ks ...ebiten.Key) Keys {
	m := make(Keys, len(ks))
	for _, k := range ks {
		m[k] = 0
	}
	return m
}

// state returns the two-frame state bits for a key, watching it from
// now on if it wasn't watched yet.
func (km Keys) state(k ebiten.Key) byte {
	if _, ok := km[k]; !ok {
		km[k] = 0
	}
	return km[k] & hold
}

// Pressed reports a down edge this frame.
func (km Keys) Pressed(k ebiten.Key) bool { return km.state(k) == press }

// Released reports an up edge this frame.
func (km Keys) Released(k ebiten.Key) bool { return km.state(k) == release }

// Held reports the key has been down for at least two frames.
func (km Keys) Held(k ebiten.Key) bool { return km.state(k) == hold }

// Down reports the key is down this frame.
func (km Keys) Down(k ebiten.Key) bool { return (km.state(k) & press) != 0 }

// Update shifts in the current frame's state for every watched key.
func (km Keys) Update() {
	for k := range km {
		state := byte(0)
		if ebiten.IsKeyPressed(k) {
			state = 1
		}
		km[k] = ((km[k] & 0x1) << 1) | state
	}
}

// KeyByName maps the names used in the settings file to keys. Side
// pairs map to both members, so either one satisfies the binding.
func KeyByName(name string) []ebiten.Key {
	if ks, ok := keyNames[name]; ok {
		return ks
	}
	return nil
}

var keyNames = map[string][]ebiten.Key{
	"control":  {ebiten.KeyControlLeft, ebiten.KeyControlRight},
	"shift":    {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	"alt":      {ebiten.KeyAltLeft, ebiten.KeyAltRight},
	"meta":     {ebiten.KeyMetaLeft, ebiten.KeyMetaRight},
	"capslock": {ebiten.KeyCapsLock},
	"space":    {ebiten.KeySpace},
	"tab":      {ebiten.KeyTab},
	"f6":       {ebiten.KeyF6},
	"f7":       {ebiten.KeyF7},
	"f8":       {ebiten.KeyF8},
	"f9":       {ebiten.KeyF9},
}
