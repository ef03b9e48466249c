// Package gradient maps a fade phase in [0, 1] to a color. A Map is
// either an ordered list of one to three enabled RGB stops with linear
// interpolation between the bracketing pair, or a continuous rainbow
// ramp across the full hue circle.
package gradient

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// A Stop is one gradient anchor. Disabled stops are skipped; ordering
// in the Map is ordinal (first, second, third).
type Stop struct {
	Enabled bool
	R, G, B uint8
}

// A Map is an immutable-per-frame phase-to-color mapping.
type Map struct {
	Stops   [3]Stop
	Rainbow bool
}

// Default is the stock three-stop purple, burnt orange, yellow ramp.
func Default() Map {
	return Map{Stops: [3]Stop{
		{Enabled: true, R: 170, G: 0, B: 255},
		{Enabled: true, R: 255, G: 140, B: 0},
		{Enabled: true, R: 255, G: 255, B: 0},
	}}
}

// enabled collects the active stops in ordinal order.
func (m Map) enabled() []Stop {
	out := make([]Stop, 0, 3)
	for _, s := range m.Stops {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

// At yields the color for a phase as float32 components in [0, 1],
// ready for vertex colors. Phase is clamped. Phase 0 is the first
// enabled stop, phase 1 the last; a single enabled stop is constant.
func (m Map) At(phase float32) (r, g, b float32) {
	if phase < 0 {
		phase = 0
	}
	if phase > 1 {
		phase = 1
	}
	if m.Rainbow {
		// hue wraps: phase 1 lands back on phase 0's red
		h := float64(phase) * 360
		if h >= 360 {
			h -= 360
		}
		c := colorful.Hsv(h, 1, 1)
		return float32(c.R), float32(c.G), float32(c.B)
	}
	stops := m.enabled()
	switch len(stops) {
	case 0:
		return 1, 1, 1
	case 1:
		s := stops[0]
		return float32(s.R) / 255, float32(s.G) / 255, float32(s.B) / 255
	}
	// segment index along the enabled stops
	f := phase * float32(len(stops)-1)
	i := int(f)
	if i >= len(stops)-1 {
		i = len(stops) - 2
	}
	t := f - float32(i)
	a, c := stops[i], stops[i+1]
	r = (float32(a.R) + (float32(c.R)-float32(a.R))*t) / 255
	g = (float32(a.G) + (float32(c.G)-float32(a.G))*t) / 255
	b = (float32(a.B) + (float32(c.B)-float32(a.B))*t) / 255
	return r, g, b
}

// NRGBA yields the color for a phase with the given alpha, for draw
// calls that want a color.Color rather than vertex components.
func (m Map) NRGBA(phase, alpha float32) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	r, g, b := m.At(phase)
	return color.NRGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: uint8(alpha * 255),
	}
}
