// Package config holds the overlay settings: key bindings, stroke
// look, fade behavior, and particle tuning. Settings load from a YAML
// file in the user config dir and are handed to the engine as a
// snapshot between frames; the render core itself never persists
// anything.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Mode names the stroke shape drawn while the trigger is held.
type Mode string

const (
	Freehand Mode = "freehand"
	Box      Mode = "box"
	Circle   Mode = "circle"
	Arrow    Mode = "arrow"
)

// Modes lists the selector order used by the 1-4 hotkeys.
var Modes = [4]Mode{Freehand, Box, Circle, Arrow}

// A ColorStop is one settings-file gradient anchor.
type ColorStop struct {
	Enabled bool  `yaml:"enabled"`
	R       uint8 `yaml:"r"`
	G       uint8 `yaml:"g"`
	B       uint8 `yaml:"b"`
}

// Settings is the full configuration snapshot. All values are clamped
// to their documented bounds on load; out-of-range input is corrected,
// not rejected.
type Settings struct {
	TriggerKey string `yaml:"trigger_key"`
	PauseKey   string `yaml:"pause_key"`
	ToggleKey  string `yaml:"toggle_key"`

	CoreThickness float32 `yaml:"core_thickness"`
	GlowPercent   float32 `yaml:"glow_percent"`
	GlowEnabled   bool    `yaml:"glow_enabled"`

	FadeSeconds  float32 `yaml:"fade_seconds"`
	FadeSlowdown float32 `yaml:"fade_slowdown"`
	EMAAlpha     float32 `yaml:"ema_alpha"`
	MinDistance  float32 `yaml:"min_distance"`
	Tension      float32 `yaml:"tension"`

	Stops   [3]ColorStop `yaml:"color_stops"`
	Rainbow bool         `yaml:"rainbow"`

	ParticlesEnabled   bool    `yaml:"particles_enabled"`
	ExplosionFrequency float32 `yaml:"explosion_frequency"`
	ParticleIntensity  float32 `yaml:"particle_intensity"`
	CrystalsEnabled    bool    `yaml:"crystals_enabled"`

	ShapeMode Mode `yaml:"shape_mode"`

	// DrawWhileFrozen keeps appends flowing while aging is paused, so
	// a frozen trail can still be extended.
	DrawWhileFrozen bool `yaml:"draw_while_frozen"`

	// Multisample renders at 2x and scales down, at a cost.
	Multisample bool `yaml:"multisample"`
}

// Default returns the stock settings.
func Default() Settings {
	return Settings{
		TriggerKey:    "control",
		PauseKey:      "shift",
		ToggleKey:     "capslock",
		CoreThickness: 16,
		GlowPercent:   40,
		GlowEnabled:   true,
		FadeSeconds:   1.5,
		FadeSlowdown:  2.5,
		EMAAlpha:      0.35,
		MinDistance:   3.5,
		Tension:       1.0,
		Stops: [3]ColorStop{
			{Enabled: true, R: 170, G: 0, B: 255},
			{Enabled: true, R: 255, G: 140, B: 0},
			{Enabled: true, R: 255, G: 255, B: 0},
		},
		ParticlesEnabled:   true,
		ExplosionFrequency: 15,
		ParticleIntensity:  1.0,
		CrystalsEnabled:    true,
		ShapeMode:          Freehand,
		DrawWhileFrozen:    true,
	}
}

func clampF(v *float32, lo, hi float32) {
	if *v < lo {
		*v = lo
	}
	if *v > hi {
		*v = hi
	}
}

// Clamp forces every numeric field into its documented range and any
// unknown mode back to freehand.
func (s *Settings) Clamp() {
	clampF(&s.CoreThickness, 1, 100)
	clampF(&s.GlowPercent, 0, 300)
	clampF(&s.FadeSeconds, 0.1, 20)
	clampF(&s.FadeSlowdown, 1.0, 3.0)
	clampF(&s.EMAAlpha, 0.0, 1.0)
	clampF(&s.MinDistance, 0, 100)
	clampF(&s.Tension, 0, 2)
	clampF(&s.ExplosionFrequency, 1, 60)
	clampF(&s.ParticleIntensity, 0.1, 3.0)
	switch s.ShapeMode {
	case Freehand, Box, Circle, Arrow:
	default:
		s.ShapeMode = Freehand
	}
	// a gradient needs at least one stop to mean anything
	if !s.Rainbow && !s.Stops[0].Enabled && !s.Stops[1].Enabled && !s.Stops[2].Enabled {
		s.Stops[0].Enabled = true
	}
}

// GlowWidth derives the full glow stroke width from the core width
// and the glow percentage.
func (s Settings) GlowWidth() float32 {
	return s.CoreThickness + s.CoreThickness*s.GlowPercent/100
}

// Path returns the settings file location under the user config dir.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("no user config dir: %w", err)
	}
	return filepath.Join(dir, "graftrail", "config.yaml"), nil
}

// Load reads settings from path. A missing file yields the defaults;
// a present file is decoded over the defaults and clamped.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parsing settings: %w", err)
	}
	s.Clamp()
	return s, nil
}

// Save writes the settings to path, creating parent directories.
func (s Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
