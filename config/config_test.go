package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stephenwagner-grafana/GrafTrail/config"
)

func TestClampRanges(t *testing.T) {
	s := config.Default()
	s.FadeSeconds = 500
	s.FadeSlowdown = 0.2
	s.EMAAlpha = -1
	s.ExplosionFrequency = 1000
	s.ShapeMode = "triangle"
	s.Clamp()
	if s.FadeSeconds != 20 {
		t.Errorf("FadeSeconds = %v, want 20", s.FadeSeconds)
	}
	if s.FadeSlowdown != 1.0 {
		t.Errorf("FadeSlowdown = %v, want 1.0", s.FadeSlowdown)
	}
	if s.EMAAlpha != 0 {
		t.Errorf("EMAAlpha = %v, want 0", s.EMAAlpha)
	}
	if s.ExplosionFrequency != 60 {
		t.Errorf("ExplosionFrequency = %v, want 60", s.ExplosionFrequency)
	}
	if s.ShapeMode != config.Freehand {
		t.Errorf("ShapeMode = %q, want freehand", s.ShapeMode)
	}
}

func TestClampKeepsOneStop(t *testing.T) {
	s := config.Default()
	for i := range s.Stops {
		s.Stops[i].Enabled = false
	}
	s.Clamp()
	if !s.Stops[0].Enabled {
		t.Errorf("all stops disabled survived Clamp")
	}
}

func TestGlowWidth(t *testing.T) {
	s := config.Default()
	s.CoreThickness = 20
	s.GlowPercent = 50
	if got := s.GlowWidth(); got != 30 {
		t.Errorf("GlowWidth = %v, want 30", got)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file: err = %v", err)
	}
	if s != config.Default() {
		t.Errorf("missing file did not yield defaults")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	s := config.Default()
	s.FadeSeconds = 4.5
	s.Rainbow = true
	s.ShapeMode = config.Arrow
	if err := s.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != s {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, s)
	}
}

func TestLoadClampsFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("fade_seconds: 99\nfade_slowdown: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.FadeSeconds != 20 || s.FadeSlowdown != 3 {
		t.Errorf("loaded values not clamped: fade=%v slowdown=%v", s.FadeSeconds, s.FadeSlowdown)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := config.Load(path)
	if err == nil {
		t.Errorf("bad yaml: err = nil")
	}
	if s != config.Default() {
		t.Errorf("bad yaml did not fall back to defaults")
	}
}
