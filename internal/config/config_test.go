package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// isolate points the implicit search locations at empty temp directories.
func isolate(t *testing.T) (home, cwd string) {
	t.Helper()
	home = t.TempDir()
	cwd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(cwd)
	return home, cwd
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults differ from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, cwd := isolate(t)

	writeFile(t, filepath.Join(cwd, "configs", "snake.yaml"), "game:\n  tick_ms: 200\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Game.TickMS != 200 {
		t.Errorf("local config: tick_ms = %d, want 200", cfg.Game.TickMS)
	}

	writeFile(t, filepath.Join(home, ".snake", "config.yaml"), "game:\n  tick_ms: 90\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Game.TickMS != 90 {
		t.Errorf("user config: tick_ms = %d, want 90", cfg.Game.TickMS)
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "game:\n  tick_ms: 50\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load(custom) error: %v", err)
	}
	if cfg.Game.TickMS != 50 {
		t.Errorf("custom config: tick_ms = %d, want 50", cfg.Game.TickMS)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "snake.yaml")
	writeFile(t, path, "grid:\n  dimension: 30\n  start_x: 15\n  start_y: 15\nsound:\n  enabled: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Grid.Dimension != 30 || cfg.Grid.CellSize != 20 {
		t.Errorf("grid = %+v, want dimension 30 with default cell size", cfg.Grid)
	}
	if !cfg.Sound.Enabled {
		t.Error("sound.enabled not applied")
	}
	if cfg.Game.TickMS != 150 || cfg.Storage.Key != "snake" {
		t.Errorf("unrelated defaults lost: %+v %+v", cfg.Game, cfg.Storage)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) returned nil error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "grid: [not, a, map\n")
	if _, err := Load(bad); err == nil {
		t.Error("Load(bad yaml) returned nil error")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	writeFile(t, invalid, "grid:\n  dimension: 1\n  start_x: 0\n  start_y: 0\n")
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load(invalid) error = %v, want ErrInvalid", err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		content string
	}{
		{"food points", "game:\n  food_points: 7\n"},
		{"misspelled tick", "game:\n  tickms: 100\n"},
		{"unknown section", "difficulty:\n  level: hard\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "snake.yaml")
			writeFile(t, path, tt.content)
			if _, err := Load(path); err == nil {
				t.Errorf("Load(%q) returned nil error", tt.content)
			}
		})
	}
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "snake.yaml")
	writeFile(t, path, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(empty) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load(empty) = %+v, want defaults", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*SnakeConfig)
	}{
		{"dimension too small", func(c *SnakeConfig) { c.Grid.Dimension = 1 }},
		{"zero cell size", func(c *SnakeConfig) { c.Grid.CellSize = 0 }},
		{"start x outside", func(c *SnakeConfig) { c.Grid.StartX = 20 }},
		{"start y negative", func(c *SnakeConfig) { c.Grid.StartY = -1 }},
		{"zero tick", func(c *SnakeConfig) { c.Game.TickMS = 0 }},
		{"empty key", func(c *SnakeConfig) { c.Storage.Key = "" }},
		{"empty glyph", func(c *SnakeConfig) { c.Glyphs.Food = "" }},
		{"long glyph", func(c *SnakeConfig) { c.Glyphs.Head = "OO" }},
		{"bad log level", func(c *SnakeConfig) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mut(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestSettings(t *testing.T) {
	cfg := Default()
	cfg.Game.TickMS = 120
	cfg.Glyphs.Head = "█"

	s := cfg.Settings()
	if s.Interval != 120*time.Millisecond {
		t.Errorf("Interval = %v, want 120ms", s.Interval)
	}
	if s.Grid.Dimension != 20 || s.Start.X != 10 || s.Start.Y != 10 {
		t.Errorf("Settings() = %+v", s)
	}
	if g := cfg.GlyphRunes(); g.Head != '█' || g.Body != 'o' || g.Food != '*' {
		t.Errorf("GlyphRunes() = %+v", g)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("parse() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("round trip changed config: %+v", cfg)
	}
}
