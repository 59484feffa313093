// Package config provides YAML-based configuration loading for the snake
// game and its frontends.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrInvalid is wrapped by Validate for every rejected value.
var ErrInvalid = errors.New("config: invalid value")

// SnakeConfig contains all configuration for the game and its frontends.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Game    GameConfig    `yaml:"game"`
	Glyphs  GlyphConfig   `yaml:"glyphs"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Sound   SoundConfig   `yaml:"sound"`
}

// GridConfig defines the board.
type GridConfig struct {
	Dimension int `yaml:"dimension"` // Cells per side
	CellSize  int `yaml:"cell_size"` // Pixels per cell, canvas frontend only
	StartX    int `yaml:"start_x"`
	StartY    int `yaml:"start_y"`
}

// GameConfig defines timing. Scoring is fixed at snake.FoodPoints per food.
type GameConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// GlyphConfig defines the characters used by terminal frontends.
type GlyphConfig struct {
	Head string `yaml:"head"`
	Body string `yaml:"body"`
	Food string `yaml:"food"`
}

// StorageConfig defines high score persistence.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
	Key    string `yaml:"key"` // Row key of the high score
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
	File  string `yaml:"file"`  // Empty discards logs in terminal frontends
}

// SoundConfig toggles sound effects.
type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	g := c.Grid
	switch {
	case g.Dimension < 2:
		return fmt.Errorf("%w: grid.dimension must be at least 2, got %d", ErrInvalid, g.Dimension)
	case g.CellSize <= 0:
		return fmt.Errorf("%w: grid.cell_size must be positive, got %d", ErrInvalid, g.CellSize)
	case g.StartX < 0 || g.StartX >= g.Dimension || g.StartY < 0 || g.StartY >= g.Dimension:
		return fmt.Errorf("%w: start (%d, %d) outside %dx%d grid", ErrInvalid, g.StartX, g.StartY, g.Dimension, g.Dimension)
	case c.Game.TickMS <= 0:
		return fmt.Errorf("%w: game.tick_ms must be positive, got %d", ErrInvalid, c.Game.TickMS)
	case c.Storage.Key == "":
		return fmt.Errorf("%w: storage.key is empty", ErrInvalid)
	}

	for name, glyph := range map[string]string{"head": c.Glyphs.Head, "body": c.Glyphs.Body, "food": c.Glyphs.Food} {
		if utf8.RuneCountInString(glyph) != 1 {
			return fmt.Errorf("%w: glyphs.%s must be a single character, got %q", ErrInvalid, name, glyph)
		}
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// TickInterval returns the tick period.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.Game.TickMS) * time.Millisecond
}

// Settings converts the configuration to controller settings.
func (c SnakeConfig) Settings() snake.Settings {
	return snake.Settings{
		Grid:     snake.Grid{Dimension: c.Grid.Dimension, CellSize: c.Grid.CellSize},
		Start:    snake.Cell{X: c.Grid.StartX, Y: c.Grid.StartY},
		Interval: c.TickInterval(),
	}
}

// GlyphRunes converts the glyph strings to renderer glyphs. Call Validate
// first; empty strings fall back to the defaults.
func (c SnakeConfig) GlyphRunes() snake.Glyphs {
	g := snake.DefaultGlyphs()
	if r, _ := utf8.DecodeRuneInString(c.Glyphs.Head); r != utf8.RuneError {
		g.Head = r
	}
	if r, _ := utf8.DecodeRuneInString(c.Glyphs.Body); r != utf8.RuneError {
		g.Body = r
	}
	if r, _ := utf8.DecodeRuneInString(c.Glyphs.Food); r != utf8.RuneError {
		g.Food = r
	}
	return g
}
