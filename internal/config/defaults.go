package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded configuration: the classic 20×20 board of
// 20-pixel cells, starting at (10, 10), ticking every 150ms.
func Default() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Dimension: 20,
			CellSize:  20,
			StartX:    10,
			StartY:    10,
		},
		Game: GameConfig{
			TickMS: 150,
		},
		Glyphs: GlyphConfig{
			Head: "@",
			Body: "o",
			Food: "*",
		},
		Storage: StorageConfig{
			DBPath: "~/.snake/snake.db",
			Key:    "snake",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
