package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It matches defaults/snake.yaml.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Rows:        snake.DefaultRows,
			Columns:     snake.DefaultColumns,
			StartMargin: snake.DefaultStartMargin,
		},
		Timing: TimingConfig{
			TickMS: 150,
		},
		Palette: PaletteConfig{
			Empty:     core.ColorWhite,
			Occupied:  core.ColorGreen,
			Target:    core.ColorDarkRed,
			GameOver:  core.ColorRed,
			Excellent: core.ColorBrightGreen,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
