// Package config provides YAML-based configuration loading for the snake
// board, the tick schedule and the render palette.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full application configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Palette PaletteConfig `yaml:"palette"`
}

// BoardConfig defines the grid the engine runs on.
type BoardConfig struct {
	Rows        int `yaml:"rows"`
	Columns     int `yaml:"columns"`
	StartMargin int `yaml:"start_margin"` // inset of random placement from every edge
}

// TimingConfig defines the driver's tick schedule.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"` // milliseconds between ticks
}

// PaletteConfig maps each cell classification to a display color.
// It is only read by the renderer.
type PaletteConfig struct {
	Empty     core.Color `yaml:"empty"`
	Occupied  core.Color `yaml:"occupied"`
	Target    core.Color `yaml:"target"`
	GameOver  core.Color `yaml:"game_over"`
	Excellent core.Color `yaml:"excellent"`
}

// Engine returns the engine settings for this config.
func (c Config) Engine(seed int64) snake.Config {
	return snake.Config{
		Rows:        c.Board.Rows,
		Columns:     c.Board.Columns,
		StartMargin: c.Board.StartMargin,
		Seed:        seed,
	}
}

// TickInterval returns the time between ticks.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// Validate checks the board against the engine rules and the timing for sanity.
func (c Config) Validate() error {
	if err := c.Engine(0).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalid, c.Timing.TickMS)
	}
	return nil
}
