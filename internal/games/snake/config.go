package snake

import (
	"errors"
	"fmt"
)

// Default board settings.
const (
	DefaultRows        = 20
	DefaultColumns     = 20
	DefaultStartMargin = 6
)

var (
	// ErrInvalidConfig is returned by New when the board settings are unusable.
	ErrInvalidConfig = errors.New("snake: invalid config")
	// ErrInvalidPlacement is returned by New when an explicit head or target is unusable.
	ErrInvalidPlacement = errors.New("snake: invalid placement")
)

// Config holds the board settings the engine is built with.
type Config struct {
	Rows        int
	Columns     int
	StartMargin int   // inset of the random placement area from every edge
	Seed        int64 // seeds the default generator and the initial heading
}

// DefaultConfig returns the stock board.
func DefaultConfig() Config {
	return Config{
		Rows:        DefaultRows,
		Columns:     DefaultColumns,
		StartMargin: DefaultStartMargin,
	}
}

// Validate checks that the board is non-empty and that the start margin
// leaves at least one cell to place things in.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Rows, c.Columns)
	}
	if c.StartMargin < 1 {
		return fmt.Errorf("%w: start margin must be positive, got %d", ErrInvalidConfig, c.StartMargin)
	}
	if c.Rows-c.StartMargin < c.StartMargin || c.Columns-c.StartMargin < c.StartMargin {
		return fmt.Errorf("%w: start margin %d leaves no room on a %dx%d board",
			ErrInvalidConfig, c.StartMargin, c.Rows, c.Columns)
	}
	return nil
}

// PlacementArea returns the inclusive row and column bounds random cells are drawn from.
func (c Config) PlacementArea() (minRow, maxRow, minCol, maxCol int) {
	return c.StartMargin, c.Rows - c.StartMargin, c.StartMargin, c.Columns - c.StartMargin
}
