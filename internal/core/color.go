package core

import (
	"fmt"
	"strings"
)

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorRed
	ColorBrightRed
	ColorDarkRed
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorCyan
)

var colorNames = map[Color]string{
	ColorDefault:     "default",
	ColorWhite:       "white",
	ColorGray:        "gray",
	ColorRed:         "red",
	ColorBrightRed:   "bright_red",
	ColorDarkRed:     "dark_red",
	ColorGreen:       "green",
	ColorBrightGreen: "bright_green",
	ColorYellow:      "yellow",
	ColorCyan:        "cyan",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseColor returns the color with the given name (case-insensitive).
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", name)
}

// MarshalText implements encoding.TextMarshaler so colors read well in config files.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
