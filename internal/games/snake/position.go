package snake

import "fmt"

// Position is a board coordinate. It is a value type: copies never alias,
// so a position stored in the body cannot be changed by a later move.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Heading is the direction the snake moves in on each tick.
type Heading int

const (
	HeadingUp Heading = iota
	HeadingDown
	HeadingLeft
	HeadingRight
)

// Headings lists all headings in declaration order.
var Headings = [...]Heading{HeadingUp, HeadingDown, HeadingLeft, HeadingRight}

// Opposite returns the reverse heading.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	default:
		return HeadingLeft
	}
}

// Step returns p moved one cell along h.
// Up increases the row index and Down decreases it.
func (h Heading) Step(p Position) Position {
	switch h {
	case HeadingUp:
		return Position{Row: p.Row + 1, Col: p.Col}
	case HeadingDown:
		return Position{Row: p.Row - 1, Col: p.Col}
	case HeadingLeft:
		return Position{Row: p.Row, Col: p.Col - 1}
	case HeadingRight:
		return Position{Row: p.Row, Col: p.Col + 1}
	}
	return p
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}
