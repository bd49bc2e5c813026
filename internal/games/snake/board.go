package snake

// Cell classifies a single board cell. Values are mutually exclusive.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellOccupied
	CellTarget
	CellGameOver  // boundary marker after a collision
	CellExcellent // boundary marker after filling the board
)

// IsMarker reports whether c is one of the terminal boundary markers.
func (c Cell) IsMarker() bool {
	return c == CellGameOver || c == CellExcellent
}

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellOccupied:
		return "occupied"
	case CellTarget:
		return "target"
	case CellGameOver:
		return "game_over"
	case CellExcellent:
		return "excellent"
	default:
		return "unknown"
	}
}

// View is read-only access to a board, handed to renderers.
type View interface {
	Rows() int
	Columns() int
	Get(p Position) Cell
}

// Board is a fixed-size grid of cells, stored row-major.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// NewBoard creates an empty board. Dimensions are not validated here;
// Config.Validate is the gate for user input.
func NewBoard(rows, cols int) *Board {
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Columns returns the number of columns.
func (b *Board) Columns() int {
	return b.cols
}

// Contains reports whether p lies on the board.
func (b *Board) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// Get returns the cell at p. Out-of-range positions read as CellEmpty.
func (b *Board) Get(p Position) Cell {
	if !b.Contains(p) {
		return CellEmpty
	}
	return b.cells[p.Row*b.cols+p.Col]
}

// Set overwrites the cell at p. Out-of-range writes are ignored.
func (b *Board) Set(p Position, c Cell) {
	if !b.Contains(p) {
		return
	}
	b.cells[p.Row*b.cols+p.Col] = c
}

// Count returns how many cells hold c.
func (b *Board) Count(c Cell) int {
	n := 0
	for _, v := range b.cells {
		if v == c {
			n++
		}
	}
	return n
}

// String renders the board as text, top row last so that "up" reads upward.
func (b *Board) String() string {
	out := make([]byte, 0, (b.cols+1)*b.rows)
	for row := b.rows - 1; row >= 0; row-- {
		for col := range b.cols {
			out = append(out, cellGlyph(b.cells[row*b.cols+col]))
		}
		if row > 0 {
			out = append(out, '\n')
		}
	}
	return string(out)
}

func cellGlyph(c Cell) byte {
	switch c {
	case CellOccupied:
		return 'o'
	case CellTarget:
		return '*'
	case CellGameOver:
		return 'X'
	case CellExcellent:
		return '+'
	default:
		return '.'
	}
}
