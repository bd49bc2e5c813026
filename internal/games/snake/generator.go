package snake

import "math/rand"

// CellGenerator produces candidate positions for the head and the target.
// The engine takes one at construction so tests can substitute fixed sequences.
type CellGenerator interface {
	Next() Position
}

// CellGeneratorFunc adapts a function to CellGenerator.
type CellGeneratorFunc func() Position

// Next calls f.
func (f CellGeneratorFunc) Next() Position {
	return f()
}

// RandomCellGenerator draws positions uniformly from the placement area of a
// board: rows and columns in [margin, size-margin], both ends inclusive.
type RandomCellGenerator struct {
	rng                            *rand.Rand
	minRow, maxRow, minCol, maxCol int
}

// NewRandomCellGenerator creates a generator for cfg seeded with cfg.Seed.
func NewRandomCellGenerator(cfg Config) *RandomCellGenerator {
	return NewRandomCellGeneratorWithRand(cfg, rand.New(rand.NewSource(cfg.Seed)))
}

// NewRandomCellGeneratorWithRand creates a generator for cfg drawing from rng.
func NewRandomCellGeneratorWithRand(cfg Config, rng *rand.Rand) *RandomCellGenerator {
	minRow, maxRow, minCol, maxCol := cfg.PlacementArea()
	return &RandomCellGenerator{
		rng:    rng,
		minRow: minRow,
		maxRow: maxRow,
		minCol: minCol,
		maxCol: maxCol,
	}
}

// Next returns a position inside the placement area.
func (g *RandomCellGenerator) Next() Position {
	return Position{
		Row: g.minRow + g.rng.Intn(g.maxRow-g.minRow+1),
		Col: g.minCol + g.rng.Intn(g.maxCol-g.minCol+1),
	}
}

// Sequence returns a generator that yields positions in order and then
// repeats the last one. It is meant for deterministic setups.
func Sequence(positions ...Position) CellGenerator {
	i := 0
	return CellGeneratorFunc(func() Position {
		if len(positions) == 0 {
			return Position{}
		}
		p := positions[min(i, len(positions)-1)]
		i++
		return p
	})
}
