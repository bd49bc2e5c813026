// Package snake implements the grid snake simulation: a board of cell
// classifications and the engine that moves, grows and terminates the snake.
// It has no terminal or timer dependencies; drivers call ChangeDirection and
// Tick and render from Board.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/gammazero/deque"
)

// State is the engine's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

// Outcome says why the engine terminated.
type Outcome int

const (
	OutcomeNone      Outcome = iota
	OutcomeCollision         // ran into itself or off the board
	OutcomeFull              // filled the board
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCollision:
		return "collision"
	case OutcomeFull:
		return "full"
	default:
		return "none"
	}
}

// Marker returns the boundary cell drawn for the outcome.
func (o Outcome) Marker() Cell {
	if o == OutcomeFull {
		return CellExcellent
	}
	return CellGameOver
}

// Option customises the initial placement of an engine.
type Option func(*placement)

type placement struct {
	head    *Position
	target  *Position
	heading *Heading
}

// WithHead places the snake's single starting cell at p.
func WithHead(p Position) Option {
	return func(pl *placement) { pl.head = &p }
}

// WithTarget places the first target at p.
func WithTarget(p Position) Option {
	return func(pl *placement) { pl.target = &p }
}

// WithHeading sets the starting heading.
func WithHeading(h Heading) Option {
	return func(pl *placement) { pl.heading = &h }
}

// Engine is the snake state machine. It is not safe for concurrent use;
// callers serialise ChangeDirection and Tick.
type Engine struct {
	cfg   Config
	board *Board
	gen   CellGenerator
	rng   *rand.Rand

	body    deque.Deque[Position] // head at the front
	target  Position
	heading Heading

	state   State
	outcome Outcome
	ticks   uint64
}

// New builds an engine on an empty board. A nil gen uses a
// RandomCellGenerator seeded from cfg.Seed. Unplaced head and target are
// drawn from gen; an unset heading is drawn from the seeded RNG.
func New(cfg Config, gen CellGenerator, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var pl placement
	for _, opt := range opts {
		opt(&pl)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	if gen == nil {
		gen = NewRandomCellGeneratorWithRand(cfg, rng)
	}

	e := &Engine{
		cfg:   cfg,
		board: NewBoard(cfg.Rows, cfg.Columns),
		gen:   gen,
		rng:   rng,
	}

	var head Position
	if pl.head != nil {
		head = *pl.head
	} else {
		head = gen.Next()
	}
	if !e.board.Contains(head) {
		return nil, fmt.Errorf("%w: head %v is off the %dx%d board", ErrInvalidPlacement, head, cfg.Rows, cfg.Columns)
	}
	e.body.PushFront(head)
	e.board.Set(head, CellOccupied)

	if pl.target != nil {
		target := *pl.target
		if !e.board.Contains(target) {
			return nil, fmt.Errorf("%w: target %v is off the %dx%d board", ErrInvalidPlacement, target, cfg.Rows, cfg.Columns)
		}
		if target == head {
			return nil, fmt.Errorf("%w: target %v is on the head", ErrInvalidPlacement, target)
		}
		e.target = target
	} else {
		target, ok := e.drawFreeCell()
		if !ok {
			return nil, fmt.Errorf("%w: no free cell for the target", ErrInvalidPlacement)
		}
		e.target = target
	}
	e.board.Set(e.target, CellTarget)

	if pl.heading != nil {
		e.heading = *pl.heading
	} else {
		e.heading = Headings[rng.Intn(len(Headings))]
	}

	return e, nil
}

// ChangeDirection sets the heading unless h reverses the current one or
// the engine has terminated.
func (e *Engine) ChangeDirection(h Heading) {
	if e.state == StateTerminated {
		return
	}
	if h == e.heading.Opposite() {
		return
	}
	e.heading = h
}

// Tick advances the simulation one step and returns the resulting state.
// After termination it does nothing.
func (e *Engine) Tick() State {
	if e.state == StateTerminated {
		return e.state
	}
	e.ticks++

	head := e.body.Front()
	if e.atBoundary(head) {
		e.terminate(OutcomeCollision)
		return e.state
	}

	next := e.heading.Step(head)
	if !e.board.Contains(next) || e.occupies(next) {
		e.terminate(OutcomeCollision)
		return e.state
	}

	e.board.Set(next, CellOccupied)
	e.body.PushFront(next)

	if next != e.target {
		tail := e.body.PopBack()
		e.board.Set(tail, CellEmpty)
		return e.state
	}

	if e.body.Len() >= e.cfg.Rows*e.cfg.Columns-1 {
		e.terminate(OutcomeFull)
		return e.state
	}

	target, ok := e.drawFreeCell()
	if !ok {
		e.terminate(OutcomeFull)
		return e.state
	}
	e.target = target
	e.board.Set(target, CellTarget)

	return e.state
}

// atBoundary is evaluated on the pre-move head against the current heading.
// Right and Down compare against the full size, so those edges are caught
// by the grid check on the candidate cell instead.
func (e *Engine) atBoundary(head Position) bool {
	switch e.heading {
	case HeadingLeft:
		return head.Col == 0
	case HeadingRight:
		return head.Col >= e.cfg.Columns
	case HeadingUp:
		return head.Row == 0
	case HeadingDown:
		return head.Row >= e.cfg.Rows
	}
	return false
}

func (e *Engine) occupies(p Position) bool {
	return e.body.Index(func(b Position) bool { return b == p }) >= 0
}

// drawFreeCell asks the generator for a cell off the body. After
// maxDraws misses it falls back to a uniform pick among the free cells of
// the placement area, then of the whole board.
func (e *Engine) drawFreeCell() (Position, bool) {
	maxDraws := 4 * e.cfg.Rows * e.cfg.Columns
	for range maxDraws {
		p := e.gen.Next()
		if e.board.Contains(p) && !e.occupies(p) {
			return p, true
		}
	}

	minRow, maxRow, minCol, maxCol := e.cfg.PlacementArea()
	if p, ok := e.pickFree(minRow, maxRow, minCol, maxCol); ok {
		return p, true
	}
	return e.pickFree(0, e.cfg.Rows-1, 0, e.cfg.Columns-1)
}

func (e *Engine) pickFree(minRow, maxRow, minCol, maxCol int) (Position, bool) {
	var free []Position
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			p := Position{Row: row, Col: col}
			if e.board.Contains(p) && !e.occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Position{}, false
	}
	return free[e.rng.Intn(len(free))], true
}

// terminate records the outcome and paints the border ring once.
func (e *Engine) terminate(o Outcome) {
	e.state = StateTerminated
	e.outcome = o

	marker := o.Marker()
	for row := range e.cfg.Rows {
		for col := range e.cfg.Columns {
			if row == 0 || col == 0 || row >= e.cfg.Rows-1 || col >= e.cfg.Columns-1 {
				e.board.Set(Position{Row: row, Col: col}, marker)
			}
		}
	}
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Outcome returns why the engine terminated, or OutcomeNone while running.
func (e *Engine) Outcome() Outcome {
	return e.outcome
}

// Terminated reports whether the engine has stopped.
func (e *Engine) Terminated() bool {
	return e.state == StateTerminated
}

// Board returns a read-only view of the board.
func (e *Engine) Board() View {
	return e.board
}

// Config returns the settings the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Head returns the leading body cell.
func (e *Engine) Head() Position {
	return e.body.Front()
}

// Body returns a copy of the body, head first.
func (e *Engine) Body() []Position {
	out := make([]Position, e.body.Len())
	for i := range out {
		out[i] = e.body.At(i)
	}
	return out
}

// Len returns the body length.
func (e *Engine) Len() int {
	return e.body.Len()
}

// Target returns the current target cell.
func (e *Engine) Target() Position {
	return e.target
}

// Heading returns the current heading.
func (e *Engine) Heading() Heading {
	return e.heading
}

// Ticks returns how many ticks have been applied while running.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}
