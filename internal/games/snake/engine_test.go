package snake

import (
	"errors"
	"slices"
	"testing"
)

func smallConfig() Config {
	return Config{Rows: 12, Columns: 12, StartMargin: 6, Seed: 1}
}

func mustNew(t *testing.T, cfg Config, gen CellGenerator, opts ...Option) *Engine {
	t.Helper()
	e, err := New(cfg, gen, opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return e
}

func TestChangeDirection(t *testing.T) {
	for _, current := range Headings {
		for _, requested := range Headings {
			e := mustNew(t, smallConfig(), nil,
				WithHead(Pos(5, 5)), WithTarget(Pos(8, 8)), WithHeading(current))

			e.ChangeDirection(requested)

			expected := requested
			if requested == current.Opposite() {
				expected = current
			}
			if e.Heading() != expected {
				t.Errorf("heading %v, ChangeDirection(%v) -> %v, expected %v",
					current, requested, e.Heading(), expected)
			}
		}
	}
}

func TestTickConsumesTarget(t *testing.T) {
	e := mustNew(t, smallConfig(), nil,
		WithHead(Pos(5, 7)), WithTarget(Pos(5, 6)), WithHeading(HeadingLeft))

	if state := e.Tick(); state != StateRunning {
		t.Fatalf("Tick() = %v, expected running", state)
	}

	if e.Head() != Pos(5, 6) {
		t.Errorf("Head() = %v, expected (5,6)", e.Head())
	}
	expectedBody := []Position{Pos(5, 6), Pos(5, 7)}
	if !slices.Equal(e.Body(), expectedBody) {
		t.Errorf("Body() = %v, expected %v", e.Body(), expectedBody)
	}
	if e.Target() == Pos(5, 6) {
		t.Error("Target was not relocated after being consumed")
	}
	if slices.Contains(e.Body(), e.Target()) {
		t.Errorf("new target %v is on the body", e.Target())
	}

	board := e.Board()
	if board.Get(Pos(5, 6)) != CellOccupied {
		t.Errorf("cell (5,6) = %v, expected occupied", board.Get(Pos(5, 6)))
	}
	if board.Get(Pos(5, 7)) != CellOccupied {
		t.Errorf("cell (5,7) = %v, expected occupied", board.Get(Pos(5, 7)))
	}
	if board.Get(e.Target()) != CellTarget {
		t.Errorf("cell %v = %v, expected target", e.Target(), board.Get(e.Target()))
	}
}

func TestTargetRelocationSkipsBody(t *testing.T) {
	// First two draws land on the body and must be retried.
	gen := Sequence(Pos(5, 7), Pos(5, 6), Pos(8, 8))
	e := mustNew(t, smallConfig(), gen,
		WithHead(Pos(5, 7)), WithTarget(Pos(5, 6)), WithHeading(HeadingLeft))

	before := e.Len()
	e.Tick()

	if e.Len() != before+1 {
		t.Errorf("Len() = %d, expected %d", e.Len(), before+1)
	}
	if e.Target() != Pos(8, 8) {
		t.Errorf("Target() = %v, expected (8,8)", e.Target())
	}
}

func TestTargetRelocationFallback(t *testing.T) {
	// The generator only ever offers a body cell.
	gen := CellGeneratorFunc(func() Position { return Pos(6, 6) })
	e := mustNew(t, smallConfig(), gen,
		WithHead(Pos(6, 6)), WithTarget(Pos(6, 5)), WithHeading(HeadingLeft))

	if state := e.Tick(); state != StateRunning {
		t.Fatalf("Tick() = %v, expected running", state)
	}
	if slices.Contains(e.Body(), e.Target()) {
		t.Errorf("target %v is on the body", e.Target())
	}
	if e.Board().Get(e.Target()) != CellTarget {
		t.Errorf("cell %v = %v, expected target", e.Target(), e.Board().Get(e.Target()))
	}
}

func TestTickMovesWithoutGrowth(t *testing.T) {
	e := mustNew(t, smallConfig(), nil,
		WithHead(Pos(5, 7)), WithTarget(Pos(9, 9)), WithHeading(HeadingLeft))

	e.Tick()

	if e.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", e.Len())
	}
	if e.Head() != Pos(5, 6) {
		t.Errorf("Head() = %v, expected (5,6)", e.Head())
	}
	if got := e.Board().Get(Pos(5, 7)); got != CellEmpty {
		t.Errorf("vacated cell (5,7) = %v, expected empty", got)
	}
	if got := e.Board().Get(Pos(5, 6)); got != CellOccupied {
		t.Errorf("cell (5,6) = %v, expected occupied", got)
	}
	if e.Target() != Pos(9, 9) {
		t.Errorf("Target() = %v, expected unchanged (9,9)", e.Target())
	}
}

func TestHeadingAxes(t *testing.T) {
	tests := []struct {
		heading  Heading
		expected Position
	}{
		{HeadingUp, Pos(6, 5)},
		{HeadingDown, Pos(4, 5)},
		{HeadingLeft, Pos(5, 4)},
		{HeadingRight, Pos(5, 6)},
	}

	for _, tc := range tests {
		t.Run(tc.heading.String(), func(t *testing.T) {
			e := mustNew(t, smallConfig(), nil,
				WithHead(Pos(5, 5)), WithTarget(Pos(9, 9)), WithHeading(tc.heading))
			e.Tick()
			if e.Head() != tc.expected {
				t.Errorf("Head() = %v, expected %v", e.Head(), tc.expected)
			}
		})
	}
}

// growLine eats three targets moving right from (5,2), leaving a body of 4.
func growLine(t *testing.T) *Engine {
	t.Helper()
	cfg := Config{Rows: 20, Columns: 20, StartMargin: 6}
	gen := Sequence(Pos(5, 4), Pos(5, 5), Pos(10, 10))
	e := mustNew(t, cfg, gen,
		WithHead(Pos(5, 2)), WithTarget(Pos(5, 3)), WithHeading(HeadingRight))
	for range 3 {
		e.Tick()
	}
	if e.Len() != 4 {
		t.Fatalf("Len() = %d, expected 4 after eating three targets", e.Len())
	}
	return e
}

func TestSelfCollision(t *testing.T) {
	e := growLine(t)

	e.ChangeDirection(HeadingUp)
	e.Tick()
	e.ChangeDirection(HeadingLeft)
	e.Tick()

	before := e.Body()
	e.ChangeDirection(HeadingDown)
	state := e.Tick()

	if state != StateTerminated {
		t.Fatalf("Tick() = %v, expected terminated", state)
	}
	if e.Outcome() != OutcomeCollision {
		t.Errorf("Outcome() = %v, expected collision", e.Outcome())
	}
	if !slices.Equal(e.Body(), before) {
		t.Errorf("Body() = %v, expected unchanged %v", e.Body(), before)
	}
	for _, p := range before {
		if got := e.Board().Get(p); got != CellOccupied {
			t.Errorf("body cell %v = %v, expected occupied", p, got)
		}
	}
}

func TestBoundaryCollision(t *testing.T) {
	tests := []struct {
		name    string
		head    Position
		heading Heading
	}{
		{"left edge", Pos(5, 0), HeadingLeft},
		{"right edge", Pos(5, 11), HeadingRight},
		{"bottom edge moving down", Pos(0, 5), HeadingDown},
		{"top edge moving up", Pos(11, 5), HeadingUp},
		{"row zero moving up", Pos(0, 5), HeadingUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := mustNew(t, smallConfig(), nil,
				WithHead(tc.head), WithTarget(Pos(6, 6)), WithHeading(tc.heading))

			if state := e.Tick(); state != StateTerminated {
				t.Fatalf("Tick() = %v, expected terminated", state)
			}
			if e.Outcome() != OutcomeCollision {
				t.Errorf("Outcome() = %v, expected collision", e.Outcome())
			}
			if e.Head() != tc.head {
				t.Errorf("Head() = %v, expected unchanged %v", e.Head(), tc.head)
			}
		})
	}
}

func TestCollisionPaintsBorder(t *testing.T) {
	e := mustNew(t, smallConfig(), nil,
		WithHead(Pos(5, 0)), WithTarget(Pos(6, 6)), WithHeading(HeadingLeft))
	e.Tick()

	board := e.Board()
	for row := range board.Rows() {
		for col := range board.Columns() {
			p := Pos(row, col)
			onBorder := row == 0 || col == 0 || row == board.Rows()-1 || col == board.Columns()-1
			got := board.Get(p)
			if onBorder && got != CellGameOver {
				t.Errorf("border cell %v = %v, expected game_over", p, got)
			}
			if !onBorder && got.IsMarker() {
				t.Errorf("inner cell %v = %v, expected no marker", p, got)
			}
		}
	}
	if board.Get(Pos(6, 6)) != CellTarget {
		t.Errorf("inner target cell = %v, expected target", board.Get(Pos(6, 6)))
	}
}

func TestBoardFull(t *testing.T) {
	cfg := Config{Rows: 2, Columns: 2, StartMargin: 1}
	e := mustNew(t, cfg, Sequence(Pos(0, 1)),
		WithHead(Pos(1, 0)), WithTarget(Pos(1, 1)), WithHeading(HeadingRight))

	if state := e.Tick(); state != StateRunning {
		t.Fatalf("first Tick() = %v, expected running", state)
	}
	if e.Target() != Pos(0, 1) {
		t.Fatalf("Target() = %v, expected (0,1)", e.Target())
	}

	e.ChangeDirection(HeadingDown)
	if state := e.Tick(); state != StateTerminated {
		t.Fatalf("second Tick() = %v, expected terminated", state)
	}
	if e.Outcome() != OutcomeFull {
		t.Errorf("Outcome() = %v, expected full", e.Outcome())
	}
	if e.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", e.Len())
	}
	if e.Target() != Pos(0, 1) {
		t.Errorf("Target() = %v, expected no relocation", e.Target())
	}
	if n := e.Board().(*Board).Count(CellExcellent); n != 4 {
		t.Errorf("excellent markers = %d, expected 4", n)
	}
}

func TestTickAfterTerminationIsNoop(t *testing.T) {
	e := growLine(t)
	e.ChangeDirection(HeadingUp)
	e.Tick()
	e.ChangeDirection(HeadingLeft)
	e.Tick()
	e.ChangeDirection(HeadingDown)
	e.Tick()
	if !e.Terminated() {
		t.Fatal("expected engine to be terminated")
	}

	snap := e.Snapshot()
	body := e.Body()
	board := e.Board().(*Board).String()

	for _, h := range Headings {
		e.ChangeDirection(h)
		if state := e.Tick(); state != StateTerminated {
			t.Errorf("Tick() = %v, expected terminated", state)
		}
	}

	if e.Snapshot() != snap {
		t.Errorf("Snapshot() = %+v, expected %+v", e.Snapshot(), snap)
	}
	if !slices.Equal(e.Body(), body) {
		t.Errorf("Body() = %v, expected %v", e.Body(), body)
	}
	if got := e.Board().(*Board).String(); got != board {
		t.Errorf("board changed after termination:\n%s\nexpected:\n%s", got, board)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		opts     []Option
		expected error
	}{
		{"zero rows", Config{Rows: 0, Columns: 12, StartMargin: 6}, nil, ErrInvalidConfig},
		{"negative columns", Config{Rows: 12, Columns: -1, StartMargin: 6}, nil, ErrInvalidConfig},
		{"zero margin", Config{Rows: 12, Columns: 12, StartMargin: 0}, nil, ErrInvalidConfig},
		{"margin too wide", Config{Rows: 10, Columns: 12, StartMargin: 6}, nil, ErrInvalidConfig},
		{"head off board", smallConfig(), []Option{WithHead(Pos(12, 0))}, ErrInvalidPlacement},
		{"target off board", smallConfig(), []Option{WithHead(Pos(5, 5)), WithTarget(Pos(-1, 3))}, ErrInvalidPlacement},
		{"target on head", smallConfig(), []Option{WithHead(Pos(5, 5)), WithTarget(Pos(5, 5))}, ErrInvalidPlacement},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cfg, nil, tc.opts...)
			if !errors.Is(err, tc.expected) {
				t.Errorf("New() error = %v, expected %v", err, tc.expected)
			}
		})
	}
}

func TestNewDrawsTargetOffHead(t *testing.T) {
	e := mustNew(t, smallConfig(), Sequence(Pos(6, 6), Pos(6, 6), Pos(7, 7)))

	if e.Head() != Pos(6, 6) {
		t.Errorf("Head() = %v, expected (6,6)", e.Head())
	}
	if e.Target() != Pos(7, 7) {
		t.Errorf("Target() = %v, expected (7,7)", e.Target())
	}
	if e.State() != StateRunning || e.Outcome() != OutcomeNone {
		t.Errorf("State() = %v/%v, expected running/none", e.State(), e.Outcome())
	}
}

func TestBodyIsACopy(t *testing.T) {
	e := mustNew(t, smallConfig(), nil,
		WithHead(Pos(5, 7)), WithTarget(Pos(5, 6)), WithHeading(HeadingLeft))
	e.Tick()

	body := e.Body()
	body[0] = Pos(0, 0)

	if e.Head() != Pos(5, 6) {
		t.Errorf("Head() = %v after mutating a copy, expected (5,6)", e.Head())
	}
}

func TestDeterminism(t *testing.T) {
	cfg := Config{Rows: 20, Columns: 20, StartMargin: 6, Seed: 12345}

	e1 := mustNew(t, cfg, nil)
	e2 := mustNew(t, cfg, nil)

	turns := map[int]Heading{3: HeadingUp, 6: HeadingLeft, 9: HeadingDown, 12: HeadingRight}
	for i := range 40 {
		if h, ok := turns[i]; ok {
			e1.ChangeDirection(h)
			e2.ChangeDirection(h)
		}
		e1.Tick()
		e2.Tick()
	}

	if e1.Snapshot() != e2.Snapshot() {
		t.Errorf("Snapshot mismatch: %+v vs %+v", e1.Snapshot(), e2.Snapshot())
	}
}
