package snake

// Snapshot captures the engine state for determinism checks and the HUD.
type Snapshot struct {
	Tick    uint64
	Len     int
	Head    Position
	Target  Position
	Heading Heading
	State   State
	Outcome Outcome
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:    e.ticks,
		Len:     e.body.Len(),
		Head:    e.body.Front(),
		Target:  e.target,
		Heading: e.heading,
		State:   e.state,
		Outcome: e.outcome,
	}
}
