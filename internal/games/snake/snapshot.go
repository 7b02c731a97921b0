package snake

// Snapshot is an immutable copy of a session for renderers and tests.
type Snapshot struct {
	State     State
	Outcome   Outcome
	Body      []Point // tail first, head last
	Direction Direction
	Food      Food
	Width     int
	Height    int
	Score     int
	Eaten     int
	Ticks     uint64
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:     s.state,
		Outcome:   s.outcome,
		Body:      s.snake.Body(),
		Direction: s.snake.Direction(),
		Food:      s.food,
		Width:     s.cfg.Width,
		Height:    s.cfg.Height,
		Score:     s.Score(),
		Eaten:     s.eaten,
		Ticks:     s.ticks,
	}
}

// Head returns the last body cell.
func (s Snapshot) Head() Point {
	return s.Body[len(s.Body)-1]
}
