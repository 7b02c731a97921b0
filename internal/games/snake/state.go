package snake

// State is the lifecycle state of a session.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome says why a game ended. It is OutcomeNone until StateGameOver.
type Outcome int

const (
	OutcomeNone          Outcome = iota
	OutcomeWin                   // the snake filled the board
	OutcomeHitSelf               // head ran into the body
	OutcomeHitWall               // head left the grid
	OutcomeFoodExhausted         // no free position for new food
)

// IsWin reports whether the outcome is a win.
func (o Outcome) IsWin() bool {
	return o == OutcomeWin
}

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWin:
		return "win"
	case OutcomeHitSelf:
		return "hit_self"
	case OutcomeHitWall:
		return "hit_wall"
	case OutcomeFoodExhausted:
		return "food_exhausted"
	default:
		return "unknown"
	}
}

// ParseOutcome is the inverse of Outcome.String. Unknown names map to OutcomeNone.
func ParseOutcome(s string) Outcome {
	for _, o := range []Outcome{OutcomeWin, OutcomeHitSelf, OutcomeHitWall, OutcomeFoodExhausted} {
		if o.String() == s {
			return o
		}
	}
	return OutcomeNone
}
