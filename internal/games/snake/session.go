// Package snake implements the grid snake simulation: the snake body and its
// movement rule, food placement, collision checks and the game lifecycle.
// It performs no I/O; renderers consume Snapshots and input sources call the
// Session commands between ticks.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// TickResult describes what a single Tick did.
type TickResult struct {
	Moved   bool    // the snake advanced this tick
	Ate     bool    // the head reached food; growth applies next tick
	Outcome Outcome // set when this tick ended the game
}

// Session owns one snake, one food and the lifecycle state of a game.
// It is not safe for concurrent use; a single event loop drives it.
type Session struct {
	cfg     core.GameConfig
	rng     *rand.Rand
	snake   *Snake
	food    Food
	state   State
	outcome Outcome
	ticks   uint64
	eaten   int
}

// NewSession validates cfg and returns a session in StateNotStarted with a
// canonical snake and food already laid out for display.
func NewSession(cfg core.GameConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}
	s := &Session{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		state: StateNotStarted,
	}
	//nolint:errcheck // Preview layout only; Start places food again.
	s.reset()
	return s, nil
}

// reset recreates the snake and food and clears per-game counters.
// On a failed placement the food is parked off the board.
func (s *Session) reset() error {
	s.snake = NewSnake()
	s.outcome = OutcomeNone
	s.ticks = 0
	s.eaten = 0

	food, err := PlaceFood(s.rng, s.snake.Body(), s.cfg.FoodSize, s.cfg.Width, s.cfg.Height)
	if err != nil {
		s.food = Food{Pos: Point{X: -1, Y: -1}, Size: s.cfg.FoodSize}
		return err
	}
	s.food = food
	return nil
}

// Start begins a new game from StateNotStarted or StateGameOver with a fresh
// snake and food. It is a no-op while a game is running or paused.
func (s *Session) Start() {
	switch s.state {
	case StateNotStarted, StateGameOver:
		if err := s.reset(); err != nil {
			s.finish(OutcomeFoodExhausted)
			return
		}
		s.state = StateRunning
	case StateRunning, StatePaused:
	}
}

// TogglePause switches between StateRunning and StatePaused.
func (s *Session) TogglePause() {
	switch s.state {
	case StateRunning:
		s.state = StatePaused
	case StatePaused:
		s.state = StateRunning
	case StateNotStarted, StateGameOver:
	}
}

// SetIntendedDirection latches d for the next tick when the game is running
// and d changes the axis of the last completed move. Later calls before the
// tick overwrite earlier ones. It reports whether d was accepted.
// Input while paused, before the start or after game over is dropped.
func (s *Session) SetIntendedDirection(d Direction) bool {
	if s.state != StateRunning {
		return false
	}
	if !Turnable(s.snake.Direction(), d) {
		return false
	}
	s.snake.intended = d
	return true
}

// Tick advances the game by one step. It is a no-op unless running.
// Checks run in a fixed order after the move: board full, self collision,
// bounds, then food.
func (s *Session) Tick() TickResult {
	if s.state != StateRunning {
		return TickResult{}
	}

	s.ticks++
	s.snake.Move(s.snake.intended)
	res := TickResult{Moved: true}
	head := s.snake.Head()

	switch {
	case s.snake.Len() >= s.cfg.Cells():
		res.Outcome = OutcomeWin
	case s.snake.headOnBody():
		res.Outcome = OutcomeHitSelf
	case !s.inBounds(head):
		res.Outcome = OutcomeHitWall
	}
	if res.Outcome != OutcomeNone {
		s.finish(res.Outcome)
		return res
	}

	if s.food.Covers(head) {
		s.snake.RequestGrowth()
		s.eaten++
		res.Ate = true

		food, err := PlaceFood(s.rng, s.snake.Body(), s.cfg.FoodSize, s.cfg.Width, s.cfg.Height)
		if err != nil {
			res.Outcome = OutcomeFoodExhausted
			s.finish(res.Outcome)
			return res
		}
		s.food = food
	}

	return res
}

func (s *Session) finish(o Outcome) {
	s.state = StateGameOver
	s.outcome = o
}

func (s *Session) inBounds(p Point) bool {
	return p.X >= 0 && p.X < s.cfg.Width && p.Y >= 0 && p.Y < s.cfg.Height
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Outcome returns why the game ended, or OutcomeNone while it has not.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Score is the number of cells grown beyond the initial length.
func (s *Session) Score() int {
	return s.snake.Len() - InitialLength
}

// Body returns a tail-to-head copy of the snake body.
func (s *Session) Body() []Point {
	return s.snake.Body()
}

// Direction returns the direction of the snake's last completed move.
func (s *Session) Direction() Direction {
	return s.snake.Direction()
}

// Intended returns the direction latched for the next tick.
func (s *Session) Intended() Direction {
	return s.snake.Intended()
}

// Food returns the current food.
func (s *Session) Food() Food {
	return s.food
}

// Config returns the configuration the session was built with.
func (s *Session) Config() core.GameConfig {
	return s.cfg
}

// Eaten returns how many times food was reached in the current game.
func (s *Session) Eaten() int {
	return s.eaten
}

// Ticks returns the number of steps taken in the current game.
func (s *Session) Ticks() uint64 {
	return s.ticks
}
