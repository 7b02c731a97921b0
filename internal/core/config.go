package core

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a GameConfig cannot describe a playable board.
var ErrInvalidConfig = errors.New("invalid game config")

// MinGridSize is the smallest accepted grid dimension in cells.
const MinGridSize = 4

// GameConfig describes one game: the grid, the tick rate and the food footprint.
// It is passed explicitly to every session; nothing here is global.
type GameConfig struct {
	Width        int           // Grid width in cells
	Height       int           // Grid height in cells
	CellSize     int           // Cell size in pixels, rendering only
	TickInterval time.Duration // Time between simulation steps
	FoodSize     int           // Food footprint is FoodSize×FoodSize cells
	Seed         int64         // RNG seed; 0 lets the platform pick one
}

// DefaultGameConfig returns the classic 10×10 board at 150ms per tick.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Width:        10,
		Height:       10,
		CellSize:     20,
		TickInterval: 150 * time.Millisecond,
		FoodSize:     1,
	}
}

// Validate reports the first problem that would make the board unplayable.
// All errors wrap ErrInvalidConfig.
func (c GameConfig) Validate() error {
	if c.Width < MinGridSize {
		return fmt.Errorf("%w: width %d must be greater than %d", ErrInvalidConfig, c.Width, MinGridSize-1)
	}
	if c.Height < MinGridSize {
		return fmt.Errorf("%w: height %d must be greater than %d", ErrInvalidConfig, c.Height, MinGridSize-1)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %s must be positive", ErrInvalidConfig, c.TickInterval)
	}
	if c.FoodSize < 1 {
		return fmt.Errorf("%w: food size %d must be at least 1", ErrInvalidConfig, c.FoodSize)
	}
	// The footprint must leave at least one row and column free for the snake.
	if c.FoodSize >= min(c.Width, c.Height) {
		return fmt.Errorf("%w: food size %d does not fit a %dx%d grid", ErrInvalidConfig, c.FoodSize, c.Width, c.Height)
	}
	if c.CellSize < 0 {
		return fmt.Errorf("%w: cell size %d is negative", ErrInvalidConfig, c.CellSize)
	}
	return nil
}

// Cells returns the number of cells on the board.
func (c GameConfig) Cells() int {
	return c.Width * c.Height
}

// RuntimeConfig carries terminal-level settings from the platform to the game view.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters
	ScreenH int   // Terminal height in characters
	Seed    int64 // RNG seed override; 0 means time-based
}

// DefaultRuntimeConfig returns an 80×24 terminal with a time-based seed.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
