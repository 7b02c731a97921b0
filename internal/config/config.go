// Package config provides YAML-based game configuration loading,
// environment overrides and difficulty presets for the snake game.
package config

import (
	"time"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// File is the on-disk shape of snake.yaml.
type File struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Food   FoodConfig   `yaml:"food"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// TimingConfig defines the simulation rate.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// FoodConfig defines the food footprint.
type FoodConfig struct {
	Size int `yaml:"size"`
}

// FromGameConfig converts a game config into its file representation.
func FromGameConfig(cfg core.GameConfig) File {
	return File{
		Board: BoardConfig{
			Width:    cfg.Width,
			Height:   cfg.Height,
			CellSize: cfg.CellSize,
		},
		Timing: TimingConfig{TickInterval: cfg.TickInterval},
		Food:   FoodConfig{Size: cfg.FoodSize},
	}
}

// ToGameConfig converts the file into a game config. The result is not validated.
func (f File) ToGameConfig() core.GameConfig {
	return core.GameConfig{
		Width:        f.Board.Width,
		Height:       f.Board.Height,
		CellSize:     f.Board.CellSize,
		TickInterval: f.Timing.TickInterval,
		FoodSize:     f.Food.Size,
	}
}

// Validate checks the file against the game config rules.
func (f File) Validate() error {
	return f.ToGameConfig().Validate()
}
