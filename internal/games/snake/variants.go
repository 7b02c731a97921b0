package snake

import (
	"time"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/registry"
)

func init() {
	registry.Register(registry.Variant{
		ID:          "classic",
		Title:       "Classic",
		Description: "10x10 board, brisk pace",
		Config:      core.DefaultGameConfig(),
	})
	registry.Register(registry.Variant{
		ID:          "relaxed",
		Title:       "Relaxed",
		Description: "10x10 board, one step per second",
		Config:      variant(10, 10, time.Second, 1),
	})
	registry.Register(registry.Variant{
		ID:          "wide",
		Title:       "Wide",
		Description: "20x12 board, faster",
		Config:      variant(20, 12, 120*time.Millisecond, 1),
	})
	registry.Register(registry.Variant{
		ID:          "feast",
		Title:       "Feast",
		Description: "16x16 board with 2x2 food",
		Config:      variant(16, 16, 150*time.Millisecond, 2),
	})
	registry.Register(registry.Variant{
		ID:          "giant-food",
		Title:       "Giant Food",
		Description: "20x20 board with 5x5 food",
		Config:      variant(20, 20, 150*time.Millisecond, 5),
	})
}

func variant(w, h int, tick time.Duration, foodSize int) core.GameConfig {
	cfg := core.DefaultGameConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.TickInterval = tick
	cfg.FoodSize = foodSize
	return cfg
}
