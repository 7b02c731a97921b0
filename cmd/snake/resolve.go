package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/registry"
)

// CustomVariantID names games built from snake.yaml rather than a registered board.
const CustomVariantID = "custom"

// overrides are the per-game flags shared by play and config.
type overrides struct {
	width    int
	height   int
	tick     time.Duration
	foodSize int
}

func (o *overrides) register(fs *pflag.FlagSet) {
	fs.IntVar(&o.width, "width", 0, "Grid width in cells")
	fs.IntVar(&o.height, "height", 0, "Grid height in cells")
	fs.DurationVar(&o.tick, "tick", 0, "Time between steps (e.g. 120ms)")
	fs.IntVar(&o.foodSize, "food-size", 0, "Food footprint in cells per side")
}

// apply copies the flags that were set on the command line into cfg.
func (o overrides) apply(fs *pflag.FlagSet, cfg *core.GameConfig) {
	if fs.Changed("width") {
		cfg.Width = o.width
	}
	if fs.Changed("height") {
		cfg.Height = o.height
	}
	if fs.Changed("tick") {
		cfg.TickInterval = o.tick
	}
	if fs.Changed("food-size") {
		cfg.FoodSize = o.foodSize
	}
}

// applyTo applies the flags to v. A registered board whose config changes
// becomes a custom one so its scores stay off that board's leaderboard.
func (o overrides) applyTo(fs *pflag.FlagSet, v *registry.Variant) {
	base := v.Config
	o.apply(fs, &v.Config)
	if v.ID == CustomVariantID || v.Config == base {
		return
	}
	v.Description = fmt.Sprintf("%s with %dx%d grid, %s tick, %dx%d food",
		v.Title, v.Config.Width, v.Config.Height, v.Config.TickInterval, v.Config.FoodSize, v.Config.FoodSize)
	v.ID = CustomVariantID
	v.Title = "Custom"
}

// resolveVariant returns the variant to play. An empty id or "custom" builds
// one from the config layers: file, then .env and SNAKE_* variables.
// Flag overrides and validation are left to the caller.
func resolveVariant(id string) (registry.Variant, string, error) {
	if id != "" && id != CustomVariantID {
		v, err := registry.Get(id)
		if err != nil {
			return registry.Variant{}, "", err
		}
		return v, "registry", nil
	}

	f, source, err := config.Load(flagConfig)
	if err != nil {
		return registry.Variant{}, "", err
	}
	if err := config.ApplyEnv(&f, flagEnvFile); err != nil {
		return registry.Variant{}, "", err
	}

	return registry.Variant{
		ID:          CustomVariantID,
		Title:       "Custom",
		Description: "Board from " + source,
		Config:      f.ToGameConfig(),
	}, source, nil
}

// difficulty parses the --difficulty flag.
func difficulty() (config.DifficultyPreset, error) {
	return config.ParsePreset(flagDifficulty)
}

// runtimeConfig reads the terminal size, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultRuntimeConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

func unknownVariant(id string) error {
	return fmt.Errorf("unknown board %q (run 'snake list' to see available boards)", id)
}
