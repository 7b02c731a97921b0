package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/platform/tui"
	"github.com/vovakirdan/snake-arcade/internal/registry"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

var playOverrides overrides

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the given board, or a custom board built from snake.yaml
when no board is named.

Configuration layers, later ones win:
  snake.yaml   - --config, ~/.snake/snake.yaml, ./configs/snake.yaml, built-in
  .env         - SNAKE_WIDTH, SNAKE_HEIGHT, SNAKE_TICK_INTERVAL, SNAKE_FOOD_SIZE
  flags        - --width, --height, --tick, --food-size
  difficulty   - easy slows the tick down, hard speeds it up

Controls:
  Arrows/WASD  - Steer
  Enter/R      - Start or restart
  P/Space      - Pause
  Ctrl+S       - Save a screenshot
  Esc          - Pause, or leave when paused
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play classic
  snake play feast --difficulty hard
  snake play --width 30 --height 15 --tick 80ms
  snake play --config ./my-snake.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playOverrides.register(playCmd.Flags())
}

func runPlay(cmd *cobra.Command, args []string) error {
	id := ""
	if len(args) > 0 {
		id = args[0]
	}

	if id != "" && id != CustomVariantID && !registry.Exists(id) {
		return unknownVariant(id)
	}

	v, _, err := resolveVariant(id)
	if err != nil {
		return err
	}
	playOverrides.applyTo(cmd.Flags(), &v)
	if err := v.Config.Validate(); err != nil {
		return err
	}

	preset, err := difficulty()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closer.Close()

	// Continue without storage - the game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(v, tui.Options{
		Store:      store,
		Logger:     logger,
		Screen:     runtimeConfig(),
		Difficulty: preset,
	})
}
