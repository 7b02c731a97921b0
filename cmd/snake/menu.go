package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/platform/tui"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a board picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a board, Tab for the
scoreboard. Leaving a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select board
  Tab          - High scores
  Q            - Quit

Examples:
  snake menu
  snake menu --difficulty easy
  snake menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := difficulty()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(tui.Options{
		Store:      store,
		Logger:     logger,
		Screen:     runtimeConfig(),
		Difficulty: preset,
	})
}
