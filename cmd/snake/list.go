package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available boards",
	Long:  `Shows every registered board with its grid, speed and food size.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-6s  %-4s  %s\n", maxIDLen, "ID", "Grid", "Tick", "Food", "Title")
	fmt.Printf("  %-*s  %-7s  %-6s  %-4s  %s\n", maxIDLen, "--", "----", "----", "----", "-----")

	for _, v := range variants {
		cfg := v.Config
		fmt.Printf("  %-*s  %-7s  %-6s  %-4s  %s\n",
			maxIDLen, v.ID,
			fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
			cfg.TickInterval,
			fmt.Sprintf("%dx%d", cfg.FoodSize, cfg.FoodSize),
			v.Title,
		)
	}

	fmt.Println()
	fmt.Println("Run 'snake play <id>' to play a board.")
}
