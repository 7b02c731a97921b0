package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/games/snake"
	"github.com/vovakirdan/snake-arcade/internal/platform/tui"
	"github.com/vovakirdan/snake-arcade/internal/registry"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores",
	Long: `Display the top scores for a board, or a summary of every board
played when none is named. Custom boards from snake.yaml are stored as
"custom".

Examples:
  snake scores
  snake scores classic
  snake scores feast --limit 20
  snake scores classic --clear
  snake scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the board")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in the interactive scoreboard")
}

func runScores(_ *cobra.Command, args []string) error {
	id := ""
	if len(args) > 0 {
		id = args[0]
		if id != CustomVariantID && !registry.Exists(id) {
			return unknownVariant(id)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresTUI:
		rt := runtimeConfig()
		return tui.RunScoreboard(store, id, rt.ScreenW, rt.ScreenH)

	case flagScoresClear:
		if id == "" {
			return fmt.Errorf("--clear needs a board")
		}
		n, err := store.ClearScores(id)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d scores for %s.\n", n, id)
		return nil

	case id == "":
		return printSummary(store)
	}

	return printScores(store, id)
}

func printScores(store *storage.Store, id string) error {
	scores, err := store.TopScores(id, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", variantTitle(id))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", id)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-14s  %s\n", "Rank", "Score", "Length", "Outcome", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-14s  %s\n", "----", "-----", "------", "-------", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-6d  %-6d  %-14s  %s\n",
			i+1, e.Score, e.Length, e.Outcome, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.GetVariantStats(id, snake.OutcomeWin.String())
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Games: %d  Wins: %d  Best: %d  Average: %.1f\n",
		stats.GamesCount, stats.Wins, stats.HighScore, stats.AvgScore)
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.GetAllVariantStats(snake.OutcomeWin.String())
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Println("No games played yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-12s  %-5s  %-4s  %-5s  %-7s  %s\n", "Board", "Games", "Wins", "Best", "Average", "Last played")
	fmt.Printf("  %-12s  %-5s  %-4s  %-5s  %-7s  %s\n", "-----", "-----", "----", "----", "-------", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-12s  %-5d  %-4d  %-5d  %-7.1f  %s\n",
			id, s.GamesCount, s.Wins, s.HighScore, s.AvgScore, s.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func variantTitle(id string) string {
	if v, err := registry.Get(id); err == nil {
		return v.Title
	}
	return id
}
