// snake is a terminal snake game with a variant menu, persistent high scores
// and an SSH server for remote play.
//
// Usage:
//
//	snake list              - List available boards
//	snake play [variant]    - Play a board (default: the loaded config)
//	snake menu              - Pick boards interactively
//	snake serve             - Start SSH server for remote play
//	snake scores [variant]  - Show high scores
//	snake config            - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set database path (default: ~/.snake/scores.db)
//	--config <path>      - Load a custom snake.yaml
//	--difficulty <name>  - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/snake-arcade/internal/games/snake"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagEnvFile    string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a terminal version of the classic grid game. Steer the snake,
eat the food and fill the board without hitting a wall or yourself.

Available commands:
  list     - Show all boards
  play     - Play a board directly
  menu     - Interactive board picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  snake play
  snake play feast --difficulty hard
  snake menu
  snake serve --ssh :2222
  snake scores classic`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake.yaml")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Dotenv file with SNAKE_* overrides")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: ~/.snake/snake.log, stderr for serve)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
