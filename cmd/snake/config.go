package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/registry"
)

var configOverrides overrides

var configCmd = &cobra.Command{
	Use:   "config [board]",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use as snake.yaml, after every
layer and the difficulty preset are applied. Redirect the output to
~/.snake/snake.yaml to start a custom config.

Examples:
  snake config
  snake config wide --difficulty hard
  SNAKE_WIDTH=30 snake config > ~/.snake/snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configOverrides.register(configCmd.Flags())
}

func runConfig(cmd *cobra.Command, args []string) error {
	id := ""
	if len(args) > 0 {
		id = args[0]
		if id != CustomVariantID && !registry.Exists(id) {
			return unknownVariant(id)
		}
	}

	v, source, err := resolveVariant(id)
	if err != nil {
		return err
	}
	configOverrides.applyTo(cmd.Flags(), &v)

	preset, err := difficulty()
	if err != nil {
		return err
	}
	config.ApplyPreset(&v.Config, preset)

	if err := v.Config.Validate(); err != nil {
		return err
	}

	out, err := config.Marshal(config.FromGameConfig(v.Config))
	if err != nil {
		return err
	}

	fmt.Printf("# board: %s (%s), difficulty: %s\n", v.ID, source, preset)
	fmt.Print(string(out))
	return nil
}
