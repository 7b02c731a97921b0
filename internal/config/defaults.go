package config

import (
	_ "embed"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
func Default() File {
	return FromGameConfig(core.DefaultGameConfig())
}
