package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/vovakirdan/snake-arcade/internal/core"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the loaded file.
const (
	EnvWidth        = "SNAKE_WIDTH"
	EnvHeight       = "SNAKE_HEIGHT"
	EnvTickInterval = "SNAKE_TICK_INTERVAL"
	EnvFoodSize     = "SNAKE_FOOD_SIZE"
)

// SourceEmbedded is reported by Load when no file was found on disk.
const SourceEmbedded = "embedded"

// Load loads the snake configuration and reports where it came from.
// Search order: customPath -> ~/.snake/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (File, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return File{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return File{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{UserPath("snake.yaml"), filepath.Join("configs", "snake.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSnakeYAML)
	if err != nil {
		return Default(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

func parse(data []byte) (File, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return File{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(f File) ([]byte, error) {
	return yaml.Marshal(f)
}

// UserPath returns the path of a file in the user's ~/.snake directory,
// or empty if home is unavailable.
func UserPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}

// ApplyEnv loads envFile if it exists (variables already set in the process
// win) and applies the SNAKE_* overrides to f. An empty envFile means ".env".
func ApplyEnv(f *File, envFile string) error {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	if err := envInt(EnvWidth, &f.Board.Width); err != nil {
		return err
	}
	if err := envInt(EnvHeight, &f.Board.Height); err != nil {
		return err
	}
	if err := envInt(EnvFoodSize, &f.Food.Size); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvTickInterval); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", core.ErrInvalidConfig, EnvTickInterval, v, err)
		}
		f.Timing.TickInterval = d
	}
	return nil
}

func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not an integer", core.ErrInvalidConfig, key, v)
	}
	*dst = n
	return nil
}
