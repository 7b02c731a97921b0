package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestEmbeddedDefaultMatchesCode(t *testing.T) {
	cfg, err := parse(defaultSnakeYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)

	writeFile(t, filepath.Join("configs", "snake.yaml"), "board:\n  width: 12\n")
	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Width != 12 || source != filepath.Join("configs", "snake.yaml") {
		t.Errorf("local config: width=%d source=%q", cfg.Board.Width, source)
	}

	userPath := filepath.Join(home, ".snake", "snake.yaml")
	writeFile(t, userPath, "board:\n  width: 14\n")
	cfg, source, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Width != 14 || source != userPath {
		t.Errorf("user config should win: width=%d source=%q", cfg.Board.Width, source)
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "board:\n  width: 16\n")
	cfg, source, err = Load(custom)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Width != 16 || source != custom {
		t.Errorf("custom path should win: width=%d source=%q", cfg.Board.Width, source)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "snake.yaml")
	writeFile(t, path, "board:\n  width: 20\ntiming:\n  tick_interval: 80ms\n")

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	gc := cfg.ToGameConfig()
	if gc.Width != 20 || gc.Height != 10 || gc.TickInterval != 80*time.Millisecond || gc.FoodSize != 1 {
		t.Errorf("ToGameConfig() = %+v", gc)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "board: [not, a, map\n")
	if _, _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestValidate(t *testing.T) {
	f := Default()
	if err := f.Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}

	f.Board.Height = 3
	if err := f.Validate(); !errors.Is(err, core.ErrInvalidConfig) {
		t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvWidth, "18")
	t.Setenv(EnvHeight, "")
	t.Setenv(EnvTickInterval, "90ms")
	t.Setenv(EnvFoodSize, "2")

	f := Default()
	if err := ApplyEnv(&f, filepath.Join(t.TempDir(), "none.env")); err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}

	if f.Board.Width != 18 || f.Board.Height != 10 || f.Timing.TickInterval != 90*time.Millisecond || f.Food.Size != 2 {
		t.Errorf("ApplyEnv() = %+v", f)
	}
}

func TestApplyEnvFile(t *testing.T) {
	// Register cleanup for the variable, then clear it so the file can set it.
	t.Setenv(EnvWidth, "unset")
	os.Unsetenv(EnvWidth)
	t.Setenv(EnvHeight, "11")

	envFile := filepath.Join(t.TempDir(), ".env")
	writeFile(t, envFile, "SNAKE_WIDTH=24\nSNAKE_HEIGHT=30\n")

	f := Default()
	if err := ApplyEnv(&f, envFile); err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}
	if f.Board.Width != 24 {
		t.Errorf("width = %d, expected 24 from the env file", f.Board.Width)
	}
	if f.Board.Height != 11 {
		t.Errorf("height = %d, process environment should win over the file", f.Board.Height)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvWidth, "wide"},
		{EnvFoodSize, "1.5"},
		{EnvTickInterval, "fast"},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			f := Default()
			err := ApplyEnv(&f, filepath.Join(t.TempDir(), "none.env"))
			if !errors.Is(err, core.ErrInvalidConfig) {
				t.Errorf("ApplyEnv() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	out := string(data)
	for _, want := range []string{"width: 10", "cell_size: 20", "tick_interval: 150ms", "size: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("Marshal() output missing %q:\n%s", want, out)
		}
	}

	back, err := parse(data)
	if err != nil || back != Default() {
		t.Errorf("parse(Marshal()) = %+v, %v", back, err)
	}
}
