package config

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		base     time.Duration
		expected time.Duration
	}{
		{DifficultyEasy, 150 * time.Millisecond, 225 * time.Millisecond},
		{DifficultyNormal, 150 * time.Millisecond, 150 * time.Millisecond},
		{DifficultyHard, 150 * time.Millisecond, 90 * time.Millisecond},
		{DifficultyHard, 40 * time.Millisecond, MinTickInterval},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := core.DefaultGameConfig()
			cfg.TickInterval = tc.base
			ApplyPreset(&cfg, tc.preset)

			if cfg.TickInterval != tc.expected {
				t.Errorf("TickInterval = %v, expected %v", cfg.TickInterval, tc.expected)
			}
			if cfg.Width != 10 || cfg.FoodSize != 1 {
				t.Error("presets must not change the board")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard"} {
		if p, err := ParsePreset(name); err != nil || string(p) != name {
			t.Errorf("ParsePreset(%q) = %q, %v", name, p, err)
		}
	}

	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v, expected normal", p, err)
	}

	if _, err := ParsePreset("nightmare"); !errors.Is(err, core.ErrInvalidConfig) {
		t.Errorf("ParsePreset(nightmare) = %v, expected ErrInvalidConfig", err)
	}
}
