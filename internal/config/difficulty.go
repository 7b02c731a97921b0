package config

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// MinTickInterval is the fastest tick a preset can produce.
const MinTickInterval = 30 * time.Millisecond

// Presets lists the accepted preset names in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (expected one of %v)", core.ErrInvalidConfig, s, Presets)
	}
}

// TickScale returns the tick interval multiplier for a preset.
func TickScale(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.6
	default:
		return 1.0
	}
}

// ApplyPreset scales the tick interval of cfg. Grid and food are unchanged.
func ApplyPreset(cfg *core.GameConfig, preset DifficultyPreset) {
	if preset == DifficultyNormal || preset == "" {
		return
	}
	scaled := time.Duration(math.Round(float64(cfg.TickInterval) * TickScale(preset)))
	cfg.TickInterval = max(scaled, MinTickInterval)
}
