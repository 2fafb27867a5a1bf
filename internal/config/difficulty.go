package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// SpeedIncrementForPreset returns how much each catch speeds up the coin.
func SpeedIncrementForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.15
	case DifficultyHard:
		return 0.4
	case DifficultyFixed:
		return 0
	default:
		return 0.25
	}
}

// ParseDifficultyPreset validates a preset name. An empty name means "keep the config as loaded".
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyCatchCoinPreset modifies the config based on a difficulty preset.
// Only the speed-up per catch changes; start speed, cap and lives stay as configured.
func ApplyCatchCoinPreset(cfg *CatchCoinConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Speed.Increment = SpeedIncrementForPreset(preset)
}
