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

// ParseDifficultyPreset validates a preset name. The empty string means normal.
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// IsFixedPreset returns true if the preset disables per-level shrinking.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyEyeSpyPreset modifies the timing based on a difficulty preset.
//
//	easy   - 2s longer memorize window, 30s more on the countdown
//	normal - configuration as loaded
//	hard   - 2s shorter memorize window, 20s less on the countdown (never below the minimums)
//	fixed  - every level uses the base durations
func ApplyEyeSpyPreset(cfg *EyeSpyConfig, preset DifficultyPreset) {
	t := &cfg.Timing
	switch preset {
	case DifficultyEasy:
		t.MemorizeBaseMS += 2000
		t.CountdownBaseS += 30
	case DifficultyHard:
		t.MemorizeBaseMS = max(t.MemorizeBaseMS-2000, t.MemorizeMinMS)
		t.CountdownBaseS = max(t.CountdownBaseS-20, t.CountdownMinS)
	}
	if IsFixedPreset(preset) {
		t.MemorizeStepMS = 0
		t.CountdownStepS = 0
	}
}
