// Package config provides YAML-based game configuration loading and
// difficulty presets for EyeSpy.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/rebeccarafeek/ellehacks-eyespy/internal/core"
)

// distractorCount is how many non-target cards every level deals.
const distractorCount = 6

// EyeSpyConfig contains all configuration for the EyeSpy game.
type EyeSpyConfig struct {
	Palette PaletteConfig `yaml:"palette"`
	Timing  TimingConfig  `yaml:"timing"`
	Timer   TimerConfig   `yaml:"timer"`
}

// PaletteConfig lists the level colors (one level per color, in order) and the symbol pool.
type PaletteConfig struct {
	Colors  []string `yaml:"colors"`
	Symbols []string `yaml:"symbols"`
}

// TimingConfig defines the per-level durations.
// Memorize and countdown windows shrink by their step each level, down to their minimum.
type TimingConfig struct {
	MemorizeBaseMS    int `yaml:"memorize_base_ms"`
	MemorizeStepMS    int `yaml:"memorize_step_ms"`
	MemorizeMinMS     int `yaml:"memorize_min_ms"`
	CountdownBaseS    int `yaml:"countdown_base_s"`
	CountdownStepS    int `yaml:"countdown_step_s"`
	CountdownMinS     int `yaml:"countdown_min_s"`
	EvaluationDelayMS int `yaml:"evaluation_delay_ms"` // Pause after the third pick
	TransitionDelayMS int `yaml:"transition_delay_ms"` // Pause between levels
}

// TimerConfig toggles the countdown pressure layer.
type TimerConfig struct {
	Enabled bool `yaml:"enabled"`
}

// MemorizeDuration returns how long cards stay face-up at the given level.
func (t TimingConfig) MemorizeDuration(level int) time.Duration {
	ms := max(t.MemorizeBaseMS-level*t.MemorizeStepMS, t.MemorizeMinMS)
	return time.Duration(ms) * time.Millisecond
}

// CountdownSeconds returns the countdown budget for the given level.
func (t TimingConfig) CountdownSeconds(level int) int {
	return max(t.CountdownBaseS-level*t.CountdownStepS, t.CountdownMinS)
}

// EvaluationDelay returns the pause between the third pick and the verdict.
func (t TimingConfig) EvaluationDelay() time.Duration {
	return time.Duration(t.EvaluationDelayMS) * time.Millisecond
}

// TransitionDelay returns the pause between a finished level and the next one.
func (t TimingConfig) TransitionDelay() time.Duration {
	return time.Duration(t.TransitionDelayMS) * time.Millisecond
}

// Validate checks that the configuration can produce playable levels.
func (c EyeSpyConfig) Validate() error {
	var errs []error

	colors := c.Palette.Colors
	if len(colors) < 2 {
		errs = append(errs, fmt.Errorf("palette needs at least 2 colors, got %d", len(colors)))
	}
	seen := make(map[string]bool, len(colors))
	for _, name := range colors {
		if _, ok := core.ParseColor(name); !ok {
			errs = append(errs, fmt.Errorf("unknown color %q", name))
		}
		if seen[name] {
			errs = append(errs, fmt.Errorf("duplicate color %q", name))
		}
		seen[name] = true
	}

	symbols := c.Palette.Symbols
	if len(symbols) == 0 {
		errs = append(errs, errors.New("palette needs at least 1 symbol"))
	}
	seenSym := make(map[string]bool, len(symbols))
	for _, sym := range symbols {
		if utf8.RuneCountInString(sym) != 1 {
			errs = append(errs, fmt.Errorf("symbol %q must be a single character", sym))
		}
		if seenSym[sym] {
			errs = append(errs, fmt.Errorf("duplicate symbol %q", sym))
		}
		seenSym[sym] = true
	}

	// Each (color, symbol) pair may hold at most two distractors, otherwise a
	// second triple would appear on the table.
	if len(colors) >= 2 && len(symbols) > 0 && (len(colors)-1)*len(symbols)*2 < distractorCount {
		errs = append(errs, fmt.Errorf("palette too small: %d colors x %d symbols cannot deal %d distractors without a second triple",
			len(colors), len(symbols), distractorCount))
	}

	t := c.Timing
	if t.MemorizeMinMS <= 0 || t.MemorizeBaseMS < t.MemorizeMinMS || t.MemorizeStepMS < 0 {
		errs = append(errs, fmt.Errorf("invalid memorize timing: base=%dms step=%dms min=%dms",
			t.MemorizeBaseMS, t.MemorizeStepMS, t.MemorizeMinMS))
	}
	if t.CountdownMinS <= 0 || t.CountdownBaseS < t.CountdownMinS || t.CountdownStepS < 0 {
		errs = append(errs, fmt.Errorf("invalid countdown timing: base=%ds step=%ds min=%ds",
			t.CountdownBaseS, t.CountdownStepS, t.CountdownMinS))
	}
	if t.EvaluationDelayMS < 0 || t.TransitionDelayMS < 0 {
		errs = append(errs, errors.New("delays must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
