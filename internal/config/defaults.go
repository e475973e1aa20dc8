package config

import (
	_ "embed"
)

//go:embed defaults/eyespy.yaml
var defaultEyeSpyYAML []byte

// DefaultEyeSpyConfig returns the hard-coded EyeSpy configuration.
// It mirrors defaults/eyespy.yaml and is the fallback when the embed cannot be parsed.
func DefaultEyeSpyConfig() EyeSpyConfig {
	return EyeSpyConfig{
		Palette: PaletteConfig{
			Colors:  []string{"red", "blue", "green", "yellow"},
			Symbols: []string{"★", "■", "▲", "●", "♦", "⬡", "⬢", "▼"},
		},
		Timing: TimingConfig{
			MemorizeBaseMS:    5000,
			MemorizeStepMS:    1000,
			MemorizeMinMS:     1000,
			CountdownBaseS:    60,
			CountdownStepS:    15,
			CountdownMinS:     10,
			EvaluationDelayMS: 1000,
			TransitionDelayMS: 2000,
		},
		Timer: TimerConfig{
			Enabled: false,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultEyeSpyYAML
}
