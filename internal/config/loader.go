package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local config directories.
const configFile = "eyespy.yaml"

// LoadEyeSpy loads the EyeSpy configuration.
// Search order: customPath -> ~/.eyespy/configs/eyespy.yaml -> ./configs/eyespy.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadEyeSpy(customPath string) (EyeSpyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return EyeSpyConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return EyeSpyConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return EyeSpyConfig{}, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	// Broken files here are skipped rather than reported.
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultEyeSpyYAML)
	if err != nil {
		return DefaultEyeSpyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the hard-coded defaults.
func parse(data []byte) (EyeSpyConfig, error) {
	cfg := DefaultEyeSpyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EyeSpyConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".eyespy", "configs", filename)
}
