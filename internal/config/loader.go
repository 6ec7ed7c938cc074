package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSpin loads the configuration for demo id.
// Search order: customPath -> ~/.spinbox/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default
func LoadSpin(id, customPath string) (SpinConfig, error) {
	cfg := DefaultFor(id)

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := id + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if c, ok := tryLoad(id, userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(id, filepath.Join("configs", filename)); ok {
		return c, nil
	}

	// Use embedded default YAML
	if c, ok := parse(id, GetDefaultYAML(id)); ok {
		return c, nil
	}
	return DefaultFor(id), nil // Fallback to hardcoded if embed fails
}

// tryLoad reads and parses path, skipping unreadable or invalid files.
func tryLoad(id, path string) (SpinConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SpinConfig{}, false
	}
	return parse(id, data)
}

func parse(id string, data []byte) (SpinConfig, bool) {
	if len(data) == 0 {
		return SpinConfig{}, false
	}
	cfg := DefaultFor(id)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SpinConfig{}, false
	}
	if cfg.Validate() != nil {
		return SpinConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spinbox", "configs", filename)
}

// ApplySpinPreset modifies the config based on a difficulty preset.
func ApplySpinPreset(cfg *SpinConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
