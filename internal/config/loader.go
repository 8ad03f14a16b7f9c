package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local config dirs.
const configFile = "runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.cuberun/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. A custom path ending in .toml is decoded as TOML; other
// extensions outside FormatExtensions are rejected.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(customPath, data)
		if err != nil {
			return RunnerConfig{}, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(userCfgPath, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", configFile)
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := Parse(localPath, data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes data over the default configuration and validates the
// result. The format is picked from the extension of name, which must be
// one of FormatExtensions.
func Parse(name string, data []byte) (RunnerConfig, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if !slices.Contains(FormatExtensions(), ext) {
		return RunnerConfig{}, fmt.Errorf("unsupported config format %q for %s (want one of %s)",
			ext, name, strings.Join(FormatExtensions(), ", "))
	}

	cfg := DefaultRunnerConfig()
	switch ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", name, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", name, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, fmt.Errorf("invalid config %s: %w", name, err)
	}
	return cfg, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cuberun", "configs", filename)
}
