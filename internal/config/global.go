// Where: internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.stsenv/config.yaml consistently.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the global config file location when set.
const EnvConfigPath = "STSENV_CONFIG"

// GlobalConfig represents the ~/.stsenv/config.yaml global configuration.
type GlobalConfig struct {
	Version     int    `yaml:"version"`
	Binary      string `yaml:"binary,omitempty"`       // credential tool executable
	SessionName string `yaml:"session_name,omitempty"` // --role-session-name value
	Template    string `yaml:"template,omitempty"`     // default output template
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{Version: 1}
}

// GlobalConfigPath returns the path to the global config file, honoring the
// STSENV_CONFIG environment override.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(EnvConfigPath)); override != "" {
		if !filepath.IsAbs(override) {
			if abs, err := filepath.Abs(override); err == nil {
				return abs, nil
			}
		}
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".stsenv", "config.yaml"), nil
}

// LoadGlobalConfig reads and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// LoadGlobalConfigOrDefault loads the global config, falling back to defaults
// when the file does not exist or cannot be parsed.
func LoadGlobalConfigOrDefault() GlobalConfig {
	path, err := GlobalConfigPath()
	if err != nil {
		return DefaultGlobalConfig()
	}
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		return DefaultGlobalConfig()
	}
	return cfg
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o600)
}
