package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// defaultConfig returns a Config populated with all defaults
func defaultConfig() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
}

// getConfigPath returns the path to the user's config file (~/.tablero/config.yaml)
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tablero", "config.yaml"), nil
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist; values missing from the
// file are filled in with defaults.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse unmarshals yaml config data and applies defaults for missing values.
func Parse(data []byte) (*Config, error) {
	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	config.KeyMappings.applyDefaults()
	config.ColorScheme.ApplyDefaults()

	return config, nil
}
