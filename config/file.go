package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LogConfig represents logging settings from the config file.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// FileConfig represents the structure of ~/.cruler/config.yaml.
type FileConfig struct {
	Log   LogConfig `yaml:"log"`
	Rules string    `yaml:"rules"`
}

// DefaultConfigPath returns the location of the user config file.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".cruler", "config.yaml"), nil
}

// LoadConfigFile loads configuration from ~/.cruler/config.yaml. Returns nil
// if the file doesn't exist (not an error).
func LoadConfigFile() (*FileConfig, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	return LoadConfigFileFrom(configPath)
}

// LoadConfigFileFrom loads configuration from configPath. Returns nil if the
// file doesn't exist. Returns error if the file exists but cannot be parsed.
func LoadConfigFileFrom(configPath string) (*FileConfig, error) {
	// Check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, nil // File doesn't exist -- not an error
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}
