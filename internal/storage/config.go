package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"hub/internal/model"
)

// Config holds application configuration.
type Config struct {
	// Theme is "auto", "dark" or "light".
	Theme string `json:"theme"`

	// DefaultFolderColor is used when a new folder is created without an
	// explicit color.
	DefaultFolderColor string `json:"defaultFolderColor"`

	// SkipDeleteConfirm disables the confirmation prompt before deleting
	// folders and apps.
	SkipDeleteConfirm bool `json:"skipDeleteConfirm"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:              "auto",
		DefaultFolderColor: model.ColorBrand,
		SkipDeleteConfirm:  false,
	}
}

// LoadConfig reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: return defaults even if the write fails
			if saveErr := SaveConfig(path, &config); saveErr != nil {
				return &config, nil
			}
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.Theme == "" {
		config.Theme = defaults.Theme
	}
	if config.DefaultFolderColor == "" {
		config.DefaultFolderColor = defaults.DefaultFolderColor
	}

	return &config, nil
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigPath returns the default config path: ~/.config/hub/config.json
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "hub", "config.json"), nil
}
