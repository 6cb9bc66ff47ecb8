// Package storage persists the folder collection. Backends are
// interchangeable; the store never sees the persisted representation.
package storage

import (
	"os"
	"path/filepath"

	"hub/internal/model"
)

// Backend defines the interface for persisting folders.
// Load returns (nil, nil) when no state has ever been persisted, which
// tells the caller to seed defaults. A present but empty collection
// loads as an empty non-nil slice.
type Backend interface {
	Load() ([]model.Folder, error)
	Save(folders []model.Folder) error
}

// DefaultJSONPath returns the default JSON store path: ~/.config/hub/folders.json
func DefaultJSONPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "hub", "folders.json"), nil
}

// DefaultSQLitePath returns the default SQLite database path: ~/.config/hub/hub.db
func DefaultSQLitePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "hub", "hub.db"), nil
}

// DefaultLogPath returns the default log file path: ~/.config/hub/hub.log
func DefaultLogPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "hub", "hub.log"), nil
}

// OpenBackend opens the appropriate storage backend.
// Prefers SQLite if the database file exists, otherwise falls back to
// the JSON file.
func OpenBackend() (Backend, error) {
	sqlitePath, err := DefaultSQLitePath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(sqlitePath); err == nil {
		return NewSQLiteBackend(sqlitePath)
	}

	jsonPath, err := DefaultJSONPath()
	if err != nil {
		return nil, err
	}
	return NewJSONBackend(jsonPath), nil
}
