package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Appearance values accepted in settings.json and on the command line.
const (
	AppearanceAuto  = "auto"
	AppearanceDark  = "dark"
	AppearanceLight = "light"
)

// Default values applied when neither flags, env vars, nor settings.json
// say otherwise.
const (
	DefaultAppearance = AppearanceAuto
	DefaultLanguage   = "en"
	DefaultSyncAddr   = "127.0.0.1:7878"
	DefaultTitle      = "replog"
)

// Settings represents the structure of ~/.replog/settings.json
type Settings struct {
	Appearance  string `json:"appearance,omitempty"`
	DBPath      string `json:"db_path,omitempty"`
	Debug       *bool  `json:"debug,omitempty"`
	Language    string `json:"language,omitempty"`
	MaxLogFiles *int   `json:"max_log_files,omitempty"`
	SyncURL     string `json:"sync_url,omitempty"`
	Title       string `json:"title,omitempty"`
}

// LoadSettings loads settings from ~/.replog/settings.json
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	path := filepath.Join(homeDir, ".replog", "settings.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}

	return &settings, nil
}

// GetDBPath returns the database path, falling back to the default
// location under ~/.replog.
func GetDBPath(settings *Settings) string {
	if settings != nil && settings.DBPath != "" {
		return settings.DBPath
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "replog.db"
	}
	return filepath.Join(homeDir, ".replog", "replog.db")
}

// GetSyncStatePath returns the sync server's state file path.
func GetSyncStatePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "sync-state.json"
	}
	return filepath.Join(homeDir, ".replog", "sync-state.json")
}

// ExpandPath expands ~ to home directory in paths
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path // Return as-is if we can't get home dir
		}
		if len(path) == 1 {
			return homeDir
		}
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
