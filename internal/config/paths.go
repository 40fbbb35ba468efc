package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/chlog/config.yml
// - macOS: ~/Library/Application Support/chlog/config.yml
// - Windows: %APPDATA%\chlog\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "chlog", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file.
// This is always .chlog/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".chlog", "config.yml")
}

// LegacyProjectConfigPath returns the path to the legacy project-level JSON
// config file, kept readable for backward compatibility.
func LegacyProjectConfigPath() string {
	return ".chlogrc.json"
}
