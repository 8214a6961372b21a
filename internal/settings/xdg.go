package settings

import (
	"os"
	"path/filepath"
)

const appName = "viloxterm"

// defaultSettingsDir resolves $XDG_CONFIG_HOME/viloxterm, falling back to
// ~/.config/viloxterm, the same precedence the teacher's XDG helper uses
// for its own config directory.
func defaultSettingsDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// DefaultDir exposes the same XDG resolution defaultSettingsDir uses, for
// callers outside this package that need the application's base config
// directory — e.g. to place workspace_state.json alongside settings.ini.
func DefaultDir() (string, error) {
	return defaultSettingsDir()
}
