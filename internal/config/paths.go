package config

import (
	"os"
	"path/filepath"
)

// GetGlobalConfigDir returns the per-user directory (~/.kanban) that holds
// crash logs. It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigName), nil
}

// SearchPaths returns the directories searched for .kanban.yaml, in order:
// the working directory, then the home directory.
func SearchPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}
	return paths
}

// ResolvePath makes a relative data path absolute against the directory of
// the config file in use. Absolute paths and paths without a config file are
// returned unchanged.
func ResolvePath(path, configFileUsed string) string {
	if path == "" || filepath.IsAbs(path) || configFileUsed == "" {
		return path
	}
	return filepath.Join(filepath.Dir(configFileUsed), path)
}
