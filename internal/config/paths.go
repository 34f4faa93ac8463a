package config

import (
	"os"
	"path/filepath"
)

// ProjectConfigPath returns the project-level config file path, always
// .autolog/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".autolog", "config.yml")
}

// ProjectConfigDir returns the project-level config directory.
func ProjectConfigDir() string {
	return ".autolog"
}

// fileExists checks whether path exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
