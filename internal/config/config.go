// Package config provides hierarchical configuration for autolog using koanf.
// Values are loaded with priority: environment variables (AUTOLOG_*) >
// project config (.autolog/config.yml) > defaults. The hook path loads config
// silently and falls back to defaults on any error, since a hook must never
// write diagnostics into the Claude Code envelope.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration holds the autolog settings.
type Configuration struct {
	// ChangelogPath is the changelog file location relative to the repository
	// root (or absolute). Can be set via AUTOLOG_CHANGELOG_PATH.
	ChangelogPath string `koanf:"changelog_path"`

	// FallbackMessage is used when no commit message can be extracted.
	FallbackMessage string `koanf:"fallback_message"`

	// MaxFilesPerCategory caps file bullets per rendered category section.
	MaxFilesPerCategory int `koanf:"max_files_per_category"`

	// MaxFeatures caps feature bullets in the summary block.
	MaxFeatures int `koanf:"max_features"`

	// MaxRenames caps bullets in the renamed section.
	MaxRenames int `koanf:"max_renames"`
}

// Load loads configuration from defaults, the project config file, and
// environment variables. projectConfigPath overrides the default project
// config location when non-empty (used by tests).
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	path := projectConfigPath
	if path == "" {
		path = ProjectConfigPath()
	}
	if fileExists(path) {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading project config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("AUTOLOG_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefaults loads configuration but degrades to pure defaults on any
// error. Used by the hook path, which must stay silent.
func LoadOrDefaults(projectConfigPath string) *Configuration {
	cfg, err := Load(projectConfigPath)
	if err != nil {
		return Defaults()
	}
	return cfg
}

// envTransform maps AUTOLOG_CHANGELOG_PATH to changelog_path.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "AUTOLOG_"))
}

// validate rejects values the formatter cannot honor.
func validate(cfg *Configuration) error {
	if cfg.ChangelogPath == "" {
		return fmt.Errorf("changelog_path must not be empty")
	}
	if cfg.MaxFilesPerCategory < 1 {
		return fmt.Errorf("max_files_per_category must be at least 1, got %d", cfg.MaxFilesPerCategory)
	}
	if cfg.MaxFeatures < 1 {
		return fmt.Errorf("max_features must be at least 1, got %d", cfg.MaxFeatures)
	}
	if cfg.MaxRenames < 1 {
		return fmt.Errorf("max_renames must be at least 1, got %d", cfg.MaxRenames)
	}
	return nil
}
