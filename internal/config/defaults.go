package config

// GetDefaults returns the default configuration values keyed by config path.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"changelog_path":         "CHANGELOG.md",
		"fallback_message":       "Update",
		"max_files_per_category": 10,
		"max_features":           5,
		"max_renames":            5,
	}
}

// Defaults returns a Configuration populated with default values.
func Defaults() *Configuration {
	return &Configuration{
		ChangelogPath:       "CHANGELOG.md",
		FallbackMessage:     "Update",
		MaxFilesPerCategory: 10,
		MaxFeatures:         5,
		MaxRenames:          5,
	}
}

// GetDefaultConfigTemplate returns a commented config template written by
// 'autolog init'.
func GetDefaultConfigTemplate() string {
	return `# Autolog Configuration
# Values can also be set via AUTOLOG_* environment variables
# (e.g. AUTOLOG_CHANGELOG_PATH).

changelog_path: CHANGELOG.md      # Changelog file at the repository root
fallback_message: Update          # Commit message used when none is extractable

# Section limits for rendered entries
max_files_per_category: 10        # File bullets per category before "...and N more"
max_features: 5                   # Feature bullets in the summary block
max_renames: 5                    # Rename bullets before "...and N more"
`
}
