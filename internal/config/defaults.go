package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# chlog Configuration

# Changelog settings
file: CHANGELOG.md              # Default changelog path
newline: lf                     # Output line endings: lf | crlf

# Footer link synthesis for 'chlog release'
links:
  mode: none                    # Default link mode: auto | manual | none
  first_release: ""             # URL template for the first release, e.g. https://host/repo/releases/tag/v{CUR}
  normal_release: ""            # URL template for later releases, e.g. https://host/repo/compare/v{PREV}...v{CUR}
  unreleased: ""                # URL template for the Unreleased link, e.g. https://host/repo/compare/v{CUR}...HEAD

# Localized message overrides
messages: ""                    # Path to a YAML message table (empty = built-in English)
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"file":    "CHANGELOG.md",
		"newline": "lf",
		// links: URL templates for footer link synthesis during release
		// promotion. Empty templates make 'auto' mode fall back to deriving
		// patterns from the git origin remote.
		"links": map[string]interface{}{
			"mode":           "none",
			"first_release":  "",
			"normal_release": "",
			"unreleased":     "",
		},
		// messages: optional path to a YAML message-table override.
		"messages": "",
	}
}
