// Package config provides hierarchical configuration management for chlog
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.chlog/config.yml) > user config (~/.config/chlog/config.yml)
// > defaults. A legacy JSON project config (.chlogrc.json) is still read with
// a deprecation warning.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/raveheart1/chlog/internal/changelog"
)

// LinksConfig holds the footer-link settings for release promotion.
type LinksConfig struct {
	// Mode is the default link mode for 'chlog release': auto | manual | none.
	Mode string `koanf:"mode"`
	// FirstRelease is the URL template for the very first release.
	// May reference {CUR}.
	FirstRelease string `koanf:"first_release"`
	// NormalRelease is the URL template for subsequent releases.
	// May reference {CUR} and {PREV}.
	NormalRelease string `koanf:"normal_release"`
	// Unreleased is the URL template for the Unreleased comparison link.
	// May reference {CUR}.
	Unreleased string `koanf:"unreleased"`
}

// Configuration represents the chlog CLI tool configuration.
type Configuration struct {
	// File is the default changelog path used when --file is not given.
	File string `koanf:"file"`
	// Newline selects the output line ending: "lf" or "crlf".
	Newline string `koanf:"newline"`
	// Links configures footer-link synthesis for release promotion.
	Links LinksConfig `koanf:"links"`
	// Messages is an optional path to a YAML message-table override.
	Messages string `koanf:"messages"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .chlog/config.yml)
	ProjectConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr)
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings
	SkipWarnings bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := getWarningWriter(opts.WarningWriter)

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// getWarningWriter returns the warning writer or defaults to stderr.
func getWarningWriter(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level YAML config when present.
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil {
		return nil
	}
	if !fileExists(path) {
		return nil
	}
	if err := loadYAMLConfig(k, path, "user"); err != nil {
		return fmt.Errorf("loading user config: %w", err)
	}
	return nil
}

// loadProjectConfig loads project-level config (YAML preferred, legacy JSON
// supported with a deprecation warning). A custom path overrides the default
// location (used in tests).
func loadProjectConfig(k *koanf.Koanf, customPath string, warningWriter io.Writer, skipWarnings bool) error {
	yamlPath := ProjectConfigPath()
	if customPath != "" {
		yamlPath = customPath
	}
	legacyPath := LegacyProjectConfigPath()

	if fileExists(yamlPath) {
		if err := loadYAMLConfig(k, yamlPath, "project"); err != nil {
			return fmt.Errorf("loading project config: %w", err)
		}
		if fileExists(legacyPath) && !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Legacy JSON config found at %s (ignored, using %s)\n", legacyPath, yamlPath)
		}
		return nil
	}

	if fileExists(legacyPath) {
		if err := k.Load(file.Provider(legacyPath), json.Parser()); err != nil {
			return fmt.Errorf("loading legacy project config %s: %w", legacyPath, err)
		}
		if !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Using deprecated JSON config at %s\n", legacyPath)
			fmt.Fprintf(warningWriter, "  Move the settings to %s in YAML form.\n\n", ProjectConfigPath())
		}
	}
	return nil
}

// loadYAMLConfig validates and loads a YAML config file.
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("CHLOG_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// envTransform converts environment variable names to config keys.
// Example: CHLOG_NEWLINE -> newline, CHLOG_LINKS_MODE -> links.mode
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "CHLOG_"))
	// Nested keys use the first underscore as the section separator.
	for _, section := range []string{"links_"} {
		if strings.HasPrefix(key, section) {
			return strings.TrimSuffix(section, "_") + "." + strings.TrimPrefix(key, section)
		}
	}
	return key
}

// fileExists reports whether the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// NewlineString translates the configured newline name to its byte sequence.
func (c *Configuration) NewlineString() string {
	if c.Newline == "crlf" {
		return "\r\n"
	}
	return "\n"
}

// LinkPattern returns the configured URL templates, or nil when no template
// is set (so callers can fall back to git remote detection).
func (c *Configuration) LinkPattern() *changelog.LinkPattern {
	if c.Links.FirstRelease == "" && c.Links.NormalRelease == "" && c.Links.Unreleased == "" {
		return nil
	}
	return &changelog.LinkPattern{
		FirstRelease:  c.Links.FirstRelease,
		NormalRelease: c.Links.NormalRelease,
		Unreleased:    c.Links.Unreleased,
	}
}
