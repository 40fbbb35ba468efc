package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Validate checks configuration values against their allowed ranges.
func Validate(cfg *Configuration) error {
	if cfg.File == "" {
		return fmt.Errorf("file must not be empty")
	}

	switch cfg.Newline {
	case "lf", "crlf":
	default:
		return fmt.Errorf("invalid newline %q (valid: lf, crlf)", cfg.Newline)
	}

	switch cfg.Links.Mode {
	case "auto", "automatic", "manual", "none":
	default:
		return fmt.Errorf("invalid links.mode %q (valid: auto, manual, none)", cfg.Links.Mode)
	}

	return nil
}

// ValidateYAMLSyntax checks that a file contains well-formed YAML before it
// is handed to koanf, so syntax errors surface with a useful message.
func ValidateYAMLSyntax(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var out interface{}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return nil
}
