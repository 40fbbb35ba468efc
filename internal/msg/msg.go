// Package msg provides the localized message table for user-facing notices.
// A built-in English table is embedded at build time; a YAML file configured
// via messages in the chlog config can override individual entries. The core
// packages only signal structured conditions; rendering them to text happens
// here.
package msg

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed en.yaml
var embeddedTable []byte

// Table maps message ids to fmt format strings.
type Table map[string]string

// Default returns the built-in English message table.
func Default() Table {
	table := Table{}
	// The embedded table is validated by tests; a decode failure here would
	// mean a broken build, so fall back to an empty table instead of panicking.
	_ = yaml.Unmarshal(embeddedTable, &table)
	return table
}

// Load returns the default table with entries overridden from the YAML file
// at path. An empty path returns the default table unchanged.
func Load(path string) (Table, error) {
	table := Default()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading message table %s: %w", path, err)
	}

	override := Table{}
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parsing message table %s: %w", path, err)
	}

	for id, text := range override {
		table[id] = text
	}
	return table, nil
}

// Lookup renders the message with the given id and arguments. Unknown ids
// render as the id itself so a missing translation never hides a notice.
func (t Table) Lookup(id string, args ...any) string {
	tmpl, ok := t[id]
	if !ok {
		return id
	}
	return fmt.Sprintf(tmpl, args...)
}
