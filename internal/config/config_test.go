package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProjectConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadWithOptions(LoadOptions{
		ProjectConfigPath: filepath.Join(t.TempDir(), "missing.yml"),
		SkipWarnings:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, "CHANGELOG.md", cfg.File)
	assert.Equal(t, "lf", cfg.Newline)
	assert.Equal(t, "none", cfg.Links.Mode)
	assert.Equal(t, "\n", cfg.NewlineString())
	assert.Nil(t, cfg.LinkPattern())
}

func TestLoad_ProjectConfig(t *testing.T) {
	path := writeProjectConfig(t, `
file: docs/CHANGES.md
newline: crlf
links:
  mode: auto
  first_release: "https://x/tree/v{CUR}"
  normal_release: "https://x/compare/v{PREV}...v{CUR}"
  unreleased: "https://x/compare/v{CUR}...HEAD"
`)

	cfg, err := LoadWithOptions(LoadOptions{ProjectConfigPath: path, SkipWarnings: true})
	require.NoError(t, err)

	assert.Equal(t, "docs/CHANGES.md", cfg.File)
	assert.Equal(t, "\r\n", cfg.NewlineString())

	pattern := cfg.LinkPattern()
	require.NotNil(t, pattern)
	assert.Equal(t, "https://x/tree/v{CUR}", pattern.FirstRelease)
	assert.Equal(t, "https://x/compare/v{PREV}...v{CUR}", pattern.NormalRelease)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("CHLOG_NEWLINE", "crlf")
	t.Setenv("CHLOG_LINKS_MODE", "manual")

	cfg, err := LoadWithOptions(LoadOptions{
		ProjectConfigPath: filepath.Join(t.TempDir(), "missing.yml"),
		SkipWarnings:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, "crlf", cfg.Newline)
	assert.Equal(t, "manual", cfg.Links.Mode)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string]struct {
		yaml string
	}{
		"bad newline":    {yaml: "newline: cr\n"},
		"bad links mode": {yaml: "links:\n  mode: sometimes\n"},
		"empty file":     {yaml: "file: \"\"\n"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeProjectConfig(t, tt.yaml)
			_, err := LoadWithOptions(LoadOptions{ProjectConfigPath: path, SkipWarnings: true})
			assert.Error(t, err)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeProjectConfig(t, "file: [unclosed\n")
	_, err := LoadWithOptions(LoadOptions{ProjectConfigPath: path, SkipWarnings: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YAML")
}

func TestEnvTransform(t *testing.T) {
	tests := map[string]struct {
		env  string
		want string
	}{
		"top level":  {env: "CHLOG_NEWLINE", want: "newline"},
		"file":       {env: "CHLOG_FILE", want: "file"},
		"links mode": {env: "CHLOG_LINKS_MODE", want: "links.mode"},
		"links url":  {env: "CHLOG_LINKS_FIRST_RELEASE", want: "links.first_release"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, envTransform(tt.env))
		})
	}
}
