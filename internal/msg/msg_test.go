package msg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ContainsAllIDs(t *testing.T) {
	table := Default()

	for _, id := range []string{
		"init.created",
		"add.recorded",
		"release.created",
		"release.manual_links",
		"convert.written",
		"show.no_entries",
		"show.truncated",
	} {
		assert.Contains(t, table, id)
	}
}

func TestLookup(t *testing.T) {
	table := Default()

	t.Run("known id formats arguments", func(t *testing.T) {
		got := table.Lookup("init.created", "CHANGELOG.md")
		assert.Equal(t, "Created CHANGELOG.md", got)
	})

	t.Run("unknown id falls back to the id", func(t *testing.T) {
		assert.Equal(t, "no.such.id", table.Lookup("no.such.id"))
	})
}

func TestLoad_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "de.yaml")
	require.NoError(t, os.WriteFile(path, []byte("init.created: \"%s angelegt\"\n"), 0644))

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "CHANGELOG.md angelegt", table.Lookup("init.created", "CHANGELOG.md"))
	// Entries not overridden keep the built-in text.
	assert.Equal(t, "No entries found in CHANGELOG.md", table.Lookup("show.no_entries", "CHANGELOG.md"))
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("a: [b\n"), 0644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("empty path returns defaults", func(t *testing.T) {
		table, err := Load("")
		require.NoError(t, err)
		assert.Contains(t, table, "release.created")
	})
}
