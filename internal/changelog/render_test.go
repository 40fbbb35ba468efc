package changelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_RoundTrip(t *testing.T) {
	tests := map[string]struct {
		input string
	}{
		"full document": {input: sampleChangelog},
		"no releases": {
			input: "# Changelog\n\n## [Unreleased]\n\n### Added\n- First\n",
		},
		"no footer": {
			input: "# Changelog\n\n## [Unreleased]\n\n## [0.1.0] - 2023-06-01\n\n### Added\n- Start\n",
		},
		"heading only section": {
			input: "## [Unreleased]\n\n### Added\n\n## [0.1.0] - 2023-06-01\n\n### Fixed\n- Bug\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc, err := Parse(tt.input)
			require.NoError(t, err)

			out := Render(doc, RenderOptions{Format: FormatFull})
			assert.Equal(t, tt.input, out)
		})
	}
}

func TestRender_ReleaseOnly(t *testing.T) {
	doc, err := Parse(sampleChangelog)
	require.NoError(t, err)

	out := Render(doc, RenderOptions{Format: FormatReleaseOnly})

	assert.NotContains(t, out, "## [Unreleased]")
	assert.NotContains(t, out, "[Unreleased]: ")
	assert.NotContains(t, out, "Pending feature")
	assert.Contains(t, out, "## [1.1.0] - 2024-02-10")
	assert.Contains(t, out, "[1.0.0]: https://example.com/repo/releases/tag/v1.0.0")
}

func TestRender_Text(t *testing.T) {
	doc, err := Parse(sampleChangelog)
	require.NoError(t, err)

	out := Render(doc, RenderOptions{Format: FormatText})

	assert.NotContains(t, out, "# Changelog")
	assert.NotContains(t, out, "### Added")
	assert.Contains(t, out, "Changelog\n")
	// Header link labels lose their brackets; section headings keep theirs.
	assert.Contains(t, out, "Keep a Changelog (https://keepachangelog.com/en/1.0.0/)")
	assert.Contains(t, out, "[1.1.0] - 2024-02-10")
	// Entry text itself is untouched.
	assert.Contains(t, out, "- Config file support")
}

func TestRender_OmitHeader(t *testing.T) {
	doc, err := Parse(sampleChangelog)
	require.NoError(t, err)

	out := Render(doc, RenderOptions{Format: FormatFull, OmitHeader: true})

	assert.NotContains(t, out, "# Changelog")
	assert.True(t, strings.HasPrefix(out, "## [Unreleased]"))
}

func TestRender_CRLF(t *testing.T) {
	doc, err := Parse("# Changelog\n\n## [Unreleased]\n\n### Added\n- X\n")
	require.NoError(t, err)

	out := Render(doc, RenderOptions{Format: FormatFull, Newline: "\r\n"})

	assert.Contains(t, out, "## [Unreleased]\r\n")
	assert.NotContains(t, strings.ReplaceAll(out, "\r\n", ""), "\n")
}

func TestRender_NoEmptyHeadingSynthesized(t *testing.T) {
	// A section with no Security heading must not gain one on output.
	input := "## [Unreleased]\n\n### Added\n- X\n"
	doc, err := Parse(input)
	require.NoError(t, err)

	require.NoError(t, InsertEntry(doc, CategoryAdded, "Y"))
	out := Render(doc, RenderOptions{Format: FormatFull})

	assert.NotContains(t, out, "### Security")
	assert.NotContains(t, out, "### Fixed")
}

func TestParseFormat(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    Format
		wantErr bool
	}{
		"full":              {input: "full", want: FormatFull},
		"release-only":      {input: "release-only", want: FormatReleaseOnly},
		"text":              {input: "text", want: FormatText},
		"text-release-only": {input: "text-release-only", want: FormatTextReleaseOnly},
		"mixed case":        {input: "Release-Only", want: FormatReleaseOnly},
		"unknown":           {input: "markdown", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlank(t *testing.T) {
	t.Run("with semver statement", func(t *testing.T) {
		out := Blank(true)
		assert.Contains(t, out, "# Changelog")
		assert.Contains(t, out, "[Keep a Changelog](https://keepachangelog.com/en/1.0.0/)")
		assert.Contains(t, out, "Semantic Versioning")
		assert.True(t, strings.HasSuffix(out, "## [Unreleased]\n"))

		// A blank changelog must parse back cleanly.
		doc, err := Parse(out)
		require.NoError(t, err)
		assert.True(t, doc.Unreleased.Changes.IsEmpty())
		assert.Empty(t, doc.Releases)
	})

	t.Run("without semver statement", func(t *testing.T) {
		out := Blank(false)
		assert.NotContains(t, out, "Semantic Versioning")
		assert.Contains(t, out, "(https://keepachangelog.com/en/1.0.0/).")
	})
}
