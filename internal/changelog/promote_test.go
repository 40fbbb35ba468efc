package changelog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow(t *testing.T, day string) func() time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)
	return func() time.Time { return parsed }
}

func TestPromote_DateStamping(t *testing.T) {
	doc, err := Parse(sampleChangelog)
	require.NoError(t, err)

	result, err := Promote(doc, PromoteOptions{
		Version: "2.0.0",
		Mode:    LinkNone,
		Now:     fixedNow(t, "2024-03-15"),
	})
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", result.Version)
	assert.Equal(t, "2024-03-15", result.Date)
	assert.False(t, result.ManualLinks)

	require.Len(t, doc.Releases, 3)
	assert.Equal(t, "2.0.0", doc.LastVersion())
	assert.Equal(t, "## [2.0.0] - 2024-03-15\n\n### Added\n- Pending feature", doc.Releases[0].Raw)

	// Unreleased is reset to heading only.
	assert.True(t, doc.Unreleased.Changes.IsEmpty())
	assert.Equal(t, "## [Unreleased]", doc.Unreleased.Raw)
}

func TestPromote_AutomaticLinks_FirstRelease(t *testing.T) {
	doc, err := Parse("# Changelog\n\n## [Unreleased]\n\n### Added\n- Initial work\n")
	require.NoError(t, err)

	_, err = Promote(doc, PromoteOptions{
		Version: "1.0.0",
		Mode:    LinkAutomatic,
		Pattern: &LinkPattern{
			FirstRelease:  "https://x/tree/v{CUR}",
			NormalRelease: "https://x/compare/v{PREV}..v{CUR}",
			Unreleased:    "https://x/compare/v{CUR}..HEAD",
		},
		Now: fixedNow(t, "2024-03-15"),
	})
	require.NoError(t, err)

	assert.Equal(t, "[Unreleased]: https://x/compare/v1.0.0..HEAD\n[1.0.0]: https://x/tree/v1.0.0", doc.Footer)
	assert.Equal(t, "https://x/compare/v1.0.0..HEAD", doc.Unreleased.Link)
	assert.Equal(t, "https://x/tree/v1.0.0", doc.Releases[0].Link)
}

func TestPromote_AutomaticLinks_SubsequentRelease(t *testing.T) {
	doc, err := Parse(sampleChangelog)
	require.NoError(t, err)

	_, err = Promote(doc, PromoteOptions{
		Version: "2.0.0",
		Mode:    LinkAutomatic,
		Pattern: &LinkPattern{
			FirstRelease:  "https://example.com/repo/releases/tag/v{CUR}",
			NormalRelease: "https://example.com/repo/compare/v{PREV}...v{CUR}",
			Unreleased:    "https://example.com/repo/compare/v{CUR}...HEAD",
		},
		Now: fixedNow(t, "2024-03-15"),
	})
	require.NoError(t, err)

	lines := []string{
		"[Unreleased]: https://example.com/repo/compare/v2.0.0...HEAD",
		"[2.0.0]: https://example.com/repo/compare/v1.1.0...v2.0.0",
		"[1.1.0]: https://example.com/repo/compare/v1.0.0...v1.1.0",
		"[1.0.0]: https://example.com/repo/releases/tag/v1.0.0",
	}
	assert.Equal(t, lines[0]+"\n"+lines[1]+"\n"+lines[2]+"\n"+lines[3], doc.Footer)
}

func TestPromote_ManualLinks(t *testing.T) {
	doc, err := Parse(sampleChangelog)
	require.NoError(t, err)

	result, err := Promote(doc, PromoteOptions{
		Version: "2.0.0",
		Mode:    LinkManual,
		Now:     fixedNow(t, "2024-03-15"),
	})
	require.NoError(t, err)

	assert.True(t, result.ManualLinks)
	assert.Contains(t, doc.Footer, "[Unreleased]: ENTER-URL-HERE")
	assert.Contains(t, doc.Footer, "[2.0.0]: ENTER-URL-HERE")
	// Prior release links are preserved.
	assert.Contains(t, doc.Footer, "[1.1.0]: https://example.com/repo/compare/v1.0.0...v1.1.0")
}

func TestPromote_NoneKeepsFooter(t *testing.T) {
	doc, err := Parse(sampleChangelog)
	require.NoError(t, err)
	before := doc.Footer

	_, err = Promote(doc, PromoteOptions{
		Version: "2.0.0",
		Mode:    LinkNone,
		Now:     fixedNow(t, "2024-03-15"),
	})
	require.NoError(t, err)

	assert.Equal(t, before, doc.Footer)
}

func TestPromote_Refusals(t *testing.T) {
	t.Run("empty unreleased", func(t *testing.T) {
		doc, err := Parse("# Changelog\n\n## [Unreleased]\n\n## [1.0.0] - 2024-01-15\n\n### Added\n- X\n")
		require.NoError(t, err)

		_, err = Promote(doc, PromoteOptions{Version: "1.1.0", Mode: LinkNone})
		var noChanges *NoChangesError
		require.ErrorAs(t, err, &noChanges)
		assert.True(t, IsNoChanges(err))

		// The document is untouched after a refusal.
		assert.Len(t, doc.Releases, 1)
	})

	t.Run("automatic mode without pattern", func(t *testing.T) {
		doc, err := Parse(sampleChangelog)
		require.NoError(t, err)

		_, err = Promote(doc, PromoteOptions{Version: "2.0.0", Mode: LinkAutomatic})
		var cfg *ConfigurationError
		require.ErrorAs(t, err, &cfg)
	})
}

func TestPromote_ThenReleaseOnlyHasNoUnreleasedLink(t *testing.T) {
	doc, err := Parse(sampleChangelog)
	require.NoError(t, err)

	_, err = Promote(doc, PromoteOptions{
		Version: "2.0.0",
		Mode:    LinkAutomatic,
		Pattern: &LinkPattern{
			FirstRelease:  "https://x/tree/v{CUR}",
			NormalRelease: "https://x/compare/v{PREV}...v{CUR}",
			Unreleased:    "https://x/compare/v{CUR}...HEAD",
		},
		Now: fixedNow(t, "2024-03-15"),
	})
	require.NoError(t, err)

	out := Render(doc, RenderOptions{Format: FormatReleaseOnly})
	assert.NotContains(t, out, "[Unreleased]")
	assert.Contains(t, out, "[2.0.0]: https://x/compare/v1.1.0...v2.0.0")
}

func TestParseLinkMode(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    LinkMode
		wantErr bool
	}{
		"auto shorthand": {input: "auto", want: LinkAutomatic},
		"automatic":      {input: "automatic", want: LinkAutomatic},
		"manual":         {input: "manual", want: LinkManual},
		"none":           {input: "none", want: LinkNone},
		"unknown":        {input: "magic", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseLinkMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
