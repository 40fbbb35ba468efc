package changelog

import (
	"fmt"
	"strings"
	"time"
)

// LinkMode controls how footer links are written during a release promotion.
type LinkMode string

const (
	// LinkAutomatic synthesizes footer links from a LinkPattern.
	LinkAutomatic LinkMode = "automatic"
	// LinkManual writes placeholder links for the caller to fill in.
	LinkManual LinkMode = "manual"
	// LinkNone passes the footer through unchanged.
	LinkNone LinkMode = "none"
)

// ManualLinkPlaceholder is the URL written for manual-mode footer links.
const ManualLinkPlaceholder = "ENTER-URL-HERE"

// ParseLinkMode validates a user-supplied link mode name.
func ParseLinkMode(s string) (LinkMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "automatic":
		return LinkAutomatic, nil
	case "manual":
		return LinkManual, nil
	case "none":
		return LinkNone, nil
	}
	return "", fmt.Errorf("unknown link mode %q (valid: auto, manual, none)", s)
}

// LinkPattern holds the URL templates for automatic link synthesis.
// Templates may reference {CUR} (the version being released) and, in
// NormalRelease, {PREV} (the previous latest release).
type LinkPattern struct {
	FirstRelease  string
	NormalRelease string
	Unreleased    string
}

func (p LinkPattern) expand(tmpl, cur, prev string) string {
	tmpl = strings.ReplaceAll(tmpl, "{CUR}", cur)
	return strings.ReplaceAll(tmpl, "{PREV}", prev)
}

// PromoteOptions configures a release promotion.
type PromoteOptions struct {
	Version string
	Mode    LinkMode
	Pattern *LinkPattern      // required when Mode is LinkAutomatic
	Now     func() time.Time // date source; nil means time.Now
}

// PromoteResult reports the outcome of a promotion.
type PromoteResult struct {
	Version string
	Date    string
	// ManualLinks is true when placeholder links were written and the
	// caller should notify the user to complete them.
	ManualLinks bool
}

// Promote converts the Unreleased section into a new release stamped with
// today's date, leaves an empty Unreleased section behind, and rewrites the
// footer according to the link mode. The new release's raw text is the old
// Unreleased raw text with only the heading line replaced, so entry
// formatting survives verbatim.
//
// Fails with ConfigurationError when automatic mode has no pattern, and with
// NoChangesError when the Unreleased section is entirely empty.
func Promote(doc *Document, opts PromoteOptions) (*PromoteResult, error) {
	if opts.Mode == LinkAutomatic && opts.Pattern == nil {
		return nil, &ConfigurationError{
			Message: "automatic link mode requires a link pattern",
		}
	}
	if doc.Unreleased.Changes.IsEmpty() {
		return nil, &NoChangesError{}
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	date := now().Format("2006-01-02")
	prev := doc.LastVersion()

	release := Section{
		Version: opts.Version,
		Date:    date,
		Changes: doc.Unreleased.Changes,
	}
	release.Raw = swapHeading(doc.Unreleased.Raw, release.Heading())
	doc.Releases = append([]Section{release}, doc.Releases...)

	doc.Unreleased = Section{}
	doc.Unreleased.Raw = doc.Unreleased.Heading()

	result := &PromoteResult{Version: opts.Version, Date: date}

	switch opts.Mode {
	case LinkAutomatic:
		unreleasedURL := opts.Pattern.expand(opts.Pattern.Unreleased, opts.Version, "")
		releaseURL := opts.Pattern.expand(opts.Pattern.NormalRelease, opts.Version, prev)
		if prev == "" {
			releaseURL = opts.Pattern.expand(opts.Pattern.FirstRelease, opts.Version, "")
		}
		rewriteFooter(doc, unreleasedURL, releaseURL)
	case LinkManual:
		rewriteFooter(doc, ManualLinkPlaceholder, ManualLinkPlaceholder)
		result.ManualLinks = true
	default:
		doc.Footer = strings.TrimSpace(doc.Footer)
	}

	return result, nil
}

// rewriteFooter replaces the Unreleased link line and prepends the new
// release's link line, preserving prior link lines for older releases.
func rewriteFooter(doc *Document, unreleasedURL, releaseURL string) {
	lines := []string{
		"[Unreleased]: " + unreleasedURL,
		"[" + doc.Releases[0].Version + "]: " + releaseURL,
	}
	if rest := removeFooterLine(strings.TrimSpace(doc.Footer), "Unreleased"); rest != "" {
		lines = append(lines, rest)
	}
	doc.Footer = strings.Join(lines, "\n")
	doc.Unreleased.Link = unreleasedURL
	doc.Releases[0].Link = releaseURL
}

// swapHeading replaces the first line of a raw section span.
func swapHeading(raw, heading string) string {
	if i := strings.Index(raw, "\n"); i >= 0 {
		return heading + raw[i:]
	}
	return heading
}
