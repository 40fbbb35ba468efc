package changelog

import (
	"fmt"
	"regexp"
	"strings"
)

// Format selects one of the four output profiles: Markdown or plain text,
// each with or without the Unreleased section.
type Format int

const (
	// FormatFull is the complete Markdown document including Unreleased.
	FormatFull Format = iota
	// FormatReleaseOnly is Markdown with the Unreleased section dropped
	// and its footer link removed.
	FormatReleaseOnly
	// FormatText is the full document stripped of Markdown markup.
	FormatText
	// FormatTextReleaseOnly combines plain text with Unreleased removal.
	FormatTextReleaseOnly
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full":
		return FormatFull, nil
	case "release-only":
		return FormatReleaseOnly, nil
	case "text":
		return FormatText, nil
	case "text-release-only":
		return FormatTextReleaseOnly, nil
	}
	return 0, fmt.Errorf("unknown format %q (valid: full, release-only, text, text-release-only)", s)
}

func (f Format) String() string {
	switch f {
	case FormatFull:
		return "full"
	case FormatReleaseOnly:
		return "release-only"
	case FormatText:
		return "text"
	case FormatTextReleaseOnly:
		return "text-release-only"
	default:
		return "unknown"
	}
}

// ReleaseOnly reports whether the format drops the Unreleased section.
func (f Format) ReleaseOnly() bool {
	return f == FormatReleaseOnly || f == FormatTextReleaseOnly
}

// PlainText reports whether the format strips Markdown markup.
func (f Format) PlainText() bool {
	return f == FormatText || f == FormatTextReleaseOnly
}

// RenderOptions controls document serialization.
type RenderOptions struct {
	Format     Format
	OmitHeader bool   // suppress the header block entirely
	Newline    string // "\n" (default) or "\r\n"
}

var headingMarkerRe = regexp.MustCompile(`(?m)^#{1,6} `)

// Render serializes the document into the selected output profile.
//
// Serialization order is header, Unreleased raw block, release raw blocks in
// model order, footer. Non-empty blocks are joined by exactly one blank line
// and the output ends with a single newline. Unmutated sections are emitted
// verbatim from their raw spans.
func Render(doc *Document, opts RenderOptions) string {
	var blocks []string

	if !opts.OmitHeader && doc.Header != "" {
		header := doc.Header
		if opts.Format.PlainText() {
			header = stripHeaderMarkup(header)
		}
		blocks = append(blocks, header)
	}

	if !opts.Format.ReleaseOnly() {
		blocks = append(blocks, doc.Unreleased.Raw)
	}

	for _, rel := range doc.Releases {
		blocks = append(blocks, rel.Raw)
	}

	footer := doc.Footer
	if opts.Format.ReleaseOnly() {
		footer = removeFooterLine(footer, "Unreleased")
	}
	if footer != "" {
		blocks = append(blocks, footer)
	}

	if opts.Format.PlainText() {
		for i, b := range blocks {
			blocks[i] = headingMarkerRe.ReplaceAllString(b, "")
		}
	}

	var out []string
	for _, b := range blocks {
		if b != "" {
			out = append(out, b)
		}
	}

	text := strings.Join(out, "\n\n") + "\n"
	if opts.Newline == "\r\n" {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	return text
}

// stripHeaderMarkup removes the square brackets around link-reference labels
// in the header, replacing the closing bracket with a trailing space. Applied
// to the header block only; section headings keep their bracketed labels.
func stripHeaderMarkup(header string) string {
	header = strings.ReplaceAll(header, "[", "")
	return strings.ReplaceAll(header, "]", " ")
}

// removeFooterLine drops the link-reference line for the given label.
func removeFooterLine(footer, label string) string {
	if footer == "" {
		return ""
	}
	prefix := "[" + label + "]: "
	var kept []string
	for _, line := range strings.Split(footer, "\n") {
		if strings.HasPrefix(line, prefix) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimRight(strings.Join(kept, "\n"), "\n")
}

// rebuildRaw regenerates a section's raw span from its structured entries,
// with categories in standard order. Called after mutation so the raw text
// and the category lists cannot drift apart.
func rebuildRaw(s *Section) {
	var b strings.Builder
	b.WriteString(s.Heading())

	for _, cat := range Categories() {
		entries := s.Changes.Entries(cat)
		if entries == nil {
			continue
		}
		b.WriteString("\n\n### " + cat.Heading())
		for _, entry := range entries {
			b.WriteString("\n- " + entry)
		}
	}

	s.Raw = b.String()
}
