package changelog

import (
	"regexp"
	"strings"
)

// sectionHeadingRe matches the section headings Keep a Changelog mandates:
// "## [Unreleased]" or "## [<version>] - <YYYY-MM-DD>". The date group is
// optional at match time so a dateless release heading can be reported as
// malformed instead of silently swallowed into the preceding section.
var sectionHeadingRe = regexp.MustCompile(`(?m)^## \[([^\]\n]+)\](?: - (\d{4}-\d{2}-\d{2}))?[ \t]*$`)

// unreleasedLinkRe marks the start of the link-reference footer.
var unreleasedLinkRe = regexp.MustCompile(`(?m)^\[Unreleased\]: `)

// splitDocument is the raw decomposition of a changelog before category
// extraction. Section raw text spans keep their heading lines verbatim.
type splitDocument struct {
	header     string
	unreleased string
	releases   []rawRelease
	footer     string
}

type rawRelease struct {
	version string
	date    string
	raw     string
}

// split breaks the full document text into header, raw Unreleased block,
// ordered raw release blocks, and the link-reference footer.
//
// The footer boundary is the "[Unreleased]: " link line; when that line is
// absent the document has no footer and all link lookups resolve empty.
func split(text string) (*splitDocument, error) {
	body := text
	footer := ""
	if loc := unreleasedLinkRe.FindStringIndex(text); loc != nil {
		body = text[:loc[0]]
		footer = strings.TrimRight(text[loc[0]:], "\n")
	}

	headings := sectionHeadingRe.FindAllStringSubmatchIndex(body, -1)
	if len(headings) == 0 && footer == "" {
		return nil, &MalformedDocumentError{
			Reason: "no Unreleased section, release headings, or link references found",
		}
	}

	doc := &splitDocument{footer: footer}
	if len(headings) == 0 {
		doc.header = strings.TrimRight(body, "\n")
		return doc, nil
	}

	doc.header = strings.TrimRight(body[:headings[0][0]], "\n")

	for i, h := range headings {
		start := h[0]
		end := len(body)
		if i+1 < len(headings) {
			end = headings[i+1][0]
		}
		raw := strings.TrimRight(body[start:end], "\n")

		label := body[h[2]:h[3]]
		date := ""
		if h[4] >= 0 {
			date = body[h[4]:h[5]]
		}

		if label == "Unreleased" {
			if doc.unreleased != "" {
				return nil, &MalformedDocumentError{Reason: "duplicate Unreleased section"}
			}
			doc.unreleased = raw
			continue
		}
		if date == "" {
			return nil, &MalformedDocumentError{
				Reason: "release heading [" + label + "] has no date",
			}
		}
		doc.releases = append(doc.releases, rawRelease{version: label, date: date, raw: raw})
	}

	return doc, nil
}

// lookupLink resolves a label's URL from the footer text. Returns the empty
// string when no matching link-reference line exists.
func lookupLink(footer, label string) string {
	prefix := "[" + label + "]: "
	for _, line := range strings.Split(footer, "\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix))
		}
	}
	return ""
}
