package changelog

import (
	"fmt"
	"os"
)

// Load reads and parses a changelog file from the given path.
// Returns SourceNotFoundError when the path does not exist or is unreadable.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SourceNotFoundError{Path: path, Err: err}
	}

	doc, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse builds the structured Document model from raw changelog text.
//
// The document is decomposed into header, Unreleased block, ordered release
// blocks, and footer; each section is then decomposed into its category
// entry lists, and footer links are resolved per section label. A document
// without an Unreleased heading still gets an empty Unreleased section.
func Parse(text string) (*Document, error) {
	raw, err := split(text)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Header: raw.header,
		Footer: raw.footer,
	}

	doc.Unreleased = Section{
		Raw:     raw.unreleased,
		Link:    lookupLink(raw.footer, "Unreleased"),
		Changes: extractChanges(raw.unreleased),
	}
	if doc.Unreleased.Raw == "" {
		doc.Unreleased.Raw = doc.Unreleased.Heading()
	}

	for _, rel := range raw.releases {
		doc.Releases = append(doc.Releases, Section{
			Version: rel.version,
			Date:    rel.date,
			Raw:     rel.raw,
			Link:    lookupLink(raw.footer, rel.version),
			Changes: extractChanges(rel.raw),
		})
	}

	return doc, nil
}
