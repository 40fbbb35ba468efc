package changelog

import (
	"fmt"
	"strings"
)

// Category identifies one of the six Keep a Changelog change types.
type Category string

const (
	CategoryAdded      Category = "added"
	CategoryChanged    Category = "changed"
	CategoryDeprecated Category = "deprecated"
	CategoryRemoved    Category = "removed"
	CategoryFixed      Category = "fixed"
	CategorySecurity   Category = "security"
)

// Categories returns all categories in their standard rendering order.
// Output always follows this order regardless of source or insertion order.
func Categories() []Category {
	return []Category{
		CategoryAdded,
		CategoryChanged,
		CategoryDeprecated,
		CategoryRemoved,
		CategoryFixed,
		CategorySecurity,
	}
}

// ParseCategory normalizes and validates a user-supplied category name.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CategoryAdded, CategoryChanged, CategoryDeprecated,
		CategoryRemoved, CategoryFixed, CategorySecurity:
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q (valid: added, changed, deprecated, removed, fixed, security)", s)
}

// Heading returns the Markdown heading text for the category (e.g. "Added").
func (c Category) Heading() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// Changes groups a section's entries by Keep a Changelog category.
//
// A nil slice means the category heading was absent from the source; a
// non-nil empty slice means the heading was present with no list items.
// The distinction matters on re-serialization: an absent category must not
// gain an empty heading in the output.
type Changes struct {
	Added      []string
	Changed    []string
	Deprecated []string
	Removed    []string
	Fixed      []string
	Security   []string
}

// Entries returns the entry list for the given category.
// The returned slice is nil when the category heading was absent.
func (c *Changes) Entries(cat Category) []string {
	switch cat {
	case CategoryAdded:
		return c.Added
	case CategoryChanged:
		return c.Changed
	case CategoryDeprecated:
		return c.Deprecated
	case CategoryRemoved:
		return c.Removed
	case CategoryFixed:
		return c.Fixed
	case CategorySecurity:
		return c.Security
	}
	return nil
}

// SetEntries replaces the entry list for the given category.
func (c *Changes) SetEntries(cat Category, entries []string) {
	switch cat {
	case CategoryAdded:
		c.Added = entries
	case CategoryChanged:
		c.Changed = entries
	case CategoryDeprecated:
		c.Deprecated = entries
	case CategoryRemoved:
		c.Removed = entries
	case CategoryFixed:
		c.Fixed = entries
	case CategorySecurity:
		c.Security = entries
	}
}

// IsEmpty returns true if no category has any entries.
func (c Changes) IsEmpty() bool {
	return len(c.Added) == 0 &&
		len(c.Changed) == 0 &&
		len(c.Deprecated) == 0 &&
		len(c.Removed) == 0 &&
		len(c.Fixed) == 0 &&
		len(c.Security) == 0
}

// Count returns the total number of entries across all categories.
func (c Changes) Count() int {
	return len(c.Added) +
		len(c.Changed) +
		len(c.Deprecated) +
		len(c.Removed) +
		len(c.Fixed) +
		len(c.Security)
}

// Section is one heading-delimited block of the changelog: either the
// Unreleased section (Version empty) or a release tagged with a version and
// a YYYY-MM-DD date.
//
// Raw holds the exact source span including the heading line. It is the
// source of truth for unmutated sections; mutating operations rebuild it
// from the structured Changes so the two never drift apart.
type Section struct {
	Version string
	Date    string
	Link    string
	Raw     string
	Changes Changes
}

// IsUnreleased returns true if this section is the Unreleased block.
func (s *Section) IsUnreleased() bool {
	return s.Version == ""
}

// Label returns the footer link-reference label for this section:
// "Unreleased" or the version string.
func (s *Section) Label() string {
	if s.IsUnreleased() {
		return "Unreleased"
	}
	return s.Version
}

// Heading returns the Markdown heading line for this section.
func (s *Section) Heading() string {
	if s.IsUnreleased() {
		return "## [Unreleased]"
	}
	return fmt.Sprintf("## [%s] - %s", s.Version, s.Date)
}

// Entry is a flattened view of a single changelog entry, used by the show
// command where category and version context is needed alongside the text.
type Entry struct {
	Text     string
	Category Category
	Version  string
}

// Entries returns the section's entries flattened in category order.
func (s *Section) Entries() []Entry {
	entries := make([]Entry, 0, s.Changes.Count())
	for _, cat := range Categories() {
		for _, text := range s.Changes.Entries(cat) {
			entries = append(entries, Entry{Text: text, Category: cat, Version: s.Label()})
		}
	}
	return entries
}

// Document is the parsed representation of a changelog file.
//
// Exactly one Unreleased section exists per document; it is created empty
// when the source has no Unreleased heading. Releases keep their source
// order (newest first by convention) and are never re-sorted.
type Document struct {
	Header     string
	Unreleased Section
	Releases   []Section
	Footer     string
}

// LastVersion returns the version of the most recent release, or the empty
// string when the document has no releases.
func (d *Document) LastVersion() string {
	if len(d.Releases) == 0 {
		return ""
	}
	return d.Releases[0].Version
}
