package changelog

import (
	"fmt"
	"strings"
)

// VersionNotFoundError is returned when a requested version doesn't exist.
type VersionNotFoundError struct {
	Version           string
	AvailableVersions []string
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("version %q not found (available: %s)",
		e.Version, strings.Join(e.AvailableVersions, ", "))
}

// Section retrieves the section for a version label. The label "unreleased"
// (any case) selects the Unreleased section; a leading "v" on versions is
// accepted and stripped.
func (d *Document) Section(version string) (*Section, error) {
	normalized := normalizeVersion(version)
	if normalized == "unreleased" {
		return &d.Unreleased, nil
	}

	for i := range d.Releases {
		if normalizeVersion(d.Releases[i].Version) == normalized {
			return &d.Releases[i], nil
		}
	}

	return nil, &VersionNotFoundError{
		Version:           version,
		AvailableVersions: d.ListVersions(),
	}
}

// ListVersions returns all section labels in document order, Unreleased
// first.
func (d *Document) ListVersions() []string {
	versions := make([]string, 0, len(d.Releases)+1)
	versions = append(versions, "Unreleased")
	for _, rel := range d.Releases {
		versions = append(versions, rel.Version)
	}
	return versions
}

// AllEntries returns every entry in the document, Unreleased first, then
// releases in document order. Entries within a section follow the standard
// category order.
func (d *Document) AllEntries() []Entry {
	entries := d.Unreleased.Entries()
	for i := range d.Releases {
		entries = append(entries, d.Releases[i].Entries()...)
	}
	return entries
}

// LastN returns the first N entries of AllEntries (the most recent changes).
func (d *Document) LastN(n int) []Entry {
	if n <= 0 {
		return []Entry{}
	}
	entries := d.AllEntries()
	if len(entries) <= n {
		return entries
	}
	return entries[:n]
}

// EntryCount returns the total number of entries across all sections.
func (d *Document) EntryCount() int {
	count := d.Unreleased.Changes.Count()
	for _, rel := range d.Releases {
		count += rel.Changes.Count()
	}
	return count
}

// normalizeVersion lowercases the label and strips a "v" prefix so both
// "v1.2.0" and "1.2.0" are accepted.
func normalizeVersion(version string) string {
	return strings.TrimPrefix(strings.ToLower(version), "v")
}
