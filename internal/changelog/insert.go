package changelog

// InsertEntry adds one entry under the given category in the Unreleased
// section. The new entry is placed first within its category; existing
// entries keep their original order and all other categories, release
// sections, and the footer are left untouched.
func InsertEntry(doc *Document, cat Category, text string) error {
	if _, err := ParseCategory(string(cat)); err != nil {
		return &ConfigurationError{Message: err.Error()}
	}
	if text == "" {
		return &ConfigurationError{Message: "entry text must not be empty"}
	}

	existing := doc.Unreleased.Changes.Entries(cat)
	entries := make([]string, 0, len(existing)+1)
	entries = append(entries, text)
	entries = append(entries, existing...)
	doc.Unreleased.Changes.SetEntries(cat, entries)

	rebuildRaw(&doc.Unreleased)
	return nil
}
