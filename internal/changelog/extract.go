package changelog

import "strings"

// extractChanges pulls the per-category entry lists out of one raw section.
//
// For each of the six categories it looks for a "### <Category>" heading
// followed by a run of "- " list items up to the next heading or the end of
// the section. A category whose heading is absent stays nil; a heading with
// no items yields a non-nil empty slice so the heading survives round-trips.
// Anything that is neither a recognized heading nor a list item (continuation
// lines, stray prose) is treated as opaque text and left to the raw span.
func extractChanges(raw string) Changes {
	var changes Changes
	var current Category

	for _, line := range strings.Split(raw, "\n") {
		if cat, ok := categoryHeading(line); ok {
			current = cat
			if changes.Entries(cat) == nil {
				changes.SetEntries(cat, []string{})
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			// Any other heading ends the current category block.
			current = ""
			continue
		}
		if current == "" {
			continue
		}
		if strings.HasPrefix(line, "- ") {
			entry := strings.TrimPrefix(line, "- ")
			changes.SetEntries(current, append(changes.Entries(current), entry))
		}
	}

	return changes
}

// categoryHeading reports whether the line is a "### <Category>" heading for
// one of the six fixed categories.
func categoryHeading(line string) (Category, bool) {
	rest, ok := strings.CutPrefix(line, "### ")
	if !ok {
		return "", false
	}
	rest = strings.TrimRight(rest, " \t")
	for _, cat := range Categories() {
		if rest == cat.Heading() {
			return cat, true
		}
	}
	return "", false
}
