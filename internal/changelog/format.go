package changelog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// CategoryStyle defines the color and icon for a changelog category.
type CategoryStyle struct {
	Color *color.Color
	Icon  string
}

// categoryStyles maps categories to their terminal styling.
var categoryStyles = map[Category]CategoryStyle{
	CategoryAdded:      {Color: color.New(color.FgGreen), Icon: "✓"},
	CategoryChanged:    {Color: color.New(color.FgBlue), Icon: "~"},
	CategoryDeprecated: {Color: color.New(color.FgRed), Icon: "⚠"},
	CategoryRemoved:    {Color: color.New(color.FgRed), Icon: "✗"},
	CategoryFixed:      {Color: color.New(color.FgYellow), Icon: "⚡"},
	CategorySecurity:   {Color: color.New(color.FgMagenta), Icon: "🔒"},
}

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain    bool // Disable colors and icons
	MaxWidth int  // Maximum line width (0 = auto-detect)
}

// FormatTerminal writes changelog entries to the writer with terminal
// styling, grouped by version with color-coded category headers.
func FormatTerminal(entries []Entry, w io.Writer, opts FormatOptions) error {
	if len(entries) == 0 {
		return nil
	}

	width := resolveWidth(opts.MaxWidth)
	groups := groupEntriesByVersion(entries)

	for i, group := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := formatVersionGroup(group, w, opts, width); err != nil {
			return fmt.Errorf("formatting version %s: %w", group.version, err)
		}
	}

	return nil
}

// FormatSection writes a single section's entries to the writer.
func FormatSection(s *Section, w io.Writer, opts FormatOptions) error {
	width := resolveWidth(opts.MaxWidth)

	if err := writeVersionHeader(s.Label(), s.Date, w, opts); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, cat := range Categories() {
		entries := s.Changes.Entries(cat)
		if len(entries) == 0 {
			continue
		}
		if err := writeCategorySection(cat, entries, w, opts, width); err != nil {
			return err
		}
	}

	return nil
}

// versionGroup holds entries for a single version.
type versionGroup struct {
	version string
	entries []Entry
}

// groupEntriesByVersion groups entries by their version, preserving order.
func groupEntriesByVersion(entries []Entry) []versionGroup {
	var groups []versionGroup
	var current *versionGroup

	for _, e := range entries {
		if current == nil || current.version != e.Version {
			if current != nil {
				groups = append(groups, *current)
			}
			current = &versionGroup{version: e.Version}
		}
		current.entries = append(current.entries, e)
	}

	if current != nil {
		groups = append(groups, *current)
	}

	return groups
}

// formatVersionGroup writes a group of entries for a single version.
func formatVersionGroup(group versionGroup, w io.Writer, opts FormatOptions, width int) error {
	if err := writeVersionHeader(group.version, "", w, opts); err != nil {
		return err
	}

	byCategory := make(map[Category][]string)
	for _, e := range group.entries {
		byCategory[e.Category] = append(byCategory[e.Category], e.Text)
	}

	for _, cat := range Categories() {
		if entries, ok := byCategory[cat]; ok {
			if err := writeCategorySection(cat, entries, w, opts, width); err != nil {
				return err
			}
		}
	}

	return nil
}

// writeVersionHeader writes the version header line.
func writeVersionHeader(version, date string, w io.Writer, opts FormatOptions) error {
	header := version
	if date != "" {
		header = fmt.Sprintf("%s (%s)", version, date)
	}

	if opts.Plain {
		_, err := fmt.Fprintf(w, "## %s\n", header)
		return err
	}

	bold := color.New(color.Bold).SprintFunc()
	_, err := fmt.Fprintf(w, "## %s\n", bold(header))
	return err
}

// writeCategorySection writes a single category with its entries.
func writeCategorySection(cat Category, entries []string, w io.Writer, opts FormatOptions, width int) error {
	style := categoryStyles[cat]

	if opts.Plain {
		if _, err := fmt.Fprintf(w, "\n### %s\n", cat.Heading()); err != nil {
			return err
		}
	} else {
		colored := style.Color.SprintFunc()
		if _, err := fmt.Fprintf(w, "\n%s %s\n", colored(style.Icon), colored(cat.Heading())); err != nil {
			return err
		}
	}

	for _, entry := range entries {
		if err := writeEntry(entry, style, w, opts, width); err != nil {
			return err
		}
	}

	return nil
}

// writeEntry writes a single changelog entry with optional wrapping.
func writeEntry(text string, style CategoryStyle, w io.Writer, opts FormatOptions, width int) error {
	prefix := "  - "

	if opts.Plain {
		_, err := fmt.Fprintf(w, "%s%s\n", prefix, text)
		return err
	}

	wrapped := wrapText(text, width-len(prefix), "    ")
	colored := style.Color.SprintFunc()
	_, err := fmt.Fprintf(w, "%s%s\n", prefix, colored(wrapped))
	return err
}

// resolveWidth determines the terminal width to use.
func resolveWidth(maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// wrapText wraps text to fit within maxWidth, using indent for continuation lines.
func wrapText(text string, maxWidth int, indent string) string {
	if maxWidth <= 0 || len(text) <= maxWidth {
		return text
	}

	var lines []string
	remaining := text

	for len(remaining) > maxWidth {
		breakPoint := maxWidth
		for i := maxWidth - 1; i > 0; i-- {
			if remaining[i] == ' ' {
				breakPoint = i
				break
			}
		}

		lines = append(lines, remaining[:breakPoint])
		remaining = strings.TrimLeft(remaining[breakPoint:], " ")
	}

	if len(remaining) > 0 {
		lines = append(lines, remaining)
	}

	return strings.Join(lines, "\n"+indent)
}
