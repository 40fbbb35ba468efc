package errors

import (
	"fmt"
	"strings"
)

// Common error messages for the chlog CLI.
// These templates ensure consistent, actionable error messages.

// ChangelogNotFound creates an error for a missing changelog file.
func ChangelogNotFound(path string) *CLIError {
	return NewSourceError(
		fmt.Sprintf("changelog file not found at %s", path),
		"Run 'chlog init' to create a new changelog",
		"Or point at an existing file with --file <path>",
	)
}

// MalformedChangelog creates an error for a changelog that does not follow
// the Keep a Changelog heading conventions.
func MalformedChangelog(path, reason string) *CLIError {
	return NewDocumentError(
		fmt.Sprintf("cannot parse %s: %s", path, reason),
		"Check that sections use '## [Unreleased]' and '## [<version>] - <YYYY-MM-DD>' headings",
		"See https://keepachangelog.com/en/1.0.0/ for the expected layout",
	)
}

// NothingToRelease creates an error for promoting an empty Unreleased section.
func NothingToRelease(path string) *CLIError {
	return NewDocumentError(
		fmt.Sprintf("the Unreleased section of %s has no changes to release", path),
		"Add at least one entry first: chlog add <category> \"<text>\"",
	)
}

// MissingLinkPattern creates an error for automatic link mode without URL templates.
func MissingLinkPattern() *CLIError {
	return NewConfigError(
		"automatic link mode requires link URL patterns",
		"Set links.first_release, links.normal_release, and links.unreleased in .chlog/config.yml",
		"Or run from inside a git repository with an 'origin' remote so patterns can be derived",
		"Or use --links manual / --links none",
	)
}

// UnknownCategory creates an error for an invalid change category.
func UnknownCategory(provided string, valid []string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("unknown category %q", provided),
		"chlog add <category> \"<text>\"",
		fmt.Sprintf("Valid categories: %s", strings.Join(valid, ", ")),
	)
}

// MissingEntryText creates an error for an add call without entry text.
func MissingEntryText() *CLIError {
	return NewArgumentErrorWithUsage(
		"entry text is required",
		"chlog add <category> \"<text>\"",
		"Provide the entry text in quotes",
		"Example: chlog add fixed \"Handle empty input without crashing\"",
	)
}

// MissingVersion creates an error for a release call without a version.
func MissingVersion() *CLIError {
	return NewArgumentErrorWithUsage(
		"release version is required",
		"chlog release <version>",
		"Example: chlog release 1.2.0",
	)
}

// UnknownFormat creates an error for an invalid convert format.
func UnknownFormat(provided string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("unknown format %q", provided),
		"chlog convert --format <full|release-only|text|text-release-only>",
	)
}

// UnknownLinkMode creates an error for an invalid --links value.
func UnknownLinkMode(provided string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("unknown link mode %q", provided),
		"chlog release <version> --links <auto|manual|none>",
	)
}

// OutputExists creates an error for init refusing to overwrite a file.
func OutputExists(path string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("%s already exists", path),
		"Use --force to overwrite the existing file",
		"Or choose a different path with --file <path>",
	)
}
