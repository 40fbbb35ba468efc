// Package changelog implements parsing, mutation, and serialization of
// CHANGELOG.md files following the Keep a Changelog 1.0.0 convention.
//
// This package implements:
//   - Decomposing a changelog into header, Unreleased section, ordered
//     release sections, and the link-reference footer
//   - Per-section extraction of the six standard change categories
//   - Adding entries to the Unreleased section
//   - Promoting Unreleased content to a new dated release, including
//     footer-link synthesis
//   - Rendering back to Markdown or plain-text output profiles
//
// Parsed sections keep their verbatim source text alongside the structured
// category entries. Rendering re-emits the verbatim text for sections that
// were never mutated, so a parse immediately followed by a render reproduces
// the input byte for byte (modulo a single trailing newline).
package changelog
