package changelog

import (
	"errors"
	"fmt"
)

// SourceNotFoundError is returned when the changelog source path does not
// exist or cannot be read.
type SourceNotFoundError struct {
	Path string
	Err  error
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("changelog source %s not found", e.Path)
}

func (e *SourceNotFoundError) Unwrap() error {
	return e.Err
}

// MalformedDocumentError is returned when the input does not match the
// Keep a Changelog heading conventions closely enough to locate the
// Unreleased section or the footer boundary.
type MalformedDocumentError struct {
	Reason string
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed changelog: %s", e.Reason)
}

// NoChangesError is returned when a release promotion is attempted on a
// document whose Unreleased section has no entries in any category.
type NoChangesError struct{}

func (e *NoChangesError) Error() string {
	return "unreleased section has no changes to release"
}

// ConfigurationError is returned for invalid argument combinations, such as
// automatic link mode without a link pattern.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// IsSourceNotFound returns true if the error is a SourceNotFoundError.
func IsSourceNotFound(err error) bool {
	var snf *SourceNotFoundError
	return errors.As(err, &snf)
}

// IsNoChanges returns true if the error is a NoChangesError.
func IsNoChanges(err error) bool {
	var nc *NoChangesError
	return errors.As(err, &nc)
}
