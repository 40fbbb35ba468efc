// Package cli implements the chlog command tree. Each command is a thin
// wrapper that validates arguments, parses the changelog through the
// internal/changelog package, applies one mutation, and writes the
// re-serialized document in a single operation.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/changelog"
	"github.com/raveheart1/chlog/internal/config"
	clierrors "github.com/raveheart1/chlog/internal/errors"
	"github.com/raveheart1/chlog/internal/msg"
)

var fileFlag string

var rootCmd = &cobra.Command{
	Use:   "chlog",
	Short: "Maintain changelogs in the Keep a Changelog format",
	Long: `chlog maintains CHANGELOG.md files following the Keep a Changelog
1.0.0 convention (https://keepachangelog.com/en/1.0.0/).

It parses a changelog into its header, Unreleased section, releases, and
link-reference footer, and supports adding entries, promoting the Unreleased
section to a dated release, and converting between Markdown and plain-text
output profiles.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "",
		"Changelog path (default from config, CHANGELOG.md)")
}

// Execute runs the root command and reports errors to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		reportError(err)
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		return ExitInvalidArguments
	}
	return ExitFailure
}

// reportError renders an error to stderr, using the structured formatter
// for CLIErrors and a plain prefix for everything else.
func reportError(err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		// The command already reported details itself.
		return
	}

	var cliErr *clierrors.CLIError
	if errors.As(err, &cliErr) {
		clierrors.PrintError(cliErr)
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// loadRuntime loads the tool configuration and message table.
func loadRuntime() (*config.Configuration, msg.Table, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, nil, exitWith(ExitConfigError, clierrors.Wrap(err, clierrors.Configuration))
	}

	table, err := msg.Load(cfg.Messages)
	if err != nil {
		return nil, nil, exitWith(ExitConfigError, clierrors.Wrap(err, clierrors.Configuration))
	}

	return cfg, table, nil
}

// changelogPath resolves the changelog path from the --file flag or config.
func changelogPath(cfg *config.Configuration) string {
	if fileFlag != "" {
		return fileFlag
	}
	return cfg.File
}

// resolveOutput defaults the output path to the input path (in-place edit).
func resolveOutput(outputFlag, inputPath string) string {
	if outputFlag != "" {
		return outputFlag
	}
	return inputPath
}

// loadDocument parses the changelog at path, mapping domain errors to
// structured CLI errors with exit codes.
func loadDocument(path string) (*changelog.Document, error) {
	doc, err := changelog.Load(path)
	if err != nil {
		return nil, wrapDomainError(err, path)
	}
	return doc, nil
}

// wrapDomainError converts changelog package errors into CLIErrors carrying
// the appropriate exit code. Errors are detected before any output write, so
// a failed command never leaves a partially written file behind.
func wrapDomainError(err error, path string) error {
	var snf *changelog.SourceNotFoundError
	if errors.As(err, &snf) {
		return exitWith(ExitSourceNotFound, clierrors.ChangelogNotFound(snf.Path))
	}

	var malformed *changelog.MalformedDocumentError
	if errors.As(err, &malformed) {
		return exitWith(ExitMalformed, clierrors.MalformedChangelog(path, malformed.Reason))
	}

	var noChanges *changelog.NoChangesError
	if errors.As(err, &noChanges) {
		return exitWith(ExitNoChanges, clierrors.NothingToRelease(path))
	}

	var cfgErr *changelog.ConfigurationError
	if errors.As(err, &cfgErr) {
		return exitWith(ExitConfigError, clierrors.NewConfigError(cfgErr.Message))
	}

	return err
}

// writeOutput writes the fully rendered document in one call.
func writeOutput(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return exitWith(ExitFailure, clierrors.WrapWithMessage(err, clierrors.Source, "writing "+path))
	}
	return nil
}

// fileExists reports whether the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// categoryNames returns the valid category names for error messages.
func categoryNames() []string {
	cats := changelog.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}
