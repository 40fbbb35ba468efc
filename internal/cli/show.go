package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/changelog"
	clierrors "github.com/raveheart1/chlog/internal/errors"
)

var (
	showLastFlag  int
	showPlainFlag bool
)

var showCmd = &cobra.Command{
	Use:   "show [version]",
	Short: "Display changelog entries in the terminal",
	Long: `Display changelog entries with color-coded categories.

Without a version argument, the most recent entries across all sections are
shown. With a version (or "unreleased"), the full section for that version
is shown.`,
	Example: `  chlog show
  chlog show 1.2.0
  chlog show unreleased --plain`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().IntVar(&showLastFlag, "last", 5,
		"Number of recent entries to show")
	showCmd.Flags().BoolVar(&showPlainFlag, "plain", false,
		"Disable colors and icons")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, table, err := loadRuntime()
	if err != nil {
		return err
	}

	path := changelogPath(cfg)
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	opts := changelog.FormatOptions{Plain: showPlainFlag}

	if len(args) == 1 {
		section, err := doc.Section(args[0])
		if err != nil {
			var notFound *changelog.VersionNotFoundError
			if errors.As(err, &notFound) {
				return exitWith(ExitInvalidArguments, clierrors.NewArgumentError(
					fmt.Sprintf("version %q not found", notFound.Version),
					fmt.Sprintf("Available versions: %s", strings.Join(notFound.AvailableVersions, ", ")),
				))
			}
			return err
		}
		if section.Changes.IsEmpty() {
			cmd.Println(table.Lookup("show.no_entries", section.Label()))
			return nil
		}
		return changelog.FormatSection(section, cmd.OutOrStdout(), opts)
	}

	total := doc.EntryCount()
	if total == 0 {
		cmd.Println(table.Lookup("show.no_entries", path))
		return nil
	}

	entries := doc.LastN(showLastFlag)
	if err := changelog.FormatTerminal(entries, cmd.OutOrStdout(), opts); err != nil {
		return err
	}
	if total > len(entries) {
		cmd.Println(table.Lookup("show.truncated", len(entries), total, total))
	}
	return nil
}
