package cli

import (
	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/changelog"
	clierrors "github.com/raveheart1/chlog/internal/errors"
)

var addOutputFlag string

var addCmd = &cobra.Command{
	Use:   "add <category> <text>",
	Short: "Add an entry to the Unreleased section",
	Long: `Add a change entry under the given category in the Unreleased section.

The category must be one of: added, changed, deprecated, removed, fixed,
security. The entry is placed first within its category; everything else in
the document is preserved byte for byte.`,
	Example: `  chlog add added "Support CRLF line endings"
  chlog add fixed "Handle empty input without crashing" -o CHANGELOG.md`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addOutputFlag, "output", "o", "",
		"Output path (default: rewrite the input file)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	cat, err := changelog.ParseCategory(args[0])
	if err != nil {
		return exitWith(ExitInvalidArguments, clierrors.UnknownCategory(args[0], categoryNames()))
	}
	if args[1] == "" {
		return exitWith(ExitInvalidArguments, clierrors.MissingEntryText())
	}

	cfg, table, err := loadRuntime()
	if err != nil {
		return err
	}

	path := changelogPath(cfg)
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	if err := changelog.InsertEntry(doc, cat, args[1]); err != nil {
		return wrapDomainError(err, path)
	}

	outPath := resolveOutput(addOutputFlag, path)
	rendered := changelog.Render(doc, changelog.RenderOptions{
		Format:  changelog.FormatFull,
		Newline: cfg.NewlineString(),
	})
	if err := writeOutput(outPath, rendered); err != nil {
		return err
	}

	cmd.Println(table.Lookup("add.recorded", cat.Heading(), outPath))
	return nil
}
