package cli

import (
	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/changelog"
	clierrors "github.com/raveheart1/chlog/internal/errors"
	"github.com/raveheart1/chlog/internal/git"
)

var (
	releaseLinksFlag  string
	releaseOutputFlag string
)

var releaseCmd = &cobra.Command{
	Use:   "release <version>",
	Short: "Promote the Unreleased section to a dated release",
	Long: `Promote the Unreleased section to a release stamped with today's date.

The promoted section keeps its entries byte for byte; only the heading line
changes. A fresh empty Unreleased section is left behind. Footer links are
rewritten according to the link mode:

  auto    synthesize compare/tag URLs from the configured link patterns,
          falling back to the 'origin' remote of the enclosing git repository
  manual  write ENTER-URL-HERE placeholders to fill in by hand
  none    leave the footer unchanged`,
	Example: `  chlog release 1.2.0
  chlog release 2.0.0 --links manual`,
	Args: cobra.ExactArgs(1),
	RunE: runRelease,
}

func init() {
	releaseCmd.Flags().StringVar(&releaseLinksFlag, "links", "",
		"Footer link mode: auto, manual, or none (default from config)")
	releaseCmd.Flags().StringVarP(&releaseOutputFlag, "output", "o", "",
		"Output path (default: rewrite the input file)")
	rootCmd.AddCommand(releaseCmd)
}

func runRelease(cmd *cobra.Command, args []string) error {
	version := args[0]
	if version == "" {
		return exitWith(ExitInvalidArguments, clierrors.MissingVersion())
	}

	cfg, table, err := loadRuntime()
	if err != nil {
		return err
	}

	modeName := releaseLinksFlag
	if modeName == "" {
		modeName = cfg.Links.Mode
	}
	mode, err := changelog.ParseLinkMode(modeName)
	if err != nil {
		return exitWith(ExitInvalidArguments, clierrors.UnknownLinkMode(modeName))
	}

	var pattern *changelog.LinkPattern
	if mode == changelog.LinkAutomatic {
		pattern = cfg.LinkPattern()
		if pattern == nil {
			// No configured templates; derive them from the git remote.
			pattern, err = git.DetectLinkPattern("")
			if err != nil {
				return exitWith(ExitConfigError, clierrors.MissingLinkPattern())
			}
		}
	}

	path := changelogPath(cfg)
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	result, err := changelog.Promote(doc, changelog.PromoteOptions{
		Version: version,
		Mode:    mode,
		Pattern: pattern,
	})
	if err != nil {
		return wrapDomainError(err, path)
	}

	outPath := resolveOutput(releaseOutputFlag, path)
	rendered := changelog.Render(doc, changelog.RenderOptions{
		Format:  changelog.FormatFull,
		Newline: cfg.NewlineString(),
	})
	if err := writeOutput(outPath, rendered); err != nil {
		return err
	}

	cmd.Println(table.Lookup("release.created", result.Version, result.Date, outPath))
	if result.ManualLinks {
		cmd.Println(table.Lookup("release.manual_links", outPath))
	}
	return nil
}
