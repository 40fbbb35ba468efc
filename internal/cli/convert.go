package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/raveheart1/chlog/internal/changelog"
	clierrors "github.com/raveheart1/chlog/internal/errors"
)

var (
	convertFormatFlag   []string
	convertNoHeaderFlag bool
	convertOutputFlag   string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the changelog between output profiles",
	Long: `Convert the changelog into one or more output profiles:

  full               the complete Markdown document
  release-only       Markdown without the Unreleased section
  text               plain text with Markdown markup stripped
  text-release-only  plain text without the Unreleased section

With a single --format and --output, the result is written to the given
path. With multiple formats, output names are derived from the input path
and all files are written together after each render succeeds.`,
	Example: `  chlog convert --format release-only -o RELEASES.md
  chlog convert --format full --format text`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringArrayVar(&convertFormatFlag, "format", []string{"full"},
		"Output format, repeatable: full, release-only, text, text-release-only")
	convertCmd.Flags().BoolVar(&convertNoHeaderFlag, "no-header", false,
		"Omit the introductory header block")
	convertCmd.Flags().StringVarP(&convertOutputFlag, "output", "o", "",
		"Output path (single format only)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	formats := make([]changelog.Format, 0, len(convertFormatFlag))
	for _, name := range convertFormatFlag {
		f, err := changelog.ParseFormat(name)
		if err != nil {
			return exitWith(ExitInvalidArguments, clierrors.UnknownFormat(name))
		}
		formats = append(formats, f)
	}
	if convertOutputFlag != "" && len(formats) > 1 {
		return exitWith(ExitInvalidArguments, clierrors.NewArgumentErrorWithUsage(
			"--output cannot be combined with multiple formats",
			"chlog convert --format <name> --output <path>",
			"Repeat --format without --output to derive one file per format",
		))
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

	type output struct {
		path    string
		content string
	}
	outputs := make([]output, len(formats))
	for i, f := range formats {
		outputs[i] = output{
			path: convertOutputPath(path, f, convertOutputFlag, len(formats)),
			content: changelog.Render(doc, changelog.RenderOptions{
				Format:     f,
				OmitHeader: convertNoHeaderFlag,
				Newline:    cfg.NewlineString(),
			}),
		}
	}

	// All renders succeeded; write the files concurrently.
	var g errgroup.Group
	for _, out := range outputs {
		out := out
		g.Go(func() error {
			if err := os.WriteFile(out.path, []byte(out.content), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", out.path, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return exitWith(ExitFailure, clierrors.Wrap(err, clierrors.Source))
	}

	for i, out := range outputs {
		cmd.Println(table.Lookup("convert.written", out.path, formats[i].String()))
	}
	return nil
}

// convertOutputPath derives the output file name for a format. A single
// format honors --output; otherwise names are derived from the input path.
func convertOutputPath(inputPath string, f changelog.Format, outputFlag string, count int) string {
	if count == 1 && outputFlag != "" {
		return outputFlag
	}

	base := strings.TrimSuffix(inputPath, ".md")
	switch f {
	case changelog.FormatReleaseOnly:
		return base + ".release.md"
	case changelog.FormatText:
		return base + ".txt"
	case changelog.FormatTextReleaseOnly:
		return base + ".release.txt"
	default:
		return base + ".full.md"
	}
}
