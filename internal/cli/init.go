package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/changelog"
	"github.com/raveheart1/chlog/internal/config"
	clierrors "github.com/raveheart1/chlog/internal/errors"
)

var (
	initNoSemVerFlag   bool
	initForceFlag      bool
	initWithConfigFlag bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a blank changelog",
	Long: `Create a blank changelog with the standard Keep a Changelog header and an
empty Unreleased section. Refuses to overwrite an existing file unless
--force is given.`,
	Example: `  chlog init
  chlog init --file docs/CHANGELOG.md --no-semver
  chlog init --with-config`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initNoSemVerFlag, "no-semver", false,
		"Omit the Semantic Versioning sentence from the header")
	initCmd.Flags().BoolVar(&initForceFlag, "force", false,
		"Overwrite an existing file")
	initCmd.Flags().BoolVar(&initWithConfigFlag, "with-config", false,
		"Also write a commented .chlog/config.yml template")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, table, err := loadRuntime()
	if err != nil {
		return err
	}

	path := changelogPath(cfg)
	if !initForceFlag && fileExists(path) {
		return exitWith(ExitInvalidArguments, clierrors.OutputExists(path))
	}

	content := changelog.Blank(!initNoSemVerFlag)
	if cfg.NewlineString() == "\r\n" {
		content = strings.ReplaceAll(content, "\n", "\r\n")
	}
	if err := writeOutput(path, content); err != nil {
		return err
	}
	cmd.Println(table.Lookup("init.created", path))

	if initWithConfigFlag {
		cfgPath := config.ProjectConfigPath()
		if !initForceFlag && fileExists(cfgPath) {
			return exitWith(ExitInvalidArguments, clierrors.OutputExists(cfgPath))
		}
		if err := os.MkdirAll(filepath.Dir(cfgPath), 0755); err != nil {
			return exitWith(ExitFailure, clierrors.WrapWithMessage(err, clierrors.Source, "creating "+filepath.Dir(cfgPath)))
		}
		if err := writeOutput(cfgPath, config.GetDefaultConfigTemplate()); err != nil {
			return err
		}
		cmd.Println(table.Lookup("init.created", cfgPath))
	}
	return nil
}
