package cli

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/version"
)

var versionPlain bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information (v)",
	Long:    "Display version, commit, build date, and Go version information for chlog",
	Example: `  # Show version info
  chlog version

  # Plain output (for scripts)
  chlog version --plain`,
	Run: func(cmd *cobra.Command, args []string) {
		if versionPlain {
			printPlainVersion(cmd)
		} else {
			printPrettyVersion(cmd)
		}
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionPlain, "plain", false, "Plain output without formatting")
	rootCmd.AddCommand(versionCmd)
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(cmd *cobra.Command) {
	cmd.Printf("chlog %s\n", version.Version)
	cmd.Printf("commit: %s\n", version.Commit)
	cmd.Printf("built: %s\n", version.BuildDate)
	cmd.Printf("go: %s\n", runtime.Version())
	cmd.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// printPrettyVersion prints a styled version output
func printPrettyVersion(cmd *cobra.Command) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	cmd.Printf("%s %s\n", cyan("chlog"), version.Version)
	cmd.Printf("%s %s\n", yellow("  commit:"), truncateCommit(version.Commit))
	cmd.Printf("%s %s\n", yellow("   built:"), version.BuildDate)
	cmd.Printf("%s %s\n", yellow("      go:"), runtime.Version())
	cmd.Printf("%s %s\n", yellow("platform:"), fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH))
	cmd.Println(dim("https://keepachangelog.com/en/1.0.0/"))
}

// truncateCommit shortens commit hash if it's too long
func truncateCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
