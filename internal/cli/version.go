package cli

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/raveheart1/autolog/internal/version"
)

var versionPlain bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information (v)",
	Long:    "Display version, commit, build date, and Go version information for autolog",
	Example: `  # Show version info
  autolog version

  # Plain output (for scripts)
  autolog version --plain`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		if versionPlain {
			fmt.Fprintln(out, version.Version)
			return
		}

		bold := color.New(color.Bold).SprintFunc()
		fmt.Fprintf(out, "%s %s\n", bold("autolog"), version.Version)
		fmt.Fprintf(out, "  commit:     %s\n", version.Commit)
		fmt.Fprintf(out, "  built:      %s\n", version.BuildDate)
		fmt.Fprintf(out, "  go version: %s\n", runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionPlain, "plain", false, "Print only the version number")
}
