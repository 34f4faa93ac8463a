package cli

import (
	"github.com/spf13/cobra"

	"github.com/raveheart1/autolog/internal/config"
	"github.com/raveheart1/autolog/internal/hook"
)

// hookCmd is invoked by Claude Code, not by users; it is hidden from help.
var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "PreToolUse hook handler (called by Claude Code)",
	Long: `Reads a PreToolUse event from stdin and, when it describes a git commit
with staged changes, adds a changelog entry before the commit runs.

Register via 'autolog install'. The handler always exits 0 and writes its
permission decision (always "allow") as JSON to stdout; non-qualifying
events produce no output.`,
	Hidden:       true,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		// Config errors degrade to defaults: the hook must stay silent on
		// every channel Claude Code reads.
		cfg := config.LoadOrDefaults("")
		hook.Run(cmd.InOrStdin(), cmd.OutOrStdout(), hook.Options{Config: cfg})
	},
}

func init() {
	rootCmd.AddCommand(hookCmd)
}
