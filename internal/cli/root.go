// Package cli wires up the autolog command surface: the hidden hook handler
// invoked by Claude Code, plus the management commands (install, uninstall,
// preview, init, version) a developer runs directly.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "autolog",
	Short: "Changelog-generating commit hook for Claude Code",
	Long: `Autolog keeps CHANGELOG.md up to date automatically.

Installed as a Claude Code PreToolUse hook, it intercepts git commit
commands, inspects the staged diff, and prepends a summarized entry to the
changelog before the commit runs. It never blocks a commit: on any internal
failure the commit proceeds and the failure is reported back to the agent.

Get started:
  autolog install      # Register the hook in .claude/settings.json
  autolog preview      # Render an entry for the currently staged changes`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
