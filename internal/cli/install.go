package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/autolog/internal/errors"
	"github.com/raveheart1/autolog/internal/git"
	"github.com/raveheart1/autolog/internal/output"
	"github.com/raveheart1/autolog/internal/settings"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Register the autolog hook in .claude/settings.json",
	Long: `Register autolog as a PreToolUse hook for Bash commands in the
project-level Claude Code settings. Existing settings and hooks are
preserved; running install twice is a no-op.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runInstall,
}

var uninstallCmd = &cobra.Command{
	Use:          "uninstall",
	Short:        "Remove the autolog hook from .claude/settings.json",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runUninstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	root, err := git.RepositoryRoot("")
	if err != nil {
		cliErr := errors.NewConfigError("not inside a git repository",
			"run 'autolog install' from within the repository the hook should serve")
		fmt.Fprintln(cmd.ErrOrStderr(), errors.FormatError(cliErr))
		return cliErr
	}

	changed, err := settings.Install(root)
	if err != nil {
		return fmt.Errorf("installing hook: %w", err)
	}

	if changed {
		output.PrintSuccess(out, fmt.Sprintf("Hook registered in %s", settings.Path(root)))
	} else {
		output.PrintSuccess(out, "Hook already registered")
	}
	return nil
}

func runUninstall(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	root, err := git.RepositoryRoot("")
	if err != nil {
		return fmt.Errorf("locating repository root: %w", err)
	}

	changed, err := settings.Uninstall(root)
	if err != nil {
		return fmt.Errorf("uninstalling hook: %w", err)
	}

	if changed {
		output.PrintSuccess(out, "Hook removed")
	} else {
		output.PrintWarning(out, "Hook was not registered; nothing to do")
	}
	return nil
}
