package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raveheart1/autolog/internal/analyze"
	"github.com/raveheart1/autolog/internal/config"
	"github.com/raveheart1/autolog/internal/entry"
	"github.com/raveheart1/autolog/internal/git"
	"github.com/raveheart1/autolog/internal/output"
)

var (
	previewMessage string
	previewPlain   bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a changelog entry for the staged changes without writing it",
	Long: `Run the same classification and formatting the hook performs against
the currently staged changes, and print the resulting entry to stdout.
Nothing is written to the changelog.

Examples:
  autolog preview                      # Entry with the fallback message
  autolog preview -m "Add billing"     # Entry with a specific message
  autolog preview --plain              # No separator framing (for scripts)`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVarP(&previewMessage, "message", "m", "", "Commit message for the entry")
	previewCmd.Flags().BoolVar(&previewPlain, "plain", false, "Plain output without framing")
}

func runPreview(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	nameStatus := git.StagedNameStatus("")
	if nameStatus == "" {
		output.PrintWarning(out, "No staged changes")
		return nil
	}

	message := previewMessage
	if message == "" {
		message = cfg.FallbackMessage
	}

	changes, analysis := analyze.Classify(nameStatus, git.StagedPatch(""))
	rendered := entry.Render(message, changes, analysis, time.Now(), entry.Caps{
		FilesPerCategory: cfg.MaxFilesPerCategory,
		Features:         cfg.MaxFeatures,
		Renames:          cfg.MaxRenames,
	})

	if previewPlain {
		fmt.Fprint(out, strings.TrimPrefix(rendered, "\n"))
		return nil
	}

	output.PrintRule(out, "changelog entry")
	fmt.Fprint(out, rendered)
	output.PrintRule(out, "")
	return nil
}
