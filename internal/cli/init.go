package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/raveheart1/autolog/internal/config"
	"github.com/raveheart1/autolog/internal/output"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to .autolog/config.yml",
	Long: `Create the project configuration file with commented defaults.

Examples:
  autolog init           # Create .autolog/config.yml (fails if it exists)
  autolog init --force   # Overwrite an existing config`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing config")
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	path := config.ProjectConfigPath()

	if _, err := os.Stat(path); err == nil && !initForce {
		output.PrintWarning(out, fmt.Sprintf("Config already exists at %s (use --force to overwrite)", path))
		return nil
	}

	// Sanity-check the template stays parseable before writing it.
	var probe map[string]interface{}
	if err := yaml.Unmarshal([]byte(config.GetDefaultConfigTemplate()), &probe); err != nil {
		return fmt.Errorf("validating config template: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	output.PrintSuccess(out, fmt.Sprintf("Config created at %s", path))
	return nil
}
