package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zorak1103/bracecheck/internal/templates"
)

const configFileName = "bracecheck.yaml"

var (
	force bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample bracecheck.yaml",
	Long: `Init writes a sample bracecheck.yaml into the current directory.

The file documents every setting with its default value. Existing files are
left alone unless --force is given.`,
	Example: `  # Initialize in current directory
  bracecheck init

  # Force overwrite an existing file
  bracecheck init --force`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()

		if _, err := os.Stat(configFileName); err == nil && !force {
			_, _ = fmt.Fprintf(out, "⚠️  Skipping %s (already exists, use --force to overwrite)\n", configFileName)
			return nil
		}

		if err := os.WriteFile(configFileName, templates.ConfigYAML, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", configFileName, err)
		}

		_, _ = fmt.Fprintf(out, "✅ Created %s\n", configFileName)
		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")
}
