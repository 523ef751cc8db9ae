package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the effective configuration",
	Long: `Display the effective configuration that bracecheck will use at runtime.

This shows the merged configuration from:
  1. Default values
  2. Configuration file (bracecheck.yaml)
  3. Environment variables (highest priority)`,
	Example: `  # Show current configuration
  bracecheck config

  # Show with custom config file
  bracecheck config --config /etc/bracecheck/bracecheck.yaml`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := requireConfig()
		if err != nil {
			return fmt.Errorf("%w\n\nTo create a sample configuration, run: bracecheck init", err)
		}

		out := cmd.OutOrStdout()
		from := c.ConfigFilePath
		if from == "" {
			from = "(defaults/environment)"
		}
		target := c.Target.Path
		if target == "" {
			target = "(not set, pass FILE to check)"
		}

		_, _ = fmt.Fprintln(out, "=== bracecheck Effective Configuration ===")
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintf(out, "   Config File:    %s\n", from)
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, "🎯 Target:")
		_, _ = fmt.Fprintf(out, "   Path:           %s\n", target)
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, "📄 Output:")
		_, _ = fmt.Fprintf(out, "   Color:          %s\n", c.Output.Color)
		_, _ = fmt.Fprintf(out, "   Strict Exit:    %v\n", c.Output.StrictExit)

		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(configCmd)
}
