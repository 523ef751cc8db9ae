package cmd

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/zorak1103/bracecheck/internal/balance"
	"github.com/zorak1103/bracecheck/internal/config"
	"github.com/zorak1103/bracecheck/internal/reporting"
	"github.com/zorak1103/bracecheck/internal/source"
)

// ErrNotBalanced is returned by check in strict mode when the file is not balanced.
var ErrNotBalanced = errors.New("file is not balanced")

var (
	strict    bool
	colorMode string
)

var checkCmd = &cobra.Command{
	Use:   "check [FILE]",
	Short: "Check a file for balanced (), {} and []",
	Long: `Check reads FILE, scans every character once and prints a single line:

  All braces/paren/brackets match
  Unmatched closer <char> at <position>
  Mismatched <opener> at <position> with <closer> at <position>
  Unmatched openers remain: [(<char>, <position>), ...]

Positions are 1-based character offsets. Without FILE, target.path from the
configuration (or BRACECHECK_TARGET_PATH) is checked.

The exit status is 0 whenever the file could be read. With --strict (or
output.strict_exit) any result other than a match exits with status 1.`,
	Example: `  # Check a file
  bracecheck check src/pages/CreateCourse.tsx

  # Fail the shell pipeline when the file is not balanced
  bracecheck check --strict main.go

  # Check the file named in bracecheck.yaml
  bracecheck check`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		c, err := requireConfig()
		if err != nil {
			return err
		}

		path := c.Target.Path
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			return fmt.Errorf("no file to check: run %q or set target.path", "bracecheck check FILE")
		}

		mode := c.Output.Color
		if cmd.Flags().Changed("color") {
			mode = colorMode
		}
		switch mode {
		case config.ColorAuto, config.ColorAlways, config.ColorNever:
		default:
			return fmt.Errorf("invalid --color value %q: must be one of auto, always, never", mode)
		}

		text, err := source.Load(path)
		if err != nil {
			return err
		}

		if IsVerbose() {
			fmt.Fprintf(cmd.ErrOrStderr(), "Checking %s (%d characters)\n", path, utf8.RuneCountInString(text))
		}

		result := balance.Check(text)
		out := cmd.OutOrStdout()
		if err := reporting.Print(out, result, reporting.ColorEnabled(mode, out)); err != nil {
			return err
		}

		failOnFault := c.Output.StrictExit
		if cmd.Flags().Changed("strict") {
			failOnFault = strict
		}
		if failOnFault && !result.OK() {
			return fmt.Errorf("%s: %w (%s)", path, ErrNotBalanced, result.Kind)
		}

		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&strict, "strict", false, "exit with status 1 unless the file is balanced")
	checkCmd.Flags().StringVar(&colorMode, "color", config.ColorAuto, "colour the result line: auto, always or never")
}
