// Package cmd implements the CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zorak1103/bracecheck/internal/config"
	"github.com/zorak1103/bracecheck/internal/version"
)

var (
	cfgFile       string
	verbose       bool
	cfg           *config.Config
	errConfigLoad error
)

var rootCmd = &cobra.Command{
	Use:   "bracecheck",
	Short: "Delimiter balance checker",
	Long: `bracecheck checks that (), {} and [] are balanced and correctly nested
in a single source file. It is meant for chasing down syntax errors by hand.

It reports exactly one line:
  - the first mismatched closer, with the opener it collided with
  - the first closer that has nothing open to close
  - up to 10 openers still unclosed at the end of the file
  - or that everything matches

Every character is scanned, including those inside strings and comments.`,
	Version: version.GetFullVersion(),
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		skipConfig := cmd.Name() == "init" || cmd.Name() == "help" || cmd.Name() == "version"
		if skipConfig {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		errConfigLoad = err
		if err != nil {
			// Stored, not returned: commands decide whether they need config.
			if verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Could not load config: %v\n", err)
			}
			return nil
		}

		if verbose && cfg.ConfigFilePath != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Loaded configuration from: %s\n", cfg.ConfigFilePath)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./bracecheck.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// GetConfig returns the loaded configuration or nil if not loaded.
// Must be called after rootCmd.PersistentPreRunE has executed.
func GetConfig() *config.Config {
	return cfg
}

// GetConfigLoadError returns any error encountered during config loading.
// Returns nil if configuration loaded successfully or was not attempted.
func GetConfigLoadError() error {
	return errConfigLoad
}

// IsVerbose returns whether verbose mode is enabled via the -v flag.
func IsVerbose() bool {
	return verbose
}

// requireConfig returns the loaded configuration or the error that prevented loading it.
func requireConfig() (*config.Config, error) {
	if err := GetConfigLoadError(); err != nil {
		return nil, fmt.Errorf("configuration could not be loaded: %w", err)
	}
	c := GetConfig()
	if c == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return c, nil
}
