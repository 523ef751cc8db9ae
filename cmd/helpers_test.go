package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeCommand runs rootCmd with args from an empty working directory
// and returns what was written to stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeCommandIn(t, t.TempDir(), args...)
}

// executeCommandIn is executeCommand with dir as the working directory.
func executeCommandIn(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()

	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	resetCommandState(t)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetCommandState clears flag values left behind by earlier executions.
func resetCommandState(t *testing.T) {
	t.Helper()

	cfgFile, verbose, cfg, errConfigLoad = "", false, nil, nil
	strict, colorMode, force = false, "auto", false

	for _, name := range []string{"strict", "color"} {
		checkCmd.Flags().Lookup(name).Changed = false
	}
	initCmd.Flags().Lookup("force").Changed = false
	for _, name := range []string{"config", "verbose"} {
		rootCmd.PersistentFlags().Lookup(name).Changed = false
	}

	// cobra adds help and version flags lazily on first Execute.
	for _, c := range append(rootCmd.Commands(), rootCmd) {
		for _, name := range []string{"help", "version"} {
			f := c.Flags().Lookup(name)
			if f == nil {
				continue
			}
			require.NoError(t, f.Value.Set("false"))
			f.Changed = false
		}
	}
}

// writeInput writes content to a file in a fresh temp dir and returns its path.
func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
