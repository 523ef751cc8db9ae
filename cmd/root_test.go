package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zorak1103/bracecheck/internal/config"
)

func TestRootCmd_Structure(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bracecheck", rootCmd.Use)
	assert.Equal(t, "Delimiter balance checker", rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.NotEmpty(t, rootCmd.Version)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	t.Parallel()

	flags := rootCmd.PersistentFlags()

	configFlag := flags.Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "", configFlag.DefValue)
	assert.Contains(t, configFlag.Usage, "config file")

	verboseFlag := flags.Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "false", verboseFlag.DefValue)
	assert.Equal(t, "v", verboseFlag.Shorthand)
}

func TestRootCmd_SubcommandsList(t *testing.T) {
	t.Parallel()

	found := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		found[sub.Name()] = true
	}

	for _, expected := range []string{"check", "config", "init"} {
		assert.True(t, found[expected], "Expected subcommand '%s' to be registered", expected)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, "--help")
	require.NoError(t, err)

	for _, expected := range []string{"bracecheck", "balanced", "--config", "--verbose", "check"} {
		assert.Contains(t, stdout, expected)
	}
}

func TestRootCmd_VersionOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, "--version")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "bracecheck version "), "got %q", stdout)
}

func TestGetConfig(t *testing.T) {
	originalCfg := cfg
	defer func() { cfg = originalCfg }()

	cfg = nil
	assert.Nil(t, GetConfig())

	testConfig := &config.Config{Target: config.TargetConfig{Path: "main.go"}}
	cfg = testConfig
	assert.Same(t, testConfig, GetConfig())
}

func TestGetConfigLoadError(t *testing.T) {
	original := errConfigLoad
	defer func() { errConfigLoad = original }()

	errConfigLoad = nil
	assert.NoError(t, GetConfigLoadError())

	loadErr := errors.New("boom")
	errConfigLoad = loadErr
	assert.Same(t, loadErr, GetConfigLoadError())
}

func TestIsVerbose(t *testing.T) {
	originalVerbose := verbose
	defer func() { verbose = originalVerbose }()

	verbose = false
	assert.False(t, IsVerbose())

	verbose = true
	assert.True(t, IsVerbose())
}

func TestRequireConfig(t *testing.T) {
	originalCfg, originalErr := cfg, errConfigLoad
	defer func() { cfg, errConfigLoad = originalCfg, originalErr }()

	cfg, errConfigLoad = nil, nil
	_, err := requireConfig()
	assert.EqualError(t, err, "configuration not loaded")

	loadErr := errors.New("bad yaml")
	cfg, errConfigLoad = nil, loadErr
	_, err = requireConfig()
	assert.ErrorIs(t, err, loadErr)

	want := &config.Config{}
	cfg, errConfigLoad = want, nil
	got, err := requireConfig()
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestRootCmd_VersionAfterHelp(t *testing.T) {
	helpOut, _, err := executeCommand(t, "--help")
	require.NoError(t, err)
	require.Contains(t, helpOut, "Usage:")

	versionOut, _, err := executeCommand(t, "--version")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(versionOut, "bracecheck version "), "got %q", versionOut)
	assert.NotContains(t, versionOut, "Usage:")
}

func TestCheckCmd_RunsAfterHelp(t *testing.T) {
	_, _, err := executeCommand(t, "check", "--help")
	require.NoError(t, err)

	path := writeInput(t, "after-help.tsx", "()")
	stdout, _, err := executeCommand(t, "check", path)

	require.NoError(t, err)
	assert.Equal(t, "All braces/paren/brackets match\n", stdout)
}
