package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refurbworks/laptop-audit/cmd/laptop-audit/commands"
)

func TestNew(t *testing.T) {
	t.Parallel()

	a, err := commands.New()
	require.NoError(t, err, "New should build the app")

	root := a.RootCmd()

	var subs []string
	for _, c := range root.Commands() {
		subs = append(subs, c.Name())
	}
	assert.Contains(t, subs, "scan", "the scan subcommand should be installed")
	assert.Contains(t, subs, "version", "the version subcommand should be installed")

	for _, flag := range []string{"verbose", "json-logs", "config"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "missing persistent flag %q", flag)
	}
	for _, flag := range []string{"dir", "dry-run", "skip-wipe"} {
		assert.NotNil(t, root.Flags().Lookup(flag), "missing flag %q", flag)
	}
}

func TestHelp(t *testing.T) {
	a, err := commands.New()
	require.NoError(t, err, "Setup: New should build the app")
	a.SetArgs("--help")

	require.NoError(t, a.Run(), "--help should not fail")
}

func TestVersion(t *testing.T) {
	a, err := commands.New()
	require.NoError(t, err, "Setup: New should build the app")
	a.SetArgs("version")

	require.NoError(t, a.Run(), "version should not fail")
	assert.False(t, a.UsageError(), "version is not a usage error")
}

func TestUnknownCommandIsAUsageError(t *testing.T) {
	a, err := commands.New()
	require.NoError(t, err, "Setup: New should build the app")
	a.SetArgs("no-such-command")

	require.Error(t, a.Run(), "an unknown command should fail")
	assert.True(t, a.UsageError(), "an unknown command is a usage error")
}

func TestFlagsAreAppliedToConfig(t *testing.T) {
	a, err := commands.New()
	require.NoError(t, err, "Setup: New should build the app")
	a.SetArgs("version", "-vv", "--json-logs")

	require.NoError(t, a.Run(), "version with global flags should not fail")

	assert.Equal(t, 2, a.Config().Verbosity, "unexpected verbosity")
	assert.True(t, a.Config().JSONLogs, "JSON logs should be enabled")
}
