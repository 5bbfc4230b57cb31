package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statidx/statidx/internal/logging"
)

func TestNewRootCmd_RegistersEverySubcommand(t *testing.T) {
	root := NewRootCmd()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"build", "search", "sidecar", "inspect", "version"} {
		assert.True(t, names[want], "expected %q subcommand to be registered", want)
	}
}

func TestNewRootCmd_NoArgs_PrintsHelpWithoutError(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "statidx")
}

func TestNewRootCmd_DebugFlag_WritesLogFileOnCompletion(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--debug", "version", "--short"})

	require.NoError(t, root.Execute())
	_, err := os.Stat(logging.DefaultLogPath())
	assert.NoError(t, err, "expected --debug to create the log file")
}
