package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "gauge", cmd.Use)
	assert.Contains(t, cmd.Long, "uncertainty")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"eval", "validate", "record", "report"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestInvalidFormatRejected(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "xml", "report", "--db", "x"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestRecordCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	recordCmd, _, err := cmd.Find([]string{"record"})
	require.NoError(t, err)

	dbFlag := recordCmd.Flags().Lookup("db")
	require.NotNil(t, dbFlag)
	// --db is required, so default is empty
	assert.Equal(t, "", dbFlag.DefValue)
}

func TestReportCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	reportCmd, _, err := cmd.Find([]string{"report"})
	require.NoError(t, err)

	require.NotNil(t, reportCmd.Flags().Lookup("db"))
	require.NotNil(t, reportCmd.Flags().Lookup("unit"))

	precisionFlag := reportCmd.Flags().Lookup("precision")
	require.NotNil(t, precisionFlag)
	assert.Equal(t, "-1", precisionFlag.DefValue)
}
