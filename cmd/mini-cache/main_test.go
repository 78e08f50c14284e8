package main

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestShellCommandFlagDefaults(t *testing.T) {
	flags := newShellCommand().Flags()
	assert.Check(t, is.Equal(flags.Lookup("capacity").DefValue, "128"))
	assert.Check(t, is.Equal(flags.Lookup("script").DefValue, ""))
	assert.Check(t, is.Equal(flags.Lookup("log-level").DefValue, "info"))
}

func TestShellCommandRejectsBadCapacity(t *testing.T) {
	cmd := newShellCommand()
	cmd.SetArgs([]string{"--capacity", "0"})
	err := cmd.Execute()
	assert.Check(t, is.ErrorContains(err, "capacity must be at least 1"))
}

func TestShellCommandRejectsBadLogLevel(t *testing.T) {
	cmd := newShellCommand()
	cmd.SetArgs([]string{"--log-level", "shouting"})
	err := cmd.Execute()
	assert.Check(t, is.ErrorContains(err, "parse log level"))
}
