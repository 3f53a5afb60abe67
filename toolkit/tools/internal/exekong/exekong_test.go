// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package exekong

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCmd struct {
	LogFlags
	TelemetryFlags
}

func newTestParser(t *testing.T, cli *testCmd) *kong.Kong {
	parser, err := kong.New(cli, Vars(kong.Vars{"extra": "value"}))
	require.NoError(t, err)
	return parser
}

func TestVarsMergesToolVars(t *testing.T) {
	vars := Vars(kong.Vars{"version": "1.0.0"})
	assert.Equal(t, "1.0.0", vars["version"])
	assert.Equal(t, "always,auto,never,", vars["logcolorvalues"])
	assert.Contains(t, vars["loglevelvalues"], "trace,")
}

func TestLogFlagsDefaults(t *testing.T) {
	cli := &testCmd{}
	_, err := newTestParser(t, cli).Parse([]string{})
	require.NoError(t, err)

	assert.Equal(t, LogFlags{}, cli.LogFlags)
	assert.False(t, cli.DisableTelemetry)
}

func TestLogFlagsParse(t *testing.T) {
	cli := &testCmd{}
	_, err := newTestParser(t, cli).Parse([]string{"--log-level", "debug", "--log-color", "never",
		"--log-file", "/tmp/tool.log", "--disable-telemetry"})
	require.NoError(t, err)

	loggerFlags := cli.AsLoggerFlags()
	assert.Equal(t, "debug", *loggerFlags.LogLevel)
	assert.Equal(t, "never", *loggerFlags.LogColor)
	assert.Equal(t, "/tmp/tool.log", *loggerFlags.LogFile)
	assert.True(t, cli.DisableTelemetry)
}

func TestLogFlagsBadLevel(t *testing.T) {
	cli := &testCmd{}
	_, err := newTestParser(t, cli).Parse([]string{"--log-level", "verbose"})
	assert.Error(t, err)
}
