// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package exekong holds the kong flag bundles and parser options shared by the partition type tools.
package exekong

import (
	"maps"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/microsoft/gpt-partition-types/toolkit/tools/internal/logger"
)

// LogFlags adds --log-level, --log-file and --log-color to a command.
type LogFlags struct {
	LogColor string `name:"log-color" placeholder:"(always|auto|never)" help:"${logcolorhelp}" enum:"${logcolorvalues}" default:""`
	LogFile  string `name:"log-file" help:"${logfilehelp}"`
	LogLevel string `name:"log-level" placeholder:"(panic|fatal|error|warn|info|debug|trace)" help:"${loglevelhelp}" enum:"${loglevelvalues}" default:""`
}

func (f LogFlags) AsLoggerFlags() logger.LogFlags {
	return logger.LogFlags{
		LogColor: &f.LogColor,
		LogFile:  &f.LogFile,
		LogLevel: &f.LogLevel,
	}
}

// TelemetryFlags controls OpenTelemetry trace export.
type TelemetryFlags struct {
	DisableTelemetry bool `name:"disable-telemetry" help:"Disable trace export even when OTEL_EXPORTER_OTLP_ENDPOINT is set."`
}

// Vars returns the interpolation variables that LogFlags needs, merged with the tool's own.
func Vars(toolVars kong.Vars) kong.Vars {
	vars := kong.Vars{
		"logcolorhelp":   logger.ColorFlagHelp,
		"logcolorvalues": enumValues(logger.Colors()),
		"logfilehelp":    logger.FileFlagHelp,
		"loglevelhelp":   logger.LevelsHelp,
		"loglevelvalues": enumValues(logger.Levels()),
	}
	maps.Copy(vars, toolVars)
	return vars
}

// Options returns the parser options every tool uses, for the given tool name and description.
func Options(name string, description string, toolVars kong.Vars) []kong.Option {
	return []kong.Option{
		kong.Name(name),
		kong.Description(description),
		Vars(toolVars),
		kong.HelpOptions{
			Compact:   true,
			FlagsLast: true,
		},
		kong.UsageOnError(),
	}
}

// The trailing comma lets an unset flag (empty string) pass the enum check.
func enumValues(values []string) string {
	return strings.Join(values, ",") + ","
}
