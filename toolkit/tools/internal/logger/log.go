// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package logger is the shared logrus logger used by the partition type tools.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

const (
	LevelsFlag        = "log-level"
	LevelsHelp        = "The minimum log level."
	LevelsPlaceholder = "(panic|fatal|error|warn|info|debug|trace)"

	FileFlag     = "log-file"
	FileFlagHelp = "Path to the log file. The file always receives debug level logs and above."

	ColorFlag         = "log-color"
	ColorFlagHelp     = "Color setting for the terminal log output."
	ColorsPlaceholder = "(always|auto|never)"

	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"

	defaultStderrLogLevel = logrus.InfoLevel
	defaultFileLogLevel   = logrus.DebugLevel
)

var (
	// Log is the process wide logger.
	Log *logrus.Logger

	stderrHook *WriterHook
	fileHook   *WriterHook
)

// LogFlags holds the values of the standard logging command-line flags.
type LogFlags struct {
	LogColor *string
	LogFile  *string
	LogLevel *string
}

func init() {
	// Library code may log before main has called one of the Init functions.
	InitStderrLog()
}

// Levels returns the names of the supported log levels.
func Levels() []string {
	levels := make([]string, 0, len(logrus.AllLevels))
	for _, level := range logrus.AllLevels {
		levels = append(levels, level.String())
	}
	return levels
}

// Colors returns the supported log color modes.
func Colors() []string {
	return []string{ColorAlways, ColorAuto, ColorNever}
}

// InitStderrLog sets up logging to stderr only.
func InitStderrLog() {
	stderrHook = NewWriterHook(os.Stderr, defaultStderrLogLevel, &logrus.TextFormatter{
		DisableQuote:  true,
		FullTimestamp: true,
		ForceColors:   !color.NoColor,
	})
	fileHook = nil

	Log = logrus.New()
	// All output goes through the hooks so that stderr and the log file can use different levels.
	Log.SetOutput(io.Discard)
	Log.AddHook(stderrHook)
	updateLoggerLevel()
}

// InitBestEffort sets up logging using the provided flags.
// Problems with the flags are logged instead of being returned.
func InitBestEffort(lf *LogFlags) {
	InitStderrLog()
	if lf == nil {
		return
	}

	err := setColorMode(derefOrEmpty(lf.LogColor))
	if err != nil {
		Log.Warnf("%s", err)
	}

	if logLevel := derefOrEmpty(lf.LogLevel); logLevel != "" {
		err = SetStderrLogLevel(logLevel)
		if err != nil {
			Log.Warnf("%s", err)
		}
	}

	if logFile := derefOrEmpty(lf.LogFile); logFile != "" {
		err = addFileHook(logFile)
		if err != nil {
			Log.Warnf("Failed to open log file (%s):\n%s", logFile, err)
		}
	}
}

// SetStderrLogLevel changes the minimum level written to stderr.
func SetStderrLogLevel(level string) error {
	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level (%s):\n%w", level, err)
	}

	stderrHook.SetLevel(parsedLevel)
	updateLoggerLevel()
	return nil
}

func setColorMode(mode string) error {
	formatter := stderrHook.formatter.(*logrus.TextFormatter)

	switch mode {
	case "", ColorAuto:
		formatter.ForceColors = !color.NoColor
		formatter.DisableColors = color.NoColor

	case ColorAlways:
		color.NoColor = false
		formatter.ForceColors = true
		formatter.DisableColors = false

	case ColorNever:
		color.NoColor = true
		formatter.ForceColors = false
		formatter.DisableColors = true

	default:
		return fmt.Errorf("invalid log color mode (%s)", mode)
	}

	return nil
}

func addFileHook(path string) error {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	fileHook = NewWriterHook(file, defaultFileLogLevel, &logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	Log.AddHook(fileHook)
	updateLoggerLevel()
	return nil
}

// The logger must let through everything that at least one hook wants.
func updateLoggerLevel() {
	level := stderrHook.Level()
	if fileHook != nil {
		level = max(level, fileHook.Level())
	}
	Log.SetLevel(level)
}

func derefOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
