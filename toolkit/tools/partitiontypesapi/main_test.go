// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package partitiontypesapi

import (
	"os"
	"testing"

	"github.com/microsoft/gpt-partition-types/toolkit/tools/internal/logger"
)

var (
	logMessagesHook *logger.MemoryLogHook
)

func TestMain(m *testing.M) {
	logger.InitStderrLog()

	// Lookups log at trace level.
	err := logger.SetStderrLogLevel("trace")
	if err != nil {
		logger.Log.Panicf("Failed to set log level:\n%s", err)
	}

	logMessagesHook = logger.NewMemoryLogHook()
	logger.Log.Hooks.Add(logMessagesHook)

	retVal := m.Run()

	os.Exit(retVal)
}
