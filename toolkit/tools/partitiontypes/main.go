// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Tool to look up GPT partition type GUIDs and inspect the partition types of disk images

package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/microsoft/gpt-partition-types/toolkit/tools/internal/exekong"
	"github.com/microsoft/gpt-partition-types/toolkit/tools/internal/logger"
	"github.com/microsoft/gpt-partition-types/toolkit/tools/internal/ptrutils"
	"github.com/microsoft/gpt-partition-types/toolkit/tools/internal/telemetry"
	"github.com/microsoft/gpt-partition-types/toolkit/tools/pkg/partitiontypeslib"
)

type RootCmd struct {
	Guid          GuidCmd          `cmd:"" help:"Look up a partition type by its type GUID."`
	Name          NameCmd          `cmd:"" help:"Look up a partition type by mnemonic or operating system name."`
	List          ListCmd          `cmd:"" help:"Export the partition type registry."`
	Inspect       InspectCmd       `cmd:"" help:"Classify the partition types of a GPT disk image."`
	InspectSfdisk InspectSfdiskCmd `cmd:"" name:"inspect-sfdisk" help:"Classify the partition types in a saved sfdisk JSON dump."`
	Native        NativeCmd        `cmd:"" name:"native-root" help:"Print the Linux root partition type for this build's architecture."`
	Schema        SchemaCmd        `cmd:"" help:"Write a JSON schema for the registry export or the custom types file."`

	exekong.LogFlags
	exekong.TelemetryFlags
	Version kong.VersionFlag `name:"version" help:"Print the tool version and exit."`
}

func kongOptions() []kong.Option {
	return exekong.Options("partitiontypes", "Looks up GPT partition types and inspects disk images.", kong.Vars{
		"exportformat": strings.Join(partitiontypeslib.SupportedExportFormats(), ","),
		"schematarget": strings.Join(partitiontypeslib.SupportedSchemaTargets(), ","),
		"version":      partitiontypeslib.ToolVersion,
	})
}

func main() {
	ctx := context.Background()

	cli := &RootCmd{}

	kongCtx := kong.Parse(cli, kongOptions()...)

	logger.InitBestEffort(ptrutils.PtrTo(cli.LogFlags.AsLoggerFlags()))

	err := telemetry.InitTelemetry(cli.DisableTelemetry, partitiontypeslib.ToolVersion)
	if err != nil {
		logger.Log.Warnf("Failed to initialize telemetry:\n%s", err)
	}

	err = kongCtx.Run(&runContext{
		ctx: ctx,
		out: os.Stdout,
	})

	// log.Fatalf skips deferred calls, so flush spans first.
	shutdownErr := telemetry.ShutdownTelemetry(ctx)
	if shutdownErr != nil {
		logger.Log.Warnf("Failed to shut down telemetry:\n%s", shutdownErr)
	}

	if err != nil {
		log.Fatalf("%s failed:\n%v", kongCtx.Command(), err)
	}
}
