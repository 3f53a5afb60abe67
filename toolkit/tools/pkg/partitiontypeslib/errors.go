// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package partitiontypeslib

type PartitionTypesError struct {
	name    string
	message string
}

func NewPartitionTypesError(name string, message string) *PartitionTypesError {
	return &PartitionTypesError{
		name:    name,
		message: message,
	}
}

func (e *PartitionTypesError) Name() string {
	return e.name
}

func (e *PartitionTypesError) Error() string {
	return e.message
}

var (
	ErrCustomTypesRead     = NewPartitionTypesError("CustomTypes:Read", "failed to read custom partition types file")
	ErrCustomTypesInvalid  = NewPartitionTypesError("CustomTypes:Invalid", "invalid custom partition types")
	ErrDiskImageOpen       = NewPartitionTypesError("Inspect:OpenDiskImage", "failed to open disk image")
	ErrDiskImageDecompress = NewPartitionTypesError("Inspect:Decompress", "failed to decompress disk image")
	ErrPartitionTableRead  = NewPartitionTypesError("Inspect:ReadPartitionTable", "failed to read partition table")
	ErrNotGptDisk          = NewPartitionTypesError("Inspect:NotGpt", "disk image does not have a GPT partition table")
	ErrPartitionTypeParse  = NewPartitionTypesError("Inspect:ParsePartitionType", "failed to parse partition type GUID")
	ErrSfdiskDumpRead      = NewPartitionTypesError("Inspect:ReadSfdiskDump", "failed to read sfdisk dump")
	ErrSfdiskDumpParse     = NewPartitionTypesError("Inspect:ParseSfdiskDump", "failed to parse sfdisk dump")
	ErrExportFormat        = NewPartitionTypesError("Export:Format", "unsupported export format")
	ErrExportWrite         = NewPartitionTypesError("Export:Write", "failed to write partition type registry")
	ErrSchemaTarget        = NewPartitionTypesError("Schema:Target", "unknown schema target")
	ErrSchemaWrite         = NewPartitionTypesError("Schema:Write", "failed to write JSON schema")
)
