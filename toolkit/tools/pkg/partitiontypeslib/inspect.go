// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package partitiontypeslib

import (
	"context"
	"fmt"

	"github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/partition/gpt"
	"github.com/google/uuid"
	"github.com/microsoft/gpt-partition-types/toolkit/tools/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const (
	OtelTracerName = "partitiontypeslib"
)

// PartitionReport describes one partition of an inspected disk image.
type PartitionReport struct {
	// Index is the 1-based position of the partition in the table.
	Index          int
	Label          string
	PartitionGUID  string
	Start          uint64
	End            uint64
	Size           uint64
	Classification Classification
}

// InspectDiskImage classifies the type of every partition in a GPT disk image.
// The image is only read. Images ending in .zst or .gz are decompressed into tempDir first.
func InspectDiskImage(ctx context.Context, imagePath string, tempDir string, classifier *Classifier,
) ([]PartitionReport, error) {
	_, span := otel.GetTracerProvider().Tracer(OtelTracerName).Start(ctx, "inspect_disk_image")
	defer span.End()

	logger.Log.Infof("Inspecting disk image (%s)", imagePath)

	rawImagePath, cleanup, err := prepareDiskImage(imagePath, tempDir)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	disk, err := diskfs.Open(rawImagePath, diskfs.WithOpenMode(diskfs.ReadOnly))
	if err != nil {
		return nil, fmt.Errorf("%w (%s):\n%w", ErrDiskImageOpen, imagePath, err)
	}
	defer disk.File.Close()

	table, err := disk.GetPartitionTable()
	if err != nil {
		return nil, fmt.Errorf("%w (%s):\n%w", ErrPartitionTableRead, imagePath, err)
	}

	gptTable, isGpt := table.(*gpt.Table)
	if !isGpt {
		return nil, fmt.Errorf("%w (%s): found (%s)", ErrNotGptDisk, imagePath, table.Type())
	}

	reports, err := classifyPartitions(gptTable, classifier)
	if err != nil {
		return nil, fmt.Errorf("%w (%s):\n%w", ErrPartitionTableRead, imagePath, err)
	}

	span.SetAttributes(
		attribute.Int("partitions_count", len(reports)),
		attribute.Int("unknown_partition_types_count", countUnknown(reports)),
	)

	return reports, nil
}

func classifyPartitions(table *gpt.Table, classifier *Classifier) ([]PartitionReport, error) {
	reports := []PartitionReport(nil)
	for i, partition := range table.Partitions {
		// Empty slots have the unused type GUID.
		if partition == nil || partition.Type == gpt.Unused {
			continue
		}

		guid, err := uuid.Parse(string(partition.Type))
		if err != nil {
			return nil, fmt.Errorf("%w (partition %d, %s):\n%w", ErrPartitionTypeParse, i+1, partition.Type, err)
		}

		classification := classifier.Classify(guid)
		logger.Log.Debugf("Partition %d (%s) has type (%s)", i+1, partition.Name, classification.Type)

		reports = append(reports, PartitionReport{
			Index:          i + 1,
			Label:          partition.Name,
			PartitionGUID:  partition.GUID,
			Start:          partition.Start,
			End:            partition.End,
			Size:           partition.Size,
			Classification: classification,
		})
	}

	return reports, nil
}
