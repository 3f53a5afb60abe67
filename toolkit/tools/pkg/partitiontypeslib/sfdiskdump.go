// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package partitiontypeslib

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/microsoft/gpt-partition-types/toolkit/tools/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const (
	sfdiskGptLabel    = "gpt"
	sfdiskSectorsUnit = "sectors"
	defaultSectorSize = 512
)

// sfdiskPartitionTable is the output of "sfdisk --dump --json".
type sfdiskPartitionTable struct {
	Label      string            `json:"label"`      // Example: gpt
	Id         string            `json:"id"`         // Example: 1DFD88CF-6214-4574-97A2-C605D411CFBE
	Device     string            `json:"device"`     // Example: /dev/loop1
	Unit       string            `json:"unit"`       // Example: sectors
	FirstLba   uint64            `json:"firstlba"`   // Example: 2048
	LastLba    uint64            `json:"lastlba"`    // Example: 8388574
	SectorSize uint64            `json:"sectorsize"` // Example: 512
	Partitions []sfdiskPartition `json:"partitions"`
}

type sfdiskPartition struct {
	Node  string `json:"node"`  // Example: /dev/loop1p1
	Start uint64 `json:"start"` // Example: 2048
	Size  uint64 `json:"size"`  // Example: 16384
	Type  string `json:"type"`  // Example: C12A7328-F81F-11D2-BA4B-00A0C93EC93B
	Uuid  string `json:"uuid"`  // Example: 2789D1BC-3909-4B06-AD2D-DA531DABF7C8
	Name  string `json:"name"`  // Example: rootfs
}

type sfdiskDumpOutput struct {
	PartitionTable *sfdiskPartitionTable `json:"partitiontable"`
}

// InspectSfdiskDump classifies the partition types listed in a saved "sfdisk --dump --json" output.
// This covers block devices that can't be opened directly, such as disks on another host.
func InspectSfdiskDump(ctx context.Context, dumpPath string, classifier *Classifier) ([]PartitionReport, error) {
	_, span := otel.GetTracerProvider().Tracer(OtelTracerName).Start(ctx, "inspect_sfdisk_dump")
	defer span.End()

	logger.Log.Infof("Inspecting sfdisk dump (%s)", dumpPath)

	dumpJson, err := os.ReadFile(dumpPath)
	if err != nil {
		return nil, fmt.Errorf("%w (%s):\n%w", ErrSfdiskDumpRead, dumpPath, err)
	}

	var output sfdiskDumpOutput
	err = json.Unmarshal(dumpJson, &output)
	if err != nil {
		return nil, fmt.Errorf("%w (%s):\n%w", ErrSfdiskDumpParse, dumpPath, err)
	}

	table := output.PartitionTable
	if table == nil {
		return nil, fmt.Errorf("%w (%s):\nmissing partitiontable object", ErrSfdiskDumpParse, dumpPath)
	}

	if table.Label != sfdiskGptLabel {
		return nil, fmt.Errorf("%w (%s): found (%s)", ErrNotGptDisk, dumpPath, table.Label)
	}

	if table.Unit != sfdiskSectorsUnit {
		return nil, fmt.Errorf("%w (%s):\nunexpected unit (%s), expecting (%s)", ErrSfdiskDumpParse, dumpPath,
			table.Unit, sfdiskSectorsUnit)
	}

	sectorSize := table.SectorSize
	if sectorSize == 0 {
		sectorSize = defaultSectorSize
	}

	reports := []PartitionReport(nil)
	for i, partition := range table.Partitions {
		guid, err := uuid.Parse(partition.Type)
		if err != nil {
			return nil, fmt.Errorf("%w (partition %d, %s):\n%w", ErrPartitionTypeParse, i+1, partition.Type, err)
		}

		classification := classifier.Classify(guid)
		logger.Log.Debugf("Partition (%s) has type (%s)", partition.Node, classification.Type)

		end := partition.Start
		if partition.Size > 0 {
			end = partition.Start + partition.Size - 1
		}

		reports = append(reports, PartitionReport{
			Index:          i + 1,
			Label:          partition.Name,
			PartitionGUID:  partition.Uuid,
			Start:          partition.Start,
			End:            end,
			Size:           partition.Size * sectorSize,
			Classification: classification,
		})
	}

	span.SetAttributes(
		attribute.Int("partitions_count", len(reports)),
		attribute.Int("unknown_partition_types_count", countUnknown(reports)),
	)

	return reports, nil
}

func countUnknown(reports []PartitionReport) int {
	count := 0
	for _, report := range reports {
		if !report.Classification.Known {
			count++
		}
	}
	return count
}
