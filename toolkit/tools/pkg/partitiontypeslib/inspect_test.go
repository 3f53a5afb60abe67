// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package partitiontypeslib

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/partition"
	"github.com/diskfs/go-diskfs/partition/gpt"
	"github.com/diskfs/go-diskfs/partition/mbr"
	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/microsoft/gpt-partition-types/toolkit/tools/internal/logger"
	"github.com/microsoft/gpt-partition-types/toolkit/tools/partitiontypesapi"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDiskSize = 10 * 1024 * 1024
)

func createTestDiskImage(t *testing.T, path string, table partition.Table) {
	disk, err := diskfs.Create(path, testDiskSize, diskfs.Raw, diskfs.SectorSizeDefault)
	require.NoError(t, err)
	defer disk.File.Close()

	err = disk.Partition(table)
	require.NoError(t, err)
}

func createTestGptDiskImage(t *testing.T, path string) {
	createTestDiskImage(t, path, &gpt.Table{
		LogicalSectorSize:  512,
		PhysicalSectorSize: 512,
		ProtectiveMBR:      true,
		Partitions: []*gpt.Partition{
			{Start: 2048, End: 4095, Type: gpt.EFISystemPartition, Name: "esp"},
			{Start: 4096, End: 8191, Type: gpt.LinuxFilesystem, Name: "rootfs"},
			{Start: 8192, End: 10239, Type: "AAAAAAAA-BBBB-CCCC-DDDD-EEEEEEEEEEEE", Name: "vendor"},
			{Start: 10240, End: 12287, Type: "11111111-1111-1111-1111-111111111111", Name: "mystery"},
		},
	})
}

func compressTestFile(t *testing.T, inputPath string, outputPath string,
	newWriter func(io.Writer) (io.WriteCloser, error),
) {
	input, err := os.Open(inputPath)
	require.NoError(t, err)
	defer input.Close()

	output, err := os.Create(outputPath)
	require.NoError(t, err)
	defer output.Close()

	writer, err := newWriter(output)
	require.NoError(t, err)

	_, err = io.Copy(writer, input)
	require.NoError(t, err)

	err = writer.Close()
	require.NoError(t, err)
}

func assertTestGptReports(t *testing.T, reports []PartitionReport) {
	if !assert.Len(t, reports, 4) {
		return
	}

	assert.Equal(t, 1, reports[0].Index)
	assert.Equal(t, "esp", reports[0].Label)
	assert.Equal(t, uint64(2048), reports[0].Start)
	assert.Equal(t, uint64(4095), reports[0].End)
	assert.Equal(t, uint64(2048*512), reports[0].Size)
	assert.Equal(t, partitiontypesapi.EfiSystem, reports[0].Classification.Type)
	assert.Equal(t, "EFI", reports[0].Classification.Name)
	assert.NotEmpty(t, reports[0].PartitionGUID)

	assert.Equal(t, "rootfs", reports[1].Label)
	assert.Equal(t, partitiontypesapi.LinuxFilesystem, reports[1].Classification.Type)
	assert.True(t, reports[1].Classification.Known)

	assert.Equal(t, "vendor", reports[2].Label)
	assert.Equal(t, partitiontypesapi.CustomOperatingSystem("acme-data"), reports[2].Classification.Type.OS)
	assert.True(t, reports[2].Classification.Custom)

	assert.Equal(t, "mystery", reports[3].Label)
	assert.False(t, reports[3].Classification.Known)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", reports[3].Classification.Type.GUID)
}

func newTestClassifier(t *testing.T) *Classifier {
	classifier, err := NewClassifier(&CustomTypesConfig{
		PartitionTypes: []CustomPartitionType{
			{GUID: "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee", Name: "acme-data"},
		},
	})
	require.NoError(t, err)
	return classifier
}

func TestInspectDiskImage(t *testing.T) {
	testDir := t.TempDir()
	imagePath := filepath.Join(testDir, "disk.raw")
	createTestGptDiskImage(t, imagePath)

	logMessages := logMessagesHook.AddSubHook()
	defer logMessages.Close()

	reports, err := InspectDiskImage(context.Background(), imagePath, testDir, newTestClassifier(t))
	assert.NoError(t, err)
	assertTestGptReports(t, reports)

	assert.Contains(t, logMessages.ConsumeMessages(), logger.MemoryLogMessage{
		Message: "Inspecting disk image (" + imagePath + ")",
		Level:   logrus.InfoLevel,
	})
}

func TestInspectDiskImageZst(t *testing.T) {
	testDir := t.TempDir()
	rawPath := filepath.Join(testDir, "disk.raw")
	imagePath := filepath.Join(testDir, "disk.raw.zst")
	createTestGptDiskImage(t, rawPath)
	compressTestFile(t, rawPath, imagePath, func(w io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(w)
	})

	tempDir := t.TempDir()
	reports, err := InspectDiskImage(context.Background(), imagePath, tempDir, newTestClassifier(t))
	assert.NoError(t, err)
	assertTestGptReports(t, reports)

	// The decompressed copy is removed afterwards.
	leftovers, err := os.ReadDir(tempDir)
	assert.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestInspectDiskImageGz(t *testing.T) {
	testDir := t.TempDir()
	rawPath := filepath.Join(testDir, "disk.raw")
	imagePath := filepath.Join(testDir, "disk.raw.gz")
	createTestGptDiskImage(t, rawPath)
	compressTestFile(t, rawPath, imagePath, func(w io.Writer) (io.WriteCloser, error) {
		return pgzip.NewWriter(w), nil
	})

	reports, err := InspectDiskImage(context.Background(), imagePath, testDir, newTestClassifier(t))
	assert.NoError(t, err)
	assertTestGptReports(t, reports)
}

func TestInspectDiskImageCorruptZst(t *testing.T) {
	testDir := t.TempDir()
	imagePath := filepath.Join(testDir, "disk.raw.zst")
	err := os.WriteFile(imagePath, []byte("definitely not zstd"), 0o644)
	require.NoError(t, err)

	_, err = InspectDiskImage(context.Background(), imagePath, testDir, newTestClassifier(t))
	assert.ErrorIs(t, err, ErrDiskImageDecompress)
}

func TestInspectDiskImageMbr(t *testing.T) {
	testDir := t.TempDir()
	imagePath := filepath.Join(testDir, "disk.raw")
	createTestDiskImage(t, imagePath, &mbr.Table{
		LogicalSectorSize:  512,
		PhysicalSectorSize: 512,
		Partitions: []*mbr.Partition{
			{Type: mbr.Linux, Start: 2048, Size: 2048},
		},
	})

	_, err := InspectDiskImage(context.Background(), imagePath, testDir, newTestClassifier(t))
	assert.ErrorIs(t, err, ErrNotGptDisk)
	assert.ErrorContains(t, err, "found (mbr)")
}

func TestInspectDiskImageMissing(t *testing.T) {
	testDir := t.TempDir()

	_, err := InspectDiskImage(context.Background(), filepath.Join(testDir, "missing.raw"), testDir,
		newTestClassifier(t))
	assert.ErrorIs(t, err, ErrDiskImageOpen)
}
