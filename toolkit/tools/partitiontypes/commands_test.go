// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/partition/gpt"
	"github.com/fatih/color"
	"github.com/klauspost/pgzip"
	"github.com/microsoft/gpt-partition-types/toolkit/tools/partitiontypesapi"
	"github.com/microsoft/gpt-partition-types/toolkit/tools/pkg/partitiontypeslib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func runCommand(t *testing.T, args ...string) (string, error) {
	cli := &RootCmd{}
	options := append(kongOptions(), kong.Exit(func(int) {
		t.Fatalf("unexpected exit")
	}))
	parser, err := kong.New(cli, options...)
	require.NoError(t, err)

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}

	out := bytes.Buffer{}
	err = kongCtx.Run(&runContext{
		ctx: context.Background(),
		out: &out,
	})
	return out.String(), err
}

func TestGuidCommand(t *testing.T) {
	out, err := runCommand(t, "guid", "0fc63daf-8483-4772-8e79-3d69d8477de4")
	assert.NoError(t, err)
	assert.Equal(t, "LINUX_FS 0FC63DAF-8483-4772-8E79-3D69D8477DE4 (Linux): Linux Filesystem Data\n", out)
}

func TestGuidCommandUnknown(t *testing.T) {
	_, err := runCommand(t, "guid", "11111111-1111-1111-1111-111111111111")
	assert.ErrorIs(t, err, partitiontypesapi.ErrUnknownPartitionType)
}

func TestGuidCommandInvalid(t *testing.T) {
	_, err := runCommand(t, "guid", "not-a-guid")
	assert.ErrorContains(t, err, "invalid GUID (not-a-guid)")
}

func TestNameCommand(t *testing.T) {
	out, err := runCommand(t, "name", "efi")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "EFI C12A7328-F81F-11D2-BA4B-00A0C93EC93B (unused)"), out)
}

func TestNameCommandOsOnly(t *testing.T) {
	out, err := runCommand(t, "name", "--os-only", "SOLARIS illumos")
	assert.NoError(t, err)
	assert.Equal(t, "Solaris Illumos\n", out)
}

func TestNameCommandUnknown(t *testing.T) {
	_, err := runCommand(t, "name", "beos")
	assert.ErrorIs(t, err, partitiontypesapi.ErrUnknownOperatingSystem)
}

func TestListCommandJson(t *testing.T) {
	out, err := runCommand(t, "list", "--os", "plan9", "--format", "json")
	assert.NoError(t, err)
	assert.Contains(t, out, `"name": "PLAN9_PART"`)
	assert.NotContains(t, out, "LINUX_FS")
}

func TestListCommandBadFormat(t *testing.T) {
	_, err := runCommand(t, "list", "--format", "toml")
	assert.Error(t, err)
}

func TestSchemaCommand(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "customtypes.schema.json")

	_, err := runCommand(t, "schema", "--target", "custom-types", "--output", outputFile)
	require.NoError(t, err)
	assert.FileExists(t, outputFile)
}

func TestPrintReports(t *testing.T) {
	reports := []partitiontypeslib.PartitionReport{
		{
			Index: 1,
			Label: "esp",
			Start: 2048,
			End:   4095,
			Size:  1048576,
			Classification: partitiontypeslib.Classification{
				Type:  partitiontypesapi.EfiSystem,
				Name:  "EFI",
				Known: true,
			},
		},
		{
			Index: 2,
			Label: "mystery",
			Start: 4096,
			End:   8191,
			Size:  2097152,
			Classification: partitiontypeslib.Classification{
				Type: partitiontypesapi.PartitionType{
					GUID: "11111111-1111-1111-1111-111111111111",
					OS:   partitiontypesapi.OperatingSystemNone,
				},
			},
		},
	}

	out := bytes.Buffer{}
	err := printReports(&out, reports)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "INDEX"))
	assert.Contains(t, lines[1], "EFI")
	assert.Contains(t, lines[1], "C12A7328-F81F-11D2-BA4B-00A0C93EC93B")
	assert.Contains(t, lines[2], "<unknown>")
	assert.Contains(t, lines[2], "11111111-1111-1111-1111-111111111111")
}

func TestNativeRootCommand(t *testing.T) {
	expected, err := partitiontypesapi.NativeLinuxRoot()
	if err != nil {
		t.Skipf("no native root partition type: %s", err)
	}

	out, err := runCommand(t, "native-root")
	assert.NoError(t, err)
	assert.Contains(t, out, expected.GUID+" (Linux)")
}

func TestInspectSfdiskCommand(t *testing.T) {
	testDir := t.TempDir()

	dumpFile := filepath.Join(testDir, "sfdisk.json")
	err := os.WriteFile(dumpFile, []byte(`{"partitiontable": {"label": "gpt", "unit": "sectors", "sectorsize": 512,
		"partitions": [
			{"node": "/dev/sda1", "start": 2048, "size": 2048, "type": "C12A7328-F81F-11D2-BA4B-00A0C93EC93B", "name": "esp"},
			{"node": "/dev/sda2", "start": 4096, "size": 2048, "type": "11111111-1111-1111-1111-111111111111", "name": "vendor"}
		]}}`), 0o644)
	require.NoError(t, err)

	customTypesFile := filepath.Join(testDir, "custom.yaml")
	err = os.WriteFile(customTypesFile, []byte(`partitionTypes:
- guid: 11111111-1111-1111-1111-111111111111
  name: acme-recovery
`), 0o644)
	require.NoError(t, err)

	out, err := runCommand(t, "inspect-sfdisk", dumpFile, "--custom-types", customTypesFile)
	require.NoError(t, err)
	assert.Contains(t, out, "EFI")
	assert.Contains(t, out, "custom:acme-recovery")
	assert.NotContains(t, out, "<unknown>")
}

func createTestDiskImage(t *testing.T, path string) {
	disk, err := diskfs.Create(path, 10*1024*1024, diskfs.Raw, diskfs.SectorSizeDefault)
	require.NoError(t, err)
	defer disk.File.Close()

	err = disk.Partition(&gpt.Table{
		LogicalSectorSize:  512,
		PhysicalSectorSize: 512,
		ProtectiveMBR:      true,
		Partitions: []*gpt.Partition{
			{Start: 2048, End: 4095, Type: gpt.EFISystemPartition, Name: "esp"},
			{Start: 4096, End: 8191, Type: "11111111-1111-1111-1111-111111111111", Name: "mystery"},
		},
	})
	require.NoError(t, err)
}

func TestInspectCommand(t *testing.T) {
	imagePath := filepath.Join(t.TempDir(), "disk.raw")
	createTestDiskImage(t, imagePath)

	out, err := runCommand(t, "inspect", imagePath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "esp")
	assert.Contains(t, lines[1], "EFI")
	assert.Contains(t, lines[2], "mystery")
	assert.Contains(t, lines[2], "<unknown>")
}

func TestInspectCommandTempDir(t *testing.T) {
	testDir := t.TempDir()
	rawPath := filepath.Join(testDir, "disk.raw")
	createTestDiskImage(t, rawPath)

	raw, err := os.ReadFile(rawPath)
	require.NoError(t, err)

	imagePath := filepath.Join(testDir, "disk.raw.gz")
	imageFile, err := os.Create(imagePath)
	require.NoError(t, err)
	writer := pgzip.NewWriter(imageFile)
	_, err = writer.Write(raw)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	require.NoError(t, imageFile.Close())

	tempDir := t.TempDir()
	out, err := runCommand(t, "inspect", imagePath, "--temp-dir", tempDir)
	require.NoError(t, err)
	assert.Contains(t, out, "EFI")

	leftovers, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestInspectCommandMissingImage(t *testing.T) {
	_, err := runCommand(t, "inspect", filepath.Join(t.TempDir(), "missing.raw"))
	assert.Error(t, err)
}
