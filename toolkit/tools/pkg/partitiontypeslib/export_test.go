// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package partitiontypeslib

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/microsoft/gpt-partition-types/toolkit/tools/partitiontypesapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBuildRegistryDocumentAll(t *testing.T) {
	document := BuildRegistryDocument("")
	assert.Len(t, document.PartitionTypes, len(partitiontypesapi.Entries()))

	first := document.PartitionTypes[0]
	assert.Equal(t, "UNUSED", first.Name)
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", first.GUID)
	assert.Equal(t, partitiontypesapi.OperatingSystemNone, first.OS)
	assert.Empty(t, first.DuplicateOf)
}

func TestBuildRegistryDocumentDuplicates(t *testing.T) {
	document := BuildRegistryDocument("")

	duplicateOf := make(map[string]string)
	for _, record := range document.PartitionTypes {
		if record.DuplicateOf != "" {
			duplicateOf[record.Name] = record.DuplicateOf
		}
	}

	assert.Equal(t, map[string]string{
		"ANDROID_4":  "BASIC",
		"ANDROID_57": "ANDROID_16",
		"ANDROID_58": "ANDROID_19",
	}, duplicateOf)
}

func TestBuildRegistryDocumentFilter(t *testing.T) {
	document := BuildRegistryDocument(partitiontypesapi.OperatingSystemFreeBsd)
	require.NotEmpty(t, document.PartitionTypes)

	for _, record := range document.PartitionTypes {
		assert.Equal(t, partitiontypesapi.OperatingSystemFreeBsd, record.OS)
	}
}

func TestWriteRegistryDocumentYaml(t *testing.T) {
	document := BuildRegistryDocument(partitiontypesapi.OperatingSystemPlan9)

	buffer := bytes.Buffer{}
	err := WriteRegistryDocument(&buffer, document, ExportFormatYaml)
	require.NoError(t, err)
	assert.Contains(t, buffer.String(), "partitionTypes:")
	assert.Contains(t, buffer.String(), "os: Plan9")

	readBack := RegistryDocument{}
	err = yaml.Unmarshal(buffer.Bytes(), &readBack)
	require.NoError(t, err)
	assert.Equal(t, document, readBack)
}

func TestWriteRegistryDocumentJson(t *testing.T) {
	document := BuildRegistryDocument(partitiontypesapi.OperatingSystemAndroid)

	buffer := bytes.Buffer{}
	err := WriteRegistryDocument(&buffer, document, ExportFormatJson)
	require.NoError(t, err)

	readBack := RegistryDocument{}
	err = json.Unmarshal(buffer.Bytes(), &readBack)
	require.NoError(t, err)
	assert.Equal(t, document, readBack)
	assert.Contains(t, buffer.String(), `"duplicateOf": "BASIC"`)
}

func TestWriteRegistryDocumentBadFormat(t *testing.T) {
	buffer := bytes.Buffer{}
	err := WriteRegistryDocument(&buffer, RegistryDocument{}, ExportFormat("toml"))
	assert.ErrorIs(t, err, ErrExportFormat)
	assert.ErrorContains(t, err, "(toml)")
	assert.Zero(t, buffer.Len())
}
