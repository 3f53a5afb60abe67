// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package partitiontypeslib

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/microsoft/gpt-partition-types/toolkit/tools/partitiontypesapi"
	"gopkg.in/yaml.v3"
)

type ExportFormat string

const (
	ExportFormatYaml ExportFormat = "yaml"
	ExportFormatJson ExportFormat = "json"
)

func SupportedExportFormats() []string {
	return []string{string(ExportFormatYaml), string(ExportFormatJson)}
}

// RegistryDocument is the exported form of the partition type registry.
type RegistryDocument struct {
	PartitionTypes []PartitionTypeRecord `yaml:"partitionTypes" json:"partitionTypes" jsonschema:"required"`
}

type PartitionTypeRecord struct {
	Name        string                            `yaml:"name" json:"name" jsonschema:"required"`
	Description string                            `yaml:"description" json:"description"`
	GUID        string                            `yaml:"guid" json:"guid" jsonschema:"required"`
	OS          partitiontypesapi.OperatingSystem `yaml:"os" json:"os" jsonschema:"required"`
	// DuplicateOf names the earlier row that GUID lookups return instead of this one.
	DuplicateOf string `yaml:"duplicateOf,omitempty" json:"duplicateOf,omitempty"`
}

// BuildRegistryDocument exports the registry, optionally limited to one OS family.
// An empty filter exports every row.
func BuildRegistryDocument(filter partitiontypesapi.OperatingSystem) RegistryDocument {
	entries := partitiontypesapi.Entries()
	if filter != "" {
		entries = partitiontypesapi.EntriesForOperatingSystem(filter)
	}

	duplicateOf := make(map[string]string)
	for _, names := range partitiontypesapi.DuplicateGUIDs() {
		for _, name := range names[1:] {
			duplicateOf[name] = names[0]
		}
	}

	document := RegistryDocument{
		PartitionTypes: make([]PartitionTypeRecord, 0, len(entries)),
	}
	for _, entry := range entries {
		document.PartitionTypes = append(document.PartitionTypes, PartitionTypeRecord{
			Name:        entry.Name,
			Description: entry.Description,
			GUID:        entry.GUID,
			OS:          entry.OS,
			DuplicateOf: duplicateOf[entry.Name],
		})
	}

	return document
}

func WriteRegistryDocument(writer io.Writer, document RegistryDocument, format ExportFormat) error {
	var data []byte
	var err error

	switch format {
	case ExportFormatYaml:
		data, err = yaml.Marshal(document)

	case ExportFormatJson:
		data, err = json.MarshalIndent(document, "", "  ")
		data = append(data, '\n')

	default:
		return fmt.Errorf("%w (%s)", ErrExportFormat, format)
	}
	if err != nil {
		return fmt.Errorf("%w:\n%w", ErrExportWrite, err)
	}

	_, err = writer.Write(data)
	if err != nil {
		return fmt.Errorf("%w:\n%w", ErrExportWrite, err)
	}

	return nil
}
