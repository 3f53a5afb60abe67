// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package partitiontypeslib

import (
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	"github.com/microsoft/gpt-partition-types/toolkit/tools/partitiontypesapi"
)

// CustomTypesConfig is a user supplied list of vendor partition types that the built-in registry
// doesn't know about. Each one is classified with partitiontypesapi.CustomOperatingSystem.
type CustomTypesConfig struct {
	PartitionTypes []CustomPartitionType `yaml:"partitionTypes" json:"partitionTypes,omitempty"`
}

type CustomPartitionType struct {
	GUID        string `yaml:"guid" json:"guid" jsonschema:"required"`
	Name        string `yaml:"name" json:"name" jsonschema:"required"`
	Description string `yaml:"description" json:"description,omitempty"`
}

func (c *CustomTypesConfig) IsValid() error {
	seen := make(map[string]int, len(c.PartitionTypes))

	for i, partitionType := range c.PartitionTypes {
		err := partitionType.IsValid()
		if err != nil {
			return fmt.Errorf("invalid partitionTypes item at index %d:\n%w", i, err)
		}

		guid := partitionType.canonicalGuid()
		if first, exists := seen[guid]; exists {
			return fmt.Errorf("partitionTypes items at index %d and %d have the same GUID (%s)", first, i, guid)
		}
		seen[guid] = i
	}

	return nil
}

func (p *CustomPartitionType) IsValid() error {
	// govalidator only accepts the lowercase form.
	if !govalidator.IsUUID(strings.ToLower(p.GUID)) {
		return fmt.Errorf("invalid guid value (%s)", p.GUID)
	}

	if p.Name == "" {
		return fmt.Errorf("name must not be empty")
	}

	if !govalidator.IsPrintableASCII(p.Name) {
		return fmt.Errorf("invalid name value (%s): must be printable ASCII", p.Name)
	}

	if strings.Contains(p.Name, ":") {
		return fmt.Errorf("invalid name value (%s): must not contain ':'", p.Name)
	}

	guid, err := uuid.Parse(p.GUID)
	if err != nil {
		return fmt.Errorf("invalid guid value (%s):\n%w", p.GUID, err)
	}

	// The built-in classification always wins, so an override would be silently ignored.
	entry, err := partitiontypesapi.LookupEntryByGUID(guid)
	if err == nil {
		return fmt.Errorf("guid (%s) is already registered as (%s)", p.GUID, entry.Name)
	}

	return nil
}

func (p *CustomPartitionType) canonicalGuid() string {
	return strings.ToUpper(p.GUID)
}

// LoadCustomTypesFile reads and validates a custom partition types YAML file.
func LoadCustomTypesFile(path string) (*CustomTypesConfig, error) {
	config := &CustomTypesConfig{}
	err := UnmarshalAndValidateYamlFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("%w (%s):\n%w", ErrCustomTypesRead, path, err)
	}

	return config, nil
}
