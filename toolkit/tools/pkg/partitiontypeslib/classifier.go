// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package partitiontypeslib

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/microsoft/gpt-partition-types/toolkit/tools/internal/logger"
	"github.com/microsoft/gpt-partition-types/toolkit/tools/partitiontypesapi"
)

// Classification is what is known about a partition type GUID.
type Classification struct {
	Type        partitiontypesapi.PartitionType
	Name        string
	Description string
	// Known is false when neither the registry nor the custom types recognize the GUID.
	Known bool
	// Custom is true when the GUID was resolved by the custom types rather than the registry.
	Custom bool
}

// Classifier resolves GUIDs against the built-in registry, then against user supplied custom types.
type Classifier struct {
	custom map[string]CustomPartitionType
}

func NewClassifier(custom *CustomTypesConfig) (*Classifier, error) {
	classifier := &Classifier{
		custom: make(map[string]CustomPartitionType),
	}

	if custom == nil {
		return classifier, nil
	}

	err := custom.IsValid()
	if err != nil {
		return nil, fmt.Errorf("%w:\n%w", ErrCustomTypesInvalid, err)
	}

	for _, partitionType := range custom.PartitionTypes {
		classifier.custom[partitionType.canonicalGuid()] = partitionType
	}

	return classifier, nil
}

// Classify resolves a GUID. A nil Classifier only knows the built-in registry.
func (c *Classifier) Classify(guid uuid.UUID) Classification {
	entry, err := partitiontypesapi.LookupEntryByGUID(guid)
	if err == nil {
		return Classification{
			Type:        entry.PartitionType(),
			Name:        entry.Name,
			Description: entry.Description,
			Known:       true,
		}
	}

	guidString := partitiontypesapi.CanonicalGuidString(guid)

	var custom CustomPartitionType
	found := false
	if c != nil {
		custom, found = c.custom[guidString]
	}

	if found {
		return Classification{
			Type: partitiontypesapi.PartitionType{
				GUID: guidString,
				OS:   partitiontypesapi.CustomOperatingSystem(custom.Name),
			},
			Name:        custom.Name,
			Description: custom.Description,
			Known:       true,
			Custom:      true,
		}
	}

	if !errors.Is(err, partitiontypesapi.ErrUnknownPartitionType) {
		logger.Log.Warnf("Unexpected partition type lookup failure (%s):\n%s", guidString, err)
	}

	return Classification{
		Type: partitiontypesapi.PartitionType{
			GUID: guidString,
			OS:   partitiontypesapi.OperatingSystemNone,
		},
		Description: err.Error(),
	}
}
