// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package partitiontypesapi maps GPT partition type GUIDs to the operating system family that uses them.
//
// The registry is compiled in and never changes at runtime, so every function in this package is safe
// to call concurrently.
package partitiontypesapi

import (
	"strings"

	"github.com/google/uuid"
)

const (
	unusedGuid = "00000000-0000-0000-0000-000000000000"
)

// PartitionType is a GPT partition type GUID paired with its OS family.
// The GUID is always the canonical uppercase 8-4-4-4-12 form, so values can be compared with ==.
type PartitionType struct {
	GUID string          `yaml:"guid" json:"guid"`
	OS   OperatingSystem `yaml:"os" json:"os"`
}

// Entry is a single row of the registry.
type Entry struct {
	// Name is the partition type mnemonic (e.g. LINUX_FS).
	Name        string
	Description string
	GUID        string
	OS          OperatingSystem
}

// DefaultPartitionType returns the "not yet classified" placeholder: the all-zero GUID with no OS.
// Lookups never return it for input that fails to resolve; those return errors instead.
func DefaultPartitionType() PartitionType {
	return PartitionType{
		GUID: unusedGuid,
		OS:   OperatingSystemNone,
	}
}

func (p PartitionType) UUID() (uuid.UUID, error) {
	return uuid.Parse(p.GUID)
}

func (p PartitionType) IsDefault() bool {
	return p == DefaultPartitionType()
}

func (p PartitionType) String() string {
	return p.GUID + " (" + p.OS.String() + ")"
}

func (e Entry) PartitionType() PartitionType {
	return PartitionType{
		GUID: e.GUID,
		OS:   e.OS,
	}
}

// CanonicalGuidString renders a UUID the way the registry stores it.
func CanonicalGuidString(guid uuid.UUID) string {
	return strings.ToUpper(guid.String())
}
