// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package partitiontypesapi

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPartitionType   = errors.New("unknown partition type")
	ErrUnknownOperatingSystem = errors.New("unknown operating system")
)

// UnknownPartitionTypeError is returned when a GUID is not in the registry.
// Callers should usually treat the partition as unclassified rather than fail.
type UnknownPartitionTypeError struct {
	GUID string
}

func (e *UnknownPartitionTypeError) Error() string {
	return fmt.Sprintf("unknown partition type (%s)", e.GUID)
}

func (e *UnknownPartitionTypeError) Unwrap() error {
	return ErrUnknownPartitionType
}

// UnknownOperatingSystemError is returned when a name matches neither a partition type nor an OS family.
type UnknownOperatingSystemError struct {
	// Name is the input exactly as the caller supplied it.
	Name string
	// Suggestion is the closest known name, if any is close enough to be a likely typo.
	Suggestion string
}

func (e *UnknownOperatingSystemError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown operating system (%s), did you mean (%s)?", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown operating system (%s)", e.Name)
}

func (e *UnknownOperatingSystemError) Unwrap() error {
	return ErrUnknownOperatingSystem
}
