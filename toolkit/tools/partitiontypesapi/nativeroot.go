// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package partitiontypesapi

import (
	"fmt"
	"runtime"
)

// NativeLinuxRoot returns the Linux root partition type for the architecture the binary was built for.
func NativeLinuxRoot() (PartitionType, error) {
	if nativeLinuxRootName == "" {
		return PartitionType{}, fmt.Errorf("no Linux root partition type for architecture (%s)", runtime.GOARCH)
	}

	entry, err := LookupEntryByName(nativeLinuxRootName)
	if err != nil {
		return PartitionType{}, err
	}
	return entry.PartitionType(), nil
}
