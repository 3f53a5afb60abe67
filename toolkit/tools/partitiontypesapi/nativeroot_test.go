// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package partitiontypesapi

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNativeLinuxRoot(t *testing.T) {
	expected := map[string]PartitionType{
		"amd64": LinuxRootX86_64,
		"arm64": LinuxRootArm64,
		"386":   LinuxRootX86,
		"arm":   LinuxRootArm32,
	}

	root, err := NativeLinuxRoot()

	expectedRoot, supported := expected[runtime.GOARCH]
	if !supported {
		assert.ErrorContains(t, err, runtime.GOARCH)
		return
	}

	assert.NoError(t, err)
	assert.Equal(t, expectedRoot, root)
	assert.Equal(t, OperatingSystemLinux, root.OS)
}
