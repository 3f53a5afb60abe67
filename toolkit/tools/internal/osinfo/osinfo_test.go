// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package osinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDistroAndVersion(t *testing.T) {
	osReleasePath := filepath.Join(t.TempDir(), "os-release")
	err := os.WriteFile(osReleasePath, []byte(`NAME="Microsoft Azure Linux"
VERSION="3.0.20250102"
ID=azurelinux
PRETTY_NAME="Microsoft Azure Linux 3.0"
`), 0o644)
	require.NoError(t, err)

	distro, version := ReadDistroAndVersion(osReleasePath)
	assert.Equal(t, "Microsoft Azure Linux", distro)
	assert.Equal(t, "3.0.20250102", version)
}

func TestReadDistroAndVersionMissingFields(t *testing.T) {
	osReleasePath := filepath.Join(t.TempDir(), "os-release")
	err := os.WriteFile(osReleasePath, []byte("ID=arch\n"), 0o644)
	require.NoError(t, err)

	distro, version := ReadDistroAndVersion(osReleasePath)
	assert.Equal(t, UnknownDistro, distro)
	assert.Equal(t, UnknownVersion, version)
}

func TestReadDistroAndVersionMissingFile(t *testing.T) {
	distro, version := ReadDistroAndVersion(filepath.Join(t.TempDir(), "os-release"))
	assert.Equal(t, UnknownDistro, distro)
	assert.Equal(t, UnknownVersion, version)
}
