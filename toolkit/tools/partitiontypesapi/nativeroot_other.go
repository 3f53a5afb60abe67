// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

//go:build !amd64 && !arm64 && !386 && !arm

package partitiontypesapi

// The registry has no root partition type for this architecture.
const nativeLinuxRootName = ""
