// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package partitiontypesapi

const nativeLinuxRootName = "LINUX_ROOT_ARM_32"
