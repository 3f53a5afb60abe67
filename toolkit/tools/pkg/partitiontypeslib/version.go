// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package partitiontypeslib

// ToolVersion is set at link time.
var ToolVersion = ""
