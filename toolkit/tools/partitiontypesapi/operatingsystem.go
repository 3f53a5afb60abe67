// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package partitiontypesapi

import (
	"fmt"
	"strings"
)

// OperatingSystem is the OS family a partition type belongs to.
//
// The value of each well-known constant is the family's canonical name. Vendor types with no
// well-known family use CustomOperatingSystem, whose values carry the "custom:" prefix so they
// can never be confused with a well-known family.
type OperatingSystem string

const (
	OperatingSystemNone        OperatingSystem = "unused"
	OperatingSystemAndroid     OperatingSystem = "android"
	OperatingSystemAtari       OperatingSystem = "atari"
	OperatingSystemCeph        OperatingSystem = "Ceph"
	OperatingSystemChrome      OperatingSystem = "Chrome"
	OperatingSystemCoreOs      OperatingSystem = "CoreOs"
	OperatingSystemFreeBsd     OperatingSystem = "FreeBsd"
	OperatingSystemFreeDesktop OperatingSystem = "FreeDesktop"
	OperatingSystemHaiku       OperatingSystem = "Haiku"
	OperatingSystemHpUnix      OperatingSystem = "HP-UX"
	OperatingSystemLinux       OperatingSystem = "Linux"
	OperatingSystemMidnightBsd OperatingSystem = "MidnightBsd"
	OperatingSystemMacOs       OperatingSystem = "MacOS"
	OperatingSystemNetBsd      OperatingSystem = "NetBsd"
	OperatingSystemOnie        OperatingSystem = "Onie"
	OperatingSystemOpenBsd     OperatingSystem = "OpenBsd"
	OperatingSystemPlan9       OperatingSystem = "Plan9"
	OperatingSystemPowerPc     OperatingSystem = "PowerPc"
	OperatingSystemSolaris     OperatingSystem = "Solaris Illumos"
	OperatingSystemVmWare      OperatingSystem = "VmWare"
	OperatingSystemWindows     OperatingSystem = "Windows"
	OperatingSystemQnx         OperatingSystem = "QNX"

	customOperatingSystemPrefix = "custom:"
)

var operatingSystems = []OperatingSystem{
	OperatingSystemNone,
	OperatingSystemAndroid,
	OperatingSystemAtari,
	OperatingSystemCeph,
	OperatingSystemChrome,
	OperatingSystemCoreOs,
	OperatingSystemFreeBsd,
	OperatingSystemFreeDesktop,
	OperatingSystemHaiku,
	OperatingSystemHpUnix,
	OperatingSystemLinux,
	OperatingSystemMidnightBsd,
	OperatingSystemMacOs,
	OperatingSystemNetBsd,
	OperatingSystemOnie,
	OperatingSystemOpenBsd,
	OperatingSystemPlan9,
	OperatingSystemPowerPc,
	OperatingSystemSolaris,
	OperatingSystemVmWare,
	OperatingSystemWindows,
	OperatingSystemQnx,
}

// OperatingSystems returns the well-known OS families.
func OperatingSystems() []OperatingSystem {
	return append([]OperatingSystem(nil), operatingSystems...)
}

// CustomOperatingSystem creates a vendor-specific OS family that isn't one of the well-known ones.
func CustomOperatingSystem(name string) OperatingSystem {
	return OperatingSystem(customOperatingSystemPrefix + name)
}

func (o OperatingSystem) IsCustom() bool {
	return strings.HasPrefix(string(o), customOperatingSystemPrefix)
}

// CustomName returns the name passed to CustomOperatingSystem.
func (o OperatingSystem) CustomName() (string, bool) {
	return strings.CutPrefix(string(o), customOperatingSystemPrefix)
}

func (o OperatingSystem) String() string {
	return string(o)
}

func (o OperatingSystem) IsValid() error {
	if name, isCustom := o.CustomName(); isCustom {
		if name == "" {
			return fmt.Errorf("custom operating system name must not be empty")
		}
		return nil
	}

	for _, known := range operatingSystems {
		if o == known {
			return nil
		}
	}

	return fmt.Errorf("invalid operating system (%s)", o)
}
