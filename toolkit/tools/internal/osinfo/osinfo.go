// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package osinfo

import (
	"gopkg.in/ini.v1"
)

const (
	OsReleasePath = "/etc/os-release"

	UnknownDistro  = "Unknown Distro"
	UnknownVersion = "Unknown Version"
)

// GetDistroAndVersion returns the NAME and VERSION fields of the host's os-release file.
func GetDistroAndVersion() (string, string) {
	return ReadDistroAndVersion(OsReleasePath)
}

func ReadDistroAndVersion(osReleasePath string) (string, string) {
	osRelease, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
	}, osReleasePath)
	if err != nil {
		return UnknownDistro, UnknownVersion
	}

	section := osRelease.Section(ini.DefaultSection)
	return valueOrDefault(section, "NAME", UnknownDistro), valueOrDefault(section, "VERSION", UnknownVersion)
}

func valueOrDefault(section *ini.Section, name string, defaultValue string) string {
	if !section.HasKey(name) {
		return defaultValue
	}

	value := section.Key(name).String()
	if value == "" {
		return defaultValue
	}
	return value
}
