// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package partitiontypesapi

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
	"github.com/microsoft/gpt-partition-types/toolkit/tools/internal/logger"
	"golang.org/x/text/cases"
)

const (
	// Names further than this from every known name get no "did you mean" suggestion.
	maxSuggestionDistance = 2
)

var (
	canonicalGuidRegex = regexp.MustCompile(`^[0-9A-F]{8}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{12}$`)

	registryIndexOnce = sync.OnceValue(buildRegistryIndex)
)

var (
	Unused             = DefaultPartitionType()
	EfiSystem          = mustLookupMnemonic("EFI")
	BiosBoot           = mustLookupMnemonic("BIOS")
	MicrosoftReserved  = mustLookupMnemonic("MICROSOFT_RESERVED")
	MicrosoftBasicData = mustLookupMnemonic("BASIC")
	LinuxFilesystem    = mustLookupMnemonic("LINUX_FS")
	LinuxSwap          = mustLookupMnemonic("LINUX_SWAP")
	LinuxRootX86       = mustLookupMnemonic("LINUX_ROOT_X86")
	LinuxRootX86_64    = mustLookupMnemonic("LINUX_ROOT_X64")
	LinuxRootArm32     = mustLookupMnemonic("LINUX_ROOT_ARM_32")
	LinuxRootArm64     = mustLookupMnemonic("LINUX_ROOT_ARM_64")
	LinuxLvm           = mustLookupMnemonic("LINUX_LVM")
	LinuxHome          = mustLookupMnemonic("LINUX_HOME")
	LinuxSrv           = mustLookupMnemonic("LINUX_SRV")
	LinuxLuks          = mustLookupMnemonic("LINUX_LUKS")
	FreeDesktopBoot    = mustLookupMnemonic("FREEDESK_BOOT")
)

type registryIndex struct {
	// Each map points at the first matching row of the registry.
	byGuid       map[string]int
	byName       map[string]int
	firstByOs    map[OperatingSystem]int
	osByName     map[string]OperatingSystem
	duplicates   map[string][]string
	suggestNames []string
}

func buildRegistryIndex() *registryIndex {
	index := &registryIndex{
		byGuid:     make(map[string]int, len(registry)),
		byName:     make(map[string]int, len(registry)),
		firstByOs:  make(map[OperatingSystem]int),
		osByName:   make(map[string]OperatingSystem, len(operatingSystems)),
		duplicates: make(map[string][]string),
	}

	for _, os := range operatingSystems {
		index.osByName[foldName(os.String())] = os
		index.suggestNames = append(index.suggestNames, os.String())
	}

	for i, entry := range registry {
		if !canonicalGuidRegex.MatchString(entry.GUID) {
			panic(fmt.Sprintf("partition type (%s) has a non-canonical GUID (%s)", entry.Name, entry.GUID))
		}

		if err := entry.OS.IsValid(); err != nil {
			panic(fmt.Sprintf("partition type (%s) has an invalid OS:\n%v", entry.Name, err))
		}

		foldedName := foldName(entry.Name)
		if _, exists := index.byName[foldedName]; exists {
			panic(fmt.Sprintf("partition type name (%s) is declared more than once", entry.Name))
		}
		index.byName[foldedName] = i
		index.suggestNames = append(index.suggestNames, entry.Name)

		if first, exists := index.byGuid[entry.GUID]; exists {
			if len(index.duplicates[entry.GUID]) == 0 {
				index.duplicates[entry.GUID] = []string{registry[first].Name}
			}
			index.duplicates[entry.GUID] = append(index.duplicates[entry.GUID], entry.Name)
		} else {
			index.byGuid[entry.GUID] = i
		}

		if _, exists := index.firstByOs[entry.OS]; !exists {
			index.firstByOs[entry.OS] = i
		}
	}

	return index
}

// foldName normalizes a name for case-insensitive comparison.
// Both the input and the registry's names go through it.
func foldName(name string) string {
	// A Caser keeps state, so a new one is needed per call to stay safe for concurrent use.
	return cases.Fold().String(strings.TrimSpace(name))
}

func mustLookupMnemonic(name string) PartitionType {
	i, found := registryIndexOnce().byName[foldName(name)]
	if !found {
		panic(fmt.Sprintf("partition type (%s) is not in the registry", name))
	}
	return registry[i].PartitionType()
}

// LookupByGUID returns the partition type registered for a type GUID.
// When several rows share the GUID, the first one in declaration order wins.
func LookupByGUID(guid uuid.UUID) (PartitionType, error) {
	entry, err := LookupEntryByGUID(guid)
	if err != nil {
		return PartitionType{}, err
	}
	return entry.PartitionType(), nil
}

// LookupEntryByGUID is LookupByGUID but returns the whole registry row.
func LookupEntryByGUID(guid uuid.UUID) (Entry, error) {
	guidString := CanonicalGuidString(guid)
	logger.Log.Tracef("Looking up partition type GUID (%s)", guidString)

	i, found := registryIndexOnce().byGuid[guidString]
	if !found {
		return Entry{}, &UnknownPartitionTypeError{GUID: guidString}
	}

	return registry[i], nil
}

// LookupByName resolves a case-insensitive name to a partition type.
//
// A partition type mnemonic (e.g. "Linux_FS") resolves to that exact row. Otherwise the name is
// treated as an OS family (e.g. "linux", "HP-UX") and resolves to the first row declared with
// that family. Use ParseOperatingSystem when only the family is wanted.
func LookupByName(name string) (PartitionType, error) {
	entry, err := LookupEntryByName(name)
	if err != nil {
		return PartitionType{}, err
	}
	return entry.PartitionType(), nil
}

// LookupEntryByName is LookupByName but returns the whole registry row.
func LookupEntryByName(name string) (Entry, error) {
	folded := foldName(name)
	logger.Log.Tracef("Looking up partition type by name (%s)", folded)

	index := registryIndexOnce()

	if i, found := index.byName[folded]; found {
		return registry[i], nil
	}

	if os, found := index.osByName[folded]; found {
		if i, found := index.firstByOs[os]; found {
			return registry[i], nil
		}
	}

	return Entry{}, newUnknownOperatingSystemError(name)
}

// ParseOperatingSystem resolves a case-insensitive OS family name (e.g. "linux", "solaris illumos").
func ParseOperatingSystem(name string) (OperatingSystem, error) {
	folded := foldName(name)
	logger.Log.Tracef("Looking up operating system (%s)", folded)

	os, found := registryIndexOnce().osByName[folded]
	if !found {
		return "", newUnknownOperatingSystemError(name)
	}
	return os, nil
}

// LookupByString accepts either a type GUID in any of the forms uuid.Parse understands or a name
// as accepted by LookupByName.
func LookupByString(value string) (PartitionType, error) {
	guid, err := uuid.Parse(strings.TrimSpace(value))
	if err == nil {
		return LookupByGUID(guid)
	}
	return LookupByName(value)
}

// Entries returns a copy of the registry in declaration order.
func Entries() []Entry {
	return append([]Entry(nil), registry...)
}

// EntriesForOperatingSystem returns the rows declared with the given OS family, in declaration order.
func EntriesForOperatingSystem(os OperatingSystem) []Entry {
	var entries []Entry
	for _, entry := range registry {
		if entry.OS == os {
			entries = append(entries, entry)
		}
	}
	return entries
}

// DuplicateGUIDs returns, for each GUID declared by more than one row, the names of those rows in
// declaration order. The first name is the row that GUID lookups return.
func DuplicateGUIDs() map[string][]string {
	duplicates := make(map[string][]string, len(registryIndexOnce().duplicates))
	for guid, names := range registryIndexOnce().duplicates {
		duplicates[guid] = append([]string(nil), names...)
	}
	return duplicates
}

// IsRegisteredGUID reports whether any row declares the GUID.
func IsRegisteredGUID(guid uuid.UUID) bool {
	_, found := registryIndexOnce().byGuid[CanonicalGuidString(guid)]
	return found
}

func newUnknownOperatingSystemError(name string) *UnknownOperatingSystemError {
	err := &UnknownOperatingSystemError{Name: name}

	folded := foldName(name)
	if folded == "" {
		return err
	}

	bestDistance := maxSuggestionDistance + 1
	for _, candidate := range registryIndexOnce().suggestNames {
		distance := levenshtein.ComputeDistance(folded, foldName(candidate))
		if distance < bestDistance && distance < len(folded) {
			bestDistance = distance
			err.Suggestion = candidate
		}
	}

	return err
}
