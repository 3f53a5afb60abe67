// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/microsoft/gpt-partition-types/toolkit/tools/partitiontypesapi"
	"github.com/microsoft/gpt-partition-types/toolkit/tools/pkg/partitiontypeslib"
)

type runContext struct {
	ctx context.Context
	out io.Writer
}

type GuidCmd struct {
	Guid string `arg:"" help:"Partition type GUID, in any case, optionally braced."`
}

func (c *GuidCmd) Run(rc *runContext) error {
	guid, err := uuid.Parse(c.Guid)
	if err != nil {
		return fmt.Errorf("invalid GUID (%s):\n%w", c.Guid, err)
	}

	entry, err := partitiontypesapi.LookupEntryByGUID(guid)
	if err != nil {
		return err
	}

	return printEntry(rc.out, entry)
}

type NameCmd struct {
	Name   string `arg:"" help:"Partition type mnemonic (e.g. LINUX_FS) or operating system name (e.g. linux)."`
	OsOnly bool   `name:"os-only" help:"Only resolve the operating system name and print its tag."`
}

func (c *NameCmd) Run(rc *runContext) error {
	if c.OsOnly {
		osTag, err := partitiontypesapi.ParseOperatingSystem(c.Name)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(rc.out, osTag)
		return err
	}

	entry, err := partitiontypesapi.LookupEntryByName(c.Name)
	if err != nil {
		return err
	}

	return printEntry(rc.out, entry)
}

func printEntry(out io.Writer, entry partitiontypesapi.Entry) error {
	_, err := fmt.Fprintf(out, "%s %s (%s): %s\n", entry.Name, entry.GUID, entry.OS, entry.Description)
	return err
}

type NativeCmd struct{}

func (c *NativeCmd) Run(rc *runContext) error {
	root, err := partitiontypesapi.NativeLinuxRoot()
	if err != nil {
		return err
	}

	entry, err := partitiontypesapi.LookupEntryByGUID(uuid.MustParse(root.GUID))
	if err != nil {
		return err
	}

	return printEntry(rc.out, entry)
}

type ListCmd struct {
	Os     string `name:"os" help:"Only list partition types of this operating system."`
	Format string `name:"format" placeholder:"(yaml|json)" help:"Output format." enum:"${exportformat}" default:"yaml"`
}

func (c *ListCmd) Run(rc *runContext) error {
	filter := partitiontypesapi.OperatingSystem("")
	if c.Os != "" {
		osTag, err := partitiontypesapi.ParseOperatingSystem(c.Os)
		if err != nil {
			return err
		}
		filter = osTag
	}

	document := partitiontypeslib.BuildRegistryDocument(filter)
	return partitiontypeslib.WriteRegistryDocument(rc.out, document, partitiontypeslib.ExportFormat(c.Format))
}

type InspectCmd struct {
	Image       string `arg:"" type:"existingfile" help:"Path of the disk image. .zst and .gz images are decompressed first."`
	CustomTypes string `name:"custom-types" type:"existingfile" help:"Path of a YAML file with additional partition types."`
	TempDir     string `name:"temp-dir" help:"Directory for decompressed copies of compressed images."`
}

func (c *InspectCmd) Run(rc *runContext) error {
	classifier, err := newClassifier(c.CustomTypes)
	if err != nil {
		return err
	}

	tempDir := c.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}

	reports, err := partitiontypeslib.InspectDiskImage(rc.ctx, c.Image, tempDir, classifier)
	if err != nil {
		return err
	}

	return printReports(rc.out, reports)
}

type InspectSfdiskCmd struct {
	DumpFile    string `arg:"" type:"existingfile" help:"Path of a saved 'sfdisk --dump --json' output."`
	CustomTypes string `name:"custom-types" type:"existingfile" help:"Path of a YAML file with additional partition types."`
}

func (c *InspectSfdiskCmd) Run(rc *runContext) error {
	classifier, err := newClassifier(c.CustomTypes)
	if err != nil {
		return err
	}

	reports, err := partitiontypeslib.InspectSfdiskDump(rc.ctx, c.DumpFile, classifier)
	if err != nil {
		return err
	}

	return printReports(rc.out, reports)
}

func newClassifier(customTypesFile string) (*partitiontypeslib.Classifier, error) {
	if customTypesFile == "" {
		return partitiontypeslib.NewClassifier(nil)
	}

	customTypes, err := partitiontypeslib.LoadCustomTypesFile(customTypesFile)
	if err != nil {
		return nil, err
	}

	return partitiontypeslib.NewClassifier(customTypes)
}

func printReports(out io.Writer, reports []partitiontypeslib.PartitionReport) error {
	table := bytes.Buffer{}
	writer := tabwriter.NewWriter(&table, 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "INDEX\tLABEL\tSTART\tEND\tSIZE\tTYPE\tOS\tTYPE GUID")
	for _, report := range reports {
		classification := report.Classification

		typeName := classification.Name
		if !classification.Known {
			typeName = "<unknown>"
		}

		fmt.Fprintf(writer, "%d\t%s\t%d\t%d\t%d\t%s\t%s\t%s\n", report.Index, report.Label, report.Start,
			report.End, report.Size, typeName, classification.Type.OS, classification.Type.GUID)
	}

	err := writer.Flush()
	if err != nil {
		return err
	}

	// Color whole lines after alignment, since tabwriter counts escape codes as text.
	unknown := color.New(color.FgRed, color.Bold)
	custom := color.New(color.FgYellow)

	lines := strings.SplitAfter(table.String(), "\n")
	for i, line := range lines {
		if i > 0 && i <= len(reports) {
			line = strings.TrimSuffix(line, "\n")
			switch {
			case !reports[i-1].Classification.Known:
				line = unknown.Sprint(line)
			case reports[i-1].Classification.Custom:
				line = custom.Sprint(line)
			}
			line += "\n"
		}

		_, err = io.WriteString(out, line)
		if err != nil {
			return err
		}
	}

	return nil
}

type SchemaCmd struct {
	Target string `name:"target" placeholder:"(registry|custom-types)" help:"Document to describe." enum:"${schematarget}" required:""`
	Output string `name:"output" help:"Path to write the JSON schema to." required:""`
}

func (c *SchemaCmd) Run(rc *runContext) error {
	return partitiontypeslib.WriteJSONSchemaFile(partitiontypeslib.SchemaTarget(c.Target), c.Output)
}
