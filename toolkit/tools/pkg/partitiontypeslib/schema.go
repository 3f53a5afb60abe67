// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package partitiontypeslib

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
)

type SchemaTarget string

const (
	SchemaTargetRegistry    SchemaTarget = "registry"
	SchemaTargetCustomTypes SchemaTarget = "custom-types"
)

func SupportedSchemaTargets() []string {
	return []string{string(SchemaTargetRegistry), string(SchemaTargetCustomTypes)}
}

func GenerateJSONSchema(target SchemaTarget) ([]byte, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
	}

	var schema *jsonschema.Schema
	switch target {
	case SchemaTargetRegistry:
		schema = reflector.Reflect(&RegistryDocument{})

	case SchemaTargetCustomTypes:
		schema = reflector.Reflect(&CustomTypesConfig{})

	default:
		return nil, fmt.Errorf("%w (%s)", ErrSchemaTarget, target)
	}

	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema:\n%w", err)
	}

	return schemaJSON, nil
}

func WriteJSONSchemaFile(target SchemaTarget, outputFile string) error {
	schemaJSON, err := GenerateJSONSchema(target)
	if err != nil {
		return err
	}

	err = os.WriteFile(outputFile, schemaJSON, 0o644)
	if err != nil {
		return fmt.Errorf("%w (%s):\n%w", ErrSchemaWrite, outputFile, err)
	}

	return nil
}
