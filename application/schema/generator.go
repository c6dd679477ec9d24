// Package schema publishes JSON Schemas for the documents the checker consumes,
// so loaders and editors can validate them before a run.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/SayeemRaza50/compliance-checker/domain/entities"
	domainerrors "github.com/SayeemRaza50/compliance-checker/domain/errors"
	"github.com/invopop/jsonschema"
)

// GenerateSchema creates a JSON schema from a Go struct.
// It uses the `invopop/jsonschema` library to reflect on the struct
// and generate a standard JSON Schema (Draft 2020-12).
func GenerateSchema(v interface{}) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true, // Expand struct definitions inline
	}
	schema := reflector.Reflect(v)

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, &domainerrors.SchemaError{Type: fmt.Sprintf("%T", v), Err: err}
	}

	return jsonBytes, nil
}

// PolicySchema returns the schema of a policy document. Every option is
// optional; unknown options are allowed since loaders ignore them.
func PolicySchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(&entities.Policy{})
	schema.Title = "SBOM compliance policy"

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, &domainerrors.SchemaError{Type: "Policy", Err: err}
	}
	return jsonBytes, nil
}

// PackageSchema returns the schema of one package record.
func PackageSchema() ([]byte, error) {
	return GenerateSchema(&entities.Package{})
}
