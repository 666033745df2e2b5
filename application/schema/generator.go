// Package schema provides JSON schema generation for spec documents.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/reglet-dev/arrange/domain/entities"
	domerrors "github.com/reglet-dev/arrange/domain/errors"
)

// Reflect builds the schema for v. Only fields tagged jsonschema:"required"
// are required, and unknown properties are rejected.
func Reflect(v interface{}) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		Anonymous:                  true,
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true, // Expand the root definition inline
	}
	return reflector.Reflect(v)
}

// GenerateSchema creates an indented JSON schema (Draft 2020-12) from a Go struct.
func GenerateSchema(v interface{}) ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(Reflect(v), "", "  ")
	if err != nil {
		return nil, &domerrors.SchemaError{Type: fmt.Sprintf("%T", v), Err: err}
	}
	return jsonBytes, nil
}

// SortSpecsSchema returns the schema of a sort specification document.
func SortSpecsSchema() ([]byte, error) {
	return GenerateSchema(entities.SortSpecDocument{})
}

// EqualOptionsSchema returns the schema of an equality options document.
func EqualOptionsSchema() ([]byte, error) {
	return GenerateSchema(entities.EqualOptions{})
}
