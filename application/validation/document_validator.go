package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/reglet-dev/arrange/domain/entities"
	domerrors "github.com/reglet-dev/arrange/domain/errors"
	"github.com/reglet-dev/arrange/domain/ports"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// DocumentValidator implements validation of decoded spec documents using
// the JSON schemas held by a registry. Compiled schemas are cached per kind.
type DocumentValidator struct {
	registry ports.SchemaRegistry

	mu       sync.Mutex
	compiled map[string]*jsonschema.Schema
}

// NewDocumentValidator creates a new validator.
func NewDocumentValidator(registry ports.SchemaRegistry) ports.DocumentValidator {
	return &DocumentValidator{
		registry: registry,
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// Validate checks doc against the schema registered for kind. Schema
// violations are reported in the result; an error is returned only when the
// schema itself is missing or broken, or doc cannot be represented as JSON.
func (v *DocumentValidator) Validate(kind string, doc any) (*entities.ValidationResult, error) {
	sch, err := v.schema(kind)
	if err != nil {
		return nil, err
	}

	// Decoders disagree on number and timestamp types; normalise to what
	// encoding/json produces before validating.
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, &domerrors.DecodeError{Format: "json", Kind: kind, Err: err}
	}
	var obj interface{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, &domerrors.DecodeError{Format: "json", Kind: kind, Err: err}
	}

	result := &entities.ValidationResult{Valid: true}
	if err := sch.Validate(obj); err != nil {
		result.Valid = false
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			result.Errors = append(result.Errors, leafErrors(ve)...)
		} else {
			result.Errors = append(result.Errors, entities.ValidationError{
				Field:   kind,
				Message: err.Error(),
			})
		}
	}
	return result, nil
}

func (v *DocumentValidator) schema(kind string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if sch, ok := v.compiled[kind]; ok {
		return sch, nil
	}

	schemaStr, ok := v.registry.GetSchema(kind)
	if !ok {
		return nil, &domerrors.SchemaError{Type: kind, Err: fmt.Errorf("no schema registered")}
	}

	url := kind + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, strings.NewReader(schemaStr)); err != nil {
		return nil, &domerrors.SchemaError{Type: kind, Err: err}
	}
	sch, err := compiler.Compile(url)
	if err != nil {
		return nil, &domerrors.SchemaError{Type: kind, Err: err}
	}
	v.compiled[kind] = sch
	return sch, nil
}

// leafErrors flattens the validation error tree to its most specific causes.
func leafErrors(ve *jsonschema.ValidationError) []entities.ValidationError {
	if len(ve.Causes) == 0 {
		field := ve.InstanceLocation
		if field == "" {
			field = "/"
		}
		return []entities.ValidationError{{Field: field, Message: ve.Message}}
	}
	var out []entities.ValidationError
	for _, c := range ve.Causes {
		out = append(out, leafErrors(c)...)
	}
	return out
}

// FirstError summarises a failed result as an InvalidArgumentError.
func FirstError(argument string, result *entities.ValidationResult) error {
	if result == nil || result.Valid {
		return nil
	}
	if len(result.Errors) == 0 {
		return domerrors.NewInvalidArgument(argument, "", errors.New("document does not match schema"))
	}
	first := result.Errors[0]
	return domerrors.NewInvalidArgument(argument, first.Field, errors.New(first.Message))
}
