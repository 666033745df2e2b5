// Package errors provides domain-specific error types for the library.
// All error types support error unwrapping via errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/reglet-dev/arrange/domain/entities"
)

// ErrInvalidArgument is matched by every InvalidArgumentError via errors.Is.
var ErrInvalidArgument = stdErrors.New("invalid argument")

// Detailer is implemented by errors that flatten into an ErrorDetail.
type Detailer interface {
	error
	Detail() *entities.ErrorDetail
}

// Detail flattens err for logs and callers that serialize failures. It
// unwraps to the first Detailer in the chain; anything else is reported as
// an internal error carrying err's message.
func Detail(err error) *entities.ErrorDetail {
	if err == nil {
		return nil
	}
	var detail *entities.ErrorDetail
	if stdErrors.As(err, &detail) {
		return detail
	}
	var d Detailer
	if stdErrors.As(err, &d) {
		return d.Detail()
	}
	return entities.NewErrorDetail(entities.ErrorTypeInternal, err.Error())
}

// InvalidArgumentError reports a violated structural precondition: items or
// specs that are not sequences, a spec without a key, malformed options.
// It is returned before any comparison work starts.
type InvalidArgumentError struct {
	Err      error
	Argument string // "items", "specs" or "options"
	Field    string // Optional: offending field within the argument
	Index    int    // Position within the argument, -1 when not applicable
}

// NewInvalidArgument creates an InvalidArgumentError with no index.
func NewInvalidArgument(argument, field string, err error) *InvalidArgumentError {
	return &InvalidArgumentError{Argument: argument, Field: field, Index: -1, Err: err}
}

func (e *InvalidArgumentError) Error() string {
	where := e.Argument
	if e.Index >= 0 {
		where = fmt.Sprintf("%s[%d]", where, e.Index)
	}
	if e.Field != "" {
		where = fmt.Sprintf("%s.%s", where, e.Field)
	}
	return fmt.Sprintf("invalid argument %s: %v", where, e.Err)
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Detail implements Detailer.
func (e *InvalidArgumentError) Detail() *entities.ErrorDetail {
	detail := entities.NewErrorDetail(entities.ErrorTypeValidation, e.Error()).WithCode("invalid_argument")
	details := map[string]any{"argument": e.Argument}
	if e.Field != "" {
		details["field"] = e.Field
	}
	if e.Index >= 0 {
		details["index"] = e.Index
	}
	return detail.WithDetails(details)
}

// SchemaError represents a schema generation or compilation error.
type SchemaError struct {
	Err  error
	Type string
}

func (e *SchemaError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("schema error for type %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("schema error: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Detail implements Detailer. The code is the schema type.
func (e *SchemaError) Detail() *entities.ErrorDetail {
	return entities.NewErrorDetail(entities.ErrorTypeSchema, e.Error()).WithCode(e.Type)
}

// DecodeError represents a failure to decode a spec document.
type DecodeError struct {
	Err    error
	Format string // "yaml", "toml" or "json"
	Kind   string // Document kind, e.g. "sort_specs"
}

func (e *DecodeError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%s decode of %s failed: %v", e.Format, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s decode failed: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Detail implements Detailer. The code is the document format and the
// details carry the document kind.
func (e *DecodeError) Detail() *entities.ErrorDetail {
	detail := entities.NewErrorDetail(entities.ErrorTypeDecode, e.Error()).WithCode(e.Format)
	if e.Kind != "" {
		detail.WithDetails(map[string]any{"kind": e.Kind})
	}
	return detail
}
