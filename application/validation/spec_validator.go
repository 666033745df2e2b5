// Package validation checks engine arguments and spec documents before any
// comparison work starts, so failures are never partial.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"github.com/reglet-dev/arrange/domain/entities"
	domerrors "github.com/reglet-dev/arrange/domain/errors"
	"github.com/reglet-dev/arrange/domain/ports"
)

// validate is a package-level singleton; building a validator is expensive.
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their document names ("customOrder", not "CustomOrder").
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("dotpath", func(fl validator.FieldLevel) bool {
		return entities.ValidDotPath(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("keypattern", func(fl validator.FieldLevel) bool {
		return doublestar.ValidatePattern(entities.GlobPath(fl.Field().String()))
	}); err != nil {
		panic(err)
	}
	return v
}

// SpecValidator implements ports.SpecValidator with struct tags.
type SpecValidator struct {
	v *validator.Validate
}

// NewSpecValidator creates a SpecValidator backed by the shared validator.
func NewSpecValidator() ports.SpecValidator {
	return &SpecValidator{v: validate}
}

// ValidateSortSpecs checks every spec in order and reports the first failure.
func (s *SpecValidator) ValidateSortSpecs(specs []entities.SortSpec) error {
	for i := range specs {
		if err := s.v.Struct(specs[i]); err != nil {
			return toInvalidArgument("specs", i, err)
		}
	}
	return nil
}

// ValidateEqualOptions checks ignore-key paths and patterns.
func (s *SpecValidator) ValidateEqualOptions(opts entities.EqualOptions) error {
	if err := s.v.Struct(opts); err != nil {
		return toInvalidArgument("options", -1, err)
	}
	return nil
}

func toInvalidArgument(argument string, index int, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &domerrors.InvalidArgumentError{Argument: argument, Index: index, Err: err}
	}
	fe := verrs[0]
	return &domerrors.InvalidArgumentError{
		Argument: argument,
		Index:    index,
		Field:    fe.Field(),
		Err:      errors.New(describe(fe)),
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "dotpath":
		return fmt.Sprintf("%q is not a dot-path with non-empty segments", fe.Value())
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", fe.Value(), fe.Param())
	case "keypattern":
		return fmt.Sprintf("%q is not a valid glob pattern", fe.Value())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
