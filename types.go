package arrange

import (
	"github.com/reglet-dev/arrange/domain/entities"
	domerrors "github.com/reglet-dev/arrange/domain/errors"
)

// SortSpec is one key of a multi-key reorder.
type SortSpec = entities.SortSpec

// SortSpecOption configures a SortSpec built by NewSortSpec.
type SortSpecOption = entities.SortSpecOption

// Direction places custom-ordered values before or after the rest.
type Direction = entities.Direction

const (
	DirectionStart = entities.DirectionStart
	DirectionEnd   = entities.DirectionEnd
)

// EqualOptions controls IsEqual.
type EqualOptions = entities.EqualOptions

// EqualOption is a functional option for EqualOptions.
type EqualOption = entities.EqualOption

// Mismatch locates the first difference found by Diff.
type Mismatch = entities.Mismatch

// InvalidArgumentError reports malformed items, specs or options.
type InvalidArgumentError = domerrors.InvalidArgumentError

// ErrorDetail is the flattened form of an error returned by this package.
type ErrorDetail = entities.ErrorDetail

// ErrorDetailOf flattens err into its type, code, message and details, such
// as the argument, field and index of an InvalidArgumentError. It returns nil
// for a nil err.
func ErrorDetailOf(err error) *ErrorDetail {
	return domerrors.Detail(err)
}

// ErrInvalidArgument matches every InvalidArgumentError via errors.Is.
var ErrInvalidArgument = domerrors.ErrInvalidArgument

// Re-exported constructors.
var (
	NewSortSpec     = entities.NewSortSpec
	WithCustomOrder = entities.WithCustomOrder
	WithDirection   = entities.WithDirection
	WithAscending   = entities.WithAscending
	Descending      = entities.Descending

	NewEqualOptions       = entities.NewEqualOptions
	DefaultEqualOptions   = entities.DefaultEqualOptions
	WithStrict            = entities.WithStrict
	WithIgnoreOrder       = entities.WithIgnoreOrder
	WithIgnoreKeys        = entities.WithIgnoreKeys
	WithIgnoreKeyPatterns = entities.WithIgnoreKeyPatterns
)
