package arrange

import (
	"github.com/reglet-dev/arrange/application/config"
	"github.com/reglet-dev/arrange/application/equality"
	"github.com/reglet-dev/arrange/domain/entities"
)

// IsEqual reports whether a and b are deeply equal under the options built
// from opts. Invalid options, such as a malformed ignore pattern, make it
// report false; use IsEqualWith to see the error.
func IsEqual(a, b any, opts ...EqualOption) bool {
	eq, err := IsEqualWith(a, b, entities.NewEqualOptions(opts...))
	return err == nil && eq
}

// IsEqualWith reports whether a and b are deeply equal under options.
func IsEqualWith(a, b any, options EqualOptions) (bool, error) {
	svc, err := equality.NewService(options)
	if err != nil {
		return false, err
	}
	return svc.Equal(a, b), nil
}

// IsEqualMap is IsEqualWith for options held in a map with the keys
// "strict", "ignoreOrder", "ignoreKeys" and "ignoreKeyPatterns". A nil map
// selects the defaults.
func IsEqualMap(a, b any, options map[string]any) (bool, error) {
	opts, err := config.EqualOptionsFromMap(options)
	if err != nil {
		return false, err
	}
	return IsEqualWith(a, b, opts)
}

// Diff returns the first difference between a and b, or nil when they are
// equal.
func Diff(a, b any, opts ...EqualOption) (*Mismatch, error) {
	svc, err := equality.NewService(entities.NewEqualOptions(opts...))
	if err != nil {
		return nil, err
	}
	return svc.Diff(a, b), nil
}
