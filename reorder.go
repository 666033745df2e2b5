package arrange

import (
	"fmt"
	"sync"

	"github.com/reglet-dev/arrange/application/config"
	"github.com/reglet-dev/arrange/application/reorder"
	"github.com/reglet-dev/arrange/application/validation"
	"github.com/reglet-dev/arrange/domain/entities"
	domerrors "github.com/reglet-dev/arrange/domain/errors"
)

var defaultReorderer = sync.OnceValue(func() *reorder.Service {
	return reorder.NewService()
})

// Reorder returns a new slice holding items sorted by specs. Items are read
// as records: string-keyed maps, or structs keyed by json tag or field name.
// Items equal under every spec keep their input order. It fails with an InvalidArgumentError, before comparing
// anything, when a spec has no key.
func Reorder[T any](items []T, specs []SortSpec) ([]T, error) {
	rows := make([]any, len(items))
	for i, item := range items {
		rows[i] = item
	}

	idx, err := defaultReorderer().Indices(rows, specs)
	if err != nil {
		return nil, err
	}

	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out, nil
}

// ReorderAny is Reorder for dynamically typed input, such as decoded JSON.
// items must be a slice or array. specs may be a []SortSpec or a slice of
// maps with the keys "key", "customOrder", "direction" and "ascending".
func ReorderAny(items any, specs any) ([]any, error) {
	if !IsArray(items) {
		return nil, domerrors.NewInvalidArgument("items", "",
			fmt.Errorf("expected a sequence, got %s", entities.FromAny(items).Kind()))
	}
	parsed, err := config.SortSpecsFromAny(specs)
	if err != nil {
		return nil, err
	}
	return defaultReorderer().Reorder(entities.FromAny(items).Sequence(), parsed)
}

// ValidateSortSpecs reports the first malformed spec without sorting.
func ValidateSortSpecs(specs []SortSpec) error {
	return validation.NewSpecValidator().ValidateSortSpecs(specs)
}
