package ports

import "github.com/reglet-dev/arrange/domain/entities"

// Reorderer produces a stably sorted copy of items.
type Reorderer interface {
	// Reorder returns a new slice sorted by specs in priority order.
	// items is never modified.
	Reorder(items []any, specs []entities.SortSpec) ([]any, error)

	// Indices returns the stable permutation Reorder would apply.
	Indices(items []any, specs []entities.SortSpec) ([]int, error)
}

// EqualityChecker decides deep equality under fixed options.
type EqualityChecker interface {
	// Equal reports whether a and b are equivalent.
	Equal(a, b any) bool

	// Diff returns the first mismatch, or nil when a and b are equivalent.
	Diff(a, b any) *entities.Mismatch
}
