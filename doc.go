// Package arrange reorders and compares sequences of dynamically typed,
// possibly nested records.
//
// Reorder sorts items by a list of SortSpec values: the first spec is
// primary and later ones break ties. Each spec reads a dot-path, may list
// values in an explicit priority order, and otherwise falls back to a
// comparison that orders mixed types as
// string < number < boolean < object < null/absent.
//
// IsEqual compares two sequences structurally, optionally ignoring element
// order or selected key paths.
//
// Inputs are never modified. Every function is safe for concurrent use as
// long as callers do not mutate the inputs during the call.
package arrange
