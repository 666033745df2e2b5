// Package entities provides the core value types of the library: the Value
// tagged union, parsed dot-paths, sort specifications and equality options.
// These types carry no behaviour beyond construction and accessors; ordering
// and equality live in domain/compare and the application services.
package entities
