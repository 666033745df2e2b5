// Package ports defines the interfaces between the engines and their adapters.
// Domain logic depends on these abstractions; application services and
// infrastructure parsers implement them.
package ports
