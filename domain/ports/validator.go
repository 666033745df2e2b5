package ports

import "github.com/reglet-dev/arrange/domain/entities"

// DocumentValidator validates decoded documents against registered schemas.
type DocumentValidator interface {
	// Validate checks doc (as produced by a YAML/JSON/TOML decoder) against
	// the schema registered for kind.
	Validate(kind string, doc any) (*entities.ValidationResult, error)
}

// SpecValidator checks the structural preconditions of engine arguments.
type SpecValidator interface {
	// ValidateSortSpecs returns an InvalidArgumentError for the first
	// malformed specification.
	ValidateSortSpecs(specs []entities.SortSpec) error

	// ValidateEqualOptions returns an InvalidArgumentError for malformed options.
	ValidateEqualOptions(opts entities.EqualOptions) error
}
