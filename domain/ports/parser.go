package ports

import "github.com/reglet-dev/arrange/domain/entities"

// SpecParser decodes spec documents from raw bytes.
type SpecParser interface {
	// ParseSortSpecs decodes a document of the form {specs: [...]}.
	ParseSortSpecs(data []byte) ([]entities.SortSpec, error)

	// ParseEqualOptions decodes equality options, starting from the defaults.
	ParseEqualOptions(data []byte) (entities.EqualOptions, error)
}
