package entities

// Direction places custom-ordered values relative to the rest.
type Direction string

const (
	// DirectionStart sorts custom-ordered values before all others.
	DirectionStart Direction = "start"
	// DirectionEnd sorts custom-ordered values after all others.
	DirectionEnd Direction = "end"
)

// SortSpec is one key of a multi-key reorder. Specifications are consulted in
// list order; a later one only breaks ties left by the earlier ones.
type SortSpec struct {
	// Key is the dot-path read from each item.
	Key string `json:"key" yaml:"key" toml:"key" validate:"required,dotpath" jsonschema:"required,minLength=1,description=Dot-path of the field to sort by"`

	// CustomOrder lists values in explicit priority order. Values not listed
	// fall back to the default comparison.
	CustomOrder []any `json:"customOrder,omitempty" yaml:"customOrder,omitempty" toml:"customOrder,omitempty" jsonschema:"description=Values in explicit priority order"`

	// Direction places custom-ordered values at the start (default) or end.
	Direction Direction `json:"direction,omitempty" yaml:"direction,omitempty" toml:"direction,omitempty" validate:"omitempty,oneof=start end" jsonschema:"enum=start,enum=end,default=start"`

	// Ascending applies to values not covered by CustomOrder. Nil means true.
	Ascending *bool `json:"ascending,omitempty" yaml:"ascending,omitempty" toml:"ascending,omitempty" jsonschema:"default=true"`
}

// SortSpecOption configures a SortSpec built by NewSortSpec.
type SortSpecOption func(*SortSpec)

// WithCustomOrder sets the explicit priority list.
func WithCustomOrder(values ...any) SortSpecOption {
	return func(s *SortSpec) {
		s.CustomOrder = values
	}
}

// WithDirection sets where custom-ordered values are placed.
func WithDirection(d Direction) SortSpecOption {
	return func(s *SortSpec) {
		s.Direction = d
	}
}

// WithAscending sets the fallback sort direction.
func WithAscending(ascending bool) SortSpecOption {
	return func(s *SortSpec) {
		s.Ascending = &ascending
	}
}

// Descending is shorthand for WithAscending(false).
func Descending() SortSpecOption {
	return WithAscending(false)
}

// NewSortSpec creates a SortSpec for key with the given options.
func NewSortSpec(key string, opts ...SortSpecOption) SortSpec {
	s := SortSpec{Key: key}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// IsAscending reports the effective fallback direction.
func (s SortSpec) IsAscending() bool {
	return s.Ascending == nil || *s.Ascending
}

// Placement returns the effective direction, defaulting to DirectionStart.
func (s SortSpec) Placement() Direction {
	if s.Direction == "" {
		return DirectionStart
	}
	return s.Direction
}

// Path parses the specification key.
func (s SortSpec) Path() Path {
	return ParsePath(s.Key)
}

// SortSpecDocument is the document form of a list of specifications.
type SortSpecDocument struct {
	Specs []SortSpec `json:"specs" yaml:"specs" toml:"specs" validate:"dive" jsonschema:"required,description=Sort specifications in priority order"`
}

// Document kinds understood by the schema registry and spec parsers.
const (
	DocumentKindSortSpecs    = "sort_specs"
	DocumentKindEqualOptions = "equal_options"
)
