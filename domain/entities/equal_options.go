package entities

// EqualOptions controls deep equality.
type EqualOptions struct {
	// Strict compares primitives without coercion. Default true.
	Strict bool `json:"strict" yaml:"strict" toml:"strict" jsonschema:"default=true"`

	// IgnoreOrder matches sequences as multisets.
	IgnoreOrder bool `json:"ignoreOrder" yaml:"ignoreOrder" toml:"ignoreOrder" jsonschema:"default=false"`

	// IgnoreKeys are exact dot-paths, qualified from the comparison root,
	// excluded from record comparison.
	IgnoreKeys []string `json:"ignoreKeys,omitempty" yaml:"ignoreKeys,omitempty" toml:"ignoreKeys,omitempty" validate:"dive,required"`

	// IgnoreKeyPatterns are glob patterns over qualified dot-paths ("**.lastLogin").
	IgnoreKeyPatterns []string `json:"ignoreKeyPatterns,omitempty" yaml:"ignoreKeyPatterns,omitempty" toml:"ignoreKeyPatterns,omitempty" validate:"dive,required,keypattern"`
}

// DefaultEqualOptions returns strict, order-sensitive options with no ignored keys.
func DefaultEqualOptions() EqualOptions {
	return EqualOptions{Strict: true}
}

// EqualOption is a functional option for EqualOptions.
type EqualOption func(*EqualOptions)

// WithStrict toggles type-sensitive primitive equality.
func WithStrict(strict bool) EqualOption {
	return func(o *EqualOptions) {
		o.Strict = strict
	}
}

// WithIgnoreOrder toggles multiset matching of sequences.
func WithIgnoreOrder(ignore bool) EqualOption {
	return func(o *EqualOptions) {
		o.IgnoreOrder = ignore
	}
}

// WithIgnoreKeys appends exact dot-paths to skip.
func WithIgnoreKeys(paths ...string) EqualOption {
	return func(o *EqualOptions) {
		o.IgnoreKeys = append(o.IgnoreKeys, paths...)
	}
}

// WithIgnoreKeyPatterns appends glob patterns over dot-paths to skip.
func WithIgnoreKeyPatterns(patterns ...string) EqualOption {
	return func(o *EqualOptions) {
		o.IgnoreKeyPatterns = append(o.IgnoreKeyPatterns, patterns...)
	}
}

// NewEqualOptions applies opts on top of DefaultEqualOptions.
func NewEqualOptions(opts ...EqualOption) EqualOptions {
	o := DefaultEqualOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// MismatchReason names why two values were judged unequal.
type MismatchReason string

const (
	MismatchNullity    MismatchReason = "nullity"     // exactly one side null or absent
	MismatchKind       MismatchReason = "kind"        // record vs sequence vs primitive
	MismatchLength     MismatchReason = "length"      // sequence lengths differ
	MismatchKeys       MismatchReason = "keys"        // record key counts differ after filtering
	MismatchMissingKey MismatchReason = "missing_key" // key present on the left only
	MismatchValue      MismatchReason = "value"       // primitives differ
	MismatchUnmatched  MismatchReason = "unmatched"   // no partner in unordered matching
)

// Mismatch locates the first difference found by deep equality.
type Mismatch struct {
	// Path locates the difference as dot-separated keys, with [i] for
	// sequence positions ("[0].user.id"). Empty at the root.
	Path   string
	Reason MismatchReason
	Left   any
	Right  any
}

// String renders the mismatch for logs.
func (m *Mismatch) String() string {
	if m == nil {
		return ""
	}
	if m.Path == "" {
		return string(m.Reason) + " at root"
	}
	return string(m.Reason) + " at " + m.Path
}
