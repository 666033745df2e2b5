package equality

import (
	"errors"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/reglet-dev/arrange/domain/compare"
	"github.com/reglet-dev/arrange/domain/entities"
	"github.com/spf13/cast"
)

// location tracks where the comparison is. key is the qualified dot-path
// used for ignore matching; sequences do not contribute to it. display adds
// sequence positions for diagnostics.
type location struct {
	key     string
	display string
}

func (l location) field(name string) location {
	next := location{key: name, display: name}
	if l.key != "" {
		next.key = l.key + entities.PathSeparator + name
	}
	if l.display != "" {
		next.display = l.display + entities.PathSeparator + name
	}
	return next
}

func (l location) index(i int) location {
	return location{key: l.key, display: l.display + "[" + strconv.Itoa(i) + "]"}
}

// matcher holds options prepared for one Service.
type matcher struct {
	strict      bool
	ignoreOrder bool
	ignore      map[string]struct{}
	patterns    []string // slash-separated globs
}

func newMatcher(opts entities.EqualOptions) matcher {
	m := matcher{strict: opts.Strict, ignoreOrder: opts.IgnoreOrder}
	if len(opts.IgnoreKeys) > 0 {
		m.ignore = make(map[string]struct{}, len(opts.IgnoreKeys))
		for _, k := range opts.IgnoreKeys {
			m.ignore[k] = struct{}{}
		}
	}
	for _, p := range opts.IgnoreKeyPatterns {
		m.patterns = append(m.patterns, entities.GlobPath(p))
	}
	return m
}

func (m *matcher) ignored(keyPath string) bool {
	if _, ok := m.ignore[keyPath]; ok {
		return true
	}
	if len(m.patterns) == 0 {
		return false
	}
	glob := entities.GlobPath(keyPath)
	for _, p := range m.patterns {
		// Patterns are validated up front, so the error is always nil.
		if ok, _ := doublestar.Match(p, glob); ok {
			return true
		}
	}
	return false
}

func mismatch(loc location, reason entities.MismatchReason, a, b entities.Value) *entities.Mismatch {
	return &entities.Mismatch{Path: loc.display, Reason: reason, Left: a.Raw(), Right: b.Raw()}
}

// diff returns the first difference between a and b, or nil.
func (m *matcher) diff(a, b entities.Value, loc location) *entities.Mismatch {
	switch {
	case a.IsNullish() && b.IsNullish():
		return nil
	case a.IsNullish() || b.IsNullish():
		return mismatch(loc, entities.MismatchNullity, a, b)
	}

	ak, bk := a.Kind(), b.Kind()
	if ak.IsStructured() && ak == bk && compare.SameReference(a.Raw(), b.Raw()) {
		return nil
	}

	switch {
	case ak == entities.KindRecord && bk == entities.KindRecord:
		return m.records(a, b, loc)
	case ak == entities.KindSequence && bk == entities.KindSequence:
		return m.sequences(a, b, loc)
	case ak.IsStructured() || bk.IsStructured():
		return mismatch(loc, entities.MismatchKind, a, b)
	}

	if m.strict {
		if compare.Identical(a, b) {
			return nil
		}
	} else if looseEqual(a, b) {
		return nil
	}
	return mismatch(loc, entities.MismatchValue, a, b)
}

func (m *matcher) records(a, b entities.Value, loc location) *entities.Mismatch {
	left, right := a.Record(), b.Record()

	keys := m.surviving(left, loc)
	if len(keys) != len(m.surviving(right, loc)) {
		return mismatch(loc, entities.MismatchKeys, a, b)
	}
	for _, k := range keys {
		rv, ok := right[k]
		if !ok {
			return mismatch(loc.field(k), entities.MismatchMissingKey, entities.FromAny(left[k]), entities.Absent())
		}
		if mm := m.diff(entities.FromAny(left[k]), entities.FromAny(rv), loc.field(k)); mm != nil {
			return mm
		}
	}
	return nil
}

// surviving returns the sorted keys of rec not excluded by ignore rules.
func (m *matcher) surviving(rec map[string]any, loc location) []string {
	keys := slices.Sorted(maps.Keys(rec))
	if m.ignore == nil && m.patterns == nil {
		return keys
	}
	return slices.DeleteFunc(keys, func(k string) bool {
		return m.ignored(loc.field(k).key)
	})
}

func (m *matcher) sequences(a, b entities.Value, loc location) *entities.Mismatch {
	left, right := a.Sequence(), b.Sequence()
	if len(left) != len(right) {
		return mismatch(loc, entities.MismatchLength, a, b)
	}

	if !m.ignoreOrder {
		for i := range left {
			if mm := m.diff(entities.FromAny(left[i]), entities.FromAny(right[i]), loc.index(i)); mm != nil {
				return mm
			}
		}
		return nil
	}

	// Each right element may partner at most one left element; the first
	// unclaimed match wins.
	claimed := make([]bool, len(right))
	rightValues := make([]entities.Value, len(right))
	for j, r := range right {
		rightValues[j] = entities.FromAny(r)
	}
	for i, l := range left {
		lv := entities.FromAny(l)
		found := false
		for j := range rightValues {
			if claimed[j] {
				continue
			}
			if m.diff(lv, rightValues[j], loc.index(i)) == nil {
				claimed[j] = true
				found = true
				break
			}
		}
		if !found {
			return mismatch(loc.index(i), entities.MismatchUnmatched, lv, entities.Absent())
		}
	}
	return nil
}

// looseEqual compares primitives with coercion: booleans become 1 or 0 and
// numeric strings are parsed before comparing with numbers. An empty or
// blank string equals 0.
func looseEqual(a, b entities.Value) bool {
	ak, bk := a.Kind(), b.Kind()
	switch {
	case ak == bk:
		return compare.Identical(a, b)
	case ak == entities.KindBoolean:
		return looseEqual(entities.NumberValue(boolNumber(a.Bool())), b)
	case bk == entities.KindBoolean:
		return looseEqual(a, entities.NumberValue(boolNumber(b.Bool())))
	case ak == entities.KindNumber && bk == entities.KindString:
		f, ok := stringNumber(b.Text())
		return ok && f == a.Number()
	case ak == entities.KindString && bk == entities.KindNumber:
		f, ok := stringNumber(a.Text())
		return ok && f == b.Number()
	default:
		return false
	}
}

func boolNumber(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// stringNumber parses s with the coercive-equality grammar: surrounding
// whitespace is dropped, a blank string is 0, decimals may carry a sign and
// an exponent, and unsigned 0x, 0o and 0b integer literals are accepted.
// Infinity is only spelled "Infinity" with an optional sign; digit
// separators and any other spelling of infinity or NaN do not parse.
func stringNumber(s string) (float64, bool) {
	s = strings.TrimFunc(s, isCoercionSpace)
	switch s {
	case "":
		return 0, true
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) {
		if !isRadixDigits(s[2:], s[1]) {
			return 0, false
		}
		n, err := cast.ToUint64E(s)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}

	if strings.Trim(s, "0123456789+-.eE") != "" {
		return 0, false
	}
	f, err := cast.ToFloat64E(s)
	if errors.Is(err, strconv.ErrRange) {
		if s[0] == '-' {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}
	if err != nil {
		return 0, false
	}
	return f, true
}

func isCoercionSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// isRadixDigits reports whether digits is non-empty and made only of digits
// valid for the radix named by prefix.
func isRadixDigits(digits string, prefix byte) bool {
	valid := "0123456789abcdefABCDEF"
	switch prefix {
	case 'o', 'O':
		valid = "01234567"
	case 'b', 'B':
		valid = "01"
	}
	return digits != "" && strings.Trim(digits, valid) == ""
}
