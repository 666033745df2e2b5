package entities

import (
	"reflect"
	"strconv"
	"strings"
)

// PathSeparator separates the segments of a dot-path.
const PathSeparator = "."

// Path is a dot-path parsed into its segments. Parse once per specification
// and reuse it for every item.
type Path struct {
	raw      string
	segments []string
}

// ParsePath splits s on PathSeparator. It never fails; empty segments are kept
// and simply never resolve.
func ParsePath(s string) Path {
	return Path{raw: s, segments: strings.Split(s, PathSeparator)}
}

// String returns the path as written.
func (p Path) String() string { return p.raw }

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segments) }

// Segments returns a copy of the path segments.
func (p Path) Segments() []string {
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

// Resolve walks item segment by segment. Traversal stops with Absent as soon
// as the current container is null, is not indexable, or lacks the segment.
// A segment holding nil resolves to Null only when it is the last one.
// Sequences are indexable by decimal segments ("tags.0").
func (p Path) Resolve(item any) Value {
	cur := item
	for _, seg := range p.segments {
		next, ok := Lookup(cur, seg)
		if !ok {
			return Absent()
		}
		cur = next
	}
	return FromAny(cur)
}

// Lookup reads one segment from container. Structs are records keyed by the
// name in their json tag, or by the exported field name when untagged.
// Untagged exported embedded structs contribute their fields. It reports
// false when container is nil, is neither a record nor a sequence, or does
// not hold seg.
func Lookup(container any, seg string) (any, bool) {
	switch c := container.(type) {
	case nil:
		return nil, false
	case map[string]any:
		v, ok := c[seg]
		return v, ok
	case []any:
		i, ok := sequenceIndex(seg, len(c))
		if !ok {
			return nil, false
		}
		return c[i], true
	case Value:
		return Lookup(c.raw, seg)
	}

	rv := reflect.ValueOf(container)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(seg).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Slice, reflect.Array:
		i, ok := sequenceIndex(seg, rv.Len())
		if !ok {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.Struct:
		return structField(rv, seg)
	default:
		return nil, false
	}
}

func structField(rv reflect.Value, seg string) (any, bool) {
	t := rv.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if f.Anonymous && name == "" {
			if v, ok := embeddedField(rv.Field(i), seg); ok {
				return v, true
			}
			continue
		}
		if name == "" {
			name = f.Name
		}
		if name == seg {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

// embeddedField looks seg up in an embedded struct. Other embedded types are
// matched by their type name.
func embeddedField(fv reflect.Value, seg string) (any, bool) {
	sv := fv
	if sv.Kind() == reflect.Pointer {
		if sv.IsNil() {
			return nil, false
		}
		sv = sv.Elem()
	}
	if sv.Kind() == reflect.Struct {
		return structField(sv, seg)
	}
	if fv.Type().Name() == seg {
		return fv.Interface(), true
	}
	return nil, false
}

func sequenceIndex(seg string, n int) (int, bool) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	// "01" and "+1" are not canonical indexes.
	if strconv.Itoa(i) != seg {
		return 0, false
	}
	return i, true
}

// GlobPath rewrites a dot-path with "/" separators so it can be matched by
// slash-based glob matchers.
func GlobPath(dotPath string) string {
	return strings.ReplaceAll(dotPath, PathSeparator, "/")
}

// ValidDotPath reports whether s is non-empty and has no empty segments.
func ValidDotPath(s string) bool {
	if s == "" {
		return false
	}
	for _, seg := range strings.Split(s, PathSeparator) {
		if seg == "" {
			return false
		}
	}
	return true
}
