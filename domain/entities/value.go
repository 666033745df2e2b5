package entities

import (
	"encoding/json"
	"reflect"
	"time"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindAbsent   Kind = iota // Path did not resolve
	KindNull                 // Explicit nil
	KindString               // string and named string types
	KindNumber               // every Go integer and float kind, json.Number
	KindBoolean              // bool and named bool types
	KindRecord               // string-keyed maps
	KindSequence             // slices and arrays
	KindTime                 // time.Time
	KindOther                // anything else (funcs, channels, structs, ...)
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindRecord:
		return "record"
	case KindSequence:
		return "sequence"
	case KindTime:
		return "time"
	default:
		return "other"
	}
}

// IsNullish reports whether k is KindNull or KindAbsent.
func (k Kind) IsNullish() bool {
	return k == KindNull || k == KindAbsent
}

// IsStructured reports whether k is KindRecord or KindSequence.
func (k Kind) IsStructured() bool {
	return k == KindRecord || k == KindSequence
}

// Value is a tagged union over the dynamically typed values found in items.
// Exactly one payload field is meaningful, selected by the kind.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	rec  map[string]any
	seq  []any
	t    time.Time
	raw  any
}

// Absent returns the value produced by an unresolved path.
func Absent() Value {
	return Value{kind: KindAbsent}
}

// Null returns the explicit nil value.
func Null() Value {
	return Value{kind: KindNull}
}

// StringValue wraps s.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s, raw: s}
}

// NumberValue wraps f.
func NumberValue(f float64) Value {
	return Value{kind: KindNumber, num: f, raw: f}
}

// BoolValue wraps b.
func BoolValue(b bool) Value {
	return Value{kind: KindBoolean, b: b, raw: b}
}

// FromAny classifies v into a Value. Named types are classified by their
// underlying kind, pointers are dereferenced and string-keyed maps of any
// element type are exposed as records.
func FromAny(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case string:
		return StringValue(x)
	case bool:
		return BoolValue(x)
	case float64:
		return Value{kind: KindNumber, num: x, raw: v}
	case int:
		return Value{kind: KindNumber, num: float64(x), raw: v}
	case int64:
		return Value{kind: KindNumber, num: float64(x), raw: v}
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Value{kind: KindOther, raw: v}
		}
		return Value{kind: KindNumber, num: f, raw: v}
	case time.Time:
		return Value{kind: KindTime, t: x, raw: v}
	case map[string]any:
		return Value{kind: KindRecord, rec: x, raw: v}
	case []any:
		return Value{kind: KindSequence, seq: x, raw: v}
	}
	return fromReflect(reflect.ValueOf(v), v)
}

func fromReflect(rv reflect.Value, raw any) Value {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return FromAny(rv.Elem().Interface())
	case reflect.String:
		return Value{kind: KindString, str: rv.String(), raw: raw}
	case reflect.Bool:
		return Value{kind: KindBoolean, b: rv.Bool(), raw: raw}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Value{kind: KindNumber, num: float64(rv.Int()), raw: raw}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Value{kind: KindNumber, num: float64(rv.Uint()), raw: raw}
	case reflect.Float32, reflect.Float64:
		return Value{kind: KindNumber, num: rv.Float(), raw: raw}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{kind: KindOther, raw: raw}
		}
		rec := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			rec[iter.Key().String()] = iter.Value().Interface()
		}
		return Value{kind: KindRecord, rec: rec, raw: raw}
	case reflect.Slice, reflect.Array:
		seq := make([]any, rv.Len())
		for i := range seq {
			seq[i] = rv.Index(i).Interface()
		}
		return Value{kind: KindSequence, seq: seq, raw: raw}
	default:
		return Value{kind: KindOther, raw: raw}
	}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNullish reports whether the value is null or absent.
func (v Value) IsNullish() bool { return v.kind.IsNullish() }

// Text returns the string payload.
func (v Value) Text() string { return v.str }

// Number returns the numeric payload.
func (v Value) Number() float64 { return v.num }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.b }

// Record returns the record payload. The map is shared with the caller's item
// and must not be modified.
func (v Value) Record() map[string]any { return v.rec }

// Sequence returns the sequence payload. The slice may be shared with the
// caller's item and must not be modified.
func (v Value) Sequence() []any { return v.seq }

// Time returns the time payload.
func (v Value) Time() time.Time { return v.t }

// Raw returns the Go value the Value was built from, or nil for absent/null.
func (v Value) Raw() any { return v.raw }
