// Package compare implements the fallback ordering shared by the reorder and
// equality engines: null/absent handling, the type priority ranking and a
// canonical serialization for structured values.
package compare

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/reglet-dev/arrange/domain/entities"
)

// Type priority ranking, consulted only when two present values differ in kind:
// string < number < boolean < object < absent < other.
const (
	RankString = iota
	RankNumber
	RankBoolean
	RankObject
	RankAbsent
	RankOther
)

// Rank returns the type priority of k. Records, sequences and times share
// RankObject; null shares RankAbsent.
func Rank(k entities.Kind) int {
	switch k {
	case entities.KindString:
		return RankString
	case entities.KindNumber:
		return RankNumber
	case entities.KindBoolean:
		return RankBoolean
	case entities.KindRecord, entities.KindSequence, entities.KindTime:
		return RankObject
	case entities.KindAbsent, entities.KindNull:
		return RankAbsent
	default:
		return RankOther
	}
}

// Compare returns -1, 0 or +1. It never panics and never errors.
//
// Rules, in order:
//  1. null and absent sort after every present value and tie with each other.
//  2. Two objects (records, sequences, or a time against either) compare by
//     their canonical serialization. This is coarse: nested numbers compare
//     as text.
//  3. Different kinds compare by Rank.
//  4. Same kind compares natively: strings bytewise, numbers numerically
//     (NaN ties with everything), false < true, times chronologically.
//
// Bytewise string order is code point order. It differs from UTF-16 code
// unit order only for characters above U+FFFF, which sort after U+E000-U+FFFF
// here.
func Compare(a, b entities.Value) int {
	switch {
	case a.IsNullish() && b.IsNullish():
		return 0
	case a.IsNullish():
		return 1
	case b.IsNullish():
		return -1
	}

	ak, bk := a.Kind(), b.Kind()
	if isObject(ak) && isObject(bk) && !(ak == entities.KindTime && bk == entities.KindTime) {
		return strings.Compare(Canonical(a), Canonical(b))
	}

	if ak != bk {
		return sign(Rank(ak) - Rank(bk))
	}

	switch ak {
	case entities.KindString:
		return strings.Compare(a.Text(), b.Text())
	case entities.KindNumber:
		return compareFloat(a.Number(), b.Number())
	case entities.KindBoolean:
		return compareBool(a.Bool(), b.Bool())
	case entities.KindTime:
		return a.Time().Compare(b.Time())
	default:
		return strings.Compare(fmt.Sprintf("%v", a.Raw()), fmt.Sprintf("%v", b.Raw()))
	}
}

// CompareAny classifies both operands and compares them.
func CompareAny(a, b any) int {
	return Compare(entities.FromAny(a), entities.FromAny(b))
}

// Identical reports strict identity: same kind and same primitive payload,
// or the same underlying map or slice for records and sequences. Null is not
// identical to absent, and NaN is not identical to itself.
func Identical(a, b entities.Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case entities.KindAbsent, entities.KindNull:
		return true
	case entities.KindString:
		return a.Text() == b.Text()
	case entities.KindNumber:
		return a.Number() == b.Number()
	case entities.KindBoolean:
		return a.Bool() == b.Bool()
	case entities.KindTime:
		return a.Time().Equal(b.Time())
	case entities.KindRecord, entities.KindSequence:
		return SameReference(a.Raw(), b.Raw())
	default:
		return comparableEqual(a.Raw(), b.Raw())
	}
}

// SameReference reports whether x and y are the same map, or slices over the
// same backing array with the same length.
func SameReference(x, y any) bool {
	xv, yv := reflect.ValueOf(x), reflect.ValueOf(y)
	if !xv.IsValid() || !yv.IsValid() || xv.Type() != yv.Type() {
		return false
	}
	switch xv.Kind() {
	case reflect.Map, reflect.Pointer:
		return xv.Pointer() == yv.Pointer()
	case reflect.Slice:
		return xv.Len() == yv.Len() && (xv.Len() == 0 || xv.Pointer() == yv.Pointer())
	default:
		return false
	}
}

func comparableEqual(x, y any) (eq bool) {
	if x == nil || y == nil || reflect.TypeOf(x) != reflect.TypeOf(y) || !reflect.TypeOf(x).Comparable() {
		return false
	}
	// Comparable struct types can still hold incomparable interface fields.
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return x == y
}

func isObject(k entities.Kind) bool {
	return Rank(k) == RankObject
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
