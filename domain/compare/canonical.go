package compare

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/reglet-dev/arrange/domain/entities"
)

// Canonical renders v as compact JSON with record keys sorted, so equal
// structures always produce the same text. Null and absent render as null,
// non-finite numbers as null, times as quoted RFC 3339 and anything
// unencodable as its quoted fmt rendering.
func Canonical(v entities.Value) string {
	var sb strings.Builder
	writeCanonical(&sb, v)
	return sb.String()
}

func writeCanonical(sb *strings.Builder, v entities.Value) {
	switch v.Kind() {
	case entities.KindAbsent, entities.KindNull:
		sb.WriteString("null")
	case entities.KindString:
		sb.WriteString(quote(v.Text()))
	case entities.KindNumber:
		sb.WriteString(FormatNumber(v.Number()))
	case entities.KindBoolean:
		sb.WriteString(strconv.FormatBool(v.Bool()))
	case entities.KindTime:
		sb.WriteString(quote(v.Time().UTC().Format(time.RFC3339Nano)))
	case entities.KindRecord:
		rec := v.Record()
		keys := make([]string, 0, len(rec))
		for k := range rec {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(quote(k))
			sb.WriteByte(':')
			writeCanonical(sb, entities.FromAny(rec[k]))
		}
		sb.WriteByte('}')
	case entities.KindSequence:
		sb.WriteByte('[')
		for i, el := range v.Sequence() {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeCanonical(sb, entities.FromAny(el))
		}
		sb.WriteByte(']')
	default:
		sb.WriteString(quote(fmt.Sprintf("%v", v.Raw())))
	}
}

// FormatNumber formats f the way JSON number literals are written by
// ECMAScript: plain notation for magnitudes in [1e-6, 1e21), exponent
// notation otherwise. Negative zero prints as 0 and non-finite values as null.
func FormatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	if f == 0 {
		return "0"
	}
	format := byte('f')
	if abs := math.Abs(f); abs < 1e-6 || abs >= 1e21 {
		format = 'e'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	if format == 'e' {
		// 1e-07 -> 1e-7
		n := len(s)
		if n >= 4 && s[n-4] == 'e' && s[n-3] == '-' && s[n-2] == '0' {
			s = s[:n-2] + s[n-1:]
		}
	}
	return s
}

// quote renders s as a JSON string. Invalid UTF-8 would be rewritten to
// U+FFFD by the encoder, so such strings are quoted byte-exactly with \x
// escapes instead; JSON never emits \x, so the two forms cannot collide.
func quote(s string) string {
	if !utf8.ValidString(s) {
		return strconv.Quote(s)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// Key returns the lookup key used to match a value against a custom order.
// Keys follow same-value-zero semantics: 0 and -0 share a key, NaN matches
// NaN, 1 and "1" differ. Records and sequences are keyed structurally.
// Absent values have no key.
func Key(v entities.Value) (string, bool) {
	switch v.Kind() {
	case entities.KindAbsent:
		return "", false
	case entities.KindNull:
		return "null", true
	case entities.KindString:
		return "s:" + v.Text(), true
	case entities.KindNumber:
		f := v.Number()
		if math.IsNaN(f) {
			return "n:NaN", true
		}
		if f == 0 {
			f = 0
		}
		return "n:" + strconv.FormatFloat(f, 'g', -1, 64), true
	case entities.KindBoolean:
		return "b:" + strconv.FormatBool(v.Bool()), true
	case entities.KindTime:
		return "t:" + v.Time().UTC().Format(time.RFC3339Nano), true
	case entities.KindRecord, entities.KindSequence:
		return "o:" + Canonical(v), true
	default:
		return fmt.Sprintf("x:%T:%v", v.Raw(), v.Raw()), true
	}
}
