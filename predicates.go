package arrange

import "github.com/reglet-dev/arrange/domain/entities"

// IsArray reports whether v is a slice or array, including a nil slice.
func IsArray(v any) bool {
	return entities.FromAny(v).Kind() == entities.KindSequence
}

// IsString reports whether v is a string or has a string underlying type.
func IsString(v any) bool {
	return entities.FromAny(v).Kind() == entities.KindString
}

// IsNumber reports whether v is of any integer or floating-point type, or a
// json.Number holding a valid number. NaN is a number.
func IsNumber(v any) bool {
	return entities.FromAny(v).Kind() == entities.KindNumber
}
