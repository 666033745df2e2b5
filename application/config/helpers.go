// Package config decodes sort specifications and equality options from
// map-shaped values, such as decoded JSON.
package config

import (
	"errors"
	"fmt"

	"github.com/reglet-dev/arrange/domain/entities"
	domerrors "github.com/reglet-dev/arrange/domain/errors"
)

// Config represents one decoded object as a key-value map.
type Config = map[string]any

// GetString extracts a string from config, returning (value, found).
func GetString(config Config, key string) (string, bool) {
	v, ok := config[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetBool extracts a bool from config, returning (value, found).
func GetBool(config Config, key string) (bool, bool) {
	v, ok := config[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// GetBoolDefault extracts a bool from config or returns the default value.
func GetBoolDefault(config Config, key string, defaultValue bool) bool {
	b, ok := GetBool(config, key)
	if !ok {
		return defaultValue
	}
	return b
}

// GetSlice extracts any slice or array from config as []any.
func GetSlice(config Config, key string) ([]any, bool) {
	v, ok := config[key]
	if !ok {
		return nil, false
	}
	val := entities.FromAny(v)
	if val.Kind() != entities.KindSequence {
		return nil, false
	}
	return val.Sequence(), true
}

// GetStringSlice extracts a []string from config, returning (value, found).
// JSON arrays decode as []any; every element must be a string.
func GetStringSlice(config Config, key string) ([]string, bool) {
	if ss, ok := config[key].([]string); ok {
		return ss, true
	}
	arr, ok := GetSlice(config, key)
	if !ok {
		return nil, false
	}
	result := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		result = append(result, s)
	}
	return result, true
}

// MustGetString extracts a required string from config or returns an
// InvalidArgumentError for argument.
func MustGetString(config Config, argument, key string) (string, error) {
	s, ok := GetString(config, key)
	if !ok {
		return "", domerrors.NewInvalidArgument(argument, key,
			fmt.Errorf("required string field '%s' is missing or not a string", key))
	}
	return s, nil
}

// SortSpecFromMap decodes one specification. key is required; customOrder,
// direction and ascending are optional but must have the right type when
// present.
func SortSpecFromMap(config Config) (entities.SortSpec, error) {
	const argument = "specs"

	key, err := MustGetString(config, argument, "key")
	if err != nil {
		return entities.SortSpec{}, err
	}
	spec := entities.SortSpec{Key: key}

	if v, present := config["customOrder"]; present && v != nil {
		order, ok := GetSlice(config, "customOrder")
		if !ok {
			return entities.SortSpec{}, wrongType(argument, "customOrder", "a sequence", v)
		}
		spec.CustomOrder = order
	}

	if v, present := config["direction"]; present && v != nil {
		dir, ok := GetString(config, "direction")
		if !ok {
			return entities.SortSpec{}, wrongType(argument, "direction", "a string", v)
		}
		spec.Direction = entities.Direction(dir)
	}

	if v, present := config["ascending"]; present && v != nil {
		asc, ok := GetBool(config, "ascending")
		if !ok {
			return entities.SortSpec{}, wrongType(argument, "ascending", "a boolean", v)
		}
		spec.Ascending = &asc
	}

	return spec, nil
}

// SortSpecsFromAny decodes a list of specifications. v may be a
// []entities.SortSpec, or any slice whose elements are string-keyed maps.
func SortSpecsFromAny(v any) ([]entities.SortSpec, error) {
	if specs, ok := v.([]entities.SortSpec); ok {
		return specs, nil
	}

	val := entities.FromAny(v)
	if val.Kind() != entities.KindSequence {
		return nil, domerrors.NewInvalidArgument("specs", "",
			fmt.Errorf("expected a sequence of specifications, got %s", val.Kind()))
	}

	entries := val.Sequence()
	specs := make([]entities.SortSpec, 0, len(entries))
	for i, entry := range entries {
		if s, ok := entry.(entities.SortSpec); ok {
			specs = append(specs, s)
			continue
		}
		rec := entities.FromAny(entry)
		if rec.Kind() != entities.KindRecord {
			return nil, &domerrors.InvalidArgumentError{
				Argument: "specs",
				Index:    i,
				Err:      fmt.Errorf("expected a record, got %s", rec.Kind()),
			}
		}
		spec, err := SortSpecFromMap(rec.Record())
		if err != nil {
			var argErr *domerrors.InvalidArgumentError
			if errors.As(err, &argErr) {
				argErr.Index = i
			}
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// EqualOptionsFromMap decodes equality options. A nil map yields the
// defaults; unknown keys are ignored.
func EqualOptionsFromMap(config Config) (entities.EqualOptions, error) {
	const argument = "options"
	opts := entities.DefaultEqualOptions()

	for _, name := range []string{"strict", "ignoreOrder"} {
		v, present := config[name]
		if !present || v == nil {
			continue
		}
		if _, ok := v.(bool); !ok {
			return entities.EqualOptions{}, wrongType(argument, name, "a boolean", v)
		}
	}
	opts.Strict = GetBoolDefault(config, "strict", opts.Strict)
	opts.IgnoreOrder = GetBoolDefault(config, "ignoreOrder", opts.IgnoreOrder)

	for _, field := range []struct {
		name string
		dst  *[]string
	}{
		{"ignoreKeys", &opts.IgnoreKeys},
		{"ignoreKeyPatterns", &opts.IgnoreKeyPatterns},
	} {
		v, present := config[field.name]
		if !present || v == nil {
			continue
		}
		ss, ok := GetStringSlice(config, field.name)
		if !ok {
			return entities.EqualOptions{}, wrongType(argument, field.name, "a sequence of strings", v)
		}
		*field.dst = ss
	}

	return opts, nil
}

func wrongType(argument, field, want string, got any) error {
	return domerrors.NewInvalidArgument(argument, field,
		fmt.Errorf("must be %s, got %s", want, entities.FromAny(got).Kind()))
}
