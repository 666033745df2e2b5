package validation_test

import (
	"errors"
	"testing"

	"github.com/reglet-dev/arrange/application/validation"
	"github.com/reglet-dev/arrange/domain/entities"
	domerrors "github.com/reglet-dev/arrange/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecValidator_ValidateSortSpecs(t *testing.T) {
	v := validation.NewSpecValidator()

	tests := []struct {
		name      string
		specs     []entities.SortSpec
		wantIndex int
		wantField string
	}{
		{
			name:  "valid",
			specs: []entities.SortSpec{entities.NewSortSpec("priority"), entities.NewSortSpec("user.score", entities.Descending())},
		},
		{
			name:  "no specs",
			specs: nil,
		},
		{
			name:      "missing key",
			specs:     []entities.SortSpec{entities.NewSortSpec("a"), {}},
			wantIndex: 1,
			wantField: "key",
		},
		{
			name:      "empty segment",
			specs:     []entities.SortSpec{entities.NewSortSpec("user..score")},
			wantIndex: 0,
			wantField: "key",
		},
		{
			name:      "bad direction",
			specs:     []entities.SortSpec{entities.NewSortSpec("a", entities.WithDirection("middle"))},
			wantIndex: 0,
			wantField: "direction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSortSpecs(tt.specs)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domerrors.ErrInvalidArgument))

			var argErr *domerrors.InvalidArgumentError
			require.True(t, errors.As(err, &argErr))
			assert.Equal(t, "specs", argErr.Argument)
			assert.Equal(t, tt.wantIndex, argErr.Index)
			assert.Equal(t, tt.wantField, argErr.Field)
		})
	}
}

func TestSpecValidator_ErrorMessages(t *testing.T) {
	v := validation.NewSpecValidator()

	err := v.ValidateSortSpecs([]entities.SortSpec{{}})
	assert.EqualError(t, err, "invalid argument specs[0].key: is required")

	err = v.ValidateSortSpecs([]entities.SortSpec{entities.NewSortSpec("a", entities.WithDirection("up"))})
	assert.EqualError(t, err, `invalid argument specs[0].direction: "up" must be one of [start end]`)
}

func TestSpecValidator_ValidateEqualOptions(t *testing.T) {
	v := validation.NewSpecValidator()

	assert.NoError(t, v.ValidateEqualOptions(entities.DefaultEqualOptions()))
	assert.NoError(t, v.ValidateEqualOptions(entities.NewEqualOptions(
		entities.WithIgnoreKeys("user.lastLogin"),
		entities.WithIgnoreKeyPatterns("**.updatedAt", "meta.*"),
	)))

	err := v.ValidateEqualOptions(entities.NewEqualOptions(entities.WithIgnoreKeys("")))
	require.Error(t, err)
	var argErr *domerrors.InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "options", argErr.Argument)
	assert.Equal(t, "ignoreKeys[0]", argErr.Field)

	err = v.ValidateEqualOptions(entities.NewEqualOptions(entities.WithIgnoreKeyPatterns("user.[a")))
	require.Error(t, err)
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "ignoreKeyPatterns[0]", argErr.Field)
}
