// Package testutil provides common test utilities and assertions for engine tests
package testutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/reglet-dev/arrange/domain/entities"
	domerrors "github.com/reglet-dev/arrange/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Pluck resolves path on every item. Unresolved paths yield nil.
func Pluck(items []any, path string) []any {
	p := entities.ParsePath(path)
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = p.Resolve(item).Raw()
	}
	return out
}

// AssertColumn asserts the values at path, in item order.
func AssertColumn(t *testing.T, expected []any, items []any, path string, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, expected, Pluck(items, path), msgAndArgs...)
}

// AssertInvalidArgument asserts err is an InvalidArgumentError for argument
// and returns it for further checks.
func AssertInvalidArgument(t *testing.T, err error, argument string) *domerrors.InvalidArgumentError {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, domerrors.ErrInvalidArgument), "expected invalid argument, got %v", err)

	var argErr *domerrors.InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, argument, argErr.Argument)
	return argErr
}

// DebugLogger returns a JSON logger at debug level writing to the returned buffer.
func DebugLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

// AssertJSONEqual compares two JSON strings for equality, ignoring formatting
func AssertJSONEqual(t *testing.T, expected, actual string, msgAndArgs ...interface{}) {
	t.Helper()

	var expectedJSON, actualJSON interface{}
	require.NoError(t, json.Unmarshal([]byte(expected), &expectedJSON), "expected JSON is invalid")
	require.NoError(t, json.Unmarshal([]byte(actual), &actualJSON), "actual JSON is invalid")

	assert.Equal(t, expectedJSON, actualJSON, msgAndArgs...)
}
