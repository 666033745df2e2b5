package arrange_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/reglet-dev/arrange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record = map[string]any

func TestReorder_Generic(t *testing.T) {
	items := []record{
		{"priority": "high", "value": 10},
		{"priority": "low", "value": 20},
		{"priority": "high", "value": 30},
		{"priority": "medium", "value": 40},
	}
	specs := []arrange.SortSpec{
		arrange.NewSortSpec("priority", arrange.WithCustomOrder("high", "medium", "low")),
		arrange.NewSortSpec("value", arrange.Descending()),
	}

	got, err := arrange.Reorder(items, specs)
	require.NoError(t, err)
	assert.Equal(t, []record{items[2], items[0], items[3], items[1]}, got)
	assert.Equal(t, "high", items[0]["priority"], "input untouched")
}

func TestReorder_Structs(t *testing.T) {
	type row struct {
		Name     string
		Score    int
		Priority string `json:"priority"`
	}
	items := []row{
		{Name: "b", Score: 2, Priority: "low"},
		{Name: "a", Score: 1, Priority: "high"},
		{Name: "c", Score: 3, Priority: "high"},
	}

	got, err := arrange.Reorder(items, []arrange.SortSpec{arrange.NewSortSpec("Score")})
	require.NoError(t, err)
	assert.Equal(t, []row{items[1], items[0], items[2]}, got)

	got, err = arrange.Reorder(items, []arrange.SortSpec{
		arrange.NewSortSpec("priority", arrange.WithCustomOrder("high")),
		arrange.NewSortSpec("Score", arrange.Descending()),
	})
	require.NoError(t, err)
	assert.Equal(t, []row{items[2], items[1], items[0]}, got)

	ptrs, err := arrange.Reorder([]*row{&items[0], &items[1]}, []arrange.SortSpec{arrange.NewSortSpec("Name")})
	require.NoError(t, err)
	assert.Same(t, &items[1], ptrs[0])
}

func TestReorder_InvalidSpec(t *testing.T) {
	_, err := arrange.Reorder([]record{{"a": 1}}, []arrange.SortSpec{{}})
	assert.True(t, errors.Is(err, arrange.ErrInvalidArgument))
}

func TestReorderAny(t *testing.T) {
	var items, specs any
	require.NoError(t, json.Unmarshal([]byte(`[
		{"position": "middle"}, {"position": "top"}, {"position": "bottom"},
		{"position": "low"}, {"position": "high"}
	]`), &items))
	require.NoError(t, json.Unmarshal([]byte(`[
		{"key": "position", "customOrder": ["top", "middle"], "direction": "end", "ascending": true}
	]`), &specs))

	got, err := arrange.ReorderAny(items, specs)
	require.NoError(t, err)

	var positions []any
	for _, item := range got {
		positions = append(positions, item.(map[string]any)["position"])
	}
	assert.Equal(t, []any{"bottom", "high", "low", "top", "middle"}, positions)
}

func TestReorderAny_InvalidArguments(t *testing.T) {
	tests := []struct {
		name         string
		items, specs any
		wantArgument string
	}{
		{name: "items not a sequence", items: record{"a": 1}, specs: []arrange.SortSpec{}, wantArgument: "items"},
		{name: "nil items", items: nil, specs: []arrange.SortSpec{}, wantArgument: "items"},
		{name: "specs not a sequence", items: []any{}, specs: "key", wantArgument: "specs"},
		{name: "spec missing key", items: []any{}, specs: []any{record{"ascending": true}}, wantArgument: "specs"},
		{name: "spec with empty key", items: []any{}, specs: []any{record{"key": ""}}, wantArgument: "specs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := arrange.ReorderAny(tt.items, tt.specs)
			var argErr *arrange.InvalidArgumentError
			require.True(t, errors.As(err, &argErr), "got %v", err)
			assert.Equal(t, tt.wantArgument, argErr.Argument)
		})
	}
}

func TestValidateSortSpecs(t *testing.T) {
	assert.NoError(t, arrange.ValidateSortSpecs([]arrange.SortSpec{arrange.NewSortSpec("user.score")}))
	assert.Error(t, arrange.ValidateSortSpecs([]arrange.SortSpec{{Key: "a", Direction: "middle"}}))
}

func TestIsEqual(t *testing.T) {
	assert.True(t, arrange.IsEqual(nil, nil))
	assert.False(t, arrange.IsEqual(nil, []any{}))

	a := []any{record{"id": 1}, record{"id": 2}}
	b := []any{record{"id": 2}, record{"id": 1}}
	assert.False(t, arrange.IsEqual(a, b))
	assert.True(t, arrange.IsEqual(a, b, arrange.WithIgnoreOrder(true)))

	assert.True(t, arrange.IsEqual(
		[]any{record{"user": record{"id": 1, "lastLogin": 123}}},
		[]any{record{"user": record{"id": 1, "lastLogin": 456}}},
		arrange.WithIgnoreKeys("user.lastLogin"),
	))

	assert.False(t, arrange.IsEqual([]any{record{"value": 1}}, []any{record{"value": "1"}}))
	assert.True(t, arrange.IsEqual([]any{record{"value": 1}}, []any{record{"value": "1"}}, arrange.WithStrict(false)))

	// Invalid options never report equality.
	assert.False(t, arrange.IsEqual([]any{}, []any{}, arrange.WithIgnoreKeyPatterns("[")))
	_, err := arrange.IsEqualWith([]any{}, []any{}, arrange.NewEqualOptions(arrange.WithIgnoreKeyPatterns("[")))
	assert.True(t, errors.Is(err, arrange.ErrInvalidArgument))
}

func TestErrorDetailOf(t *testing.T) {
	assert.Nil(t, arrange.ErrorDetailOf(nil))

	_, err := arrange.ReorderAny([]any{}, []any{record{"key": "a"}, record{"key": "b..c"}})
	detail := arrange.ErrorDetailOf(err)
	require.NotNil(t, detail)
	assert.Equal(t, "validation", detail.Type)
	assert.Equal(t, "invalid_argument", detail.Code)
	assert.Equal(t, "specs", detail.Details["argument"])
	assert.Equal(t, 1, detail.Details["index"])

	p, err := arrange.NewSpecParser("toml")
	require.NoError(t, err)
	_, err = p.ParseSortSpecs([]byte("[[specs]\nkey ="))
	detail = arrange.ErrorDetailOf(err)
	assert.Equal(t, "decode", detail.Type)
	assert.Equal(t, "toml", detail.Code)
}

func TestIsEqualMap(t *testing.T) {
	eq, err := arrange.IsEqualMap([]any{1, 2}, []any{2, 1}, map[string]any{"ignoreOrder": true})
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = arrange.IsEqualMap([]any{1}, []any{1}, nil)
	require.NoError(t, err)
	assert.True(t, eq)

	_, err = arrange.IsEqualMap([]any{1}, []any{1}, map[string]any{"strict": "no"})
	assert.True(t, errors.Is(err, arrange.ErrInvalidArgument))
}

func TestDiff(t *testing.T) {
	mm, err := arrange.Diff([]any{record{"a": 1}}, []any{record{"a": 2}})
	require.NoError(t, err)
	require.NotNil(t, mm)
	assert.Equal(t, "value at [0].a", mm.String())

	mm, err = arrange.Diff([]any{1}, []any{1})
	require.NoError(t, err)
	assert.Nil(t, mm)
}

func TestPredicates(t *testing.T) {
	type name string

	tests := []struct {
		name                     string
		v                        any
		isArray, isStr, isNumber bool
	}{
		{name: "nil", v: nil},
		{name: "slice", v: []any{1}, isArray: true},
		{name: "nil slice", v: []int(nil), isArray: true},
		{name: "array", v: [2]string{"a", "b"}, isArray: true},
		{name: "map", v: record{}},
		{name: "string", v: "x", isStr: true},
		{name: "named string", v: name("x"), isStr: true},
		{name: "int", v: 3, isNumber: true},
		{name: "uint8", v: uint8(3), isNumber: true},
		{name: "float", v: 2.5, isNumber: true},
		{name: "NaN", v: math.NaN(), isNumber: true},
		{name: "json number", v: json.Number("12"), isNumber: true},
		{name: "bad json number", v: json.Number("x")},
		{name: "bool", v: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isArray, arrange.IsArray(tt.v))
			assert.Equal(t, tt.isStr, arrange.IsString(tt.v))
			assert.Equal(t, tt.isNumber, arrange.IsNumber(tt.v))
		})
	}
}

func TestNewSpecParser(t *testing.T) {
	p, err := arrange.NewSpecParser("yaml")
	require.NoError(t, err)

	specs, err := p.ParseSortSpecs([]byte("specs:\n  - key: position\n    customOrder: [top]\n"))
	require.NoError(t, err)

	got, err := arrange.Reorder([]record{{"position": "b"}, {"position": "top"}}, specs)
	require.NoError(t, err)
	assert.Equal(t, "top", got[0]["position"])

	_, err = arrange.NewSpecParser("ini")
	assert.Error(t, err)
}
