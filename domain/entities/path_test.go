package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath_Resolve(t *testing.T) {
	item := map[string]any{
		"user": map[string]any{
			"score":   85,
			"profile": nil,
			"tags":    []any{"a", "b"},
		},
		"name": "alice",
	}

	tests := []struct {
		name     string
		path     string
		wantKind Kind
		want     any
	}{
		{"top-level", "name", KindString, "alice"},
		{"nested", "user.score", KindNumber, 85},
		{"missing leaf", "user.name", KindAbsent, nil},
		{"missing branch", "account.id", KindAbsent, nil},
		{"null leaf", "user.profile", KindNull, nil},
		{"below null", "user.profile.email", KindAbsent, nil},
		{"below primitive", "name.first", KindAbsent, nil},
		{"sequence index", "user.tags.1", KindString, "b"},
		{"sequence out of range", "user.tags.5", KindAbsent, nil},
		{"non-canonical index", "user.tags.01", KindAbsent, nil},
		{"record", "user", KindRecord, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePath(tt.path).Resolve(item)
			assert.Equal(t, tt.wantKind, got.Kind())
			if tt.want != nil {
				assert.Equal(t, tt.want, got.Raw())
			}
		})
	}
}

func TestPath_ResolveEmptyRecord(t *testing.T) {
	got := ParsePath("user.name").Resolve(map[string]any{"user": map[string]any{}})
	assert.Equal(t, KindAbsent, got.Kind())
}

func TestPath_ResolveNilItem(t *testing.T) {
	assert.Equal(t, KindAbsent, ParsePath("a").Resolve(nil).Kind())
}

func TestPath_ResolveTypedMaps(t *testing.T) {
	type label string
	item := map[string]map[string]int{"user": {"score": 7}}

	got := ParsePath("user.score").Resolve(item)
	assert.Equal(t, KindNumber, got.Kind())
	assert.Equal(t, 7.0, got.Number())

	named := map[label]any{"x": "y"}
	assert.Equal(t, "y", ParsePath("x").Resolve(named).Text())

	ptr := &map[string]any{"k": true}
	assert.True(t, ParsePath("k").Resolve(ptr).Bool())
}

type Audit struct {
	Owner string `json:"owner"`
}

func TestPath_ResolveStructs(t *testing.T) {
	type profile struct {
		Score int
	}
	type row struct {
		Audit
		Name    string   `json:"name,omitempty"`
		Profile *profile `json:"profile"`
		Skipped string   `json:"-"`
		Tags    []string
		hidden  string
	}
	item := row{
		Audit:   Audit{Owner: "ops"},
		Name:    "ann",
		Profile: &profile{Score: 9},
		Skipped: "x",
		Tags:    []string{"a", "b"},
		hidden:  "h",
	}

	tests := []struct {
		path string
		want Value
	}{
		{path: "name", want: StringValue("ann")},
		{path: "Name", want: Absent()},
		{path: "profile.Score", want: NumberValue(9)},
		{path: "Tags.1", want: StringValue("b")},
		{path: "owner", want: StringValue("ops")},
		{path: "Skipped", want: Absent()},
		{path: "hidden", want: Absent()},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := ParsePath(tt.path).Resolve(&item)
			assert.Equal(t, tt.want.Kind(), got.Kind())
			assert.Equal(t, tt.want.Text(), got.Text())
			assert.Equal(t, tt.want.Number(), got.Number())
		})
	}

	assert.Equal(t, KindAbsent, ParsePath("profile.Score").Resolve(row{}).Kind())
}

func TestPath_Segments(t *testing.T) {
	p := ParsePath("a.b.c")
	assert.Equal(t, []string{"a", "b", "c"}, p.Segments())
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, "a.b.c", p.String())

	segs := p.Segments()
	segs[0] = "mutated"
	assert.Equal(t, []string{"a", "b", "c"}, p.Segments())
}
