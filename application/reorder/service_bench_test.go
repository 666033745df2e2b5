package reorder_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/reglet-dev/arrange/application/reorder"
	"github.com/reglet-dev/arrange/domain/entities"
	"github.com/stretchr/testify/require"
)

func FuzzReorder_Idempotent(f *testing.F) {
	f.Add("b,a,c,,a", "a", false)
	f.Add("3,1,2", "2,3", true)
	f.Add("", "", false)

	f.Fuzz(func(t *testing.T, values, order string, end bool) {
		items := []any{}
		for i, v := range splitCSV(values) {
			item := map[string]any{"i": i}
			if v != "" {
				item["v"] = v
			}
			items = append(items, item)
		}
		custom := []any{}
		for _, v := range splitCSV(order) {
			custom = append(custom, v)
		}
		spec := entities.NewSortSpec("v", entities.WithCustomOrder(custom...))
		if end {
			spec.Direction = entities.DirectionEnd
		}
		specs := []entities.SortSpec{spec}

		svc := reorder.NewService()
		once, err := svc.Reorder(items, specs)
		require.NoError(t, err)
		require.Len(t, once, len(items))
		twice, err := svc.Reorder(once, specs)
		require.NoError(t, err)
		require.Equal(t, once, twice)
	})
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}

func BenchmarkReorder(b *testing.B) {
	r := rand.New(rand.NewPCG(1, 2))
	priorities := []string{"low", "medium", "high", "urgent"}
	items := make([]any, 10_000)
	for i := range items {
		items[i] = map[string]any{
			"priority": priorities[r.IntN(len(priorities))],
			"user":     map[string]any{"score": r.Float64() * 100},
			"name":     fmt.Sprintf("item-%05d", r.IntN(100_000)),
		}
	}
	specs := []entities.SortSpec{
		entities.NewSortSpec("priority", entities.WithCustomOrder("urgent", "high")),
		entities.NewSortSpec("user.score", entities.Descending()),
		entities.NewSortSpec("name"),
	}
	svc := reorder.NewService()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := svc.Reorder(items, specs); err != nil {
			b.Fatal(err)
		}
	}
}
