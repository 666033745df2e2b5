package reorder

import (
	"cmp"

	"github.com/reglet-dev/arrange/domain/compare"
	"github.com/reglet-dev/arrange/domain/entities"
)

// compiledSpec is a SortSpec prepared once per call: the key is parsed and
// the custom order is indexed by lookup key.
type compiledSpec struct {
	path      entities.Path
	ranks     map[string]int
	placeEnd  bool
	ascending bool
}

func compile(specs []entities.SortSpec) []compiledSpec {
	out := make([]compiledSpec, len(specs))
	for i, s := range specs {
		c := compiledSpec{
			path:      s.Path(),
			placeEnd:  s.Placement() == entities.DirectionEnd,
			ascending: s.IsAscending(),
		}
		if len(s.CustomOrder) > 0 {
			c.ranks = make(map[string]int, len(s.CustomOrder))
			for rank, v := range s.CustomOrder {
				key, ok := compare.Key(entities.FromAny(v))
				if !ok {
					continue
				}
				// First occurrence wins for duplicated entries.
				if _, seen := c.ranks[key]; !seen {
					c.ranks[key] = rank
				}
			}
		}
		out[i] = c
	}
	return out
}

// cell is one resolved sort key of one item.
type cell struct {
	value  entities.Value
	rank   int
	ranked bool
}

func (c compiledSpec) resolve(item any) cell {
	v := c.path.Resolve(item)
	out := cell{value: v}
	if c.ranks == nil {
		return out
	}
	if key, ok := compare.Key(v); ok {
		out.rank, out.ranked = c.ranks[key]
	}
	return out
}

// compare orders two cells of this spec. Zero means the next spec decides.
func (c compiledSpec) compare(a, b cell) int {
	if compare.Identical(a.value, b.value) {
		return 0
	}

	switch {
	case a.ranked && b.ranked:
		return cmp.Compare(a.rank, b.rank)
	case a.ranked:
		if c.placeEnd {
			return 1
		}
		return -1
	case b.ranked:
		if c.placeEnd {
			return -1
		}
		return 1
	}

	r := compare.Compare(a.value, b.value)
	if !c.ascending {
		r = -r
	}
	return r
}
