package selector

import (
	"sort"

	"github.com/goodnatureofminers/hydra-trp/internal/hydra/model"
)

// Subset is either unconstrained (no filter applied yet) or a bounded set of keys.
type Subset struct {
	bounded bool
	ids     map[model.TxID]struct{}
}

// Unconstrained returns the neutral element of Intersect.
func Unconstrained() Subset {
	return Subset{}
}

// Bounded returns the subset holding exactly ids.
func Bounded(ids ...model.TxID) Subset {
	set := make(map[model.TxID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return Subset{bounded: true, ids: set}
}

func (s Subset) IsUnconstrained() bool {
	return !s.bounded
}

// Len returns the number of keys of a bounded subset and -1 when unconstrained.
func (s Subset) Len() int {
	if !s.bounded {
		return -1
	}
	return len(s.ids)
}

func (s Subset) Contains(id model.TxID) bool {
	if !s.bounded {
		return true
	}
	_, ok := s.ids[id]
	return ok
}

// Intersect narrows s by other. Unconstrained yields the other operand.
func (s Subset) Intersect(other Subset) Subset {
	switch {
	case !s.bounded:
		return other
	case !other.bounded:
		return s
	}

	small, large := s.ids, other.ids
	if len(small) > len(large) {
		small, large = large, small
	}
	out := make(map[model.TxID]struct{}, len(small))
	for id := range small {
		if _, ok := large[id]; ok {
			out[id] = struct{}{}
		}
	}
	return Subset{bounded: true, ids: out}
}

// Union widens s by other. Unconstrained absorbs everything.
func (s Subset) Union(other Subset) Subset {
	if !s.bounded || !other.bounded {
		return Unconstrained()
	}
	out := make(map[model.TxID]struct{}, len(s.ids)+len(other.ids))
	for id := range s.ids {
		out[id] = struct{}{}
	}
	for id := range other.ids {
		out[id] = struct{}{}
	}
	return Subset{bounded: true, ids: out}
}

// IntersectAll folds Intersect over subsets starting from Unconstrained.
func IntersectAll(subsets ...Subset) Subset {
	out := Unconstrained()
	for _, s := range subsets {
		out = out.Intersect(s)
	}
	return out
}

// IDs returns the keys of a bounded subset in sorted order, nil when unconstrained.
func (s Subset) IDs() []model.TxID {
	if !s.bounded {
		return nil
	}
	ids := make([]model.TxID, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
