package aggregators

import (
	"cmp"
	"slices"

	"access-analytics/internal/stores"
)

// ranked is one key of a ranking under construction. firstID is the smallest entry id that
// contributed to the key and breaks count ties.
type ranked struct {
	key     string
	count   int64
	firstID int64
}

// ranking sums store groups under derived keys, e.g. IPs under their country.
type ranking struct {
	byKey map[string]*ranked
}

func newRanking() *ranking {
	return &ranking{byKey: make(map[string]*ranked)}
}

func (r *ranking) add(key string, group stores.GroupCount) {
	item, ok := r.byKey[key]
	if !ok {
		r.byKey[key] = &ranked{key: key, count: group.Count, firstID: group.FirstID}
		return
	}
	item.count += group.Count
	item.firstID = min(item.firstID, group.FirstID)
}

// top returns at most n keys ordered by count descending, then first insertion.
func (r *ranking) top(n int) []ranked {
	items := make([]ranked, 0, len(r.byKey))
	for _, item := range r.byKey {
		items = append(items, *item)
	}
	slices.SortFunc(items, func(a, b ranked) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.firstID, b.firstID)
	})
	if len(items) > n {
		items = items[:n]
	}
	return items
}
