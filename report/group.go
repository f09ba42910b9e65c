package report

import "teatr_manager/utils"

type Group[T any] struct {
	Key   string
	Items []T
}

// Contiguous reports whether every key occupies a single run of rows, which
// is what ORDER BY on the key guarantees.
func Contiguous[T any](rows []T, key func(T) string) bool {
	seen := make(map[string]bool)
	prev := ""
	for i, r := range rows {
		k := key(r)
		if i > 0 && k == prev {
			continue
		}
		if seen[k] {
			return false
		}
		seen[k] = true
		prev = k
	}
	return true
}

// GroupAdjacent starts a new group whenever the key differs from the
// previous row. Rows must be ordered by key; otherwise it logs a warning
// and returns Partition(rows, key).
func GroupAdjacent[T any](rows []T, key func(T) string) []Group[T] {
	if !Contiguous(rows, key) {
		utils.Log.WithField("rows", len(rows)).Warn("report rows are not ordered by group key, regrouping")
		return Partition(rows, key)
	}

	var groups []Group[T]
	for i, r := range rows {
		k := key(r)
		if i == 0 || k != groups[len(groups)-1].Key {
			groups = append(groups, Group[T]{Key: k})
		}
		last := &groups[len(groups)-1]
		last.Items = append(last.Items, r)
	}
	return groups
}

// Partition groups rows by key in first-seen key order, keeping row order
// inside each group.
func Partition[T any](rows []T, key func(T) string) []Group[T] {
	index := make(map[string]int)
	var groups []Group[T]
	for _, r := range rows {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, r)
	}
	return groups
}
