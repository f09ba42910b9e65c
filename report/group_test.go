package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type keyed struct {
	key string
	n   int
}

func keyOf(k keyed) string { return k.key }

func keys[T any](groups []Group[T]) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g.Key)
	}
	return out
}

func TestGroupAdjacent(t *testing.T) {
	tests := []struct {
		name  string
		rows  []keyed
		want  []string
		sizes []int
	}{
		{"Empty", nil, nil, nil},
		{"Single", []keyed{{"Drama", 1}}, []string{"Drama"}, []int{1}},
		{
			"Sorted",
			[]keyed{{"Comedy", 1}, {"Comedy", 2}, {"Drama", 3}, {"Opera", 4}, {"Opera", 5}, {"Opera", 6}},
			[]string{"Comedy", "Drama", "Opera"},
			[]int{2, 1, 3},
		},
		{
			"ContiguousButNotAlphabetical",
			[]keyed{{"Opera", 1}, {"Comedy", 2}, {"Comedy", 3}},
			[]string{"Opera", "Comedy"},
			[]int{1, 2},
		},
		{
			"UnsortedFallsBackToPartition",
			[]keyed{{"Drama", 1}, {"Comedy", 2}, {"Drama", 3}},
			[]string{"Drama", "Comedy"},
			[]int{2, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := GroupAdjacent(tt.rows, keyOf)
			assert.Equal(t, tt.want, keys(groups))

			distinct := map[string]bool{}
			for _, r := range tt.rows {
				distinct[r.key] = true
			}
			assert.Len(t, groups, len(distinct))
			for i, g := range groups {
				assert.Len(t, g.Items, tt.sizes[i])
			}
		})
	}
}

func TestPartitionKeepsRowOrder(t *testing.T) {
	groups := Partition([]keyed{{"b", 1}, {"a", 2}, {"b", 3}, {"a", 4}}, keyOf)

	assert.Equal(t, []string{"b", "a"}, keys(groups))
	assert.Equal(t, []keyed{{"b", 1}, {"b", 3}}, groups[0].Items)
	assert.Equal(t, []keyed{{"a", 2}, {"a", 4}}, groups[1].Items)
}

func TestContiguous(t *testing.T) {
	assert.True(t, Contiguous([]keyed{{"x", 1}, {"x", 2}, {"y", 3}}, keyOf))
	assert.False(t, Contiguous([]keyed{{"x", 1}, {"y", 2}, {"x", 3}}, keyOf))
}
