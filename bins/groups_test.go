package bins_test

import (
	"testing"

	"github.com/katalvlaran/classify/bins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUnique_MixedKeys verifies numeric keys group numerically and come
// before text keys, with items keeping input order inside a bucket.
func TestUnique_MixedKeys(t *testing.T) {
	items := []any{2, "b", 1, 2, "a", 2.0}

	groups := bins.Unique[any](items, nil)
	require.Len(t, groups, 4)
	assert.Equal(t, []any{1}, groups[0].Items)
	assert.Equal(t, []any{2, 2, 2.0}, groups[1].Items, "int 2 and float 2.0 share a bucket")
	assert.Equal(t, []any{"a"}, groups[2].Items)
	assert.Equal(t, []any{"b"}, groups[3].Items)
	assert.Equal(t, 2, groups[1].Value, "the bucket reports the first raw key")
}

// TestUnique_WithKey verifies grouping by an extracted field.
func TestUnique_WithKey(t *testing.T) {
	type road struct {
		Name string
		Type string
	}
	items := []road{
		{"m1", "motorway"}, {"r5", "residential"}, {"m4", "motorway"},
	}

	groups := bins.Unique(items, func(r road) any { return r.Type })
	require.Len(t, groups, 2)
	assert.Equal(t, "motorway", groups[0].Value)
	assert.Equal(t, []road{{"m1", "motorway"}, {"m4", "motorway"}}, groups[0].Items)
	assert.Equal(t, "residential", groups[1].Value)
}

// TestMembership_OverlappingRanges verifies one item can join several
// overlapping groups and empty ranges still yield a group.
func TestMembership_OverlappingRanges(t *testing.T) {
	items := []float64{1, 5, 9}
	ranges := []bins.Interval{
		{Low: 0, High: 6},
		{Low: 4, High: 10},
		{Low: 100, High: 200},
	}

	groups := bins.Membership(items, ranges, nil)
	require.Len(t, groups, 3)
	assert.Equal(t, []float64{1, 5}, groups[0].Items)
	assert.Equal(t, []float64{5, 9}, groups[1].Items, "5 belongs to both overlapping ranges")
	assert.Empty(t, groups[2].Items, "an empty range still yields its group")
	assert.Equal(t, 3, groups[2].Index)
}

// TestMembership_InclusiveEnds verifies both range ends are inclusive.
func TestMembership_InclusiveEnds(t *testing.T) {
	groups := bins.Membership([]float64{3, 7}, []bins.Interval{{Low: 3, High: 7}}, nil)
	require.Len(t, groups, 1)
	assert.Equal(t, []float64{3, 7}, groups[0].Items)
}
