package breaks_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/classify/breaks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNatural_Bimodal verifies the Jenks break lands strictly inside the
// gap between two clusters, never inside either cluster.
func TestNatural_Bimodal(t *testing.T) {
	vals := []float64{1, 1.1, 1.2, 2, 2.1, 9, 9.1, 9.2, 10}
	opts := optsWith(2)
	b, err := breaks.Compute(vals, breaks.Natural, &opts)
	require.NoError(t, err)
	assertScheme(t, b, 2, 1, 10)
	assert.Greater(t, b[1], 2.1, "break must clear the lower cluster")
	assert.Less(t, b[1], 9.0, "break must not reach the upper cluster")
}

// TestNatural_ThreeClusters verifies both breaks of a trimodal set fall
// into the two gaps.
func TestNatural_ThreeClusters(t *testing.T) {
	vals := []float64{0, 0.2, 0.4, 5, 5.2, 5.4, 20, 20.2, 20.4}
	opts := optsWith(3)
	b, err := breaks.Compute(vals, breaks.Natural, &opts)
	require.NoError(t, err)
	assertScheme(t, b, 3, 0, 20.4)
	assert.Greater(t, b[1], 0.4)
	assert.Less(t, b[1], 5.0)
	assert.Greater(t, b[2], 5.4)
	assert.Less(t, b[2], 20.0)
}

// TestNatural_FewerDistinctThanClasses verifies degenerate duplicate
// breakpoints instead of an error.
func TestNatural_FewerDistinctThanClasses(t *testing.T) {
	opts := optsWith(4)
	b, err := breaks.Compute([]float64{1, 2, 3, 2, 1}, breaks.Natural, &opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 3, 3}, b, "distinct values padded with the maximum")
}

// TestNatural_SampleCap verifies the stride sample keeps the invariants
// intact on inputs above NaturalMaxSample.
func TestNatural_SampleCap(t *testing.T) {
	vals := make([]float64, 5000)
	for i := range vals {
		vals[i] = float64(i)
	}
	opts := optsWith(5)
	opts.NaturalMaxSample = 100
	b, err := breaks.Compute(vals, breaks.Natural, &opts)
	require.NoError(t, err)
	assertScheme(t, b, 5, 0, 4999)
}

// TestNatural_Deterministic verifies repeated runs agree, including the
// sampled path.
func TestNatural_Deterministic(t *testing.T) {
	vals := make([]float64, 3000)
	for i := range vals {
		vals[i] = float64(i*i%977) / 3
	}
	opts := optsWith(4)
	opts.NaturalMaxSample = 500

	first, err := breaks.Compute(vals, breaks.Natural, &opts)
	require.NoError(t, err)
	second, err := breaks.Compute(vals, breaks.Natural, &opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, sort.Float64sAreSorted(first))
}
