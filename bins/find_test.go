package bins_test

import (
	"testing"

	"github.com/katalvlaran/classify/bins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindClass_Canonical verifies the documented case: 5.5 against
// [1 4 7 10] lands in class 2, bounded by 4 and 7.
func TestFindClass_Canonical(t *testing.T) {
	cls, ok := bins.FindClass(5.5, []float64{1, 4, 7, 10})
	require.True(t, ok)
	assert.Equal(t, bins.Class{Index: 2, Interval: bins.Interval{Low: 4, High: 7}}, cls)
}

// TestFindClass_Boundaries verifies the half-open rule: a value equal to
// an interior breakpoint opens the upper class, and the maximum closes
// the final class.
func TestFindClass_Boundaries(t *testing.T) {
	brks := []float64{1, 4, 7, 10}

	cls, ok := bins.FindClass(1, brks)
	require.True(t, ok)
	assert.Equal(t, 1, cls.Index, "the minimum opens class 1")

	cls, ok = bins.FindClass(4, brks)
	require.True(t, ok)
	assert.Equal(t, 2, cls.Index, "an interior breakpoint belongs to the upper class")

	cls, ok = bins.FindClass(10, brks)
	require.True(t, ok)
	assert.Equal(t, 3, cls.Index, "the maximum belongs to the final class")
}

// TestFindClass_Miss verifies out-of-range values miss without error.
func TestFindClass_Miss(t *testing.T) {
	brks := []float64{1, 4, 7, 10}

	_, ok := bins.FindClass(0.5, brks)
	assert.False(t, ok, "below the covered range")

	_, ok = bins.FindClass(10.5, brks)
	assert.False(t, ok, "above the covered range")
}

// TestFindClass_DegeneratePair verifies a duplicate breakpoint pair
// captures exactly its value, and the first matching pair wins.
func TestFindClass_DegeneratePair(t *testing.T) {
	brks := []float64{1, 5, 5, 9}

	cls, ok := bins.FindClass(5, brks)
	require.True(t, ok)
	assert.Equal(t, 2, cls.Index, "the degenerate pair claims its exact value")
	assert.Equal(t, bins.Interval{Low: 5, High: 5}, cls.Interval)

	cls, ok = bins.FindClass(6, brks)
	require.True(t, ok)
	assert.Equal(t, 3, cls.Index, "values past the degenerate pair fall through to the next class")
}

// TestFindClass_InRangeAlwaysResolves verifies every value inside
// [first, last] resolves to an index in [1, len(breaks)-1].
func TestFindClass_InRangeAlwaysResolves(t *testing.T) {
	brks := []float64{0, 2, 2, 5, 9}
	for v := 0.0; v <= 9.0; v += 0.25 {
		cls, ok := bins.FindClass(v, brks)
		require.True(t, ok, "value %v must resolve", v)
		assert.GreaterOrEqual(t, cls.Index, 1)
		assert.LessOrEqual(t, cls.Index, len(brks)-1)
	}
}

// TestFindClass_TooFewBreaks verifies sequences without a single pair
// always miss.
func TestFindClass_TooFewBreaks(t *testing.T) {
	_, ok := bins.FindClass(1, []float64{1})
	assert.False(t, ok)

	_, ok = bins.FindClass(1, nil)
	assert.False(t, ok)
}
