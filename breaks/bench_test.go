package breaks_test

import (
	"testing"

	"github.com/katalvlaran/classify/breaks"
)

// benchmarkCompute runs one algorithm over n synthetic values.
// The values are deterministic so runs are comparable.
func benchmarkCompute(b *testing.B, alg breaks.Algorithm, n, classes int) {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = float64(i*7919%104729) / 97
	}
	opts := breaks.DefaultOptions()
	opts.Classes = classes

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := breaks.Compute(vals, alg, &opts); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}

// BenchmarkCompute_EqualLarge benchmarks the linear equal-interval path.
func BenchmarkCompute_EqualLarge(b *testing.B) {
	benchmarkCompute(b, breaks.Equal, 100_000, 7)
}

// BenchmarkCompute_QuantileLarge benchmarks quantile breaks, dominated by
// the defensive sort.
func BenchmarkCompute_QuantileLarge(b *testing.B) {
	benchmarkCompute(b, breaks.Quantile, 100_000, 7)
}

// BenchmarkCompute_NaturalSmall benchmarks the Jenks DP below the sample
// cap, the quadratic worst case.
func BenchmarkCompute_NaturalSmall(b *testing.B) {
	benchmarkCompute(b, breaks.Natural, 500, 5)
}

// BenchmarkCompute_NaturalSampled benchmarks Jenks over a large input
// reduced by the stride sample.
func BenchmarkCompute_NaturalSampled(b *testing.B) {
	benchmarkCompute(b, breaks.Natural, 50_000, 5)
}
