// Package breaks generates ordered breakpoint sequences for numeric
// classification: given a set of values and a requested class count, it
// returns classes+1 boundary values that partition [min, max] into
// contiguous classes.
//
// 🚀 What is breaks?
//
//	The algorithm catalog behind thematic-map class schemes:
//	  • Equal    — equal-width intervals over [min, max]
//	  • Quantile — near-equal member counts per class
//	  • Pretty   — equal-width, snapped to human-friendly round steps
//	  • StdDev   — bands centered on the mean, one stddev apart
//	  • Natural  — Jenks natural breaks (variance-minimizing DP)
//	  • HeadTail — iterated mean splits for heavy-tailed data
//	  • Log      — equal intervals in log10 space
//
// ✨ Guarantees:
//
//   - Result is non-decreasing, first element = min(values), last = max
//   - Equal, Quantile, StdDev, Natural and Log return exactly classes+1
//     breakpoints; Pretty and HeadTail may return a different count by
//     construction (round steps / data-driven recursion depth)
//   - classes <= 1 collapses to the single class [min, max]
//   - Fewer distinct values than classes yields duplicate (degenerate)
//     breakpoints, never an error
//   - All-identical values yield all-identical breakpoints
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/classify/breaks"
//
//	opts := breaks.DefaultOptions()
//	opts.Classes = 3
//	b, err := breaks.Compute([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, breaks.Equal, &opts)
//	// b = [1 4 7 10]
//
// Errors: ErrNoValues on empty input, ErrNegativeValue for Log over
// negative data, ErrUnknownAlgorithm from Parse or an out-of-range tag.
//
// Complexity: all algorithms are O(n log n) (dominated by the defensive
// sort) except Natural, which runs the O(n²·k) Jenks DP over at most
// Options.NaturalMaxSample values.
package breaks
