// Package bins assigns items to classes: it locates a value inside an
// ordered breakpoint sequence, splits whole item collections into
// contiguous class buckets, and wraps breaks + class values into a single
// reusable Classifier.
//
// 🚀 What is bins?
//
//	The classification layer on top of breaks and interp:
//	  • FindClass  — value → (1-based class index, bounding breakpoints)
//	  • Split      — items → ordered class buckets, one sorted pass
//	  • Breaks     — the resolved breakpoints only, no grouping
//	  • Unique     — group items by exact extracted value
//	  • Membership — group items into caller-defined, possibly
//	    overlapping ranges
//	  • Classifier — breaks, groups and interpolated display values in
//	    one call
//
// ✨ Interval rules (applied everywhere, deterministically):
//
//   - Every pair (breaks[i], breaks[i+1]) is half-open [low, high)
//   - The final pair is closed [low, high], so the maximum classifies
//   - A degenerate pair with low == value == high matches
//   - Values outside [breaks[0], breaks[last]] are a miss, not an error
//
// Items are ingested through an optional Key extractor and a single
// numeric-coercion step; items whose value cannot be coerced, is excluded
// explicitly, or falls outside the configured bounds are silently dropped
// (the round-trip invariant: every input item lands in exactly one output
// bucket or in one of those documented exclusions).
//
// ⚙️ Usage:
//
//	import (
//		"github.com/katalvlaran/classify/bins"
//		"github.com/katalvlaran/classify/breaks"
//	)
//
//	opts := bins.DefaultOptions[float64]()
//	opts.Breaks.Classes = 3
//	groups, err := bins.Split(data, bins.ByAlgorithm(breaks.Quantile), &opts)
//
// Errors: ErrNoMethod for a zero Method, ErrUnsortedBreaks for unsorted
// caller breaks, ErrNoValues when filtering leaves nothing to classify;
// algorithm errors from the breaks package pass through unchanged.
package bins
