// Package classify turns raw numeric data into ordered classes — the
// binning engine behind choropleth maps, graduated symbols and legend
// builders.
//
// 🚀 What is classify?
//
//	A small, pure-Go classification library that brings together:
//		• Break algorithms: equal-interval, quantile, pretty, stdev,
//		  natural (Jenks), head/tail and log breaks
//		• A splitter that groups items into contiguous, non-overlapping
//		  classes in a single pass over the sorted values
//		• A class-value engine that interpolates per-class display values
//		  (sizes, widths, RGB colors) from a sparse set of stops
//
// ✨ Why choose classify?
//
//   - Deterministic boundaries – half-open intervals, a closed final
//     class, and well-defined behavior for duplicate breakpoints
//   - Pure functions – no I/O, no retained references, outputs are
//     freshly allocated on every call
//   - Honest errors – sentinel errors for bad input, comma-ok for
//     values that simply fall outside the covered range
//
// Under the hood, everything is organized under three subpackages:
//
//	breaks/ — breakpoint generation (equal, quantile, pretty, stdev,
//	          natural, headtail, log)
//	interp/ — linear interpolation of class values, scalar or tuple
//	bins/   — FindClass, Split, Unique/Membership grouping and the
//	          Classifier convenience wrapper
//
// Quick sketch:
//
//	    values:  1 2 3 4 5 6 7 8 9 10
//	    breaks:  [1      4      7     10]
//	    classes:  └─ 1 ──┴─ 2 ──┴─ 3 ─┘
//
//	three equal-width classes; 4.0 opens class 2, 10.0 closes class 3.
//
// Dive into the package docs of breaks, interp and bins for the exact
// interval rules, algorithm outlines and worked examples.
//
//	go get github.com/katalvlaran/classify
package classify
