// Package breaks defines the algorithm tags, options, and sentinel errors
// for the breaks subpackage of github.com/katalvlaran/classify.
package breaks

import "errors"

// Sentinel errors for breakpoint generation.
var (
	// ErrUnknownAlgorithm indicates an algorithm name or tag that is not recognized.
	ErrUnknownAlgorithm = errors.New("breaks: unknown algorithm")
	// ErrNoValues indicates the input value set is empty.
	ErrNoValues = errors.New("breaks: at least one value is required")
	// ErrNegativeValue indicates negative input passed to the Log algorithm.
	ErrNegativeValue = errors.New("breaks: log breaks require non-negative values")
)

// Algorithm selects the breakpoint-generation strategy.
type Algorithm int

const (
	// Equal divides [min, max] into classes equal-width intervals.
	// The "histogram" name parses to Equal as well.
	Equal Algorithm = iota
	// Quantile places breakpoints so each class holds a near-equal
	// share of the values (linear interpolation between closest ranks).
	Quantile
	// Pretty is equal-width with breakpoints snapped to round steps
	// (1, 2, 2.5, 5 × 10^m); the class count may differ from the request.
	Pretty
	// StdDev centers breakpoints on the mean, spaced one standard
	// deviation apart, clamped to [min, max].
	StdDev
	// Natural runs the Jenks natural-breaks optimization, minimizing
	// within-class variance.
	Natural
	// HeadTail iterates mean splits over the head of a heavy-tailed
	// distribution; the class count is data-driven, capped at the request.
	HeadTail
	// Log divides the value range into equal intervals in log10 space.
	// Zeros are handled via Options.LogOffset; negatives are rejected.
	Log
)

// algorithmNames maps each tag to its canonical parse/String name.
var algorithmNames = map[Algorithm]string{
	Equal:    "equal",
	Quantile: "quantile",
	Pretty:   "pretty",
	StdDev:   "stdev",
	Natural:  "natural",
	HeadTail: "headtail",
	Log:      "log",
}

// String returns the canonical name of the algorithm, or "unknown".
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return "unknown"
}

// Parse resolves an algorithm name to its tag. Recognized names are
// "equal", "histogram" (alias of equal), "quantile", "pretty", "stdev",
// "natural", "headtail" and "log". Unknown names return ErrUnknownAlgorithm.
func Parse(name string) (Algorithm, error) {
	if name == "histogram" {
		return Equal, nil
	}
	for tag, canonical := range algorithmNames {
		if name == canonical {
			return tag, nil
		}
	}

	return 0, ErrUnknownAlgorithm
}

// Options contains tunable parameters shared by all break algorithms.
//
// Fields:
//   - Classes          — requested number of classes (breakpoints-1).
//     Values below 1 collapse to a single class.
//   - LogOffset        — constant added to every value before log10 when
//     the minimum is zero (log(0) is undefined); subtracted back out of
//     the resulting breakpoints. Ignored when all values are positive.
//   - HeadFraction     — head/tail stopping rule: recursion ends once the
//     head holds more than this share of the previous iteration's values.
//   - NaturalMaxSample — cap on the number of values fed to the Jenks DP;
//     larger inputs are reduced by an even-stride sample that always
//     retains the minimum and maximum. Zero or negative disables the cap.
type Options struct {
	Classes          int
	LogOffset        float64
	HeadFraction     float64
	NaturalMaxSample int
}

// DefaultOptions returns the Options defaults:
// Classes=5, LogOffset=1, HeadFraction=0.4, NaturalMaxSample=1000.
func DefaultOptions() Options {
	return Options{
		Classes:          5,
		LogOffset:        1,
		HeadFraction:     0.4,
		NaturalMaxSample: 1000,
	}
}
