// Package bins defines the core types, options, and sentinel errors
// for the bins subpackage of github.com/katalvlaran/classify.
package bins

import (
	"errors"

	"github.com/katalvlaran/classify/breaks"
)

// Sentinel errors for classification operations.
var (
	// ErrNoMethod indicates a zero-valued Method was passed.
	ErrNoMethod = errors.New("bins: no classification method specified")
	// ErrUnsortedBreaks indicates caller-supplied breaks are not sorted ascending.
	ErrUnsortedBreaks = errors.New("bins: caller-supplied breaks must be sorted ascending")
	// ErrNoValues indicates no usable values remain after coercion and filtering.
	ErrNoValues = errors.New("bins: no usable values to classify")
)

// Interval is one contiguous slice of the value range, bounded by two
// adjacent breakpoints. Every interval is half-open [Low, High); the
// final interval of a breakpoint sequence is closed [Low, High].
type Interval struct {
	Low, High float64
}

// Class identifies one class: its 1-based position in the breakpoint
// sequence and its bounding interval.
type Class struct {
	Index    int
	Interval Interval
}

// Group is one output bucket of Split or Membership: the class interval
// and the items whose values fall inside it. Items keep their sorted
// relative order.
type Group[T any] struct {
	Index    int
	Interval Interval
	Items    []T
}

// Key extracts the value to classify from an item. A nil Key means the
// item itself is the value. The function must be pure and deterministic;
// it is called exactly once per item per operation.
type Key[T any] func(item T) any

// Method says where the breakpoints come from: a break algorithm or a
// caller-supplied sequence. The zero Method is invalid and is rejected
// with ErrNoMethod.
type Method struct {
	kind   methodKind
	alg    breaks.Algorithm
	custom []float64
}

type methodKind int

const (
	methodNone methodKind = iota
	methodAlgorithm
	methodCustom
)

// ByAlgorithm selects breakpoint generation via the given break algorithm.
func ByAlgorithm(alg breaks.Algorithm) Method {
	return Method{kind: methodAlgorithm, alg: alg}
}

// ByName parses an algorithm name ("equal", "histogram", "quantile",
// "pretty", "stdev", "natural", "headtail", "log") into a Method.
// Unknown names return breaks.ErrUnknownAlgorithm.
func ByName(name string) (Method, error) {
	alg, err := breaks.Parse(name)
	if err != nil {
		return Method{}, err
	}

	return ByAlgorithm(alg), nil
}

// ByBreaks uses a caller-supplied breakpoint sequence. It must already be
// sorted ascending; the splitter clamps it into the observed value range
// and extends it to cover min and max when it falls short.
func ByBreaks(brks []float64) Method {
	custom := make([]float64, len(brks))
	copy(custom, brks)

	return Method{kind: methodCustom, custom: custom}
}

// Options contains the tunable parameters of Split, Breaks and Classifier.
//
// Fields:
//   - Key         — value extractor; nil classifies the items themselves.
//   - Exclude     — exact values to drop before classification.
//   - Min, Max    — optional bounds; values outside [Min, Max] are
//     dropped. nil means unbounded on that side.
//   - ExtraBreaks — additional cut points spliced into an algorithmically
//     generated sequence at their sorted positions. Two extra breaks
//     carve out a dedicated sub-range class. Points outside the covered
//     range are ignored.
//   - Breaks      — algorithm parameters (class count, log offset, ...).
type Options[T any] struct {
	Key         Key[T]
	Exclude     []float64
	Min, Max    *float64
	ExtraBreaks []float64
	Breaks      breaks.Options
}

// DefaultOptions returns Options with breaks.DefaultOptions and no
// filtering: identity key, nothing excluded, unbounded range.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{Breaks: breaks.DefaultOptions()}
}
