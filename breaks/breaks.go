package breaks

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Compute — breakpoint generation
//
// Description:
//
//	Compute partitions the range of values into Options.Classes contiguous
//	classes using the selected Algorithm, returning the ordered boundary
//	values. The result always starts at min(values) and ends at
//	max(values), so together the breakpoints cover the full range.
//
// Algorithm Outline:
//  1. Copy and sort the input (the caller's slice is never mutated).
//  2. Resolve min/max; short-circuit the degenerate cases:
//     all-identical values → classes+1 copies of that value,
//     classes <= 1       → [min, max].
//  3. Dispatch on the Algorithm tag to the concrete generator.
//
// Guarantees:
//   - result is non-decreasing
//   - result[0] == min(values), result[len-1] == max(values)
//   - len(result) == Options.Classes+1 for Equal, Quantile, StdDev,
//     Natural and Log; Pretty and HeadTail may differ (see their docs)
//
// Errors:
//   - ErrNoValues         — values is empty.
//   - ErrNegativeValue    — Log over negative values.
//   - ErrUnknownAlgorithm — alg is not one of the declared tags.
//
// A nil opts uses DefaultOptions.
func Compute(values []float64, alg Algorithm, opts *Options) ([]float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if len(values) == 0 {
		return nil, ErrNoValues
	}
	if _, ok := algorithmNames[alg]; !ok {
		return nil, ErrUnknownAlgorithm
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	lo, hi := floats.Min(sorted), floats.Max(sorted)
	if alg == Log && lo < 0 {
		return nil, ErrNegativeValue
	}

	k := o.Classes
	if k < 1 {
		k = 1
	}
	if lo == hi {
		return flat(lo, k), nil
	}
	if k == 1 {
		return []float64{lo, hi}, nil
	}

	switch alg {
	case Equal:
		return equalBreaks(lo, hi, k), nil
	case Quantile:
		return quantileBreaks(sorted, k), nil
	case Pretty:
		return prettyBreaks(lo, hi, k), nil
	case StdDev:
		return stdevBreaks(sorted, lo, hi, k), nil
	case Natural:
		return naturalBreaks(sorted, k, o.NaturalMaxSample), nil
	case HeadTail:
		return headTailBreaks(sorted, k, o.HeadFraction), nil
	default: // Log; the tag set was validated above
		return logBreaks(lo, hi, k, o.LogOffset), nil
	}
}

// flat returns classes+1 copies of v: the degenerate scheme for
// all-identical input.
func flat(v float64, classes int) []float64 {
	res := make([]float64, classes+1)
	for i := range res {
		res[i] = v
	}

	return res
}

// equalBreaks divides [lo, hi] into classes equal-width intervals.
func equalBreaks(lo, hi float64, classes int) []float64 {
	res := make([]float64, classes+1)
	width := (hi - lo) / float64(classes)
	for i := 1; i < classes; i++ {
		res[i] = lo + width*float64(i)
	}
	// Endpoints are exact, never reconstructed from the step width.
	res[0], res[classes] = lo, hi

	return res
}

// quantileBreaks places the i-th breakpoint at the i/classes quantile of
// the sorted values, interpolating linearly between closest ranks, so
// each class holds a near-equal share of the members. Heavy ties produce
// duplicate breakpoints and correspondingly empty classes.
func quantileBreaks(sorted []float64, classes int) []float64 {
	res := make([]float64, classes+1)
	for i := 1; i < classes; i++ {
		p := float64(i) / float64(classes)
		res[i] = stat.Quantile(p, stat.LinInterp, sorted, nil)
	}
	res[0], res[classes] = sorted[0], sorted[len(sorted)-1]

	return res
}

// stdevBreaks centers the breakpoints on the mean, one standard deviation
// apart, then clamps them into [lo, hi]. Clamping preserves monotonicity,
// so out-of-range bands degrade to duplicate breakpoints at the extremes.
func stdevBreaks(sorted []float64, lo, hi float64, classes int) []float64 {
	mean, sd := stat.Mean(sorted, nil), stat.StdDev(sorted, nil)
	res := make([]float64, classes+1)
	for i := 1; i < classes; i++ {
		b := mean + (float64(i)-float64(classes)/2)*sd
		res[i] = clamp(b, lo, hi)
	}
	res[0], res[classes] = lo, hi

	return res
}

// prettyBreaks covers [lo, hi] with breakpoints on a round-number grid.
// The step is the "nice" rounding of the equal-interval width, so the
// resulting class count may differ slightly from the request. Interior
// breakpoints fall strictly inside the range; the endpoints stay exact.
func prettyBreaks(lo, hi float64, classes int) []float64 {
	step := niceStep((hi - lo) / float64(classes))
	res := []float64{lo}

	// Walk the grid by integer multiples of step to avoid drift.
	first := int(math.Ceil(lo / step))
	last := int(math.Floor(hi / step))
	for i := first; i <= last; i++ {
		b := float64(i) * step
		if b > lo && b < hi {
			res = append(res, b)
		}
	}

	return append(res, hi)
}

// niceStep rounds a raw interval width to the nearest "nice" step:
// 1, 2, 2.5, 5 or 10 times a power of ten.
func niceStep(raw float64) float64 {
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	frac := raw / base

	var nice float64
	switch {
	case frac < 1.5:
		nice = 1
	case frac < 2.25:
		nice = 2
	case frac < 3.75:
		nice = 2.5
	case frac < 7.5:
		nice = 5
	default:
		nice = 10
	}

	return nice * base
}

// logBreaks divides the range into equal intervals in log10 space. When
// the minimum is zero every value is shifted by offset before the log and
// the shift is subtracted back out of the breakpoints.
func logBreaks(lo, hi float64, classes int, offset float64) []float64 {
	shift := 0.0
	if lo == 0 {
		shift = offset
		if shift <= 0 {
			shift = 1
		}
	}

	logLo, logHi := math.Log10(lo+shift), math.Log10(hi+shift)
	res := make([]float64, classes+1)
	for i := 1; i < classes; i++ {
		r := logLo + (logHi-logLo)*float64(i)/float64(classes)
		res[i] = math.Pow(10, r) - shift
	}
	res[0], res[classes] = lo, hi

	return res
}

// headTailBreaks iterates mean splits over a heavy-tailed distribution:
// each round records the mean of the current head as a breakpoint, then
// keeps only the values above it. The recursion stops once the head holds
// more than headFraction of the previous round's values (the distribution
// is no longer heavy-tailed there), the head runs out of values to split,
// or the requested class count is reached. The result may therefore hold
// fewer than classes+1 breakpoints.
func headTailBreaks(sorted []float64, classes int, headFraction float64) []float64 {
	if headFraction <= 0 || headFraction >= 1 {
		headFraction = DefaultOptions().HeadFraction
	}

	res := []float64{sorted[0]}
	head := sorted
	for len(res) < classes {
		m := stat.Mean(head, nil)
		// First index strictly above the mean; everything from there on
		// forms the next head.
		cut := sort.Search(len(head), func(i int) bool { return head[i] > m })
		if cut == 0 || cut == len(head) {
			break
		}
		res = append(res, m)
		next := head[cut:]
		if float64(len(next))/float64(len(head)) > headFraction || len(next) < 2 {
			break
		}
		head = next
	}

	return append(res, sorted[len(sorted)-1])
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
