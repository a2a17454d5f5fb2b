package bins

import "github.com/katalvlaran/classify/interp"

// Classifier bundles a classification method with display-value stops,
// so one call produces everything a legend needs: intervals, members,
// and one interpolated display value per class.
//
// Fields:
//   - Method       — where the breakpoints come from (ByAlgorithm,
//     ByName, ByBreaks).
//   - Options      — the usual Split options (key, filters, class count).
//   - Stops        — sparse display-value stops, one tuple each (use
//     1-tuples for scalar values such as symbol sizes). Empty Stops
//     leave ClassGroup.Value nil.
//   - UniqueValues — group by exact key value instead of breakpoints;
//     stops are then assigned cyclically rather than interpolated.
//
// A Classifier holds no state between calls; the same value may be
// classified against different datasets repeatedly.
type Classifier[T any] struct {
	Method       Method
	Options      Options[T]
	Stops        [][]float64
	UniqueValues bool
}

// ClassGroup is one classified bucket: its 1-based class index, bounding
// interval (zero-valued in unique mode), the shared key value (unique
// mode only), the interpolated or cyclically assigned display value, and
// the member items.
type ClassGroup[T any] struct {
	Index    int
	Interval Interval
	Key      any
	Value    []float64
	Items    []T
}

// Classify runs the full pipeline over items.
//
// Breakpoint mode: resolve breaks, split the items, then interpolate
// Stops across all len(breaks)-1 classes (empty classes count, so colors
// stay aligned with the legend even when nobody lives in a class) and
// attach values by class index.
//
// Unique mode: group by exact key and assign Stops cyclically,
// Stops[i % len(Stops)], so any number of unique buckets can be colored
// from a finite palette.
//
// Errors are those of Breaks/Split plus the interp sentinel errors.
func (c *Classifier[T]) Classify(items []T) ([]ClassGroup[T], error) {
	if c.UniqueValues {
		return c.classifyUnique(items), nil
	}

	opts := c.Options
	brks, err := Breaks(items, c.Method, &opts)
	if err != nil {
		return nil, err
	}
	// The resolved breaks already contain the extra cut points; splitting
	// with them again would splice duplicates in.
	splitOpts := opts
	splitOpts.ExtraBreaks = nil
	groups, err := Split(items, ByBreaks(brks), &splitOpts)
	if err != nil {
		return nil, err
	}

	var classValues [][]float64
	if len(c.Stops) > 0 {
		classValues, err = interp.VectorValues(len(brks)-1, c.Stops)
		if err != nil {
			return nil, err
		}
	}

	res := make([]ClassGroup[T], 0, len(groups))
	for _, g := range groups {
		cg := ClassGroup[T]{
			Index:    g.Index,
			Interval: g.Interval,
			Items:    g.Items,
		}
		if classValues != nil {
			cg.Value = classValues[g.Index-1]
		}
		res = append(res, cg)
	}

	return res, nil
}

// classifyUnique groups by exact key and colors the buckets cyclically
// from the finite stop sequence.
func (c *Classifier[T]) classifyUnique(items []T) []ClassGroup[T] {
	groups := Unique(items, c.Options.Key)
	res := make([]ClassGroup[T], 0, len(groups))
	for i, g := range groups {
		cg := ClassGroup[T]{Index: i + 1, Key: g.Value, Items: g.Items}
		if len(c.Stops) > 0 {
			stop := c.Stops[i%len(c.Stops)]
			cg.Value = make([]float64, len(stop))
			copy(cg.Value, stop)
		}
		res = append(res, cg)
	}

	return res
}
