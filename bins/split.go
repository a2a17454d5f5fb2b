package bins

import (
	"sort"

	"github.com/katalvlaran/classify/breaks"
)

// entry pairs an item with its coerced value for the duration of one call.
type entry[T any] struct {
	item T
	val  float64
}

// Split — item classification
//
// Description:
//
//	Splits items into contiguous, non-overlapping classes. Values are the
//	items themselves or extracted via Options.Key, coerced to float64
//	once at ingestion; items that fail coercion, appear in
//	Options.Exclude, or fall outside [Options.Min, Options.Max] are
//	silently dropped.
//
// Algorithm Outline:
//  1. Ingest: extract, coerce and filter, then stable-sort by value.
//  2. Resolve breakpoints from the Method: run the break algorithm over
//     the sorted values, or clamp-and-extend a caller-supplied sequence
//     so it covers [min, max]. Splice Options.ExtraBreaks in at their
//     sorted positions.
//  3. Walk the sorted values once with a monotonic interval cursor
//     (the cursor only ever advances, it never re-scans), assigning each
//     value to its enclosing pair under the FindClass interval rule.
//  4. Merge consecutive items of the same class into one Group.
//
// Guarantees:
//   - groups are ordered by ascending class; empty classes yield no group
//   - within a group, items keep their post-sort relative order
//   - every input item is in exactly one group or was dropped by one of
//     the documented exclusions (a rare miss against degenerate custom
//     breaks is also dropped, never an error)
//
// Errors:
//   - ErrNoMethod, ErrUnsortedBreaks, ErrNoValues
//   - breaks.Compute errors pass through unchanged
//
// A nil opts uses DefaultOptions.
func Split[T any](items []T, m Method, opts *Options[T]) ([]Group[T], error) {
	o := DefaultOptions[T]()
	if opts != nil {
		o = *opts
	}

	entries := ingest(items, o)
	brks, err := resolve(values(entries), m, o.Breaks, o.ExtraBreaks)
	if err != nil {
		return nil, err
	}

	return assign(entries, brks), nil
}

// Breaks is the breaks-only mode of Split: it ingests and filters the
// items the same way, resolves the breakpoint sequence, and returns it
// without grouping anything. Useful for building legends before (or
// instead of) classifying the data.
func Breaks[T any](items []T, m Method, opts *Options[T]) ([]float64, error) {
	o := DefaultOptions[T]()
	if opts != nil {
		o = *opts
	}

	return resolve(values(ingest(items, o)), m, o.Breaks, o.ExtraBreaks)
}

// ingest extracts, coerces, and filters item values, returning entries
// stable-sorted by value ascending.
func ingest[T any](items []T, o Options[T]) []entry[T] {
	entries := make([]entry[T], 0, len(items))
	for _, item := range items {
		raw := any(item)
		if o.Key != nil {
			raw = o.Key(item)
		}
		v, ok := coerce(raw)
		if !ok {
			continue
		}
		if o.Min != nil && v < *o.Min {
			continue
		}
		if o.Max != nil && v > *o.Max {
			continue
		}
		if excluded(v, o.Exclude) {
			continue
		}
		entries = append(entries, entry[T]{item: item, val: v})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].val < entries[j].val })

	return entries
}

// values projects the sorted entry values.
func values[T any](entries []entry[T]) []float64 {
	vals := make([]float64, len(entries))
	for i, e := range entries {
		vals[i] = e.val
	}

	return vals
}

// excluded reports whether v appears in the exclusion list.
func excluded(v float64, exclude []float64) bool {
	for _, x := range exclude {
		if v == x {
			return true
		}
	}

	return false
}

// resolve produces the final breakpoint sequence for the sorted values:
// algorithm methods delegate to breaks.Compute, custom methods are
// clamped into [min, max] and extended to cover it, and ExtraBreaks are
// spliced in last.
func resolve(sorted []float64, m Method, bopts breaks.Options, extra []float64) ([]float64, error) {
	if m.kind == methodNone {
		return nil, ErrNoMethod
	}
	if len(sorted) == 0 {
		return nil, ErrNoValues
	}

	var (
		brks []float64
		err  error
	)
	switch m.kind {
	case methodAlgorithm:
		brks, err = breaks.Compute(sorted, m.alg, &bopts)
	default: // methodCustom
		brks, err = coverRange(m.custom, sorted[0], sorted[len(sorted)-1])
	}
	if err != nil {
		return nil, err
	}

	return splice(brks, extra), nil
}

// coverRange clamps a caller-supplied sorted breakpoint sequence into
// [lo, hi] and extends it so the first element equals lo and the last
// equals hi. The input is not mutated.
func coverRange(custom []float64, lo, hi float64) ([]float64, error) {
	if !sort.Float64sAreSorted(custom) {
		return nil, ErrUnsortedBreaks
	}

	brks := make([]float64, 0, len(custom)+2)
	for _, b := range custom {
		if b < lo {
			b = lo
		}
		if b > hi {
			b = hi
		}
		brks = append(brks, b)
	}
	if len(brks) == 0 || brks[0] != lo {
		brks = append([]float64{lo}, brks...)
	}
	if brks[len(brks)-1] != hi {
		brks = append(brks, hi)
	}

	return brks, nil
}

// splice inserts each extra cut point at its sorted position. Points
// outside the covered range are ignored; inserting two points carves a
// dedicated sub-range class out of the enclosing class.
func splice(brks, extra []float64) []float64 {
	for _, x := range extra {
		if x < brks[0] || x > brks[len(brks)-1] {
			continue
		}
		pos := sort.SearchFloat64s(brks, x)
		brks = append(brks, 0)
		copy(brks[pos+1:], brks[pos:])
		brks[pos] = x
	}

	return brks
}

// assign performs the single forward pass: entries are sorted ascending,
// so the interval cursor advances monotonically and each value is tested
// against at most the pairs from the cursor onward. Consecutive entries
// of the same class merge into one Group.
func assign[T any](entries []entry[T], brks []float64) []Group[T] {
	pairs := len(brks) - 1
	groups := make([]Group[T], 0, pairs)
	cursor := 0
	for _, e := range entries {
		idx := -1
		for cursor < pairs {
			if matchPair(e.val, cursor, pairs, brks) {
				idx = cursor
				break
			}
			if e.val < brks[cursor] {
				break // below the current pair: a miss, drop the item
			}
			cursor++
		}
		if idx < 0 {
			continue
		}
		if n := len(groups); n > 0 && groups[n-1].Index == idx+1 {
			groups[n-1].Items = append(groups[n-1].Items, e.item)
			continue
		}
		groups = append(groups, Group[T]{
			Index:    idx + 1,
			Interval: Interval{Low: brks[idx], High: brks[idx+1]},
			Items:    []T{e.item},
		})
	}

	return groups
}

// matchPair applies the FindClass interval rule to pair i.
func matchPair(v float64, i, pairs int, brks []float64) bool {
	low, high := brks[i], brks[i+1]

	return low <= v && v < high ||
		low == v && v == high ||
		i == pairs-1 && low <= v && v <= high
}
