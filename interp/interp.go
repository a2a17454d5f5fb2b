package interp

import (
	"errors"
	"math"
)

// Sentinel errors for class-value interpolation.
var (
	// ErrNoStops indicates an empty stop sequence.
	ErrNoStops = errors.New("interp: at least one value stop is required")
	// ErrTooFewStops indicates a single stop asked to cover more than one class.
	ErrTooFewStops = errors.New("interp: at least two value stops are required for more than one class")
	// ErrShapeMismatch indicates tuple stops of unequal arity.
	ErrShapeMismatch = errors.New("interp: all value stops must have the same arity")
)

// Values — scalar class-value interpolation
//
// Description:
//
//	Treats stops as control points spread evenly across the class
//	sequence [0, classes-1] and returns one linearly interpolated value
//	per class. With classes == len(stops) the stops are returned as-is;
//	with more classes the gaps are filled, with fewer they are resampled.
//
// Algorithm Outline:
//  1. For class c, its fractional stop position is
//     r = c·(len(stops)-1)/(classes-1).
//  2. Split r into integer and fractional parts with math.Modf and lerp
//     between stops[⌊r⌋] and stops[⌈r⌉].
//
// Errors:
//   - ErrNoStops     — stops is empty.
//   - ErrTooFewStops — len(stops) < 2 with classes > 1.
//
// classes <= 1 returns exactly [stops[0]].
func Values(classes int, stops []float64) ([]float64, error) {
	if len(stops) == 0 {
		return nil, ErrNoStops
	}
	if classes <= 1 {
		return []float64{stops[0]}, nil
	}
	if len(stops) < 2 {
		return nil, ErrTooFewStops
	}

	res := make([]float64, classes)
	for c := 0; c < classes; c++ {
		i, frac := stopPosition(c, classes, len(stops))
		res[c] = lerp(stops[i], stops[i+1], frac)
	}

	return res, nil
}

// VectorValues is the tuple counterpart of Values: each stop is a
// fixed-arity tuple (an RGB triple, an RGBA quad) and every coordinate is
// interpolated independently. Returns ErrShapeMismatch when the stops
// disagree on arity, ErrNoStops and ErrTooFewStops as in Values. The
// returned tuples are freshly allocated.
func VectorValues(classes int, stops [][]float64) ([][]float64, error) {
	if len(stops) == 0 {
		return nil, ErrNoStops
	}
	arity := len(stops[0])
	for _, s := range stops[1:] {
		if len(s) != arity {
			return nil, ErrShapeMismatch
		}
	}
	if classes <= 1 {
		first := make([]float64, arity)
		copy(first, stops[0])

		return [][]float64{first}, nil
	}
	if len(stops) < 2 {
		return nil, ErrTooFewStops
	}

	res := make([][]float64, classes)
	for c := 0; c < classes; c++ {
		i, frac := stopPosition(c, classes, len(stops))
		tuple := make([]float64, arity)
		for d := 0; d < arity; d++ {
			tuple[d] = lerp(stops[i][d], stops[i+1][d], frac)
		}
		res[c] = tuple
	}

	return res, nil
}

// stopPosition maps class index c onto the stop sequence, returning the
// lower stop index and the fractional distance toward the next stop.
// The last class maps onto the final stop pair with frac == 1, so the
// lower index is always a valid left neighbor.
func stopPosition(c, classes, nStops int) (int, float64) {
	r := float64(c) * float64(nStops-1) / float64(classes-1)
	ip, frac := math.Modf(r)
	i := int(ip)
	if i >= nStops-1 {
		return nStops - 2, 1
	}

	return i, frac
}

// lerp linearly interpolates between a and b by frac in [0, 1].
func lerp(a, b, frac float64) float64 {
	return a + (b-a)*frac
}
