// Package interp derives per-class display values by linear interpolation
// across a sparse sequence of value stops.
//
// 🚀 What is interp?
//
//	Given a class count and a handful of control values ("stops"), it
//	produces one value per class, with the stops spread evenly across the
//	class sequence. Stops can be:
//	  • scalars — e.g. symbol sizes or line widths (Values)
//	  • fixed-arity tuples — e.g. RGB colors (VectorValues)
//
// ✨ Guarantees:
//
//   - Exactly classes values are returned
//   - The first output equals the first stop, the last output the last stop
//   - Tuple stops are interpolated coordinate by coordinate
//   - classes <= 1 returns exactly the first stop
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/classify/interp"
//
//	sizes, _ := interp.Values(3, []float64{0, 10})
//	// sizes = [0 5 10]
//
//	ramp, _ := interp.VectorValues(3, [][]float64{{0, 0, 0}, {255, 255, 255}})
//	// ramp = [[0 0 0] [127.5 127.5 127.5] [255 255 255]]
//
// Errors: ErrNoStops on an empty stop sequence, ErrTooFewStops when a
// single stop is asked to cover more than one class, ErrShapeMismatch for
// tuple stops of unequal arity.
package interp
