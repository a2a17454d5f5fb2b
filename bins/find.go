package bins

// FindClass — value classification
//
// Description:
//
//	Locates value inside an ordered breakpoint sequence, returning the
//	1-based class index and the bounding breakpoint pair. The sequence
//	must cover the full range of interest (first element = minimum, last
//	element = maximum), as produced by breaks.Compute or bins.Breaks.
//
// Interval rule, scanned pair by pair in order:
//   - (breaks[i], breaks[i+1]) matches when low <= value < high
//   - the final pair additionally matches value == high
//   - a degenerate pair with low == value == high matches
//
// The first matching pair wins, so duplicate breakpoints resolve
// deterministically. A value strictly below breaks[0] or strictly above
// the last breakpoint is a miss: ok is false and no error is raised.
// Fewer than two breakpoints always miss.
func FindClass(value float64, brks []float64) (Class, bool) {
	pairs := len(brks) - 1
	for i := 0; i < pairs; i++ {
		low, high := brks[i], brks[i+1]
		match := low <= value && value < high ||
			low == value && value == high ||
			i == pairs-1 && low <= value && value <= high
		if match {
			return Class{Index: i + 1, Interval: Interval{Low: low, High: high}}, true
		}
	}

	return Class{}, false
}
