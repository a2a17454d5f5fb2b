package breaks

import "math"

// naturalBreaks — Jenks natural breaks
//
// Description:
//
//	Finds the breakpoints that minimize the summed within-class variance
//	(equivalently, maximize between-class variance) over the sorted
//	values, using the classic two-matrix dynamic program.
//
// Algorithm Outline:
//  1. If the input exceeds maxSample values, reduce it with an
//     even-stride sample that always keeps the first and last value.
//     Sampling is deterministic, so repeated calls agree.
//  2. If the remaining distinct values cannot fill the requested classes,
//     return the distinct values padded with the maximum: degenerate
//     duplicate breakpoints instead of an error.
//  3. Fill lowLimit[l][j] (1-based index of the first value of class j in
//     the optimal partition of the first l values) and bestVar[l][j] (the
//     variance of that partition) bottom-up, accumulating each candidate
//     class variance incrementally from running sums.
//  4. Backtrack from lowLimit[n][classes] to recover the class limits,
//     emitting each breakpoint at the midpoint of the gap between two
//     adjacent classes. A midpoint break keeps every value in its
//     optimal class under the lower-inclusive interval rule and falls
//     strictly between the clusters it separates.
//
// Complexity:
//
//	Time   = O(n²·classes) with n capped at maxSample
//	Memory = O(n·classes)
func naturalBreaks(sorted []float64, classes, maxSample int) []float64 {
	v := sorted
	if maxSample > 1 && len(v) > maxSample {
		v = strideSample(v, maxSample)
	}
	if d := countDistinct(v); d <= classes {
		return degenerateBreaks(v, classes)
	}

	n := len(v)
	lowLimit := make([][]int, n+1)
	bestVar := make([][]float64, n+1)
	for i := range lowLimit {
		lowLimit[i] = make([]int, classes+1)
		bestVar[i] = make([]float64, classes+1)
	}
	for j := 1; j <= classes; j++ {
		lowLimit[1][j] = 1
		for l := 2; l <= n; l++ {
			bestVar[l][j] = math.Inf(1)
		}
	}

	var variance float64
	for l := 2; l <= n; l++ {
		// Grow the candidate last class [first..l] downward from first=l,
		// maintaining its variance from running sums.
		var sum, sumSq, w float64
		for m := 1; m <= l; m++ {
			first := l - m + 1
			val := v[first-1]
			w++
			sum += val
			sumSq += val * val
			variance = sumSq - sum*sum/w

			prev := first - 1
			if prev == 0 {
				continue
			}
			for j := 2; j <= classes; j++ {
				if bestVar[l][j] >= variance+bestVar[prev][j-1] {
					lowLimit[l][j] = first
					bestVar[l][j] = variance + bestVar[prev][j-1]
				}
			}
		}
		lowLimit[l][1] = 1
		bestVar[l][1] = variance
	}

	res := make([]float64, classes+1)
	res[0], res[classes] = v[0], v[n-1]
	idx := n
	for j := classes; j > 1; j-- {
		low := lowLimit[idx][j] // 1-based index of the first value of class j
		res[j-1] = (v[low-2] + v[low-1]) / 2
		idx = low - 1
	}

	return res
}

// strideSample reduces sorted to size values spread evenly across the
// slice, keeping the first and last element. size must be at least 2.
func strideSample(sorted []float64, size int) []float64 {
	res := make([]float64, size)
	last := float64(len(sorted) - 1)
	for i := 0; i < size; i++ {
		pos := last * float64(i) / float64(size-1)
		res[i] = sorted[int(math.Round(pos))]
	}

	return res
}

// countDistinct counts distinct values in a sorted slice.
func countDistinct(sorted []float64) int {
	d := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1] {
			d++
		}
	}

	return d
}

// degenerateBreaks builds a breakpoint sequence when the distinct values
// cannot fill the requested classes: each distinct value becomes a
// breakpoint and the maximum is repeated to reach classes+1 entries.
func degenerateBreaks(sorted []float64, classes int) []float64 {
	res := make([]float64, 0, classes+1)
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			res = append(res, v)
		}
	}
	for len(res) < classes+1 {
		res = append(res, sorted[len(sorted)-1])
	}

	return res
}
