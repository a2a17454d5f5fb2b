package bins

import (
	"math"
	"strconv"
)

// coerce converts an extracted value to float64 in a single explicit
// step at ingestion time; all later comparisons operate on plain floats.
// Supported inputs are every built-in numeric type and numeric strings.
// NaN is rejected (it compares false against every interval), as is
// anything unconvertible: the caller silently excludes such items.
func coerce(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, !math.IsNaN(v)
	case float32:
		f := float64(v)

		return f, !math.IsNaN(f)
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)

		return f, err == nil && !math.IsNaN(f)
	default:
		return 0, false
	}
}
