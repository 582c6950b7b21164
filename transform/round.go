package transform

import (
	"math"
	"strconv"

	"tokencss/common"
)

// RoundTo rounds n to the given number of decimal places and optionally
// transposes the decimal point:
//
//	result = round(n * 10^places) / 10^(places - transpose)
//
// Zero places means 2, zero transpose means no transposition. The second
// return value is false when n is zero, NaN or infinite, callers must check
// it. Direction is accepted for compatibility with exported expressions,
// rounding is always to nearest with halves going up.
func RoundTo(n float64, places int, dir common.RoundDirection, transpose int) (float64, bool) {
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	if places == 0 {
		places = 2
	}
	scale := places
	if transpose != 0 {
		scale = places - transpose
	}
	r := roundHalfUp(n * math.Pow(10, float64(places)))
	return r / math.Pow(10, float64(scale)), true
}

// roundHalfUp behaves like Math.round: ties go toward positive infinity, so
// -2.5 becomes -2 while 2.5 becomes 3.
func roundHalfUp(x float64) float64 {
	f := math.Floor(x)
	if x-f >= 0.5 {
		return f + 1
	}
	return f
}

// FormatNumber renders number the shortest way which reads back to the same
// value, with no exponent and no trailing zeros: 1.5, 0.875, 24.
func FormatNumber(f float64) string {
	if f == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
