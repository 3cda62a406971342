package output

import (
	"math"
	"strconv"
	"strings"
)

// FrequencyPrecision is the number of fractional digits kept in frequencies.
const FrequencyPrecision = 6

// RoundFrequency rounds f to FrequencyPrecision fractional digits. Rounding
// is half-to-even on the exact binary value of f.
func RoundFrequency(f float64) float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return f
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', FrequencyPrecision, 64), 64)
	if err != nil {
		return f
	}
	return r
}

// FormatFrequency renders a rounded frequency with the fewest digits that
// read back to the same value. Integral values keep a trailing ".0"; values
// below 1e-4 or from 1e16 up use exponent form.
func FormatFrequency(f float64) string {
	if f == 0 {
		return "0.0"
	}

	abs := math.Abs(f)
	if abs < 1e-4 || abs >= 1e16 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
