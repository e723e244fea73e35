package expr

import (
	"math"
	"strconv"
)

// Format renders an evaluated value as the decimal that goes into the SFZ
// output. Integral values print without a decimal point or exponent, other
// finite values print the shortest decimal that parses back to the same
// float64. Negative zero prints as 0.
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
