package utils

import "math"

// TruncateWithTwoDecimalPlace descarta a partir da terceira casa decimal
func TruncateWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Floor(f*100) / 100
}
