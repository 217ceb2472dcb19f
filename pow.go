// Copyright 2021 Aleksandr Demakin. All rights reserved.

package floatx

import "math"

// Pow returns base**exponent with the two edge cases mandated by the
// C/C++ standards:
//	Pow(1, y) = 1 for any y, including NaN
//	Pow(-1, ±Inf) = 1
// All other inputs follow native exponentiation semantics unchanged.
func Pow(base, exponent float64) float64 {
	if base == 1 {
		return 1
	}
	if base == -1 && math.IsInf(exponent, 0) {
		return 1
	}
	return math.Pow(base, exponent)
}
