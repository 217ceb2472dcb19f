// Copyright 2021 Aleksandr Demakin. All rights reserved.

package floatx

import "math"

// Nextafter returns the next representable float64 after num in the
// direction of toward.
//
// Special cases are:
//	Nextafter(x, x) = x, preserving the sign of a zero toward
//	Nextafter(±0, y) = ±SmallestNonzeroFloat64, signed by the sign bit of y
//	Nextafter(±Inf, y) = ±MaxFloat64
//	Nextafter(-SmallestNonzeroFloat64, y) = -0 for y > -SmallestNonzeroFloat64
func Nextafter(num, toward float64) float64 {
	switch {
	case num == toward:
		return toward
	case num == 0:
		if Signbit(toward) {
			return -math.SmallestNonzeroFloat64
		}
		return math.SmallestNonzeroFloat64
	case math.IsInf(num, 1):
		return math.MaxFloat64
	case math.IsInf(num, -1):
		return -math.MaxFloat64
	case num == -math.SmallestNonzeroFloat64 && toward > num:
		return math.Copysign(0, -1)
	}
	// Perturb num by a growing fraction of itself until rounding moves it.
	// The multiplier starts at half an epsilon and doubles, so the first
	// perturbation that changes num is at most one ULP and the result is
	// the adjacent value. The loop is bounded by the exponent range.
	mult := 0.5
	if toward < num {
		mult = -mult
	}
	if num < 0 {
		mult = -mult
	}
	for {
		next := num + num*(epsilon*mult)
		if next != num {
			return next
		}
		mult *= 2
	}
}
