// Copyright 2021 Aleksandr Demakin. All rights reserved.

package floatx

import "math"

// Hypot returns sqrt(x*x + y*y), without undue intermediate overflow or
// underflow, per the IEC 60559 requirements for the two-argument form.
//
// Special cases are:
//	Hypot(±Inf, y) = +Inf, even if y is NaN
//	Hypot(x, ±Inf) = +Inf, even if x is NaN
//	Hypot(0, y) = |y| exactly, and likewise for a zero y
func Hypot(x, y float64) float64 {
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return math.Inf(1)
	}
	if x == 0 {
		return math.Abs(y)
	}
	if y == 0 {
		return math.Abs(x)
	}
	return math.Hypot(x, y)
}

// Hypot3 returns sqrt(x*x + y*y + z*z). The three-argument form carries
// no special cases of its own beyond those of the underlying
// two-argument computations.
func Hypot3(x, y, z float64) float64 {
	return math.Hypot(math.Hypot(x, y), z)
}
