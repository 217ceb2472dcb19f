// Copyright 2021 Aleksandr Demakin. All rights reserved.

package floatx

import "math"

// Frexp breaks num into a normalized fraction and an integral power of
// two, returning frac and exp satisfying num == frac × 2**exp, with the
// absolute value of frac in the interval [0.5, 1).
//
// Special cases are:
//	Frexp(±0) = ±0, 0
//	Frexp(±Inf) = ±Inf, 0
//	Frexp(NaN) = NaN, 0
func Frexp(num float64) (frac float64, exp int) {
	if num == 0 || math.IsInf(num, 0) || math.IsNaN(num) {
		return num, 0
	}
	abs := math.Abs(num)
	// Estimate the exponent from log2. The clamp keeps the scaling factor
	// 2**-exp representable for subnormal inputs.
	exp = int(math.Floor(math.Log2(abs))) + 1
	if exp < -1023 {
		exp = -1023
	}
	frac = abs * math.Pow(2, float64(-exp))
	// log2 precision is not guaranteed, so correct the estimate until the
	// fraction is normalized. Both loops are bounded by the exponent range.
	for frac < 0.5 {
		frac *= 2
		exp--
	}
	for frac >= 1 {
		frac /= 2
		exp++
	}
	if num < 0 {
		frac = -frac
	}
	return frac, exp
}

// Ldexp is the inverse of Frexp. It returns factor × 2**exp for
// exponents roughly in [-1075, 1023]. The scaling is split into two
// half-sized power-of-two multiplications, with one extra factor of
// 2**(exp%2) for odd exponents, so that no intermediate power of two
// overflows or underflows before the final result is reached.
//
// Special cases are:
//	Ldexp(±0, exp) = ±0
//	Ldexp(±Inf, exp) = ±Inf
//	Ldexp(NaN, exp) = NaN
func Ldexp(factor float64, exp int) float64 {
	half := math.Pow(2, float64(exp/2))
	result := factor * half * half
	if rem := exp % 2; rem != 0 {
		result *= math.Pow(2, float64(rem))
	}
	return result
}
