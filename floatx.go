// Copyright 2021 Aleksandr Demakin. All rights reserved.

// package floatx implements IEEE-754 binary64 utility functions with the
// exact special-case behavior required by the C/C++ numeric standards:
// signed zeros, infinities, NaN and subnormals are all handled explicitly.
// Every function is a pure, total transform; no errors are ever returned.
package floatx

import "math"

// epsilon is the gap between 1.0 and the next representable float64.
const epsilon = 0x1p-52

// Signbit reports whether the sign bit of num is set: true for any
// negative value and for negative zero. NaN reports false, as there is
// no observable negative NaN in this system.
func Signbit(num float64) bool {
	if math.IsNaN(num) {
		return false
	}
	return math.Signbit(num)
}

// Copysign returns a value with the magnitude of num and the sign of sign.
// A zero sign source counts as positive or negative according to its
// sign bit, so Copysign(3, -0) is -3.
func Copysign(num, sign float64) float64 {
	abs := math.Abs(num)
	if Signbit(sign) {
		return -abs
	}
	return abs
}

// Abs returns the absolute value of num.
//
// Special cases are:
//	Abs(±0) = 0
//	Abs(±Inf) = +Inf
//	Abs(NaN) = NaN
func Abs(num float64) float64 {
	return math.Abs(num)
}

// Fabs is an alias for Abs, exposed under the C name for the
// floating-point form. Both names denote the same operation, as the
// system does not distinguish integer and floating representations.
func Fabs(num float64) float64 {
	return Abs(num)
}
