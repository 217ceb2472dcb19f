// Copyright 2021 Aleksandr Demakin. All rights reserved.

package floatx

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var negZero = math.Copysign(0, -1)

func TestSignbit(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		num    float64
		result bool
	}{
		{0, false},
		{negZero, true},
		{5, false},
		{-5, true},
		{math.SmallestNonzeroFloat64, false},
		{-math.SmallestNonzeroFloat64, true},
		{math.Inf(1), false},
		{math.Inf(-1), true},
		{math.NaN(), false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.result, Signbit(test.num))
		})
	}
}

func TestCopysign(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		num, sign float64
		result    float64
	}{
		{3, -7, -3},
		{-3, 7, 3},
		{3, negZero, -3},
		{-3, 0, 3},
		{3, math.Inf(-1), -3},
		{-3, math.Inf(1), 3},
		{math.Inf(1), -1, math.Inf(-1)},
		{5, math.NaN(), 5},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.result, Copysign(test.num, test.sign))
		})
	}
	t.Run("negative zero magnitude", func(t *testing.T) {
		got := Copysign(0, -1)
		a.Equal(0.0, got)
		a.True(Signbit(got))
	})
}

func TestAbs(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		num    float64
		result float64
	}{
		{0, 0},
		{negZero, 0},
		{5, 5},
		{-5, 5},
		{-math.SmallestNonzeroFloat64, math.SmallestNonzeroFloat64},
		{-math.MaxFloat64, math.MaxFloat64},
		{math.Inf(-1), math.Inf(1)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.result, Abs(test.num))
			a.Equal(test.result, Fabs(test.num))
			a.Equal(math.Abs(test.num), Abs(test.num))
		})
	}
	a.True(math.IsNaN(Abs(math.NaN())))
	a.True(math.IsNaN(Fabs(math.NaN())))
	a.False(Signbit(Abs(negZero)))
}
