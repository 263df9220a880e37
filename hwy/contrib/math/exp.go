// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package math

import (
	"github.com/go-highway/fixedvec/hwy"
	"github.com/go-highway/fixedvec/hwy/lane"
)

// Exp computes e^x for each lane.
//
// Algorithm:
//  1. Range reduction: k = round(x / ln(2)), r = x - k*ln(2)
//  2. Polynomial approximation: e^r ≈ 1 + r + r²/2! + r³/3! + ...
//  3. Reconstruction: e^x = 2^k * e^r
//
// Lanes above ln(MaxValue) give +Inf, lanes below the smallest normal
// exponent give 0, and NaN propagates.
func Exp[T hwy.Floats, N hwy.LaneCount](x hwy.Vec[T, N]) hwy.Vec[T, N] {
	invLn2, ln2Hi, ln2Lo := T(expInvLn2_f64), T(expLn2Hi_f64), T(expLn2Lo_f64)
	overflow, underflow := T(expOverflow_f64), T(expUnderflow_f64)
	coeffs := expCoeffs_f64
	if lane.KindOf[T]() == lane.F32 {
		invLn2, ln2Hi, ln2Lo = T(expInvLn2_f32), T(expLn2Hi_f32), T(expLn2Lo_f32)
		overflow, underflow = T(expOverflow_f32), T(expUnderflow_f32)
		coeffs = expCoeffs_f32
	}

	overflowMask := x.CmpGtScalar(overflow)
	underflowMask := x.CmpLtScalar(underflow)

	// Range reduction: k = round(x / ln(2)), r = x - k * ln(2)
	k := x.MulScalar(invLn2).RoundToEven()
	r := x.Sub(k.MulScalar(ln2Hi)).Sub(k.MulScalar(ln2Lo))

	// Polynomial approximation using Horner's method
	p := horner(r, coeffs)
	p = p.MulAdd(r, hwy.Set[T, N](1))

	// Scale by 2^k in two steps so that k at either end of the range does
	// not overflow the exponent field.
	half := k.MulScalar(0.5).Floor()
	result := p.Mul(pow2(half)).Mul(pow2(k.Sub(half)))

	// Handle special cases
	result = hwy.IfThenElse(overflowMask, hwy.Set[T, N](lane.FromBits[T](infBits[T]())), result)
	return hwy.IfThenElse(underflowMask, hwy.Zero[T, N](), result)
}

// Sigmoid computes 1 / (1 + e^-x) for each lane.
func Sigmoid[T hwy.Floats, N hwy.LaneCount](x hwy.Vec[T, N]) hwy.Vec[T, N] {
	return Exp(x.Neg()).AddScalar(1).Rcp()
}

// Tanh computes tanh(x) = 2*sigmoid(2x) - 1 for each lane. Lanes beyond
// ±9 saturate to ±1.
func Tanh[T hwy.Floats, N hwy.LaneCount](x hwy.Vec[T, N]) hwy.Vec[T, N] {
	clamped := hwy.Clamp(x, hwy.Set[T, N](-9), hwy.Set[T, N](9))
	y := Sigmoid(clamped.MulScalar(2)).MulScalar(2).SubScalar(1)
	return hwy.IfThenElse(hwy.IsNaN(x), x, y)
}

// horner evaluates c[n-1]*r^(n-1) + ... + c[1]*r + c[0].
func horner[T hwy.Floats, N hwy.LaneCount](r hwy.Vec[T, N], c []float64) hwy.Vec[T, N] {
	p := hwy.Set[T, N](T(c[len(c)-1]))
	for i := len(c) - 2; i >= 0; i-- {
		p = p.MulAdd(r, hwy.Set[T, N](T(c[i])))
	}
	return p
}

// pow2 builds 2^k from integral k by writing the biased exponent directly.
// k must lie within the normal exponent range.
func pow2[T hwy.Floats, N hwy.LaneCount](k hwy.Vec[T, N]) hwy.Vec[T, N] {
	l := layoutOf[T]()
	e := hwy.Convert[int64](k).AddScalar(int64(l.bias))
	return hwy.BitCast[T](hwy.ShlScalar(e, l.mantBits))
}

func layoutOf[T hwy.Floats]() floatLayout {
	if lane.KindOf[T]() == lane.F32 {
		return layout_f32
	}
	return layout_f64
}

func infBits[T hwy.Floats]() uint64 {
	l := layoutOf[T]()
	return l.expMask << l.mantBits
}
