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

// Sin computes sin(x) for each lane.
//
// Algorithm:
//  1. Range reduction: k = round(x * 2/π), r = x - k*(π/2)
//  2. Compute sin(r) and cos(r) polynomials
//  3. Select based on quadrant: k mod 4
//     - 0: sin(r)
//     - 1: cos(r)
//     - 2: -sin(r)
//     - 3: -cos(r)
//
// Special cases:
//   - Sin(±0) = ±0
//   - Sin(±Inf) = NaN
//   - Sin(NaN) = NaN
//
// The reduction keeps full accuracy while k*(π/2) is exact in the high
// part, roughly |x| < 1e5 for float32 and |x| < 1e9 for float64.
func Sin[T hwy.Floats, N hwy.LaneCount](x hwy.Vec[T, N]) hwy.Vec[T, N] {
	sin, _ := sinCos(x)
	return hwy.IfThenElse(x.CmpEqScalar(0), x, sin)
}

// Cos computes cos(x) for each lane with the same reduction as Sin.
//
// Special cases:
//   - Cos(±Inf) = NaN
//   - Cos(NaN) = NaN
func Cos[T hwy.Floats, N hwy.LaneCount](x hwy.Vec[T, N]) hwy.Vec[T, N] {
	_, cos := sinCos(x)
	return cos
}

// SinCos computes sin(x) and cos(x) together, sharing the range reduction.
func SinCos[T hwy.Floats, N hwy.LaneCount](x hwy.Vec[T, N]) (sin, cos hwy.Vec[T, N]) {
	sin, cos = sinCos(x)
	return hwy.IfThenElse(x.CmpEqScalar(0), x, sin), cos
}

func sinCos[T hwy.Floats, N hwy.LaneCount](x hwy.Vec[T, N]) (sin, cos hwy.Vec[T, N]) {
	twoOverPi, hi, lo := T(trig2OverPi_f64), T(trigPiOver2Hi_f64), T(trigPiOver2Lo_f64)
	sinCoeffs, cosCoeffs := trigSinCoeffs_f64, trigCosCoeffs_f64
	if lane.KindOf[T]() == lane.F32 {
		twoOverPi, hi, lo = T(trig2OverPi_f32), T(trigPiOver2Hi_f32), T(trigPiOver2Lo_f32)
		sinCoeffs, cosCoeffs = trigSinCoeffs_f32, trigCosCoeffs_f32
	}

	// Range reduction with fused steps: r = x - k*hi - k*lo.
	k := x.MulScalar(twoOverPi).RoundToEven()
	negK := k.Neg()
	r := negK.MulAdd(hwy.Set[T, N](hi), x)
	r = negK.MulAdd(hwy.Set[T, N](lo), r)
	r2 := r.Mul(r)

	sinR := r.Mul(horner(r2, sinCoeffs))
	cosR := horner(r2, cosCoeffs)

	// Quadrant k mod 4; two's complement keeps negative k correct.
	q := hwy.Convert[int64](k).AndScalar(3)
	odd := q.AndScalar(1).CmpEqScalar(1)
	sin = hwy.IfThenElse(odd, cosR, sinR).MaskedNeg(q.CmpGeScalar(2))

	// cos(x) = sin(x + π/2), one quadrant further.
	qc := q.AddScalar(1).AndScalar(3)
	cos = hwy.IfThenElse(odd, sinR, cosR).MaskedNeg(qc.CmpGeScalar(2))

	nan := hwy.IsFinite(x).Not()
	quiet := uint64(1) << (layoutOf[T]().mantBits - 1)
	nanVec := hwy.Set[T, N](lane.FromBits[T](infBits[T]() | quiet))
	return hwy.IfThenElse(nan, nanVec, sin), hwy.IfThenElse(nan, nanVec, cos)
}
