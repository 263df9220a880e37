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

package lane

import (
	"math"
	"math/big"
)

// exactPrec is wide enough to hold any sum or product of three float64
// values without rounding.
const exactPrec = 4096

// MulAdd returns a*b + c. Floats are rounded once; integers wrap.
func MulAdd[T Lanes](a, b, c T) T {
	if !IsFloatKind[T]() {
		return a*b + c
	}
	if KindOf[T]() == F64 {
		return T(math.FMA(float64(a), float64(b), float64(c)))
	}
	return fused(a, b, c, func(x, y, z *big.Float) *big.Float {
		return x.Add(x.Mul(x, y), z)
	}, func(x, y, z float64) float64 { return x*y + z })
}

// MulSub returns a*b - c. Floats are rounded once; integers wrap.
func MulSub[T Lanes](a, b, c T) T {
	if !IsFloatKind[T]() {
		return a*b - c
	}
	if KindOf[T]() == F64 {
		return T(math.FMA(float64(a), float64(b), -float64(c)))
	}
	return fused(a, b, c, func(x, y, z *big.Float) *big.Float {
		return x.Sub(x.Mul(x, y), z)
	}, func(x, y, z float64) float64 { return x*y - z })
}

// AddMul returns (a+b) * c. Floats are rounded once; integers wrap.
func AddMul[T Lanes](a, b, c T) T {
	if !IsFloatKind[T]() {
		return (a + b) * c
	}
	return fused(a, b, c, func(x, y, z *big.Float) *big.Float {
		return x.Mul(x.Add(x, y), z)
	}, func(x, y, z float64) float64 { return (x + y) * z })
}

// SubMul returns (a-b) * c. Floats are rounded once; integers wrap.
func SubMul[T Lanes](a, b, c T) T {
	if !IsFloatKind[T]() {
		return (a - b) * c
	}
	return fused(a, b, c, func(x, y, z *big.Float) *big.Float {
		return x.Mul(x.Sub(x, y), z)
	}, func(x, y, z float64) float64 { return (x - y) * z })
}

// fused evaluates op exactly and rounds the result to T once. Inputs that
// are NaN or infinite, and exact zero results, take the native path so IEEE
// special values and signed zeros come out as the hardware produces them.
func fused[T Lanes](a, b, c T, op func(x, y, z *big.Float) *big.Float, native func(x, y, z float64) float64) T {
	fa, fb, fc := float64(a), float64(b), float64(c)
	if !isFinite64(fa) || !isFinite64(fb) || !isFinite64(fc) {
		return T(native(fa, fb, fc))
	}
	x := new(big.Float).SetPrec(exactPrec).SetFloat64(fa)
	y := new(big.Float).SetPrec(exactPrec).SetFloat64(fb)
	z := new(big.Float).SetPrec(exactPrec).SetFloat64(fc)
	r := op(x, y, z)
	if r.Sign() == 0 {
		return T(native(fa, fb, fc))
	}
	if KindOf[T]() == F32 {
		f, _ := r.Float32()
		return T(f)
	}
	f, _ := r.Float64()
	return T(f)
}

func isFinite64(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
