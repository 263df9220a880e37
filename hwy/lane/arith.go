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

import "math"

// Add returns a + b. Integers wrap around.
func Add[T Lanes](a, b T) T {
	return a + b
}

// Sub returns a - b. Integers wrap around.
func Sub[T Lanes](a, b T) T {
	return a - b
}

// Mul returns a * b. Integers wrap around.
func Mul[T Lanes](a, b T) T {
	// The explicit conversion forces rounding of the product so the compiler
	// cannot fuse it with a following addition.
	return T(a * b)
}

// Div returns a / b. Integer division truncates toward zero; MinValue / -1
// wraps to MinValue. Integer division by zero panics like Go's own operator.
func Div[T Lanes](a, b T) T {
	return a / b
}

// Rem returns the remainder of a / b with the sign of a.
// For floats this is math.Mod (C fmod).
func Rem[T Lanes](a, b T) T {
	switch KindOf[T]() {
	case F32, F64:
		return T(math.Mod(float64(a), float64(b)))
	case I8, I16, I32, I64:
		return T(int64(a) % int64(b))
	default:
		return T(uint64(a) % uint64(b))
	}
}

// Rcp returns 1 / a. For integer kinds the division is an integer division,
// so the result is 1 for a == 1, -1 for a == -1 and 0 otherwise.
func Rcp[T Lanes](a T) T {
	var one T = 1
	return one / a
}

// Neg returns -a. For floats only the sign bit is flipped.
func Neg[T Lanes](a T) T {
	if IsFloatKind[T]() {
		return FromBits[T](ToBits(a) ^ signBit[T]())
	}
	return -a
}

// Abs returns |a|. Abs(MinValue) wraps to MinValue for signed integers.
// For floats only the sign bit is cleared.
func Abs[T Lanes](a T) T {
	if IsFloatKind[T]() {
		return FromBits[T](ToBits(a) &^ signBit[T]())
	}
	if a < 0 {
		return -a
	}
	return a
}

// Sqr returns a * a.
func Sqr[T Lanes](a T) T {
	return Mul(a, a)
}

// Sqrt returns the square root of a. For integers the result is
// floor(sqrt(a)); negative integers yield 0.
func Sqrt[T Lanes](a T) T {
	if IsFloatKind[T]() {
		return T(math.Sqrt(float64(a)))
	}
	if a < 0 {
		return 0
	}
	return T(isqrt(uint64(a)))
}

func isqrt(u uint64) uint64 {
	r := uint64(math.Sqrt(float64(u)))
	for r > 0 && (r > math.MaxUint32 || r*r > u) {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= u {
		r++
	}
	return r
}

// Round rounds half away from zero. Integers are returned unchanged.
func Round[T Lanes](a T) T {
	if IsFloatKind[T]() {
		return T(math.Round(float64(a)))
	}
	return a
}

// RoundToEven rounds half to even. Integers are returned unchanged.
func RoundToEven[T Lanes](a T) T {
	if IsFloatKind[T]() {
		return T(math.RoundToEven(float64(a)))
	}
	return a
}

// Floor rounds toward negative infinity. Integers are returned unchanged.
func Floor[T Lanes](a T) T {
	if IsFloatKind[T]() {
		return T(math.Floor(float64(a)))
	}
	return a
}

// Ceil rounds toward positive infinity. Integers are returned unchanged.
func Ceil[T Lanes](a T) T {
	if IsFloatKind[T]() {
		return T(math.Ceil(float64(a)))
	}
	return a
}

// Min returns a if a < b, otherwise b. With a NaN operand the result is b.
func Min[T Lanes](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns a if a > b, otherwise b. With a NaN operand the result is b.
func Max[T Lanes](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Eq reports a == b. NaN compares unequal to everything.
func Eq[T Lanes](a, b T) bool { return a == b }

// Ne reports a != b.
func Ne[T Lanes](a, b T) bool { return a != b }

// Lt reports a < b.
func Lt[T Lanes](a, b T) bool { return a < b }

// Gt reports a > b.
func Gt[T Lanes](a, b T) bool { return a > b }

// Le reports a <= b.
func Le[T Lanes](a, b T) bool { return a <= b }

// Ge reports a >= b.
func Ge[T Lanes](a, b T) bool { return a >= b }
