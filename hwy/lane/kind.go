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

// Package lane defines the exact per-element semantics of every vector
// operation. Each function here operates on a single lane value and is the
// ground truth that the hwy vector types and any hardware backend must
// reproduce bit-for-bit.
//
// Summary of the element rules:
//   - Integer arithmetic wraps modulo 2^bits.
//   - Shift and rotate amounts are taken modulo the bit width of the kind.
//   - Right shift is arithmetic for signed kinds, logical for unsigned ones.
//   - Bitwise operations act on the raw bit pattern, floats included.
//   - Floating point follows IEEE-754 with round-to-nearest-even.
package lane

import (
	"math"
	"unsafe"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in a vector lane.
type Lanes interface {
	Floats | Integers
}

// Kind identifies an element type at runtime.
type Kind uint8

const (
	U8 Kind = iota
	I8
	U16
	I16
	U32
	I32
	U64
	I64
	F32
	F64
)

// AllKinds lists every supported element kind in declaration order.
var AllKinds = []Kind{U8, I8, U16, I16, U32, I32, U64, I64, F32, F64}

// String returns the Go spelling of the kind ("uint8", "float32", ...).
func (k Kind) String() string {
	switch k {
	case U8:
		return "uint8"
	case I8:
		return "int8"
	case U16:
		return "uint16"
	case I16:
		return "int16"
	case U32:
		return "uint32"
	case I32:
		return "int32"
	case U64:
		return "uint64"
	case I64:
		return "int64"
	case F32:
		return "float32"
	case F64:
		return "float64"
	default:
		return "unknown"
	}
}

// Bits returns the bit width of the kind.
func (k Kind) Bits() int {
	switch k {
	case U8, I8:
		return 8
	case U16, I16:
		return 16
	case U32, I32, F32:
		return 32
	default:
		return 64
	}
}

// Signed reports whether the kind is a signed integer or a float.
func (k Kind) Signed() bool {
	switch k {
	case I8, I16, I32, I64, F32, F64:
		return true
	}
	return false
}

// Float reports whether the kind is a floating-point kind.
func (k Kind) Float() bool {
	return k == F32 || k == F64
}

// KindOf returns the Kind of T. Named types resolve to their underlying kind.
func KindOf[T Lanes]() Kind {
	var zero T
	half := 0.5
	isFloat := T(half) != 0
	signed := zero-1 < zero
	switch unsafe.Sizeof(zero) {
	case 1:
		if signed {
			return I8
		}
		return U8
	case 2:
		if signed {
			return I16
		}
		return U16
	case 4:
		if isFloat {
			return F32
		}
		if signed {
			return I32
		}
		return U32
	default:
		if isFloat {
			return F64
		}
		if signed {
			return I64
		}
		return U64
	}
}

// BitWidth returns the number of bits in T.
func BitWidth[T Lanes]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// IsFloatKind reports whether T is a floating-point type.
func IsFloatKind[T Lanes]() bool {
	half := 0.5
	return T(half) != 0
}

// IsSignedKind reports whether T is a signed integer or floating-point type.
func IsSignedKind[T Lanes]() bool {
	var zero T
	return zero-1 < zero
}

// widthMask returns a mask with the low BitWidth[T]() bits set.
func widthMask[T Lanes]() uint64 {
	w := BitWidth[T]()
	if w == 64 {
		return math.MaxUint64
	}
	return (uint64(1) << w) - 1
}

// ToBits returns the raw bit pattern of a, zero-extended to 64 bits.
func ToBits[T Lanes](a T) uint64 {
	switch unsafe.Sizeof(a) {
	case 1:
		return uint64(*(*uint8)(unsafe.Pointer(&a)))
	case 2:
		return uint64(*(*uint16)(unsafe.Pointer(&a)))
	case 4:
		return uint64(*(*uint32)(unsafe.Pointer(&a)))
	default:
		return *(*uint64)(unsafe.Pointer(&a))
	}
}

// FromBits builds a T from the low BitWidth[T]() bits of u.
func FromBits[T Lanes](u uint64) T {
	var r T
	switch unsafe.Sizeof(r) {
	case 1:
		*(*uint8)(unsafe.Pointer(&r)) = uint8(u)
	case 2:
		*(*uint16)(unsafe.Pointer(&r)) = uint16(u)
	case 4:
		*(*uint32)(unsafe.Pointer(&r)) = uint32(u)
	default:
		*(*uint64)(unsafe.Pointer(&r)) = u
	}
	return r
}

// signBit returns the bit pattern with only the top bit of T set.
func signBit[T Lanes]() uint64 {
	return uint64(1) << (BitWidth[T]() - 1)
}

// AllOnes returns the value whose bit pattern is all ones.
// For floats this is a NaN.
func AllOnes[T Lanes]() T {
	return FromBits[T](math.MaxUint64)
}

// MinValue returns the smallest finite value of T.
// For floats this is the most negative finite value (-MaxFloat).
func MinValue[T Lanes]() T {
	switch KindOf[T]() {
	case I8, I16, I32, I64:
		return FromBits[T](signBit[T]())
	case F32, F64:
		return Neg(MaxValue[T]())
	default:
		return 0
	}
}

// MaxValue returns the largest finite value of T.
func MaxValue[T Lanes]() T {
	switch KindOf[T]() {
	case I8, I16, I32, I64:
		return FromBits[T](signBit[T]() - 1)
	case F32:
		return FromBits[T](uint64(math.Float32bits(math.MaxFloat32)))
	case F64:
		return FromBits[T](math.Float64bits(math.MaxFloat64))
	default:
		return AllOnes[T]()
	}
}

// MaxIdentity is the identity of the Max fold: MinValue for integers and
// negative infinity for floats.
func MaxIdentity[T Lanes]() T {
	if IsFloatKind[T]() {
		return negInf[T]()
	}
	return MinValue[T]()
}

// MinIdentity is the identity of the Min fold: MaxValue for integers and
// positive infinity for floats.
func MinIdentity[T Lanes]() T {
	if IsFloatKind[T]() {
		return posInf[T]()
	}
	return MaxValue[T]()
}

func posInf[T Lanes]() T {
	if BitWidth[T]() == 32 {
		return FromBits[T](0x7F800000)
	}
	return FromBits[T](0x7FF0000000000000)
}

func negInf[T Lanes]() T {
	if BitWidth[T]() == 32 {
		return FromBits[T](0xFF800000)
	}
	return FromBits[T](0xFFF0000000000000)
}
