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

// And returns the bitwise AND of the bit patterns of a and b.
func And[T Lanes](a, b T) T {
	return FromBits[T](ToBits(a) & ToBits(b))
}

// Or returns the bitwise OR of the bit patterns of a and b.
func Or[T Lanes](a, b T) T {
	return FromBits[T](ToBits(a) | ToBits(b))
}

// Xor returns the bitwise XOR of the bit patterns of a and b.
func Xor[T Lanes](a, b T) T {
	return FromBits[T](ToBits(a) ^ ToBits(b))
}

// AndNot returns a & ^b on the bit patterns.
func AndNot[T Lanes](a, b T) T {
	return FromBits[T](ToBits(a) &^ ToBits(b))
}

// Not returns the bitwise complement of the bit pattern of a.
func Not[T Lanes](a T) T {
	return FromBits[T](^ToBits(a))
}

// Shl shifts a left by n modulo the bit width of T.
func Shl[T Integers](a T, n uint64) T {
	return a << (n % uint64(BitWidth[T]()))
}

// Shr shifts a right by n modulo the bit width of T. The shift is
// arithmetic for signed kinds and logical for unsigned kinds.
func Shr[T Integers](a T, n uint64) T {
	return a >> (n % uint64(BitWidth[T]()))
}

// Rol rotates a left by n modulo the bit width of T.
func Rol[T Integers](a T, n uint64) T {
	w := uint64(BitWidth[T]())
	s := n % w
	if s == 0 {
		return a
	}
	u := ToBits(a)
	return FromBits[T]((u<<s | u>>(w-s)) & widthMask[T]())
}

// Ror rotates a right by n modulo the bit width of T.
func Ror[T Integers](a T, n uint64) T {
	w := uint64(BitWidth[T]())
	return Rol(a, w-n%w)
}
