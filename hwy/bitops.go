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

package hwy

import (
	"math/bits"

	"github.com/go-highway/fixedvec/hwy/lane"
)

// Bitwise operations act on the raw bit pattern of each lane, so they are
// defined for float lanes too.

// And returns the bitwise AND of v and b.
func (v Vec[T, N]) And(b Vec[T, N]) Vec[T, N] {
	return zipLanes(v, b, lane.And[T])
}

// AndScalar returns And of v and a broadcast s.
func (v Vec[T, N]) AndScalar(s T) Vec[T, N] {
	return zipScalar(v, s, lane.And[T])
}

// MaskedAnd applies And on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedAnd(m Mask[N], b Vec[T, N]) Vec[T, N] {
	return zipLanesMasked(m, v, b, lane.And[T])
}

// MaskedAndScalar applies AndScalar on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedAndScalar(m Mask[N], s T) Vec[T, N] {
	return zipScalarMasked(m, v, s, lane.And[T])
}

// AndAssign sets v to v.And(b).
func (v *Vec[T, N]) AndAssign(b Vec[T, N]) {
	*v = v.And(b)
}

// AndAssignScalar sets v to v.AndScalar(s).
func (v *Vec[T, N]) AndAssignScalar(s T) {
	*v = v.AndScalar(s)
}

// Or returns the bitwise OR of v and b.
func (v Vec[T, N]) Or(b Vec[T, N]) Vec[T, N] {
	return zipLanes(v, b, lane.Or[T])
}

// OrScalar returns Or of v and a broadcast s.
func (v Vec[T, N]) OrScalar(s T) Vec[T, N] {
	return zipScalar(v, s, lane.Or[T])
}

// MaskedOr applies Or on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedOr(m Mask[N], b Vec[T, N]) Vec[T, N] {
	return zipLanesMasked(m, v, b, lane.Or[T])
}

// MaskedOrScalar applies OrScalar on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedOrScalar(m Mask[N], s T) Vec[T, N] {
	return zipScalarMasked(m, v, s, lane.Or[T])
}

// OrAssign sets v to v.Or(b).
func (v *Vec[T, N]) OrAssign(b Vec[T, N]) {
	*v = v.Or(b)
}

// OrAssignScalar sets v to v.OrScalar(s).
func (v *Vec[T, N]) OrAssignScalar(s T) {
	*v = v.OrScalar(s)
}

// Xor returns the bitwise XOR of v and b.
func (v Vec[T, N]) Xor(b Vec[T, N]) Vec[T, N] {
	return zipLanes(v, b, lane.Xor[T])
}

// XorScalar returns Xor of v and a broadcast s.
func (v Vec[T, N]) XorScalar(s T) Vec[T, N] {
	return zipScalar(v, s, lane.Xor[T])
}

// MaskedXor applies Xor on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedXor(m Mask[N], b Vec[T, N]) Vec[T, N] {
	return zipLanesMasked(m, v, b, lane.Xor[T])
}

// MaskedXorScalar applies XorScalar on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedXorScalar(m Mask[N], s T) Vec[T, N] {
	return zipScalarMasked(m, v, s, lane.Xor[T])
}

// XorAssign sets v to v.Xor(b).
func (v *Vec[T, N]) XorAssign(b Vec[T, N]) {
	*v = v.Xor(b)
}

// XorAssignScalar sets v to v.XorScalar(s).
func (v *Vec[T, N]) XorAssignScalar(s T) {
	*v = v.XorScalar(s)
}

// AndNot returns v & ^b.
func (v Vec[T, N]) AndNot(b Vec[T, N]) Vec[T, N] {
	return zipLanes(v, b, lane.AndNot[T])
}

// AndNotScalar returns AndNot of v and a broadcast s.
func (v Vec[T, N]) AndNotScalar(s T) Vec[T, N] {
	return zipScalar(v, s, lane.AndNot[T])
}

// MaskedAndNot applies AndNot on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedAndNot(m Mask[N], b Vec[T, N]) Vec[T, N] {
	return zipLanesMasked(m, v, b, lane.AndNot[T])
}

// MaskedAndNotScalar applies AndNotScalar on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedAndNotScalar(m Mask[N], s T) Vec[T, N] {
	return zipScalarMasked(m, v, s, lane.AndNot[T])
}

// AndNotAssign sets v to v.AndNot(b).
func (v *Vec[T, N]) AndNotAssign(b Vec[T, N]) {
	*v = v.AndNot(b)
}

// AndNotAssignScalar sets v to v.AndNotScalar(s).
func (v *Vec[T, N]) AndNotAssignScalar(s T) {
	*v = v.AndNotScalar(s)
}

// Not returns the bitwise complement of v.
func (v Vec[T, N]) Not() Vec[T, N] {
	return mapLanes(v, lane.Not[T])
}

// MaskedNot applies Not on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedNot(m Mask[N]) Vec[T, N] {
	return mapLanesMasked(m, v, lane.Not[T])
}

// NotAssign sets v to v.Not().
func (v *Vec[T, N]) NotAssign() {
	*v = v.Not()
}

// Shift and rotate amounts come from an unsigned vector with the same lane
// count and any element width. Each amount is taken modulo the bit width of
// T, so shifting a 16-bit lane by 19 is the same as shifting it by 3.

// Shl shifts each lane of v left by the matching lane of n.
func Shl[T Integers, U UnsignedInts, N LaneCount](v Vec[T, N], n Vec[U, N]) Vec[T, N] {
	return shiftLanes(v, n, lane.Shl[T])
}

// ShlScalar shifts every lane of v left by n.
func ShlScalar[T Integers, N LaneCount](v Vec[T, N], n uint64) Vec[T, N] {
	return shiftLanes(v, Set[uint64, N](n), lane.Shl[T])
}

// MaskedShl applies Shl on mask-true lanes and keeps v elsewhere.
func MaskedShl[T Integers, U UnsignedInts, N LaneCount](m Mask[N], v Vec[T, N], n Vec[U, N]) Vec[T, N] {
	return shiftLanesMasked(m, v, n, lane.Shl[T])
}

// MaskedShlScalar applies ShlScalar on mask-true lanes and keeps v elsewhere.
func MaskedShlScalar[T Integers, N LaneCount](m Mask[N], v Vec[T, N], n uint64) Vec[T, N] {
	return shiftLanesMasked(m, v, Set[uint64, N](n), lane.Shl[T])
}

// Shr shifts each lane of v right by the matching lane of n. The shift is
// arithmetic for signed T and logical for unsigned T.
func Shr[T Integers, U UnsignedInts, N LaneCount](v Vec[T, N], n Vec[U, N]) Vec[T, N] {
	return shiftLanes(v, n, lane.Shr[T])
}

// ShrScalar shifts every lane of v right by n.
func ShrScalar[T Integers, N LaneCount](v Vec[T, N], n uint64) Vec[T, N] {
	return shiftLanes(v, Set[uint64, N](n), lane.Shr[T])
}

// MaskedShr applies Shr on mask-true lanes and keeps v elsewhere.
func MaskedShr[T Integers, U UnsignedInts, N LaneCount](m Mask[N], v Vec[T, N], n Vec[U, N]) Vec[T, N] {
	return shiftLanesMasked(m, v, n, lane.Shr[T])
}

// MaskedShrScalar applies ShrScalar on mask-true lanes and keeps v elsewhere.
func MaskedShrScalar[T Integers, N LaneCount](m Mask[N], v Vec[T, N], n uint64) Vec[T, N] {
	return shiftLanesMasked(m, v, Set[uint64, N](n), lane.Shr[T])
}

// Rol rotates each lane of v left by the matching lane of n.
func Rol[T Integers, U UnsignedInts, N LaneCount](v Vec[T, N], n Vec[U, N]) Vec[T, N] {
	return shiftLanes(v, n, lane.Rol[T])
}

// RolScalar rotates every lane of v left by n.
func RolScalar[T Integers, N LaneCount](v Vec[T, N], n uint64) Vec[T, N] {
	return shiftLanes(v, Set[uint64, N](n), lane.Rol[T])
}

// MaskedRol applies Rol on mask-true lanes and keeps v elsewhere.
func MaskedRol[T Integers, U UnsignedInts, N LaneCount](m Mask[N], v Vec[T, N], n Vec[U, N]) Vec[T, N] {
	return shiftLanesMasked(m, v, n, lane.Rol[T])
}

// MaskedRolScalar applies RolScalar on mask-true lanes and keeps v elsewhere.
func MaskedRolScalar[T Integers, N LaneCount](m Mask[N], v Vec[T, N], n uint64) Vec[T, N] {
	return shiftLanesMasked(m, v, Set[uint64, N](n), lane.Rol[T])
}

// Ror rotates each lane of v right by the matching lane of n.
func Ror[T Integers, U UnsignedInts, N LaneCount](v Vec[T, N], n Vec[U, N]) Vec[T, N] {
	return shiftLanes(v, n, lane.Ror[T])
}

// RorScalar rotates every lane of v right by n.
func RorScalar[T Integers, N LaneCount](v Vec[T, N], n uint64) Vec[T, N] {
	return shiftLanes(v, Set[uint64, N](n), lane.Ror[T])
}

// MaskedRor applies Ror on mask-true lanes and keeps v elsewhere.
func MaskedRor[T Integers, U UnsignedInts, N LaneCount](m Mask[N], v Vec[T, N], n Vec[U, N]) Vec[T, N] {
	return shiftLanesMasked(m, v, n, lane.Ror[T])
}

// MaskedRorScalar applies RorScalar on mask-true lanes and keeps v elsewhere.
func MaskedRorScalar[T Integers, N LaneCount](m Mask[N], v Vec[T, N], n uint64) Vec[T, N] {
	return shiftLanesMasked(m, v, Set[uint64, N](n), lane.Ror[T])
}

// PopCount counts the number of set bits (1s) in each lane.
func PopCount[T Integers, N LaneCount](v Vec[T, N]) Vec[T, N] {
	return mapLanes(v, func(x T) T {
		return T(bits.OnesCount64(lane.ToBits(x)))
	})
}

// LeadingZeroCount counts the number of leading zero bits in each lane.
// A zero lane yields the bit width of T.
func LeadingZeroCount[T Integers, N LaneCount](v Vec[T, N]) Vec[T, N] {
	w := int(lane.BitWidth[T]())
	return mapLanes(v, func(x T) T {
		return T(bits.LeadingZeros64(lane.ToBits(x)) - (64 - w))
	})
}

// TrailingZeroCount counts the number of trailing zero bits in each lane.
// A zero lane yields the bit width of T.
func TrailingZeroCount[T Integers, N LaneCount](v Vec[T, N]) Vec[T, N] {
	w := lane.BitWidth[T]()
	return mapLanes(v, func(x T) T {
		u := lane.ToBits(x)
		if u == 0 {
			return T(w)
		}
		return T(bits.TrailingZeros64(u))
	})
}

// ReverseBits reverses the bit order in each lane.
func ReverseBits[T Integers, N LaneCount](v Vec[T, N]) Vec[T, N] {
	w := lane.BitWidth[T]()
	return mapLanes(v, func(x T) T {
		return lane.FromBits[T](bits.Reverse64(lane.ToBits(x)) >> (64 - w))
	})
}
