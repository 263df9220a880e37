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

import "github.com/go-highway/fixedvec/hwy/lane"

// This file provides construction, assignment and selection for Vec.
// Every operation is a plain per-lane loop; this is the scalar reference
// that SIMD backends are checked against.

// Undefined returns a vector whose lane values are unspecified.
// It returns a zero vector, but callers should not rely on any specific value.
//
// Use this when initial values don't matter, such as the output of an
// operation that overwrites all lanes.
func Undefined[T Lanes, N LaneCount]() Vec[T, N] {
	return Vec[T, N]{}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes, N LaneCount]() Vec[T, N] {
	return Vec[T, N]{}
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes, N LaneCount](value T) Vec[T, N] {
	var v Vec[T, N]
	for i := range numLanes[N]() {
		v.data[i] = value
	}
	return v
}

// Of creates a vector from a list of lane values, lane 0 first.
// Values beyond N are ignored and missing ones are zero.
func Of[T Lanes, N LaneCount](vals ...T) Vec[T, N] {
	var v Vec[T, N]
	copy(v.data[:numLanes[N]()], vals)
	return v
}

// Iota returns a vector with lanes set to [0, 1, 2, 3, ...].
// Lane indices wrap for element types too narrow to hold them.
func Iota[T Lanes, N LaneCount]() Vec[T, N] {
	var v Vec[T, N]
	for i := range numLanes[N]() {
		v.data[i] = lane.Convert[T](int64(i))
	}
	return v
}

// SignBit returns a vector with the sign bit set in each lane.
// For floats, this is -0.0. For signed integers, this is the minimum value.
// For unsigned integers, this is the high bit set.
func SignBit[T Lanes, N LaneCount]() Vec[T, N] {
	return Set[T, N](lane.FromBits[T](uint64(1) << (lane.BitWidth[T]() - 1)))
}

// Assign copies every lane of o into v.
func (v *Vec[T, N]) Assign(o Vec[T, N]) {
	*v = o
}

// AssignScalar sets every lane of v to s.
func (v *Vec[T, N]) AssignScalar(s T) {
	*v = Set[T, N](s)
}

// AssignMasked copies the mask-true lanes of o into v and leaves the others.
func (v *Vec[T, N]) AssignMasked(m Mask[N], o Vec[T, N]) {
	for i := range numLanes[N]() {
		if m.bits[i] {
			v.data[i] = o.data[i]
		}
	}
}

// AssignMaskedScalar sets the mask-true lanes of v to s and leaves the others.
func (v *Vec[T, N]) AssignMaskedScalar(m Mask[N], s T) {
	for i := range numLanes[N]() {
		if m.bits[i] {
			v.data[i] = s
		}
	}
}

// IfThenElse performs conditional selection: a where mask is true, b otherwise.
func IfThenElse[T Lanes, N LaneCount](mask Mask[N], a, b Vec[T, N]) Vec[T, N] {
	r := b
	r.AssignMasked(mask, a)
	return r
}

// IfThenElseZero returns a where mask is true, zero otherwise.
func IfThenElseZero[T Lanes, N LaneCount](mask Mask[N], a Vec[T, N]) Vec[T, N] {
	return IfThenElse(mask, a, Zero[T, N]())
}

// IfThenZeroElse returns zero where mask is true, b otherwise.
func IfThenZeroElse[T Lanes, N LaneCount](mask Mask[N], b Vec[T, N]) Vec[T, N] {
	return IfThenElse(mask, Zero[T, N](), b)
}

// ZeroIfNegative returns zero for negative lanes, original value otherwise.
// Useful for clamping negative values to zero.
func ZeroIfNegative[T Lanes, N LaneCount](v Vec[T, N]) Vec[T, N] {
	return IfThenZeroElse(v.CmpLtScalar(0), v)
}

// Merge selects elements from a where mask is true, from b otherwise.
// This is equivalent to IfThenElse(mask, a, b).
func Merge[T Lanes, N LaneCount](a, b Vec[T, N], mask Mask[N]) Vec[T, N] {
	return IfThenElse(mask, a, b)
}
