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

// This file provides saturated arithmetic and related operations.
// Saturated operations clamp results to the type's valid range instead of wrapping.

// SatAdd performs lane-wise addition with saturation.
// Results are clamped to [MinValue, MaxValue] instead of wrapping.
// For example, uint8: 250 + 10 = 255 (not 4). Float lanes add normally.
func (v Vec[T, N]) SatAdd(b Vec[T, N]) Vec[T, N] {
	return zipLanes(v, b, lane.SatAdd[T])
}

// SatAddScalar returns SatAdd of v and a broadcast s.
func (v Vec[T, N]) SatAddScalar(s T) Vec[T, N] {
	return zipScalar(v, s, lane.SatAdd[T])
}

// MaskedSatAdd applies SatAdd on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedSatAdd(m Mask[N], b Vec[T, N]) Vec[T, N] {
	return zipLanesMasked(m, v, b, lane.SatAdd[T])
}

// MaskedSatAddScalar applies SatAddScalar on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedSatAddScalar(m Mask[N], s T) Vec[T, N] {
	return zipScalarMasked(m, v, s, lane.SatAdd[T])
}

// SatAddAssign sets v to v.SatAdd(b).
func (v *Vec[T, N]) SatAddAssign(b Vec[T, N]) {
	*v = v.SatAdd(b)
}

// SatAddAssignScalar sets v to v.SatAddScalar(s).
func (v *Vec[T, N]) SatAddAssignScalar(s T) {
	*v = v.SatAddScalar(s)
}

// SatSub performs lane-wise subtraction with saturation.
// For example, uint8: 10 - 20 = 0 (not 246). Float lanes subtract normally.
func (v Vec[T, N]) SatSub(b Vec[T, N]) Vec[T, N] {
	return zipLanes(v, b, lane.SatSub[T])
}

// SatSubScalar returns SatSub of v and a broadcast s.
func (v Vec[T, N]) SatSubScalar(s T) Vec[T, N] {
	return zipScalar(v, s, lane.SatSub[T])
}

// MaskedSatSub applies SatSub on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedSatSub(m Mask[N], b Vec[T, N]) Vec[T, N] {
	return zipLanesMasked(m, v, b, lane.SatSub[T])
}

// MaskedSatSubScalar applies SatSubScalar on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedSatSubScalar(m Mask[N], s T) Vec[T, N] {
	return zipScalarMasked(m, v, s, lane.SatSub[T])
}

// SatSubAssign sets v to v.SatSub(b).
func (v *Vec[T, N]) SatSubAssign(b Vec[T, N]) {
	*v = v.SatSub(b)
}

// SatSubAssignScalar sets v to v.SatSubScalar(s).
func (v *Vec[T, N]) SatSubAssignScalar(s T) {
	*v = v.SatSubScalar(s)
}

// Clamp clamps each element to the range [lo, hi].
// Elements less than lo become lo, elements greater than hi become hi.
func Clamp[T Lanes, N LaneCount](v, lo, hi Vec[T, N]) Vec[T, N] {
	return zip3(v, lo, hi, func(x, l, h T) T {
		return lane.Min(lane.Max(x, l), h)
	})
}

// AbsDiff computes the absolute difference |a - b| for each element.
// For integers this is max(a,b) - min(a,b) with wraparound, so it never
// saturates.
func AbsDiff[T Lanes, N LaneCount](a, b Vec[T, N]) Vec[T, N] {
	return zipLanes(a, b, absDiff[T])
}

func absDiff[T Lanes](a, b T) T {
	if lane.IsFloatKind[T]() {
		return lane.Abs(a - b)
	}
	if a > b {
		return a - b
	}
	return b - a
}

// Avg computes the rounded average (a + b + 1) / 2 for each element without
// intermediate overflow. Signed results truncate toward zero.
func Avg[T Integers, N LaneCount](a, b Vec[T, N]) Vec[T, N] {
	return zipLanes(a, b, roundedAvg[T])
}

func roundedAvg[T Integers](a, b T) T {
	wide := lane.BitWidth[T]() < 64
	if lane.IsSignedKind[T]() {
		av, bv := int64(a), int64(b)
		if wide {
			return T((av + bv + 1) / 2)
		}
		// (a + b + 1) / 2 = a/2 + b/2 + (a%2 + b%2 + 1)/2
		return T(av/2 + bv/2 + (av%2+bv%2+1)/2)
	}
	av, bv := uint64(a), uint64(b)
	if wide {
		return T((av + bv + 1) / 2)
	}
	return T(av/2 + bv/2 + (av%2+bv%2+1)/2)
}
