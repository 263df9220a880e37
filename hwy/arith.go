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

// Each binary operation comes in six forms:
//
//	v.Op(b)                    lane-wise v op b
//	v.OpScalar(s)              lane-wise v op s
//	v.MaskedOp(m, b)           v op b on mask-true lanes, v elsewhere
//	v.MaskedOpScalar(m, s)     v op s on mask-true lanes, v elsewhere
//	v.OpAssign(b)              v = v op b
//	v.OpAssignScalar(s)        v = v op s
//
// Unary operations come as v.Op(), v.MaskedOp(m) and v.OpAssign().
// A masked in-place update is v.AssignMasked(m, v.Op(b)).

// Add returns v + b.
// Integer lanes wrap around.
func (v Vec[T, N]) Add(b Vec[T, N]) Vec[T, N] {
	return zipLanes(v, b, lane.Add[T])
}

// AddScalar returns Add of v and a broadcast s.
func (v Vec[T, N]) AddScalar(s T) Vec[T, N] {
	return zipScalar(v, s, lane.Add[T])
}

// MaskedAdd applies Add on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedAdd(m Mask[N], b Vec[T, N]) Vec[T, N] {
	return zipLanesMasked(m, v, b, lane.Add[T])
}

// MaskedAddScalar applies AddScalar on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedAddScalar(m Mask[N], s T) Vec[T, N] {
	return zipScalarMasked(m, v, s, lane.Add[T])
}

// AddAssign sets v to v.Add(b).
func (v *Vec[T, N]) AddAssign(b Vec[T, N]) {
	*v = v.Add(b)
}

// AddAssignScalar sets v to v.AddScalar(s).
func (v *Vec[T, N]) AddAssignScalar(s T) {
	*v = v.AddScalar(s)
}

// Sub returns v - b.
// Integer lanes wrap around.
func (v Vec[T, N]) Sub(b Vec[T, N]) Vec[T, N] {
	return zipLanes(v, b, lane.Sub[T])
}

// SubScalar returns Sub of v and a broadcast s.
func (v Vec[T, N]) SubScalar(s T) Vec[T, N] {
	return zipScalar(v, s, lane.Sub[T])
}

// MaskedSub applies Sub on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedSub(m Mask[N], b Vec[T, N]) Vec[T, N] {
	return zipLanesMasked(m, v, b, lane.Sub[T])
}

// MaskedSubScalar applies SubScalar on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedSubScalar(m Mask[N], s T) Vec[T, N] {
	return zipScalarMasked(m, v, s, lane.Sub[T])
}

// SubAssign sets v to v.Sub(b).
func (v *Vec[T, N]) SubAssign(b Vec[T, N]) {
	*v = v.Sub(b)
}

// SubAssignScalar sets v to v.SubScalar(s).
func (v *Vec[T, N]) SubAssignScalar(s T) {
	*v = v.SubScalar(s)
}

// SubFrom returns b - v (reverse subtraction).
func (v Vec[T, N]) SubFrom(b Vec[T, N]) Vec[T, N] {
	return zipLanes(v, b, subFrom[T])
}

// SubFromScalar returns SubFrom of v and a broadcast s.
func (v Vec[T, N]) SubFromScalar(s T) Vec[T, N] {
	return zipScalar(v, s, subFrom[T])
}

// MaskedSubFrom applies SubFrom on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedSubFrom(m Mask[N], b Vec[T, N]) Vec[T, N] {
	return zipLanesMasked(m, v, b, subFrom[T])
}

// MaskedSubFromScalar applies SubFromScalar on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedSubFromScalar(m Mask[N], s T) Vec[T, N] {
	return zipScalarMasked(m, v, s, subFrom[T])
}

// SubFromAssign sets v to v.SubFrom(b).
func (v *Vec[T, N]) SubFromAssign(b Vec[T, N]) {
	*v = v.SubFrom(b)
}

// SubFromAssignScalar sets v to v.SubFromScalar(s).
func (v *Vec[T, N]) SubFromAssignScalar(s T) {
	*v = v.SubFromScalar(s)
}

// Mul returns v * b.
// Integer lanes wrap around.
func (v Vec[T, N]) Mul(b Vec[T, N]) Vec[T, N] {
	return zipLanes(v, b, lane.Mul[T])
}

// MulScalar returns Mul of v and a broadcast s.
func (v Vec[T, N]) MulScalar(s T) Vec[T, N] {
	return zipScalar(v, s, lane.Mul[T])
}

// MaskedMul applies Mul on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedMul(m Mask[N], b Vec[T, N]) Vec[T, N] {
	return zipLanesMasked(m, v, b, lane.Mul[T])
}

// MaskedMulScalar applies MulScalar on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedMulScalar(m Mask[N], s T) Vec[T, N] {
	return zipScalarMasked(m, v, s, lane.Mul[T])
}

// MulAssign sets v to v.Mul(b).
func (v *Vec[T, N]) MulAssign(b Vec[T, N]) {
	*v = v.Mul(b)
}

// MulAssignScalar sets v to v.MulScalar(s).
func (v *Vec[T, N]) MulAssignScalar(s T) {
	*v = v.MulScalar(s)
}

// Div returns v / b.
// Integer division truncates toward zero; integer division by zero panics.
func (v Vec[T, N]) Div(b Vec[T, N]) Vec[T, N] {
	return zipLanes(v, b, lane.Div[T])
}

// DivScalar returns Div of v and a broadcast s.
func (v Vec[T, N]) DivScalar(s T) Vec[T, N] {
	return zipScalar(v, s, lane.Div[T])
}

// MaskedDiv applies Div on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedDiv(m Mask[N], b Vec[T, N]) Vec[T, N] {
	return zipLanesMasked(m, v, b, lane.Div[T])
}

// MaskedDivScalar applies DivScalar on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedDivScalar(m Mask[N], s T) Vec[T, N] {
	return zipScalarMasked(m, v, s, lane.Div[T])
}

// DivAssign sets v to v.Div(b).
func (v *Vec[T, N]) DivAssign(b Vec[T, N]) {
	*v = v.Div(b)
}

// DivAssignScalar sets v to v.DivScalar(s).
func (v *Vec[T, N]) DivAssignScalar(s T) {
	*v = v.DivScalar(s)
}

// Rem returns the remainder of v / b.
// The result has the sign of v; float lanes follow math.Mod.
func (v Vec[T, N]) Rem(b Vec[T, N]) Vec[T, N] {
	return zipLanes(v, b, lane.Rem[T])
}

// RemScalar returns Rem of v and a broadcast s.
func (v Vec[T, N]) RemScalar(s T) Vec[T, N] {
	return zipScalar(v, s, lane.Rem[T])
}

// MaskedRem applies Rem on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedRem(m Mask[N], b Vec[T, N]) Vec[T, N] {
	return zipLanesMasked(m, v, b, lane.Rem[T])
}

// MaskedRemScalar applies RemScalar on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedRemScalar(m Mask[N], s T) Vec[T, N] {
	return zipScalarMasked(m, v, s, lane.Rem[T])
}

// RemAssign sets v to v.Rem(b).
func (v *Vec[T, N]) RemAssign(b Vec[T, N]) {
	*v = v.Rem(b)
}

// RemAssignScalar sets v to v.RemScalar(s).
func (v *Vec[T, N]) RemAssignScalar(s T) {
	*v = v.RemScalar(s)
}

// Min returns the lane-wise minimum.
// A NaN lane in v selects b.
func (v Vec[T, N]) Min(b Vec[T, N]) Vec[T, N] {
	return zipLanes(v, b, lane.Min[T])
}

// MinScalar returns Min of v and a broadcast s.
func (v Vec[T, N]) MinScalar(s T) Vec[T, N] {
	return zipScalar(v, s, lane.Min[T])
}

// MaskedMin applies Min on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedMin(m Mask[N], b Vec[T, N]) Vec[T, N] {
	return zipLanesMasked(m, v, b, lane.Min[T])
}

// MaskedMinScalar applies MinScalar on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedMinScalar(m Mask[N], s T) Vec[T, N] {
	return zipScalarMasked(m, v, s, lane.Min[T])
}

// MinAssign sets v to v.Min(b).
func (v *Vec[T, N]) MinAssign(b Vec[T, N]) {
	*v = v.Min(b)
}

// MinAssignScalar sets v to v.MinScalar(s).
func (v *Vec[T, N]) MinAssignScalar(s T) {
	*v = v.MinScalar(s)
}

// Max returns the lane-wise maximum.
// A NaN lane in v selects b.
func (v Vec[T, N]) Max(b Vec[T, N]) Vec[T, N] {
	return zipLanes(v, b, lane.Max[T])
}

// MaxScalar returns Max of v and a broadcast s.
func (v Vec[T, N]) MaxScalar(s T) Vec[T, N] {
	return zipScalar(v, s, lane.Max[T])
}

// MaskedMax applies Max on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedMax(m Mask[N], b Vec[T, N]) Vec[T, N] {
	return zipLanesMasked(m, v, b, lane.Max[T])
}

// MaskedMaxScalar applies MaxScalar on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedMaxScalar(m Mask[N], s T) Vec[T, N] {
	return zipScalarMasked(m, v, s, lane.Max[T])
}

// MaxAssign sets v to v.Max(b).
func (v *Vec[T, N]) MaxAssign(b Vec[T, N]) {
	*v = v.Max(b)
}

// MaxAssignScalar sets v to v.MaxScalar(s).
func (v *Vec[T, N]) MaxAssignScalar(s T) {
	*v = v.MaxScalar(s)
}

func subFrom[T Lanes](a, b T) T {
	return lane.Sub(b, a)
}

// Neg returns -v. Float lanes flip only the sign bit.
func (v Vec[T, N]) Neg() Vec[T, N] {
	return mapLanes(v, lane.Neg[T])
}

// MaskedNeg applies Neg on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedNeg(m Mask[N]) Vec[T, N] {
	return mapLanesMasked(m, v, lane.Neg[T])
}

// NegAssign sets v to v.Neg().
func (v *Vec[T, N]) NegAssign() {
	*v = v.Neg()
}

// Abs returns |v|. Abs of the minimum signed integer wraps to itself.
func (v Vec[T, N]) Abs() Vec[T, N] {
	return mapLanes(v, lane.Abs[T])
}

// MaskedAbs applies Abs on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedAbs(m Mask[N]) Vec[T, N] {
	return mapLanesMasked(m, v, lane.Abs[T])
}

// AbsAssign sets v to v.Abs().
func (v *Vec[T, N]) AbsAssign() {
	*v = v.Abs()
}

// Sqr returns v * v.
func (v Vec[T, N]) Sqr() Vec[T, N] {
	return mapLanes(v, lane.Sqr[T])
}

// MaskedSqr applies Sqr on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedSqr(m Mask[N]) Vec[T, N] {
	return mapLanesMasked(m, v, lane.Sqr[T])
}

// SqrAssign sets v to v.Sqr().
func (v *Vec[T, N]) SqrAssign() {
	*v = v.Sqr()
}

// Rcp returns 1 / v. Integer lanes use integer division, so only 1 and -1
// give a nonzero result.
func (v Vec[T, N]) Rcp() Vec[T, N] {
	return mapLanes(v, lane.Rcp[T])
}

// MaskedRcp applies Rcp on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedRcp(m Mask[N]) Vec[T, N] {
	return mapLanesMasked(m, v, lane.Rcp[T])
}

// RcpAssign sets v to v.Rcp().
func (v *Vec[T, N]) RcpAssign() {
	*v = v.Rcp()
}

// Sqrt returns the square root of v. Integer lanes compute floor(sqrt(v))
// and negative integers give 0.
func (v Vec[T, N]) Sqrt() Vec[T, N] {
	return mapLanes(v, lane.Sqrt[T])
}

// MaskedSqrt applies Sqrt on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedSqrt(m Mask[N]) Vec[T, N] {
	return mapLanesMasked(m, v, lane.Sqrt[T])
}

// SqrtAssign sets v to v.Sqrt().
func (v *Vec[T, N]) SqrtAssign() {
	*v = v.Sqrt()
}

// Round returns v rounded to the nearest integer, halves away from zero.
func (v Vec[T, N]) Round() Vec[T, N] {
	return mapLanes(v, lane.Round[T])
}

// MaskedRound applies Round on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedRound(m Mask[N]) Vec[T, N] {
	return mapLanesMasked(m, v, lane.Round[T])
}

// RoundAssign sets v to v.Round().
func (v *Vec[T, N]) RoundAssign() {
	*v = v.Round()
}

// RoundToEven returns v rounded to the nearest integer, halves to even.
func (v Vec[T, N]) RoundToEven() Vec[T, N] {
	return mapLanes(v, lane.RoundToEven[T])
}

// MaskedRoundToEven applies RoundToEven on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedRoundToEven(m Mask[N]) Vec[T, N] {
	return mapLanesMasked(m, v, lane.RoundToEven[T])
}

// RoundToEvenAssign sets v to v.RoundToEven().
func (v *Vec[T, N]) RoundToEvenAssign() {
	*v = v.RoundToEven()
}

// Floor returns v rounded toward negative infinity.
func (v Vec[T, N]) Floor() Vec[T, N] {
	return mapLanes(v, lane.Floor[T])
}

// MaskedFloor applies Floor on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedFloor(m Mask[N]) Vec[T, N] {
	return mapLanesMasked(m, v, lane.Floor[T])
}

// FloorAssign sets v to v.Floor().
func (v *Vec[T, N]) FloorAssign() {
	*v = v.Floor()
}

// Ceil returns v rounded toward positive infinity.
func (v Vec[T, N]) Ceil() Vec[T, N] {
	return mapLanes(v, lane.Ceil[T])
}

// MaskedCeil applies Ceil on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedCeil(m Mask[N]) Vec[T, N] {
	return mapLanesMasked(m, v, lane.Ceil[T])
}

// CeilAssign sets v to v.Ceil().
func (v *Vec[T, N]) CeilAssign() {
	*v = v.Ceil()
}

// PreInc adds one to every lane and returns the updated vector.
func (v *Vec[T, N]) PreInc() Vec[T, N] {
	v.AddAssignScalar(1)
	return *v
}

// PostInc adds one to every lane and returns the vector as it was before.
func (v *Vec[T, N]) PostInc() Vec[T, N] {
	old := *v
	v.AddAssignScalar(1)
	return old
}

// PreDec subtracts one from every lane and returns the updated vector.
func (v *Vec[T, N]) PreDec() Vec[T, N] {
	v.SubAssignScalar(1)
	return *v
}

// PostDec subtracts one from every lane and returns the vector as it was before.
func (v *Vec[T, N]) PostDec() Vec[T, N] {
	old := *v
	v.SubAssignScalar(1)
	return old
}
