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

// Horizontal reductions fold lanes 0..N-1 in index order starting from the
// operation's identity. The order is fixed so float sums are reproducible
// across backends. The masked forms substitute the identity for mask-false
// lanes.
//
//	HAdd  0          HMul  1
//	HAnd  all ones   HOr   0        HXor 0
//	HMax  MinValue   HMin  MaxValue (-Inf and +Inf for floats)

// HAdd returns the sum of all lanes.
func (v Vec[T, N]) HAdd() T {
	return foldLanes(v, 0, lane.Add[T])
}

// MaskedHAdd returns the sum of the mask-true lanes.
func (v Vec[T, N]) MaskedHAdd(m Mask[N]) T {
	return foldLanesMasked(m, v, 0, lane.Add[T])
}

// HMul returns the product of all lanes.
func (v Vec[T, N]) HMul() T {
	return foldLanes(v, 1, lane.Mul[T])
}

// MaskedHMul returns the product of the mask-true lanes.
func (v Vec[T, N]) MaskedHMul(m Mask[N]) T {
	return foldLanesMasked(m, v, 1, lane.Mul[T])
}

// HAnd returns the bitwise AND of all lanes.
func (v Vec[T, N]) HAnd() T {
	return foldLanes(v, lane.AllOnes[T](), lane.And[T])
}

// MaskedHAnd returns the bitwise AND of the mask-true lanes.
func (v Vec[T, N]) MaskedHAnd(m Mask[N]) T {
	return foldLanesMasked(m, v, lane.AllOnes[T](), lane.And[T])
}

// HOr returns the bitwise OR of all lanes.
func (v Vec[T, N]) HOr() T {
	return foldLanes(v, 0, lane.Or[T])
}

// MaskedHOr returns the bitwise OR of the mask-true lanes.
func (v Vec[T, N]) MaskedHOr(m Mask[N]) T {
	return foldLanesMasked(m, v, 0, lane.Or[T])
}

// HXor returns the bitwise XOR of all lanes.
func (v Vec[T, N]) HXor() T {
	return foldLanes(v, 0, lane.Xor[T])
}

// MaskedHXor returns the bitwise XOR of the mask-true lanes.
func (v Vec[T, N]) MaskedHXor(m Mask[N]) T {
	return foldLanesMasked(m, v, 0, lane.Xor[T])
}

// HMax returns the largest lane.
func (v Vec[T, N]) HMax() T {
	return foldLanes(v, lane.MaxIdentity[T](), lane.Max[T])
}

// MaskedHMax returns the largest mask-true lane, or the identity when no
// lane is selected.
func (v Vec[T, N]) MaskedHMax(m Mask[N]) T {
	return foldLanesMasked(m, v, lane.MaxIdentity[T](), lane.Max[T])
}

// HMin returns the smallest lane.
func (v Vec[T, N]) HMin() T {
	return foldLanes(v, lane.MinIdentity[T](), lane.Min[T])
}

// MaskedHMin returns the smallest mask-true lane, or the identity when no
// lane is selected.
func (v Vec[T, N]) MaskedHMin(m Mask[N]) T {
	return foldLanesMasked(m, v, lane.MinIdentity[T](), lane.Min[T])
}
