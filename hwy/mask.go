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

// MaskSet returns a mask with every lane set to b.
func MaskSet[N LaneCount](b bool) Mask[N] {
	var m Mask[N]
	for i := range numLanes[N]() {
		m.bits[i] = b
	}
	return m
}

// MaskOf returns a mask whose first lanes are bits. Extra values beyond N
// are ignored and missing ones are false.
func MaskOf[N LaneCount](bits ...bool) Mask[N] {
	var m Mask[N]
	copy(m.bits[:numLanes[N]()], bits)
	return m
}

// MaskLoad loads N lanes from src, which must hold at least N values.
func MaskLoad[N LaneCount](src []bool) Mask[N] {
	var m Mask[N]
	m.Load(src)
	return m
}

// FirstN creates a mask with the first n lanes set to true.
// n is clamped to [0, N].
func FirstN[N LaneCount](n int) Mask[N] {
	n = max(0, min(n, numLanes[N]()))
	var m Mask[N]
	for i := range n {
		m.bits[i] = true
	}
	return m
}

// LastN creates a mask with the last n lanes set to true.
func LastN[N LaneCount](n int) Mask[N] {
	total := numLanes[N]()
	n = max(0, min(n, total))
	var m Mask[N]
	for i := total - n; i < total; i++ {
		m.bits[i] = true
	}
	return m
}

// MaskFromBits creates a mask from a bitmask integer.
// Bit i of bits corresponds to lane i.
func MaskFromBits[N LaneCount](bits uint64) Mask[N] {
	var m Mask[N]
	for i := range numLanes[N]() {
		m.bits[i] = bits&(1<<i) != 0
	}
	return m
}

// Bits converts the mask to a bitmask integer.
// Lane i corresponds to bit i of the result.
func (m Mask[N]) Bits() uint64 {
	var result uint64
	for i := range numLanes[N]() {
		if m.bits[i] {
			result |= 1 << i
		}
	}
	return result
}

// Store writes the N lanes to dst, which must hold at least N values.
func (m Mask[N]) Store(dst []bool) {
	n := numLanes[N]()
	copy(dst[:n], m.bits[:n])
}

// Load replaces the N lanes with the first N values of src.
func (m *Mask[N]) Load(src []bool) {
	n := numLanes[N]()
	copy(m.bits[:n], src[:n])
}

func (m Mask[N]) zip(o Mask[N], f func(a, b bool) bool) Mask[N] {
	var r Mask[N]
	for i := range numLanes[N]() {
		r.bits[i] = f(m.bits[i], o.bits[i])
	}
	return r
}

func boolAnd(a, b bool) bool { return a && b }
func boolOr(a, b bool) bool { return a || b }
func boolXor(a, b bool) bool { return a != b }
func boolAndNot(a, b bool) bool { return a && !b }

// And returns the lane-wise AND of m and o.
func (m Mask[N]) And(o Mask[N]) Mask[N] { return m.zip(o, boolAnd) }

// Or returns the lane-wise OR of m and o.
func (m Mask[N]) Or(o Mask[N]) Mask[N] { return m.zip(o, boolOr) }

// Xor returns the lane-wise XOR of m and o.
func (m Mask[N]) Xor(o Mask[N]) Mask[N] { return m.zip(o, boolXor) }

// AndNot returns m && !o for each lane.
func (m Mask[N]) AndNot(o Mask[N]) Mask[N] { return m.zip(o, boolAndNot) }

// AndScalar returns the lane-wise AND of m and a broadcast b.
func (m Mask[N]) AndScalar(b bool) Mask[N] { return m.zip(MaskSet[N](b), boolAnd) }

// OrScalar returns the lane-wise OR of m and a broadcast b.
func (m Mask[N]) OrScalar(b bool) Mask[N] { return m.zip(MaskSet[N](b), boolOr) }

// XorScalar returns the lane-wise XOR of m and a broadcast b.
func (m Mask[N]) XorScalar(b bool) Mask[N] { return m.zip(MaskSet[N](b), boolXor) }

// Not inverts every lane.
func (m Mask[N]) Not() Mask[N] {
	var r Mask[N]
	for i := range numLanes[N]() {
		r.bits[i] = !m.bits[i]
	}
	return r
}

// AndAssign sets m to m.And(o).
func (m *Mask[N]) AndAssign(o Mask[N]) { *m = m.And(o) }

// OrAssign sets m to m.Or(o).
func (m *Mask[N]) OrAssign(o Mask[N]) { *m = m.Or(o) }

// XorAssign sets m to m.Xor(o).
func (m *Mask[N]) XorAssign(o Mask[N]) { *m = m.Xor(o) }

// NotAssign inverts every lane of m in place.
func (m *Mask[N]) NotAssign() { *m = m.Not() }

// AndAssignScalar sets m to m.AndScalar(b).
func (m *Mask[N]) AndAssignScalar(b bool) { *m = m.AndScalar(b) }

// OrAssignScalar sets m to m.OrScalar(b).
func (m *Mask[N]) OrAssignScalar(b bool) { *m = m.OrScalar(b) }

// XorAssignScalar sets m to m.XorScalar(b).
func (m *Mask[N]) XorAssignScalar(b bool) { *m = m.XorScalar(b) }

// HAnd folds the lanes with AND starting from true.
func (m Mask[N]) HAnd() bool {
	acc := true
	for i := range numLanes[N]() {
		acc = acc && m.bits[i]
	}
	return acc
}

// HOr folds the lanes with OR starting from false.
func (m Mask[N]) HOr() bool {
	acc := false
	for i := range numLanes[N]() {
		acc = acc || m.bits[i]
	}
	return acc
}

// HXor folds the lanes with XOR starting from false, which is the parity of
// the number of set lanes.
func (m Mask[N]) HXor() bool {
	acc := false
	for i := range numLanes[N]() {
		acc = acc != m.bits[i]
	}
	return acc
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[N]) AllTrue() bool {
	return m.HAnd()
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[N]) AnyTrue() bool {
	return m.HOr()
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[N]) CountTrue() int {
	count := 0
	for i := range numLanes[N]() {
		if m.bits[i] {
			count++
		}
	}
	return count
}

// FindFirstTrue returns index of first true lane, or -1 if none.
func (m Mask[N]) FindFirstTrue() int {
	for i := range numLanes[N]() {
		if m.bits[i] {
			return i
		}
	}
	return -1
}

// FindLastTrue returns index of last true lane, or -1 if none.
func (m Mask[N]) FindLastTrue() int {
	for i := numLanes[N]() - 1; i >= 0; i-- {
		if m.bits[i] {
			return i
		}
	}
	return -1
}

// Equal reports whether m and o agree on every lane.
func (m Mask[N]) Equal(o Mask[N]) bool {
	for i := range numLanes[N]() {
		if m.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}

// String formats the mask as a row of T and F, lane 0 first.
func (m Mask[N]) String() string {
	b := make([]byte, numLanes[N]())
	for i := range b {
		b[i] = 'F'
		if m.bits[i] {
			b[i] = 'T'
		}
	}
	return string(b)
}
