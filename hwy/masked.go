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

// The combinators in this file are the only way lane functions are applied
// to vectors. Each masked form calls the same lane function as its unmasked
// counterpart and copies the first operand through on mask-false lanes, so
// the two forms agree on every selected lane and never touch the others.

func mapLanes[T Lanes, N LaneCount](a Vec[T, N], f func(T) T) Vec[T, N] {
	var r Vec[T, N]
	for i := range numLanes[N]() {
		r.data[i] = f(a.data[i])
	}
	return r
}

func mapLanesMasked[T Lanes, N LaneCount](m Mask[N], a Vec[T, N], f func(T) T) Vec[T, N] {
	r := a
	for i := range numLanes[N]() {
		if m.bits[i] {
			r.data[i] = f(a.data[i])
		}
	}
	return r
}

func zipLanes[T Lanes, N LaneCount](a, b Vec[T, N], f func(T, T) T) Vec[T, N] {
	var r Vec[T, N]
	for i := range numLanes[N]() {
		r.data[i] = f(a.data[i], b.data[i])
	}
	return r
}

func zipLanesMasked[T Lanes, N LaneCount](m Mask[N], a, b Vec[T, N], f func(T, T) T) Vec[T, N] {
	r := a
	for i := range numLanes[N]() {
		if m.bits[i] {
			r.data[i] = f(a.data[i], b.data[i])
		}
	}
	return r
}

func zipScalar[T Lanes, N LaneCount](a Vec[T, N], s T, f func(T, T) T) Vec[T, N] {
	var r Vec[T, N]
	for i := range numLanes[N]() {
		r.data[i] = f(a.data[i], s)
	}
	return r
}

func zipScalarMasked[T Lanes, N LaneCount](m Mask[N], a Vec[T, N], s T, f func(T, T) T) Vec[T, N] {
	r := a
	for i := range numLanes[N]() {
		if m.bits[i] {
			r.data[i] = f(a.data[i], s)
		}
	}
	return r
}

func zip3[T Lanes, N LaneCount](a, b, c Vec[T, N], f func(T, T, T) T) Vec[T, N] {
	var r Vec[T, N]
	for i := range numLanes[N]() {
		r.data[i] = f(a.data[i], b.data[i], c.data[i])
	}
	return r
}

func zip3Masked[T Lanes, N LaneCount](m Mask[N], a, b, c Vec[T, N], f func(T, T, T) T) Vec[T, N] {
	r := a
	for i := range numLanes[N]() {
		if m.bits[i] {
			r.data[i] = f(a.data[i], b.data[i], c.data[i])
		}
	}
	return r
}

// shiftLanes applies f with a per-lane amount taken from an unsigned vector
// of the same lane count.
func shiftLanes[T Integers, U UnsignedInts, N LaneCount](a Vec[T, N], n Vec[U, N], f func(T, uint64) T) Vec[T, N] {
	var r Vec[T, N]
	for i := range numLanes[N]() {
		r.data[i] = f(a.data[i], uint64(n.data[i]))
	}
	return r
}

func shiftLanesMasked[T Integers, U UnsignedInts, N LaneCount](m Mask[N], a Vec[T, N], n Vec[U, N], f func(T, uint64) T) Vec[T, N] {
	r := a
	for i := range numLanes[N]() {
		if m.bits[i] {
			r.data[i] = f(a.data[i], uint64(n.data[i]))
		}
	}
	return r
}

func compareLanes[T Lanes, N LaneCount](a, b Vec[T, N], f func(T, T) bool) Mask[N] {
	var m Mask[N]
	for i := range numLanes[N]() {
		m.bits[i] = f(a.data[i], b.data[i])
	}
	return m
}

func testLanes[T Lanes, N LaneCount](a Vec[T, N], f func(T) bool) Mask[N] {
	var m Mask[N]
	for i := range numLanes[N]() {
		m.bits[i] = f(a.data[i])
	}
	return m
}

// foldLanes folds lanes 0..N-1 in index order starting from id.
func foldLanes[T Lanes, N LaneCount](a Vec[T, N], id T, f func(T, T) T) T {
	acc := id
	for i := range numLanes[N]() {
		acc = f(acc, a.data[i])
	}
	return acc
}

// foldLanesMasked folds like foldLanes but substitutes id for mask-false
// lanes, so excluded lanes never contribute their raw value.
func foldLanesMasked[T Lanes, N LaneCount](m Mask[N], a Vec[T, N], id T, f func(T, T) T) T {
	acc := id
	for i := range numLanes[N]() {
		x := id
		if m.bits[i] {
			x = a.data[i]
		}
		acc = f(acc, x)
	}
	return acc
}
