// Package hwy provides fixed lane-count vector and mask types with exact,
// portable per-lane semantics.
//
// A Vec[T, N] holds N lanes of element type T and a Mask[N] holds N boolean
// lanes. The lane count is part of the type, so combining vectors or masks
// of different widths is a compile-time error. Every operation is defined
// lane-wise by package lane; this package is the scalar-emulation backend
// whose results any hardware backend must reproduce bit-for-bit.
//
// Basic usage:
//
//	import "github.com/go-highway/fixedvec/hwy"
//
//	a := hwy.Load[int16, hwy.N4](data1)
//	b := hwy.Load[int16, hwy.N4](data2)
//
//	// Add only where a > 0; other lanes keep a's value.
//	m := a.CmpGtScalar(0)
//	result := a.MaskedAdd(m, b)
//
//	result.Store(output)
package hwy

import "github.com/go-highway/fixedvec/hwy/lane"

// Floats is a constraint for floating-point types.
type Floats = lane.Floats

// SignedInts is a constraint for signed integer types.
type SignedInts = lane.SignedInts

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts = lane.UnsignedInts

// Integers is a constraint for all integer types.
type Integers = lane.Integers

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes = lane.Lanes

// Vec is a vector of N lanes of type T.
//
// Vec is a plain value: assignment copies all lanes and two vectors never
// share storage. Only the first N lanes are meaningful; the rest stay zero.
// The zero value is a vector with every lane zero.
type Vec[T Lanes, N LaneCount] struct {
	data [MaxLanes]T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T, N]) NumLanes() int {
	return numLanes[N]()
}

// Lanes returns a copy of the N lanes as a slice.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T, N]) Lanes() []T {
	out := make([]T, numLanes[N]())
	copy(out, v.data[:])
	return out
}

// Extract returns lane i. Indices at or beyond N are not checked.
func (v Vec[T, N]) Extract(i int) T {
	return v.data[i]
}

// Insert sets lane i to x. Indices at or beyond N are not checked.
func (v *Vec[T, N]) Insert(i int, x T) {
	v.data[i] = x
}

// Mask is a vector of N boolean lanes, typically produced by a comparison.
// The zero value has every lane false.
type Mask[N LaneCount] struct {
	bits [MaxLanes]bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[N]) NumLanes() int {
	return numLanes[N]()
}

// Extract returns whether lane i is set. Indices at or beyond N are not checked.
func (m Mask[N]) Extract(i int) bool {
	return m.bits[i]
}

// Insert sets lane i to b. Indices at or beyond N are not checked.
func (m *Mask[N]) Insert(i int, b bool) {
	m.bits[i] = b
}
