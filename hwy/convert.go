package hwy

import (
	"math"

	"github.com/go-highway/fixedvec/hwy/lane"
)

// This file provides lane-wise conversions between element kinds. The lane
// count never changes; only the element type does.

// Convert converts each lane of v to U.
//
// Float to integer conversions truncate toward zero and wrap modulo 2^bits
// of U, with NaN and infinities giving 0. Integer narrowing keeps the low
// bits, widening sign- or zero-extends, and conversions into floats round to
// nearest even.
//
// Example:
//
//	f := hwy.Of[float32, hwy.N4](1.9, -1.9, 300, float32(math.NaN()))
//	i := hwy.Convert[uint8](f) // [1, 255, 44, 0]
func Convert[U Lanes, T Lanes, N LaneCount](v Vec[T, N]) Vec[U, N] {
	var r Vec[U, N]
	for i := range numLanes[N]() {
		r.data[i] = lane.Convert[U](v.data[i])
	}
	return r
}

// Trunc truncates each float lane toward zero and converts it to the
// integer kind I, with the same wrapping rules as Convert.
func Trunc[I Integers, T Floats, N LaneCount](v Vec[T, N]) Vec[I, N] {
	var r Vec[I, N]
	for i := range numLanes[N]() {
		r.data[i] = lane.Trunc[I](v.data[i])
	}
	return r
}

// TruncFloat truncates each lane toward zero, keeping the float kind.
func TruncFloat[T Floats, N LaneCount](v Vec[T, N]) Vec[T, N] {
	return mapLanes(v, func(x T) T {
		return T(math.Trunc(float64(x)))
	})
}

// BitCast reinterprets the bits of each lane as U without converting the
// value. U should have the same width as T; a narrower U keeps the low bits
// and a wider U zero-extends.
func BitCast[U Lanes, T Lanes, N LaneCount](v Vec[T, N]) Vec[U, N] {
	var r Vec[U, N]
	for i := range numLanes[N]() {
		r.data[i] = lane.FromBits[U](lane.ToBits(v.data[i]))
	}
	return r
}
