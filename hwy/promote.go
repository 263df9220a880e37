package hwy

import "github.com/go-highway/fixedvec/hwy/lane"

// This file provides promotion and demotion between element widths.
//
// Promote widens float32 lanes to float64 exactly. Demote narrows float64
// lanes to float32 with round-to-nearest-even. SaturatingDemote narrows
// integers with clamping, as opposed to Convert which keeps the low bits.

// Promote widens float32 to float64.
func Promote[N LaneCount](v Vec[float32, N]) Vec[float64, N] {
	return Convert[float64](v)
}

// Demote narrows float64 to float32, potentially losing precision.
// Values beyond the float32 range become infinities.
func Demote[N LaneCount](v Vec[float64, N]) Vec[float32, N] {
	return Convert[float32](v)
}

// SaturatingDemote converts integer lanes to U, clamping values outside
// U's range to [MinValue, MaxValue] of U.
//
// For example, int16 -> int8: 300 becomes 127 and -300 becomes -128.
func SaturatingDemote[U Integers, T Integers, N LaneCount](v Vec[T, N]) Vec[U, N] {
	lo, hi := lane.MinValue[U](), lane.MaxValue[U]()
	var r Vec[U, N]
	for i := range numLanes[N]() {
		x := v.data[i]
		switch {
		case lane.IsSignedKind[T]() && x < 0:
			if !lane.IsSignedKind[U]() || int64(x) < int64(lo) {
				r.data[i] = lo
			} else {
				r.data[i] = U(x)
			}
		case uint64(x) > uint64(hi):
			r.data[i] = hi
		default:
			r.data[i] = U(x)
		}
	}
	return r
}
