package hwy

import "github.com/go-highway/fixedvec/hwy/lane"

// Classification tests float lanes against the IEEE-754 categories.

// IsFinite marks the lanes that are neither infinite nor NaN.
func IsFinite[T Floats, N LaneCount](v Vec[T, N]) Mask[N] {
	return testLanes(v, lane.IsFinite[T])
}

// IsInf marks the lanes that are positive or negative infinity.
func IsInf[T Floats, N LaneCount](v Vec[T, N]) Mask[N] {
	return testLanes(v, lane.IsInf[T])
}

// IsNaN marks the lanes that are NaN.
func IsNaN[T Floats, N LaneCount](v Vec[T, N]) Mask[N] {
	return testLanes(v, lane.IsNaN[T])
}

// IsNormal marks the lanes that are a normal number.
func IsNormal[T Floats, N LaneCount](v Vec[T, N]) Mask[N] {
	return testLanes(v, lane.IsNormal[T])
}

// IsSubnormal marks the lanes that are a nonzero subnormal number.
func IsSubnormal[T Floats, N LaneCount](v Vec[T, N]) Mask[N] {
	return testLanes(v, lane.IsSubnormal[T])
}

// IsZero marks the lanes that are +0 or -0.
func IsZero[T Floats, N LaneCount](v Vec[T, N]) Mask[N] {
	return testLanes(v, lane.IsZero[T])
}

// IsZeroOrSubnormal marks the lanes that are zero or subnormal.
func IsZeroOrSubnormal[T Floats, N LaneCount](v Vec[T, N]) Mask[N] {
	return testLanes(v, lane.IsZeroOrSubnormal[T])
}

// IsAN marks the lanes that are a number, the complement of IsNaN.
func IsAN[T Floats, N LaneCount](v Vec[T, N]) Mask[N] {
	return testLanes(v, func(x T) bool { return !lane.IsNaN(x) })
}
