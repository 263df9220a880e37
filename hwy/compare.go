package hwy

import "github.com/go-highway/fixedvec/hwy/lane"

// Comparisons return a Mask with one lane per vector lane. Float lanes
// compare per IEEE-754: every comparison with a NaN is false except CmpNe.

// CmpEq reports v == b for each lane.
func (v Vec[T, N]) CmpEq(b Vec[T, N]) Mask[N] {
	return compareLanes(v, b, lane.Eq[T])
}

// CmpEqScalar reports v == s for each lane.
func (v Vec[T, N]) CmpEqScalar(s T) Mask[N] {
	return compareLanes(v, Set[T, N](s), lane.Eq[T])
}

// ScalarCmpEq reports s == v for each lane.
func ScalarCmpEq[T Lanes, N LaneCount](s T, v Vec[T, N]) Mask[N] {
	return compareLanes(Set[T, N](s), v, lane.Eq[T])
}

// CmpNe reports v != b for each lane.
func (v Vec[T, N]) CmpNe(b Vec[T, N]) Mask[N] {
	return compareLanes(v, b, lane.Ne[T])
}

// CmpNeScalar reports v != s for each lane.
func (v Vec[T, N]) CmpNeScalar(s T) Mask[N] {
	return compareLanes(v, Set[T, N](s), lane.Ne[T])
}

// ScalarCmpNe reports s != v for each lane.
func ScalarCmpNe[T Lanes, N LaneCount](s T, v Vec[T, N]) Mask[N] {
	return compareLanes(Set[T, N](s), v, lane.Ne[T])
}

// CmpGt reports v > b for each lane.
func (v Vec[T, N]) CmpGt(b Vec[T, N]) Mask[N] {
	return compareLanes(v, b, lane.Gt[T])
}

// CmpGtScalar reports v > s for each lane.
func (v Vec[T, N]) CmpGtScalar(s T) Mask[N] {
	return compareLanes(v, Set[T, N](s), lane.Gt[T])
}

// ScalarCmpGt reports s > v for each lane.
func ScalarCmpGt[T Lanes, N LaneCount](s T, v Vec[T, N]) Mask[N] {
	return compareLanes(Set[T, N](s), v, lane.Gt[T])
}

// CmpLt reports v < b for each lane.
func (v Vec[T, N]) CmpLt(b Vec[T, N]) Mask[N] {
	return compareLanes(v, b, lane.Lt[T])
}

// CmpLtScalar reports v < s for each lane.
func (v Vec[T, N]) CmpLtScalar(s T) Mask[N] {
	return compareLanes(v, Set[T, N](s), lane.Lt[T])
}

// ScalarCmpLt reports s < v for each lane.
func ScalarCmpLt[T Lanes, N LaneCount](s T, v Vec[T, N]) Mask[N] {
	return compareLanes(Set[T, N](s), v, lane.Lt[T])
}

// CmpGe reports v >= b for each lane.
func (v Vec[T, N]) CmpGe(b Vec[T, N]) Mask[N] {
	return compareLanes(v, b, lane.Ge[T])
}

// CmpGeScalar reports v >= s for each lane.
func (v Vec[T, N]) CmpGeScalar(s T) Mask[N] {
	return compareLanes(v, Set[T, N](s), lane.Ge[T])
}

// ScalarCmpGe reports s >= v for each lane.
func ScalarCmpGe[T Lanes, N LaneCount](s T, v Vec[T, N]) Mask[N] {
	return compareLanes(Set[T, N](s), v, lane.Ge[T])
}

// CmpLe reports v <= b for each lane.
func (v Vec[T, N]) CmpLe(b Vec[T, N]) Mask[N] {
	return compareLanes(v, b, lane.Le[T])
}

// CmpLeScalar reports v <= s for each lane.
func (v Vec[T, N]) CmpLeScalar(s T) Mask[N] {
	return compareLanes(v, Set[T, N](s), lane.Le[T])
}

// ScalarCmpLe reports s <= v for each lane.
func ScalarCmpLe[T Lanes, N LaneCount](s T, v Vec[T, N]) Mask[N] {
	return compareLanes(Set[T, N](s), v, lane.Le[T])
}

// Cmpe reports whether every lane of v equals the matching lane of b.
// It is equivalent to v.CmpEq(b).HAnd().
func (v Vec[T, N]) Cmpe(b Vec[T, N]) bool {
	for i := range numLanes[N]() {
		if v.data[i] != b.data[i] {
			return false
		}
	}
	return true
}
