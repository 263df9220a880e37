package hwy

// This file provides compress and expand operations for vectors.
// Compress packs elements where the mask is true to the front.
// Expand unpacks elements into positions where the mask is true.
// These are essential for stream compaction and sparse operations.

// Compress packs elements where mask is true to the front.
// Returns compressed vector and count of valid elements.
// For example: v=[1,2,3,4], mask=[T,F,T,F] -> result=[1,3,0,0], count=2
func Compress[T Lanes, N LaneCount](v Vec[T, N], mask Mask[N]) (Vec[T, N], int) {
	var result Vec[T, N]
	count := 0
	for i := range numLanes[N]() {
		if mask.bits[i] {
			result.data[count] = v.data[i]
			count++
		}
	}
	return result, count
}

// Expand unpacks elements into positions where mask is true.
// Elements from v fill true positions, false positions get zero.
// For example: v=[1,2,0,0], mask=[T,F,T,F] -> result=[1,0,2,0]
func Expand[T Lanes, N LaneCount](v Vec[T, N], mask Mask[N]) Vec[T, N] {
	var result Vec[T, N]
	src := 0
	for i := range numLanes[N]() {
		if mask.bits[i] {
			result.data[i] = v.data[src]
			src++
		}
	}
	return result
}

// CompressStore compresses and stores directly to slice.
// Returns number of elements stored. Elements past the end of dst are dropped.
func CompressStore[T Lanes, N LaneCount](v Vec[T, N], mask Mask[N], dst []T) int {
	count := 0
	for i := range numLanes[N]() {
		if mask.bits[i] && count < len(dst) {
			dst[count] = v.data[i]
			count++
		}
	}
	return count
}
