package hwy

import "unsafe"

// This file provides loads, stores and aligned allocation.
//
// Unaligned forms accept any slice holding at least N elements. Aligned
// forms additionally require the first element to sit on an Alignment()
// boundary; the scalar backend does not check this, but SIMD backends may
// fault, so portable code must honor it.

// MaxAlignment is the largest alignment any dispatch level requires.
const MaxAlignment = 64

// Alignment returns the byte alignment required by the aligned loads and
// stores: the register width of the active dispatch level.
func Alignment() int {
	return currentWidth
}

// AlignedSlice allocates a slice of n elements whose first element is
// aligned to MaxAlignment bytes, which satisfies Alignment() on every level.
func AlignedSlice[T Lanes](n int) []T {
	if n == 0 {
		return nil
	}
	var zero T
	size := n * int(unsafe.Sizeof(zero))

	// Allocate size + alignment to ensure we can find an aligned offset.
	buf := make([]byte, size+MaxAlignment)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	offset := (MaxAlignment - (addr & (MaxAlignment - 1))) & (MaxAlignment - 1)
	return unsafe.Slice((*T)(unsafe.Pointer(&buf[offset])), n)
}

// IsAlignedSlice reports whether the first element of s sits on an
// Alignment() boundary. Empty slices are considered aligned.
func IsAlignedSlice[T Lanes](s []T) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&s[0]))%uintptr(Alignment()) == 0
}

// Load creates a vector from the first N elements of src.
func Load[T Lanes, N LaneCount](src []T) Vec[T, N] {
	var v Vec[T, N]
	v.LoadFrom(src)
	return v
}

// LoadAligned is Load for a src aligned to Alignment().
func LoadAligned[T Lanes, N LaneCount](src []T) Vec[T, N] {
	return Load[T, N](src)
}

// LoadFrom replaces every lane of v with the first N elements of src.
func (v *Vec[T, N]) LoadFrom(src []T) {
	n := numLanes[N]()
	copy(v.data[:n], src[:n])
}

// LoadFromAligned is LoadFrom for a src aligned to Alignment().
func (v *Vec[T, N]) LoadFromAligned(src []T) {
	v.LoadFrom(src)
}

// MaskedLoad replaces the mask-true lanes of v with the matching elements
// of src. Mask-false lanes keep their current value (merge masking) and the
// matching elements of src are not read.
func (v *Vec[T, N]) MaskedLoad(m Mask[N], src []T) {
	for i := range numLanes[N]() {
		if m.bits[i] {
			v.data[i] = src[i]
		}
	}
}

// MaskedLoadAligned is MaskedLoad for a src aligned to Alignment().
func (v *Vec[T, N]) MaskedLoadAligned(m Mask[N], src []T) {
	v.MaskedLoad(m, src)
}

// Store writes the N lanes of v to dst.
func (v Vec[T, N]) Store(dst []T) {
	n := numLanes[N]()
	copy(dst[:n], v.data[:n])
}

// StoreAligned is Store for a dst aligned to Alignment().
func (v Vec[T, N]) StoreAligned(dst []T) {
	v.Store(dst)
}

// MaskedStore writes the mask-true lanes of v to dst. Elements of dst at
// mask-false positions are left untouched.
func (v Vec[T, N]) MaskedStore(m Mask[N], dst []T) {
	for i := range numLanes[N]() {
		if m.bits[i] {
			dst[i] = v.data[i]
		}
	}
}

// MaskedStoreAligned is MaskedStore for a dst aligned to Alignment().
func (v Vec[T, N]) MaskedStoreAligned(m Mask[N], dst []T) {
	v.MaskedStore(m, dst)
}

// LoadInterleaved2 loads interleaved pairs and deinterleaves into two vectors.
// This converts Array-of-Structures (AoS) format to Structure-of-Arrays (SoA).
//
// Input memory layout (interleaved pairs):
//
//	[a0, b0, a1, b1, a2, b2, a3, b3, ...]
//
// Output vectors:
//
//	vec_a = [a0, a1, a2, a3, ...]
//	vec_b = [b0, b1, b2, b3, ...]
//
// src must hold at least 2*N elements.
func LoadInterleaved2[T Lanes, N LaneCount](src []T) (Vec[T, N], Vec[T, N]) {
	var a, b Vec[T, N]
	for i := range numLanes[N]() {
		a.data[i] = src[2*i]
		b.data[i] = src[2*i+1]
	}
	return a, b
}

// StoreInterleaved2 stores two vectors interleaved to dst.
// This is the inverse of LoadInterleaved2.
func StoreInterleaved2[T Lanes, N LaneCount](a, b Vec[T, N], dst []T) {
	for i := range numLanes[N]() {
		dst[2*i] = a.data[i]
		dst[2*i+1] = b.data[i]
	}
}
