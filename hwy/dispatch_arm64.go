//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

var hasSVE bool

func init() {
	hasSVE = cpu.ARM64.HasSVE

	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	if cpu.ARM64.HasASIMD {
		setLevel(DispatchNEON, 16) // NEON is 128-bit (16 bytes)
	} else {
		// Fallback to scalar (should never happen on ARMv8+)
		setScalarMode()
	}
}

// HasFMA returns true: fused multiply-add is part of ARMv8 ASIMD.
func HasFMA() bool {
	return cpu.ARM64.HasASIMD
}

// HasSVE reports whether the CPU implements SVE. SVE vectors are at least
// 128 bits, so the NEON alignment remains valid.
func HasSVE() bool {
	return hasSVE
}
