package lane

import "math"

const (
	two63 = 1 << 63
	two64 = 1 << 64
)

// Convert converts a to U.
//
// Float to integer conversions truncate toward zero and wrap the result
// modulo 2^bits of U; NaN and infinities convert to 0. Integer to integer
// conversions keep the low bits. Conversions into floats round to nearest.
func Convert[U Lanes, T Lanes](a T) U {
	if IsFloatKind[T]() && !IsFloatKind[U]() {
		return FromBits[U](truncBits(float64(a)))
	}
	return U(a)
}

// Trunc truncates the float a toward zero and converts it to the integer
// kind I with the same wrapping rules as Convert.
func Trunc[I Integers, F Floats](a F) I {
	return FromBits[I](truncBits(float64(a)))
}

// truncBits returns the two's complement bit pattern of trunc(f) modulo 2^64.
func truncBits(f float64) uint64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	t := math.Trunc(f)
	if t > -two63 && t < two63 {
		return uint64(int64(t))
	}
	m := math.Mod(t, two64)
	if m < 0 {
		m += two64
	}
	if m >= two64 {
		return 0
	}
	return uint64(m)
}
