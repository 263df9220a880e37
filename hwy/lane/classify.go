package lane

// floatLayout returns the exponent and mantissa fields of a together with
// the all-ones exponent value for T.
func floatLayout[T Floats](a T) (exp, mant, expMax uint64) {
	u := ToBits(a)
	if BitWidth[T]() == 32 {
		return (u >> 23) & 0xFF, u & 0x7FFFFF, 0xFF
	}
	return (u >> 52) & 0x7FF, u & 0xFFFFFFFFFFFFF, 0x7FF
}

// IsNaN reports whether a is a NaN.
func IsNaN[T Floats](a T) bool {
	exp, mant, expMax := floatLayout(a)
	return exp == expMax && mant != 0
}

// IsInf reports whether a is positive or negative infinity.
func IsInf[T Floats](a T) bool {
	exp, mant, expMax := floatLayout(a)
	return exp == expMax && mant == 0
}

// IsFinite reports whether a is neither infinite nor NaN.
func IsFinite[T Floats](a T) bool {
	exp, _, expMax := floatLayout(a)
	return exp != expMax
}

// IsNormal reports whether a is a normal number (not zero, subnormal,
// infinite or NaN).
func IsNormal[T Floats](a T) bool {
	exp, _, expMax := floatLayout(a)
	return exp != 0 && exp != expMax
}

// IsSubnormal reports whether a is a nonzero subnormal number.
func IsSubnormal[T Floats](a T) bool {
	exp, mant, _ := floatLayout(a)
	return exp == 0 && mant != 0
}

// IsZero reports whether a is +0 or -0.
func IsZero[T Floats](a T) bool {
	exp, mant, _ := floatLayout(a)
	return exp == 0 && mant == 0
}

// IsZeroOrSubnormal reports whether a is zero or subnormal.
func IsZeroOrSubnormal[T Floats](a T) bool {
	exp, _, _ := floatLayout(a)
	return exp == 0
}
