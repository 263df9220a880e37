package math

import (
	"github.com/go-highway/fixedvec/hwy"
	"github.com/go-highway/fixedvec/hwy/lane"
)

// Log computes the natural logarithm of each lane.
//
// Algorithm:
//  1. Split x = 2^e * m with m in [sqrt(2)/2, sqrt(2))
//  2. With y = (m-1)/(m+1): log(m) = 2y * (1 + y²/3 + y⁴/5 + ...)
//  3. log(x) = e*ln(2) + log(m)
//
// Log(0) is -Inf, Log(+Inf) is +Inf, and negative lanes and NaN give NaN.
func Log[T hwy.Floats, N hwy.LaneCount](x hwy.Vec[T, N]) hwy.Vec[T, N] {
	ln2Hi, ln2Lo := T(logLn2Hi_f64), T(logLn2Lo_f64)
	coeffs := logCoeffs_f64
	if lane.KindOf[T]() == lane.F32 {
		ln2Hi, ln2Lo = T(logLn2Hi_f32), T(logLn2Lo_f32)
		coeffs = logCoeffs_f32
	}
	l := layoutOf[T]()

	// Subnormals are scaled into the normal range first.
	sub := hwy.IsSubnormal(x)
	scaled := x.MaskedMulScalar(sub, lane.FromBits[T]((l.bias+64)<<l.mantBits))

	// Extract exponent and mantissa using IEEE 754 bit manipulation
	u := hwy.BitCast[uint64](scaled)
	e := hwy.Convert[T](hwy.ShrScalar(u, l.mantBits).AndScalar(l.expMask)).SubScalar(T(l.bias))
	e = e.MaskedSubScalar(sub, 64)
	mantMask := uint64(1)<<l.mantBits - 1
	m := hwy.BitCast[T](u.AndScalar(mantMask).OrScalar(l.bias << l.mantBits))

	// For better accuracy near 1, move m into [sqrt(2)/2, sqrt(2))
	large := m.CmpGtScalar(T(sqrt2))
	m = m.MaskedMulScalar(large, 0.5)
	e = e.MaskedAddScalar(large, 1)

	y := m.SubScalar(1).Div(m.AddScalar(1))
	logM := y.MulScalar(2).Mul(horner(y.Mul(y), coeffs))

	// log(x) = e*ln(2) + log(m), with ln(2) split for precision.
	result := e.MulAdd(hwy.Set[T, N](ln2Hi), logM).Add(e.MulScalar(ln2Lo))

	// Handle special cases
	inf := lane.FromBits[T](infBits[T]())
	result = hwy.IfThenElse(x.CmpEqScalar(0), hwy.Set[T, N](-inf), result)
	result = hwy.IfThenElse(x.CmpEqScalar(inf), x, result)
	nan := x.CmpLtScalar(0).Or(hwy.IsNaN(x))
	return hwy.IfThenElse(nan, hwy.Set[T, N](inf-inf), result)
}
