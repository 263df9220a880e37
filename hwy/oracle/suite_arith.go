package oracle

import (
	"math/rand/v2"

	"github.com/go-highway/fixedvec/hwy"
	"github.com/go-highway/fixedvec/hwy/lane"
)

func runArith(tc *Context, rng *rand.Rand) {
	arith[int8, hwy.N64](tc, rng)
	arith[uint8, hwy.N32](tc, rng)
	arith[int16, hwy.N16](tc, rng)
	arith[uint16, hwy.N8](tc, rng)
	arith[int32, hwy.N4](tc, rng)
	arith[uint32, hwy.N2](tc, rng)
	arith[int64, hwy.N1](tc, rng)
	arith[uint64, hwy.N4](tc, rng)
	arith[float32, hwy.N8](tc, rng)
	arith[float64, hwy.N2](tc, rng)
}

func arith[T hwy.Lanes, N hwy.LaneCount](tc *Context, rng *rand.Rand) {
	a, b := RandomVec[T, N](rng), RandomVec[T, N](rng)
	m := RandomMask[N](rng)
	s := Random[T](rng)
	d := Divisors[T, N](rng, a)

	add := func(x, y T) T { return x + y }
	sub := func(x, y T) T { return x - y }
	mul := func(x, y T) T { return x * y }
	div := func(x, y T) T { return x / y }
	rsub := func(x, y T) T { return y - x }
	bs := hwy.Set[T, N](s)

	expectBinary(tc, "Add", a, b, a.Add(b), add)
	expectBinary(tc, "AddScalar", a, bs, a.AddScalar(s), add)
	expectBinaryMasked(tc, "MaskedAdd", m, a, b, a.MaskedAdd(m, b), add)
	expectBinaryMasked(tc, "MaskedAddScalar", m, a, bs, a.MaskedAddScalar(m, s), add)
	expectBinary(tc, "Sub", a, b, a.Sub(b), sub)
	expectBinaryMasked(tc, "MaskedSub", m, a, b, a.MaskedSub(m, b), sub)
	expectBinary(tc, "SubFrom", a, b, a.SubFrom(b), rsub)
	expectBinaryMasked(tc, "MaskedSubFromScalar", m, a, bs, a.MaskedSubFromScalar(m, s), rsub)
	expectBinary(tc, "Mul", a, b, a.Mul(b), mul)
	expectBinaryMasked(tc, "MaskedMulScalar", m, a, bs, a.MaskedMulScalar(m, s), mul)
	expectBinary(tc, "Div", a, d, a.Div(d), div)
	expectBinaryMasked(tc, "MaskedDiv", m, a, d, a.MaskedDiv(m, d), div)
	expectBinary(tc, "Rem", a, d, a.Rem(d), lane.Rem[T])
	expectBinaryMasked(tc, "MaskedRem", m, a, d, a.MaskedRem(m, d), lane.Rem[T])
	expectBinary(tc, "Min", a, b, a.Min(b), lane.Min[T])
	expectBinaryMasked(tc, "MaskedMin", m, a, b, a.MaskedMin(m, b), lane.Min[T])
	expectBinary(tc, "Max", a, b, a.Max(b), lane.Max[T])
	expectBinaryMasked(tc, "MaskedMaxScalar", m, a, bs, a.MaskedMaxScalar(m, s), lane.Max[T])
	expectBinary(tc, "SatAdd", a, b, a.SatAdd(b), lane.SatAdd[T])
	expectBinaryMasked(tc, "MaskedSatAdd", m, a, b, a.MaskedSatAdd(m, b), lane.SatAdd[T])
	expectBinary(tc, "SatSub", a, b, a.SatSub(b), lane.SatSub[T])
	expectBinaryMasked(tc, "MaskedSatSubScalar", m, a, bs, a.MaskedSatSubScalar(m, s), lane.SatSub[T])

	// Compound assignment must agree with the value forms.
	v := a
	v.AddAssign(b)
	expectBinary(tc, "AddAssign", a, b, v, add)
	v = a
	v.MulAssignScalar(s)
	expectBinary(tc, "MulAssignScalar", a, bs, v, mul)
	v = a
	v.SubFromAssign(b)
	expectBinary(tc, "SubFromAssign", a, b, v, rsub)

	var one T = 1
	inc := func(x T) T { return x + one }
	v = a
	pre := v.PreInc()
	expectUnary(tc, "PreInc", a, pre, inc)
	expectUnary(tc, "PreInc/after", a, v, inc)
	v = a
	post := v.PostDec()
	expectUnary(tc, "PostDec", a, post, func(x T) T { return x })
	expectUnary(tc, "PostDec/after", a, v, func(x T) T { return x - one })

	expectUnary(tc, "Neg", a, a.Neg(), lane.Neg[T])
	expectUnaryMasked(tc, "MaskedNeg", m, a, a.MaskedNeg(m), lane.Neg[T])
	expectUnary(tc, "Abs", a, a.Abs(), lane.Abs[T])
	expectUnary(tc, "Sqr", a, a.Sqr(), func(x T) T { return x * x })
	expectUnaryMasked(tc, "MaskedSqr", m, a, a.MaskedSqr(m), func(x T) T { return x * x })
	expectUnary(tc, "Rcp", d, d.Rcp(), func(x T) T { return one / x })
	expectUnaryMasked(tc, "MaskedRcp", m, d, d.MaskedRcp(m), func(x T) T { return one / x })
	expectUnary(tc, "Sqrt", a, a.Sqrt(), lane.Sqrt[T])
	expectUnary(tc, "Round", a, a.Round(), lane.Round[T])
	expectUnary(tc, "RoundToEven", a, a.RoundToEven(), lane.RoundToEven[T])
	expectUnary(tc, "Floor", a, a.Floor(), lane.Floor[T])
	expectUnaryMasked(tc, "MaskedCeil", m, a, a.MaskedCeil(m), lane.Ceil[T])
}
