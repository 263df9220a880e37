package oracle

import (
	"math/bits"
	"math/rand/v2"

	"github.com/go-highway/fixedvec/hwy"
	"github.com/go-highway/fixedvec/hwy/lane"
)

func runBitwise(tc *Context, rng *rand.Rand) {
	bitwise[int8, hwy.N16](tc, rng)
	bitwise[uint8, hwy.N64](tc, rng)
	bitwise[int16, hwy.N8](tc, rng)
	bitwise[uint16, hwy.N32](tc, rng)
	bitwise[int32, hwy.N4](tc, rng)
	bitwise[uint32, hwy.N16](tc, rng)
	bitwise[int64, hwy.N2](tc, rng)
	bitwise[uint64, hwy.N8](tc, rng)
	bitwise[float32, hwy.N4](tc, rng)
	bitwise[float64, hwy.N1](tc, rng)
}

// bitwise checks the logical operations on raw lane bits, which for floats
// includes the sign, exponent and mantissa fields alike.
func bitwise[T hwy.Lanes, N hwy.LaneCount](tc *Context, rng *rand.Rand) {
	a, b := RandomVec[T, N](rng), RandomVec[T, N](rng)
	m := RandomMask[N](rng)
	s := Random[T](rng)
	bs := hwy.Set[T, N](s)

	bitsOf := func(op func(x, y uint64) uint64) func(T, T) T {
		return func(x, y T) T {
			return lane.FromBits[T](op(lane.ToBits(x), lane.ToBits(y)))
		}
	}
	and := bitsOf(func(x, y uint64) uint64 { return x & y })
	or := bitsOf(func(x, y uint64) uint64 { return x | y })
	xor := bitsOf(func(x, y uint64) uint64 { return x ^ y })
	andNot := bitsOf(func(x, y uint64) uint64 { return x &^ y })
	not := func(x T) T { return xor(x, lane.AllOnes[T]()) }

	expectBinary(tc, "And", a, b, a.And(b), and)
	expectBinaryMasked(tc, "MaskedAnd", m, a, b, a.MaskedAnd(m, b), and)
	expectBinary(tc, "Or", a, b, a.Or(b), or)
	expectBinaryMasked(tc, "MaskedOrScalar", m, a, bs, a.MaskedOrScalar(m, s), or)
	expectBinary(tc, "Xor", a, b, a.Xor(b), xor)
	expectBinaryMasked(tc, "MaskedXor", m, a, b, a.MaskedXor(m, b), xor)
	expectBinary(tc, "AndNot", a, b, a.AndNot(b), andNot)
	expectBinaryMasked(tc, "MaskedAndNotScalar", m, a, bs, a.MaskedAndNotScalar(m, s), andNot)
	expectUnary(tc, "Not", a, a.Not(), not)
	expectUnaryMasked(tc, "MaskedNot", m, a, a.MaskedNot(m), not)

	v := a
	v.XorAssign(b)
	expectBinary(tc, "XorAssign", a, b, v, xor)
	v.XorAssign(b)
	CheckLanes(tc, label[T, N]("XorAssign/twice"), v.Lanes(), a.Lanes())
}

func runShift(tc *Context, rng *rand.Rand) {
	shifts[int8, hwy.N32](tc, rng)
	shifts[uint8, hwy.N16](tc, rng)
	shifts[int16, hwy.N64](tc, rng)
	shifts[uint16, hwy.N4](tc, rng)
	shifts[int32, hwy.N8](tc, rng)
	shifts[uint32, hwy.N1](tc, rng)
	shifts[int64, hwy.N4](tc, rng)
	shifts[uint64, hwy.N2](tc, rng)
}

// shifts re-derives each amount modulo the lane width with Go's own shift
// operators, which are arithmetic for signed right shifts.
func shifts[T hwy.Integers, N hwy.LaneCount](tc *Context, rng *rand.Rand) {
	a := RandomVec[T, N](rng)
	n := Amounts[T, N](rng)
	m := RandomMask[N](rng)
	all := hwy.MaskSet[N](true)
	w := uint64(lane.BitWidth[T]())
	k := uint64(rng.IntN(int(3 * w)))
	ks := hwy.Set[uint8, N](uint8(k))

	shl := func(x T, s uint64) T { return x << (s % w) }
	shr := func(x T, s uint64) T { return x >> (s % w) }
	rol := func(x T, s uint64) T {
		s %= w
		u := lane.ToBits(x)
		return lane.FromBits[T](u<<s | u>>(w-s))
	}
	ror := func(x T, s uint64) T { return rol(x, w-s%w) }

	expectShift(tc, "Shl", all, a, n, hwy.Shl(a, n), shl)
	expectShift(tc, "MaskedShl", m, a, n, hwy.MaskedShl(m, a, n), shl)
	expectShift(tc, "ShlScalar", all, a, ks, hwy.ShlScalar(a, k), shl)
	expectShift(tc, "Shr", all, a, n, hwy.Shr(a, n), shr)
	expectShift(tc, "MaskedShrScalar", m, a, ks, hwy.MaskedShrScalar(m, a, k), shr)
	expectShift(tc, "Rol", all, a, n, hwy.Rol(a, n), rol)
	expectShift(tc, "MaskedRol", m, a, n, hwy.MaskedRol(m, a, n), rol)
	expectShift(tc, "Ror", all, a, n, hwy.Ror(a, n), ror)
	expectShift(tc, "MaskedRorScalar", m, a, ks, hwy.MaskedRorScalar(m, a, k), ror)

	// A shift by the lane width plus k equals a shift by k.
	CheckLanes(tc, label[T, N]("Shl/modulo"), hwy.ShlScalar(a, k%w+w).Lanes(), hwy.ShlScalar(a, k%w).Lanes())

	expectUnary(tc, "PopCount", a, hwy.PopCount(a), func(x T) T {
		return T(bits.OnesCount64(lane.ToBits(x)))
	})
	expectUnary(tc, "LeadingZeroCount", a, hwy.LeadingZeroCount(a), func(x T) T {
		return T(bits.LeadingZeros64(lane.ToBits(x)) - (64 - int(w)))
	})
	expectUnary(tc, "TrailingZeroCount", a, hwy.TrailingZeroCount(a), func(x T) T {
		if x == 0 {
			return T(w)
		}
		return T(bits.TrailingZeros64(lane.ToBits(x)))
	})
	expectUnary(tc, "ReverseBits/twice", a, hwy.ReverseBits(hwy.ReverseBits(a)), func(x T) T { return x })
}
