package oracle

import (
	"math"
	"math/big"
	"math/rand/v2"

	"github.com/go-highway/fixedvec/hwy"
	"github.com/go-highway/fixedvec/hwy/lane"
)

func runConvert(tc *Context, rng *rand.Rand) {
	convert[int32, float32, hwy.N8](tc, rng)
	convert[uint8, float32, hwy.N16](tc, rng)
	convert[int16, float64, hwy.N4](tc, rng)
	convert[uint64, float64, hwy.N2](tc, rng)
	convert[int64, float64, hwy.N4](tc, rng)
	narrow[int8, int32, hwy.N16](tc, rng)
	narrow[uint16, int64, hwy.N4](tc, rng)
	narrow[int32, uint64, hwy.N2](tc, rng)
	narrow[uint8, int16, hwy.N32](tc, rng)

	f := RandomVec[float32, hwy.N8](rng)
	expectConvert(tc, "Promote", f, hwy.Promote(f), func(x float32) float64 { return float64(x) })
	d := RandomVec[float64, hwy.N4](rng)
	expectConvert(tc, "Demote", d, hwy.Demote(d), func(x float64) float32 { return float32(x) })
}

// convert checks float to integer truncation against an independent
// big-number derivation: truncate toward zero, keep the residue modulo
// 2^bits, and map NaN and infinities to zero.
func convert[I hwy.Integers, F hwy.Floats, N hwy.LaneCount](tc *Context, rng *rand.Rand) {
	v := RandomVec[F, N](rng)
	// Scale some lanes beyond the integer range so wrapping is exercised.
	v = v.MaskedMulScalar(RandomMask[N](rng), F(math.Ldexp(1, int(lane.BitWidth[I]())+3)))

	modulus := new(big.Int).Lsh(big.NewInt(1), lane.BitWidth[I]())
	want := func(x F) I {
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		n, _ := big.NewFloat(math.Trunc(f)).Int(nil)
		return lane.FromBits[I](n.Mod(n, modulus).Uint64())
	}
	expectConvert(tc, "Convert", v, hwy.Convert[I](v), want)
	expectConvert(tc, "Trunc", v, hwy.Trunc[I](v), want)

	i := RandomVec[I, N](rng)
	expectConvert(tc, "Convert/int", i, hwy.Convert[F](i), func(x I) F { return F(x) })
}

// narrow checks integer to integer conversion, which keeps the low bits,
// and SaturatingDemote, which clamps.
func narrow[U, T hwy.Integers, N hwy.LaneCount](tc *Context, rng *rand.Rand) {
	v := RandomVec[T, N](rng)
	expectConvert(tc, "Convert/narrow", v, hwy.Convert[U](v), func(x T) U {
		return lane.FromBits[U](lane.ToBits(x))
	})
	lo, hi := lane.MinValue[U](), lane.MaxValue[U]()
	expectConvert(tc, "SaturatingDemote", v, hwy.SaturatingDemote[U](v), func(x T) U {
		switch {
		case lane.IsSignedKind[T]() && x < 0 && (!lane.IsSignedKind[U]() || int64(x) < int64(lo)):
			return lo
		case x >= 0 && uint64(x) > uint64(hi):
			return hi
		default:
			return U(x)
		}
	})
	CheckLanes(tc, label[U, N]("BitCast/narrow"), hwy.BitCast[U](v).Lanes(), hwy.Convert[U](v).Lanes())
}

func expectConvert[U, T hwy.Lanes, N hwy.LaneCount](tc *Context, op string, v hwy.Vec[T, N], got hwy.Vec[U, N], f func(T) U) {
	in := v.Lanes()
	want := make([]U, len(in))
	for i, x := range in {
		want[i] = f(x)
	}
	CheckLanes(tc, label[U, N](op), got.Lanes(), want)
}

func runClassify(tc *Context, rng *rand.Rand) {
	classify[float32, hwy.N16](tc, rng)
	classify[float32, hwy.N1](tc, rng)
	classify[float64, hwy.N8](tc, rng)
	classify[float64, hwy.N64](tc, rng)
}

func classify[T hwy.Floats, N hwy.LaneCount](tc *Context, rng *rand.Rand) {
	v := RandomVec[T, N](rng)
	// Scale some lanes into the subnormal range.
	tiny := lane.FromBits[T](1)
	v = v.MaskedMulScalar(RandomMask[N](rng), tiny)

	minNormal := math.Ldexp(1, -1022)
	if lane.KindOf[T]() == lane.F32 {
		minNormal = math.Ldexp(1, -126)
	}
	normal := func(x T) bool {
		f := math.Abs(float64(x))
		return f >= minNormal && !math.IsInf(f, 0) && !math.IsNaN(f)
	}
	subnormal := func(x T) bool {
		f := math.Abs(float64(x))
		return f != 0 && f < minNormal
	}

	expectTest(tc, "IsNaN", v, hwy.IsNaN(v), func(x T) bool { return math.IsNaN(float64(x)) })
	expectTest(tc, "IsAN", v, hwy.IsAN(v), func(x T) bool { return !math.IsNaN(float64(x)) })
	expectTest(tc, "IsInf", v, hwy.IsInf(v), func(x T) bool { return math.IsInf(float64(x), 0) })
	expectTest(tc, "IsFinite", v, hwy.IsFinite(v), func(x T) bool {
		f := float64(x)
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	expectTest(tc, "IsNormal", v, hwy.IsNormal(v), normal)
	expectTest(tc, "IsSubnormal", v, hwy.IsSubnormal(v), subnormal)
	expectTest(tc, "IsZero", v, hwy.IsZero(v), func(x T) bool { return x == 0 })
	expectTest(tc, "IsZeroOrSubnormal", v, hwy.IsZeroOrSubnormal(v), func(x T) bool {
		return x == 0 || subnormal(x)
	})
}
