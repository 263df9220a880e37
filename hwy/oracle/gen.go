package oracle

import (
	"math"
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/go-highway/fixedvec/hwy"
	"github.com/go-highway/fixedvec/hwy/lane"
)

// Random returns a lane value of any kind. Integers are uniform over their
// bit patterns with extra weight on the range edges. Floats span many
// binades and occasionally hit zeros, infinities, NaN and subnormals.
func Random[T hwy.Lanes](rng *rand.Rand) T {
	if lane.IsFloatKind[T]() {
		return randomFloat[T](rng)
	}
	if rng.IntN(8) == 0 {
		edges := []T{0, 1, lane.AllOnes[T](), lane.MinValue[T](), lane.MaxValue[T]()}
		return edges[rng.IntN(len(edges))]
	}
	return lane.FromBits[T](rng.Uint64())
}

func randomFloat[T hwy.Lanes](rng *rand.Rand) T {
	if rng.IntN(16) == 0 {
		specials := []float64{
			0, math.Copysign(0, -1), math.Inf(1), math.Inf(-1), math.NaN(),
			math.SmallestNonzeroFloat32, 1, -1,
		}
		return T(specials[rng.IntN(len(specials))])
	}
	// The exponent range stays well inside float32 so products and sums of
	// two draws remain finite for both float kinds.
	return T(math.Ldexp(rng.Float64()*2-1, rng.IntN(60)-30))
}

// Finite returns a Random value that is never NaN or infinite.
func Finite[T hwy.Lanes](rng *rand.Rand) T {
	for {
		x := Random[T](rng)
		if f := float64(x); !math.IsNaN(f) && !math.IsInf(f, 0) {
			return x
		}
	}
}

// NonZero returns a Random value other than zero.
func NonZero[T hwy.Lanes](rng *rand.Rand) T {
	for {
		if x := Random[T](rng); x != 0 {
			return x
		}
	}
}

// RandomVec fills every lane with Random.
func RandomVec[T hwy.Lanes, N hwy.LaneCount](rng *rand.Rand) hwy.Vec[T, N] {
	return vecFrom[T, N](rng, Random[T])
}

// FiniteVec fills every lane with Finite.
func FiniteVec[T hwy.Lanes, N hwy.LaneCount](rng *rand.Rand) hwy.Vec[T, N] {
	return vecFrom[T, N](rng, Finite[T])
}

// Divisors returns divisors for a lane by lane: never zero, and never -1
// where a holds the minimum signed value, whose quotient overflows.
func Divisors[T hwy.Lanes, N hwy.LaneCount](rng *rand.Rand, a hwy.Vec[T, N]) hwy.Vec[T, N] {
	d := vecFrom[T, N](rng, NonZero[T])
	if !lane.IsSignedKind[T]() || lane.IsFloatKind[T]() {
		return d
	}
	minusOne := lane.AllOnes[T]()
	for i := range d.NumLanes() {
		if a.Extract(i) == lane.MinValue[T]() && d.Extract(i) == minusOne {
			d.Insert(i, 1)
		}
	}
	return d
}

// Amounts returns per-lane shift amounts in [0, 2*bits) so that amounts at
// or beyond the lane width are exercised.
func Amounts[T hwy.Integers, N hwy.LaneCount](rng *rand.Rand) hwy.Vec[uint8, N] {
	limit := 2 * int(lane.BitWidth[T]())
	return vecFrom[uint8, N](rng, func(r *rand.Rand) uint8 {
		return uint8(r.IntN(limit))
	})
}

// RandomMask returns a mask with each lane set with probability 1/2.
func RandomMask[N hwy.LaneCount](rng *rand.Rand) hwy.Mask[N] {
	return hwy.MaskFromBits[N](rng.Uint64())
}

func vecFrom[T hwy.Lanes, N hwy.LaneCount](rng *rand.Rand, draw func(*rand.Rand) T) hwy.Vec[T, N] {
	vals := lo.Times(lanesOf[N](), func(int) T { return draw(rng) })
	return hwy.Load[T, N](vals)
}

func lanesOf[N hwy.LaneCount]() int {
	var m hwy.Mask[N]
	return m.NumLanes()
}
