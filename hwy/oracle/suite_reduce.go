package oracle

import (
	"math"
	"math/rand/v2"

	"github.com/go-highway/fixedvec/hwy"
	"github.com/go-highway/fixedvec/hwy/lane"
)

func runReduce(tc *Context, rng *rand.Rand) {
	reduce[int8, hwy.N4](tc, rng)
	reduce[uint8, hwy.N8](tc, rng)
	reduce[int16, hwy.N2](tc, rng)
	reduce[uint16, hwy.N64](tc, rng)
	reduce[int32, hwy.N16](tc, rng)
	reduce[uint32, hwy.N32](tc, rng)
	reduce[int64, hwy.N4](tc, rng)
	reduce[uint64, hwy.N16](tc, rng)
	reduce[float32, hwy.N32](tc, rng)
	reduce[float64, hwy.N8](tc, rng)
}

func reduce[T hwy.Lanes, N hwy.LaneCount](tc *Context, rng *rand.Rand) {
	a := RandomVec[T, N](rng)
	m := RandomMask[N](rng)
	all := hwy.MaskSet[N](true)

	add := func(x, y T) T { return x + y }
	mul := func(x, y T) T { return x * y }
	ones := lane.AllOnes[T]()
	hi, lo := lane.MaxIdentity[T](), lane.MinIdentity[T]()

	expectFold(tc, "HAdd", all, a, 0, a.HAdd(), add)
	expectFold(tc, "MaskedHAdd", m, a, 0, a.MaskedHAdd(m), add)
	expectFold(tc, "HMul", all, a, 1, a.HMul(), mul)
	expectFold(tc, "MaskedHMul", m, a, 1, a.MaskedHMul(m), mul)
	expectFold(tc, "HAnd", all, a, ones, a.HAnd(), lane.And[T])
	expectFold(tc, "MaskedHAnd", m, a, ones, a.MaskedHAnd(m), lane.And[T])
	expectFold(tc, "HOr", all, a, 0, a.HOr(), lane.Or[T])
	expectFold(tc, "MaskedHOr", m, a, 0, a.MaskedHOr(m), lane.Or[T])
	expectFold(tc, "HXor", all, a, 0, a.HXor(), lane.Xor[T])
	expectFold(tc, "MaskedHXor", m, a, 0, a.MaskedHXor(m), lane.Xor[T])
	expectFold(tc, "HMax", all, a, hi, a.HMax(), lane.Max[T])
	expectFold(tc, "MaskedHMax", m, a, hi, a.MaskedHMax(m), lane.Max[T])
	expectFold(tc, "HMin", all, a, lo, a.HMin(), lane.Min[T])
	expectFold(tc, "MaskedHMin", m, a, lo, a.MaskedHMin(m), lane.Min[T])

	// With no lane selected every masked reduction yields its identity.
	none := hwy.MaskSet[N](false)
	CheckLanes(tc, label[T, N]("MaskedHAdd/none"), []T{a.MaskedHAdd(none)}, []T{0})
	CheckLanes(tc, label[T, N]("MaskedHMul/none"), []T{a.MaskedHMul(none)}, []T{1})
	CheckLanes(tc, label[T, N]("MaskedHAnd/none"), []T{a.MaskedHAnd(none)}, []T{ones})
	CheckLanes(tc, label[T, N]("MaskedHMax/none"), []T{a.MaskedHMax(none)}, []T{hi})
	CheckLanes(tc, label[T, N]("MaskedHMin/none"), []T{a.MaskedHMin(none)}, []T{lo})
}

func runFused(tc *Context, rng *rand.Rand) {
	fused[int8, hwy.N8](tc, rng)
	fused[uint16, hwy.N16](tc, rng)
	fused[int32, hwy.N4](tc, rng)
	fused[uint64, hwy.N2](tc, rng)
	fused[float32, hwy.N16](tc, rng)
	fused[float64, hwy.N8](tc, rng)
	fusedFloat64(tc, rng)
}

// fusedFloat64 checks the float64 forms against the hardware-independent
// math.FMA, which rounds once by definition.
func fusedFloat64(tc *Context, rng *rand.Rand) {
	a, b, c := FiniteVec[float64, hwy.N4](rng), FiniteVec[float64, hwy.N4](rng), FiniteVec[float64, hwy.N4](rng)
	all := hwy.MaskSet[hwy.N4](true)
	expectTernary(tc, "MulAdd/FMA", all, a, b, c, a.MulAdd(b, c), math.FMA)
	expectTernary(tc, "MulSub/FMA", all, a, b, c, a.MulSub(b, c), func(x, y, z float64) float64 {
		return math.FMA(x, y, -z)
	})
}

func fused[T hwy.Lanes, N hwy.LaneCount](tc *Context, rng *rand.Rand) {
	a, b, c := RandomVec[T, N](rng), RandomVec[T, N](rng), RandomVec[T, N](rng)
	m := RandomMask[N](rng)
	all := hwy.MaskSet[N](true)

	expectTernary(tc, "MulAdd", all, a, b, c, a.MulAdd(b, c), lane.MulAdd[T])
	expectTernary(tc, "MaskedMulAdd", m, a, b, c, a.MaskedMulAdd(m, b, c), lane.MulAdd[T])
	expectTernary(tc, "MulSub", all, a, b, c, a.MulSub(b, c), lane.MulSub[T])
	expectTernary(tc, "MaskedMulSub", m, a, b, c, a.MaskedMulSub(m, b, c), lane.MulSub[T])
	expectTernary(tc, "AddMul", all, a, b, c, a.AddMul(b, c), lane.AddMul[T])
	expectTernary(tc, "MaskedAddMul", m, a, b, c, a.MaskedAddMul(m, b, c), lane.AddMul[T])
	expectTernary(tc, "SubMul", all, a, b, c, a.SubMul(b, c), lane.SubMul[T])
	expectTernary(tc, "MaskedSubMul", m, a, b, c, a.MaskedSubMul(m, b, c), lane.SubMul[T])

	// Integers have no rounding, so the fused forms equal the plain ones.
	if !lane.IsFloatKind[T]() {
		CheckLanes(tc, label[T, N]("MulAdd/plain"), a.MulAdd(b, c).Lanes(), a.Mul(b).Add(c).Lanes())
		CheckLanes(tc, label[T, N]("SubMul/plain"), a.SubMul(b, c).Lanes(), a.Sub(b).Mul(c).Lanes())
	}
}
